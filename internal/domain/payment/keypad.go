package payment

import (
	"strconv"
	"strings"

	"github.com/cafepos/cafepos-api/pkg/money"
)

// Keypad keys that are not digits
const (
	KeyClear     = "C"
	KeyBackspace = "backspace"
)

// QuickAmounts are the preset buttons on the payment screen, in lira
var QuickAmounts = []int{5, 10, 20, 50, 100, 200}

// Keypad is the calculator-style input buffer feeding the active tender or
// discount amount. The buffer always holds at least "0" and at most one
// decimal separator.
type Keypad struct {
	buffer string
	sep    string
}

// NewKeypad returns a keypad with the given decimal separator ("." or ",").
// Anything else falls back to ".".
func NewKeypad(separator string) *Keypad {
	if separator != "," {
		separator = "."
	}
	return &Keypad{buffer: "0", sep: separator}
}

// Press applies a symbolic key to the buffer: a digit ("0"–"9" or the literal
// "00"), the decimal separator, KeyBackspace or KeyClear. Unknown keys are
// ignored.
func (k *Keypad) Press(key string) {
	switch key {
	case KeyClear:
		k.buffer = "0"
	case KeyBackspace:
		k.buffer = k.buffer[:len(k.buffer)-1]
		if k.buffer == "" {
			k.buffer = "0"
		}
	case ".", ",":
		if !strings.Contains(k.buffer, k.sep) {
			k.buffer += k.sep
		}
	case "00", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if k.buffer == "0" {
			if key == "00" {
				return
			}
			k.buffer = key
			return
		}
		k.buffer += key
	}
}

// Preset replaces the whole buffer with a quick-amount value in lira
func (k *Keypad) Preset(value int) {
	k.buffer = strconv.Itoa(value)
}

// Value returns the display text of the buffer
func (k *Keypad) Value() string {
	return k.buffer
}

// Amount parses the buffer into cents
func (k *Keypad) Amount() (int64, error) {
	return money.ParseAmount(k.buffer)
}

// SetAmount replaces the buffer with an amount in cents, rendered as a plain
// number using the keypad's separator
func (k *Keypad) SetAmount(cents int64) {
	text := money.Format(cents)
	if k.sep == "." {
		text = strings.ReplaceAll(text, ",", ".")
	}
	k.buffer = text
}

// Clear resets the buffer to "0"
func (k *Keypad) Clear() {
	k.buffer = "0"
}
