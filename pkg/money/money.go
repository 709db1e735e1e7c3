package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amounts are stored as int64 cents throughout the system. Conversion to and
// from decimals happens only at the API and display boundaries.

// ErrInvalidAmount is returned when a textual amount cannot be parsed
var ErrInvalidAmount = errors.New("invalid amount")

// FromFloat converts a decimal amount to cents, rounding to the nearest cent
func FromFloat(v float64) int64 {
	return int64(math.Round(v * 100))
}

// ToFloat converts cents to a decimal amount
func ToFloat(cents int64) float64 {
	return float64(cents) / 100
}

// Format renders an amount in cents for display. Whole amounts render as a
// bare integer ("10"), fractional amounts with exactly two decimals and a
// comma separator ("10,50").
func Format(cents int64) string {
	if cents%100 == 0 {
		return strconv.FormatInt(cents/100, 10)
	}
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d", sign, cents/100, cents%100)
}

// ParseAmount parses a user-typed amount into cents. The decimal separator
// may be either "." or ","; it is normalized before parsing.
func ParseAmount(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidAmount
	}
	normalized := strings.ReplaceAll(text, ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromFloat(v), nil
}
