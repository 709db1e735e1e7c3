package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cafepos/cafepos-api/internal/domain/payment"
)

func TestKeypadDigits(t *testing.T) {
	k := payment.NewKeypad(".")
	assert.Equal(t, "0", k.Value())

	// first digit replaces the lone zero, it is never prefixed
	k.Press("5")
	assert.Equal(t, "5", k.Value())

	k.Press("0")
	k.Press("00")
	assert.Equal(t, "5000", k.Value())
}

func TestKeypadDoubleZeroOnEmptyBuffer(t *testing.T) {
	k := payment.NewKeypad(".")
	k.Press("00")
	assert.Equal(t, "0", k.Value())
}

func TestKeypadSingleDecimalSeparator(t *testing.T) {
	k := payment.NewKeypad(".")
	k.Press("1")
	k.Press(".")
	k.Press(".")
	k.Press("5")
	assert.Equal(t, "1.5", k.Value())

	amount, err := k.Amount()
	assert.NoError(t, err)
	assert.Equal(t, int64(150), amount)
}

func TestKeypadCommaLocale(t *testing.T) {
	k := payment.NewKeypad(",")
	k.Press("1")
	k.Press("0")
	k.Press(",")
	k.Press("5")
	assert.Equal(t, "10,5", k.Value())

	amount, err := k.Amount()
	assert.NoError(t, err)
	assert.Equal(t, int64(1050), amount)
}

func TestKeypadBackspace(t *testing.T) {
	k := payment.NewKeypad(".")
	k.Press("4")
	k.Press("2")
	k.Press(payment.KeyBackspace)
	assert.Equal(t, "4", k.Value())

	// emptying the buffer falls back to zero
	k.Press(payment.KeyBackspace)
	assert.Equal(t, "0", k.Value())
	k.Press(payment.KeyBackspace)
	assert.Equal(t, "0", k.Value())
}

func TestKeypadClearAndPreset(t *testing.T) {
	k := payment.NewKeypad(".")
	k.Press("7")
	k.Press(payment.KeyClear)
	assert.Equal(t, "0", k.Value())

	k.Preset(50)
	assert.Equal(t, "50", k.Value())

	// presets replace, not append
	k.Preset(200)
	assert.Equal(t, "200", k.Value())
}

func TestKeypadSetAmount(t *testing.T) {
	k := payment.NewKeypad(".")
	k.SetAmount(1550)
	assert.Equal(t, "15.50", k.Value())

	k2 := payment.NewKeypad(",")
	k2.SetAmount(1550)
	assert.Equal(t, "15,50", k2.Value())
}
