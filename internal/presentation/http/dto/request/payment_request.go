package request

// KeypadRequest feeds one key into the payment keypad.
// Valid keys: digits, "00", the decimal separator, "C", "backspace".
type KeypadRequest struct {
	Key string `json:"key" binding:"required,max=12"`
}

// PresetRequest replaces the keypad buffer with a quick amount
type PresetRequest struct {
	Value int `json:"value" binding:"required,min=1"`
}

// SelectRequest picks a tender type or a discount mode for the next commit.
// Exactly one of the fields should be set; neither clears the selection.
type SelectRequest struct {
	Tender   *string `json:"tender"`
	Discount *string `json:"discount"`
}

// UndoRequest removes the most recent ledger row
type UndoRequest struct {
	Confirmed bool `json:"confirmed"`
}
