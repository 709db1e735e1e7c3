package request

// UpdateCafeSettingsRequest patches the venue settings
type UpdateCafeSettingsRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=2,max=255"`
	Currency         *string `json:"currency" binding:"omitempty,max=10"`
	CurrencySymbol   *string `json:"currency_symbol" binding:"omitempty,max=10"`
	DecimalSeparator *string `json:"decimal_separator" binding:"omitempty,max=1"`
	ReceiptHeader    *string `json:"receipt_header" binding:"omitempty,max=255"`
	ReceiptFooter    *string `json:"receipt_footer" binding:"omitempty,max=255"`
	InvoicePrefix    *string `json:"invoice_prefix" binding:"omitempty,max=20"`
}
