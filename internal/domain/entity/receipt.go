package entity

// Receipt is the rendered form of a settled order, shaped for thermal
// printing. Amounts are pre-formatted strings so the print layer stays dumb.
type Receipt struct {
	Header  ReceiptHeader `json:"header"`
	OrderNo string        `json:"order_no"`
	Date    string        `json:"date"`
	Cashier string        `json:"cashier,omitempty"`
	Label   string        `json:"label,omitempty"` // table or customer label, e.g. "MASA 12"
	Items   []ReceiptItem `json:"items"`
	Tenders []ReceiptLine `json:"tenders"`
	Total   string        `json:"total"`
	Footer  string        `json:"footer,omitempty"`
}

// ReceiptHeader holds the venue block printed at the top
type ReceiptHeader struct {
	CafeName string `json:"cafe_name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ReceiptItem is one printed item line
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

// ReceiptLine is one printed tender or discount line
type ReceiptLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}
