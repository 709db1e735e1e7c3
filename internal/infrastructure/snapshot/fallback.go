package snapshot

import (
	"github.com/cafepos/cafepos-api/internal/domain/payment"
)

// SampleFallback is the demo placeholder order the payment screen renders
// when the handoff slot is missing or unreadable. Keeping the screen
// renderable in that case is a deliberate resilience choice; production
// deploys that prefer a hard error simply inject no fallback.
type SampleFallback struct{}

// NewSampleFallback creates the fixed sample data source
func NewSampleFallback() *SampleFallback {
	return &SampleFallback{}
}

func (SampleFallback) SampleOrder() payment.Source {
	items := []payment.SourceLine{
		{ID: 1, ProductName: "Kinder Chocolate 4'lü 50gr", Quantity: 2, UnitPrice: 1550, LineTotal: 3100},
		{ID: 2, ProductName: "Ruffles Originals Super", Quantity: 1, UnitPrice: 1650, LineTotal: 1650},
		{ID: 3, ProductName: "Oreo Bisküvi 220gr", Quantity: 1, UnitPrice: 3600, LineTotal: 3600},
		{ID: 4, ProductName: "Haribo Altın Ayıcık Maxi", Quantity: 2, UnitPrice: 2090, LineTotal: 4180},
	}
	var total int64
	for _, item := range items {
		total += item.LineTotal
	}
	return payment.Source{Label: "MASA 12", Items: items, Total: total}
}
