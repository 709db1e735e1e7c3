package payment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cafepos/cafepos-api/internal/domain/enum"
	"github.com/cafepos/cafepos-api/internal/domain/payment"
)

func TestSelectionExclusivity(t *testing.T) {
	sel := payment.SelectTender(enum.TenderCash)
	_, isTender := sel.Tender()
	_, isDiscount := sel.Discount()
	assert.True(t, isTender)
	assert.False(t, isDiscount)
	assert.False(t, sel.IsNone())

	// overwriting with a discount drops the tender
	sel = payment.SelectDiscount(enum.DiscountPercent)
	_, isTender = sel.Tender()
	mode, isDiscount := sel.Discount()
	assert.False(t, isTender)
	assert.True(t, isDiscount)
	assert.Equal(t, enum.DiscountPercent, mode)

	sel = payment.NoSelection()
	assert.True(t, sel.IsNone())
}

func TestSelectionLabels(t *testing.T) {
	assert.Equal(t, "Nakit", payment.SelectTender(enum.TenderCash).Label())
	assert.Equal(t, "Yemek Kartı", payment.SelectTender(enum.TenderMealCard).Label())
	assert.Equal(t, "İndirim", payment.SelectDiscount(enum.DiscountAmount).Label())
	assert.Equal(t, "İndirim %", payment.SelectDiscount(enum.DiscountPercent).Label())
	assert.Equal(t, "", payment.NoSelection().Label())
}
