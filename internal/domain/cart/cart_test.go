package cart_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafepos/cafepos-api/internal/domain/cart"
)

func snapshot(name string, price int64) cart.ProductSnapshot {
	return cart.ProductSnapshot{ProductID: uuid.New(), Name: name, UnitPrice: price}
}

func TestAddOrIncrement(t *testing.T) {
	c := cart.New()
	tea := snapshot("Çay", 1500)
	coffee := snapshot("Türk Kahvesi", 4500)

	c.AddOrIncrement(tea)
	c.AddOrIncrement(coffee)
	c.AddOrIncrement(tea)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Çay", items[0].ProductName)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(3000), items[0].LineTotal)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, int64(7500), c.Total())
}

func TestAddOrIncrementKeepsPriceSnapshot(t *testing.T) {
	c := cart.New()
	p := snapshot("Limonata", 2000)
	c.AddOrIncrement(p)

	// a later catalog price change must not affect the existing line
	p.UnitPrice = 9999
	c.AddOrIncrement(p)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2000), items[0].UnitPrice)
	assert.Equal(t, int64(4000), items[0].LineTotal)
}

func TestChangeQuantity(t *testing.T) {
	c := cart.New()
	line := c.AddOrIncrement(snapshot("Tost", 6000))
	c.ChangeQuantity(line.ID, 2)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(18000), items[0].LineTotal)
}

func TestChangeQuantityRemovesAtZero(t *testing.T) {
	c := cart.New()
	first := c.AddOrIncrement(snapshot("Ayran", 1200))
	second := c.AddOrIncrement(snapshot("Su", 500))

	ok := c.ChangeQuantity(first.ID, -1)
	assert.True(t, ok)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, second.ProductID, items[0].ProductID)
	assert.Equal(t, int64(500), c.Total())
}

func TestChangeQuantityUnknownLine(t *testing.T) {
	c := cart.New()
	c.AddOrIncrement(snapshot("Ayran", 1200))
	assert.False(t, c.ChangeQuantity(42, 1))
	assert.Equal(t, int64(1200), c.Total())
}

// Total must equal the sum of quantity*unitPrice over the surviving lines for
// any mutation sequence, and no line may end at or below quantity zero.
func TestCartInvariantUnderMutationSequence(t *testing.T) {
	c := cart.New()
	products := []cart.ProductSnapshot{
		snapshot("Çay", 1500),
		snapshot("Kahve", 4500),
		snapshot("Kek", 5500),
	}

	for i := 0; i < 10; i++ {
		c.AddOrIncrement(products[i%3])
	}
	for i, item := range c.Items() {
		c.ChangeQuantity(item.ID, -(i%2 + 1))
	}

	var want int64
	for _, item := range c.Items() {
		assert.Greater(t, item.Quantity, 0)
		assert.Equal(t, int64(item.Quantity)*item.UnitPrice, item.LineTotal)
		want += item.LineTotal
	}
	assert.Equal(t, want, c.Total())
}

func TestQuantityOf(t *testing.T) {
	c := cart.New()
	p := snapshot("Çay", 1500)
	assert.Equal(t, 0, c.QuantityOf(p.ProductID))
	c.AddOrIncrement(p)
	c.AddOrIncrement(p)
	assert.Equal(t, 2, c.QuantityOf(p.ProductID))
}
