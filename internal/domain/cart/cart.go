package cart

import (
	"time"

	"github.com/google/uuid"
)

// ProductSnapshot is the slice of a catalog product a cart line captures at
// add time. Name and price are deliberately denormalized: a price change in
// the catalog must not move an already-open order.
type ProductSnapshot struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"` // cents
}

// LineItem is one product entry in a cart
type LineItem struct {
	ID          int64     `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"` // cents
	LineTotal   int64     `json:"line_total"` // cents, always Quantity*UnitPrice
}

// Cart is the in-memory order being built on a sale screen. It is confined to
// a single session; the persisted form is the handoff snapshot written when
// the user proceeds to payment.
type Cart struct {
	items  []LineItem
	nextID int64
}

// New creates an empty cart
func New() *Cart {
	return &Cart{nextID: time.Now().UnixMilli()}
}

// AddOrIncrement adds a product to the cart. An existing line for the same
// product gains one unit; otherwise a new line with quantity 1 is appended.
// Availability gating happens at the caller; the cart itself has no stock view.
func (c *Cart) AddOrIncrement(p ProductSnapshot) *LineItem {
	for i := range c.items {
		if c.items[i].ProductID == p.ProductID {
			c.items[i].Quantity++
			c.items[i].LineTotal = int64(c.items[i].Quantity) * c.items[i].UnitPrice
			return &c.items[i]
		}
	}

	c.items = append(c.items, LineItem{
		ID:          c.allocID(),
		ProductID:   p.ProductID,
		ProductName: p.Name,
		Quantity:    1,
		UnitPrice:   p.UnitPrice,
		LineTotal:   p.UnitPrice,
	})
	return &c.items[len(c.items)-1]
}

// ChangeQuantity applies delta to the line's quantity. A resulting quantity of
// zero or below removes the line entirely; it is never left at zero.
func (c *Cart) ChangeQuantity(lineID int64, delta int) bool {
	for i := range c.items {
		if c.items[i].ID != lineID {
			continue
		}
		newQty := c.items[i].Quantity + delta
		if newQty <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
		c.items[i].Quantity = newQty
		c.items[i].LineTotal = int64(newQty) * c.items[i].UnitPrice
		return true
	}
	return false
}

// Total sums all line totals. Recomputed on every read so it can never go
// stale across mutations.
func (c *Cart) Total() int64 {
	var total int64
	for i := range c.items {
		total += c.items[i].LineTotal
	}
	return total
}

// Items returns the lines in insertion order
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.items)
}

// QuantityOf returns the quantity of a product across the cart, zero when the
// product has no line. Used for the quantity badge on catalog cards.
func (c *Cart) QuantityOf(productID uuid.UUID) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return c.items[i].Quantity
		}
	}
	return 0
}

// allocID hands out creation-time-derived line ids, unique within the cart
func (c *Cart) allocID() int64 {
	id := c.nextID
	c.nextID++
	return id
}
