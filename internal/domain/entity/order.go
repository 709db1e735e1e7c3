package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cafepos/cafepos-api/internal/domain/enum"
	"github.com/cafepos/cafepos-api/pkg/money"
)

// Order is a settled sale: the line items that were paid plus the tender
// breakdown. Created only by payment completion, never mutated afterwards.
type Order struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CafeID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"cafe_id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	TableID     *uuid.UUID       `gorm:"type:uuid;index" json:"table_id,omitempty"`
	InvoiceNo   string           `gorm:"size:100;unique;not null" json:"invoice_no"`
	Status      enum.OrderStatus `gorm:"default:0" json:"status"`
	SourceLabel string           `gorm:"size:100" json:"source_label"`
	Total       int64            `gorm:"default:0" json:"-"` // cents
	Paid        int64            `gorm:"default:0" json:"-"` // cents
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Cafe    Cafe          `gorm:"foreignKey:CafeID" json:"-"`
	User    User          `gorm:"foreignKey:UserID" json:"-"`
	Items   []OrderItem   `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Tenders []OrderTender `gorm:"foreignKey:OrderID" json:"tenders,omitempty"`
}

// MarshalJSON converts cent amounts to decimals for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
		Paid  float64 `json:"paid"`
	}{
		Alias: Alias(o),
		Total: money.ToFloat(o.Total),
		Paid:  money.ToFloat(o.Paid),
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one settled line of an order
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // cents
	LineTotal   int64          `gorm:"not null" json:"-"` // cents
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON converts cent amounts to decimals for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(i),
		UnitPrice: money.ToFloat(i.UnitPrice),
		LineTotal: money.ToFloat(i.LineTotal),
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderTender is one applied payment row of a settled order. Discounts are
// recorded alongside tenders with IsDiscount set.
type OrderTender struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	TenderType enum.TenderType `gorm:"default:0" json:"tender_type"`
	IsDiscount bool            `gorm:"default:false" json:"is_discount"`
	Label      string          `gorm:"size:100;not null" json:"label"`
	Amount     int64           `gorm:"not null" json:"-"` // cents
	Position   int             `gorm:"not null" json:"position"`
	CreatedAt  time.Time       `json:"created_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON converts the cent amount to a decimal for API responses
func (t OrderTender) MarshalJSON() ([]byte, error) {
	type Alias OrderTender
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(t),
		Amount: money.ToFloat(t.Amount),
	})
}

// BeforeCreate generates a UUID before creating a new tender row
func (t *OrderTender) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderTender model
func (OrderTender) TableName() string {
	return "order_tenders"
}
