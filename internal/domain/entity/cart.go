package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cafepos/cafepos-api/pkg/money"
)

// Cart is a server-side open order, parked against a table or a named
// customer until it is either resumed or paid. The sale screens build their
// cart in memory; this entity is the persisted variant used by the table
// workflow.
type Cart struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CafeID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"cafe_id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	TableID      *uuid.UUID     `gorm:"type:uuid;index" json:"table_id,omitempty"`
	CustomerName *string        `gorm:"size:255" json:"customer_name,omitempty"`
	TotalAmount  int64          `gorm:"default:0" json:"-"` // cents
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cafe  Cafe       `gorm:"foreignKey:CafeID" json:"-"`
	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Table *CafeTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// MarshalJSON converts the cent total to a decimal for API responses
func (c Cart) MarshalJSON() ([]byte, error) {
	type Alias Cart
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(c),
		TotalAmount: money.ToFloat(c.TotalAmount),
	})
}

// BeforeCreate generates a UUID before creating a new cart
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cart model
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one persisted cart line. Name and unit price are value
// snapshots taken when the line was added; they are never re-read from the
// catalog.
type CartItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CartID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"cart_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // cents
	LineTotal   int64          `gorm:"not null" json:"-"` // cents
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cart    Cart    `gorm:"foreignKey:CartID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON converts cent amounts to decimals for API responses
func (i CartItem) MarshalJSON() ([]byte, error) {
	type Alias CartItem
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

// BeforeCreate generates a UUID before creating a new cart item
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}
