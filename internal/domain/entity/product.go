package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cafepos/cafepos-api/pkg/money"
)

// Product represents an item on the menu. Price is stored in cents and only
// converted to a decimal at the JSON boundary.
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CafeID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"cafe_id"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;unique;not null" json:"slug"`
	Price       int64          `gorm:"not null;default:0" json:"-"` // cents
	Cost        int64          `gorm:"default:0" json:"-"`          // cents
	Image       *string        `gorm:"size:255" json:"image,omitempty"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Available   bool           `gorm:"default:true" json:"available"`
	Stock       *int           `json:"stock,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cafe     Cafe      `gorm:"foreignKey:CafeID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// MarshalJSON converts cent prices to decimals for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Cost  float64 `json:"cost"`
	}{
		Alias: Alias(p),
		Price: money.ToFloat(p.Price),
		Cost:  money.ToFloat(p.Cost),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Category represents a menu category
type Category struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CafeID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"cafe_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;unique;not null" json:"slug"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Icon        *string        `gorm:"size:255" json:"icon,omitempty"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cafe     Cafe      `gorm:"foreignKey:CafeID" json:"-"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
