package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cafe represents one venue. Every catalog, table and order row belongs to a
// cafe; the authenticated user's cafe scopes all queries.
type Cafe struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Email     string         `gorm:"size:255" json:"email"`
	Settings  CafeSettings   `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Users  []User      `gorm:"foreignKey:CafeID" json:"-"`
	Tables []CafeTable `gorm:"foreignKey:CafeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cafe
func (c *Cafe) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cafe model
func (Cafe) TableName() string {
	return "cafes"
}

// CafeSettings holds per-venue configuration
type CafeSettings struct {
	Currency         string `json:"currency,omitempty"`
	CurrencySymbol   string `json:"currency_symbol,omitempty"`
	DecimalSeparator string `json:"decimal_separator,omitempty"` // "." or ","
	ReceiptHeader    string `json:"receipt_header,omitempty"`
	ReceiptFooter    string `json:"receipt_footer,omitempty"`
	InvoicePrefix    string `json:"invoice_prefix,omitempty"`
}

// Separator returns the configured decimal separator, defaulting to ","
func (s CafeSettings) Separator() string {
	if s.DecimalSeparator == "." {
		return "."
	}
	return ","
}

// Scan implements the sql.Scanner interface for CafeSettings
func (s *CafeSettings) Scan(value interface{}) error {
	if value == nil {
		*s = CafeSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan CafeSettings: unsupported type")
	}

	return json.Unmarshal(bytes, s)
}

// Value implements the driver.Valuer interface for CafeSettings
func (s CafeSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}
