package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cafepos/cafepos-api/internal/domain/enum"
)

// Floor areas
const (
	AreaBahce = "bahce"
	AreaSalon = "salon"
	AreaKat   = "kat"
)

// CafeTable represents a physical table on the floor plan
type CafeTable struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CafeID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"cafe_id"`
	TableNumber string           `gorm:"size:50;not null" json:"table_number"`
	Capacity    int              `gorm:"default:4" json:"capacity"`
	Status      enum.TableStatus `gorm:"default:0" json:"status"`
	Area        string           `gorm:"size:50;default:'salon'" json:"area"`
	Guests      int              `gorm:"default:0" json:"guests"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *CafeTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CafeTable model
func (CafeTable) TableName() string {
	return "cafe_tables"
}
