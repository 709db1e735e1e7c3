package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Floor roles. Garson takes orders, kasa settles payments, mudur and patron
// see everything.
const (
	RoleGarson = "garson"
	RoleKasa   = "kasa"
	RoleMudur  = "mudur"
	RolePatron = "patron"
)

// User represents a staff member of a cafe
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CafeID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"cafe_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;unique;not null" json:"email"`
	Password  string         `gorm:"size:255" json:"-"`
	Role      string         `gorm:"size:50;not null;default:'garson'" json:"role"`
	Avatar    *string        `gorm:"size:255" json:"avatar,omitempty"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// CanManage reports whether the role may edit the catalog and settings
func (u *User) CanManage() bool {
	return u.Role == RoleMudur || u.Role == RolePatron
}
