package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// CafeIDKey is the context key carrying the authenticated user's cafe
const CafeIDKey ctxKey = "cafe_id"

// CafeScope returns a GORM scope filtering rows to the cafe in the context.
// A missing cafe yields no rows rather than all rows.
func CafeScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		cafeID, ok := ctx.Value(CafeIDKey).(uuid.UUID)
		if !ok || cafeID == uuid.Nil {
			return db.Where("1 = 0")
		}
		return db.Where("cafe_id = ?", cafeID)
	}
}

// WithCafe adds the cafe ID to the context
func WithCafe(ctx context.Context, cafeID uuid.UUID) context.Context {
	return context.WithValue(ctx, CafeIDKey, cafeID)
}

// GetCafeID extracts the cafe ID from the context
func GetCafeID(ctx context.Context) (uuid.UUID, bool) {
	cafeID, ok := ctx.Value(CafeIDKey).(uuid.UUID)
	return cafeID, ok
}
