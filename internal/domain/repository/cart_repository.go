package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
)

// CartRepository defines the interface for server-side cart persistence
type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)
	GetByTable(ctx context.Context, tableID uuid.UUID) (*entity.Cart, error)
	List(ctx context.Context, cafeID uuid.UUID) ([]entity.Cart, error)
	// ReplaceItems swaps the cart's line items and total in one transaction
	ReplaceItems(ctx context.Context, cart *entity.Cart, items []entity.CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
