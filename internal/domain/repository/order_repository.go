package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/pkg/pagination"
)

// OrderRepository defines the interface for settled order persistence
type OrderRepository interface {
	// CreateWithDetails persists the order, its items and its tender rows in
	// one transaction
	CreateWithDetails(ctx context.Context, order *entity.Order, items []entity.OrderItem, tenders []entity.OrderTender) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, cafeID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Search     string
}
