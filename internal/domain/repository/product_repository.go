package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/pkg/pagination"
)

// ProductRepository defines the interface for menu product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, cafeID uuid.UUID, params *ProductFilterParams) ([]entity.Product, int64, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	CategoryID    *uuid.UUID
	OnlyAvailable bool
}

// CategoryRepository defines the interface for menu category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByName(ctx context.Context, cafeID uuid.UUID, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, cafeID uuid.UUID, activeOnly bool) ([]entity.Category, error)
}
