package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
)

// UserRepository defines the interface for staff user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, cafeID uuid.UUID, activeOnly bool) ([]entity.User, error)
}

// CafeRepository defines the interface for cafe data operations
type CafeRepository interface {
	Create(ctx context.Context, cafe *entity.Cafe) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Cafe, error)
	Update(ctx context.Context, cafe *entity.Cafe) error
}
