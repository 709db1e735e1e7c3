package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/enum"
)

// TableRepository defines the interface for floor table data operations
type TableRepository interface {
	Create(ctx context.Context, table *entity.CafeTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CafeTable, error)
	Update(ctx context.Context, table *entity.CafeTable) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, cafeID uuid.UUID, area string) ([]entity.CafeTable, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TableStatus, guests int) error
}
