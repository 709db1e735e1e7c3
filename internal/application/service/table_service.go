package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/enum"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
)

// TableService handles floor table operations
type TableService struct {
	tableRepo repository.TableRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository) *TableService {
	return &TableService{tableRepo: tableRepo}
}

// CreateTableInput represents the input for creating a table
type CreateTableInput struct {
	TableNumber string
	Capacity    int
	Area        string
}

// Create adds a table to the floor plan
func (s *TableService) Create(ctx context.Context, cafeID uuid.UUID, input *CreateTableInput) (*entity.CafeTable, error) {
	area := input.Area
	switch area {
	case "":
		area = entity.AreaSalon
	case entity.AreaBahce, entity.AreaSalon, entity.AreaKat:
	default:
		return nil, apperror.NewBadRequestError("Unknown area: " + area)
	}

	capacity := input.Capacity
	if capacity <= 0 {
		capacity = 4
	}

	table := &entity.CafeTable{
		CafeID:      cafeID,
		TableNumber: input.TableNumber,
		Capacity:    capacity,
		Status:      enum.TableAvailable,
		Area:        area,
	}

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// Get retrieves a table within the caller's cafe
func (s *TableService) Get(ctx context.Context, cafeID, tableID uuid.UUID) (*entity.CafeTable, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil || table.CafeID != cafeID {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

// List returns the cafe's tables, optionally filtered by area
func (s *TableService) List(ctx context.Context, cafeID uuid.UUID, area string) ([]entity.CafeTable, error) {
	if area != "" {
		switch area {
		case entity.AreaBahce, entity.AreaSalon, entity.AreaKat:
		default:
			return nil, apperror.NewBadRequestError("Unknown area: " + area)
		}
	}
	return s.tableRepo.List(ctx, cafeID, area)
}

// UpdateTableInput represents the input for updating a table
type UpdateTableInput struct {
	TableNumber *string
	Capacity    *int
	Area        *string
}

// Update modifies a table
func (s *TableService) Update(ctx context.Context, cafeID, tableID uuid.UUID, input *UpdateTableInput) (*entity.CafeTable, error) {
	table, err := s.Get(ctx, cafeID, tableID)
	if err != nil {
		return nil, err
	}

	if input.TableNumber != nil {
		table.TableNumber = *input.TableNumber
	}
	if input.Capacity != nil && *input.Capacity > 0 {
		table.Capacity = *input.Capacity
	}
	if input.Area != nil {
		switch *input.Area {
		case entity.AreaBahce, entity.AreaSalon, entity.AreaKat:
			table.Area = *input.Area
		default:
			return nil, apperror.NewBadRequestError("Unknown area: " + *input.Area)
		}
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// SetStatus moves a table between available, occupied and reserved.
// Freeing a table resets its guest count.
func (s *TableService) SetStatus(ctx context.Context, cafeID, tableID uuid.UUID, status enum.TableStatus, guests int) (*entity.CafeTable, error) {
	table, err := s.Get(ctx, cafeID, tableID)
	if err != nil {
		return nil, err
	}

	if status == enum.TableAvailable {
		guests = 0
	}
	if guests < 0 {
		return nil, apperror.NewBadRequestError("Guest count cannot be negative")
	}
	if guests > table.Capacity {
		return nil, apperror.NewBadRequestError("Guest count exceeds table capacity")
	}

	if err := s.tableRepo.UpdateStatus(ctx, tableID, status, guests); err != nil {
		return nil, err
	}

	table.Status = status
	table.Guests = guests
	return table, nil
}

// Delete removes a table from the floor plan
func (s *TableService) Delete(ctx context.Context, cafeID, tableID uuid.UUID) error {
	table, err := s.Get(ctx, cafeID, tableID)
	if err != nil {
		return err
	}
	if table.Status == enum.TableOccupied {
		return apperror.NewConflictError("Table is occupied")
	}
	return s.tableRepo.Delete(ctx, tableID)
}
