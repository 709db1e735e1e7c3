package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/enum"
	domainRepo "github.com/cafepos/cafepos-api/internal/domain/repository"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.CafeTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CafeTable, error) {
	var table entity.CafeTable
	err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) Update(ctx context.Context, table *entity.CafeTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CafeTable{}, "id = ?", id).Error
}

func (r *tableRepository) List(ctx context.Context, cafeID uuid.UUID, area string) ([]entity.CafeTable, error) {
	var tables []entity.CafeTable
	query := r.db.WithContext(ctx).Where("cafe_id = ?", cafeID)
	if area != "" {
		query = query.Where("area = ?", area)
	}
	err := query.Order("table_number ASC").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TableStatus, guests int) error {
	return r.db.WithContext(ctx).
		Model(&entity.CafeTable{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "guests": guests}).Error
}
