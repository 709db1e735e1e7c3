package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	domainRepo "github.com/cafepos/cafepos-api/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithDetails(ctx context.Context, order *entity.Order, items []entity.OrderItem, tenders []entity.OrderTender) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		for i := range tenders {
			tenders[i].OrderID = order.ID
			tenders[i].Position = i
		}
		if len(tenders) > 0 {
			if err := tx.Create(&tenders).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Tenders", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, cafeID uuid.UUID, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("cafe_id = ?", cafeID)

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.
		Preload("Items").Preload("Tenders").
		Order("created_at DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&orders).Error
	return orders, total, err
}
