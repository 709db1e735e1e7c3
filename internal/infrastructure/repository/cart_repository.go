package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	domainRepo "github.com/cafepos/cafepos-api/internal/domain/repository"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domainRepo.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Table").
		First(&cart, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cart, err
}

func (r *cartRepository) GetByTable(ctx context.Context, tableID uuid.UUID) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&cart, "table_id = ?", tableID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cart, err
}

func (r *cartRepository) List(ctx context.Context, cafeID uuid.UUID) ([]entity.Cart, error) {
	var carts []entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Table").
		Where("cafe_id = ?", cafeID).
		Order("created_at DESC").
		Find(&carts).Error
	return carts, err
}

func (r *cartRepository) ReplaceItems(ctx context.Context, cart *entity.Cart, items []entity.CartItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].CartID = cart.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entity.Cart{}).
			Where("id = ?", cart.ID).
			Update("total_amount", cart.TotalAmount).Error
	})
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Cart{}, "id = ?", id).Error
	})
}
