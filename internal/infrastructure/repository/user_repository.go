package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	domainRepo "github.com/cafepos/cafepos-api/internal/domain/repository"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) List(ctx context.Context, cafeID uuid.UUID, activeOnly bool) ([]entity.User, error) {
	var users []entity.User
	query := r.db.WithContext(ctx).Where("cafe_id = ?", cafeID)
	if activeOnly {
		query = query.Where("active = true")
	}
	err := query.Order("name ASC").Find(&users).Error
	return users, err
}

type cafeRepository struct {
	db *gorm.DB
}

// NewCafeRepository creates a new cafe repository
func NewCafeRepository(db *gorm.DB) domainRepo.CafeRepository {
	return &cafeRepository{db: db}
}

func (r *cafeRepository) Create(ctx context.Context, cafe *entity.Cafe) error {
	return r.db.WithContext(ctx).Create(cafe).Error
}

func (r *cafeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	var cafe entity.Cafe
	err := r.db.WithContext(ctx).First(&cafe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cafe, err
}

func (r *cafeRepository) GetBySlug(ctx context.Context, slug string) (*entity.Cafe, error) {
	var cafe entity.Cafe
	err := r.db.WithContext(ctx).First(&cafe, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cafe, err
}

func (r *cafeRepository) Update(ctx context.Context, cafe *entity.Cafe) error {
	return r.db.WithContext(ctx).Save(cafe).Error
}
