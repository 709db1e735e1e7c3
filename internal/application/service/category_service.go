package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
	"github.com/cafepos/cafepos-api/pkg/utils"
)

// CategoryService handles menu category operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput represents the input for creating a category
type CreateCategoryInput struct {
	Name        string
	Description *string
	Icon        *string
}

// Create adds a category to the cafe's menu
func (s *CategoryService) Create(ctx context.Context, cafeID uuid.UUID, input *CreateCategoryInput) (*entity.Category, error) {
	existing, err := s.categoryRepo.GetByName(ctx, cafeID, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{
		CafeID:      cafeID,
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name) + "-" + uuid.New().String()[:8],
		Description: input.Description,
		Icon:        input.Icon,
		Active:      true,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get retrieves a category within the caller's cafe
func (s *CategoryService) Get(ctx context.Context, cafeID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CafeID != cafeID {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// List returns the cafe's categories
func (s *CategoryService) List(ctx context.Context, cafeID uuid.UUID, activeOnly bool) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx, cafeID, activeOnly)
}

// UpdateCategoryInput represents the input for updating a category
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Icon        *string
	Active      *bool
}

// Update modifies a category
func (s *CategoryService) Update(ctx context.Context, cafeID, categoryID uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.Get(ctx, cafeID, categoryID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	if input.Icon != nil {
		category.Icon = input.Icon
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, cafeID, categoryID uuid.UUID) error {
	if _, err := s.Get(ctx, cafeID, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, categoryID)
}
