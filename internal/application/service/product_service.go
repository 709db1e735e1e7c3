package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
	"github.com/cafepos/cafepos-api/pkg/money"
	"github.com/cafepos/cafepos-api/pkg/pagination"
	"github.com/cafepos/cafepos-api/pkg/utils"
)

// ProductService handles menu product operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the input for creating a product.
// Price and Cost are decimal amounts as typed, converted to cents on entry.
type CreateProductInput struct {
	Name        string
	CategoryID  *uuid.UUID
	Price       float64
	Cost        float64
	Image       *string
	Description *string
	Available   *bool
	Stock       *int
}

// Create adds a product to the cafe's menu
func (s *ProductService) Create(ctx context.Context, cafeID uuid.UUID, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.CafeID != cafeID {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		CafeID:      cafeID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name) + "-" + uuid.New().String()[:8],
		Price:       money.FromFloat(input.Price),
		Cost:        money.FromFloat(input.Cost),
		Image:       input.Image,
		Description: input.Description,
		Available:   true,
		Stock:       input.Stock,
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get retrieves a product within the caller's cafe
func (s *ProductService) Get(ctx context.Context, cafeID, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CafeID != cafeID {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProductsInput represents filters for listing products
type ListProductsInput struct {
	Pagination    *pagination.PaginationParams
	Search        string
	CategoryID    *uuid.UUID
	OnlyAvailable bool
}

// List returns the cafe's products with pagination info
func (s *ProductService) List(ctx context.Context, cafeID uuid.UUID, input *ListProductsInput) (*pagination.PaginatedResult[entity.Product], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	input.Pagination.Validate()

	params := &repository.ProductFilterParams{
		Pagination:    input.Pagination,
		Search:        input.Search,
		CategoryID:    input.CategoryID,
		OnlyAvailable: input.OnlyAvailable,
	}

	products, total, err := s.productRepo.List(ctx, cafeID, params)
	if err != nil {
		return nil, err
	}

	pg := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pg), nil
}

// UpdateProductInput represents the input for updating a product
type UpdateProductInput struct {
	Name        *string
	CategoryID  *uuid.UUID
	Price       *float64
	Cost        *float64
	Image       *string
	Description *string
	Available   *bool
	Stock       *int
}

// Update modifies a product
func (s *ProductService) Update(ctx context.Context, cafeID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.Get(ctx, cafeID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.CafeID != cafeID {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.Price = money.FromFloat(*input.Price)
	}
	if input.Cost != nil {
		product.Cost = money.FromFloat(*input.Cost)
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
	if input.Stock != nil {
		product.Stock = input.Stock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the menu
func (s *ProductService) Delete(ctx context.Context, cafeID, productID uuid.UUID) error {
	if _, err := s.Get(ctx, cafeID, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}
