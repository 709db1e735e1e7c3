package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request.
// Prices arrive as decimals and are converted to cents at the service layer.
type CreateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name" binding:"required,min=2,max=255"`
	Price       float64    `json:"price" binding:"min=0"`
	Cost        float64    `json:"cost" binding:"min=0"`
	Image       *string    `json:"image"`
	Description *string    `json:"description"`
	Available   *bool      `json:"available"`
	Stock       *int       `json:"stock" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Price       *float64   `json:"price" binding:"omitempty,min=0"`
	Cost        *float64   `json:"cost" binding:"omitempty,min=0"`
	Image       *string    `json:"image"`
	Description *string    `json:"description"`
	Available   *bool      `json:"available"`
	Stock       *int       `json:"stock" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search        string `form:"search"`
	CategoryID    string `form:"category_id"`
	OnlyAvailable bool   `form:"available"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Active      *bool   `json:"active"`
}
