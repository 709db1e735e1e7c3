package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/request"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
	"github.com/cafepos/cafepos-api/pkg/pagination"
)

// ProductHandler handles menu product HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing the cafe's products
func (h *ProductHandler) List(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	input := &service.ListProductsInput{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:        filter.Search,
		OnlyAvailable: filter.OnlyAvailable,
	}

	if filter.CategoryID != "" {
		catID, err := uuid.Parse(filter.CategoryID)
		if err == nil {
			input.CategoryID = &catID
		}
	}

	result, err := h.productService.List(ctx, cafeID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Get(ctx, cafeID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// Create handles adding a product to the menu
func (h *ProductHandler) Create(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Create(ctx, cafeID, &service.CreateProductInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Cost:        req.Cost,
		Image:       req.Image,
		Description: req.Description,
		Available:   req.Available,
		Stock:       req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// Update handles modifying a product
func (h *ProductHandler) Update(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.Update(ctx, cafeID, id, &service.UpdateProductInput{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Cost:        req.Cost,
		Image:       req.Image,
		Description: req.Description,
		Available:   req.Available,
		Stock:       req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Delete handles removing a product
func (h *ProductHandler) Delete(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(ctx, cafeID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
