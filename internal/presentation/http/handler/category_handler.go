package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/request"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
)

// CategoryHandler handles menu category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles listing the cafe's categories
func (h *CategoryHandler) List(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	activeOnly := c.Query("active") == "true"

	categories, err := h.categoryService.List(ctx, cafeID, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved", categories)
}

// Get handles retrieving a single category
func (h *CategoryHandler) Get(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(ctx, cafeID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category retrieved", category)
}

// Create handles adding a category
func (h *CategoryHandler) Create(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.Create(ctx, cafeID, &service.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created", category)
}

// Update handles modifying a category
func (h *CategoryHandler) Update(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.Update(ctx, cafeID, id, &service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Active:      req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated", category)
}

// Delete handles removing a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(ctx, cafeID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
