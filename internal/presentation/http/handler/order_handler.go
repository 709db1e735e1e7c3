package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
	"github.com/cafepos/cafepos-api/pkg/pagination"
)

// OrderHandler handles order history HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing the cafe's settled orders
func (h *OrderHandler) List(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	input := &service.ListOrdersInput{
		Pagination: &params,
		Search:     c.Query("search"),
	}
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			input.UserID = &userID
		}
	}

	result, err := h.orderService.List(ctx, cafeID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// Get handles retrieving a single order with items and tender rows
func (h *OrderHandler) Get(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.Get(ctx, cafeID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}
