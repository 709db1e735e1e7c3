package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
	"github.com/cafepos/cafepos-api/pkg/pagination"
)

// OrderService reads the settled order history. Orders are only ever
// created by payment completion.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Get retrieves an order with its items and tender rows
func (s *OrderService) Get(ctx context.Context, cafeID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CafeID != cafeID {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrdersInput represents filters for the order history
type ListOrdersInput struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Search     string
}

// List returns the cafe's orders, newest first
func (s *OrderService) List(ctx context.Context, cafeID uuid.UUID, input *ListOrdersInput) (*pagination.PaginatedResult[entity.Order], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	input.Pagination.Validate()

	params := &repository.OrderFilterParams{
		Pagination: input.Pagination,
		UserID:     input.UserID,
		Search:     input.Search,
	}

	orders, total, err := s.orderRepo.List(ctx, cafeID, params)
	if err != nil {
		return nil, err
	}

	pg := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pg), nil
}
