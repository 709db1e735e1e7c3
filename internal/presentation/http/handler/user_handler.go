package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cafepos/cafepos-api/internal/application/service"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/request"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
)

// UserHandler handles staff user HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns the cafe's staff for the user-select screen
func (h *UserHandler) List(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var filter request.UserFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	users, err := h.userService.List(ctx, cafeID, filter.IncludeInactive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved", users)
}

// Create adds a staff member
func (h *UserHandler) Create(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Create(ctx, cafeID, &service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Avatar:   req.Avatar,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created", user)
}

// Update modifies a staff member
func (h *UserHandler) Update(c *gin.Context) {
	ctx, _, cafeID, ok := scoped(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Update(ctx, cafeID, id, &service.UpdateUserInput{
		Name:   req.Name,
		Role:   req.Role,
		Avatar: req.Avatar,
		Active: req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated", user)
}
