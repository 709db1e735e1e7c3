package request

// CreateUserRequest represents a staff member creation request
type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"required"`
	Avatar   *string `json:"avatar"`
}

// UpdateUserRequest represents a staff member update request
type UpdateUserRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=255"`
	Role   *string `json:"role"`
	Avatar *string `json:"avatar"`
	Active *bool   `json:"active"`
}

// UserFilterRequest represents user list filter parameters
type UserFilterRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}
