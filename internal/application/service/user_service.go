package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/repository"
	"github.com/cafepos/cafepos-api/pkg/apperror"
	"github.com/cafepos/cafepos-api/pkg/utils"
)

// UserService handles staff user operations. The list feeds the user-select
// screen shown on the floor terminals.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns the cafe's staff, active members only by default
func (s *UserService) List(ctx context.Context, cafeID uuid.UUID, includeInactive bool) ([]entity.User, error) {
	return s.userRepo.List(ctx, cafeID, !includeInactive)
}

// CreateUserInput represents the input for creating a staff member
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Avatar   *string
}

// Create adds a staff member to the cafe
func (s *UserService) Create(ctx context.Context, cafeID uuid.UUID, input *CreateUserInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	switch input.Role {
	case entity.RoleGarson, entity.RoleKasa, entity.RoleMudur, entity.RolePatron:
	default:
		return nil, apperror.NewBadRequestError("Unknown role: " + input.Role)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		CafeID:   cafeID,
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		Avatar:   input.Avatar,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput represents the input for updating a staff member
type UpdateUserInput struct {
	Name   *string
	Role   *string
	Avatar *string
	Active *bool
}

// Update modifies a staff member within the caller's cafe
func (s *UserService) Update(ctx context.Context, cafeID, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CafeID != cafeID {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		switch *input.Role {
		case entity.RoleGarson, entity.RoleKasa, entity.RoleMudur, entity.RolePatron:
			user.Role = *input.Role
		default:
			return nil, apperror.NewBadRequestError("Unknown role: " + *input.Role)
		}
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword updates a user's password after verifying the current one
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if !utils.CheckPasswordHash(current, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashed, err := utils.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.userRepo.Update(ctx, user)
}
