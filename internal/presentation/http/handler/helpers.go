package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	infraRepo "github.com/cafepos/cafepos-api/internal/infrastructure/repository"
	"github.com/cafepos/cafepos-api/internal/presentation/http/dto/response"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetCafeID extracts the authenticated user's cafe ID from the Gin context
func GetCafeID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("cafe_id")
	if !exists {
		return nil
	}
	cafeID, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &cafeID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// scoped pulls the authenticated identity out of the request and returns a
// context carrying the cafe scope for the repositories. Writes a 401 and
// returns ok=false when the request is not authenticated.
func scoped(c *gin.Context) (ctx context.Context, userID, cafeID uuid.UUID, ok bool) {
	uid := GetUserID(c)
	cid := GetCafeID(c)
	if uid == nil || cid == nil {
		response.Unauthorized(c, "User not authenticated")
		return nil, uuid.Nil, uuid.Nil, false
	}
	return infraRepo.WithCafe(c.Request.Context(), *cid), *uid, *cid, true
}

// parseIDParam parses a UUID path parameter, writing a 400 on failure
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
