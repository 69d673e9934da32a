package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
)

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID stored by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserRoleFromContext retrieves the authenticated user's role stored by AuthMiddleware.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	role, ok := c.Request.Context().Value(userRoleKey).(domain.UserRole)
	return role, ok && role != ""
}
