package middleware

import (
	"errors"
	"strings"

	"github.com/bmi-tracker/internal/models"
	"github.com/bmi-tracker/internal/repository"
	"github.com/bmi-tracker/internal/service"
	"github.com/bmi-tracker/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyUser is the key for the current user in gin context
	ContextKeyUser = "current_user"
)

// AuthMiddleware creates the bearer-token authentication gate. It
// verifies the token and loads the corresponding user row on every
// request; a token whose subject no longer exists is rejected the
// same way as an invalid one.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		user, err := authService.GetUserByID(claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// User deleted after the token was issued
				response.Unauthorized(c, "invalid or expired token")
			} else {
				response.InternalError(c, "failed to load user")
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)

		c.Next()
	}
}

// CurrentUser gets the authenticated user from the gin context
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
