package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StudyTrack/calendar-service/internal/models"
	"github.com/StudyTrack/calendar-service/internal/services"
)

// TokenAuthMiddleware authenticates requests with the service's own bearer
// tokens.
type TokenAuthMiddleware struct {
	authService services.AuthService
}

func NewTokenAuthMiddleware(authService services.AuthService) *TokenAuthMiddleware {
	return &TokenAuthMiddleware{authService: authService}
}

// AuthMiddleware returns a Gin middleware that requires a valid bearer token
func (tam *TokenAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authorization header missing",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		identity, err := tam.authService.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: services.ErrInvalidToken.Error(),
			})
			c.Abort()
			return
		}

		c.Set("username", identity.Username)
		c.Set("user_role", identity.Role)

		c.Next()
	}
}

// RequireRoleMiddleware checks if the authenticated user has a required role.
// Admins pass every role check.
func (tam *TokenAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "User role not found in context",
			})
			c.Abort()
			return
		}

		role, ok := userRole.(models.UserRole)
		if !ok {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "Invalid user role format",
			})
			c.Abort()
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole || role == models.RoleAdmin {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: fmt.Sprintf("insufficient permissions, required role: %v", requiredRoles),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
