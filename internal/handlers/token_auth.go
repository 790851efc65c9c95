package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

// Gin context keys set by TokenAuthMiddleware
const (
	ContextKeyActor     = "actor"
	ContextKeyToken     = "token"
	ContextKeyUserID    = "user_id"
	ContextKeyUser      = "user"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserEmail = "user_email"
)

// TokenAuthMiddleware authenticates opaque bearer tokens issued by AuthService.Login
type TokenAuthMiddleware struct {
	auth   services.AuthService
	logger utils.Logger
}

func NewTokenAuthMiddleware(auth services.AuthService, logger utils.Logger) *TokenAuthMiddleware {
	return &TokenAuthMiddleware{auth: auth, logger: logger}
}

// AuthMiddleware returns a Gin middleware function that rejects requests without a live session
func (m *TokenAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Unauthenticated.",
			})
			return
		}

		actor, err := m.auth.Validate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
					Message: "Unauthenticated.",
				})
				return
			}
			utils.GetLogger(c, m.logger).Error("Failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		// Set user information in context
		c.Set(ContextKeyActor, actor)
		c.Set(ContextKeyToken, token)
		c.Set(ContextKeyUserID, actor.User.ID)
		c.Set(ContextKeyUser, actor.User)
		c.Set(ContextKeyUserRole, actor.User.Role)
		c.Set(ContextKeyUserEmail, actor.User.Email)

		c.Next()
	}
}

// RequireRoleMiddleware checks if user has required role
func (m *TokenAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextKeyUserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: "This action is unauthorized.",
			})
			return
		}

		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Message: "This action is unauthorized.",
			Details: fmt.Sprintf("required role: %v", requiredRoles),
		})
	}
}

// GetActorFromContext returns the authenticated actor, or nil on public routes.
func GetActorFromContext(c *gin.Context) *models.Actor {
	v, ok := c.Get(ContextKeyActor)
	if !ok {
		return nil
	}
	actor, _ := v.(*models.Actor)
	return actor
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
