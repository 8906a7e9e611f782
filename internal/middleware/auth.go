package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"easypark/internal/domain"
	"easypark/internal/security"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID     = "userID"
	ContextBusinessID = "businessID"
	ContextRole       = "role"
)

// AuthMiddleware returns middleware that validates the bearer token and
// stores the caller's identity on the request context.
func AuthMiddleware(tokens security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextBusinessID, claims.BusinessID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireRole returns middleware that rejects callers without the given
// role. Must run after AuthMiddleware.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got, ok := c.Get(ContextRole); !ok || got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// BusinessID extracts the authenticated business ID from the context.
func BusinessID(c *gin.Context) string {
	return c.GetString(ContextBusinessID)
}

// UserID extracts the authenticated user ID from the context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
