// Package middleware provides gin middleware for authentication, request
// logging and metrics.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"splitledger/internal/auth"
)

const (
	// CtxUserID is the gin context key for the authenticated user ID.
	CtxUserID = "user_id"
	// CtxEmail is the gin context key for the authenticated user's email.
	CtxEmail = "email"
)

// UserID extracts the authenticated user ID from the gin context.
// Returns empty string if the request is unauthenticated.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

// RequireAuth validates the Bearer token and stores the user identity on
// the context. Requests without a valid token are rejected with 401.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthenticated",
				"message": auth.ErrMissingToken.Error(),
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthenticated",
				"message": auth.ErrInvalidToken.Error(),
			})
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthenticated",
				"message": auth.ErrInvalidToken.Error(),
			})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Next()
	}
}
