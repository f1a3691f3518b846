package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/internet-kid/notes-api/internal/auth"
	"github.com/internet-kid/notes-api/internal/constants"
	apierrors "github.com/internet-kid/notes-api/internal/errors"
)

// RequireAuth checks the Authorization bearer token and stores the user ID
// in the request context.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			apierrors.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		userID, err := tokens.UserIDFromToken(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
