package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/PAARTH2608/workindia-task/auth/utils"

	"github.com/gin-gonic/gin"
)

// JWTMiddleware guards mutating routes. It expects an "Authorization: Bearer"
// header, verifies the token against the injected manager and puts the admin
// ID into the gin context under "user_id".
func JWTMiddleware(tm *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			c.Abort()
			return
		}

		adminID, err := tm.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, utils.ErrTokenExpired) {
				msg = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set("user_id", adminID)
		c.Next()
	}
}

// GetAdminID returns the authenticated admin's ID from the gin context.
func GetAdminID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
