package middleware

import (
	"net/http"
	"strings"

	"symptom_reporter/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthAdminIDKey  = "authAdminID"
	AuthUsernameKey = "authUsername"
)

// JWTAuthMiddleware guards admin routes. A missing or malformed header is
// 401; a token that fails validation (bad signature, expired) is 403.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token."})
			return
		}

		c.Set(AuthAdminIDKey, claims.AdminID)
		c.Set(AuthUsernameKey, claims.Username)

		c.Next()
	}
}
