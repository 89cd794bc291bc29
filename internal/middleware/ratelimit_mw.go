package middleware

import (
	"net/http"

	"symptom_reporter/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware rejects requests beyond the limiter's per-IP budget
// before they reach the core logic.
func RateLimitMiddleware(limiter *ratelimit.KeyedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": limiter.Message()})
			return
		}
		c.Next()
	}
}
