package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and API banner routes
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
		"database":  "PostgreSQL",
	})
}

func (h *HealthHandler) APIRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Symptom Reporter API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":       "GET /api/health",
			"submitReport": "POST /api/reports",
			"login":        "POST /api/auth/login",
			"dashboard":    "GET /api/dashboard (admin)",
		},
	})
}
