package handler

import (
	"log"
	"net/http"
	"strconv"

	"symptom_reporter/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves admin dashboard statistics
type DashboardHandler struct {
	service service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	days := service.DefaultWindowDays
	if daysParam := c.Query("days"); daysParam != "" {
		if parsed, err := strconv.Atoi(daysParam); err == nil && parsed > 0 {
			days = parsed
		}
	}

	data, err := h.service.GetDashboard(c.Request.Context(), days)
	if err != nil {
		log.Printf("Error fetching dashboard data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error. Please try again."})
		return
	}
	c.JSON(http.StatusOK, data)
}

// RegisterDashboardRoutes registers the protected dashboard route
func (h *DashboardHandler) RegisterDashboardRoutes(rg *gin.RouterGroup, jwtAuthMW gin.HandlerFunc) {
	rg.GET("/dashboard", jwtAuthMW, h.GetDashboard)
}
