package handler

import (
	"errors"
	"log"
	"net/http"

	"symptom_reporter/internal/model"
	"symptom_reporter/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles public report submissions
type ReportHandler struct {
	service service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var req model.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.service.Submit(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSymptoms):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one symptom."})
		case errors.Is(err, service.ErrTooManySymptoms):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 10 symptoms allowed."})
		case errors.Is(err, service.ErrInvalidZipCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid 5-digit zip code."})
		case errors.Is(err, service.ErrUnknownSymptom):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symptom(s) provided."})
		case errors.Is(err, service.ErrDuplicateReport):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "You have already submitted a report recently. Please try again later."})
		default:
			log.Printf("Error submitting report: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Report submitted successfully.",
		"id":      id,
	})
}

// RegisterReportRoutes registers public report routes
func (h *ReportHandler) RegisterReportRoutes(rg *gin.RouterGroup, rateLimitMW gin.HandlerFunc) {
	rg.POST("/reports", rateLimitMW, h.SubmitReport)
}
