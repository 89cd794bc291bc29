package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"symptom_reporter/internal/middleware"
	"symptom_reporter/internal/model"
	"symptom_reporter/internal/ratelimit"
	"symptom_reporter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReportService returns a scripted result
type stubReportService struct {
	id  string
	err error
}

func (s *stubReportService) Submit(ctx context.Context, req model.SubmitReportRequest, clientIP string) (string, error) {
	return s.id, s.err
}

func newReportRouter(svc service.ReportService, limiter *ratelimit.KeyedLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewReportHandler(svc)
	var limitMW gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if limiter != nil {
		limitMW = middleware.RateLimitMiddleware(limiter)
	}
	h.RegisterReportRoutes(router.Group("/api"), limitMW)
	return router
}

func postReport(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitReport_Created(t *testing.T) {
	router := newReportRouter(&stubReportService{id: "report-1"}, nil)

	w := postReport(router, `{"symptoms":["Fever","Headache"],"zipCode":"90210"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "report-1", resp["id"])
}

func TestSubmitReport_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"no symptoms", service.ErrNoSymptoms},
		{"too many symptoms", service.ErrTooManySymptoms},
		{"bad zip", service.ErrInvalidZipCode},
		{"unknown symptom", service.ErrUnknownSymptom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newReportRouter(&stubReportService{err: tc.err}, nil)
			w := postReport(router, `{"symptoms":["Fever"],"zipCode":"90210"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestSubmitReport_DuplicateIs429(t *testing.T) {
	router := newReportRouter(&stubReportService{err: service.ErrDuplicateReport}, nil)

	w := postReport(router, `{"symptoms":["Fever"],"zipCode":"90210"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSubmitReport_MalformedJSON(t *testing.T) {
	router := newReportRouter(&stubReportService{id: "report-1"}, nil)

	w := postReport(router, `{"symptoms":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReport_RateLimited(t *testing.T) {
	limiter := ratelimit.NewKeyedLimiter(3, time.Hour, "Too many submissions from this IP. Please try again later.")
	router := newReportRouter(&stubReportService{id: "report-1"}, limiter)

	body := `{"symptoms":["Fever"],"zipCode":"90210"}`
	for i := 0; i < 3; i++ {
		w := postReport(router, body)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := postReport(router, body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many submissions")
}
