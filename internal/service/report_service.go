package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"symptom_reporter/internal/model"
	"symptom_reporter/internal/repository"
	"symptom_reporter/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrNoSymptoms      = errors.New("please select at least one symptom")
	ErrTooManySymptoms = errors.New("maximum 10 symptoms allowed")
	ErrInvalidZipCode  = errors.New("please provide a valid 5-digit zip code")
	ErrUnknownSymptom  = errors.New("invalid symptom(s) provided")
	ErrDuplicateReport = errors.New("you have already submitted a report recently")
)

var zipCodePattern = regexp.MustCompile(`^\d{5}$`)

// ReportService handles public symptom report submissions
type ReportService interface {
	Submit(ctx context.Context, req model.SubmitReportRequest, clientIP string) (string, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// Submit validates and stores one submission, returning the new report ID.
// The repository runs the duplicate check and all writes in one transaction.
func (s *reportService) Submit(ctx context.Context, req model.SubmitReportRequest, clientIP string) (string, error) {
	if len(req.Symptoms) == 0 {
		return "", ErrNoSymptoms
	}
	if len(req.Symptoms) > model.MaxSymptomsPerReport {
		return "", ErrTooManySymptoms
	}
	if !zipCodePattern.MatchString(req.ZipCode) {
		return "", ErrInvalidZipCode
	}
	for _, name := range req.Symptoms {
		if !model.IsKnownSymptom(name) {
			return "", ErrUnknownSymptom
		}
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "sess_" + uuid.NewString()
	}

	report := &model.Report{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ZipCode:   req.ZipCode,
		IPHash:    utils.HashIP(clientIP),
		CreatedAt: time.Now(),
	}

	err := s.reportRepo.CreateWithSymptoms(ctx, report, req.Symptoms)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSession):
			return "", ErrDuplicateReport
		case errors.Is(err, repository.ErrUnknownSymptom):
			// The catalog table disagrees with the request; same outcome
			// as the in-memory check (e.g. duplicate names collapse).
			return "", ErrUnknownSymptom
		default:
			return "", fmt.Errorf("failed to store report: %w", err)
		}
	}
	return report.ID, nil
}
