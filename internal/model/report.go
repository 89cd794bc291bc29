package model

import "time"

// Report is one anonymous symptom submission. Immutable after creation.
// Only a one-way hash of the submitting address is ever stored.
type Report struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	ZipCode   string    `json:"zip_code"`
	IPHash    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportWithSymptoms is a report joined to its symptom names, as loaded for
// dashboard aggregation.
type ReportWithSymptoms struct {
	Report
	Symptoms []string `json:"symptoms"`
}

// SubmitReportRequest is the public submission payload. Validation happens in
// the service layer so that each failure maps to its own error message.
type SubmitReportRequest struct {
	Symptoms  []string `json:"symptoms"`
	ZipCode   string   `json:"zipCode"`
	SessionID string   `json:"sessionId"`
}

const (
	// MaxSymptomsPerReport caps how many symptoms one submission may carry.
	MaxSymptomsPerReport = 10
	// DuplicateWindow is the rolling window within which a session may
	// submit at most one report.
	DuplicateWindow = time.Hour
)
