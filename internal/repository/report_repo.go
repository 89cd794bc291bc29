package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"symptom_reporter/internal/model"
)

var (
	// ErrDuplicateSession signals that the session already has a report
	// inside the rolling duplicate window.
	ErrDuplicateSession = errors.New("duplicate report for session within window")
	// ErrUnknownSymptom signals that at least one requested symptom name
	// did not resolve against the catalog table.
	ErrUnknownSymptom = errors.New("unknown symptom name")
)

// ReportRepository defines operations for report data
type ReportRepository interface {
	CreateWithSymptoms(ctx context.Context, report *model.Report, symptomNames []string) error
	FindWithSymptoms(ctx context.Context, from, to time.Time) ([]model.ReportWithSymptoms, error)
}

type reportRepository struct {
	db DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db DB) ReportRepository {
	return &reportRepository{db: db}
}

// CreateWithSymptoms stores one report and its symptom associations inside a
// single transaction. Symptom resolution and the session duplicate check run
// in the same transaction as the writes, so a failure at any point leaves no
// partial report behind.
func (r *reportRepository) CreateWithSymptoms(ctx context.Context, report *model.Report, symptomNames []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Resolve requested names against the catalog table.
	rows, err := tx.Query(ctx, `SELECT id FROM symptoms WHERE name = ANY($1)`, symptomNames)
	if err != nil {
		return fmt.Errorf("failed to resolve symptoms: %w", err)
	}
	var symptomIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan symptom id: %w", err)
		}
		symptomIDs = append(symptomIDs, id)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating symptom rows: %w", err)
	}
	if len(symptomIDs) != len(symptomNames) {
		return ErrUnknownSymptom
	}

	// One report per session within the rolling window.
	var duplicate bool
	since := report.CreatedAt.Add(-model.DuplicateWindow)
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reports WHERE session_id = $1 AND created_at >= $2)`,
		report.SessionID, since,
	).Scan(&duplicate)
	if err != nil {
		return fmt.Errorf("failed to check duplicate session: %w", err)
	}
	if duplicate {
		return ErrDuplicateSession
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO reports (id, session_id, zip_code, ip_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		report.ID, report.SessionID, report.ZipCode, report.IPHash, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	for _, symptomID := range symptomIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO report_symptoms (report_id, symptom_id) VALUES ($1, $2)`,
			report.ID, symptomID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert report symptom: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit report transaction: %w", err)
	}
	return nil
}

// FindWithSymptoms loads all reports created in [from, to) together with
// their symptom names, newest first.
func (r *reportRepository) FindWithSymptoms(ctx context.Context, from, to time.Time) ([]model.ReportWithSymptoms, error) {
	sql := `SELECT r.id, r.session_id, r.zip_code, r.created_at,
                   COALESCE(array_agg(s.name) FILTER (WHERE s.name IS NOT NULL), '{}')
            FROM reports r
            LEFT JOIN report_symptoms rs ON rs.report_id = r.id
            LEFT JOIN symptoms s ON s.id = rs.symptom_id
            WHERE r.created_at >= $1 AND r.created_at < $2
            GROUP BY r.id, r.session_id, r.zip_code, r.created_at
            ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, sql, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []model.ReportWithSymptoms
	for rows.Next() {
		var rep model.ReportWithSymptoms
		if err := rows.Scan(&rep.ID, &rep.SessionID, &rep.ZipCode, &rep.CreatedAt, &rep.Symptoms); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return reports, nil
}
