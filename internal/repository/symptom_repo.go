package repository

import (
	"context"
	"fmt"
)

// SymptomRepository defines operations for the symptom catalog
type SymptomRepository interface {
	Seed(ctx context.Context, names []string) error
	CountAll(ctx context.Context) (int, error)
}

type symptomRepository struct {
	db DB
}

// NewSymptomRepository creates a new SymptomRepository
func NewSymptomRepository(db DB) SymptomRepository {
	return &symptomRepository{db: db}
}

// Seed inserts catalog names that are not present yet. Safe to run on every
// startup.
func (r *symptomRepository) Seed(ctx context.Context, names []string) error {
	sql := `INSERT INTO symptoms (name) SELECT unnest($1::text[]) ON CONFLICT (name) DO NOTHING`
	_, err := r.db.Exec(ctx, sql, names)
	if err != nil {
		return fmt.Errorf("failed to seed symptoms: %w", err)
	}
	return nil
}

// CountAll returns the number of catalog rows
func (r *symptomRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM symptoms`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count symptoms: %w", err)
	}
	return count, nil
}
