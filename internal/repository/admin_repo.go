package repository

import (
	"context"
	"errors"
	"fmt"

	"symptom_reporter/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdminRepository defines operations for admin account data
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

type adminRepository struct {
	db DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin into the database
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	sql := `INSERT INTO admins (id, username, password_hash, created_at)
            VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, sql, admin.ID, admin.Username, admin.PasswordHash, admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindByUsername retrieves an admin by username. Returns nil when no row
// exists; the service layer decides what that means.
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	admin := &model.Admin{}
	sql := `SELECT id, username, password_hash, last_login, created_at FROM admins WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.LastLogin, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}
	return admin, nil
}

// UpdateLastLogin stamps the admin's last successful login time
func (r *adminRepository) UpdateLastLogin(ctx context.Context, id string) error {
	sql := `UPDATE admins SET last_login = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("admin not found for last login update")
	}
	return nil
}
