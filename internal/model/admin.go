package model

import "time"

// Admin represents the dashboard administrator account.
// Exactly one row is expected in practice, bootstrapped at startup.
type Admin struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // Do not expose password hash in JSON responses
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
