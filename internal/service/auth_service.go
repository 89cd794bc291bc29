package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"symptom_reporter/internal/model"
	"symptom_reporter/internal/repository"
	"symptom_reporter/internal/utils"
)

// ErrInvalidCredentials is returned for both a missing admin record and a
// wrong password, so the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService provides admin authentication
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	adminRepo     repository.AdminRepository
	jwtUtil       *utils.JWTUtil
	adminUsername string
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repository.AdminRepository, jwtUtil *utils.JWTUtil, adminUsername string) AuthService {
	return &authService{
		adminRepo:     adminRepo,
		jwtUtil:       jwtUtil,
		adminUsername: adminUsername,
	}
}

// Login verifies the shared admin password and returns a signed token
func (s *authService) Login(ctx context.Context, password string) (string, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, s.adminUsername)
	if err != nil {
		return "", fmt.Errorf("error finding admin: %w", err)
	}
	if admin == nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		// A stale last_login stamp should not block a valid login.
		log.Printf("WARN: failed to update last login for admin %s: %v", admin.ID, err)
	}

	token, err := s.jwtUtil.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// BootstrapAdmin creates the admin account if it does not exist yet.
// Idempotent, called once at startup.
func BootstrapAdmin(ctx context.Context, adminRepo repository.AdminRepository, username, password, id string) error {
	existing, err := adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &model.Admin{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	log.Printf("Default admin %q created", username)
	return nil
}
