package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/auth"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/service/ports"
	"github.com/google/uuid"
)

const minPasswordLen = 6

type tokenIssuer interface {
	Generate(adminID, email, role string) (string, error)
}

type AdminService struct {
	repo   ports.AdminRepo
	tokens tokenIssuer
}

func NewAdminService(repo ports.AdminRepo, tokens tokenIssuer) *AdminService {
	return &AdminService{repo: repo, tokens: tokens}
}

// Login verifies credentials and issues a signed token. Unknown emails and
// wrong passwords are indistinguishable to the caller; a matching account
// without the admin role fails closed.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get admin: %w", err)
	}

	if !auth.CheckPassword(password, admin.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if admin.Role != domain.RoleAdmin {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Generate(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, admin, nil
}

// Bootstrap ensures a dashboard account exists for the configured email,
// creating it with the admin role when missing. An account that already
// exists is left untouched, so a restart never rewrites credentials.
func (s *AdminService) Bootstrap(ctx context.Context, email, name, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !validEmail(email) {
		return fmt.Errorf("%w: invalid bootstrap admin email", domain.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: bootstrap admin password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAdminNotFound) {
		return fmt.Errorf("get admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		// Another instance won the race; the account exists either way.
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}

func (s *AdminService) Profile(ctx context.Context, adminID string) (*domain.Admin, error) {
	return s.repo.GetByID(ctx, adminID)
}

func (s *AdminService) UpdateProfile(ctx context.Context, adminID string, input domain.UpdateProfileInput) (*domain.Admin, error) {
	if input.Name == nil && input.Password == nil {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		admin.Name = name
	}

	if input.Password != nil {
		if input.CurrentPassword == "" {
			return nil, fmt.Errorf("%w: current password is required to change password", domain.ErrValidation)
		}
		if len(*input.Password) < minPasswordLen {
			return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
		}
		if !auth.CheckPassword(input.CurrentPassword, admin.PasswordHash) {
			return nil, domain.ErrInvalidCredentials
		}

		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		admin.PasswordHash = hash
	}

	admin.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}

	return admin, nil
}
