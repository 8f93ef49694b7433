package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// Login authenticates a citizen or admin by email + password.
// An unknown email and a wrong password produce the same
// ErrInvalidCredentials, preventing account enumeration. A blocked account
// returns ErrBlocked, a deliberately narrower signal.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user.Blocked {
		return nil, domain.ErrBlocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.users.RecordLogin(ctx, user.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("auth.Login record login: %w", err)
	}

	identity := auth.Identity{
		UserID: user.ID,
		Kind:   user.Kind,
		Name:   user.Name,
	}

	result, err := s.issueTokens(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID))

	return result, nil
}

// AdminLogin authenticates an admin by email + password. The lookup joins
// admin_roles, so a missing user, a citizen account, an admin account with
// no role row, and a wrong password all collapse into the identical
// ErrInvalidCredentials value. Callers must not be able to tell these apart.
func (s *Service) AdminLogin(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	admin, err := s.users.GetAdminByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.AdminLogin get admin: %w", err)
	}

	if admin.Blocked {
		return nil, domain.ErrBlocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.users.RecordLogin(ctx, admin.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("auth.AdminLogin record login: %w", err)
	}

	identity := auth.Identity{
		UserID: admin.ID,
		Kind:   admin.Kind,
		Name:   admin.Name,
		Admin: &auth.AdminIdentity{
			AdminID: admin.ID,
			Role:    admin.Role,
		},
	}

	result, err := s.issueTokens(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("auth.AdminLogin issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in",
		slog.Int64("user_id", admin.ID),
		slog.String("role", admin.Role.String()))

	return result, nil
}
