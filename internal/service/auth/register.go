package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// Register creates a new citizen account and logs it in, returning the same
// token pair Login would. Plaintext passwords are hashed before storage and
// never logged. Returns ErrAlreadyExists when the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the optional home ward against the catalog
	if input.WardID != nil {
		exists, err := s.wards.WardExists(ctx, *input.WardID)
		if err != nil {
			return nil, fmt.Errorf("auth.Register check ward: %w", err)
		}
		if !exists {
			return nil, domain.NewValidationError("ward_id", "unknown ward")
		}
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 4: Create user. Email uniqueness is enforced by the DB constraint.
	user, err := s.users.Create(ctx, &domain.User{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  string(hash),
		Kind:          domain.UserKindCitizen,
		DefaultWardID: input.WardID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: email: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 5: Log the new account in right away.
	identity := auth.Identity{
		UserID: user.ID,
		Kind:   user.Kind,
		Name:   user.Name,
	}
	result, err := s.issueTokens(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "citizen registered",
		slog.Int64("user_id", user.ID))

	return result, nil
}
