package user

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

// UpdateProfileInput holds the editable profile fields. A nil Password
// leaves the current password in place.
type UpdateProfileInput struct {
	Name          string
	Email         string
	DefaultWardID *int64
	Password      *string
}

// Validate validates the profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Email == "" || !strings.Contains(i.Email, "@") || len(i.Email) > 320 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}

	if i.DefaultWardID != nil && *i.DefaultWardID <= 0 {
		errs = append(errs, domain.FieldError{Field: "default_ward_id", Message: "invalid"})
	}

	if i.Password != nil && (len(*i.Password) < 8 || len(*i.Password) > 72) {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be 8 to 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Profile returns the identity's own account record.
func (s *Service) Profile(ctx context.Context, identity auth.Identity) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.Profile: %w", err)
	}
	return u, nil
}

// UpdateProfile updates the identity's own name, email and default ward,
// and optionally rotates the password. The unique index on email is the
// duplicate guard; a conflicting address surfaces as ErrAlreadyExists.
func (s *Service) UpdateProfile(ctx context.Context, identity auth.Identity, input UpdateProfileInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.DefaultWardID != nil {
		ok, err := s.wards.WardExists(ctx, *input.DefaultWardID)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile check ward: %w", err)
		}
		if !ok {
			return nil, &domain.ValidationError{Errors: []domain.FieldError{
				{Field: "default_ward_id", Message: "unknown ward"},
			}}
		}
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.UpdateProfile(ctx, identity.UserID, input.Name, input.Email, input.DefaultWardID); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return err
			}
			return fmt.Errorf("update profile: %w", err)
		}

		if input.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.cfg.PasswordHashCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			if err := s.users.UpdatePassword(ctx, identity.UserID, string(hash)); err != nil {
				return fmt.Errorf("update password: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.Int64("user_id", identity.UserID),
		slog.Bool("password_changed", input.Password != nil))

	return s.users.GetByID(ctx, identity.UserID)
}
