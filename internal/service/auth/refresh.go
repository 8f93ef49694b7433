package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented session is revoked and a
// new token pair is issued. Unknown, revoked and expired tokens all return
// ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByTokenHash(ctx, auth.HashRefreshToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get session: %w", err)
	}

	if session.IsRevoked() || session.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	if user.Blocked {
		return nil, domain.ErrBlocked
	}

	identity := auth.Identity{
		UserID: user.ID,
		Kind:   user.Kind,
		Name:   user.Name,
	}

	// Admin kind alone is not authorization: the role must still exist.
	if user.Kind == domain.UserKindAdmin {
		role, err := s.users.GetAdminRole(ctx, user.ID)
		switch {
		case err == nil:
			identity.Admin = &auth.AdminIdentity{AdminID: user.ID, Role: role}
		case errors.Is(err, domain.ErrNotFound):
			// admin flag without a role row: plain identity only
		default:
			return nil, fmt.Errorf("auth.Refresh get admin role: %w", err)
		}
	}

	if err := s.sessions.RevokeByID(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke session: %w", err)
	}

	result, err := s.issueTokens(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}

	return result, nil
}
