package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
)

// Logout revokes every live session of the identity. Calling it again is a
// no-op: logout is idempotent.
func (s *Service) Logout(ctx context.Context, identity auth.Identity) error {
	if err := s.sessions.RevokeAllByUser(ctx, identity.UserID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.Int64("user_id", identity.UserID))
	return nil
}

// ValidateToken validates an access token and rebuilds the identity it
// carries. Invalid or expired tokens return an error; the transport maps it
// to an unauthorized response.
func (s *Service) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	return s.jwt.ValidateAccessToken(token)
}
