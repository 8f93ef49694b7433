// Package auth implements registration, login, admin login and session
// lifecycle.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/config"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAdminByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetAdminRole(ctx context.Context, userID int64) (domain.AdminRole, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	RecordLogin(ctx context.Context, id int64, at time.Time) error
}

// sessionRepo defines the session store interface needed by the auth service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error)
	RevokeByID(ctx context.Context, id string) error
	RevokeAllByUser(ctx context.Context, userID int64) error
}

// wardChecker validates ward references against the catalog.
type wardChecker interface {
	WardExists(ctx context.Context, id int64) (bool, error)
}

// jwtManager defines the token management interface needed by the auth
// service.
type jwtManager interface {
	GenerateAccessToken(identity auth.Identity) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	wards    wardChecker
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	wards wardChecker,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		wards:    wards,
		jwt:      jwt,
		cfg:      cfg,
	}
}

// issueTokens generates the access/refresh token pair for an identity and
// stores the refresh session.
func (s *Service) issueTokens(ctx context.Context, identity auth.Identity) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	session := &domain.Session{
		UserID:    identity.UserID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		Identity:     identity,
	}, nil
}
