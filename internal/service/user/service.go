// Package user implements profile management and the admin-side user
// operations: citizen listing, blocking and admin provisioning.
package user

import (
	"context"
	"log/slog"

	"github.com/civicvoice/civicvoice-backend/internal/config"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	CreateAdminRole(ctx context.Context, userID int64, role domain.AdminRole) error
	UpdateProfile(ctx context.Context, id int64, name, email string, wardID *int64) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	ListCitizens(ctx context.Context, limit, offset int) ([]domain.CitizenSummary, error)
	CountCitizens(ctx context.Context) (int, error)
}

// wardChecker validates ward references against the catalog.
type wardChecker interface {
	WardExists(ctx context.Context, id int64) (bool, error)
}

// sessionRevoker cuts live sessions when an account is blocked.
type sessionRevoker interface {
	RevokeAllByUser(ctx context.Context, userID int64) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	wards    wardChecker
	sessions sessionRevoker
	tx       txManager
	cfg      config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	wards wardChecker,
	sessions sessionRevoker,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		wards:    wards,
		sessions: sessions,
		tx:       tx,
		cfg:      cfg,
	}
}
