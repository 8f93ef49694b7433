// Package complaint implements the complaint lifecycle: creation, filtered
// retrieval, and status/assignment mutation with the derived resolved_at
// rule.
package complaint

import (
	"context"
	"log/slog"
	"time"

	pgcomplaint "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/complaint"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// complaintRepo defines the complaint persistence interface needed by the
// service.
type complaintRepo interface {
	Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	List(ctx context.Context, f domain.ComplaintFilter) ([]domain.Complaint, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Complaint, error)
	GetStatusForUpdate(ctx context.Context, id int64) (domain.ComplaintStatus, *time.Time, error)
	UpdateStatus(ctx context.Context, id int64, upd pgcomplaint.StatusUpdate) error
	UpdateAssignment(ctx context.Context, id int64, department, assignee domain.RefChange) error
}

// wardChecker validates ward references against the catalog.
type wardChecker interface {
	WardExists(ctx context.Context, id int64) (bool, error)
}

// activityRepo is the audit trail: appended inside mutating transactions,
// read back for the admin detail view.
type activityRepo interface {
	Append(ctx context.Context, e domain.ActivityEntry) error
	ListByComplaint(ctx context.Context, complaintID int64) ([]domain.ActivityEntry, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements complaint operations.
type Service struct {
	log        *slog.Logger
	complaints complaintRepo
	wards      wardChecker
	activity   activityRepo
	tx         txManager
}

// NewService creates a new complaint service instance.
func NewService(
	logger *slog.Logger,
	complaints complaintRepo,
	wards wardChecker,
	activity activityRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "complaint"),
		complaints: complaints,
		wards:      wards,
		activity:   activity,
		tx:         tx,
	}
}
