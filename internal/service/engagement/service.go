// Package engagement implements citizen engagement with complaints: upvotes
// with an idempotent per-user guarantee and public comments.
package engagement

import (
	"context"
	"log/slog"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// upvoteRepo defines the upvote persistence interface needed by the service.
type upvoteRepo interface {
	InsertUpvote(ctx context.Context, complaintID, userID int64) (bool, error)
	InsertComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListPublicComments(ctx context.Context, complaintID int64) ([]domain.Comment, error)
}

// counterRepo recomputes the denormalized upvote counter on complaints.
type counterRepo interface {
	RecountUpvotes(ctx context.Context, id int64) (int, error)
}

// activityRepo is the write-only audit sink for state-changing actions.
type activityRepo interface {
	Append(ctx context.Context, e domain.ActivityEntry) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements engagement operations.
type Service struct {
	log        *slog.Logger
	engagement upvoteRepo
	complaints counterRepo
	activity   activityRepo
	tx         txManager
}

// NewService creates a new engagement service instance.
func NewService(
	logger *slog.Logger,
	engagement upvoteRepo,
	complaints counterRepo,
	activity activityRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "engagement"),
		engagement: engagement,
		complaints: complaints,
		activity:   activity,
		tx:         tx,
	}
}
