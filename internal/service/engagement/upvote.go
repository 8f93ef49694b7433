package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// UpvoteResult reports the outcome of an upvote attempt.
type UpvoteResult struct {
	// Added is false when the user had already upvoted this complaint.
	Added bool
	// Upvotes is the authoritative counter after the attempt.
	Upvotes int
}

// AddUpvote records a single upvote per user per complaint. A repeat attempt
// is a no-op, not an error. The counter on the complaint row is recomputed
// from the upvote rows in the same transaction, never incremented.
func (s *Service) AddUpvote(ctx context.Context, identity auth.Identity, complaintID int64) (*UpvoteResult, error) {
	var result UpvoteResult

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		added, err := s.engagement.InsertUpvote(ctx, complaintID, identity.UserID)
		if err != nil {
			return fmt.Errorf("insert upvote: %w", err)
		}
		result.Added = added

		count, err := s.complaints.RecountUpvotes(ctx, complaintID)
		if err != nil {
			return fmt.Errorf("recount upvotes: %w", err)
		}
		result.Upvotes = count

		// Repeat attempts leave no audit trace.
		if !added {
			return nil
		}

		entry := domain.ActivityEntry{
			ComplaintID: complaintID,
			UserID:      identity.UserID,
			Action:      domain.ActivityUpvoted,
			Description: "complaint upvoted",
		}
		if err := s.activity.Append(ctx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("engagement.AddUpvote: %w", err)
	}

	if result.Added {
		s.log.InfoContext(ctx, "complaint upvoted",
			slog.Int64("complaint_id", complaintID),
			slog.Int64("user_id", identity.UserID),
			slog.Int("upvotes", result.Upvotes))
	}

	return &result, nil
}
