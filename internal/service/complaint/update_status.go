package complaint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pgcomplaint "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/complaint"
	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// UpdateStatusAndAssignment applies a status and assignment mutation to a
// complaint.
// Only admins may call it. The resolution timestamp is derived, never
// supplied: entering resolved stamps it, leaving resolved clears it, and a
// same-status update leaves it untouched.
func (s *Service) UpdateStatusAndAssignment(ctx context.Context, identity auth.Identity, id int64, input UpdateStatusInput) (*domain.Complaint, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var statusChanged bool

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Step 1: lock the row so concurrent updates serialize on the
		// previous status.
		prevStatus, prevResolvedAt, err := s.complaints.GetStatusForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock complaint: %w", err)
		}

		statusChanged = prevStatus != input.Status

		// Step 2: derive resolved_at from the transition.
		upd := pgcomplaint.StatusUpdate{
			Status:          input.Status,
			ResolutionNotes: input.ResolutionNotes,
		}
		switch {
		case input.Status == domain.StatusResolved && prevStatus != domain.StatusResolved:
			now := time.Now()
			upd.ResolvedAt = &now
			upd.TouchResolvedAt = true
		case input.Status != domain.StatusResolved && prevResolvedAt != nil:
			upd.ResolvedAt = nil
			upd.TouchResolvedAt = true
		}

		if err := s.complaints.UpdateStatus(ctx, id, upd); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		// Step 3: apply assignment changes, if any were requested.
		assignmentChanged := input.Department.Set || input.AssignedTo.Set
		if assignmentChanged {
			if err := s.complaints.UpdateAssignment(ctx, id, input.Department, input.AssignedTo); err != nil {
				return fmt.Errorf("update assignment: %w", err)
			}
		}

		// Step 4: audit. A pure reassignment is recorded as such; anything
		// touching the status is a status update.
		action := domain.ActivityStatusUpdated
		description := fmt.Sprintf("status set to %s", input.Status)
		if !statusChanged && assignmentChanged {
			action = domain.ActivityAssigned
			description = "assignment updated"
		}
		entry := domain.ActivityEntry{
			ComplaintID: id,
			UserID:      identity.UserID,
			Action:      action,
			Description: description,
		}
		if err := s.activity.Append(ctx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complaint.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "complaint updated",
		slog.Int64("complaint_id", id),
		slog.String("status", input.Status.String()),
		slog.Int64("admin_id", identity.UserID))

	return s.GetByID(ctx, id)
}
