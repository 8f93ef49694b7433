package complaint

import (
	"context"
	"fmt"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// ActivityTrail returns the audit entries for a complaint, newest first.
// Admin-only: the trail backs the admin detail page.
func (s *Service) ActivityTrail(ctx context.Context, identity auth.Identity, complaintID int64) ([]domain.ActivityEntry, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	entries, err := s.activity.ListByComplaint(ctx, complaintID)
	if err != nil {
		return nil, fmt.Errorf("complaint.ActivityTrail: %w", err)
	}
	return entries, nil
}
