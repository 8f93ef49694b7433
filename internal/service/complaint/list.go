package complaint

import (
	"context"
	"fmt"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// List returns complaints matching the filter, newest first. Filter fields
// combine conjunctively; a nil field means "any".
func (s *Service) List(ctx context.Context, f domain.ComplaintFilter) ([]domain.Complaint, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "status", Message: "must be pending, in_progress or resolved"},
		}}
	}

	list, err := s.complaints.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("complaint.List: %w", err)
	}
	return list, nil
}

// ListByUser returns all complaints filed by the given user, newest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Complaint, error) {
	list, err := s.complaints.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("complaint.ListByUser: %w", err)
	}
	return list, nil
}
