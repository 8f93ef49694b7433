package complaint

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// Create files a new complaint on behalf of the identity. New complaints
// always start as pending with medium priority and zero upvotes; the audit
// trail records the creation in the same transaction.
func (s *Service) Create(ctx context.Context, identity auth.Identity, input CreateInput) (*domain.Complaint, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Address = strings.TrimSpace(input.Address)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 1: reject unknown wards before touching the complaints table.
	ok, err := s.wards.WardExists(ctx, input.WardID)
	if err != nil {
		return nil, fmt.Errorf("complaint.Create check ward: %w", err)
	}
	if !ok {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "ward_id", Message: "unknown ward"},
		}}
	}

	c := &domain.Complaint{
		UserID:      identity.UserID,
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		WardID:      input.WardID,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		PhotoURL:    input.PhotoURL,
	}

	// Step 2: insert the complaint and its audit entry atomically.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.complaints.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("insert complaint: %w", err)
		}
		c = created

		entry := domain.ActivityEntry{
			ComplaintID: c.ID,
			UserID:      identity.UserID,
			Action:      domain.ActivityCreated,
			Description: fmt.Sprintf("complaint %q filed", c.Title),
		}
		if err := s.activity.Append(ctx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complaint.Create: %w", err)
	}

	s.log.InfoContext(ctx, "complaint created",
		slog.Int64("complaint_id", c.ID),
		slog.Int64("user_id", identity.UserID))

	return c, nil
}
