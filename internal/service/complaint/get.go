package complaint

import (
	"context"
	"fmt"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// GetByID returns a single complaint with its denormalized display fields.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	c, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("complaint.GetByID: %w", err)
	}
	return c, nil
}
