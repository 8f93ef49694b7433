package engagement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// AddComment attaches a comment to a complaint. Whether the comment is
// official is derived from the author's identity at creation time and never
// changes afterwards, even if the author later gains or loses admin standing.
func (s *Service) AddComment(ctx context.Context, identity auth.Identity, complaintID int64, text string, isPublic bool) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "text", Message: "required"},
		}}
	}

	comment := &domain.Comment{
		ComplaintID: complaintID,
		UserID:      identity.UserID,
		Text:        text,
		IsOfficial:  identity.IsAdmin(),
		IsPublic:    isPublic,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.engagement.InsertComment(ctx, comment)
		if err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		comment = created

		entry := domain.ActivityEntry{
			ComplaintID: complaintID,
			UserID:      identity.UserID,
			Action:      domain.ActivityCommented,
			Description: "comment added",
		}
		if err := s.activity.Append(ctx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("engagement.AddComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.Int64("complaint_id", complaintID),
		slog.Int64("user_id", identity.UserID),
		slog.Bool("official", comment.IsOfficial))

	return comment, nil
}

// ListComments returns the public comments on a complaint, newest first.
// Internal (non-public) notes never leave the admin surface.
func (s *Service) ListComments(ctx context.Context, complaintID int64) ([]domain.Comment, error) {
	comments, err := s.engagement.ListPublicComments(ctx, complaintID)
	if err != nil {
		return nil, fmt.Errorf("engagement.ListComments: %w", err)
	}
	return comments, nil
}
