// Package engagement implements upvote and comment persistence using
// PostgreSQL.
package engagement

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides upvote and comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new engagement repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// InsertUpvote records an upvote. A duplicate (complaint, user) pair is a
// no-op, not an error: the unique index plus ON CONFLICT DO NOTHING keeps
// this correct under concurrent duplicate submissions. Returns whether a row
// was actually inserted.
func (r *Repo) InsertUpvote(ctx context.Context, complaintID, userID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Insert("complaint_upvotes").
		Columns("complaint_id", "user_id").
		Values(complaintID, userID).
		Suffix("ON CONFLICT (complaint_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "upvote", complaintID)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "upvote", complaintID)
	}
	return tag.RowsAffected() > 0, nil
}

// InsertComment stores a comment and returns it with the generated ID and
// timestamp. Comments are never mutated after creation.
func (r *Repo) InsertComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Insert("complaint_comments").
		Columns("complaint_id", "user_id", "comment_text", "is_official", "is_public").
		Values(c.ComplaintID, c.UserID, c.Text, c.IsOfficial, c.IsPublic).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ComplaintID)
	}

	created := *c
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "comment", c.ComplaintID)
	}
	return &created, nil
}

// ListPublicComments returns the public comments on a complaint, newest
// first, with the author's display name. Non-public comments never appear
// through this read path.
func (r *Repo) ListPublicComments(ctx context.Context, complaintID int64) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("cc.id, cc.complaint_id, cc.user_id, cc.comment_text AS text, cc.is_official, cc.is_public, cc.created_at",
			"u.name AS user_name").
		From("complaint_comments cc").
		Join("users u ON cc.user_id = u.id").
		Where(squirrel.Eq{"cc.complaint_id": complaintID, "cc.is_public": true}).
		OrderBy("cc.created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "comment", complaintID)
	}

	var comments []domain.Comment
	if err := pgxscan.Select(ctx, q, &comments, sql, args...); err != nil {
		return nil, postgres.MapError(err, "comment", complaintID)
	}
	return comments, nil
}
