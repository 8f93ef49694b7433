// Package activity implements the append-only activity log using PostgreSQL.
package activity

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides activity-log persistence backed by PostgreSQL. Entries are
// append-only; nothing in the core updates or deletes them.
type Repo struct {
	db postgres.DB
}

// New creates a new activity repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Append writes one activity entry. Called inside the transaction of the
// mutating operation it records.
func (r *Repo) Append(ctx context.Context, e domain.ActivityEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Insert("activity_logs").
		Columns("complaint_id", "user_id", "action", "description").
		Values(e.ComplaintID, e.UserID, e.Action, e.Description).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "activity", e.ComplaintID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity", e.ComplaintID)
	}
	return nil
}

// ListByComplaint returns the activity history of a complaint, newest first.
// Serves the admin detail page only; the core never reads its own writes.
func (r *Repo) ListByComplaint(ctx context.Context, complaintID int64) ([]domain.ActivityEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("id, complaint_id, user_id, action, description, created_at").
		From("activity_logs").
		Where(squirrel.Eq{"complaint_id": complaintID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "activity", complaintID)
	}

	var entries []domain.ActivityEntry
	if err := pgxscan.Select(ctx, q, &entries, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity", complaintID)
	}
	return entries, nil
}
