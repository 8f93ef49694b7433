// Package complaint implements the complaint repository using PostgreSQL.
package complaint

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// joinedColumns is the denormalized read shape: every read returns display
// names alongside the raw record.
const joinedColumns = `c.id, c.user_id, c.title, c.description, c.category_id, c.ward_id,
c.latitude, c.longitude, c.address, c.photo_url, c.status, c.priority,
c.assigned_department_id, c.assigned_to_user_id, c.resolution_notes,
c.upvotes, c.created_at, c.resolved_at,
u.name AS user_name, u.email AS user_email,
cat.name AS category_name, w.name AS ward_name, d.name AS department_name`

// StatusUpdate carries the fields of a status mutation. ResolutionNotes nil
// means leave unchanged. ResolvedAt is only written when TouchResolvedAt is
// set, so an unchanged resolved status keeps its original timestamp.
type StatusUpdate struct {
	Status          domain.ComplaintStatus
	ResolutionNotes *string
	ResolvedAt      *time.Time
	TouchResolvedAt bool
}

// Repo provides complaint persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new complaint repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) joinedSelect() squirrel.SelectBuilder {
	return psql.
		Select(joinedColumns).
		From("complaints c").
		Join("users u ON c.user_id = u.id").
		LeftJoin("categories cat ON c.category_id = cat.id").
		Join("wards w ON c.ward_id = w.id").
		LeftJoin("departments d ON c.assigned_department_id = d.id")
}

// Create inserts a new complaint with status pending and priority medium and
// returns the stored record. The ward FK is the authoritative existence
// guard; the service pre-checks the catalog for a friendlier error.
func (r *Repo) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Insert("complaints").
		Columns("user_id", "title", "description", "category_id", "ward_id",
			"latitude", "longitude", "address", "photo_url", "status", "priority").
		Values(c.UserID, c.Title, c.Description, c.CategoryID, c.WardID,
			c.Latitude, c.Longitude, c.Address, c.PhotoURL,
			domain.StatusPending, domain.PriorityMedium).
		Suffix("RETURNING id, status, priority, upvotes, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}

	created := *c
	if err := q.QueryRow(ctx, sql, args...).
		Scan(&created.ID, &created.Status, &created.Priority, &created.Upvotes, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}
	return &created, nil
}

// GetByID returns the fully joined view of a complaint.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "complaint", id)
	}

	var c domain.Complaint
	if err := pgxscan.Get(ctx, q, &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "complaint", id)
	}
	return &c, nil
}

// List returns complaints matching the filter, ordered by creation time
// descending. The ordering is a contract, not incidental.
func (r *Repo) List(ctx context.Context, f domain.ComplaintFilter) ([]domain.Complaint, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := applyFilter(r.joinedSelect(), f).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}

	var complaints []domain.Complaint
	if err := pgxscan.Select(ctx, q, &complaints, sql, args...); err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}
	return complaints, nil
}

// ListByUser returns all complaints filed by a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.Complaint, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}

	var complaints []domain.Complaint
	if err := pgxscan.Select(ctx, q, &complaints, sql, args...); err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}
	return complaints, nil
}

// GetStatusForUpdate locks the complaint row and returns its current status
// and resolved_at. Must run inside a transaction so the subsequent update and
// the resolved_at derivation are atomic relative to concurrent readers.
func (r *Repo) GetStatusForUpdate(ctx context.Context, id int64) (domain.ComplaintStatus, *time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("status", "resolved_at").
		From("complaints").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", nil, postgres.MapError(err, "complaint", id)
	}

	var (
		status     domain.ComplaintStatus
		resolvedAt *time.Time
	)
	if err := q.QueryRow(ctx, sql, args...).Scan(&status, &resolvedAt); err != nil {
		return "", nil, postgres.MapError(err, "complaint", id)
	}
	return status, resolvedAt, nil
}

// UpdateStatus applies a status mutation.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, upd StatusUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := psql.
		Update("complaints").
		Set("status", upd.Status).
		Where(squirrel.Eq{"id": id})
	if upd.ResolutionNotes != nil {
		b = b.Set("resolution_notes", *upd.ResolutionNotes)
	}
	if upd.TouchResolvedAt {
		b = b.Set("resolved_at", upd.ResolvedAt)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return postgres.MapError(err, "complaint", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "complaint", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "complaint", id)
	}
	return nil
}

// UpdateAssignment applies department/assignee changes. Each RefChange is
// tri-state: Set=false leaves the column alone, Set=true with a nil ID
// clears it, Set=true with an ID assigns it.
func (r *Repo) UpdateAssignment(ctx context.Context, id int64, department, assignee domain.RefChange) error {
	if !department.Set && !assignee.Set {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	b := psql.
		Update("complaints").
		Where(squirrel.Eq{"id": id})
	if department.Set {
		b = b.Set("assigned_department_id", department.ID)
	}
	if assignee.Set {
		b = b.Set("assigned_to_user_id", assignee.ID)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return postgres.MapError(err, "complaint", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "complaint", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "complaint", id)
	}
	return nil
}

// RecountUpvotes rewrites the upvote counter from the authoritative count of
// upvote rows and returns the new value. Recompute-not-increment: the counter
// self-heals from any prior drift.
func (r *Repo) RecountUpvotes(ctx context.Context, id int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	const sql = `UPDATE complaints
SET upvotes = (SELECT COUNT(*) FROM complaint_upvotes WHERE complaint_id = $1)
WHERE id = $1
RETURNING upvotes`

	var upvotes int
	if err := q.QueryRow(ctx, sql, id).Scan(&upvotes); err != nil {
		return 0, postgres.MapError(err, "complaint", id)
	}
	return upvotes, nil
}
