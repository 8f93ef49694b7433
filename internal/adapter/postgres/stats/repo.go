// Package stats implements the aggregate read queries behind the admin
// dashboard.
package stats

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides dashboard aggregates backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new stats repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// CountComplaints counts complaints, optionally restricted to one status.
func (r *Repo) CountComplaints(ctx context.Context, status *domain.ComplaintStatus) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := psql.Select("COUNT(*)").From("complaints")
	if status != nil {
		b = b.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "complaint", 0)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "complaint", 0)
	}
	return count, nil
}

// AvgResolutionHours returns the mean hours between creation and resolution
// over resolved complaints, or nil when none are resolved.
func (r *Repo) AvgResolutionHours(ctx context.Context) (*float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	const sql = `SELECT AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 3600.0)
FROM complaints
WHERE resolved_at IS NOT NULL`

	var avg *float64
	if err := q.QueryRow(ctx, sql).Scan(&avg); err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}
	return avg, nil
}

// CountByCategory returns complaint counts grouped by category name.
// Uncategorized complaints are grouped under a fixed label.
func (r *Repo) CountByCategory(ctx context.Context) ([]domain.NamedCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	const sql = `SELECT COALESCE(cat.name, 'Uncategorized') AS name, COUNT(c.id) AS count
FROM complaints c
LEFT JOIN categories cat ON c.category_id = cat.id
GROUP BY COALESCE(cat.name, 'Uncategorized')
ORDER BY count DESC`

	var rows []domain.NamedCount
	if err := pgxscan.Select(ctx, q, &rows, sql); err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}
	return rows, nil
}

// CountByWard returns complaint counts grouped by ward name.
func (r *Repo) CountByWard(ctx context.Context) ([]domain.NamedCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	const sql = `SELECT w.name AS name, COUNT(c.id) AS count
FROM wards w
LEFT JOIN complaints c ON c.ward_id = w.id
GROUP BY w.name
ORDER BY count DESC`

	var rows []domain.NamedCount
	if err := pgxscan.Select(ctx, q, &rows, sql); err != nil {
		return nil, postgres.MapError(err, "complaint", 0)
	}
	return rows, nil
}
