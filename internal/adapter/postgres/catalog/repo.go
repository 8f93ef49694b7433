// Package catalog implements read access to the ward, category and
// department reference tables.
package catalog

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides catalog reads backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new catalog repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// WardExists reports whether an active ward with the given id exists.
// This is the fast-path check for complaint creation; the FK constraint
// remains the authoritative guard under concurrent ward deactivation.
func (r *Repo) WardExists(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("1").
		Prefix("SELECT EXISTS (").
		From("wards").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "ward", id)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "ward", id)
	}
	return exists, nil
}

// ListActiveWards returns active wards ordered by name.
func (r *Repo) ListActiveWards(ctx context.Context) ([]domain.Ward, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("id, name, is_active AS active").
		From("wards").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "ward", 0)
	}

	var wards []domain.Ward
	if err := pgxscan.Select(ctx, q, &wards, sql, args...); err != nil {
		return nil, postgres.MapError(err, "ward", 0)
	}
	return wards, nil
}

// ListActiveCategories returns active categories ordered by name.
func (r *Repo) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("id, name, is_active AS active").
		From("categories").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}

	var categories []domain.Category
	if err := pgxscan.Select(ctx, q, &categories, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}
	return categories, nil
}

// ListDepartments returns all departments ordered by name.
func (r *Repo) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("id, name").
		From("departments").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "department", 0)
	}

	var departments []domain.Department
	if err := pgxscan.Select(ctx, q, &departments, sql, args...); err != nil {
		return nil, postgres.MapError(err, "department", 0)
	}
	return departments, nil
}
