// Package user implements user and admin-role persistence using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const userColumns = "id, name, email, password_hash, user_type AS kind, is_blocked AS blocked, default_ward_id, last_login, created_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, q, &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, q, &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &u, nil
}

// GetAdminByEmail returns a user joined with its admin role. The inner join
// means a user without admin kind or without a role row is simply not found,
// which is exactly the signal adminLogin needs.
func (r *Repo) GetAdminByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("u.id, u.name, u.email, u.password_hash, u.user_type AS kind, u.is_blocked AS blocked, u.default_ward_id, u.last_login, u.created_at, ar.role").
		From("users u").
		Join("admin_roles ar ON ar.user_id = u.id").
		Where(squirrel.Eq{"u.email": email, "u.user_type": domain.UserKindAdmin}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "admin_user", 0)
	}

	var au domain.AdminUser
	if err := pgxscan.Get(ctx, q, &au, sql, args...); err != nil {
		return nil, postgres.MapError(err, "admin_user", 0)
	}
	return &au, nil
}

// GetAdminRole returns the admin role assigned to a user, or ErrNotFound
// when no admin_roles row exists.
func (r *Repo) GetAdminRole(ctx context.Context, userID int64) (domain.AdminRole, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("role").
		From("admin_roles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", postgres.MapError(err, "admin_role", userID)
	}

	var role domain.AdminRole
	if err := q.QueryRow(ctx, sql, args...).Scan(&role); err != nil {
		return "", postgres.MapError(err, "admin_role", userID)
	}
	return role, nil
}

// Create inserts a new user and returns it with the generated ID.
// Email uniqueness is enforced by the DB constraint.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Insert("users").
		Columns("name", "email", "password_hash", "user_type", "default_ward_id").
		Values(u.Name, u.Email, u.PasswordHash, u.Kind, u.DefaultWardID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	created := *u
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &created, nil
}

// CreateAdminRole inserts the admin_roles row for a user.
func (r *Repo) CreateAdminRole(ctx context.Context, userID int64, role domain.AdminRole) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Insert("admin_roles").
		Columns("user_id", "role").
		Values(userID, role).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "admin_role", userID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "admin_role", userID)
	}
	return nil
}

// RecordLogin stores the last-login timestamp.
func (r *Repo) RecordLogin(ctx context.Context, id int64, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Update("users").
		Set("last_login", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user", id)
	}
	return nil
}

// UpdateProfile modifies name, email and default ward. Duplicate email is
// rejected by the unique constraint.
func (r *Repo) UpdateProfile(ctx context.Context, id int64, name, email string, wardID *int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Update("users").
		Set("name", name).
		Set("email", email).
		Set("default_ward_id", wardID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user", id)
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Update("users").
		Set("password_hash", hash).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user", id)
	}
	return nil
}

// SetBlocked flips the block flag on a user.
func (r *Repo) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Update("users").
		Set("is_blocked", blocked).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "user", id)
	}
	return nil
}

// ListCitizens returns citizens with their complaint counts, newest first.
func (r *Repo) ListCitizens(ctx context.Context, limit, offset int) ([]domain.CitizenSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("u.id, u.name, u.email, u.password_hash, u.user_type AS kind, u.is_blocked AS blocked, u.default_ward_id, u.last_login, u.created_at",
			"COUNT(DISTINCT c.id) AS complaint_count").
		From("users u").
		LeftJoin("complaints c ON c.user_id = u.id").
		Where(squirrel.Eq{"u.user_type": domain.UserKindCitizen}).
		GroupBy("u.id").
		OrderBy("u.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	var citizens []domain.CitizenSummary
	if err := pgxscan.Select(ctx, q, &citizens, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return citizens, nil
}

// CountCitizens returns the total number of citizen accounts.
func (r *Repo) CountCitizens(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"user_type": domain.UserKindCitizen}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "user", 0)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "user", 0)
	}
	return count, nil
}
