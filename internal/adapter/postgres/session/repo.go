// Package session implements the refresh-token session store using
// PostgreSQL.
package session

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new session repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create stores a new session. The ID is generated here if empty.
func (r *Repo) Create(ctx context.Context, s *domain.Session) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	sql, args, err := psql.
		Insert("sessions").
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(s.ID, s.UserID, s.TokenHash, s.ExpiresAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "session", s.UserID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session", s.UserID)
	}
	return nil
}

// GetByTokenHash returns the session matching a refresh-token hash.
func (r *Repo) GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("id, user_id, token_hash, expires_at, created_at, revoked_at").
		From("sessions").
		Where(squirrel.Eq{"token_hash": hash}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "session", 0)
	}

	var s domain.Session
	if err := pgxscan.Get(ctx, q, &s, sql, args...); err != nil {
		return nil, postgres.MapError(err, "session", 0)
	}
	return &s, nil
}

// RevokeByID marks a single session revoked.
func (r *Repo) RevokeByID(ctx context.Context, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Update("sessions").
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "session", 0)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session", 0)
	}
	return nil
}

// RevokeAllByUser revokes every live session of a user. Revoking a user with
// no live sessions is a no-op, which makes logout idempotent.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Update("sessions").
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "session", userID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session", userID)
	}
	return nil
}
