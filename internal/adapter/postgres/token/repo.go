// Package token implements the refresh token repository using PostgreSQL.
// Only SHA-256 hashes of tokens are stored, never the raw value.
package token

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/techconnect-india/backend/internal/adapter/postgres"
	"github.com/techconnect-india/backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{
	"id",
	"user_id",
	"token_hash",
	"expires_at",
	"created_at",
	"revoked_at",
}

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new refresh token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a new refresh token hash.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at", "created_at").
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", t.ID.String())
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID.String())
	}

	return nil
}

// GetByHash looks up a token by its SHA-256 hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"token_hash": hash})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by-hash")
	}

	var row tokenRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by-hash")
	}

	t := row.toDomain()
	return &t, nil
}

// Revoke marks a single token as revoked.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil})

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", id.String())
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "refresh_token", id.String())
	}

	return nil
}

// RevokeAllByUser revokes every live token belonging to the user.
// Revoking zero tokens is not an error.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil})

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", userID.String())
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", userID.String())
	}

	return nil
}

// DeleteExpired removes tokens that expired before the cutoff. Returns
// the number of rows removed.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"expires_at": cutoff})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}

	return tag.RowsAffected(), nil
}

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (row tokenRow) toDomain() domain.RefreshToken {
	return domain.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		RevokedAt: row.RevokedAt,
	}
}
