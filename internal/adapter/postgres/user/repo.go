// Package user implements the user directory repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/techconnect-india/backend/internal/adapter/postgres"
	"github.com/techconnect-india/backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id",
	"email",
	"name",
	"city",
	"skills",
	"password_hash",
	"subscription",
	"subscription_id",
	"subscription_plan",
	"message_count",
	"created_at",
	"updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	u := row.toDomain()
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	u := row.toDomain()
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			u.ID,
			u.Email,
			u.Name,
			u.City,
			u.Skills,
			u.PasswordHash,
			u.Subscription.String(),
			u.SubscriptionID,
			planPtrToString(u.SubscriptionPlan),
			u.MessageCount,
			u.CreatedAt,
			u.UpdatedAt,
		).
		Suffix("RETURNING " + columnList())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	result := row.toDomain()
	return &result, nil
}

// Update applies the non-nil patch fields to the given user and returns
// the updated record. An empty patch is rejected by the caller; here it
// would produce invalid SQL.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList())

	if patch.City != nil {
		query = query.Set("city", *patch.City)
	}
	if patch.Skills != nil {
		query = query.Set("skills", *patch.Skills)
	}
	if patch.Subscription != nil {
		query = query.Set("subscription", patch.Subscription.String())
	}
	if patch.SubscriptionID != nil {
		query = query.Set("subscription_id", *patch.SubscriptionID)
	}
	if patch.SubscriptionPlan != nil {
		query = query.Set("subscription_plan", patch.SubscriptionPlan.String())
	}
	if patch.MessageCount != nil {
		query = query.Set("message_count", *patch.MessageCount)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	u := row.toDomain()
	return &u, nil
}

// IncrementMessageCount atomically bumps message_count by one and
// returns the new value. The increment happens in SQL so concurrent
// sends never lose updates.
func (r *Repo) IncrementMessageCount(ctx context.Context, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Update(table).
		Set("message_count", squirrel.Expr("message_count + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING message_count")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "user", id.String())
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, postgres.MapError(err, "user", id.String())
	}

	return count, nil
}

// ListAll returns every user except the one identified by exclude,
// ordered by email for deterministic pagination-free listing.
func (r *Repo) ListAll(ctx context.Context, exclude string) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.NotEq{"email": exclude}).
		OrderBy("email ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", exclude)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", exclude)
	}

	return toDomainList(rows), nil
}

// ListByCity returns users in the given city except the one identified
// by exclude.
func (r *Repo) ListByCity(ctx context.Context, city, exclude string) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"city": city}).
		Where(squirrel.NotEq{"email": exclude}).
		OrderBy("email ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", exclude)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", exclude)
	}

	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: row → domain
// ---------------------------------------------------------------------------

type userRow struct {
	ID               uuid.UUID `db:"id"`
	Email            string    `db:"email"`
	Name             string    `db:"name"`
	City             string    `db:"city"`
	Skills           []string  `db:"skills"`
	PasswordHash     string    `db:"password_hash"`
	Subscription     string    `db:"subscription"`
	SubscriptionID   *string   `db:"subscription_id"`
	SubscriptionPlan *string   `db:"subscription_plan"`
	MessageCount     int       `db:"message_count"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:               row.ID,
		Email:            row.Email,
		Name:             row.Name,
		City:             row.City,
		Skills:           row.Skills,
		PasswordHash:     row.PasswordHash,
		Subscription:     domain.SubscriptionStatus(row.Subscription),
		SubscriptionID:   row.SubscriptionID,
		SubscriptionPlan: stringPtrToPlan(row.SubscriptionPlan),
		MessageCount:     row.MessageCount,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toDomainList(rows []userRow) []domain.User {
	out := make([]domain.User, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

func columnList() string {
	return strings.Join(columns, ", ")
}

func planPtrToString(p *domain.PlanID) *string {
	if p == nil {
		return nil
	}
	s := p.String()
	return &s
}

func stringPtrToPlan(s *string) *domain.PlanID {
	if s == nil {
		return nil
	}
	p := domain.PlanID(*s)
	return &p
}
