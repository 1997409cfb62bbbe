// Package message implements the message store repository using PostgreSQL.
package message

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

const table = "messages"

var columns = []string{
	"id",
	"seq",
	"sender",
	"receiver",
	"body",
	"created_at",
}

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends a message and returns the persisted record with its
// storage sequence number.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns("id", "sender", "receiver", "body", "created_at").
		Values(m.ID, m.Sender, m.Receiver, m.Body, m.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "message", m.ID.String())
	}

	var row messageRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "message", m.ID.String())
	}

	result := row.toDomain()
	return &result, nil
}

// ListConversation returns both directions of the exchange between two
// participants in send order. The seq column breaks ties between
// messages created in the same instant. limit caps the result; 0 means
// no cap. A capped read keeps the newest messages: the rows are fetched
// in reverse send order with the limit applied, then flipped back.
func (r *Repo) ListConversation(ctx context.Context, a, b string, limit int) ([]domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Or{
			squirrel.And{squirrel.Eq{"sender": a}, squirrel.Eq{"receiver": b}},
			squirrel.And{squirrel.Eq{"sender": b}, squirrel.Eq{"receiver": a}},
		})

	if limit > 0 {
		query = query.OrderBy("created_at DESC", "seq DESC").Limit(uint64(limit))
	} else {
		query = query.OrderBy("created_at ASC", "seq ASC")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "message", a)
	}

	var rows []messageRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "message", a)
	}

	out := make([]domain.Message, len(rows))
	if limit > 0 {
		for i, row := range rows {
			out[len(rows)-1-i] = row.toDomain()
		}
	} else {
		for i, row := range rows {
			out[i] = row.toDomain()
		}
	}
	return out, nil
}

// CountBySender returns the total number of messages sent by the given
// user.
func (r *Repo) CountBySender(ctx context.Context, sender string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"sender": sender})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "message", sender)
	}

	var count int64
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, postgres.MapError(err, "message", sender)
	}

	return count, nil
}

type messageRow struct {
	ID        uuid.UUID `db:"id"`
	Seq       int64     `db:"seq"`
	Sender    string    `db:"sender"`
	Receiver  string    `db:"receiver"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func (row messageRow) toDomain() domain.Message {
	return domain.Message{
		ID:        row.ID,
		Seq:       row.Seq,
		Sender:    row.Sender,
		Receiver:  row.Receiver,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
	}
}
