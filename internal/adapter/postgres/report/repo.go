// Package report implements the toxic message report repository using
// PostgreSQL. Rejected messages are never stored in the message table;
// only this audit trail records them.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/techconnect-india/backend/internal/adapter/postgres"
	"github.com/techconnect-india/backend/internal/domain"
)

const table = "toxic_reports"

var columns = []string{
	"id",
	"sender",
	"body",
	"categories",
	"created_at",
}

// Repo provides toxic report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create records a rejected message.
func (r *Repo) Create(ctx context.Context, rep *domain.ToxicReport) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rep.ID, rep.Sender, rep.Body, categoryList(rep.Categories), rep.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "toxic_report", rep.ID.String())
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "toxic_report", rep.ID.String())
	}

	return nil
}

// ListBySender returns reports filed against the given sender, newest
// first.
func (r *Repo) ListBySender(ctx context.Context, sender string) ([]domain.ToxicReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"sender": sender}).
		OrderBy("created_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "toxic_report", sender)
	}

	var rows []reportRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "toxic_report", sender)
	}

	out := make([]domain.ToxicReport, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type reportRow struct {
	ID         uuid.UUID `db:"id"`
	Sender     string    `db:"sender"`
	Body       string    `db:"body"`
	Categories []string  `db:"categories"`
	CreatedAt  time.Time `db:"created_at"`
}

func (row reportRow) toDomain() domain.ToxicReport {
	cats := make(map[string]bool, len(row.Categories))
	for _, c := range row.Categories {
		cats[c] = true
	}
	return domain.ToxicReport{
		ID:         row.ID,
		Sender:     row.Sender,
		Body:       row.Body,
		Categories: cats,
		CreatedAt:  row.CreatedAt,
	}
}

// categoryList flattens the flagged category set into a sorted text
// array for storage.
func categoryList(cats map[string]bool) []string {
	out := make([]string, 0, len(cats))
	for c, flagged := range cats {
		if flagged {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
