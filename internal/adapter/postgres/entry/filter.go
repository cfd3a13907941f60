package entry

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/athletemind/journal-backend/internal/adapter/postgres"
	"github.com/athletemind/journal-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// List returns entries matching the filter, newest first.
// The filter should be normalized (limits applied) before calling.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.EntryFilter) ([]domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("id", "user_id", "type", "date", "ts", "content", "created_at", "updated_at").
		From("journal_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("ts DESC", "created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	if f.Type != nil {
		builder = builder.Where(sq.Eq{"type": string(*f.Type)})
	}
	if f.FromTimestamp != "" {
		builder = builder.Where(sq.GtOrEq{"ts": f.FromTimestamp})
	}
	if f.ToTimestamp != "" {
		builder = builder.Where(sq.LtOrEq{"ts": f.ToTimestamp})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	return entries, nil
}
