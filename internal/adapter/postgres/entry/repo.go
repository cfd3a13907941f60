// Package entry implements the JournalEntry repository using PostgreSQL.
package entry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/athletemind/journal-backend/internal/adapter/postgres"
	"github.com/athletemind/journal-backend/internal/domain"
)

// Repo provides journal-entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal-entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, user_id, type, date, ts, content, created_at, updated_at`

// Create inserts a new journal entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := json.Marshal(e.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}

	rows, err := q.Query(ctx,
		`INSERT INTO journal_entries (id, user_id, type, date, ts, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+entryColumns,
		e.ID, e.UserID, string(e.Type), e.Date, e.Timestamp, raw, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", e.ID)
	}

	out, err := pgx.CollectOneRow(rows, scanEntry)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", e.ID)
	}

	return &out, nil
}

// GetByID returns an entry by primary key, scoped to the owning user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+entryColumns+` FROM journal_entries WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id)
	}

	out, err := pgx.CollectOneRow(rows, scanEntry)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id)
	}

	return &out, nil
}

// UpdateContent replaces the content of an existing entry, scoped to the
// owning user, and bumps updated_at. Returns the updated row.
func (r *Repo) UpdateContent(ctx context.Context, userID, id uuid.UUID, content map[string]any) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}

	rows, err := q.Query(ctx,
		`UPDATE journal_entries SET content = $3, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING `+entryColumns,
		userID, id, raw,
	)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id)
	}

	out, err := pgx.CollectOneRow(rows, scanEntry)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id)
	}

	return &out, nil
}

// ListByDay returns all entries whose timestamp falls on the given day
// (matched on the YYYY-MM-DD prefix of the stored ISO timestamp),
// ordered by timestamp then creation time.
func (r *Repo) ListByDay(ctx context.Context, userID uuid.UUID, day string) ([]domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+entryColumns+` FROM journal_entries
		 WHERE user_id = $1 AND left(ts, 10) = $2
		 ORDER BY ts, created_at`,
		userID, day,
	)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	return entries, nil
}

// ListByTimestampRange returns all entries with from <= ts < to,
// ordered by timestamp. Bounds are ISO-8601 strings compared lexically.
func (r *Repo) ListByTimestampRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+entryColumns+` FROM journal_entries
		 WHERE user_id = $1 AND ts >= $2 AND ts < $3
		 ORDER BY ts, created_at`,
		userID, from, to,
	)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	return entries, nil
}

// FindInProgressGame returns the first game entry on the given day whose
// content has a pregame section but no postgame section yet.
// Returns domain.ErrNotFound when no such entry exists.
func (r *Repo) FindInProgressGame(ctx context.Context, userID uuid.UUID, day string) (*domain.JournalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+entryColumns+` FROM journal_entries
		 WHERE user_id = $1 AND type = $2 AND left(ts, 10) = $3
		   AND content ? 'pregame' AND NOT content ? 'postgame'
		 ORDER BY created_at
		 LIMIT 1`,
		userID, string(domain.ActivityGame), day,
	)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	out, err := pgx.CollectOneRow(rows, scanEntry)
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	return &out, nil
}

// DeleteByID removes a single entry, scoped to the owning user.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) DeleteByID(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM journal_entries WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return postgres.MapError(err, "journal_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByType removes all entries of the given activity type for the user.
// Returns the count of deleted entries; deleting zero entries is not an error.
func (r *Repo) DeleteByType(ctx context.Context, userID uuid.UUID, typ domain.ActivityType) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM journal_entries WHERE user_id = $1 AND type = $2`,
		userID, string(typ),
	)
	if err != nil {
		return 0, postgres.MapError(err, "journal_entry", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// scanEntry maps a journal_entries row to a domain.JournalEntry.
// Content may be stored as a JSON object or as a JSON string holding encoded
// JSON (legacy double-encoded rows); anything else is kept as a nil map so
// callers can still count the entry.
func scanEntry(row pgx.CollectableRow) (domain.JournalEntry, error) {
	var (
		e   domain.JournalEntry
		typ string
		raw []byte
	)

	if err := row.Scan(&e.ID, &e.UserID, &typ, &e.Date, &e.Timestamp, &raw, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return domain.JournalEntry{}, err
	}

	e.Type = domain.ActivityType(typ)
	e.Content = decodeContent(raw)

	return e, nil
}

func decodeContent(raw []byte) map[string]any {
	var content map[string]any
	if err := json.Unmarshal(raw, &content); err == nil {
		return content
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &content); err != nil {
		return nil
	}

	return content
}
