// Package userconfig implements the per-user key-value config store using PostgreSQL.
package userconfig

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/athletemind/journal-backend/internal/adapter/postgres"
)

// Repo provides per-user configuration persistence backed by PostgreSQL.
// Each (user, key) pair holds a single JSON document.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user-config repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the raw JSON value stored under key for the user.
// Returns domain.ErrNotFound when the key has never been written.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, key string) (json.RawMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var raw []byte
	err := q.QueryRow(ctx,
		`SELECT value FROM user_configs WHERE user_id = $1 AND key = $2`,
		userID, key,
	).Scan(&raw)
	if err != nil {
		return nil, postgres.MapError(err, "user_config", uuid.Nil)
	}

	return raw, nil
}

// Set upserts the JSON value stored under key for the user.
func (r *Repo) Set(ctx context.Context, userID uuid.UUID, key string, value json.RawMessage) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO user_configs (user_id, key, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		userID, key, []byte(value),
	)
	if err != nil {
		return postgres.MapError(err, "user_config", uuid.Nil)
	}

	return nil
}

// Delete removes the key for the user. Deleting a missing key is not an error.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`DELETE FROM user_configs WHERE user_id = $1 AND key = $2`,
		userID, key,
	)
	if err != nil {
		return postgres.MapError(err, "user_config", uuid.Nil)
	}

	return nil
}
