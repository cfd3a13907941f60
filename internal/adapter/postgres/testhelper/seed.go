package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/athletemind/journal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row with a bcrypt-shaped placeholder hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$testplaceholderhash000000000000000000000000000000000",
		Name:         "Test User " + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedEntry creates a journal entry for the given user with the given activity
// type, day, and content. The entry timestamp is the day stamped at noon UTC.
// Returns a filled domain.JournalEntry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, typ domain.ActivityType, day string, content map[string]any) domain.JournalEntry {
	t.Helper()
	ctx := context.Background()

	if content == nil {
		content = map[string]any{}
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      typ,
		Date:      day,
		Timestamp: day + "T12:00:00Z",
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	raw, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry marshal content: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO journal_entries (id, user_id, type, date, ts, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, string(entry.Type), entry.Date, entry.Timestamp, raw, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert journal_entry: %v", err)
	}

	return entry
}

// SeedConfig writes a user config value under the given key.
// value must be JSON-marshalable.
func SeedConfig(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, key string, value any) {
	t.Helper()
	ctx := context.Background()

	raw, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("testhelper: SeedConfig marshal value: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO user_configs (user_id, key, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		userID, key, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConfig upsert: %v", err)
	}
}
