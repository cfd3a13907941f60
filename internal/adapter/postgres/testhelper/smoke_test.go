package testhelper

import (
	"context"
	"testing"

	"github.com/athletemind/journal-backend/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	user := SeedUser(t, pool)

	var email string
	err := pool.QueryRow(
		context.Background(),
		`SELECT email FROM users WHERE id = $1`,
		user.ID,
	).Scan(&email)
	if err != nil {
		t.Fatalf("expected user in DB, got error: %v", err)
	}
	if email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, email)
	}

	entry := SeedEntry(t, pool, user.ID, domain.ActivityTraining, "2024-03-05", map[string]any{"rating": 7})

	var count int
	err = pool.QueryRow(
		context.Background(),
		`SELECT count(*) FROM journal_entries WHERE user_id = $1 AND id = $2`,
		user.ID, entry.ID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("expected entry in DB, got error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 entry, got %d", count)
	}
}
