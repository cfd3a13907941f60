package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/adapter/postgres/testhelper"
	"github.com/athletemind/journal-backend/internal/adapter/postgres/user"
	"github.com/athletemind/journal-backend/internal/domain"
)

func newUser() *domain.User {
	suffix := uuid.New().String()[:8]
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "repo-" + suffix + "@example.com",
		PasswordHash: "$2a$10$hash-" + suffix,
		Name:         "Repo Test " + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	in := newUser()
	got, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID != in.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, in.ID)
	}
	if got.Email != in.Email {
		t.Errorf("Email mismatch: got %q, want %q", got.Email, in.Email)
	}
	if got.PasswordHash != in.PasswordHash {
		t.Errorf("PasswordHash mismatch: got %q, want %q", got.PasswordHash, in.PasswordHash)
	}
	if got.Name != in.Name {
		t.Errorf("Name mismatch: got %q, want %q", got.Name, in.Name)
	}
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	in := newUser()
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create (first): %v", err)
	}

	dup := newUser()
	dup.Email = in.Email
	_, err := repo.Create(ctx, dup)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate email, got: %v", err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	in := newUser()
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Email != in.Email {
		t.Errorf("Email mismatch: got %q, want %q", got.Email, in.Email)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_GetByEmail(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	in := newUser()
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, in.Email)
	if err != nil {
		t.Fatalf("GetByEmail: unexpected error: %v", err)
	}
	if got.ID != in.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, in.ID)
	}
}

func TestRepo_GetByEmail_NotFound(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)

	_, err := repo.GetByEmail(context.Background(), "missing-"+uuid.New().String()[:8]+"@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_UpdateName(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)
	ctx := context.Background()

	in := newUser()
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.UpdateName(ctx, in.ID, "Renamed")
	if err != nil {
		t.Fatalf("UpdateName: unexpected error: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Name mismatch: got %q, want %q", got.Name, "Renamed")
	}
	if !got.UpdatedAt.After(in.UpdatedAt) {
		t.Errorf("UpdatedAt should advance: got %v, was %v", got.UpdatedAt, in.UpdatedAt)
	}
}

func TestRepo_UpdateName_NotFound(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := user.New(pool)

	_, err := repo.UpdateName(context.Background(), uuid.New(), "Nobody")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
