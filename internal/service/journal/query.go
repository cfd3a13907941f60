package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
)

// GetByID returns a single entry owned by the user.
func (s *Service) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	entry, err := s.entries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return entry, nil
}

// ListDay returns all of the user's entries for a yyyy-MM-dd day.
func (s *Service) ListDay(ctx context.Context, userID uuid.UUID, day string) ([]domain.JournalEntry, error) {
	if _, err := time.Parse(dayLayout, day); err != nil {
		return nil, domain.NewValidationError("day", "must be yyyy-MM-dd")
	}

	entries, err := s.entries.ListByDay(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list entries for %s: %w", day, err)
	}

	return entries, nil
}

// InProgressGame returns the day's game entry with pregame content saved
// and no postgame yet, or domain.ErrNotFound.
func (s *Service) InProgressGame(ctx context.Context, userID uuid.UUID, day string) (*domain.JournalEntry, error) {
	if _, err := time.Parse(dayLayout, day); err != nil {
		return nil, domain.NewValidationError("day", "must be yyyy-MM-dd")
	}

	entry, err := s.entries.FindInProgressGame(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("find in-progress game: %w", err)
	}

	return entry, nil
}

// List returns the user's entries matching the filter, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, f domain.EntryFilter) ([]domain.JournalEntry, error) {
	if f.Type != nil && !f.Type.IsValid() {
		return nil, domain.NewValidationError("type", "unknown activity type")
	}
	f.Normalize()

	entries, err := s.entries.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}
