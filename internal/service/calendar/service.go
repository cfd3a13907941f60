// Package calendar derives per-day heat-map aggregates from a user's
// journal entries. Aggregates are computed fresh on every request and
// never persisted.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
)

// entryRepo defines the journal-entry storage interface needed by the calendar service.
type entryRepo interface {
	ListByTimestampRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.JournalEntry, error)
}

// Service implements calendar aggregation operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
}

// NewService creates a new calendar service instance.
func NewService(logger *slog.Logger, entries entryRepo) *Service {
	return &Service{
		log:     logger.With("service", "calendar"),
		entries: entries,
	}
}

// Month returns one aggregate per day of the given month, ascending.
func (s *Service) Month(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]domain.CalendarDay, error) {
	if month < time.January || month > time.December {
		return nil, domain.NewValidationError("month", fmt.Sprintf("month %d out of range", month))
	}
	if year < 1 {
		return nil, domain.NewValidationError("year", fmt.Sprintf("year %d out of range", year))
	}

	from := domain.FormatDay(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	to := domain.FormatDay(time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC))

	entries, err := s.entries.ListByTimestampRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list entries for %04d-%02d: %w", year, month, err)
	}

	return AggregateMonth(entries, year, month), nil
}

// EmptyMonth returns the all-empty grid for a month. The transport layer
// falls back to it when storage is unavailable so the calendar renders
// rather than erroring.
func EmptyMonth(year int, month time.Month) []domain.CalendarDay {
	return AggregateMonth(nil, year, month)
}
