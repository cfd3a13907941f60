package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
)

// Create creates a new journal entry for the given calendar day. The entry
// is stamped with the day's noon-UTC instant so it stays on the same
// calendar day regardless of the reader's timezone.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateEntryInput) (*domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkContentSize(input.Content); err != nil {
		return nil, err
	}

	day, _ := time.Parse(dayLayout, input.Day)

	content := input.Content
	if content == nil {
		content = map[string]any{}
	}

	date := input.Date
	if date == "" {
		date = day.Format("January 2, 2006")
	}

	now := time.Now().UTC()
	entry, err := s.entries.Create(ctx, &domain.JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      input.Type,
		Date:      date,
		Timestamp: domain.NoonTimestamp(day),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("type", entry.Type.String()),
		slog.String("day", input.Day),
	)

	return entry, nil
}
