package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
)

// UpdateContent replaces the content of an existing entry.
func (s *Service) UpdateContent(ctx context.Context, userID uuid.UUID, input UpdateContentInput) (*domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkContentSize(input.Content); err != nil {
		return nil, err
	}

	entry, err := s.entries.UpdateContent(ctx, userID, input.ID, input.Content)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
	)

	return entry, nil
}
