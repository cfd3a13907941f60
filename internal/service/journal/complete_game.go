package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
)

// CompleteGame finishes a game entry for the given day. When the day has an
// in-progress game (pregame saved, no postgame yet) its content is merged
// with the new content in place; otherwise a new complete entry is inserted.
// Find-then-write runs in one transaction so two clients finishing the same
// game do not both insert.
func (s *Service) CompleteGame(ctx context.Context, userID uuid.UUID, input CompleteGameInput) (*domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkContentSize(input.Content); err != nil {
		return nil, err
	}

	var out *domain.JournalEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.entries.FindInProgressGame(ctx, userID, input.Day)
		if errors.Is(err, domain.ErrNotFound) {
			created, err := s.insertCompleteGame(ctx, userID, input)
			if err != nil {
				return err
			}
			out = created
			return nil
		}
		if err != nil {
			return fmt.Errorf("find in-progress game: %w", err)
		}

		merged := make(map[string]any, len(existing.Content)+len(input.Content))
		maps.Copy(merged, existing.Content)
		maps.Copy(merged, input.Content)

		if err := s.checkContentSize(merged); err != nil {
			return err
		}

		updated, err := s.entries.UpdateContent(ctx, userID, existing.ID, merged)
		if err != nil {
			return fmt.Errorf("update game entry: %w", err)
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "game entry completed",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", out.ID.String()),
		slog.String("day", input.Day),
	)

	return out, nil
}

func (s *Service) insertCompleteGame(ctx context.Context, userID uuid.UUID, input CompleteGameInput) (*domain.JournalEntry, error) {
	day, _ := time.Parse(dayLayout, input.Day)

	date := input.Date
	if date == "" {
		date = day.Format("January 2, 2006")
	}

	now := time.Now().UTC()
	entry, err := s.entries.Create(ctx, &domain.JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      domain.ActivityGame,
		Date:      date,
		Timestamp: domain.NoonTimestamp(day),
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create game entry: %w", err)
	}

	return entry, nil
}
