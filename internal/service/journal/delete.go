package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
)

// Delete removes a single entry owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.entries.DeleteByID(ctx, userID, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
	)

	return nil
}

// DeleteByType removes all of the user's entries of one activity type and
// returns how many were deleted. Deleting zero entries is not an error.
func (s *Service) DeleteByType(ctx context.Context, userID uuid.UUID, typ domain.ActivityType) (int, error) {
	if !typ.IsValid() {
		return 0, domain.NewValidationError("type", "unknown activity type")
	}

	count, err := s.entries.DeleteByType(ctx, userID, typ)
	if err != nil {
		return 0, fmt.Errorf("delete entries by type: %w", err)
	}

	s.log.InfoContext(ctx, "journal entries deleted by type",
		slog.String("user_id", userID.String()),
		slog.String("type", typ.String()),
		slog.Int("count", count),
	)

	return count, nil
}
