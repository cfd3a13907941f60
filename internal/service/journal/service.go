// Package journal implements journal-entry management: creating and
// completing entries, day and range queries, and per-user deletion.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/config"
	"github.com/athletemind/journal-backend/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.JournalEntry, error)
	UpdateContent(ctx context.Context, userID, id uuid.UUID, content map[string]any) (*domain.JournalEntry, error)
	ListByDay(ctx context.Context, userID uuid.UUID, day string) ([]domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, f domain.EntryFilter) ([]domain.JournalEntry, error)
	FindInProgressGame(ctx context.Context, userID uuid.UUID, day string) (*domain.JournalEntry, error)
	DeleteByID(ctx context.Context, userID, id uuid.UUID) error
	DeleteByType(ctx context.Context, userID uuid.UUID, typ domain.ActivityType) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides journal-entry operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	tx      txManager
	cfg     config.JournalConfig
}

// NewService creates a new Journal service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	tx txManager,
	cfg config.JournalConfig,
) *Service {
	return &Service{
		log:     log.With("service", "journal"),
		entries: entries,
		tx:      tx,
		cfg:     cfg,
	}
}

// checkContentSize rejects content documents over the configured limit.
func (s *Service) checkContentSize(content map[string]any) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	if len(raw) > s.cfg.MaxContentBytes {
		return domain.NewValidationError("content",
			fmt.Sprintf("content is %d bytes, max %d", len(raw), s.cfg.MaxContentBytes))
	}
	return nil
}
