// Package questions manages per-user journal prompt configuration: versioned
// question sets per activity type and imagery prompts, stored as JSON
// documents in the per-user config store.
package questions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/config"
	"github.com/athletemind/journal-backend/internal/domain"
)

// Config store keys, one document per activity type plus imagery prompts.
const (
	KeyGameQuestions     = "gameQuestions"
	KeyTrainingQuestions = "trainingQuestions"
	KeyRehabQuestions    = "rehabQuestions"
	KeyLiftQuestions     = "liftQuestions"
	KeyImageryPrompts    = "imageryPrompts"
)

// configRepo defines the per-user config store interface needed by the questions service.
type configRepo interface {
	Get(ctx context.Context, userID uuid.UUID, key string) (json.RawMessage, error)
	Set(ctx context.Context, userID uuid.UUID, key string, value json.RawMessage) error
}

// Service implements question-configuration operations.
type Service struct {
	log     *slog.Logger
	configs configRepo
	cfg     config.JournalConfig
}

// NewService creates a new questions service instance.
func NewService(logger *slog.Logger, configs configRepo, cfg config.JournalConfig) *Service {
	return &Service{
		log:     logger.With("service", "questions"),
		configs: configs,
		cfg:     cfg,
	}
}

// questionSetKey returns the config key and shipped defaults for an activity
// type, or a validation error for types without configurable questions.
func questionSetKey(activity domain.ActivityType) (string, func() []domain.Question, error) {
	switch activity {
	case domain.ActivityGame:
		return KeyGameQuestions, DefaultGameQuestions, nil
	case domain.ActivityTraining:
		return KeyTrainingQuestions, DefaultTrainingQuestions, nil
	case domain.ActivityRehab:
		return KeyRehabQuestions, DefaultRehabQuestions, nil
	case domain.ActivityLift:
		return KeyLiftQuestions, DefaultLiftQuestions, nil
	default:
		return "", nil, domain.NewValidationError("activity", fmt.Sprintf("no question set for activity type %q", activity))
	}
}

// Load returns the user's question set for the activity type.
//
// Game sets go through the full recovery pipeline: parse (envelope or legacy
// bare array), migrate to CurrentVersion, normalize section/type, and persist
// the result back so the stored document converges. An absent key or an
// unparseable document resets to the shipped defaults; there is no partial
// recovery of corrupt documents.
func (s *Service) Load(ctx context.Context, userID uuid.UUID, activity domain.ActivityType) ([]domain.Question, error) {
	key, defaults, err := questionSetKey(activity)
	if err != nil {
		return nil, err
	}

	raw, err := s.configs.Get(ctx, userID, key)
	if errors.Is(err, domain.ErrNotFound) {
		return s.reset(ctx, userID, key, defaults())
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	set, err := ParseStored(raw)
	if err != nil {
		s.log.Warn("resetting unparseable question set", "key", key, "user_id", userID, "error", err)
		return s.reset(ctx, userID, key, defaults())
	}

	if activity != domain.ActivityGame {
		return set.Questions, nil
	}

	qs := Normalize(Migrate(set).Questions)
	if err := s.save(ctx, userID, key, qs); err != nil {
		return nil, err
	}

	return qs, nil
}

// Replace overwrites the user's question set for the activity type.
func (s *Service) Replace(ctx context.Context, userID uuid.UUID, activity domain.ActivityType, qs []domain.Question) error {
	key, _, err := questionSetKey(activity)
	if err != nil {
		return err
	}

	for i, q := range qs {
		if strings.TrimSpace(q.Text) == "" {
			return domain.NewValidationError("questions", fmt.Sprintf("question %d has empty text", i))
		}
	}

	return s.save(ctx, userID, key, qs)
}

// AddCustom appends a user-authored question and returns it. The id is the
// creation instant in unix milliseconds, matching ids minted by earlier
// versions of the journal.
func (s *Service) AddCustom(ctx context.Context, userID uuid.UUID, activity domain.ActivityType, text string, section domain.QuestionSection) (*domain.Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "question text cannot be empty")
	}

	qs, err := s.Load(ctx, userID, activity)
	if err != nil {
		return nil, err
	}

	customCount := 0
	for _, q := range qs {
		if q.IsCustom {
			customCount++
		}
	}
	if customCount >= s.cfg.MaxCustomPrompts {
		return nil, domain.NewValidationError("questions", fmt.Sprintf("custom question limit of %d reached", s.cfg.MaxCustomPrompts))
	}

	q := domain.Question{
		ID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
		Text:     text,
		Type:     "text",
		Enabled:  true,
		IsCustom: true,
	}
	if activity == domain.ActivityGame {
		q.Section = section
		if !q.Section.IsValid() {
			q.Section = domain.SectionPostgame
		}
	}

	key, _, err := questionSetKey(activity)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, userID, key, append(qs, q)); err != nil {
		return nil, err
	}

	return &q, nil
}

// DeleteCustom removes a user-authored question by id. Shipped questions
// cannot be deleted, only disabled.
func (s *Service) DeleteCustom(ctx context.Context, userID uuid.UUID, activity domain.ActivityType, id string) error {
	qs, err := s.Load(ctx, userID, activity)
	if err != nil {
		return err
	}

	idx := -1
	for i, q := range qs {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	if !qs[idx].IsCustom {
		return domain.NewValidationError("id", "only custom questions can be deleted")
	}

	key, _, err := questionSetKey(activity)
	if err != nil {
		return err
	}

	return s.save(ctx, userID, key, append(qs[:idx], qs[idx+1:]...))
}

// Reset discards the user's question set and restores the shipped defaults.
func (s *Service) Reset(ctx context.Context, userID uuid.UUID, activity domain.ActivityType) ([]domain.Question, error) {
	key, defaults, err := questionSetKey(activity)
	if err != nil {
		return nil, err
	}

	return s.reset(ctx, userID, key, defaults())
}

// ImageryPrompts returns the user's imagery prompt list, seeding the shipped
// defaults on first access or when the stored document is unparseable.
func (s *Service) ImageryPrompts(ctx context.Context, userID uuid.UUID) ([]domain.ImageryPrompt, error) {
	raw, err := s.configs.Get(ctx, userID, KeyImageryPrompts)
	if errors.Is(err, domain.ErrNotFound) {
		return s.resetPrompts(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyImageryPrompts, err)
	}

	var prompts []domain.ImageryPrompt
	if err := json.Unmarshal(raw, &prompts); err != nil {
		s.log.Warn("resetting unparseable imagery prompts", "user_id", userID, "error", err)
		return s.resetPrompts(ctx, userID)
	}

	return prompts, nil
}

// ReplaceImageryPrompts overwrites the user's imagery prompt list.
func (s *Service) ReplaceImageryPrompts(ctx context.Context, userID uuid.UUID, prompts []domain.ImageryPrompt) error {
	if len(prompts) > s.cfg.MaxImageryPrompts {
		return domain.NewValidationError("prompts", fmt.Sprintf("imagery prompt limit of %d exceeded", s.cfg.MaxImageryPrompts))
	}
	for i, p := range prompts {
		if strings.TrimSpace(p.Text) == "" {
			return domain.NewValidationError("prompts", fmt.Sprintf("prompt %d has empty text", i))
		}
	}

	raw, err := json.Marshal(prompts)
	if err != nil {
		return fmt.Errorf("marshal imagery prompts: %w", err)
	}

	if err := s.configs.Set(ctx, userID, KeyImageryPrompts, raw); err != nil {
		return fmt.Errorf("save %s: %w", KeyImageryPrompts, err)
	}

	return nil
}

// save persists a question list as a versioned envelope.
func (s *Service) save(ctx context.Context, userID uuid.UUID, key string, qs []domain.Question) error {
	raw, err := json.Marshal(Envelope(qs))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if err := s.configs.Set(ctx, userID, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	return nil
}

// reset persists the given defaults and returns them.
func (s *Service) reset(ctx context.Context, userID uuid.UUID, key string, defaults []domain.Question) ([]domain.Question, error) {
	if err := s.save(ctx, userID, key, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func (s *Service) resetPrompts(ctx context.Context, userID uuid.UUID) ([]domain.ImageryPrompt, error) {
	defaults := DefaultImageryPrompts()
	if err := s.ReplaceImageryPrompts(ctx, userID, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}
