package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/athletemind/journal-backend/internal/domain"
)

const dayLayout = "2006-01-02"

// CreateEntryInput holds the parameters for creating a journal entry.
type CreateEntryInput struct {
	Type    domain.ActivityType
	Day     string // yyyy-MM-dd calendar day the entry belongs to
	Date    string // optional display string; derived from Day when empty
	Content map[string]any
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown activity type"})
	}
	if _, err := time.Parse(dayLayout, i.Day); err != nil {
		errs = append(errs, domain.FieldError{Field: "day", Message: "must be yyyy-MM-dd"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompleteGameInput holds the parameters for finishing a game entry.
type CompleteGameInput struct {
	Day     string
	Date    string
	Content map[string]any
}

// Validate checks all fields and collects all errors.
func (i CompleteGameInput) Validate() error {
	var errs []domain.FieldError

	if _, err := time.Parse(dayLayout, i.Day); err != nil {
		errs = append(errs, domain.FieldError{Field: "day", Message: "must be yyyy-MM-dd"})
	}
	if len(i.Content) == 0 {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateContentInput holds the parameters for replacing entry content.
type UpdateContentInput struct {
	ID      uuid.UUID
	Content map[string]any
}

// Validate checks all fields and collects all errors.
func (i UpdateContentInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
