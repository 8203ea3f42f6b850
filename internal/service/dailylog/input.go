package dailylog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
)

// maxBatchSize bounds the number of entries in one batch upsert call.
const maxBatchSize = 100

// UpsertInput holds parameters for the create-or-update log operation.
type UpsertInput struct {
	HabitID   uuid.UUID
	Date      time.Time
	Completed bool
	Notes     *string
}

// Validate validates the upsert input. Logging in the future is not allowed;
// today is the latest permitted date.
func (i UpsertInput) Validate(today time.Time) error {
	var errs []domain.FieldError

	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "habitId", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if domain.Date(i.Date).After(domain.Date(today)) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "cannot log a future date"})
	}
	if i.Notes != nil && len(*i.Notes) > 1000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "must be at most 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BatchInput holds an ordered list of upsert requests applied atomically.
type BatchInput struct {
	Entries []UpsertInput
}

// Validate validates the batch envelope and every entry within it.
func (i BatchInput) Validate(today time.Time) error {
	if len(i.Entries) == 0 {
		return domain.NewValidationError("entries", "required")
	}
	if len(i.Entries) > maxBatchSize {
		return domain.NewValidationError("entries", fmt.Sprintf("must be at most %d entries", maxBatchSize))
	}
	for idx, e := range i.Entries {
		if err := e.Validate(today); err != nil {
			return fmt.Errorf("entry %d: %w", idx, err)
		}
	}
	return nil
}
