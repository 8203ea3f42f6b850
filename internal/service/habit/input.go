package habit

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
)

var colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func validateName(name string, errs []domain.FieldError) []domain.FieldError {
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		return append(errs, domain.FieldError{Field: "name", Message: "must be at most 100 characters"})
	}
	return errs
}

func validateDescription(description *string, errs []domain.FieldError) []domain.FieldError {
	if description != nil && len(*description) > 1000 {
		return append(errs, domain.FieldError{Field: "description", Message: "must be at most 1000 characters"})
	}
	return errs
}

func validateColor(color *string, errs []domain.FieldError) []domain.FieldError {
	if color != nil && !colorRe.MatchString(*color) {
		return append(errs, domain.FieldError{Field: "color", Message: "must be a hex color like #3498db"})
	}
	return errs
}

// CreateInput holds parameters for the create habit operation.
type CreateInput struct {
	Name        string
	Description *string
	Color       *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(i.Name, errs)
	errs = validateDescription(i.Description, errs)
	errs = validateColor(i.Color, errs)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for the update habit operation.
type UpdateInput struct {
	HabitID     uuid.UUID
	Name        string
	Description *string
	Color       *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "habitId", Message: "required"})
	}
	errs = validateName(i.Name, errs)
	errs = validateDescription(i.Description, errs)
	errs = validateColor(i.Color, errs)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderInput holds the new display order for a user's habits. Positions are
// assigned by slice index.
type ReorderInput struct {
	HabitIDs []uuid.UUID
}

// Validate validates the reorder input.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError

	if len(i.HabitIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "habitIds", Message: "required"})
	}

	seen := make(map[uuid.UUID]struct{}, len(i.HabitIDs))
	for _, id := range i.HabitIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "habitIds", Message: "contains an empty id"})
			break
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "habitIds", Message: "contains duplicate ids"})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
