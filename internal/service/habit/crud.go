package habit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
	"github.com/tallyapp/tally-backend/pkg/ctxutil"
)

// Create adds a new habit for the authenticated user. New habits go to the
// end of the list: display order is the current habit count.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.habits.List(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("habit.Create list: %w", err)
	}

	created, err := s.habits.Create(ctx, &domain.Habit{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         input.Name,
		Description:  input.Description,
		Color:        input.Color,
		CreatedAt:    s.now(),
		DisplayOrder: len(existing),
	})
	if err != nil {
		return nil, fmt.Errorf("habit.Create: %w", err)
	}

	s.log.InfoContext(ctx, "habit created",
		slog.String("habit_id", created.ID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}

// Get returns a single habit owned by the authenticated user.
func (s *Service) Get(ctx context.Context, habitID uuid.UUID) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	h, err := s.habits.GetByIDAndOwner(ctx, habitID, userID)
	if err != nil {
		return nil, fmt.Errorf("habit.Get: %w", err)
	}
	return h, nil
}

// List returns the authenticated user's habits ordered by display order.
// Archived habits are included only when requested.
func (s *Service) List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	habits, err := s.habits.List(ctx, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("habit.List: %w", err)
	}
	return habits, nil
}

// Update changes a habit's name, description and color.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.habits.Update(ctx, input.HabitID, userID, input.Name, input.Description, input.Color)
	if err != nil {
		return nil, fmt.Errorf("habit.Update: %w", err)
	}
	return updated, nil
}

// Archive marks a habit as archived. Archiving is idempotent: a habit that is
// already archived keeps its original archive timestamp.
func (s *Service) Archive(ctx context.Context, habitID uuid.UUID) (*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	archived, err := s.habits.Archive(ctx, habitID, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("habit.Archive: %w", err)
	}

	s.log.InfoContext(ctx, "habit archived",
		slog.String("habit_id", habitID.String()))

	return archived, nil
}

// Delete removes a habit and all of its daily logs.
func (s *Service) Delete(ctx context.Context, habitID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.habits.Delete(ctx, habitID, userID); err != nil {
		return fmt.Errorf("habit.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "habit deleted",
		slog.String("habit_id", habitID.String()))

	return nil
}

// Reorder rewrites the display order of the user's habits to match the given
// id sequence. All positions are updated in one transaction; an unknown or
// foreign habit id fails the whole operation.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for pos, id := range input.HabitIDs {
			if err := s.habits.SetDisplayOrder(txCtx, id, userID, pos); err != nil {
				return fmt.Errorf("set order for %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("habit.Reorder: %w", err)
	}
	return nil
}
