package dailylog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
	"github.com/tallyapp/tally-backend/pkg/ctxutil"
)

// Upsert creates or updates the log for (habit, date). Repeated calls with
// the same key never produce a second row: when a log already exists its
// completed flag and notes are replaced in place and the id stays stable.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.DailyLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	if _, err := s.habits.GetByIDAndOwner(ctx, input.HabitID, userID); err != nil {
		return nil, fmt.Errorf("dailylog.Upsert: %w", err)
	}

	var result *domain.DailyLog
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.upsertOne(txCtx, input)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("dailylog.Upsert: %w", err)
	}

	s.log.InfoContext(ctx, "log upserted",
		slog.String("habit_id", input.HabitID.String()),
		slog.String("date", domain.FormatDate(input.Date)))

	return result, nil
}

// UpsertBatch applies an ordered list of upserts in one transaction and
// returns the resulting records in request order. Any failing entry rolls
// back the whole batch; partial success is never exposed. The caller must own
// every referenced habit.
func (s *Service) UpsertBatch(ctx context.Context, input BatchInput) ([]*domain.DailyLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	// Ownership is checked once per distinct habit, outside the write tx.
	seen := make(map[uuid.UUID]struct{})
	for _, e := range input.Entries {
		if _, ok := seen[e.HabitID]; ok {
			continue
		}
		if _, err := s.habits.GetByIDAndOwner(ctx, e.HabitID, userID); err != nil {
			return nil, fmt.Errorf("dailylog.UpsertBatch habit %s: %w", e.HabitID, err)
		}
		seen[e.HabitID] = struct{}{}
	}

	results := make([]*domain.DailyLog, len(input.Entries))
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for idx, e := range input.Entries {
			l, err := s.upsertOne(txCtx, e)
			if err != nil {
				return fmt.Errorf("entry %d: %w", idx, err)
			}
			results[idx] = l
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dailylog.UpsertBatch: %w", err)
	}

	s.log.InfoContext(ctx, "batch upserted",
		slog.Int("entries", len(input.Entries)))

	return results, nil
}

// upsertOne is the lookup-then-branch core. The unique (habit, date)
// constraint is the safety net for concurrent writers: an insert that loses
// the race is retried as an update of the row that won.
func (s *Service) upsertOne(ctx context.Context, input UpsertInput) (*domain.DailyLog, error) {
	date := domain.Date(input.Date)

	existing, err := s.logs.GetByHabitAndDate(ctx, input.HabitID, date)
	if err == nil {
		return s.logs.Update(ctx, existing.ID, input.Completed, input.Notes, s.now())
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup log: %w", err)
	}

	now := s.now()
	created, err := s.logs.Create(ctx, &domain.DailyLog{
		ID:        uuid.New(),
		HabitID:   input.HabitID,
		LogDate:   date,
		Completed: input.Completed,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("create log: %w", err)
	}

	// Someone else created the row between our lookup and insert.
	existing, err = s.logs.GetByHabitAndDate(ctx, input.HabitID, date)
	if err != nil {
		return nil, fmt.Errorf("relookup log: %w", err)
	}
	return s.logs.Update(ctx, existing.ID, input.Completed, input.Notes, s.now())
}
