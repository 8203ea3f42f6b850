package dailylog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
	"github.com/tallyapp/tally-backend/pkg/ctxutil"
)

// Get returns a single log owned by the authenticated user.
func (s *Service) Get(ctx context.Context, logID uuid.UUID) (*domain.DailyLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.logs.GetByIDAndOwner(ctx, logID, userID)
	if err != nil {
		return nil, fmt.Errorf("dailylog.Get: %w", err)
	}
	return l, nil
}

// ListRange returns a habit's logs within the inclusive [start, end] range in
// ascending date order. Both bounds are required and the span is capped at
// one year, same as heatmap requests.
func (s *Service) ListRange(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*domain.DailyLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("missing range bound: %w", domain.ErrInvalidDateRange)
	}
	start, end = domain.Date(start), domain.Date(end)
	if err := domain.ValidateDateRange(start, end); err != nil {
		return nil, err
	}

	if _, err := s.habits.GetByIDAndOwner(ctx, habitID, userID); err != nil {
		return nil, fmt.Errorf("dailylog.ListRange: %w", err)
	}

	logs, err := s.logs.ListByHabitInRange(ctx, habitID, start, end)
	if err != nil {
		return nil, fmt.Errorf("dailylog.ListRange: %w", err)
	}
	return logs, nil
}

// Delete removes a single log owned by the authenticated user.
func (s *Service) Delete(ctx context.Context, logID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.logs.DeleteByIDAndOwner(ctx, logID, userID); err != nil {
		return fmt.Errorf("dailylog.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "log deleted", slog.String("log_id", logID.String()))
	return nil
}
