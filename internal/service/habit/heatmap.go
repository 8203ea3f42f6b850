package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
	"github.com/tallyapp/tally-backend/pkg/ctxutil"
)

// GetHeatmap returns a dense day-by-day completion view for a habit over the
// inclusive date range [start, end]. Days without a log are reported as not
// completed rather than omitted.
func (s *Service) GetHeatmap(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]domain.HeatmapDay, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.habits.GetByIDAndOwner(ctx, habitID, userID); err != nil {
		return nil, fmt.Errorf("habit.GetHeatmap: %w", err)
	}

	if err := domain.ValidateDateRange(start, end); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByHabitInRange(ctx, habitID, start, end)
	if err != nil {
		return nil, fmt.Errorf("habit.GetHeatmap list logs: %w", err)
	}

	return BuildHeatmap(logs, start, end), nil
}

// BuildHeatmap densifies a sparse log set to one entry per day of the
// inclusive range, in ascending order. The caller is responsible for having
// validated the range and filtered the logs to it.
func BuildHeatmap(logs []*domain.DailyLog, start, end time.Time) []domain.HeatmapDay {
	start, end = domain.Date(start), domain.Date(end)

	byDate := make(map[time.Time]*domain.DailyLog, len(logs))
	for _, l := range logs {
		byDate[domain.Date(l.LogDate)] = l
	}

	days := make([]domain.HeatmapDay, 0, domain.DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := domain.HeatmapDay{Date: d}
		if l, ok := byDate[d]; ok {
			day.Completed = l.Completed
			day.Notes = l.Notes
		}
		days = append(days, day)
	}
	return days
}
