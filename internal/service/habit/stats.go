package habit

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
	"github.com/tallyapp/tally-backend/pkg/ctxutil"
)

// GetStats returns the derived statistics for a habit owned by the
// authenticated user, computed over its full log history.
func (s *Service) GetStats(ctx context.Context, habitID uuid.UUID) (*domain.HabitStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	h, err := s.habits.GetByIDAndOwner(ctx, habitID, userID)
	if err != nil {
		return nil, fmt.Errorf("habit.GetStats: %w", err)
	}

	logs, err := s.logs.ListByHabit(ctx, habitID)
	if err != nil {
		return nil, fmt.Errorf("habit.GetStats list logs: %w", err)
	}

	stats := ComputeStats(logs, h.CreatedAt, s.now())
	stats.HabitID = habitID
	return &stats, nil
}

// ComputeStats derives streaks and completion rate from a habit's log
// history. Logs may arrive in any order; an empty history yields all zeros.
// The function never fails: malformed history degrades to zero values.
func ComputeStats(logs []*domain.DailyLog, habitCreatedAt, today time.Time) domain.HabitStats {
	byDate := make(map[time.Time]*domain.DailyLog, len(logs))
	total := 0
	for _, l := range logs {
		byDate[domain.Date(l.LogDate)] = l
		if l.Completed {
			total++
		}
	}

	today = domain.Date(today)

	return domain.HabitStats{
		CurrentStreak:        currentStreak(byDate, today),
		LongestStreak:        longestStreak(logs),
		TotalCompleted:       total,
		CompletionPercentage: completionPercentage(total, habitCreatedAt, today),
	}
}

// currentStreak counts consecutive completed days ending at the anchor day.
// The anchor is today when today has a completed log, otherwise yesterday.
// Walking backward stops at the first missing or incomplete day, so a gap
// right before the anchor yields 0 no matter how long the earlier run was.
func currentStreak(byDate map[time.Time]*domain.DailyLog, today time.Time) int {
	anchor := today
	if l, ok := byDate[anchor]; !ok || !l.Completed {
		anchor = today.AddDate(0, 0, -1)
	}

	streak := 0
	for d := anchor; ; d = d.AddDate(0, 0, -1) {
		l, ok := byDate[d]
		if !ok || !l.Completed {
			break
		}
		streak++
	}
	return streak
}

// longestStreak scans logs in ascending date order and tracks the longest run
// of day-adjacent completed logs. A completed log that does not extend the
// previous run starts a fresh run of 1; an incomplete log resets the run to 0.
func longestStreak(logs []*domain.DailyLog) int {
	sorted := make([]*domain.DailyLog, len(logs))
	copy(sorted, logs)
	slices.SortFunc(sorted, func(a, b *domain.DailyLog) int {
		return a.LogDate.Compare(b.LogDate)
	})

	longest, run := 0, 0
	var expected time.Time
	haveExpected := false

	for _, l := range sorted {
		d := domain.Date(l.LogDate)
		if !l.Completed {
			run = 0
			haveExpected = false
			continue
		}
		if haveExpected && d.Equal(expected) {
			run++
		} else {
			run = 1
		}
		expected = d.AddDate(0, 0, 1)
		haveExpected = true
		if run > longest {
			longest = run
		}
	}
	return longest
}

// completionPercentage is completed days over days since creation, inclusive
// of both the creation day and today, clamped to [0, 100] and rounded to two
// decimal places.
func completionPercentage(totalCompleted int, habitCreatedAt, today time.Time) float64 {
	days := domain.DaysBetween(habitCreatedAt, today) + 1
	if days <= 0 {
		return 0.0
	}
	pct := float64(totalCompleted) / float64(days) * 100
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*100) / 100
}
