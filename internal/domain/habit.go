package domain

import (
	"time"

	"github.com/google/uuid"
)

// Habit is a user-defined daily goal tracked over time. Habits are soft-hidden
// via Archived rather than deleted; a hard delete cascades to the habit's logs.
type Habit struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  *string
	Color        *string // hex RGB, e.g. "#3498db"
	CreatedAt    time.Time
	Archived     bool
	ArchivedAt   *time.Time // set exactly once, when Archived flips false→true
	DisplayOrder int
}

// DailyLog is one day's completion record for one habit. At most one log
// exists per (HabitID, LogDate); the uniqueness is enforced by the database
// and honored by the upsert path.
type DailyLog struct {
	ID        uuid.UUID
	HabitID   uuid.UUID
	LogDate   time.Time // calendar date, midnight UTC
	Completed bool
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HabitStats is the derived read-only statistics view for one habit.
type HabitStats struct {
	HabitID              uuid.UUID
	CurrentStreak        int
	LongestStreak        int
	TotalCompleted       int
	CompletionPercentage float64
}

// HeatmapDay is one cell of the dense calendar heatmap. Days without a log
// are explicit: Completed is false and Notes is nil.
type HeatmapDay struct {
	Date      time.Time
	Completed bool
	Notes     *string
}
