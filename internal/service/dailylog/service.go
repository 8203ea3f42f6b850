package dailylog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
)

// habitRepo defines the habit repository interface needed by dailylog service.
type habitRepo interface {
	GetByIDAndOwner(ctx context.Context, habitID, userID uuid.UUID) (*domain.Habit, error)
}

// logRepo defines the daily log repository interface needed by dailylog service.
type logRepo interface {
	GetByIDAndOwner(ctx context.Context, logID, userID uuid.UUID) (*domain.DailyLog, error)
	GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) (*domain.DailyLog, error)
	ListByHabitInRange(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*domain.DailyLog, error)
	Create(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error)
	Update(ctx context.Context, logID uuid.UUID, completed bool, notes *string, updatedAt time.Time) (*domain.DailyLog, error)
	DeleteByIDAndOwner(ctx context.Context, logID, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by dailylog service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements daily log operations.
type Service struct {
	log    *slog.Logger
	habits habitRepo
	logs   logRepo
	tx     txManager
	now    func() time.Time
}

// NewService creates a new dailylog service instance.
func NewService(logger *slog.Logger, habits habitRepo, logs logRepo, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "dailylog"),
		habits: habits,
		logs:   logs,
		tx:     tx,
		now:    time.Now,
	}
}
