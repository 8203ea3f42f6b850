package habit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
)

// habitRepo defines the habit repository interface needed by habit service.
type habitRepo interface {
	GetByIDAndOwner(ctx context.Context, habitID, userID uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Habit, error)
	Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error)
	Update(ctx context.Context, habitID, userID uuid.UUID, name string, description, color *string) (*domain.Habit, error)
	Archive(ctx context.Context, habitID, userID uuid.UUID, archivedAt time.Time) (*domain.Habit, error)
	SetDisplayOrder(ctx context.Context, habitID, userID uuid.UUID, order int) error
	Delete(ctx context.Context, habitID, userID uuid.UUID) error
}

// logRepo defines the daily log repository interface needed by habit service.
type logRepo interface {
	ListByHabit(ctx context.Context, habitID uuid.UUID) ([]*domain.DailyLog, error)
	ListByHabitInRange(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*domain.DailyLog, error)
}

// txManager defines the transaction manager interface needed by habit service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements habit operations.
type Service struct {
	log    *slog.Logger
	habits habitRepo
	logs   logRepo
	tx     txManager
	now    func() time.Time
}

// NewService creates a new habit service instance.
func NewService(logger *slog.Logger, habits habitRepo, logs logRepo, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "habit"),
		habits: habits,
		logs:   logs,
		tx:     tx,
		now:    time.Now,
	}
}
