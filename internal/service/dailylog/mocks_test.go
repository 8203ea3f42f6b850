package dailylog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
)

var _ habitRepo = &habitRepoMock{}

type habitRepoMock struct {
	GetByIDAndOwnerFunc func(ctx context.Context, habitID, userID uuid.UUID) (*domain.Habit, error)

	calls struct {
		GetByIDAndOwner []struct {
			Ctx     context.Context
			HabitID uuid.UUID
			UserID  uuid.UUID
		}
	}
	lockGetByIDAndOwner sync.RWMutex
}

func (mock *habitRepoMock) GetByIDAndOwner(ctx context.Context, habitID, userID uuid.UUID) (*domain.Habit, error) {
	if mock.GetByIDAndOwnerFunc == nil {
		panic("habitRepoMock.GetByIDAndOwnerFunc: method is nil but habitRepo.GetByIDAndOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		HabitID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, HabitID: habitID, UserID: userID}
	mock.lockGetByIDAndOwner.Lock()
	mock.calls.GetByIDAndOwner = append(mock.calls.GetByIDAndOwner, callInfo)
	mock.lockGetByIDAndOwner.Unlock()
	return mock.GetByIDAndOwnerFunc(ctx, habitID, userID)
}

func (mock *habitRepoMock) GetByIDAndOwnerCalls() []struct {
	Ctx     context.Context
	HabitID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockGetByIDAndOwner.RLock()
	calls := mock.calls.GetByIDAndOwner
	mock.lockGetByIDAndOwner.RUnlock()
	return calls
}

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	GetByIDAndOwnerFunc    func(ctx context.Context, logID, userID uuid.UUID) (*domain.DailyLog, error)
	GetByHabitAndDateFunc  func(ctx context.Context, habitID uuid.UUID, date time.Time) (*domain.DailyLog, error)
	ListByHabitInRangeFunc func(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*domain.DailyLog, error)
	CreateFunc             func(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error)
	UpdateFunc             func(ctx context.Context, logID uuid.UUID, completed bool, notes *string, updatedAt time.Time) (*domain.DailyLog, error)
	DeleteByIDAndOwnerFunc func(ctx context.Context, logID, userID uuid.UUID) error

	calls struct {
		GetByIDAndOwner []struct {
			Ctx    context.Context
			LogID  uuid.UUID
			UserID uuid.UUID
		}
		GetByHabitAndDate []struct {
			Ctx     context.Context
			HabitID uuid.UUID
			Date    time.Time
		}
		ListByHabitInRange []struct {
			Ctx     context.Context
			HabitID uuid.UUID
			Start   time.Time
			End     time.Time
		}
		Create []struct {
			Ctx context.Context
			L   *domain.DailyLog
		}
		Update []struct {
			Ctx       context.Context
			LogID     uuid.UUID
			Completed bool
			Notes     *string
			UpdatedAt time.Time
		}
		DeleteByIDAndOwner []struct {
			Ctx    context.Context
			LogID  uuid.UUID
			UserID uuid.UUID
		}
	}
	lockGetByIDAndOwner    sync.RWMutex
	lockGetByHabitAndDate  sync.RWMutex
	lockListByHabitInRange sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdate             sync.RWMutex
	lockDeleteByIDAndOwner sync.RWMutex
}

func (mock *logRepoMock) GetByIDAndOwner(ctx context.Context, logID, userID uuid.UUID) (*domain.DailyLog, error) {
	if mock.GetByIDAndOwnerFunc == nil {
		panic("logRepoMock.GetByIDAndOwnerFunc: method is nil but logRepo.GetByIDAndOwner was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LogID  uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, LogID: logID, UserID: userID}
	mock.lockGetByIDAndOwner.Lock()
	mock.calls.GetByIDAndOwner = append(mock.calls.GetByIDAndOwner, callInfo)
	mock.lockGetByIDAndOwner.Unlock()
	return mock.GetByIDAndOwnerFunc(ctx, logID, userID)
}

func (mock *logRepoMock) GetByIDAndOwnerCalls() []struct {
	Ctx    context.Context
	LogID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockGetByIDAndOwner.RLock()
	calls := mock.calls.GetByIDAndOwner
	mock.lockGetByIDAndOwner.RUnlock()
	return calls
}

func (mock *logRepoMock) GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) (*domain.DailyLog, error) {
	if mock.GetByHabitAndDateFunc == nil {
		panic("logRepoMock.GetByHabitAndDateFunc: method is nil but logRepo.GetByHabitAndDate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		HabitID uuid.UUID
		Date    time.Time
	}{Ctx: ctx, HabitID: habitID, Date: date}
	mock.lockGetByHabitAndDate.Lock()
	mock.calls.GetByHabitAndDate = append(mock.calls.GetByHabitAndDate, callInfo)
	mock.lockGetByHabitAndDate.Unlock()
	return mock.GetByHabitAndDateFunc(ctx, habitID, date)
}

func (mock *logRepoMock) GetByHabitAndDateCalls() []struct {
	Ctx     context.Context
	HabitID uuid.UUID
	Date    time.Time
} {
	mock.lockGetByHabitAndDate.RLock()
	calls := mock.calls.GetByHabitAndDate
	mock.lockGetByHabitAndDate.RUnlock()
	return calls
}

func (mock *logRepoMock) ListByHabitInRange(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*domain.DailyLog, error) {
	if mock.ListByHabitInRangeFunc == nil {
		panic("logRepoMock.ListByHabitInRangeFunc: method is nil but logRepo.ListByHabitInRange was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		HabitID uuid.UUID
		Start   time.Time
		End     time.Time
	}{Ctx: ctx, HabitID: habitID, Start: start, End: end}
	mock.lockListByHabitInRange.Lock()
	mock.calls.ListByHabitInRange = append(mock.calls.ListByHabitInRange, callInfo)
	mock.lockListByHabitInRange.Unlock()
	return mock.ListByHabitInRangeFunc(ctx, habitID, start, end)
}

func (mock *logRepoMock) ListByHabitInRangeCalls() []struct {
	Ctx     context.Context
	HabitID uuid.UUID
	Start   time.Time
	End     time.Time
} {
	mock.lockListByHabitInRange.RLock()
	calls := mock.calls.ListByHabitInRange
	mock.lockListByHabitInRange.RUnlock()
	return calls
}

func (mock *logRepoMock) Create(ctx context.Context, l *domain.DailyLog) (*domain.DailyLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.DailyLog
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.DailyLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) Update(ctx context.Context, logID uuid.UUID, completed bool, notes *string, updatedAt time.Time) (*domain.DailyLog, error) {
	if mock.UpdateFunc == nil {
		panic("logRepoMock.UpdateFunc: method is nil but logRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LogID     uuid.UUID
		Completed bool
		Notes     *string
		UpdatedAt time.Time
	}{Ctx: ctx, LogID: logID, Completed: completed, Notes: notes, UpdatedAt: updatedAt}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, logID, completed, notes, updatedAt)
}

func (mock *logRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	LogID     uuid.UUID
	Completed bool
	Notes     *string
	UpdatedAt time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *logRepoMock) DeleteByIDAndOwner(ctx context.Context, logID, userID uuid.UUID) error {
	if mock.DeleteByIDAndOwnerFunc == nil {
		panic("logRepoMock.DeleteByIDAndOwnerFunc: method is nil but logRepo.DeleteByIDAndOwner was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LogID  uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, LogID: logID, UserID: userID}
	mock.lockDeleteByIDAndOwner.Lock()
	mock.calls.DeleteByIDAndOwner = append(mock.calls.DeleteByIDAndOwner, callInfo)
	mock.lockDeleteByIDAndOwner.Unlock()
	return mock.DeleteByIDAndOwnerFunc(ctx, logID, userID)
}

func (mock *logRepoMock) DeleteByIDAndOwnerCalls() []struct {
	Ctx    context.Context
	LogID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockDeleteByIDAndOwner.RLock()
	calls := mock.calls.DeleteByIDAndOwner
	mock.lockDeleteByIDAndOwner.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
