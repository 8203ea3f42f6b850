package habit

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
	ListFunc            func(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Habit, error)
	CreateFunc          func(ctx context.Context, h *domain.Habit) (*domain.Habit, error)
	UpdateFunc          func(ctx context.Context, habitID, userID uuid.UUID, name string, description, color *string) (*domain.Habit, error)
	ArchiveFunc         func(ctx context.Context, habitID, userID uuid.UUID, archivedAt time.Time) (*domain.Habit, error)
	SetDisplayOrderFunc func(ctx context.Context, habitID, userID uuid.UUID, order int) error
	DeleteFunc          func(ctx context.Context, habitID, userID uuid.UUID) error

	calls struct {
		GetByIDAndOwner []struct {
			Ctx     context.Context
			HabitID uuid.UUID
			UserID  uuid.UUID
		}
		List []struct {
			Ctx             context.Context
			UserID          uuid.UUID
			IncludeArchived bool
		}
		Create []struct {
			Ctx context.Context
			H   *domain.Habit
		}
		Update []struct {
			Ctx         context.Context
			HabitID     uuid.UUID
			UserID      uuid.UUID
			Name        string
			Description *string
			Color       *string
		}
		Archive []struct {
			Ctx        context.Context
			HabitID    uuid.UUID
			UserID     uuid.UUID
			ArchivedAt time.Time
		}
		SetDisplayOrder []struct {
			Ctx     context.Context
			HabitID uuid.UUID
			UserID  uuid.UUID
			Order   int
		}
		Delete []struct {
			Ctx     context.Context
			HabitID uuid.UUID
			UserID  uuid.UUID
		}
	}
	lockGetByIDAndOwner sync.RWMutex
	lockList            sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockArchive         sync.RWMutex
	lockSetDisplayOrder sync.RWMutex
	lockDelete          sync.RWMutex
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

func (mock *habitRepoMock) List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Habit, error) {
	if mock.ListFunc == nil {
		panic("habitRepoMock.ListFunc: method is nil but habitRepo.List was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		UserID          uuid.UUID
		IncludeArchived bool
	}{Ctx: ctx, UserID: userID, IncludeArchived: includeArchived}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, includeArchived)
}

func (mock *habitRepoMock) ListCalls() []struct {
	Ctx             context.Context
	UserID          uuid.UUID
	IncludeArchived bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *habitRepoMock) Create(ctx context.Context, h *domain.Habit) (*domain.Habit, error) {
	if mock.CreateFunc == nil {
		panic("habitRepoMock.CreateFunc: method is nil but habitRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		H   *domain.Habit
	}{Ctx: ctx, H: h}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, h)
}

func (mock *habitRepoMock) CreateCalls() []struct {
	Ctx context.Context
	H   *domain.Habit
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *habitRepoMock) Update(ctx context.Context, habitID, userID uuid.UUID, name string, description, color *string) (*domain.Habit, error) {
	if mock.UpdateFunc == nil {
		panic("habitRepoMock.UpdateFunc: method is nil but habitRepo.Update was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HabitID     uuid.UUID
		UserID      uuid.UUID
		Name        string
		Description *string
		Color       *string
	}{Ctx: ctx, HabitID: habitID, UserID: userID, Name: name, Description: description, Color: color}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, habitID, userID, name, description, color)
}

func (mock *habitRepoMock) UpdateCalls() []struct {
	Ctx         context.Context
	HabitID     uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Color       *string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *habitRepoMock) Archive(ctx context.Context, habitID, userID uuid.UUID, archivedAt time.Time) (*domain.Habit, error) {
	if mock.ArchiveFunc == nil {
		panic("habitRepoMock.ArchiveFunc: method is nil but habitRepo.Archive was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		HabitID    uuid.UUID
		UserID     uuid.UUID
		ArchivedAt time.Time
	}{Ctx: ctx, HabitID: habitID, UserID: userID, ArchivedAt: archivedAt}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, habitID, userID, archivedAt)
}

func (mock *habitRepoMock) ArchiveCalls() []struct {
	Ctx        context.Context
	HabitID    uuid.UUID
	UserID     uuid.UUID
	ArchivedAt time.Time
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *habitRepoMock) SetDisplayOrder(ctx context.Context, habitID, userID uuid.UUID, order int) error {
	if mock.SetDisplayOrderFunc == nil {
		panic("habitRepoMock.SetDisplayOrderFunc: method is nil but habitRepo.SetDisplayOrder was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		HabitID uuid.UUID
		UserID  uuid.UUID
		Order   int
	}{Ctx: ctx, HabitID: habitID, UserID: userID, Order: order}
	mock.lockSetDisplayOrder.Lock()
	mock.calls.SetDisplayOrder = append(mock.calls.SetDisplayOrder, callInfo)
	mock.lockSetDisplayOrder.Unlock()
	return mock.SetDisplayOrderFunc(ctx, habitID, userID, order)
}

func (mock *habitRepoMock) SetDisplayOrderCalls() []struct {
	Ctx     context.Context
	HabitID uuid.UUID
	UserID  uuid.UUID
	Order   int
} {
	mock.lockSetDisplayOrder.RLock()
	calls := mock.calls.SetDisplayOrder
	mock.lockSetDisplayOrder.RUnlock()
	return calls
}

func (mock *habitRepoMock) Delete(ctx context.Context, habitID, userID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("habitRepoMock.DeleteFunc: method is nil but habitRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		HabitID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, HabitID: habitID, UserID: userID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, habitID, userID)
}

func (mock *habitRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	HabitID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
