package part

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var _ partRepo = &partRepoMock{}

type partRepoMock struct {
	CreateFunc  func(ctx context.Context, p domain.Part) error
	UpdateFunc  func(ctx context.Context, p domain.Part) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Part, error)
	FindFunc    func(ctx context.Context, f domain.PartFilter) ([]domain.Part, error)
	CountFunc   func(ctx context.Context, f domain.CountFilter) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Part
		}
		Update []struct {
			Ctx context.Context
			P   domain.Part
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Find []struct {
			Ctx context.Context
			F   domain.PartFilter
		}
		Count []struct {
			Ctx context.Context
			F   domain.CountFilter
		}
	}
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockFind    sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *partRepoMock) Create(ctx context.Context, p domain.Part) error {
	if mock.CreateFunc == nil {
		panic("partRepoMock.CreateFunc: method is nil but partRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Part
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *partRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Part
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *partRepoMock) Update(ctx context.Context, p domain.Part) error {
	if mock.UpdateFunc == nil {
		panic("partRepoMock.UpdateFunc: method is nil but partRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Part
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *partRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.Part
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *partRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("partRepoMock.DeleteFunc: method is nil but partRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *partRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *partRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Part, error) {
	if mock.GetByIDFunc == nil {
		panic("partRepoMock.GetByIDFunc: method is nil but partRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *partRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *partRepoMock) Find(ctx context.Context, f domain.PartFilter) ([]domain.Part, error) {
	if mock.FindFunc == nil {
		panic("partRepoMock.FindFunc: method is nil but partRepo.Find was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PartFilter
	}{Ctx: ctx, F: f}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f)
}

func (mock *partRepoMock) FindCalls() []struct {
	Ctx context.Context
	F   domain.PartFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *partRepoMock) Count(ctx context.Context, f domain.CountFilter) (int64, error) {
	if mock.CountFunc == nil {
		panic("partRepoMock.CountFunc: method is nil but partRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CountFilter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *partRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.CountFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
