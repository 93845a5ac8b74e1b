package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
	"github.com/heartmarshall/partsdb-backend/internal/service/part"
)

var _ partService = &partServiceMock{}

type partServiceMock struct {
	CountFunc                func(ctx context.Context, f domain.CountFilter) (int64, error)
	CreateFunc               func(ctx context.Context, input part.CreateInput) (domain.Part, error)
	DeleteFunc               func(ctx context.Context, id uuid.UUID) (domain.Part, error)
	GetFunc                  func(ctx context.Context, id uuid.UUID) (domain.Part, error)
	GetAttachmentFunc        func(ctx context.Context, id uuid.UUID) (domain.FileData, error)
	GetHistoryFunc           func(ctx context.Context, partID uuid.UUID) (domain.PartHistory, error)
	ListFunc                 func(ctx context.Context, f domain.PartFilter) ([]domain.Part, error)
	ListDeletionRequestsFunc func(ctx context.Context, f domain.DeletionRequestFilter) ([]domain.PartDeletionRequest, error)
	RequestDeletionFunc      func(ctx context.Context, input part.RequestDeletionInput) (domain.PartDeletionRequest, error)
	UpdateFunc               func(ctx context.Context, input part.UpdateInput) (domain.Part, error)

	calls struct {
		Count []struct {
			Ctx context.Context
			F   domain.CountFilter
		}
		Create []struct {
			Ctx   context.Context
			Input part.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetAttachment []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetHistory []struct {
			Ctx    context.Context
			PartID uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.PartFilter
		}
		ListDeletionRequests []struct {
			Ctx context.Context
			F   domain.DeletionRequestFilter
		}
		RequestDeletion []struct {
			Ctx   context.Context
			Input part.RequestDeletionInput
		}
		Update []struct {
			Ctx   context.Context
			Input part.UpdateInput
		}
	}
	lockCount                sync.RWMutex
	lockCreate               sync.RWMutex
	lockDelete               sync.RWMutex
	lockGet                  sync.RWMutex
	lockGetAttachment        sync.RWMutex
	lockGetHistory           sync.RWMutex
	lockList                 sync.RWMutex
	lockListDeletionRequests sync.RWMutex
	lockRequestDeletion      sync.RWMutex
	lockUpdate               sync.RWMutex
}

func (mock *partServiceMock) Count(ctx context.Context, f domain.CountFilter) (int64, error) {
	if mock.CountFunc == nil {
		panic("partServiceMock.CountFunc: method is nil but partService.Count was just called")
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

func (mock *partServiceMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.CountFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *partServiceMock) Create(ctx context.Context, input part.CreateInput) (domain.Part, error) {
	if mock.CreateFunc == nil {
		panic("partServiceMock.CreateFunc: method is nil but partService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input part.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *partServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input part.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *partServiceMock) Delete(ctx context.Context, id uuid.UUID) (domain.Part, error) {
	if mock.DeleteFunc == nil {
		panic("partServiceMock.DeleteFunc: method is nil but partService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *partServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *partServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Part, error) {
	if mock.GetFunc == nil {
		panic("partServiceMock.GetFunc: method is nil but partService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *partServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *partServiceMock) GetAttachment(ctx context.Context, id uuid.UUID) (domain.FileData, error) {
	if mock.GetAttachmentFunc == nil {
		panic("partServiceMock.GetAttachmentFunc: method is nil but partService.GetAttachment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetAttachment.Lock()
	mock.calls.GetAttachment = append(mock.calls.GetAttachment, callInfo)
	mock.lockGetAttachment.Unlock()
	return mock.GetAttachmentFunc(ctx, id)
}

func (mock *partServiceMock) GetAttachmentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetAttachment.RLock()
	calls := mock.calls.GetAttachment
	mock.lockGetAttachment.RUnlock()
	return calls
}

func (mock *partServiceMock) GetHistory(ctx context.Context, partID uuid.UUID) (domain.PartHistory, error) {
	if mock.GetHistoryFunc == nil {
		panic("partServiceMock.GetHistoryFunc: method is nil but partService.GetHistory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PartID uuid.UUID
	}{Ctx: ctx, PartID: partID}
	mock.lockGetHistory.Lock()
	mock.calls.GetHistory = append(mock.calls.GetHistory, callInfo)
	mock.lockGetHistory.Unlock()
	return mock.GetHistoryFunc(ctx, partID)
}

func (mock *partServiceMock) GetHistoryCalls() []struct {
	Ctx    context.Context
	PartID uuid.UUID
} {
	mock.lockGetHistory.RLock()
	calls := mock.calls.GetHistory
	mock.lockGetHistory.RUnlock()
	return calls
}

func (mock *partServiceMock) List(ctx context.Context, f domain.PartFilter) ([]domain.Part, error) {
	if mock.ListFunc == nil {
		panic("partServiceMock.ListFunc: method is nil but partService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PartFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *partServiceMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.PartFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *partServiceMock) ListDeletionRequests(ctx context.Context, f domain.DeletionRequestFilter) ([]domain.PartDeletionRequest, error) {
	if mock.ListDeletionRequestsFunc == nil {
		panic("partServiceMock.ListDeletionRequestsFunc: method is nil but partService.ListDeletionRequests was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.DeletionRequestFilter
	}{Ctx: ctx, F: f}
	mock.lockListDeletionRequests.Lock()
	mock.calls.ListDeletionRequests = append(mock.calls.ListDeletionRequests, callInfo)
	mock.lockListDeletionRequests.Unlock()
	return mock.ListDeletionRequestsFunc(ctx, f)
}

func (mock *partServiceMock) ListDeletionRequestsCalls() []struct {
	Ctx context.Context
	F   domain.DeletionRequestFilter
} {
	mock.lockListDeletionRequests.RLock()
	calls := mock.calls.ListDeletionRequests
	mock.lockListDeletionRequests.RUnlock()
	return calls
}

func (mock *partServiceMock) RequestDeletion(ctx context.Context, input part.RequestDeletionInput) (domain.PartDeletionRequest, error) {
	if mock.RequestDeletionFunc == nil {
		panic("partServiceMock.RequestDeletionFunc: method is nil but partService.RequestDeletion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input part.RequestDeletionInput
	}{Ctx: ctx, Input: input}
	mock.lockRequestDeletion.Lock()
	mock.calls.RequestDeletion = append(mock.calls.RequestDeletion, callInfo)
	mock.lockRequestDeletion.Unlock()
	return mock.RequestDeletionFunc(ctx, input)
}

func (mock *partServiceMock) RequestDeletionCalls() []struct {
	Ctx   context.Context
	Input part.RequestDeletionInput
} {
	mock.lockRequestDeletion.RLock()
	calls := mock.calls.RequestDeletion
	mock.lockRequestDeletion.RUnlock()
	return calls
}

func (mock *partServiceMock) Update(ctx context.Context, input part.UpdateInput) (domain.Part, error) {
	if mock.UpdateFunc == nil {
		panic("partServiceMock.UpdateFunc: method is nil but partService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input part.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *partServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input part.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
