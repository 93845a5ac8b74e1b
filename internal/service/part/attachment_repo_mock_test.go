package part

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var _ attachmentRepo = &attachmentRepoMock{}

type attachmentRepoMock struct {
	CreateFunc  func(ctx context.Context, f domain.FileData) (domain.FileData, error)
	GetRefFunc  func(ctx context.Context, id uuid.UUID) (domain.AttachmentRef, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.FileData, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			F   domain.FileData
		}
		GetRef []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetRef  sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *attachmentRepoMock) Create(ctx context.Context, f domain.FileData) (domain.FileData, error) {
	if mock.CreateFunc == nil {
		panic("attachmentRepoMock.CreateFunc: method is nil but attachmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.FileData
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *attachmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   domain.FileData
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *attachmentRepoMock) GetRef(ctx context.Context, id uuid.UUID) (domain.AttachmentRef, error) {
	if mock.GetRefFunc == nil {
		panic("attachmentRepoMock.GetRefFunc: method is nil but attachmentRepo.GetRef was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetRef.Lock()
	mock.calls.GetRef = append(mock.calls.GetRef, callInfo)
	mock.lockGetRef.Unlock()
	return mock.GetRefFunc(ctx, id)
}

func (mock *attachmentRepoMock) GetRefCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetRef.RLock()
	calls := mock.calls.GetRef
	mock.lockGetRef.RUnlock()
	return calls
}

func (mock *attachmentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.FileData, error) {
	if mock.GetByIDFunc == nil {
		panic("attachmentRepoMock.GetByIDFunc: method is nil but attachmentRepo.GetByID was just called")
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

func (mock *attachmentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
