package part

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var _ deletionRepo = &deletionRepoMock{}

type deletionRepoMock struct {
	CreateFunc         func(ctx context.Context, req domain.PartDeletionRequest) (domain.PartDeletionRequest, error)
	DeleteByPartIDFunc func(ctx context.Context, partID uuid.UUID) error
	ListFunc           func(ctx context.Context, f domain.DeletionRequestFilter) ([]domain.PartDeletionRequest, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Req domain.PartDeletionRequest
		}
		DeleteByPartID []struct {
			Ctx    context.Context
			PartID uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.DeletionRequestFilter
		}
	}
	lockCreate         sync.RWMutex
	lockDeleteByPartID sync.RWMutex
	lockList           sync.RWMutex
}

func (mock *deletionRepoMock) Create(ctx context.Context, req domain.PartDeletionRequest) (domain.PartDeletionRequest, error) {
	if mock.CreateFunc == nil {
		panic("deletionRepoMock.CreateFunc: method is nil but deletionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.PartDeletionRequest
	}{Ctx: ctx, Req: req}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *deletionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Req domain.PartDeletionRequest
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *deletionRepoMock) DeleteByPartID(ctx context.Context, partID uuid.UUID) error {
	if mock.DeleteByPartIDFunc == nil {
		panic("deletionRepoMock.DeleteByPartIDFunc: method is nil but deletionRepo.DeleteByPartID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PartID uuid.UUID
	}{Ctx: ctx, PartID: partID}
	mock.lockDeleteByPartID.Lock()
	mock.calls.DeleteByPartID = append(mock.calls.DeleteByPartID, callInfo)
	mock.lockDeleteByPartID.Unlock()
	return mock.DeleteByPartIDFunc(ctx, partID)
}

func (mock *deletionRepoMock) DeleteByPartIDCalls() []struct {
	Ctx    context.Context
	PartID uuid.UUID
} {
	mock.lockDeleteByPartID.RLock()
	calls := mock.calls.DeleteByPartID
	mock.lockDeleteByPartID.RUnlock()
	return calls
}

func (mock *deletionRepoMock) List(ctx context.Context, f domain.DeletionRequestFilter) ([]domain.PartDeletionRequest, error) {
	if mock.ListFunc == nil {
		panic("deletionRepoMock.ListFunc: method is nil but deletionRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.DeletionRequestFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *deletionRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.DeletionRequestFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
