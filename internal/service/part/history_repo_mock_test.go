package part

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	AppendFunc      func(ctx context.Context, snapshot domain.Part) (uuid.UUID, int, error)
	GetByPartIDFunc func(ctx context.Context, partID uuid.UUID) (domain.PartHistory, error)

	calls struct {
		Append []struct {
			Ctx      context.Context
			Snapshot domain.Part
		}
		GetByPartID []struct {
			Ctx    context.Context
			PartID uuid.UUID
		}
	}
	lockAppend      sync.RWMutex
	lockGetByPartID sync.RWMutex
}

func (mock *historyRepoMock) Append(ctx context.Context, snapshot domain.Part) (uuid.UUID, int, error) {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Snapshot domain.Part
	}{Ctx: ctx, Snapshot: snapshot}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, snapshot)
}

func (mock *historyRepoMock) AppendCalls() []struct {
	Ctx      context.Context
	Snapshot domain.Part
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *historyRepoMock) GetByPartID(ctx context.Context, partID uuid.UUID) (domain.PartHistory, error) {
	if mock.GetByPartIDFunc == nil {
		panic("historyRepoMock.GetByPartIDFunc: method is nil but historyRepo.GetByPartID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PartID uuid.UUID
	}{Ctx: ctx, PartID: partID}
	mock.lockGetByPartID.Lock()
	mock.calls.GetByPartID = append(mock.calls.GetByPartID, callInfo)
	mock.lockGetByPartID.Unlock()
	return mock.GetByPartIDFunc(ctx, partID)
}

func (mock *historyRepoMock) GetByPartIDCalls() []struct {
	Ctx    context.Context
	PartID uuid.UUID
} {
	mock.lockGetByPartID.RLock()
	calls := mock.calls.GetByPartID
	mock.lockGetByPartID.RUnlock()
	return calls
}
