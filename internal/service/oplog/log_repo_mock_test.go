package oplog

import (
	"context"
	"sync"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc func(ctx context.Context, op domain.LogOperation) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Op  domain.LogOperation
		}
	}
	lockCreate sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, op domain.LogOperation) error {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Op  domain.LogOperation
	}{Ctx: ctx, Op: op}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, op)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Op  domain.LogOperation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
