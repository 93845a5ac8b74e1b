package part

import (
	"context"
	"sync"
)

var _ counterRepo = &counterRepoMock{}

type counterRepoMock struct {
	AllocateFunc func(ctx context.Context, name string) (int64, error)

	calls struct {
		Allocate []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockAllocate sync.RWMutex
}

func (mock *counterRepoMock) Allocate(ctx context.Context, name string) (int64, error) {
	if mock.AllocateFunc == nil {
		panic("counterRepoMock.AllocateFunc: method is nil but counterRepo.Allocate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockAllocate.Lock()
	mock.calls.Allocate = append(mock.calls.Allocate, callInfo)
	mock.lockAllocate.Unlock()
	return mock.AllocateFunc(ctx, name)
}

func (mock *counterRepoMock) AllocateCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockAllocate.RLock()
	calls := mock.calls.Allocate
	mock.lockAllocate.RUnlock()
	return calls
}
