package part

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var _ userDirectory = &userDirectoryMock{}

type userDirectoryMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userDirectoryMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userDirectoryMock.GetByIDFunc: method is nil but userDirectory.GetByID was just called")
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

func (mock *userDirectoryMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
