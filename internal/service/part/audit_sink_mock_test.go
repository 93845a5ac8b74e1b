package part

import (
	"sync"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var _ auditSink = &auditSinkMock{}

type auditSinkMock struct {
	RecordFunc func(op domain.LogOperation)

	calls struct {
		Record []struct {
			Op domain.LogOperation
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditSinkMock) Record(op domain.LogOperation) {
	if mock.RecordFunc == nil {
		panic("auditSinkMock.RecordFunc: method is nil but auditSink.Record was just called")
	}
	callInfo := struct {
		Op domain.LogOperation
	}{Op: op}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(op)
}

func (mock *auditSinkMock) RecordCalls() []struct {
	Op domain.LogOperation
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
