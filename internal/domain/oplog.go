package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogOperation is an audit record of a mutating operation on a part.
type LogOperation struct {
	ID           uuid.UUID
	OperatorID   uuid.UUID
	OperatorName string
	Type         OperationType
	Level        int
	SourceIP     string
	TimeStamp    time.Time
	Part         *Part
}
