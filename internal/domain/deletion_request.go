package domain

import (
	"time"

	"github.com/google/uuid"
)

// PartDeletionRequest marks a part as pending deletion. At most one exists per part.
type PartDeletionRequest struct {
	ID            uuid.UUID
	PartID        uuid.UUID
	RequesterID   uuid.UUID
	RequesterName string
	Reason        string
	CreatedAt     time.Time
}
