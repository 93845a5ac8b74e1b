package domain

import "github.com/google/uuid"

// PartHistory holds prior snapshots of one part, oldest first. It only grows.
type PartHistory struct {
	ID        uuid.UUID
	PartID    uuid.UUID
	Histories []Part
}
