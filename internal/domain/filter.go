package domain

import "github.com/google/uuid"

// PartSortField is a column parts can be ordered by.
type PartSortField string

const (
	SortLabName      PartSortField = "labName"
	SortLabID        PartSortField = "labId"
	SortPersonalName PartSortField = "personalName"
	SortPersonalID   PartSortField = "personalId"
	SortSampleType   PartSortField = "sampleType"
	SortComment      PartSortField = "comment"
	SortDate         PartSortField = "date"
	SortCreatedAt    PartSortField = "createdAt"
	SortUpdatedAt    PartSortField = "updatedAt"
	SortOwnerName    PartSortField = "ownerName"
)

func (f PartSortField) String() string { return string(f) }

func (f PartSortField) IsValid() bool {
	switch f {
	case SortLabName, SortLabID, SortPersonalName, SortPersonalID, SortSampleType,
		SortComment, SortDate, SortCreatedAt, SortUpdatedAt, SortOwnerName:
		return true
	}
	return false
}

// PartFilter selects, orders and pages parts.
type PartFilter struct {
	SampleType *SampleType
	OwnerID    *uuid.UUID
	SortBy     PartSortField
	Desc       bool
	Skip       int
	Limit      int
}

// CountFilter selects parts to count.
type CountFilter struct {
	SampleType *SampleType
	OwnerID    *uuid.UUID
}

// DeletionRequestFilter pages deletion requests.
type DeletionRequestFilter struct {
	Skip  int
	Limit int
}
