package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Part is a tracked laboratory sample.
type Part struct {
	ID uuid.UUID

	LabName   string
	LabPrefix string
	LabID     int64

	PersonalName   string
	PersonalPrefix string
	PersonalID     int64

	SampleType SampleType
	Comment    string
	Date       *time.Time
	Tags       []string

	OwnerID   uuid.UUID
	OwnerName string

	Content     Content
	Attachments []AttachmentRef
	HistoryID   *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID created the part.
func (p *Part) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// OlderThan reports whether the part was created more than window before now.
func (p *Part) OlderThan(window time.Duration, now time.Time) bool {
	return now.Sub(p.CreatedAt) > window
}

// Clone returns a deep copy suitable for storing as a history snapshot.
func (p *Part) Clone() Part {
	c := *p
	c.Tags = cloneStrings(p.Tags)
	if p.Date != nil {
		d := *p.Date
		c.Date = &d
	}
	if p.HistoryID != nil {
		h := *p.HistoryID
		c.HistoryID = &h
	}
	if p.Attachments != nil {
		c.Attachments = make([]AttachmentRef, len(p.Attachments))
		copy(c.Attachments, p.Attachments)
	}
	c.Content = p.Content.Flatten().clone().Project(p.SampleType)
	return c
}

// CounterName returns the counter that numbers parts of type t under prefix,
// e.g. "YC" + bacterium = "YCe".
func CounterName(prefix string, t SampleType) string {
	return prefix + t.Letter()
}

// FormatName derives the display name of a part from its counter prefix and id.
func FormatName(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func (f ContentFields) clone() ContentFields {
	f.Markers = cloneStrings(f.Markers)
	f.Parents = cloneStrings(f.Parents)
	f.Genotype = cloneStrings(f.Genotype)
	if f.CustomData != nil {
		m := make(map[string]any, len(f.CustomData))
		for k, v := range f.CustomData {
			m[k] = v
		}
		f.CustomData = m
	}
	return f
}
