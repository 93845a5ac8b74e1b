// Package partdoc maps parts to and from the JSON documents stored in
// jsonb columns (part content, attachment lists, history snapshots and
// audit payloads).
package partdoc

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// Attachment is the stored form of domain.AttachmentRef.
type Attachment struct {
	FileID      uuid.UUID `json:"fileId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	FileSize    int64     `json:"fileSize"`
}

// Document is the stored form of a full part snapshot.
type Document struct {
	ID             uuid.UUID            `json:"id"`
	LabName        string               `json:"labName"`
	LabPrefix      string               `json:"labPrefix"`
	LabID          int64                `json:"labId"`
	PersonalName   string               `json:"personalName"`
	PersonalPrefix string               `json:"personalPrefix"`
	PersonalID     int64                `json:"personalId"`
	SampleType     string               `json:"sampleType"`
	Comment        string               `json:"comment"`
	Date           *time.Time           `json:"date,omitempty"`
	Tags           []string             `json:"tags"`
	OwnerID        uuid.UUID            `json:"ownerId"`
	OwnerName      string               `json:"ownerName"`
	Content        domain.ContentFields `json:"content"`
	Attachments    []Attachment         `json:"attachments"`
	HistoryID      *uuid.UUID           `json:"history,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// FromAttachments converts attachment references to their stored form.
func FromAttachments(refs []domain.AttachmentRef) []Attachment {
	out := make([]Attachment, len(refs))
	for i, r := range refs {
		out[i] = Attachment(r)
	}
	return out
}

// ToAttachments converts stored attachments back to references.
func ToAttachments(docs []Attachment) []domain.AttachmentRef {
	out := make([]domain.AttachmentRef, len(docs))
	for i, d := range docs {
		out[i] = domain.AttachmentRef(d)
	}
	return out
}

// FromPart builds the stored document for p.
func FromPart(p domain.Part) Document {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Document{
		ID:             p.ID,
		LabName:        p.LabName,
		LabPrefix:      p.LabPrefix,
		LabID:          p.LabID,
		PersonalName:   p.PersonalName,
		PersonalPrefix: p.PersonalPrefix,
		PersonalID:     p.PersonalID,
		SampleType:     string(p.SampleType),
		Comment:        p.Comment,
		Date:           p.Date,
		Tags:           tags,
		OwnerID:        p.OwnerID,
		OwnerName:      p.OwnerName,
		Content:        p.Content.Flatten(),
		Attachments:    FromAttachments(p.Attachments),
		HistoryID:      p.HistoryID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToPart converts a stored document back to a part. Content fields that do
// not belong to the document's sample type are dropped.
func (d Document) ToPart() domain.Part {
	st := domain.SampleType(d.SampleType)
	return domain.Part{
		ID:             d.ID,
		LabName:        d.LabName,
		LabPrefix:      d.LabPrefix,
		LabID:          d.LabID,
		PersonalName:   d.PersonalName,
		PersonalPrefix: d.PersonalPrefix,
		PersonalID:     d.PersonalID,
		SampleType:     st,
		Comment:        d.Comment,
		Date:           d.Date,
		Tags:           d.Tags,
		OwnerID:        d.OwnerID,
		OwnerName:      d.OwnerName,
		Content:        d.Content.Project(st),
		Attachments:    ToAttachments(d.Attachments),
		HistoryID:      d.HistoryID,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// Marshal encodes p as a JSON document.
func Marshal(p domain.Part) ([]byte, error) {
	b, err := json.Marshal(FromPart(p))
	if err != nil {
		return nil, fmt.Errorf("marshal part %s: %w", p.ID, err)
	}
	return b, nil
}

// Unmarshal decodes a JSON document into a part.
func Unmarshal(b []byte) (domain.Part, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return domain.Part{}, fmt.Errorf("unmarshal part document: %w", err)
	}
	return d.ToPart(), nil
}
