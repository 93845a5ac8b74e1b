package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
	"github.com/heartmarshall/partsdb-backend/internal/service/part"
)

// stringList accepts either a JSON array of strings or a single
// ";"-separated string.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
			return nil
		}
		*l = strings.Split(s, ";")
		return nil
	}
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*l = items
	return nil
}

// flexDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates. An empty
// string or null leaves the date unset.
type flexDate struct {
	t *time.Time
}

func (d *flexDate) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == nil || *s == "" {
		d.t = nil
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, *s); err == nil {
			t = t.UTC()
			d.t = &t
			return nil
		}
	}
	return fmt.Errorf("date %q is neither RFC 3339 nor YYYY-MM-DD", *s)
}

// attachmentForm is one submitted attachment. The create form historically
// used name/type/size, the edit form fileName/contentType/fileSize; both
// are accepted.
type attachmentForm struct {
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Type        string `json:"type"`
	FileSize    int64  `json:"fileSize"`
	Size        int64  `json:"size"`
	Content     string `json:"content"`
}

func (a attachmentForm) toInput() (part.AttachmentInput, error) {
	if a.FileID != "" {
		id, err := uuid.Parse(a.FileID)
		if err != nil {
			return part.AttachmentInput{}, fmt.Errorf("fileId %q: %w", a.FileID, part.ErrInvalidAttachment)
		}
		return part.AttachmentInput{FileID: &id}, nil
	}
	return part.AttachmentInput{
		FileName:    firstNonEmpty(a.FileName, a.Name),
		ContentType: firstNonEmpty(a.ContentType, a.Type),
		FileSize:    max(a.FileSize, a.Size),
		Content:     a.Content,
	}, nil
}

// partForm is the flat body of create and update requests.
type partForm struct {
	SampleType         string           `json:"sampleType"`
	Comment            string           `json:"comment"`
	Date               flexDate         `json:"date"`
	Tags               stringList       `json:"tags"`
	PlasmidName        *string          `json:"plasmidName"`
	HostStrain         *string          `json:"hostStrain"`
	Markers            stringList       `json:"markers"`
	Sequence           *string          `json:"sequence"`
	Orientation        *string          `json:"orientation"`
	MeltingTemperature *float64         `json:"meltingTemperature"`
	Concentration      *string          `json:"concentration"`
	Vendor             *string          `json:"vendor"`
	Parents            stringList       `json:"parents"`
	Genotype           stringList       `json:"genotype"`
	PlasmidType        *string          `json:"plasmidType"`
	CustomData         map[string]any   `json:"customData"`
	Attachments        []attachmentForm `json:"attachments"`
}

func (f partForm) content() domain.ContentFields {
	return domain.ContentFields{
		PlasmidName:        f.PlasmidName,
		HostStrain:         f.HostStrain,
		Markers:            f.Markers,
		Sequence:           f.Sequence,
		Orientation:        f.Orientation,
		MeltingTemperature: f.MeltingTemperature,
		Concentration:      f.Concentration,
		Vendor:             f.Vendor,
		Parents:            f.Parents,
		Genotype:           f.Genotype,
		PlasmidType:        f.PlasmidType,
		CustomData:         f.CustomData,
	}
}

func (f partForm) attachments() ([]part.AttachmentInput, error) {
	out := make([]part.AttachmentInput, 0, len(f.Attachments))
	for _, a := range f.Attachments {
		in, err := a.toInput()
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func (f partForm) toCreateInput() (part.CreateInput, error) {
	atts, err := f.attachments()
	if err != nil {
		return part.CreateInput{}, err
	}
	return part.CreateInput{
		SampleType:  domain.SampleType(f.SampleType),
		Comment:     f.Comment,
		Date:        f.Date.t,
		Tags:        f.Tags,
		Content:     f.content(),
		Attachments: atts,
	}, nil
}

func (f partForm) toUpdateInput(id uuid.UUID) (part.UpdateInput, error) {
	atts, err := f.attachments()
	if err != nil {
		return part.UpdateInput{}, err
	}
	return part.UpdateInput{
		PartID:      id,
		Comment:     f.Comment,
		Date:        f.Date.t,
		Tags:        f.Tags,
		Content:     f.content(),
		Attachments: atts,
	}, nil
}

type attachmentResponse struct {
	FileID      uuid.UUID `json:"fileId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	FileSize    int64     `json:"fileSize"`
}

type partResponse struct {
	ID             uuid.UUID            `json:"_id"`
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
	Attachments    []attachmentResponse `json:"attachments"`
	History        *uuid.UUID           `json:"history,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func toPartResponse(p domain.Part) partResponse {
	atts := make([]attachmentResponse, len(p.Attachments))
	for i, a := range p.Attachments {
		atts[i] = attachmentResponse(a)
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return partResponse{
		ID:             p.ID,
		LabName:        p.LabName,
		LabPrefix:      p.LabPrefix,
		LabID:          p.LabID,
		PersonalName:   p.PersonalName,
		PersonalPrefix: p.PersonalPrefix,
		PersonalID:     p.PersonalID,
		SampleType:     p.SampleType.String(),
		Comment:        p.Comment,
		Date:           p.Date,
		Tags:           tags,
		OwnerID:        p.OwnerID,
		OwnerName:      p.OwnerName,
		Content:        p.Content.Flatten(),
		Attachments:    atts,
		History:        p.HistoryID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPartResponses(parts []domain.Part) []partResponse {
	out := make([]partResponse, len(parts))
	for i, p := range parts {
		out[i] = toPartResponse(p)
	}
	return out
}

type historyResponse struct {
	ID        uuid.UUID      `json:"_id"`
	PartID    uuid.UUID      `json:"partId"`
	Histories []partResponse `json:"histories"`
}

type deletionRequestForm struct {
	Reason string `json:"reason"`
}

type deletionRequestResponse struct {
	ID            uuid.UUID `json:"_id"`
	PartID        uuid.UUID `json:"partId"`
	RequesterID   uuid.UUID `json:"requesterId"`
	RequesterName string    `json:"requesterName"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toDeletionRequestResponse(r domain.PartDeletionRequest) deletionRequestResponse {
	return deletionRequestResponse(r)
}

type countResponse struct {
	Count int64 `json:"count"`
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
