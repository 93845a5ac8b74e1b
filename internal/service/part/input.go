package part

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// AttachmentInput is one entry of a submitted attachment list. It either
// references an existing attachment by FileID or carries new content.
type AttachmentInput struct {
	FileID      *uuid.UUID
	FileName    string
	ContentType string
	FileSize    int64
	Content     string // base64, optionally with a data URI prefix
}

// CreateInput holds the parameters for creating a part.
type CreateInput struct {
	SampleType  domain.SampleType
	Comment     string
	Date        *time.Time
	Tags        []string
	Content     domain.ContentFields
	Attachments []AttachmentInput
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.SampleType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sampleType", Message: "must be one of bacterium, primer, yeast, other"})
	}
	errs = append(errs, validateAttachments(i.Attachments)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a part. Scalar fields
// replace the stored values, so a zero value clears the field.
type UpdateInput struct {
	PartID      uuid.UUID
	Comment     string
	Date        *time.Time
	Tags        []string
	Content     domain.ContentFields
	Attachments []AttachmentInput
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.PartID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateAttachments(i.Attachments)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateAttachments checks the shape of each entry. Whether referenced
// ids exist is checked later against storage.
func validateAttachments(in []AttachmentInput) []domain.FieldError {
	var errs []domain.FieldError
	for idx, a := range in {
		if a.FileID != nil {
			continue
		}
		if a.Content == "" || a.FileName == "" || a.ContentType == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("attachments[%d]", idx),
				Message: "needs fileId or content, fileName and contentType",
			})
		}
		if a.FileSize < 0 {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("attachments[%d].fileSize", idx),
				Message: "must not be negative",
			})
		}
	}
	return errs
}

// RequestDeletionInput holds the parameters for asking an administrator to
// delete a part.
type RequestDeletionInput struct {
	PartID uuid.UUID
	Reason string
}

// Validate checks all fields and collects all errors.
func (i RequestDeletionInput) Validate() error {
	var errs []domain.FieldError

	if i.PartID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(i.Reason) > 1000 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
