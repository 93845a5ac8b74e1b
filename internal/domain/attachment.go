package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentRef is how a part points at a stored file. It never carries content.
type AttachmentRef struct {
	FileID      uuid.UUID
	FileName    string
	ContentType string
	FileSize    int64
}

// FileData is an immutable stored attachment.
type FileData struct {
	ID          uuid.UUID
	FileName    string
	ContentType string
	FileSize    int64
	Data        []byte
	CreatedAt   time.Time
}

// Ref returns the reference a part stores for this file.
func (f *FileData) Ref() AttachmentRef {
	return AttachmentRef{
		FileID:      f.ID,
		FileName:    f.FileName,
		ContentType: f.ContentType,
		FileSize:    f.FileSize,
	}
}
