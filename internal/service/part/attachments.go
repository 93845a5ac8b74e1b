package part

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var dataURIPrefix = regexp.MustCompile(`^data:[^,]*;base64,`)

// decodeContent strips an optional data URI prefix and decodes base64.
func decodeContent(content string) ([]byte, error) {
	content = strings.TrimSpace(content)
	if loc := dataURIPrefix.FindStringIndex(content); loc != nil {
		content = content[loc[1]:]
	}
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		// Some browsers omit padding.
		if data, err = base64.RawStdEncoding.DecodeString(content); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAttachment, err)
		}
	}
	return data, nil
}

// resolveAttachments builds the new attachment list in submission order.
// Referenced ids must exist; inline entries are stored as new immutable
// attachments. Any failure aborts the whole list.
func (s *Service) resolveAttachments(ctx context.Context, in []AttachmentInput) ([]domain.AttachmentRef, error) {
	refs := make([]domain.AttachmentRef, 0, len(in))

	for idx, a := range in {
		if a.FileID != nil {
			ref, err := s.attachments.GetRef(ctx, *a.FileID)
			if err != nil {
				if isNotFound(err) {
					return nil, fmt.Errorf("attachments[%d] %s: %w", idx, a.FileID, ErrAttachmentMissing)
				}
				return nil, fmt.Errorf("resolve attachment: %w", err)
			}
			refs = append(refs, ref)
			continue
		}

		if a.Content == "" || a.FileName == "" || a.ContentType == "" {
			return nil, fmt.Errorf("attachments[%d]: %w", idx, ErrInvalidAttachment)
		}

		data, err := decodeContent(a.Content)
		if err != nil {
			return nil, fmt.Errorf("attachments[%d]: %w", idx, err)
		}
		if s.cfg.MaxAttachmentBytes > 0 && int64(len(data)) > s.cfg.MaxAttachmentBytes {
			return nil, fmt.Errorf("attachments[%d] exceeds %d bytes: %w", idx, s.cfg.MaxAttachmentBytes, ErrInvalidAttachment)
		}

		size := a.FileSize
		if size == 0 {
			size = int64(len(data))
		}

		stored, err := s.attachments.Create(ctx, domain.FileData{
			FileName:    a.FileName,
			ContentType: a.ContentType,
			FileSize:    size,
			Data:        data,
		})
		if err != nil {
			return nil, fmt.Errorf("store attachment: %w", err)
		}
		refs = append(refs, stored.Ref())
	}

	return refs, nil
}
