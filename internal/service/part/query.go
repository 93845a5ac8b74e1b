package part

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// Get returns a single part.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Part, error) {
	if _, err := requireActor(ctx); err != nil {
		return domain.Part{}, err
	}

	p, err := s.parts.GetByID(ctx, id)
	if err != nil {
		return domain.Part{}, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// List returns parts matching f. An empty sort means newest lab id first,
// and Limit is capped at the configured page size.
func (s *Service) List(ctx context.Context, f domain.PartFilter) ([]domain.Part, error) {
	if _, err := requireActor(ctx); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	if f.SortBy != "" && !f.SortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "unknown sort field"})
	}
	if f.SampleType != nil && !f.SampleType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown sample type"})
	}
	if f.Skip < 0 {
		errs = append(errs, domain.FieldError{Field: "skip", Message: "must not be negative"})
	}
	if f.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	if f.SortBy == "" {
		f.SortBy = domain.SortLabID
		f.Desc = true
	}
	if s.cfg.MaxPageSize > 0 && (f.Limit == 0 || f.Limit > s.cfg.MaxPageSize) {
		f.Limit = s.cfg.MaxPageSize
	}

	parts, err := s.parts.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find parts: %w", err)
	}
	return parts, nil
}

// Count returns the number of parts matching f.
func (s *Service) Count(ctx context.Context, f domain.CountFilter) (int64, error) {
	if _, err := requireActor(ctx); err != nil {
		return 0, err
	}
	if f.SampleType != nil && !f.SampleType.IsValid() {
		return 0, domain.NewValidationError("type", "unknown sample type")
	}

	n, err := s.parts.Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("count parts: %w", err)
	}
	return n, nil
}

// GetHistory returns the prior snapshots of a part, oldest first. A part
// that was never edited has an empty history.
func (s *Service) GetHistory(ctx context.Context, partID uuid.UUID) (domain.PartHistory, error) {
	if _, err := requireActor(ctx); err != nil {
		return domain.PartHistory{}, err
	}

	h, err := s.history.GetByPartID(ctx, partID)
	if err != nil {
		return domain.PartHistory{}, fmt.Errorf("get history: %w", err)
	}
	if h.Histories == nil {
		h.Histories = []domain.Part{}
	}
	h.PartID = partID
	return h, nil
}

// GetAttachment returns an attachment with its content.
func (s *Service) GetAttachment(ctx context.Context, id uuid.UUID) (domain.FileData, error) {
	if _, err := requireActor(ctx); err != nil {
		return domain.FileData{}, err
	}

	f, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return domain.FileData{}, fmt.Errorf("get attachment: %w", err)
	}
	return f, nil
}
