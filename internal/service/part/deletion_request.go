package part

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// RequestDeletion records that the owner or an administrator wants a part
// removed. A part has at most one pending request; asking again returns it.
func (s *Service) RequestDeletion(ctx context.Context, input RequestDeletionInput) (domain.PartDeletionRequest, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return domain.PartDeletionRequest{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.PartDeletionRequest{}, err
	}

	p, err := s.parts.GetByID(ctx, input.PartID)
	if err != nil {
		return domain.PartDeletionRequest{}, fmt.Errorf("get part: %w", err)
	}
	if !p.IsOwnedBy(actor.ID) && !actor.IsAdmin() {
		return domain.PartDeletionRequest{}, ErrNotOwner
	}

	req, err := s.deletions.Create(ctx, domain.PartDeletionRequest{
		PartID:        p.ID,
		RequesterID:   actor.ID,
		RequesterName: actor.FullName,
		Reason:        input.Reason,
		CreatedAt:     s.now(),
	})
	if err != nil {
		return domain.PartDeletionRequest{}, fmt.Errorf("create deletion request: %w", err)
	}

	s.log.InfoContext(ctx, "part deletion requested",
		slog.String("user_id", actor.ID.String()),
		slog.String("part_id", p.ID.String()),
	)

	return req, nil
}

// ListDeletionRequests returns pending requests, newest first.
// Administrators only.
func (s *Service) ListDeletionRequests(ctx context.Context, f domain.DeletionRequestFilter) ([]domain.PartDeletionRequest, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if f.Skip < 0 || f.Limit < 0 {
		return nil, domain.NewValidationError("skip/limit", "must not be negative")
	}
	if s.cfg.MaxPageSize > 0 && (f.Limit == 0 || f.Limit > s.cfg.MaxPageSize) {
		f.Limit = s.cfg.MaxPageSize
	}

	reqs, err := s.deletions.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list deletion requests: %w", err)
	}
	return reqs, nil
}
