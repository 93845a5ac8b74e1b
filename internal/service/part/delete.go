package part

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// Delete removes a part and returns its last state. Owners may delete
// within the configured window; administrators may always delete.
// A pending deletion request for the id is cleared even when the part is
// already gone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (domain.Part, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return domain.Part{}, err
	}

	p, err := s.parts.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			if cleanupErr := s.deletions.DeleteByPartID(ctx, id); cleanupErr != nil {
				s.log.WarnContext(ctx, "stale deletion request cleanup failed",
					slog.String("part_id", id.String()),
					slog.String("error", cleanupErr.Error()),
				)
			}
		}
		return domain.Part{}, fmt.Errorf("get part: %w", err)
	}

	if err := s.canDelete(actor, p); err != nil {
		return domain.Part{}, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		historyID, _, appendErr := s.history.Append(txCtx, p)
		if appendErr != nil {
			return fmt.Errorf("append history: %w", appendErr)
		}
		p.HistoryID = &historyID

		if delErr := s.parts.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete part: %w", delErr)
		}
		if delErr := s.deletions.DeleteByPartID(txCtx, id); delErr != nil {
			return fmt.Errorf("clear deletion request: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return domain.Part{}, err
	}

	s.emit(ctx, actor, domain.OperationDeletePart, p)

	s.log.InfoContext(ctx, "part deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("part_id", id.String()),
		slog.String("lab_name", p.LabName),
		slog.Bool("admin", actor.IsAdmin()),
	)

	return p, nil
}

// canDelete applies the ownership and age rules. With LegacyDeleteGuard set
// only administrators may delete, and only parts inside the window.
func (s *Service) canDelete(actor domain.Actor, p domain.Part) error {
	admin := actor.IsAdmin()
	if !p.IsOwnedBy(actor.ID) && !admin {
		return ErrNotOwner
	}

	tooOld := p.OlderThan(s.cfg.DeleteWindow, s.now())
	if s.cfg.LegacyDeleteGuard {
		if tooOld || !admin {
			return ErrTooOld
		}
		return nil
	}
	if tooOld && !admin {
		return ErrTooOld
	}
	return nil
}
