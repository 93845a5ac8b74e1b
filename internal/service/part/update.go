package part

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// Update replaces the mutable fields of a part owned by the caller.
// Content fields are projected onto the part's existing sample type, which
// never changes. The pre-update state is appended to the part's history in
// the same transaction as the save.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Part, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return domain.Part{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Part{}, err
	}

	existing, err := s.parts.GetByID(ctx, input.PartID)
	if err != nil {
		return domain.Part{}, fmt.Errorf("get part: %w", err)
	}
	if !existing.IsOwnedBy(actor.ID) {
		return domain.Part{}, ErrNotOwner
	}

	// Resolve attachments first so a bad list leaves part and history untouched.
	attachments, err := s.resolveAttachments(ctx, input.Attachments)
	if err != nil {
		return domain.Part{}, err
	}

	updated := existing.Clone()
	updated.Comment = input.Comment
	updated.Date = input.Date
	updated.Tags = nonNil(input.Tags)
	updated.Content = input.Content.Project(existing.SampleType)
	updated.Attachments = attachments
	updated.UpdatedAt = s.now()

	var historyLen int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		historyID, n, appendErr := s.history.Append(txCtx, existing)
		if appendErr != nil {
			return fmt.Errorf("append history: %w", appendErr)
		}
		historyLen = n
		updated.HistoryID = &historyID

		if updateErr := s.parts.Update(txCtx, updated); updateErr != nil {
			return fmt.Errorf("update part: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Part{}, err
	}

	s.emit(ctx, actor, domain.OperationUpdatePart, updated)

	s.log.InfoContext(ctx, "part updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("part_id", updated.ID.String()),
		slog.Int("history_len", historyLen),
	)

	return updated, nil
}
