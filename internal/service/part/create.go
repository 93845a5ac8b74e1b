package part

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// Create allocates lab and personal identifiers, stores inline attachments
// and persists a new part owned by the calling user.
//
// Both counters are allocated in one transaction. Ids allocated before a
// later attachment or part write fails are not reclaimed.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Part, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return domain.Part{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.Part{}, err
	}

	owner, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		if isNotFound(err) {
			return domain.Part{}, ErrUnregistered
		}
		return domain.Part{}, fmt.Errorf("resolve owner: %w", err)
	}

	labPrefix := domain.CounterName(s.cfg.LabPrefix, input.SampleType)
	personalPrefix := domain.CounterName(owner.Abbr, input.SampleType)

	var labID, personalID int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var allocErr error
		if labID, allocErr = s.counters.Allocate(txCtx, labPrefix); allocErr != nil {
			return fmt.Errorf("allocate %s: %w", labPrefix, allocErr)
		}
		if personalID, allocErr = s.counters.Allocate(txCtx, personalPrefix); allocErr != nil {
			return fmt.Errorf("allocate %s: %w", personalPrefix, allocErr)
		}
		return nil
	})
	if err != nil {
		return domain.Part{}, err
	}

	attachments, err := s.resolveAttachments(ctx, input.Attachments)
	if err != nil {
		return domain.Part{}, err
	}

	ownerName := owner.Name
	if ownerName == "" {
		ownerName = actor.FullName
	}

	now := s.now()
	p := domain.Part{
		ID:             uuid.New(),
		LabPrefix:      labPrefix,
		LabID:          labID,
		LabName:        domain.FormatName(labPrefix, labID),
		PersonalPrefix: personalPrefix,
		PersonalID:     personalID,
		PersonalName:   domain.FormatName(personalPrefix, personalID),
		SampleType:     input.SampleType,
		Comment:        input.Comment,
		Date:           input.Date,
		Tags:           nonNil(input.Tags),
		OwnerID:        owner.ID,
		OwnerName:      ownerName,
		Content:        input.Content.Project(input.SampleType),
		Attachments:    attachments,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.parts.Create(ctx, p); err != nil {
		return domain.Part{}, fmt.Errorf("create part: %w", err)
	}

	s.emit(ctx, actor, domain.OperationCreatePart, p)

	s.log.InfoContext(ctx, "part created",
		slog.String("user_id", actor.ID.String()),
		slog.String("part_id", p.ID.String()),
		slog.String("lab_name", p.LabName),
		slog.String("personal_name", p.PersonalName),
		slog.Int("attachments", len(attachments)),
	)

	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
