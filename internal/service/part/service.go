// Package part implements the part record manager: identifier allocation,
// attachment reconciliation, history snapshots and ownership rules for
// laboratory parts, plus the list and count queries over them.
package part

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
	"github.com/heartmarshall/partsdb-backend/pkg/ctxutil"
)

type partRepo interface {
	Create(ctx context.Context, p domain.Part) error
	Update(ctx context.Context, p domain.Part) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Part, error)
	Find(ctx context.Context, f domain.PartFilter) ([]domain.Part, error)
	Count(ctx context.Context, f domain.CountFilter) (int64, error)
}

type counterRepo interface {
	Allocate(ctx context.Context, name string) (int64, error)
}

type attachmentRepo interface {
	Create(ctx context.Context, f domain.FileData) (domain.FileData, error)
	GetRef(ctx context.Context, id uuid.UUID) (domain.AttachmentRef, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.FileData, error)
}

type historyRepo interface {
	Append(ctx context.Context, snapshot domain.Part) (uuid.UUID, int, error)
	GetByPartID(ctx context.Context, partID uuid.UUID) (domain.PartHistory, error)
}

type deletionRepo interface {
	Create(ctx context.Context, req domain.PartDeletionRequest) (domain.PartDeletionRequest, error)
	DeleteByPartID(ctx context.Context, partID uuid.UUID) error
	List(ctx context.Context, f domain.DeletionRequestFilter) ([]domain.PartDeletionRequest, error)
}

type userDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

type auditSink interface {
	Record(op domain.LogOperation)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Errors returned by the part service. Each wraps a domain sentinel so
// callers can branch on either.
var (
	ErrNotOwner          = fmt.Errorf("not the owner of this part: %w", domain.ErrForbidden)
	ErrTooOld            = fmt.Errorf("part is past the delete window: %w", domain.ErrForbidden)
	ErrInvalidAttachment = fmt.Errorf("malformed attachment: %w", domain.ErrValidation)
	ErrAttachmentMissing = fmt.Errorf("attachment does not exist: %w", domain.ErrNotFound)
	ErrUnregistered      = fmt.Errorf("user is not registered: %w", domain.ErrForbidden)
)

// Config holds the business rules of the part service.
type Config struct {
	LabPrefix          string
	DeleteWindow       time.Duration
	LegacyDeleteGuard  bool
	MaxAttachmentBytes int64
	MaxPageSize        int
}

// Deps groups the collaborators of the part service.
type Deps struct {
	Parts       partRepo
	Counters    counterRepo
	Attachments attachmentRepo
	History     historyRepo
	Deletions   deletionRepo
	Users       userDirectory
	Audit       auditSink
	Tx          txManager
}

// Service provides part lifecycle and query operations.
type Service struct {
	parts       partRepo
	counters    counterRepo
	attachments attachmentRepo
	history     historyRepo
	deletions   deletionRepo
	users       userDirectory
	audit       auditSink
	tx          txManager
	cfg         Config
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new part service.
func NewService(log *slog.Logger, cfg Config, deps Deps) *Service {
	return &Service{
		parts:       deps.Parts,
		counters:    deps.Counters,
		attachments: deps.Attachments,
		history:     deps.History,
		deletions:   deps.Deletions,
		users:       deps.Users,
		audit:       deps.Audit,
		tx:          deps.Tx,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.With("service", "part"),
	}
}

// requireActor returns the logged-in actor or ErrUnauthorized.
func requireActor(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok || !actor.IsLoggedIn() {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return actor, nil
}

// emit hands an operation record to the audit sink. It never fails.
func (s *Service) emit(ctx context.Context, actor domain.Actor, t domain.OperationType, p domain.Part) {
	snapshot := p.Clone()
	s.audit.Record(domain.LogOperation{
		ID:           uuid.New(),
		OperatorID:   actor.ID,
		OperatorName: actor.FullName,
		Type:         t,
		Level:        t.Level(),
		SourceIP:     ctxutil.ClientIPFromCtx(ctx),
		TimeStamp:    s.now(),
		Part:         &snapshot,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
