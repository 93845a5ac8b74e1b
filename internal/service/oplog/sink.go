// Package oplog delivers operation log records in the background.
// Delivery is at-most-once: a record that cannot be queued or written is
// logged, counted and dropped, and never affects the caller.
package oplog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var (
	writtenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsdb_oplog_written_total",
		Help: "Operation log records persisted.",
	})
	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsdb_oplog_dropped_total",
		Help: "Operation log records dropped because the queue was full or closed.",
	})
	failedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsdb_oplog_failed_total",
		Help: "Operation log records that failed to persist.",
	})
)

// ErrClosed is returned by Close when called twice.
var ErrClosed = errors.New("oplog: sink closed")

type logRepo interface {
	Create(ctx context.Context, op domain.LogOperation) error
}

// Sink queues records and writes them from a single worker goroutine.
type Sink struct {
	repo    logRepo
	log     *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan domain.LogOperation
	done   chan struct{}
	start  sync.Once
}

// NewSink creates a sink with a queue of bufferSize records. Each write is
// bounded by writeTimeout. Call Start before recording.
func NewSink(log *slog.Logger, repo logRepo, bufferSize int, writeTimeout time.Duration) *Sink {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Sink{
		repo:    repo,
		log:     log.With("service", "oplog"),
		timeout: writeTimeout,
		queue:   make(chan domain.LogOperation, bufferSize),
		done:    make(chan struct{}),
	}
}

// Start launches the worker. Subsequent calls are no-ops.
func (s *Sink) Start() {
	s.start.Do(func() {
		go s.run()
	})
}

// Record enqueues op without blocking.
func (s *Sink) Record(op domain.LogOperation) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		droppedTotal.Inc()
		s.log.Warn("oplog record dropped: sink closed", slog.String("type", op.Type.String()))
		return
	}

	select {
	case s.queue <- op:
	default:
		droppedTotal.Inc()
		s.log.Warn("oplog record dropped: queue full",
			slog.String("type", op.Type.String()),
			slog.String("operator_id", op.OperatorID.String()),
		)
	}
}

// Close stops accepting records and waits until the queue is drained or
// ctx is done, whichever comes first.
func (s *Sink) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	// Drain even if Start was never called.
	s.Start()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		s.log.Warn("oplog drain interrupted", slog.Int("pending", len(s.queue)))
		return ctx.Err()
	}
}

func (s *Sink) run() {
	defer close(s.done)
	for op := range s.queue {
		s.write(op)
	}
}

func (s *Sink) write(op domain.LogOperation) {
	// Detached from any request: the caller has usually responded already.
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, op); err != nil {
		failedTotal.Inc()
		s.log.Error("oplog write failed",
			slog.String("type", op.Type.String()),
			slog.String("operator_id", op.OperatorID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	writtenTotal.Inc()
}
