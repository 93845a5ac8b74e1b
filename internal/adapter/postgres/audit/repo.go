// Package audit implements the operation log repository using PostgreSQL.
// It provides append-only operations for log records.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/partdoc"
	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// Repo provides operation log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new log record. The affected part is stored as a
// snapshot document in the data column.
func (r *Repo) Create(ctx context.Context, op domain.LogOperation) error {
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	if op.TimeStamp.IsZero() {
		op.TimeStamp = time.Now().UTC()
	}

	data := []byte(`{}`)
	if op.Part != nil {
		var err error
		data, err = partdoc.Marshal(*op.Part)
		if err != nil {
			return fmt.Errorf("log_operation %s marshal part: %w", op.ID, err)
		}
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO log_operations (id, operator_id, operator_name, type, level, source_ip, time_stamp, data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		op.ID, op.OperatorID, op.OperatorName, string(op.Type), op.Level, op.SourceIP, op.TimeStamp, data,
	)
	if err != nil {
		return postgres.MapError(err, "log_operation", op.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

type logRow struct {
	ID           uuid.UUID `db:"id"`
	OperatorID   uuid.UUID `db:"operator_id"`
	OperatorName string    `db:"operator_name"`
	Type         string    `db:"type"`
	Level        int       `db:"level"`
	SourceIP     string    `db:"source_ip"`
	TimeStamp    time.Time `db:"time_stamp"`
	Data         []byte    `db:"data"`
}

// ListRecent returns the newest log records first. Used by operators and
// tests; the application itself never reads the log back.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.LogOperation, error) {
	var rows []logRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, operator_id, operator_name, type, level, source_ip, time_stamp, data
		 FROM log_operations ORDER BY time_stamp DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list log_operations: %w", err)
	}

	ops := make([]domain.LogOperation, len(rows))
	for i, row := range rows {
		op := domain.LogOperation{
			ID:           row.ID,
			OperatorID:   row.OperatorID,
			OperatorName: row.OperatorName,
			Type:         domain.OperationType(row.Type),
			Level:        row.Level,
			SourceIP:     row.SourceIP,
			TimeStamp:    row.TimeStamp,
		}
		if len(row.Data) > 2 {
			p, err := partdoc.Unmarshal(row.Data)
			if err != nil {
				return nil, fmt.Errorf("log_operation %s: %w", row.ID, err)
			}
			op.Part = &p
		}
		ops[i] = op
	}
	return ops, nil
}
