// Package deletionreq implements persistence for pending part deletion requests.
package deletionreq

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

const columns = "id, part_id, requester_id, requester_name, reason, created_at"

// Repo provides deletion request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deletion request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type requestRow struct {
	ID            uuid.UUID `db:"id"`
	PartID        uuid.UUID `db:"part_id"`
	RequesterID   uuid.UUID `db:"requester_id"`
	RequesterName string    `db:"requester_name"`
	Reason        string    `db:"reason"`
	CreatedAt     time.Time `db:"created_at"`
}

func (row requestRow) toDomain() domain.PartDeletionRequest {
	return domain.PartDeletionRequest{
		ID:            row.ID,
		PartID:        row.PartID,
		RequesterID:   row.RequesterID,
		RequesterName: row.RequesterName,
		Reason:        row.Reason,
		CreatedAt:     row.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create records a deletion request. When the part already has one, the
// existing request is returned unchanged.
func (r *Repo) Create(ctx context.Context, req domain.PartDeletionRequest) (domain.PartDeletionRequest, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var row requestRow
	err := pgxscan.Get(ctx, q, &row,
		`INSERT INTO part_deletion_requests (`+columns+`)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (part_id) DO UPDATE SET part_id = EXCLUDED.part_id
		 RETURNING `+columns,
		req.ID, req.PartID, req.RequesterID, req.RequesterName, req.Reason, req.CreatedAt,
	)
	if err != nil {
		return domain.PartDeletionRequest{}, postgres.MapError(err, "part_deletion_request", req.PartID)
	}
	return row.toDomain(), nil
}

// DeleteByPartID removes the request for a part. Deleting a missing request
// is not an error.
func (r *Repo) DeleteByPartID(ctx context.Context, partID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM part_deletion_requests WHERE part_id = $1`, partID)
	if err != nil {
		return postgres.MapError(err, "part_deletion_request", partID)
	}
	return nil
}

// DeleteOrphans removes requests whose part no longer exists and returns
// how many were removed.
func (r *Repo) DeleteOrphans(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM part_deletion_requests d
		 WHERE NOT EXISTS (SELECT 1 FROM parts p WHERE p.id = d.part_id)`)
	if err != nil {
		return 0, fmt.Errorf("delete orphan part_deletion_requests: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByPartID returns the pending request for a part.
func (r *Repo) GetByPartID(ctx context.Context, partID uuid.UUID) (domain.PartDeletionRequest, error) {
	var row requestRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+columns+` FROM part_deletion_requests WHERE part_id = $1`, partID)
	if err != nil {
		return domain.PartDeletionRequest{}, postgres.MapError(err, "part_deletion_request", partID)
	}
	return row.toDomain(), nil
}

// List returns requests newest first.
func (r *Repo) List(ctx context.Context, f domain.DeletionRequestFilter) ([]domain.PartDeletionRequest, error) {
	qb := postgres.Builder.
		Select(columns).
		From("part_deletion_requests").
		OrderBy("created_at DESC", "id")
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}
	if f.Skip > 0 {
		qb = qb.Offset(uint64(f.Skip))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build part_deletion_requests query: %w", err)
	}

	var rows []requestRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list part_deletion_requests: %w", err)
	}

	out := make([]domain.PartDeletionRequest, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
