// Package history implements the append-only PartHistory repository.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/partdoc"
	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// Repo provides part history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new history repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// The history row is created on first append; later appends concatenate
// onto the existing array in the same statement.
const appendSQL = `
INSERT INTO part_histories (id, part_id, histories, created_at, updated_at)
VALUES ($1, $2, jsonb_build_array($3::jsonb), now(), now())
ON CONFLICT (part_id) DO UPDATE
SET histories  = part_histories.histories || EXCLUDED.histories,
    updated_at = now()
RETURNING id, jsonb_array_length(histories)`

// Append stores snapshot as the newest entry of its part's history and
// returns the history id and its new length.
func (r *Repo) Append(ctx context.Context, snapshot domain.Part) (uuid.UUID, int, error) {
	doc, err := partdoc.Marshal(snapshot)
	if err != nil {
		return uuid.Nil, 0, err
	}

	var (
		id     uuid.UUID
		length int
	)
	err = postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, appendSQL, uuid.New(), snapshot.ID, doc).
		Scan(&id, &length)
	if err != nil {
		return uuid.Nil, 0, postgres.MapError(err, "part_history", snapshot.ID)
	}
	return id, length, nil
}

// GetByPartID returns the history of a part. A part that was never edited
// has an empty history with a nil ID.
func (r *Repo) GetByPartID(ctx context.Context, partID uuid.UUID) (domain.PartHistory, error) {
	var (
		id  uuid.UUID
		raw []byte
	)
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT id, histories FROM part_histories WHERE part_id = $1`, partID).
		Scan(&id, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PartHistory{PartID: partID, Histories: []domain.Part{}}, nil
	}
	if err != nil {
		return domain.PartHistory{}, postgres.MapError(err, "part_history", partID)
	}

	var docs []partdoc.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domain.PartHistory{}, fmt.Errorf("part_history %s unmarshal: %w", partID, err)
	}

	h := domain.PartHistory{ID: id, PartID: partID, Histories: make([]domain.Part, len(docs))}
	for i, d := range docs {
		h.Histories[i] = d.ToPart()
	}
	return h, nil
}
