// Package part implements the Part repository using PostgreSQL.
// Identity, ownership and sample type are written once on Create; Update only
// touches the mutable columns.
package part

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/partdoc"
	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

const table = "parts"

var columns = []string{
	"id", "lab_name", "lab_prefix", "lab_id",
	"personal_name", "personal_prefix", "personal_id",
	"sample_type", "comment", "date", "tags",
	"owner_id", "owner_name", "content", "attachments", "history_id",
	"created_at", "updated_at",
}

// Repo provides part persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new part repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new part.
func (r *Repo) Create(ctx context.Context, p domain.Part) error {
	content, attachments, err := encodeDocs(p)
	if err != nil {
		return err
	}

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			p.ID, p.LabName, p.LabPrefix, p.LabID,
			p.PersonalName, p.PersonalPrefix, p.PersonalID,
			string(p.SampleType), p.Comment, p.Date, tagsOrEmpty(p.Tags),
			p.OwnerID, p.OwnerName, content, attachments, p.HistoryID,
			p.CreatedAt, p.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("part build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "part", p.ID)
	}
	return nil
}

// Update saves the mutable fields of p: comment, date, tags, content,
// attachments, history link and updated_at.
func (r *Repo) Update(ctx context.Context, p domain.Part) error {
	content, attachments, err := encodeDocs(p)
	if err != nil {
		return err
	}

	sql, args, err := postgres.Builder.
		Update(table).
		Set("comment", p.Comment).
		Set("date", p.Date).
		Set("tags", tagsOrEmpty(p.Tags)).
		Set("content", content).
		Set("attachments", attachments).
		Set("history_id", p.HistoryID).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("part build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "part", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("part %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a part. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "part", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("part %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a part by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Part, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Part{}, fmt.Errorf("part build select: %w", err)
	}

	var row partRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.Part{}, postgres.MapError(err, "part", id)
	}
	return row.toDomain()
}

// Find returns parts matching the filter in the requested order and page.
func (r *Repo) Find(ctx context.Context, f domain.PartFilter) ([]domain.Part, error) {
	q := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where(f.SampleType, f.OwnerID)).
		OrderBy(orderBy(f.SortBy, f.Desc)...)

	if f.Skip > 0 {
		q = q.Offset(uint64(f.Skip))
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("part build find: %w", err)
	}

	var rows []partRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("find parts: %w", err)
	}

	parts := make([]domain.Part, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// Count returns the number of parts matching the filter.
func (r *Repo) Count(ctx context.Context, f domain.CountFilter) (int64, error) {
	sql, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(where(f.SampleType, f.OwnerID)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("part build count: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count parts: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func where(st *domain.SampleType, owner *uuid.UUID) squirrel.Eq {
	eq := squirrel.Eq{}
	if st != nil {
		eq["sample_type"] = string(*st)
	}
	if owner != nil {
		eq["owner_id"] = *owner
	}
	return eq
}

// orderBy maps a sort field to ORDER BY terms. Display names sort by their
// numeric parts so that "YCe10" follows "YCe9". id breaks ties for stable paging.
func orderBy(field domain.PartSortField, desc bool) []string {
	dir := " ASC"
	if desc {
		dir = " DESC"
	}

	var cols []string
	switch field {
	case domain.SortLabName, domain.SortLabID, "":
		cols = []string{"lab_id"}
	case domain.SortPersonalName:
		cols = []string{"personal_prefix", "personal_id"}
	case domain.SortPersonalID:
		cols = []string{"personal_id"}
	case domain.SortSampleType:
		cols = []string{"sample_type"}
	case domain.SortComment:
		cols = []string{"comment"}
	case domain.SortDate:
		cols = []string{"date"}
	case domain.SortCreatedAt:
		cols = []string{"created_at"}
	case domain.SortUpdatedAt:
		cols = []string{"updated_at"}
	case domain.SortOwnerName:
		cols = []string{"owner_name"}
	default:
		cols = []string{"lab_id"}
	}

	terms := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		terms = append(terms, c+dir)
	}
	return append(terms, "id"+dir)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type partRow struct {
	ID             uuid.UUID  `db:"id"`
	LabName        string     `db:"lab_name"`
	LabPrefix      string     `db:"lab_prefix"`
	LabID          int64      `db:"lab_id"`
	PersonalName   string     `db:"personal_name"`
	PersonalPrefix string     `db:"personal_prefix"`
	PersonalID     int64      `db:"personal_id"`
	SampleType     string     `db:"sample_type"`
	Comment        string     `db:"comment"`
	Date           *time.Time `db:"date"`
	Tags           []string   `db:"tags"`
	OwnerID        uuid.UUID  `db:"owner_id"`
	OwnerName      string     `db:"owner_name"`
	Content        []byte     `db:"content"`
	Attachments    []byte     `db:"attachments"`
	HistoryID      *uuid.UUID `db:"history_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (row partRow) toDomain() (domain.Part, error) {
	st := domain.SampleType(row.SampleType)

	var content domain.ContentFields
	if len(row.Content) > 0 {
		if err := json.Unmarshal(row.Content, &content); err != nil {
			return domain.Part{}, fmt.Errorf("part %s unmarshal content: %w", row.ID, err)
		}
	}

	var attachments []partdoc.Attachment
	if len(row.Attachments) > 0 {
		if err := json.Unmarshal(row.Attachments, &attachments); err != nil {
			return domain.Part{}, fmt.Errorf("part %s unmarshal attachments: %w", row.ID, err)
		}
	}

	return domain.Part{
		ID:             row.ID,
		LabName:        row.LabName,
		LabPrefix:      row.LabPrefix,
		LabID:          row.LabID,
		PersonalName:   row.PersonalName,
		PersonalPrefix: row.PersonalPrefix,
		PersonalID:     row.PersonalID,
		SampleType:     st,
		Comment:        row.Comment,
		Date:           row.Date,
		Tags:           row.Tags,
		OwnerID:        row.OwnerID,
		OwnerName:      row.OwnerName,
		Content:        content.Project(st),
		Attachments:    partdoc.ToAttachments(attachments),
		HistoryID:      row.HistoryID,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func encodeDocs(p domain.Part) (content, attachments []byte, err error) {
	content, err = json.Marshal(p.Content.Flatten())
	if err != nil {
		return nil, nil, fmt.Errorf("part %s marshal content: %w", p.ID, err)
	}
	attachments, err = json.Marshal(partdoc.FromAttachments(p.Attachments))
	if err != nil {
		return nil, nil, fmt.Errorf("part %s marshal attachments: %w", p.ID, err)
	}
	return content, attachments, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
