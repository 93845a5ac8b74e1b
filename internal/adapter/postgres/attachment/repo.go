// Package attachment implements storage for immutable part attachments.
// Metadata always lives in PostgreSQL; the bytes live either in the same
// row or in an external content store keyed by the attachment id.
package attachment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// ContentStore keeps attachment bytes outside the database.
type ContentStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// Repo provides attachment persistence.
type Repo struct {
	db       postgres.DB
	store    ContentStore
	compress bool
	maxSize  int64

	codecOnce sync.Once
	codec     *zstdCodec
	codecErr  error
}

// Option configures a Repo.
type Option func(*Repo) error

// WithContentStore stores bytes in store instead of the file_data row.
func WithContentStore(store ContentStore) Option {
	return func(r *Repo) error {
		r.store = store
		return nil
	}
}

// WithCompression zstd-compresses bytes before storing them.
func WithCompression() Option {
	return func(r *Repo) error {
		r.compress = true
		return nil
	}
}

// WithMaxSize caps the bytes a compressed attachment may expand to on read.
func WithMaxSize(n int64) Option {
	return func(r *Repo) error {
		if n <= 0 {
			return fmt.Errorf("max size must be positive, got %d", n)
		}
		r.maxSize = n
		return nil
	}
}

// New creates a new attachment repository.
func New(db postgres.DB, opts ...Option) (*Repo, error) {
	r := &Repo{db: db, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("attachment repo: %w", err)
		}
	}
	if r.compress {
		if _, err := r.zstd(); err != nil {
			return nil, fmt.Errorf("attachment repo: %w", err)
		}
	}
	return r, nil
}

// zstd builds the codec on first use. A repo without compression only
// needs it to read rows written by one with compression.
func (r *Repo) zstd() (*zstdCodec, error) {
	r.codecOnce.Do(func() {
		r.codec, r.codecErr = newZstdCodec(r.compress, r.maxSize)
	})
	return r.codec, r.codecErr
}

func (r *Repo) decode(payload []byte, encoding string, sizeHint int64) ([]byte, error) {
	switch encoding {
	case encodingIdentity, "":
		return payload, nil
	case encodingZstd:
		c, err := r.zstd()
		if err != nil {
			return nil, err
		}
		return c.decode(payload, sizeHint)
	default:
		return nil, fmt.Errorf("unknown attachment encoding %q", encoding)
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create stores a new attachment. f.ID and f.CreatedAt are assigned when zero.
func (r *Repo) Create(ctx context.Context, f domain.FileData) (domain.FileData, error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	payload, encoding := f.Data, encodingIdentity
	if r.compress {
		c, err := r.zstd()
		if err != nil {
			return domain.FileData{}, err
		}
		payload, encoding = c.encode(f.Data)
	}

	var (
		inline     []byte
		storageKey *string
	)
	if r.store != nil {
		key := f.ID.String()
		if err := r.store.Put(ctx, key, payload, f.ContentType); err != nil {
			return domain.FileData{}, fmt.Errorf("file_data %s: put content: %w", f.ID, err)
		}
		storageKey = &key
	} else {
		inline = payload
		if inline == nil {
			inline = []byte{}
		}
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO file_data (id, file_name, content_type, file_size, encoding, data, storage_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.ID, f.FileName, f.ContentType, f.FileSize, encoding, inline, storageKey, f.CreatedAt,
	)
	if err != nil {
		return domain.FileData{}, postgres.MapError(err, "file_data", f.ID)
	}

	return f, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

type fileRow struct {
	ID          uuid.UUID `db:"id"`
	FileName    string    `db:"file_name"`
	ContentType string    `db:"content_type"`
	FileSize    int64     `db:"file_size"`
	Encoding    string    `db:"encoding"`
	Data        []byte    `db:"data"`
	StorageKey  *string   `db:"storage_key"`
	CreatedAt   time.Time `db:"created_at"`
}

// GetRef returns the metadata of an attachment without loading its bytes.
func (r *Repo) GetRef(ctx context.Context, id uuid.UUID) (domain.AttachmentRef, error) {
	var ref domain.AttachmentRef
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT id, file_name, content_type, file_size FROM file_data WHERE id = $1`, id,
	).Scan(&ref.FileID, &ref.FileName, &ref.ContentType, &ref.FileSize)
	if err != nil {
		return domain.AttachmentRef{}, postgres.MapError(err, "file_data", id)
	}
	return ref, nil
}

// GetByID returns an attachment with its bytes.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.FileData, error) {
	var row fileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT id, file_name, content_type, file_size, encoding, data, storage_key, created_at
		 FROM file_data WHERE id = $1`, id)
	if err != nil {
		return domain.FileData{}, postgres.MapError(err, "file_data", id)
	}

	payload := row.Data
	if row.StorageKey != nil {
		if r.store == nil {
			return domain.FileData{}, fmt.Errorf("file_data %s: stored externally but no content store configured", id)
		}
		payload, err = r.store.Get(ctx, *row.StorageKey)
		if err != nil {
			return domain.FileData{}, fmt.Errorf("file_data %s: get content: %w", id, err)
		}
	}

	data, err := r.decode(payload, row.Encoding, row.FileSize)
	if err != nil {
		return domain.FileData{}, fmt.Errorf("file_data %s: %w", id, err)
	}

	return domain.FileData{
		ID:          row.ID,
		FileName:    row.FileName,
		ContentType: row.ContentType,
		FileSize:    row.FileSize,
		Data:        data,
		CreatedAt:   row.CreatedAt,
	}, nil
}
