// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

const columns = "id, email, name, abbr, groups, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Abbr      string    `db:"abbr"`
	Groups    []string  `db:"groups"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Abbr:      row.Abbr,
		Groups:    row.Groups,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+columns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+columns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", email)
	}
	return row.toDomain(), nil
}

// Upsert inserts a user or updates the email, name, abbreviation and groups
// of an existing one. created_at is preserved on update.
func (r *Repo) Upsert(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	groups := u.Groups
	if groups == nil {
		groups = []string{}
	}

	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO users (`+columns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE
		 SET email = EXCLUDED.email, name = EXCLUDED.name, abbr = EXCLUDED.abbr,
		     groups = EXCLUDED.groups, updated_at = EXCLUDED.updated_at
		 RETURNING `+columns,
		u.ID, u.Email, u.Name, u.Abbr, groups, u.CreatedAt, now,
	)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}
