package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user in the users group with a unique abbreviation.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Abbr:      "T" + strings.ToUpper(suffix),
		Groups:    []string{domain.GroupUsers},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, abbr, groups, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.Abbr, user.Groups, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedPart inserts a bacterium part owned by owner with unique counter
// values and no attachments. createdAt controls the part's age.
func SeedPart(t *testing.T, pool *pgxpool.Pool, owner domain.User, createdAt time.Time) domain.Part {
	t.Helper()
	ctx := context.Background()

	suffix := strings.ToUpper(uniqueSuffix())
	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	labPrefix := "S" + suffix + "e"
	personalPrefix := owner.Abbr + "e"

	var seq int64
	if err := pool.QueryRow(ctx,
		`INSERT INTO part_counters (name, count) VALUES ($1, 1)
		 ON CONFLICT (name) DO UPDATE SET count = part_counters.count + 1
		 RETURNING count`, personalPrefix,
	).Scan(&seq); err != nil {
		t.Fatalf("testhelper: SeedPart allocate personal id: %v", err)
	}

	p := domain.Part{
		ID:             uuid.New(),
		LabPrefix:      labPrefix,
		LabID:          1,
		LabName:        domain.FormatName(labPrefix, 1),
		PersonalPrefix: personalPrefix,
		PersonalID:     seq,
		PersonalName:   domain.FormatName(personalPrefix, seq),
		SampleType:     domain.SampleTypeBacterium,
		Comment:        "seeded " + suffix,
		Tags:           []string{"seed"},
		OwnerID:        owner.ID,
		OwnerName:      owner.Name,
		Content:        domain.ContentFields{}.Project(domain.SampleTypeBacterium),
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO parts (id, lab_name, lab_prefix, lab_id, personal_name, personal_prefix, personal_id,
		                    sample_type, comment, tags, owner_id, owner_name, content, attachments,
		                    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, '{}', '[]', $13, $14)`,
		p.ID, p.LabName, p.LabPrefix, p.LabID, p.PersonalName, p.PersonalPrefix, p.PersonalID,
		string(p.SampleType), p.Comment, p.Tags, p.OwnerID, p.OwnerName, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPart insert part: %v", err)
	}

	return p
}
