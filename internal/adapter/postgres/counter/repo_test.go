package counter_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/counter"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/testhelper"
)

func TestRepo_Allocate_Mock(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO part_counters`).
		WithArgs("YCe").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	got, err := counter.New(mock).Allocate(context.Background(), "YCe")
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if got != 7 {
		t.Errorf("Allocate = %d, want 7", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_Allocate_Mock_Error(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(`INSERT INTO part_counters`).
		WithArgs("ABp").
		WillReturnError(boom)

	_, err = counter.New(mock).Allocate(context.Background(), "ABp")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestRepo_Allocate_EmptyName(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	if _, err := counter.New(mock).Allocate(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty counter name")
	}
}

func TestRepo_Allocate_Sequential(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := counter.New(pool)
	ctx := context.Background()
	name := "SQ" + uuid.New().String()[:8]

	cur, err := repo.Current(ctx, name)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cur != 0 {
		t.Fatalf("Current of unused counter = %d, want 0", cur)
	}

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Allocate(ctx, name)
		if err != nil {
			t.Fatalf("Allocate: %v", err)
		}
		if got != want {
			t.Fatalf("Allocate = %d, want %d", got, want)
		}
	}
}

func TestRepo_Allocate_ConcurrentIsGapFree(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := counter.New(pool)
	name := "CC" + uuid.New().String()[:8]

	const n = 50
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got []int64
	)

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.Allocate(context.Background(), name)
			if err != nil {
				t.Errorf("Allocate: %v", err)
				return
			}
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	if len(got) != n {
		t.Fatalf("got %d values, want %d", len(got), n)
	}
	for i, v := range got {
		if v != int64(i+1) {
			t.Fatalf("values are not exactly 1..%d: %v", n, got)
		}
	}
}
