package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsdb_user_cache_hits_total",
		Help: "Total user directory cache hits.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsdb_user_cache_misses_total",
		Help: "Total user directory cache misses.",
	})
)

type userGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// CachedDirectory is a read-through TTL cache in front of user lookups.
// Concurrent misses for the same id share one database round trip.
// Errors are never cached. Changes made by another process become visible
// once the entry expires.
type CachedDirectory struct {
	users userGetter
	cache *expirable.LRU[uuid.UUID, domain.User]
	group singleflight.Group
}

// NewCachedDirectory wraps users with an LRU of at most size entries,
// each living for ttl.
func NewCachedDirectory(users userGetter, size int, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		users: users,
		cache: expirable.NewLRU[uuid.UUID, domain.User](size, nil, ttl),
	}
}

// GetByID returns the user, loading it on a cache miss.
func (d *CachedDirectory) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if u, ok := d.cache.Get(id); ok {
		cacheHitsTotal.Inc()
		return u, nil
	}
	cacheMissesTotal.Inc()

	v, err, _ := d.group.Do(id.String(), func() (any, error) {
		u, err := d.users.GetByID(ctx, id)
		if err != nil {
			return domain.User{}, err
		}
		d.cache.Add(id, u)
		return u, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return v.(domain.User), nil
}
