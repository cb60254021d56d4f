// Package cache wraps the Redis client with the two concerns this
// service uses it for: a short-lived per-screening booking lock and a
// typed cache for the public performance listing. All methods tolerate
// a nil client so the service keeps working when Redis is unavailable.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
)

const performancesKey = "performances:list"

// Cache bundles the Redis client with the TTLs used for locks and
// listing entries.
type Cache struct {
	rdb        *redis.Client
	lockTTL    time.Duration
	listingTTL time.Duration
}

// New returns a Cache over the given client. A nil client disables
// locking and caching; every method then reports a miss or an acquired
// lock without touching the network.
func New(rdb *redis.Client) *Cache {
	return &Cache{
		rdb:        rdb,
		lockTTL:    5 * time.Second,
		listingTTL: 10 * time.Second,
	}
}

// AcquireScreeningLock takes the advisory lock for one screening using
// SET NX with a TTL so a crashed holder cannot wedge the screening.
// It returns false when another booking currently holds the lock.
func (c *Cache) AcquireScreeningLock(ctx context.Context, screeningID uint64) (bool, error) {
	if c == nil || c.rdb == nil {
		return true, nil
	}
	key := fmt.Sprintf("lock:screening:%d", screeningID)
	return c.rdb.SetNX(ctx, key, 1, c.lockTTL).Result()
}

// ReleaseScreeningLock drops the advisory lock for a screening.
func (c *Cache) ReleaseScreeningLock(ctx context.Context, screeningID uint64) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, fmt.Sprintf("lock:screening:%d", screeningID)).Err()
}

// GetPerformances returns the cached performance listing, or ok=false
// on a miss or when caching is disabled.
func (c *Cache) GetPerformances(ctx context.Context) ([]model.ScreeningDetail, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, performancesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var details []model.ScreeningDetail
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, false
	}
	return details, true
}

// SetPerformances stores the performance listing with a short TTL.
// Errors are swallowed; a failed write only costs a future cache miss.
func (c *Cache) SetPerformances(ctx context.Context, details []model.ScreeningDetail) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, performancesKey, raw, c.listingTTL).Err()
}

// InvalidatePerformances drops the cached listing. Called after any
// write that changes remaining seat counts or the screening set.
func (c *Cache) InvalidatePerformances(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, performancesKey).Err()
}
