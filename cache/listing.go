package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"library_lending/models"

	"github.com/redis/go-redis/v9"
)

// ListingCache keeps per-kind item listings in Redis for a short TTL.
// Listings are pure read projections, so serving a slightly stale copy is
// fine; every mutation invalidates the kind it touched. Best effort
// throughout: a Redis failure just means a database read.
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{rdb: rdb, ttl: ttl}
}

func key(kind string) string { return fmt.Sprintf("items:list:%s", kind) }

func (c *ListingCache) Get(ctx context.Context, kind string) ([]models.LibraryItem, bool) {
	b, err := c.rdb.Get(ctx, key(kind)).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.LibraryItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *ListingCache) Set(ctx context.Context, kind string, items []models.LibraryItem) {
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key(kind), b, c.ttl).Err()
}

func (c *ListingCache) Invalidate(ctx context.Context, kind string) {
	_ = c.rdb.Del(ctx, key(kind)).Err()
}
