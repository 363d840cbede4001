package cache

import (
	"context"
	"testing"
	"time"

	"library_lending/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*ListingCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewListingCache(rdb, ttl), srv
}

func strp(s string) *string { return &s }

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	items, ok := c.Get(context.Background(), models.KindBook)
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	created := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	items := []models.LibraryItem{
		{ID: "i1", Kind: models.KindBook, Title: "1984", Author: strp("George Orwell"), IsBorrowed: true, CreatedAt: created},
		{ID: "i2", Kind: models.KindBook, Title: "Dune", Author: strp("Frank Herbert"), CreatedAt: created},
	}
	c.Set(ctx, models.KindBook, items)

	got, ok := c.Get(ctx, models.KindBook)
	require.True(t, ok)
	assert.Equal(t, items, got)

	// kinds are cached independently
	_, ok = c.Get(ctx, models.KindDVD)
	assert.False(t, ok)
}

func TestSetEmptyList(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, models.KindBook, nil)

	got, ok := c.Get(ctx, models.KindBook)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, models.KindBook, []models.LibraryItem{{ID: "i1", Kind: models.KindBook, Title: "1984"}})
	c.Invalidate(ctx, models.KindBook)

	_, ok := c.Get(ctx, models.KindBook)
	assert.False(t, ok)
}

func TestEntriesExpire(t *testing.T) {
	c, srv := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	c.Set(ctx, models.KindBook, []models.LibraryItem{{ID: "i1", Kind: models.KindBook, Title: "1984"}})
	srv.FastForward(31 * time.Second)

	_, ok := c.Get(ctx, models.KindBook)
	assert.False(t, ok)
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	c, srv := newTestCache(t, time.Minute)

	require.NoError(t, srv.Set("items:list:book", "{not json"))

	_, ok := c.Get(context.Background(), models.KindBook)
	assert.False(t, ok)
}
