package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPage struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func newTestPageCache(t *testing.T, ttl time.Duration) (*PageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewPageCache(rdb, ttl), mr
}

func TestPageCache_RoundTrip(t *testing.T) {
	pc, _ := newTestPageCache(t, 20*time.Second)
	ctx := context.Background()

	var got cachedPage
	assert.False(t, pc.Get(ctx, IndexPagePrefix, "page=1", &got))

	pc.Set(ctx, IndexPagePrefix, "page=1", cachedPage{Title: "first", Count: 3})

	require.True(t, pc.Get(ctx, IndexPagePrefix, "page=1", &got))
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, 3, got.Count)
}

func TestPageCache_DistinctQueriesDistinctEntries(t *testing.T) {
	pc, _ := newTestPageCache(t, 20*time.Second)
	ctx := context.Background()

	pc.Set(ctx, IndexPagePrefix, "page=1", cachedPage{Title: "one"})
	pc.Set(ctx, IndexPagePrefix, "page=2", cachedPage{Title: "two"})

	var got cachedPage
	require.True(t, pc.Get(ctx, IndexPagePrefix, "page=1", &got))
	assert.Equal(t, "one", got.Title)

	require.True(t, pc.Get(ctx, IndexPagePrefix, "page=2", &got))
	assert.Equal(t, "two", got.Title)

	assert.False(t, pc.Get(ctx, IndexPagePrefix, "page=3", &got))
}

func TestPageCache_EntriesExpireAfterTTL(t *testing.T) {
	pc, mr := newTestPageCache(t, 20*time.Second)
	ctx := context.Background()

	pc.Set(ctx, IndexPagePrefix, "", cachedPage{Title: "cached"})

	var got cachedPage
	mr.FastForward(19 * time.Second)
	assert.True(t, pc.Get(ctx, IndexPagePrefix, "", &got))

	mr.FastForward(2 * time.Second)
	assert.False(t, pc.Get(ctx, IndexPagePrefix, "", &got))
}

func TestPageCache_NilClientAlwaysMisses(t *testing.T) {
	pc := NewPageCache(nil, 20*time.Second)
	ctx := context.Background()

	var got cachedPage
	pc.Set(ctx, IndexPagePrefix, "", cachedPage{Title: "dropped"})
	assert.False(t, pc.Get(ctx, IndexPagePrefix, "", &got))

	var nilCache *PageCache
	assert.False(t, nilCache.Get(ctx, IndexPagePrefix, "", &got))
}

func TestPageCache_ZeroTTLDisablesCaching(t *testing.T) {
	pc, _ := newTestPageCache(t, 0)
	ctx := context.Background()

	var got cachedPage
	pc.Set(ctx, IndexPagePrefix, "", cachedPage{Title: "never stored"})
	assert.False(t, pc.Get(ctx, IndexPagePrefix, "", &got))
}

func TestPageCache_KeyFormat(t *testing.T) {
	pc := NewPageCache(nil, time.Second)
	assert.Equal(t, "index_page:page=2", pc.Key(IndexPagePrefix, "page=2"))
	assert.Equal(t, "index_page:", pc.Key(IndexPagePrefix, ""))
}
