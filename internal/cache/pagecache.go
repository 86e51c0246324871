package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IndexPagePrefix keys cached global feed pages. Distinct query strings
// (page numbers) get distinct entries.
const IndexPagePrefix = "index_page"

// PageCache stores rendered feed pages for a short TTL. There is no write
// invalidation: a new post stays invisible on the cached view until the TTL
// runs out, which is the intended behavior of the global feed.
type PageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewPageCache creates a page cache over the given Redis client. A nil
// client yields a cache that always misses, so the read path still works
// without Redis.
func NewPageCache(rdb *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{rdb: rdb, ttl: ttl}
}

// Key builds the cache key for a view and its raw query string.
func (p *PageCache) Key(view, query string) string {
	return view + ":" + query
}

// Get loads the cached page for the view and query into dest. A decode or
// transport error counts as a miss.
func (p *PageCache) Get(ctx context.Context, view, query string, dest any) bool {
	if p == nil || p.rdb == nil {
		return false
	}
	ok, err := GetJSON(ctx, p.rdb, p.Key(view, query), dest)
	return ok && err == nil
}

// Set stores the rendered page. Failures are swallowed: caching is
// best-effort and the caller already has the page to serve. A non-positive
// TTL disables caching entirely rather than storing entries without expiry.
func (p *PageCache) Set(ctx context.Context, view, query string, v any) {
	if p == nil || p.rdb == nil || p.ttl <= 0 {
		return
	}
	_ = SetJSON(ctx, p.rdb, p.Key(view, query), v, p.ttl)
}
