// Package cache provides the Redis-backed page cache for the feed views.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"yatube/internal/middleware"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// pageCacheHook counts failed commands so a degraded Redis shows up in the
// metrics instead of only as slower feed reads. A key miss is not a failure.
type pageCacheHook struct{}

func (h pageCacheHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h pageCacheHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h pageCacheHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// parseRedisOptions accepts either a bare host:port or a redis:// URL, since
// deployments configure REDIS_URL both ways.
func parseRedisOptions(addr string) (*redis.Options, error) {
	if strings.Contains(addr, "://") {
		return redis.ParseURL(addr)
	}
	return &redis.Options{Addr: addr}, nil
}

// InitRedis connects the page cache to Redis at the given address. Redis is
// optional here: on any failure the client stays nil and the feed reads go
// straight to the database on every request.
func InitRedis(addr string) {
	opts, err := parseRedisOptions(addr)
	if err != nil {
		middleware.Logger.Warn("invalid REDIS_URL, serving feeds uncached",
			"addr", addr, "error", err)
		client = nil
		return
	}

	c := redis.NewClient(opts)
	c.AddHook(pageCacheHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unreachable, serving feeds uncached",
			"addr", opts.Addr, "error", err)
		client = nil
		return
	}

	middleware.Logger.Info("Redis connected", "addr", opts.Addr)
	client = c
}

// GetClient returns the current Redis client instance, nil when the page
// cache is disabled.
func GetClient() *redis.Client {
	return client
}
