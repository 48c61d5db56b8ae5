// Package cache is a thin JSON layer over redis. A nil *Cache is valid and
// always misses, so callers need no branching when REDIS_URL is unset.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const DefaultTTL = 5 * time.Minute

type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	log    *zap.Logger
	prefix string
}

func New(ctx context.Context, url string, log *zap.Logger) (*Cache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Cache{rdb: rdb, ttl: DefaultTTL, log: log, prefix: "nailnav:"}, nil
}

func (c *Cache) key(k string) string { return c.prefix + k }

// Get decodes the cached value into dst and reports a hit.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// Remember returns the cached value for key or computes, stores and returns it.
func Remember[T any](ctx context.Context, c *Cache, key string, load func() (T, error)) (T, error) {
	var v T
	if c.Get(ctx, key, &v) {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(ctx, key, v)
	return v, nil
}
