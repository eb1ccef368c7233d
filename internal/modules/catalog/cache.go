package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores the full catalog snapshot.
type Cache interface {
	Get(ctx context.Context) ([]Product, bool, error)
	Set(ctx context.Context, products []Product) error
	Invalidate(ctx context.Context) error
}

// MemoryCache holds the snapshot in process.
type MemoryCache struct {
	ttl time.Duration
	now func() time.Time

	mu        sync.RWMutex
	products  []Product
	fetchedAt time.Time
	set       bool
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context) ([]Product, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.set && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.products, true, nil
	}
	return nil, false, nil
}

func (c *MemoryCache) Set(_ context.Context, products []Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.fetchedAt = c.now()
	c.set = true
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	c.set = false
	return nil
}

// DefaultRedisKey is where RedisCache stores the JSON snapshot.
const DefaultRedisKey = "thusha:catalog:products"

type RedisCache struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, key: DefaultRedisKey, ttl: ttl}
}

// ConnectRedis parses url and pings the server.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (c *RedisCache) Get(ctx context.Context) ([]Product, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// A corrupt entry is a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return products, true, nil
}

func (c *RedisCache) Set(ctx context.Context, products []Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, raw, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key).Err()
}
