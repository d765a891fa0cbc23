package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	statsCacheTTL  = 30 * time.Second
	statsCacheKey  = "stats:dashboard"
	healthCacheKey = "health:capabilities"
)

// CacheService is a Redis cache-aside layer for the dashboard aggregate. A
// nil client disables caching without changing any call site.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService connects to Redis. An empty URL or a failed connection
// degrades to a no-op cache.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client for health checks. May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetStats returns the cached dashboard aggregate, or nil on miss.
func (c *CacheService) GetStats(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, statsCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetStats stores the dashboard aggregate.
func (c *CacheService) SetStats(ctx context.Context, data any) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsCacheKey, b, statsCacheTTL).Err()
}

// InvalidateStats drops the cached aggregate. Called after any mutation that
// changes the counters.
func (c *CacheService) InvalidateStats(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, statsCacheKey, healthCacheKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
