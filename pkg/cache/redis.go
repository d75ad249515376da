package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces this service's entries inside a shared Redis.
const keyPrefix = "crypto-api:"

// Redis is a Store backed by a Redis instance, for deployments running
// more than one process. The TTL is enforced by Redis itself via key
// expiry, so unlike Memory, Size never counts expired entries.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed store. The client must already be
// connected; callers are expected to ping it at startup.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &Redis{client: client, ttl: ttl}
}

// Get returns the value stored under key, or a miss if Redis has expired
// or never seen it.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			Misses.Inc()
			return nil, false, nil
		}
		Errors.WithLabelValues("get").Inc()
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	Hits.WithLabelValues("redis").Inc()
	return data, true, nil
}

// Set stores value under key with the configured TTL, overwriting any
// prior entry.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, r.ttl).Err(); err != nil {
		Errors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Clear removes all of this service's entries.
func (r *Redis) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			Errors.WithLabelValues("delete").Inc()
			return fmt.Errorf("redis del: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	return nil
}

// Size returns the number of entries this service currently holds.
func (r *Redis) Size(ctx context.Context) (int, error) {
	var n int
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("redis scan: %w", err)
	}
	return n, nil
}
