// Package cache provides a Redis-backed report cache. Every operation is a
// no-op when Redis is unavailable, so callers never depend on it.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is used when a non-positive TTL is configured
const DefaultTTL = time.Hour

// Redis wraps a go-redis client. A nil client means the cache is bypassed.
type Redis struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// Connect parses redisURL and pings the server. An empty URL or a failed ping
// yields a bypassed cache rather than an error.
func Connect(ctx context.Context, redisURL string, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if redisURL == "" {
		return &Redis{ttl: ttl}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[CACHE] Invalid REDIS_URL, bypassing cache: %v", err)
		return &Redis{ttl: ttl}
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[CACHE] Redis unavailable, bypassing cache: %v", err)
		_ = client.Close()
		return &Redis{ttl: ttl}
	}

	return &Redis{client: client, ttl: ttl}
}

// NewWithClient wraps an existing client
func NewWithClient(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

// Available reports whether cache operations reach Redis
func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

// TTL returns the expiry applied to stored entries
func (r *Redis) TTL() time.Duration {
	if r == nil {
		return DefaultTTL
	}
	return r.ttl
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		log.Printf("[CACHE] Redis error, continuing without cache: %v", err)
	}
}

// Ping checks connectivity
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

// GetJSON decodes the value at key into out. Returns false on a miss.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("failed to decode cached value %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value at key with the cache TTL
func (r *Redis) SetJSON(ctx context.Context, key string, value any) error {
	if !r.Available() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}
	if err := r.client.Set(ctx, key, b, r.ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// Delete removes key
func (r *Redis) Delete(ctx context.Context, key string) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// Close releases the client
func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
