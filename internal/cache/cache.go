// Package cache is an optional Redis-backed result cache keyed by
// page content. When no Redis address is configured every operation is
// a no-op, so callers never branch on whether caching is on.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"recipeclip/internal/recipe"
)

// Cache stores extraction results. A nil client means caching is
// disabled.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New builds a cache against the given Redis address. An empty address
// returns a disabled cache and no error; a configured address that
// cannot be reached returns the connection error so the caller can
// decide whether to continue without caching.
func New(ctx context.Context, addr string, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		return &Cache{}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Cache{client: client, ttl: ttl}, nil
}

// Enabled reports whether a Redis backend is wired up.
func (c *Cache) Enabled() bool {
	return c.client != nil
}

// Get returns the cached recipe for a key, or (nil, nil) on a miss.
// A disabled cache always misses.
func (c *Cache) Get(ctx context.Context, key string) (*recipe.Recipe, error) {
	if c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var rec recipe.Recipe
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode cached recipe: %w", err)
	}
	return &rec, nil
}

// Set stores a recipe under a key. No-op when disabled.
func (c *Cache) Set(ctx context.Context, key string, rec *recipe.Recipe) error {
	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode recipe: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Key derives a cache key from the page URL and markup, so a page
// whose content changes gets a fresh extraction.
func Key(url, markup string) string {
	h := sha256.Sum256([]byte(url + "\x00" + markup))
	return fmt.Sprintf("extract:%x", h[:])
}
