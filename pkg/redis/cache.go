package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is the time to live for the cached value
	TTL time.Duration
	// RefreshTTL indicates whether to refresh the TTL on access
	RefreshTTL bool
	// CacheName prefixes keys and selects the TTL from the client config
	CacheName string
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{TTL: 1 * time.Hour}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	if ttl < 0 {
		panic(fmt.Sprintf("invalid TTL: %v, must be non-negative", ttl))
	}
	co.TTL = ttl
	return co
}

// WithRefreshTTL enables TTL refresh on access
func (co *CacheOptions) WithRefreshTTL(refresh bool) *CacheOptions {
	co.RefreshTTL = refresh
	return co
}

// WithCacheName sets the cache name for key prefix and TTL lookup
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache stores JSON values under CacheName::key
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{client: client, opts: opts}
}

// getTTL returns the TTL for the cache, checking client configuration first
func (c *Cache) getTTL() time.Duration {
	if c.opts.CacheName != "" {
		if ttl, exists := c.client.config.CacheTTLs[c.opts.CacheName]; exists {
			return ttl
		}
		if c.client.config.DefaultCacheTTL > 0 {
			return c.client.config.DefaultCacheTTL
		}
	}
	return c.opts.TTL
}

func (c *Cache) buildCacheKey(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get loads key into dest. It returns false on a miss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	fullKey := c.buildCacheKey(key)
	data, found, err := c.client.GetBytes(ctx, fullKey)
	if err != nil || !found {
		return false, err
	}

	if c.opts.RefreshTTL {
		_ = c.client.Expire(ctx, fullKey, c.getTTL())
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return true, nil
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.getTTL())
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// Clear removes every key of this cache
func (c *Cache) Clear(ctx context.Context) error {
	pattern := c.buildCacheKey("*")
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100)
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Delete(ctx, keys...); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// GetOrLoad returns the cached value for key, or calls load and caches its
// result. Cache failures fall through to load and are reported through onCacheErr.
func GetOrLoad[T any](ctx context.Context, cache *Cache, key string, load func(context.Context) (T, error), onCacheErr func(error)) (T, error) {
	var cached T
	if cache != nil {
		found, err := cache.Get(ctx, key, &cached)
		if err != nil && onCacheErr != nil {
			onCacheErr(err)
		}
		if found {
			return cached, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, value); err != nil && onCacheErr != nil {
			onCacheErr(err)
		}
	}
	return value, nil
}
