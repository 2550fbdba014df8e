package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// UnifiedCache is a typed facade over go-cache with hit/miss accounting.
type UnifiedCache[T any] struct {
	store  *gocache.Cache
	ttl    time.Duration
	name   string // For logging/debugging
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// NewUnifiedCache creates a new generic cache with specified TTL and name.
// Expired items are purged twice per TTL period.
func NewUnifiedCache[T any](ttl time.Duration, name string, logger *zap.Logger) *UnifiedCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnifiedCache[T]{
		store:  gocache.New(ttl, ttl/2),
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
}

// Set stores an item in the cache with the given key
func (c *UnifiedCache[T]) Set(key string, value T) {
	c.store.Set(key, value, gocache.DefaultExpiration)
	c.sets.Add(1)

	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

// Get retrieves an item from the cache
func (c *UnifiedCache[T]) Get(key string) (T, bool) {
	raw, found := c.store.Get(key)
	if !found {
		c.misses.Add(1)
		var zero T
		c.logger.Debug("Cache miss",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	value, ok := raw.(T)
	if !ok {
		c.misses.Add(1)
		var zero T
		return zero, false
	}

	c.hits.Add(1)
	return value, true
}

// GetOrCreate returns the cached value for key, storing the result of create
// when none exists. Concurrent callers for the same key share one value.
func (c *UnifiedCache[T]) GetOrCreate(key string, create func() T) T {
	if value, ok := c.Get(key); ok {
		// refresh the TTL of live entries
		c.store.Set(key, value, gocache.DefaultExpiration)
		return value
	}

	value := create()
	if err := c.store.Add(key, value, gocache.DefaultExpiration); err != nil {
		// another request created it first
		if existing, ok := c.Get(key); ok {
			return existing
		}
		c.store.Set(key, value, gocache.DefaultExpiration)
	}
	c.sets.Add(1)
	return value
}

// Delete removes an item from the cache
func (c *UnifiedCache[T]) Delete(key string) {
	c.store.Delete(key)
	c.logger.Debug("Cache delete",
		zap.String("cache", c.name),
		zap.String("key", key),
	)
}

// GetMetrics returns current cache metrics
func (c *UnifiedCache[T]) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
	}
}

// Size returns the number of items in the cache, expired ones included
// until the next purge.
func (c *UnifiedCache[T]) Size() int {
	return c.store.ItemCount()
}
