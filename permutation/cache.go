package permutation

import (
	"log/slog"
	"strconv"

	"github.com/hupe1980/rivgo/internal/cache"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheCapacity bounds the number of distinct (size, seed) pairs a
// Cache keeps.
const DefaultCacheCapacity = 16

type key struct {
	size int
	seed int64
}

// Cache memoizes permutations per (size, seed).
//
// Concurrent callers asking for the same pair share one generation; the
// returned *Permutations is shared and must be treated as read-only.
type Cache struct {
	lru    *cache.LRU[key, *Permutations]
	group  singleflight.Group
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used for cache-miss diagnostics.
func WithLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.logger = l
	}
}

// NewCache creates a cache holding at most capacity permutations.
// A capacity below one uses DefaultCacheCapacity.
func NewCache(capacity int, opts ...CacheOption) *Cache {
	if capacity < 1 {
		capacity = DefaultCacheCapacity
	}
	c := &Cache{lru: cache.NewLRU[key, *Permutations](capacity)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the permutation for (size, seed), generating it on first use.
func (c *Cache) Get(size int, seed int64) (*Permutations, error) {
	k := key{size: size, seed: seed}
	if p, ok := c.lru.Get(k); ok {
		return p, nil
	}

	v, err, shared := c.group.Do(strconv.Itoa(size)+"/"+strconv.FormatInt(seed, 10), func() (any, error) {
		// A concurrent flight may have filled the slot while we waited.
		if p, ok := c.lru.Peek(k); ok {
			return p, nil
		}
		p, err := Generate(size, seed)
		if err != nil {
			return nil, err
		}
		c.lru.Set(k, p)
		if c.logger != nil {
			c.logger.Debug("generated permutation", "size", size, "seed", seed)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if shared && c.logger != nil {
		c.logger.Debug("shared permutation generation", "size", size, "seed", seed)
	}

	return v.(*Permutations), nil
}

// Len returns the number of cached permutations.
func (c *Cache) Len() int { return c.lru.Len() }

// Stats returns the cache hit and miss counters.
func (c *Cache) Stats() (hits, misses int64) { return c.lru.Stats() }
