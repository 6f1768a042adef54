package cache

// Cache is a bounded key/value memo.
// Implementations must be safe for concurrent use. Cached values are shared
// between callers and must be treated as read-only.
type Cache[K comparable, V any] interface {
	// Get returns a cached value. ok=false if missing.
	Get(key K) (value V, ok bool)
	// Set caches a value, evicting the least recently used entry when full.
	Set(key K, value V)
	// Len returns the number of cached entries.
	Len() int
	// Stats returns cache statistics.
	Stats() (hits, misses int64)
}

var (
	_ Cache[int, int] = (*LRU[int, int])(nil)
	_ Cache[int, int] = (*ShardedLRU[int, int])(nil)
)
