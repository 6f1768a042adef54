// Package cache provides bounded in-memory memoization for derived vectors.
//
// # LRU
//
// LRU is a mutex-guarded least-recently-used map with an entry-count bound.
// It backs the permutation cache (one entry per size/seed pair) and the
// optional label memo of a generator.
//
// # Sharded LRU
//
// ShardedLRU spreads keys across 64 independent LRU shards:
//   - Shard selection via hash/maphash over the comparable key
//   - Per-shard mutex for minimal contention when many goroutines generate labels
//   - Aggregated hit/miss statistics
package cache
