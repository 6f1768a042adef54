package cache

import (
	"hash/maphash"
)

const numShards = 64

// ShardedLRU is a sharded LRU cache for high-concurrency workloads.
// It distributes entries across 64 shards to reduce lock contention.
type ShardedLRU[K comparable, V any] struct {
	shards [numShards]*LRU[K, V]
	seed   maphash.Seed
}

// NewShardedLRU creates a new sharded LRU cache.
// The capacity is divided evenly across all shards.
func NewShardedLRU[K comparable, V any](capacity int) *ShardedLRU[K, V] {
	shardCapacity := capacity / numShards
	if shardCapacity < 1 {
		shardCapacity = 1
	}

	s := &ShardedLRU[K, V]{
		seed: maphash.MakeSeed(),
	}

	for i := range numShards {
		s.shards[i] = NewLRU[K, V](shardCapacity)
	}

	return s
}

func (s *ShardedLRU[K, V]) shard(key K) *LRU[K, V] {
	return s.shards[maphash.Comparable(s.seed, key)%numShards]
}

// Get returns a cached value.
func (s *ShardedLRU[K, V]) Get(key K) (V, bool) {
	return s.shard(key).Get(key)
}

// Set caches a value.
func (s *ShardedLRU[K, V]) Set(key K, value V) {
	s.shard(key).Set(key, value)
}

// Len returns the total number of entries across all shards.
func (s *ShardedLRU[K, V]) Len() int {
	var total int
	for i := range numShards {
		total += s.shards[i].Len()
	}
	return total
}

// Stats returns aggregated hit/miss statistics.
func (s *ShardedLRU[K, V]) Stats() (hits, misses int64) {
	for i := range numShards {
		h, m := s.shards[i].Stats()
		hits += h
		misses += m
	}
	return hits, misses
}

// shardedCacheStats provides per-shard statistics for debugging.
type shardedCacheStats struct {
	ShardID int
	Len     int
	Hits    int64
	Misses  int64
}

// ShardStats returns per-shard statistics.
func (s *ShardedLRU[K, V]) ShardStats() []shardedCacheStats {
	stats := make([]shardedCacheStats, numShards)
	for i := range numShards {
		h, m := s.shards[i].Stats()
		stats[i] = shardedCacheStats{
			ShardID: i,
			Len:     s.shards[i].Len(),
			Hits:    h,
			Misses:  m,
		}
	}
	return stats
}
