// Package conv provides checked integer conversions.
//
// Sparse vector indices are Go ints, while roaring bitmaps address uint32
// positions and Hilbert coordinates travel as uint64 words. These helpers
// perform the bounds checks at those seams so that an oversized dimension
// surfaces as an error instead of a silently wrapped index.
//
// For conversions that are provably safe by domain constraints (e.g. loop
// indices bounded by a validated size), use direct type casts instead.
package conv
