// Package permutation provides seeded random bijections over vector indices.
//
// Rotating a sparse vector by a fixed permutation is how positional and
// directional context is encoded in Random Indexing: a neighbour k slots to the
// right of a focus word is added as its label rotated k times, and the inverse
// map undoes the rotation exactly.
//
//	p, err := permutation.Generate(16000, permutation.DefaultSeed)
//	rotated, err := label.Permute(p, 2)
//
// Permutations are immutable once generated and safe for concurrent use.
// Cache memoizes them per (size, seed) so that every caller in a process shares
// one instance.
package permutation
