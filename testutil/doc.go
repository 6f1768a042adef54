// Package testutil provides testing utilities for rivgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides reproducible fixtures (random sparse vectors, tokens, integral
// coordinates) and a brute-force similarity ranking used as ground truth when
// checking Hilbert bucketing.
//
// # Random Fixtures
//
//	rng := testutil.NewRNG(seed)
//	v := rng.SparseVector(16000, 48)      // 48 Gaussian entries at distinct indices
//	coords := rng.Coordinates(8, 32)      // integral coordinates in [0, 2^32)
//
// # Approximate Comparison
//
//	ok := testutil.ApproxEqual(decoded, want, 1e-9)
package testutil
