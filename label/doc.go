// Package label generates deterministic Random Indexing labels.
//
// A label is a sparse ternary vector: k indices drawn from [0, size) carry the
// values +1 and -1 in equal number, every other slot is zero. The draw is
// seeded from the token text alone, so the same token always maps to the same
// label, across calls and across processes, without storing a lexicon.
//
//	v, err := label.Generate(16000, 48, "seed")
//
// Generator bundles a fixed size and nnz with an optional memo cache and a
// worker limit for labelling token batches in parallel.
package label
