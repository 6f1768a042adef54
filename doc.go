// Package rivgo provides Random Indexing vectors for Go.
//
// Random Indexing builds word and document vectors incrementally: every token
// gets a fixed, sparse, nearly orthogonal label, and a document (or the
// context of a word) is the sum of the labels it contains. Vectors of related
// text end up pointing in similar directions, so cosine similarity measures
// relatedness without ever training a model or storing a vocabulary.
//
// # Quick Start
//
//	space, _ := rivgo.New(rivgo.DefaultConfig())
//	doc, _ := space.Document(ctx, []string{"the", "quick", "brown", "fox"})
//	other, _ := space.Document(ctx, []string{"a", "quick", "fox"})
//	sim, _ := space.Similarity(doc, other)
//
// # Building Blocks
//
// The Space facade wires together the lower-level packages, which can also be
// used directly:
//
//   - sparse: the sparse vector type and its arithmetic. Safe operations return
//     new, zero-pruned vectors; Destructive operations mutate the receiver for
//     accumulation loops.
//   - label: deterministic token labels.
//   - permutation: seeded index bijections used to encode word position.
//   - hilbert: Hilbert-curve keys that order vectors so that neighbours sort
//     close together.
//
// # Positional Context
//
// Context sums the labels of the words around a target, each rotated by its
// offset, so "dog bites man" and "man bites dog" produce different vectors:
//
//	ctxVec, _ := space.Context(tokens, target, 2)
//
// # Ordering Keys
//
//	key, _ := space.Key(doc)       // Hilbert curve key
//	fast, _ := space.FastKey(doc)  // plain bit interleave
//	bucket, _ := space.Bucket(doc, 16)
//
// # Configuration
//
// Config can be built in code or loaded from YAML with LoadConfig:
//
//	size: 16000
//	nnz: 48
//	permutation_seed: 0
//	hilbert_order: 32
//
// # Observability
//
// Space logs through a slog-based Logger and reports timings to a
// MetricsCollector. prommetrics provides a Prometheus implementation.
package rivgo
