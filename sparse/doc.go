// Package sparse implements the sparse vector algebra used by Random Indexing.
//
// A Vector has a fixed dimension (its size) and stores only non-zero
// coordinates in an ordered map, so labels with a few dozen entries in a
// space of tens of thousands of dimensions stay cheap to copy, add and
// compare.
//
// # Safe and destructive operations
//
// Every arithmetic operation exists twice:
//
//	sum, err := a.Add(b, c)          // safe: validates sizes, returns a new pruned vector
//	_, err = acc.DestructiveAdd(b)   // destructive: mutates acc in place, no size check
//
// Safe operations never modify their inputs and always return a vector
// without zero entries. Destructive operations exist for accumulation loops
// (summing many labels into one context vector); they skip validation and do
// not prune zeros. Call DestructiveRemoveZeros before reading the result when a
// canonical form matters.
//
// # Immutability
//
// Freeze marks a vector immutable. Put and every Destructive* method on a
// frozen vector fail with ErrImmutable. Frozen vectors can be shared between
// goroutines for reading.
//
// # Text form
//
//	"0|1.000000 4|-1.000000 9|2.500000 1600"
//
// Ascending index|value tokens followed by the size. See Parse.
package sparse
