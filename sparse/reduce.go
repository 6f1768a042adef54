package sparse

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sum returns the pruned sum of vectors. Every vector must have the given size.
func Sum[S SparseVector](size int, vectors ...S) (*Vector, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	acc := New(size)
	for _, vec := range vectors {
		if vec.Size() != size {
			return nil, &ErrSizeMismatch{Expected: size, Actual: vec.Size()}
		}
		acc.accumulate([]SparseVector{vec}, 1)
	}
	acc.prune()

	return acc, nil
}

// SumParallel sums vectors with up to workers goroutines.
//
// The input is split into contiguous chunks; every worker accumulates its chunk
// into a private partial vector and the partials are merged in chunk order
// once all workers finish. No vector is mutated by more than one goroutine.
// Results are deterministic for a fixed worker count; floating-point rounding
// may differ slightly between worker counts.
func SumParallel[S SparseVector](ctx context.Context, size int, vectors []S, workers int) (*Vector, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(vectors) {
		workers = max(len(vectors), 1)
	}

	chunk := (len(vectors) + workers - 1) / workers
	partials := make([]*Vector, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(vectors))
		if lo >= hi {
			continue
		}

		g.Go(func() error {
			acc := New(size)
			for _, vec := range vectors[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				if vec.Size() != size {
					return &ErrSizeMismatch{Expected: size, Actual: vec.Size()}
				}
				acc.accumulate([]SparseVector{vec}, 1)
			}
			partials[w] = acc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := New(size)
	for _, p := range partials {
		if p != nil {
			total.accumulate([]SparseVector{p}, 1)
		}
	}
	total.prune()

	return total, nil
}
