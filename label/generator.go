package label

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/hupe1980/rivgo/internal/cache"
	"github.com/hupe1980/rivgo/sparse"
	"golang.org/x/sync/errgroup"
)

// Generator produces labels of a fixed size and nnz.
//
// Labels returned by a Generator are frozen so they can be shared between
// goroutines and cache entries; Copy one before mutating it. A Generator is
// safe for concurrent use.
type Generator struct {
	size    int
	nnz     int
	offset  int64
	workers int
	memo    *cache.ShardedLRU[string, *sparse.Vector]
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithNamespace offsets every token seed by Seed(namespace), giving each
// namespace an independent label space. The empty namespace is the identity.
func WithNamespace(namespace string) Option {
	return func(g *Generator) {
		g.offset = Seed(namespace)
	}
}

// WithCache memoizes up to capacity labels. Zero or less disables the cache.
func WithCache(capacity int) Option {
	return func(g *Generator) {
		if capacity <= 0 {
			g.memo = nil
			return
		}
		g.memo = cache.NewShardedLRU[string, *sparse.Vector](capacity)
	}
}

// WithWorkers limits the goroutines used by Labels and Shingles.
// Zero or less uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// NewGenerator creates a Generator for labels of the given size and nnz.
func NewGenerator(size, nnz int, opts ...Option) (*Generator, error) {
	if size <= 0 {
		return nil, sparse.ErrInvalidSize
	}
	if nnz <= 0 {
		return nil, ErrInvalidNNZ
	}
	if k := nnz + nnz%2; size < k {
		return nil, &ErrCapacity{Requested: k, Size: size}
	}

	g := &Generator{size: size, nnz: nnz}
	for _, opt := range opts {
		opt(g)
	}
	if g.workers <= 0 {
		g.workers = runtime.GOMAXPROCS(0)
	}

	return g, nil
}

// Size returns the dimension of generated labels.
func (g *Generator) Size() int { return g.size }

// NNZ returns the configured number of non-zero entries before rounding.
func (g *Generator) NNZ() int { return g.nnz }

// Label returns the frozen label of token.
func (g *Generator) Label(token string) (*sparse.Vector, error) {
	if g.memo != nil {
		if v, ok := g.memo.Get(token); ok {
			return v, nil
		}
	}

	v, err := generate(g.size, g.nnz, Seed(token)+g.offset)
	if err != nil {
		return nil, err
	}
	v.Freeze()

	if g.memo != nil {
		g.memo.Set(token, v)
		if g.logger != nil {
			g.logger.Debug("label cache miss", "token", token, "size", g.size)
		}
	}

	return v, nil
}

// LabelWindow returns the label of the clamped rune window of text.
func (g *Generator) LabelWindow(text string, start, width int) (*sparse.Vector, error) {
	return g.Label(window([]rune(text), start, width))
}

// Labels returns the labels of tokens in input order, generated in parallel.
func (g *Generator) Labels(ctx context.Context, tokens []string) ([]*sparse.Vector, error) {
	out := make([]*sparse.Vector, len(tokens))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, tok := range tokens {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := g.Label(tok)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Shingles returns the labels of every rune window of width in text, in
// order. Text shorter than width yields the label of the whole text; empty
// text yields no labels.
func (g *Generator) Shingles(ctx context.Context, text string, width int) ([]*sparse.Vector, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	n := max(len(runes)-width+1, 1)
	grams := make([]string, n)
	for i := range grams {
		grams[i] = window(runes, i, width)
	}

	return g.Labels(ctx, grams)
}

// Stats returns the memo cache hit and miss counters. Both are zero when the
// cache is disabled.
func (g *Generator) Stats() (hits, misses int64) {
	if g.memo == nil {
		return 0, 0
	}
	return g.memo.Stats()
}
