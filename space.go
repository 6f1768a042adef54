package rivgo

import (
	"context"
	"math/big"
	"runtime"
	"time"

	"github.com/hupe1980/rivgo/hilbert"
	"github.com/hupe1980/rivgo/label"
	"github.com/hupe1980/rivgo/permutation"
	"github.com/hupe1980/rivgo/sparse"
)

// Space is one configured Random Indexing vector space: a label generator,
// a rotation and a Hilbert codec sharing the same dimension.
//
// A Space is safe for concurrent use. Labels it returns are frozen and shared;
// Copy them before mutating.
type Space struct {
	cfg     Config
	labels  *label.Generator
	perms   *permutation.Permutations
	codec   *hilbert.Codec
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Space from cfg.
func New(cfg Config, optFns ...Option) (*Space, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}

	labels, err := label.NewGenerator(cfg.Size, cfg.NNZ,
		label.WithNamespace(cfg.Namespace),
		label.WithCache(cfg.LabelCacheSize),
		label.WithWorkers(cfg.Workers),
		label.WithLogger(o.logger.Logger),
	)
	if err != nil {
		return nil, err
	}

	var perms *permutation.Permutations
	if o.permutations != nil {
		perms, err = o.permutations.Get(cfg.Size, cfg.PermutationSeed)
	} else {
		perms, err = permutation.Generate(cfg.Size, cfg.PermutationSeed)
	}
	if err != nil {
		return nil, err
	}

	codec, err := hilbert.New(hilbert.WithOrder(cfg.HilbertOrder), hilbert.WithStrict(cfg.HilbertStrict))
	if err != nil {
		return nil, err
	}

	s := &Space{
		cfg:     cfg,
		labels:  labels,
		perms:   perms,
		codec:   codec,
		logger:  o.logger.WithSize(cfg.Size),
		metrics: o.metricsCollector,
	}
	s.logger.Info("space created", "nnz", cfg.NNZ, "hilbert_order", cfg.HilbertOrder, "permutation_seed", cfg.PermutationSeed)

	return s, nil
}

// Config returns the configuration the space was created with.
func (s *Space) Config() Config { return s.cfg }

// Size returns the vector dimension.
func (s *Space) Size() int { return s.cfg.Size }

// Permutations returns the rotation used by Rotate and Context.
func (s *Space) Permutations() *permutation.Permutations { return s.perms }

// Label returns the label of token.
func (s *Space) Label(token string) (*sparse.Vector, error) {
	start := time.Now()
	v, err := s.labels.Label(token)
	s.metrics.RecordLabel(time.Since(start), err)
	s.logger.LogLabel(context.Background(), token, s.cfg.NNZ, err)
	return v, err
}

// LabelWindow returns the label of the clamped rune window of text.
func (s *Space) LabelWindow(text string, start, width int) (*sparse.Vector, error) {
	begin := time.Now()
	v, err := s.labels.LabelWindow(text, start, width)
	s.metrics.RecordLabel(time.Since(begin), err)
	s.logger.LogWindow(context.Background(), start, width, s.cfg.NNZ, err)
	return v, err
}

// Document returns the sum of the labels of tokens. Labels are generated and
// summed in parallel; the result is a new, mutable, zero-pruned vector.
func (s *Space) Document(ctx context.Context, tokens []string) (*sparse.Vector, error) {
	start := time.Now()

	v, err := s.document(ctx, tokens)

	elapsed := time.Since(start)
	s.metrics.RecordDocument(len(tokens), elapsed, err)
	nnz := 0
	if v != nil {
		nnz = v.Count()
	}
	s.logger.LogDocument(ctx, len(tokens), nnz, elapsed, err)

	return v, err
}

func (s *Space) document(ctx context.Context, tokens []string) (*sparse.Vector, error) {
	labels, err := s.labels.Labels(ctx, tokens)
	if err != nil {
		return nil, err
	}
	return sparse.SumParallel(ctx, s.cfg.Size, labels, s.workers())
}

// Context returns the positional context vector of tokens[target]: the label
// of every token within window slots of the target, rotated by its signed
// offset, summed. The target itself is not included.
func (s *Space) Context(tokens []string, target, window int) (*sparse.Vector, error) {
	start := time.Now()

	v, n, err := s.context(tokens, target, window)

	elapsed := time.Since(start)
	s.metrics.RecordDocument(n, elapsed, err)
	nnz := 0
	if err == nil {
		nnz = v.Count()
	}
	s.logger.LogContext(context.Background(), target, window, n, nnz, elapsed, err)

	return v, err
}

func (s *Space) context(tokens []string, target, window int) (*sparse.Vector, int, error) {
	if target < 0 || target >= len(tokens) {
		return nil, 0, &sparse.ErrIndexOutOfRange{Index: target, Size: len(tokens)}
	}
	if window < 0 {
		return nil, 0, ErrInvalidWindow
	}

	acc := sparse.New(s.cfg.Size)
	n := 0
	for pos := max(target-window, 0); pos <= min(target+window, len(tokens)-1); pos++ {
		if pos == target {
			continue
		}
		l, err := s.labels.Label(tokens[pos])
		if err != nil {
			return nil, n, err
		}
		rotated, err := l.Permute(s.perms, pos-target)
		if err != nil {
			return nil, n, err
		}
		if _, err := acc.DestructiveAdd(rotated); err != nil {
			return nil, n, err
		}
		n++
	}

	_, err := acc.DestructiveRemoveZeros()
	return acc, n, err
}

// Rotate permutes v by the space's rotation, times times (negative undoes).
func (s *Space) Rotate(v *sparse.Vector, times int) (*sparse.Vector, error) {
	start := time.Now()

	out, err := s.rotate(v, times)

	s.metrics.RecordPermute(time.Since(start), err)
	return out, err
}

func (s *Space) rotate(v *sparse.Vector, times int) (*sparse.Vector, error) {
	if err := s.checkSize(v); err != nil {
		return nil, err
	}
	return v.Permute(s.perms, times)
}

// Similarity returns the cosine similarity of a and b.
func (s *Space) Similarity(a, b sparse.SparseVector) (float64, error) {
	if err := s.checkSize(a); err != nil {
		return 0, err
	}
	if err := s.checkSize(b); err != nil {
		return 0, err
	}
	sim, err := sparse.Cosine(a, b)
	return sim, translateError(err)
}

// Key returns the Hilbert key of v.
func (s *Space) Key(v sparse.SparseVector) (*big.Int, error) {
	return s.encode("hilbert", v, s.codec.Encode)
}

// FastKey returns the Hilbilly (plain interleave) key of v.
func (s *Space) FastKey(v sparse.SparseVector) (*big.Int, error) {
	return s.encode("hilbilly", v, s.codec.HilbillyKey)
}

func (s *Space) encode(kind string, v sparse.SparseVector, fn func(sparse.SparseVector) (*big.Int, error)) (*big.Int, error) {
	start := time.Now()

	var key *big.Int
	err := s.checkSize(v)
	if err == nil {
		key, err = fn(v)
	}

	s.metrics.RecordEncode(time.Since(start), err)
	bits := 0
	if key != nil {
		bits = key.BitLen()
	}
	s.logger.LogEncode(context.Background(), kind, bits, err)

	return key, err
}

// DecodeKey returns the vector addressed by a Hilbert key of this space.
func (s *Space) DecodeKey(key *big.Int) (*sparse.Vector, error) {
	return s.codec.DecodeVector(key, s.cfg.Size)
}

// Bucket returns the top bits of the Hilbert key of v.
func (s *Space) Bucket(v sparse.SparseVector, bits uint) (uint64, error) {
	key, err := s.Key(v)
	if err != nil {
		return 0, err
	}
	return hilbert.Bucket(key, s.codec.KeyBits(s.cfg.Size), bits)
}

func (s *Space) checkSize(v sparse.SparseVector) error {
	if v.Size() != s.cfg.Size {
		return &ErrDimensionMismatch{Expected: s.cfg.Size, Actual: v.Size()}
	}
	return nil
}

func (s *Space) workers() int {
	if s.cfg.Workers > 0 {
		return s.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}
