package rivgo

import (
	"context"
	"math/big"
	"testing"

	"github.com/hupe1980/rivgo/label"
	"github.com/hupe1980/rivgo/permutation"
	"github.com/hupe1980/rivgo/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 2000
	cfg.NNZ = 16
	cfg.Workers = 4
	cfg.LabelCacheSize = 256
	return cfg
}

func newTestSpace(t *testing.T, opts ...Option) *Space {
	t.Helper()
	s, err := New(testConfig(), opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := newTestSpace(t)
	assert.Equal(t, 2000, s.Size())
	assert.Equal(t, testConfig(), s.Config())
	assert.Equal(t, 2000, s.Permutations().Size())

	cfg := testConfig()
	cfg.Size = 0
	_, err := New(cfg)
	var ic *ErrInvalidConfig
	assert.ErrorAs(t, err, &ic)
}

func TestNew_SharedPermutationCache(t *testing.T) {
	c := permutation.NewCache(4)

	a := newTestSpace(t, WithPermutationCache(c))
	b := newTestSpace(t, WithPermutationCache(c))
	assert.Same(t, a.Permutations(), b.Permutations())

	plain := newTestSpace(t)
	assert.NotSame(t, a.Permutations(), plain.Permutations())
	assert.Equal(t, a.Permutations().ForwardMap(), plain.Permutations().ForwardMap())
}

func TestSpace_Label(t *testing.T) {
	mc := &BasicMetricsCollector{}
	s := newTestSpace(t, WithMetricsCollector(mc))

	v, err := s.Label("seed")
	require.NoError(t, err)
	want, err := label.Generate(2000, 16, "seed")
	require.NoError(t, err)
	assert.True(t, v.Equal(want))
	assert.True(t, v.Frozen())

	w, err := s.LabelWindow("a seed b", 2, 4)
	require.NoError(t, err)
	assert.True(t, w.Equal(want))

	assert.Equal(t, int64(2), mc.GetStats().LabelCount)
}

func TestSpace_Document(t *testing.T) {
	mc := &BasicMetricsCollector{}
	s := newTestSpace(t, WithMetricsCollector(mc))
	ctx := context.Background()

	tokens := []string{"the", "cat", "sat", "on", "the", "mat"}
	doc, err := s.Document(ctx, tokens)
	require.NoError(t, err)
	assert.False(t, doc.Frozen())

	expected := sparse.New(2000)
	for _, tok := range tokens {
		l, err := label.Generate(2000, 16, tok)
		require.NoError(t, err)
		_, err = expected.DestructiveAdd(l)
		require.NoError(t, err)
	}
	_, err = expected.DestructiveRemoveZeros()
	require.NoError(t, err)
	assert.True(t, doc.Equal(expected))

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.DocumentCount)
	assert.Equal(t, int64(6), stats.DocumentTokens)

	empty, err := s.Document(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Count())
}

func TestSpace_DocumentSimilarity(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	a, err := s.Document(ctx, []string{"red", "apple", "tree", "fruit"})
	require.NoError(t, err)
	b, err := s.Document(ctx, []string{"green", "apple", "tree", "fruit"})
	require.NoError(t, err)
	c, err := s.Document(ctx, []string{"fast", "car", "engine", "road"})
	require.NoError(t, err)

	ab, err := s.Similarity(a, b)
	require.NoError(t, err)
	ac, err := s.Similarity(a, c)
	require.NoError(t, err)
	assert.Greater(t, ab, ac)
	assert.Greater(t, ab, 0.5)
}

func TestSpace_DocumentCanceled(t *testing.T) {
	s := newTestSpace(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Document(ctx, []string{"a", "b"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSpace_Context(t *testing.T) {
	s := newTestSpace(t)
	tokens := []string{"dog", "bites", "man"}

	got, err := s.Context(tokens, 1, 1)
	require.NoError(t, err)

	dog, err := s.Label("dog")
	require.NoError(t, err)
	man, err := s.Label("man")
	require.NoError(t, err)
	left, err := s.Rotate(dog, -1)
	require.NoError(t, err)
	right, err := s.Rotate(man, 1)
	require.NoError(t, err)
	want, err := left.Add(right)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	// Word order changes the context vector.
	swapped, err := s.Context([]string{"man", "bites", "dog"}, 1, 1)
	require.NoError(t, err)
	assert.False(t, got.Equal(swapped))

	// A window of zero sees nothing.
	none, err := s.Context(tokens, 1, 0)
	require.NoError(t, err)
	assert.Zero(t, none.Count())

	// The window is clipped at the ends of the sentence.
	edge, err := s.Context(tokens, 0, 5)
	require.NoError(t, err)
	assert.NotZero(t, edge.Count())
}

func TestSpace_ContextErrors(t *testing.T) {
	s := newTestSpace(t)

	var ire *sparse.ErrIndexOutOfRange
	_, err := s.Context([]string{"a"}, 1, 1)
	assert.ErrorAs(t, err, &ire)

	_, err = s.Context([]string{"a"}, 0, -1)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestSpace_Rotate(t *testing.T) {
	mc := &BasicMetricsCollector{}
	s := newTestSpace(t, WithMetricsCollector(mc))

	v, err := s.Label("rotate")
	require.NoError(t, err)

	r, err := s.Rotate(v, 3)
	require.NoError(t, err)
	assert.False(t, r.Equal(v))

	back, err := s.Rotate(r, -3)
	require.NoError(t, err)
	assert.True(t, back.Equal(v))

	same, err := s.Rotate(v, 0)
	require.NoError(t, err)
	assert.Same(t, v, same)

	var dm *ErrDimensionMismatch
	_, err = s.Rotate(sparse.New(10), 1)
	assert.ErrorAs(t, err, &dm)

	stats := mc.GetStats()
	assert.Equal(t, int64(4), stats.PermuteCount)
	assert.Equal(t, int64(1), stats.PermuteErrors)
}

func TestSpace_Similarity(t *testing.T) {
	s := newTestSpace(t)

	v, err := s.Label("x")
	require.NoError(t, err)

	sim, err := s.Similarity(v, v)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sim)

	sim, err = s.Similarity(v, sparse.New(2000))
	require.NoError(t, err)
	assert.Zero(t, sim)

	var dm *ErrDimensionMismatch
	_, err = s.Similarity(v, sparse.New(3))
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2000, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}

func TestSpace_Keys(t *testing.T) {
	mc := &BasicMetricsCollector{}
	cfg := testConfig()
	cfg.Size = 64
	cfg.NNZ = 4
	s, err := New(cfg, WithMetricsCollector(mc))
	require.NoError(t, err)

	v := sparse.MustParse("1|5 7|1000 63|42 64")

	key, err := s.Key(v)
	require.NoError(t, err)
	back, err := s.DecodeKey(key)
	require.NoError(t, err)
	assert.True(t, back.Equal(v))

	fast, err := s.FastKey(v)
	require.NoError(t, err)
	assert.NotZero(t, fast.Cmp(key))

	b1, err := s.Bucket(v, 8)
	require.NoError(t, err)
	b2, err := s.Bucket(v.Multiply(1), 8)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	_, err = s.Key(sparse.New(63))
	var dm *ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)

	_, err = s.DecodeKey(big.NewInt(-1))
	assert.Error(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(5), stats.EncodeCount)
	assert.Equal(t, int64(1), stats.EncodeErrors)
}

func TestSpace_StrictKeys(t *testing.T) {
	cfg := testConfig()
	cfg.Size = 8
	cfg.NNZ = 2
	cfg.HilbertStrict = true
	cfg.HilbertOrder = 8
	s, err := New(cfg)
	require.NoError(t, err)

	_, err = s.Key(sparse.MustParse("0|-1 8"))
	assert.Error(t, err)

	_, err = s.Key(sparse.MustParse("0|255 8"))
	assert.NoError(t, err)
}

func TestSpace_ConcurrentUse(t *testing.T) {
	s := newTestSpace(t)
	ctx := context.Background()

	docs := make([]*sparse.Vector, 8)
	done := make(chan int)
	for i := range docs {
		go func() {
			v, err := s.Document(ctx, []string{"shared", "tokens", "everywhere"})
			assert.NoError(t, err)
			docs[i] = v
			done <- i
		}()
	}
	for range docs {
		<-done
	}

	for _, d := range docs[1:] {
		assert.True(t, d.Equal(docs[0]))
	}
}
