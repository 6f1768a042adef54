package sparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a := mustPairs(t, 10, []int{0, 4, 9}, []float64{1, -1, 2.5})
	b := mustPairs(t, 10, []int{4, 5}, []float64{1, 3})
	c := mustPairs(t, 10, []int{0}, []float64{0.5})

	sum, err := a.Add(b, c)
	require.NoError(t, err)
	assert.Equal(t, []Element{{0, 1.5}, {5, 3}, {9, 2.5}}, sum.Elements(), "index 4 cancels and is pruned")

	// Inputs are untouched.
	assert.Equal(t, "0|1.000000 4|-1.000000 9|2.500000 10", a.String())
	assert.Equal(t, 2, b.Count())
}

func TestAdd_Identity(t *testing.T) {
	a := mustPairs(t, 100, []int{3, 50, 99}, []float64{1, -2, 0.25})

	sum, err := a.Add(New(100))
	require.NoError(t, err)
	assert.True(t, sum.Equal(a))

	sum, err = a.Add()
	require.NoError(t, err)
	assert.True(t, sum.Equal(a))
}

func TestSubtract(t *testing.T) {
	a := mustPairs(t, 10, []int{1, 2}, []float64{3, 4})
	b := mustPairs(t, 10, []int{2, 3}, []float64{4, 1})

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, []Element{{1, 3}, {3, -1}}, diff.Elements())

	self, err := a.Subtract(a)
	require.NoError(t, err)
	assert.Equal(t, 0, self.Count())
	assert.True(t, self.Equal(New(10)))
}

func TestSizeMismatch(t *testing.T) {
	a := New(10)
	b := New(11)

	var sme *ErrSizeMismatch

	_, err := a.Add(b)
	require.ErrorAs(t, err, &sme)
	assert.Equal(t, 10, sme.Expected)
	assert.Equal(t, 11, sme.Actual)

	_, err = a.Subtract(New(10), b)
	assert.ErrorAs(t, err, &sme)

	_, err = a.Dot(b)
	assert.ErrorAs(t, err, &sme)

	_, err = a.Similarity(b)
	assert.ErrorAs(t, err, &sme)
}

func TestDestructiveAdd(t *testing.T) {
	acc := New(10)
	a := mustPairs(t, 10, []int{1, 2}, []float64{1, -1})
	b := mustPairs(t, 10, []int{2, 3}, []float64{1, 1})

	got, err := acc.DestructiveAdd(a, b)
	require.NoError(t, err)
	assert.Same(t, acc, got, "destructive ops return the receiver")

	// The fast path keeps the cancelled slot until explicitly pruned.
	assert.Equal(t, 3, acc.Count())
	x, err := acc.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)

	_, err = acc.DestructiveRemoveZeros()
	require.NoError(t, err)
	assert.Equal(t, []Element{{1, 1}, {3, 1}}, acc.Elements())
}

func TestDestructiveAdd_Self(t *testing.T) {
	a := mustPairs(t, 10, []int{1, 2}, []float64{1, -1})

	_, err := a.DestructiveAdd(a)
	require.NoError(t, err)
	assert.Equal(t, []Element{{1, 2}, {2, -2}}, a.Elements())

	_, err = a.DestructiveSubtract(a)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Count())
	_, _ = a.DestructiveRemoveZeros()
	assert.Equal(t, 0, a.Count())
}

func TestDestructiveSubtract_Chaining(t *testing.T) {
	a := mustPairs(t, 10, []int{1}, []float64{5})
	b := mustPairs(t, 10, []int{1}, []float64{2})

	v, err := a.DestructiveSubtract(b)
	require.NoError(t, err)
	v, err = v.DestructiveMultiply(2)
	require.NoError(t, err)
	v, err = v.DestructiveDivide(3)
	require.NoError(t, err)

	x, _ := v.Get(1)
	assert.Equal(t, 2.0, x)
}

func TestMultiplyDivide(t *testing.T) {
	a := mustPairs(t, 10, []int{1, 5}, []float64{1.5, -3})

	for _, c := range []float64{2, -0.5, 1e-3, 7, math.Pi} {
		back := a.Multiply(c).Divide(c)
		assert.Equal(t, a.Count(), back.Count())
		for i, x := range a.All() {
			y, _ := back.Get(i)
			assert.InDelta(t, x, y, 1e-12, "c=%v index=%d", c, i)
		}
	}

	zero := a.Multiply(0)
	assert.Equal(t, 0, zero.Count(), "scaling by zero prunes every entry")
}

func TestDivideByZero(t *testing.T) {
	a := mustPairs(t, 10, []int{1, 5}, []float64{1.5, -3})

	d := a.Divide(0)
	x, _ := d.Get(1)
	y, _ := d.Get(5)
	assert.True(t, math.IsInf(x, 1))
	assert.True(t, math.IsInf(y, -1))
}

func TestMagnitudeAndNormalize(t *testing.T) {
	a := mustPairs(t, 10, []int{0, 9}, []float64{3, 4})
	assert.Equal(t, 5.0, a.Magnitude())

	n := a.Normalize()
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-12)
	x, _ := n.Get(0)
	assert.InDelta(t, 0.6, x, 1e-12)

	empty := New(10)
	assert.Equal(t, 0.0, empty.Magnitude())
	assert.Equal(t, 0, empty.Normalize().Count())
}

func TestNormalize_ZeroMagnitudePropagatesNaN(t *testing.T) {
	v := New(10)
	_, err := v.Put(3, 0)
	require.NoError(t, err)

	n := v.Normalize()
	x, err := n.Get(3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(x))
}

func TestDot(t *testing.T) {
	a := mustPairs(t, 10, []int{0, 1, 2}, []float64{1, 2, 3})
	b := mustPairs(t, 10, []int{1, 2, 7}, []float64{4, 5, 6})

	d, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 23.0, d)

	d, err = b.Dot(a)
	require.NoError(t, err)
	assert.Equal(t, 23.0, d)

	d, err = a.Dot(New(10))
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Vector
		expected float64
	}{
		{"Identical", mustPairs(t, 4, []int{0, 1}, []float64{1, 2}), mustPairs(t, 4, []int{0, 1}, []float64{1, 2}), 1},
		{"Opposite", mustPairs(t, 4, []int{0, 1}, []float64{1, 2}), mustPairs(t, 4, []int{0, 1}, []float64{-1, -2}), -1},
		{"Orthogonal", mustPairs(t, 4, []int{0}, []float64{1}), mustPairs(t, 4, []int{1}, []float64{1}), 0},
		{"Scaled", mustPairs(t, 4, []int{0, 3}, []float64{1, 1}), mustPairs(t, 4, []int{0, 3}, []float64{5, 5}), 1},
		{"ZeroLeft", New(4), mustPairs(t, 4, []int{0}, []float64{1}), 0},
		{"ZeroRight", mustPairs(t, 4, []int{0}, []float64{1}), New(4), 0},
		{"BothZero", New(4), New(4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Similarity(tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
			assert.GreaterOrEqual(t, got, -1.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestSimilarity_SelfIsExactlyOne(t *testing.T) {
	v := mustPairs(t, 1000, []int{3, 17, 256, 999}, []float64{0.1, -0.7, 1.0 / 3, 42})

	for _, u := range []*Vector{v, v.Normalize()} {
		sim, err := u.Similarity(u)
		require.NoError(t, err)
		assert.Equal(t, 1.0, sim)
	}
}
