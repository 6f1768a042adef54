package label

import (
	"math"
	"testing"

	"github.com/hupe1980/rivgo/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	tests := []struct {
		token    string
		expected int64
	}{
		{"", 0},
		{"a", 970},
		{"ab", 97*10 + 98*100},
		{"seed", 1112250},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Seed(tt.token), "Seed(%q)", tt.token)
	}

	assert.NotEqual(t, Seed("ab"), Seed("ba"), "position matters")
}

func TestSeed_Wraparound(t *testing.T) {
	// 10^p overflows int64 past p = 18; the sum must still be well defined.
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
	assert.Equal(t, Seed(long), Seed(long))
	assert.NotEqual(t, Seed(long), Seed(long[:len(long)-1]))
}

func TestGenerate_Regression(t *testing.T) {
	const (
		size = 16000
		nnz  = 48
		want = "207|-1.000000 369|1.000000 442|-1.000000 484|-1.000000 1018|1.000000 " +
			"2220|-1.000000 2359|1.000000 2489|1.000000 2572|1.000000 2684|1.000000 " +
			"3314|-1.000000 3351|1.000000 3567|1.000000 3672|-1.000000 3987|-1.000000 " +
			"4524|-1.000000 4707|-1.000000 4900|1.000000 4997|-1.000000 5836|1.000000 " +
			"6562|1.000000 6686|1.000000 6697|1.000000 8356|1.000000 8388|-1.000000 " +
			"8501|1.000000 8580|1.000000 8634|-1.000000 8971|-1.000000 9898|1.000000 " +
			"10037|-1.000000 10186|-1.000000 10263|1.000000 10856|-1.000000 11044|1.000000 " +
			"11287|1.000000 11445|-1.000000 11461|1.000000 11523|1.000000 11873|-1.000000 " +
			"12254|-1.000000 13558|1.000000 14159|-1.000000 14576|-1.000000 14630|-1.000000 " +
			"14927|1.000000 15026|-1.000000 15670|-1.000000 16000"
	)

	v, err := Generate(size, nnz, "seed")
	require.NoError(t, err)
	assert.Equal(t, size, v.Size())
	assert.Equal(t, nnz, v.Count())
	assert.Equal(t, want, v.String())

	assert.Equal(t, []int{
		207, 369, 442, 484, 1018, 2220, 2359, 2489, 2572, 2684, 3314, 3351,
		3567, 3672, 3987, 4524, 4707, 4900, 4997, 5836, 6562, 6686, 6697, 8356,
		8388, 8501, 8580, 8634, 8971, 9898, 10037, 10186, 10263, 10856, 11044, 11287,
		11445, 11461, 11523, 11873, 12254, 13558, 14159, 14576, 14630, 14927, 15026, 15670,
	}, v.Indices())

	var plus, minus int
	for _, x := range v.All() {
		switch x {
		case 1:
			plus++
		case -1:
			minus++
		default:
			t.Fatalf("unexpected value %v", x)
		}
	}
	assert.Equal(t, 24, plus)
	assert.Equal(t, 24, minus)

	again, err := Generate(size, nnz, "seed")
	require.NoError(t, err)
	assert.True(t, again.Equal(v))
}

func TestGenerate_MatchesDraw(t *testing.T) {
	v, err := Generate(1000, 8, "token")
	require.NoError(t, err)

	indices := drawIndices(1000, 8, Seed("token"))
	assert.ElementsMatch(t, indices, v.Indices())
}

func TestGenerate_OddNNZRoundsUp(t *testing.T) {
	v, err := Generate(100, 7, "odd")
	require.NoError(t, err)
	assert.Equal(t, 8, v.Count())

	var sum float64
	for _, x := range v.All() {
		sum += x
	}
	assert.Zero(t, sum, "ternary values balance")
	assert.InDelta(t, math.Sqrt(8), v.Magnitude(), 1e-12)
}

func TestGenerate_DistinctTokens(t *testing.T) {
	a, err := Generate(16000, 48, "apple")
	require.NoError(t, err)
	b, err := Generate(16000, 48, "apples")
	require.NoError(t, err)

	assert.False(t, a.Equal(b))

	sim, err := a.Similarity(b)
	require.NoError(t, err)
	assert.Less(t, math.Abs(sim), 0.5, "unrelated labels are nearly orthogonal")
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(0, 4, "x")
	assert.ErrorIs(t, err, sparse.ErrInvalidSize)

	_, err = Generate(10, 0, "x")
	assert.ErrorIs(t, err, ErrInvalidNNZ)

	_, err = Generate(10, -2, "x")
	assert.ErrorIs(t, err, ErrInvalidNNZ)

	var ce *ErrCapacity
	_, err = Generate(7, 7, "x")
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 8, ce.Requested)
	assert.Equal(t, 7, ce.Size)
}

func TestGenerate_FullCapacity(t *testing.T) {
	v, err := Generate(8, 8, "full")
	require.NoError(t, err)
	assert.Equal(t, 8, v.Count())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, v.Indices())
}

func TestGenerateWindow(t *testing.T) {
	text := "hello world"

	tests := []struct {
		name         string
		start, width int
		expected     string
	}{
		{"Inside", 0, 5, "hello"},
		{"Middle", 6, 5, "world"},
		{"PastEnd", 8, 10, "rld"},
		{"NegativeStart", -3, 4, "hell"},
		{"StartBeyond", 20, 3, ""},
		{"NegativeWidth", 2, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateWindow(1000, 10, text, tt.start, tt.width)
			require.NoError(t, err)

			want, err := Generate(1000, 10, tt.expected)
			require.NoError(t, err)
			assert.True(t, got.Equal(want))
		})
	}
}

func TestGenerateWindow_Runes(t *testing.T) {
	got, err := GenerateWindow(500, 4, "naïve café", 2, 3)
	require.NoError(t, err)

	want, err := Generate(500, 4, "ïve")
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}
