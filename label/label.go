package label

import (
	"fmt"
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/rivgo/internal/conv"
	"github.com/hupe1980/rivgo/sparse"
)

// Seed derives the generator seed of a token: the sum of every rune's code
// point times 10^p, where p is the rune's 1-indexed position. Arithmetic wraps
// around on int64 overflow.
//
//	Seed("seed") == 1112250
func Seed(token string) int64 {
	var (
		seed int64
		pow  int64 = 1
	)
	for _, r := range token {
		pow *= 10
		seed += int64(r) * pow
	}
	return seed
}

// Generate returns the label of token. It is a pure function of its inputs.
//
// nnz is rounded up to the next even number k. The k indices are drawn
// without repetition from rand.NewSource(Seed(token)); the first half of the
// draws receive +1 and the second half -1 after a shuffle seeded the same way.
func Generate(size, nnz int, token string) (*sparse.Vector, error) {
	return generate(size, nnz, Seed(token))
}

// GenerateWindow generates the label of the rune window text[start:start+width].
// The window is clamped to the text, so out-of-range bounds never fail; an
// empty window yields the label of the empty string.
func GenerateWindow(size, nnz int, text string, start, width int) (*sparse.Vector, error) {
	return Generate(size, nnz, window([]rune(text), start, width))
}

func window(runes []rune, start, width int) string {
	start = min(max(start, 0), len(runes))
	end := min(start+max(width, 0), len(runes))
	return string(runes[start:end])
}

func generate(size, nnz int, seed int64) (*sparse.Vector, error) {
	if size <= 0 {
		return nil, sparse.ErrInvalidSize
	}
	if nnz <= 0 {
		return nil, ErrInvalidNNZ
	}

	k := nnz + nnz%2
	if size < k {
		return nil, &ErrCapacity{Requested: k, Size: size}
	}
	if !conv.FitsUint32(size) {
		return nil, fmt.Errorf("label: size %d exceeds 32-bit index range", size)
	}

	indices := drawIndices(size, k, seed)
	values := make([]float64, k)
	for i := range values {
		if i < k/2 {
			values[i] = 1
		} else {
			values[i] = -1
		}
	}
	rand.New(rand.NewSource(seed)).Shuffle(k, func(i, j int) { //nolint:gosec // reproducible, not secret
		values[i], values[j] = values[j], values[i]
	})

	return sparse.FromPairs(size, indices, values)
}

// drawIndices returns k distinct indices in draw order. size >= k and size
// fits in uint32.
func drawIndices(size, k int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducible, not secret
	seen := roaring.New()

	out := make([]int, 0, k)
	for len(out) < k {
		i := rng.Intn(size)
		if seen.CheckedAdd(uint32(i)) { //nolint:gosec // i < size <= MaxUint32
			out = append(out, i)
		}
	}
	return out
}
