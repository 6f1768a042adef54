package permutation

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/hupe1980/rivgo/sparse"
)

// DefaultSeed is used when callers do not pick a permutation seed.
const DefaultSeed int64 = 0

// Permutations holds a forward index map and its inverse.
type Permutations struct {
	forward []int
	inverse []int
	seed    int64
}

var _ sparse.Permuter = (*Permutations)(nil)

// Generate returns the permutation of [0, size) produced by
// rand.New(rand.NewSource(seed)).Perm(size), together with its inverse.
// The same (size, seed) always yields the same permutation.
func Generate(size int, seed int64) (*Permutations, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	forward := rand.New(rand.NewSource(seed)).Perm(size) //nolint:gosec // reproducible, not secret
	return &Permutations{
		forward: forward,
		inverse: invert(forward),
		seed:    seed,
	}, nil
}

// FromForward builds permutations from an explicit forward map.
// The slice is copied. Seed reports 0 for such permutations.
func FromForward(forward []int) (*Permutations, error) {
	if len(forward) == 0 {
		return nil, ErrInvalidSize
	}

	seen := make([]bool, len(forward))
	for i, j := range forward {
		if j < 0 || j >= len(forward) || seen[j] {
			return nil, fmt.Errorf("%w: position %d maps to %d", ErrNotBijection, i, j)
		}
		seen[j] = true
	}

	f := slices.Clone(forward)
	return &Permutations{forward: f, inverse: invert(f)}, nil
}

func invert(forward []int) []int {
	inverse := make([]int, len(forward))
	for i, j := range forward {
		inverse[j] = i
	}
	return inverse
}

// Size returns the number of indices the permutation covers.
func (p *Permutations) Size() int { return len(p.forward) }

// Seed returns the seed the permutation was generated from.
func (p *Permutations) Seed() int64 { return p.seed }

// Forward maps index one step forward. index must be in [0, Size()).
func (p *Permutations) Forward(index int) int { return p.forward[index] }

// Inverse maps index one step backward. index must be in [0, Size()).
func (p *Permutations) Inverse(index int) int { return p.inverse[index] }

// ForwardMap returns a copy of the forward map.
func (p *Permutations) ForwardMap() []int { return slices.Clone(p.forward) }

// InverseMap returns a copy of the inverse map.
func (p *Permutations) InverseMap() []int { return slices.Clone(p.inverse) }

// Apply maps index through the forward map times times (times > 0), through
// the inverse map -times times (times < 0), or returns it unchanged (times == 0).
func (p *Permutations) Apply(index, times int) (int, error) {
	if index < 0 || index >= len(p.forward) {
		return 0, &ErrIndexOutOfRange{Index: index, Size: len(p.forward)}
	}

	m := p.forward
	if times < 0 {
		m = p.inverse
		times = -times
	}
	for range times {
		index = m[index]
	}
	return index, nil
}
