package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/rivgo/sparse"
	"gonum.org/v1/gonum/floats"
)

// Neighbor is one entry of a brute-force similarity ranking.
type Neighbor struct {
	ID         int
	Similarity float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// SparseVector returns a vector of the given size with nnz Gaussian entries at
// distinct indices. nnz is capped at size.
func (r *RNG) SparseVector(size, nnz int) *sparse.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sparseVectorLocked(size, nnz)
}

func (r *RNG) sparseVectorLocked(size, nnz int) *sparse.Vector {
	nnz = min(nnz, size)
	v := sparse.New(size)
	for _, i := range r.rand.Perm(size)[:nnz] {
		x := r.rand.NormFloat64()
		for x == 0 {
			x = r.rand.NormFloat64()
		}
		// Indices come from Perm(size), so Put cannot fail.
		_, _ = v.Put(i, x)
	}
	return v
}

// SparseVectors generates num random sparse vectors.
func (r *RNG) SparseVectors(num, size, nnz int) []*sparse.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*sparse.Vector, num)
	for i := range out {
		out[i] = r.sparseVectorLocked(size, nnz)
	}
	return out
}

// IntegerVector returns a sparse vector with nnz small positive integral
// entries. Integral values keep sums exact, which makes reduction tests
// independent of summation order.
func (r *RNG) IntegerVector(size, nnz, maxValue int) *sparse.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	nnz = min(nnz, size)
	v := sparse.New(size)
	for _, i := range r.rand.Perm(size)[:nnz] {
		_, _ = v.Put(i, float64(1+r.rand.Intn(maxValue)))
	}
	return v
}

// Coordinates returns dims integral coordinates in [0, 2^order).
func (r *RNG) Coordinates(dims int, order uint) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, dims)
	for i := range out {
		u := r.rand.Uint64()
		if order < 64 {
			u &= (uint64(1) << order) - 1
		}
		out[i] = float64(u)
	}
	return out
}

const letters = "abcdefghijklmnopqrstuvwxyz"

// Token returns a random lowercase token of the given length.
func (r *RNG) Token(length int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := make([]byte, length)
	for i := range b {
		b[i] = letters[r.rand.Intn(len(letters))]
	}
	return string(b)
}

// Tokens returns n random tokens with lengths in [minLen, maxLen].
func (r *RNG) Tokens(n, minLen, maxLen int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = r.Token(minLen + r.Intn(maxLen-minLen+1))
	}
	return out
}

// ApproxEqual reports whether a and b have the same length and agree
// element-wise within tol (absolute or relative).
func ApproxEqual(a, b []float64, tol float64) bool {
	return len(a) == len(b) && floats.EqualApprox(a, b, tol)
}

// DenseNorm returns the Euclidean norm of a dense slice.
func DenseNorm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, 2)
}

// BruteForceNeighbors ranks candidates by cosine similarity to query,
// most similar first, and returns the top k.
func BruteForceNeighbors(query *sparse.Vector, candidates []*sparse.Vector, k int) []Neighbor {
	out := make([]Neighbor, 0, len(candidates))
	for id, c := range candidates {
		sim, err := query.Similarity(c)
		if err != nil {
			continue
		}
		out = append(out, Neighbor{ID: id, Similarity: sim})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})

	if k < len(out) {
		out = out[:k]
	}
	return out
}
