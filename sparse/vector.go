package sparse

import (
	"iter"
	"math"

	"github.com/tidwall/btree"
)

// SparseVector is the capability set shared by sparse vector backends.
//
// All iterates the stored entries in ascending index order. Backends that
// defer zero-pruning may yield zero values; consumers treat them as absent.
type SparseVector interface {
	Size() int
	Count() int
	Get(index int) (float64, error)
	All() iter.Seq2[int, float64]
}

var _ SparseVector = (*Vector)(nil)

// Vector is the reference sparse vector backed by an ordered map.
//
// A Vector must not be mutated concurrently. Reads (including every safe
// operation, which only reads its operands) may run in parallel as long as no
// goroutine mutates the vector at the same time.
type Vector struct {
	size    int
	entries *btreeMap
	frozen  bool
}

type btreeMap = btree.Map[int, float64]

func newEntries() *btreeMap {
	return btree.NewMap[int, float64](0)
}

// New returns an empty vector of the given size.
// It panics if size is not positive.
func New(size int) *Vector {
	if size <= 0 {
		panic("sparse: size must be positive")
	}
	return &Vector{size: size, entries: newEntries()}
}

// FromPairs builds a vector from parallel index and value slices.
// Values addressing the same index are summed. Zero results are pruned.
func FromPairs(size int, indices []int, values []float64) (*Vector, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if len(indices) != len(values) {
		return nil, &ErrSizeMismatch{Expected: len(indices), Actual: len(values)}
	}

	v := &Vector{size: size, entries: newEntries()}
	for k, i := range indices {
		if i < 0 || i >= size {
			return nil, &ErrIndexOutOfRange{Index: i, Size: size}
		}
		cur, _ := v.entries.Get(i)
		v.entries.Set(i, cur+values[k])
	}
	v.prune()

	return v, nil
}

// FromElements builds a vector from elements. Elements sharing a slot are summed.
func FromElements(size int, elems ...Element) (*Vector, error) {
	indices := make([]int, len(elems))
	values := make([]float64, len(elems))
	for k, e := range elems {
		indices[k] = e.Index
		values[k] = e.Value
	}
	return FromPairs(size, indices, values)
}

// FromDense builds a vector of size len(values) from its non-zero coordinates.
func FromDense(values []float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, ErrInvalidSize
	}

	v := &Vector{size: len(values), entries: newEntries()}
	for i, x := range values {
		if x != 0 {
			v.entries.Set(i, x)
		}
	}
	return v, nil
}

// Size returns the dimension of the vector.
func (v *Vector) Size() int { return v.size }

// Count returns the number of stored entries.
func (v *Vector) Count() int { return v.entries.Len() }

// Saturation returns Count()/Size().
func (v *Vector) Saturation() float64 {
	return float64(v.entries.Len()) / float64(v.size)
}

// Frozen reports whether the vector rejects mutation.
func (v *Vector) Frozen() bool { return v.frozen }

// Freeze makes v immutable and returns it. Freezing is permanent; use Copy to
// obtain a mutable vector with the same entries.
func (v *Vector) Freeze() *Vector {
	v.frozen = true
	return v
}

// Get returns the value at index, or 0 if the slot is empty.
func (v *Vector) Get(index int) (float64, error) {
	if err := v.checkIndex(index); err != nil {
		return 0, err
	}
	x, _ := v.entries.Get(index)
	return x, nil
}

// Put stores value at index and returns the previous value.
// A zero value is stored as-is; call RemoveZeros to canonicalize.
func (v *Vector) Put(index int, value float64) (float64, error) {
	if v.frozen {
		return 0, &ErrImmutableOperation{Op: "Put"}
	}
	if err := v.checkIndex(index); err != nil {
		return 0, err
	}
	prev, _ := v.entries.Set(index, value)
	return prev, nil
}

// All iterates the stored entries in ascending index order.
// The vector must not be mutated during iteration.
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		v.entries.Scan(yield)
	}
}

// Elements returns the stored entries as elements sorted by index.
func (v *Vector) Elements() []Element {
	out := make([]Element, 0, v.entries.Len())
	v.entries.Scan(func(i int, x float64) bool {
		out = append(out, Element{Index: i, Value: x})
		return true
	})
	return out
}

// Indices returns the stored indices in ascending order.
func (v *Vector) Indices() []int {
	out := make([]int, 0, v.entries.Len())
	v.entries.Scan(func(i int, _ float64) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Dense returns the vector as a dense slice of length Size().
func (v *Vector) Dense() []float64 {
	out := make([]float64, v.size)
	v.entries.Scan(func(i int, x float64) bool {
		out[i] = x
		return true
	})
	return out
}

// Copy returns a deep, mutable copy of v.
func (v *Vector) Copy() *Vector {
	out := &Vector{size: v.size, entries: newEntries()}
	v.entries.Scan(func(i int, x float64) bool {
		out.entries.Set(i, x)
		return true
	})
	return out
}

// Equal reports whether v and other have the same size and the same non-zero
// (index, value) pairs. Zero entries left by destructive operations are
// ignored on both sides.
func (v *Vector) Equal(other SparseVector) bool {
	if other == nil || v.size != other.Size() {
		return false
	}

	for i, x := range v.All() {
		if x != lookup(other, i) {
			return false
		}
	}
	for i, y := range other.All() {
		if y != lookup(v, i) {
			return false
		}
	}
	return true
}

func (v *Vector) checkIndex(index int) error {
	if index < 0 || index >= v.size {
		return &ErrIndexOutOfRange{Index: index, Size: v.size}
	}
	return nil
}

// prune removes zero-valued entries.
func (v *Vector) prune() {
	var zeros []int
	v.entries.Scan(func(i int, x float64) bool {
		if x == 0 {
			zeros = append(zeros, i)
		}
		return true
	})
	for _, i := range zeros {
		v.entries.Delete(i)
	}
}

// lookup reads index i from any backend, treating out-of-range as absent.
func lookup(sv SparseVector, i int) float64 {
	if vec, ok := sv.(*Vector); ok {
		x, _ := vec.entries.Get(i)
		return x
	}
	x, err := sv.Get(i)
	if err != nil {
		return 0
	}
	return x
}

// squaredNorm sums the squares of the entries in ascending index order.
func squaredNorm(sv SparseVector) float64 {
	var sum float64
	for _, x := range sv.All() {
		sum += x * x
	}
	return sum
}

func magnitude(sv SparseVector) float64 {
	return math.Sqrt(squaredNorm(sv))
}
