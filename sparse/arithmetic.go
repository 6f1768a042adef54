package sparse

import "math"

// Add returns the entrywise sum of v and all others in a new, pruned vector.
// Every operand must have v's size.
func (v *Vector) Add(others ...SparseVector) (*Vector, error) {
	if err := v.checkSizes(others); err != nil {
		return nil, err
	}
	out := v.Copy()
	out.accumulate(others, 1)
	out.prune()
	return out, nil
}

// Subtract returns v minus every operand in a new, pruned vector.
func (v *Vector) Subtract(others ...SparseVector) (*Vector, error) {
	if err := v.checkSizes(others); err != nil {
		return nil, err
	}
	out := v.Copy()
	out.accumulate(others, -1)
	out.prune()
	return out, nil
}

// DestructiveAdd adds every operand into v and returns v.
//
// This is the accumulation fast path: operand sizes are NOT checked and
// summing vectors of a different size is undefined (entries beyond v's size
// may be stored). Zero results are kept until DestructiveRemoveZeros runs.
// The only error is ErrImmutable for a frozen receiver.
func (v *Vector) DestructiveAdd(others ...SparseVector) (*Vector, error) {
	if v.frozen {
		return v, &ErrImmutableOperation{Op: "DestructiveAdd"}
	}
	v.accumulate(others, 1)
	return v, nil
}

// DestructiveSubtract subtracts every operand from v and returns v.
// It has the same unchecked contract as DestructiveAdd.
func (v *Vector) DestructiveSubtract(others ...SparseVector) (*Vector, error) {
	if v.frozen {
		return v, &ErrImmutableOperation{Op: "DestructiveSubtract"}
	}
	v.accumulate(others, -1)
	return v, nil
}

// Multiply returns v scaled by c, pruned.
func (v *Vector) Multiply(c float64) *Vector {
	out := v.Copy()
	out.scale(func(x float64) float64 { return x * c })
	out.prune()
	return out
}

// Divide returns v divided by c, pruned. Division by zero yields IEEE
// NaN/Inf entries rather than an error.
func (v *Vector) Divide(c float64) *Vector {
	out := v.Copy()
	out.scale(func(x float64) float64 { return x / c })
	out.prune()
	return out
}

// DestructiveMultiply scales v in place and returns it.
func (v *Vector) DestructiveMultiply(c float64) (*Vector, error) {
	if v.frozen {
		return v, &ErrImmutableOperation{Op: "DestructiveMultiply"}
	}
	v.scale(func(x float64) float64 { return x * c })
	return v, nil
}

// DestructiveDivide divides v in place and returns it.
func (v *Vector) DestructiveDivide(c float64) (*Vector, error) {
	if v.frozen {
		return v, &ErrImmutableOperation{Op: "DestructiveDivide"}
	}
	v.scale(func(x float64) float64 { return x / c })
	return v, nil
}

// RemoveZeros returns a copy of v without zero-valued entries.
func (v *Vector) RemoveZeros() *Vector {
	out := v.Copy()
	out.prune()
	return out
}

// DestructiveRemoveZeros drops zero-valued entries from v and returns it.
func (v *Vector) DestructiveRemoveZeros() (*Vector, error) {
	if v.frozen {
		return v, &ErrImmutableOperation{Op: "DestructiveRemoveZeros"}
	}
	v.prune()
	return v, nil
}

// Magnitude returns the Euclidean norm of v.
func (v *Vector) Magnitude() float64 {
	return magnitude(v)
}

// Normalize returns v divided by its magnitude.
// A zero vector has no entries, so the result is an empty vector; callers
// that need to distinguish it check Magnitude first.
func (v *Vector) Normalize() *Vector {
	return v.Divide(v.Magnitude())
}

// Dot returns the inner product of v and other.
func (v *Vector) Dot(other SparseVector) (float64, error) {
	if other.Size() != v.size {
		return 0, &ErrSizeMismatch{Expected: v.size, Actual: other.Size()}
	}
	return dot(v, other), nil
}

// Similarity returns the cosine similarity of v and other, clamped to [-1, 1].
// It is exactly 0 when either vector has zero magnitude.
func (v *Vector) Similarity(other SparseVector) (float64, error) {
	return Cosine(v, other)
}

// Cosine is Similarity for any pair of backends.
func Cosine(a, b SparseVector) (float64, error) {
	if a.Size() != b.Size() {
		return 0, &ErrSizeMismatch{Expected: a.Size(), Actual: b.Size()}
	}

	na := squaredNorm(a)
	nb := squaredNorm(b)
	if na == 0 || nb == 0 {
		return 0, nil
	}

	// sqrt(na*nb) keeps a.Similarity(a) at exactly 1: the dot product of a
	// vector with itself is summed in the same order as its squared norm.
	sim := dot(a, b) / math.Sqrt(na*nb)

	return math.Max(-1, math.Min(1, sim)), nil
}

// dot iterates the operand with fewer entries and probes the other.
func dot(a, b SparseVector) float64 {
	if b.Count() < a.Count() {
		a, b = b, a
	}

	var sum float64
	for i, x := range a.All() {
		sum += x * lookup(b, i)
	}
	return sum
}

func (v *Vector) checkSizes(others []SparseVector) error {
	for _, o := range others {
		if o.Size() != v.size {
			return &ErrSizeMismatch{Expected: v.size, Actual: o.Size()}
		}
	}
	return nil
}

func (v *Vector) accumulate(others []SparseVector, sign float64) {
	for _, o := range others {
		if vec, ok := o.(*Vector); ok && vec == v {
			// Iterating the receiver while writing to it is not allowed.
			o = v.Copy()
		}
		for i, x := range o.All() {
			cur, _ := v.entries.Get(i)
			v.entries.Set(i, cur+sign*x)
		}
	}
}

func (v *Vector) scale(f func(float64) float64) {
	// Overwriting existing keys does not change the tree shape, but the btree
	// does not allow writes during Scan, so collect first.
	elems := v.Elements()
	for _, e := range elems {
		v.entries.Set(e.Index, f(e.Value))
	}
}
