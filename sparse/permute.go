package sparse

// Permuter is a bijection over [0, Size()) together with its inverse.
// permutation.Permutations is the standard implementation.
type Permuter interface {
	Size() int
	Forward(index int) int
	Inverse(index int) int
}

// Permute returns v with every stored index mapped through p.
//
// times > 0 applies the forward map times times, times < 0 applies the
// inverse map -times times, and times == 0 returns v itself without copying.
// Values are never touched, so v.Permute(p, t).Permute(p, -t) equals v.
func (v *Vector) Permute(p Permuter, times int) (*Vector, error) {
	if times == 0 {
		return v, nil
	}
	entries, err := v.permuted(p, times)
	if err != nil {
		return nil, err
	}
	return &Vector{size: v.size, entries: entries}, nil
}

// DestructivePermute rotates v in place and returns it. On error v is left
// unchanged.
func (v *Vector) DestructivePermute(p Permuter, times int) (*Vector, error) {
	if v.frozen {
		return v, &ErrImmutableOperation{Op: "DestructivePermute"}
	}
	if times == 0 {
		return v, nil
	}
	entries, err := v.permuted(p, times)
	if err != nil {
		return v, err
	}
	v.entries = entries
	return v, nil
}

func (v *Vector) permuted(p Permuter, times int) (*btreeMap, error) {
	out := newEntries()
	var err error
	v.entries.Scan(func(i int, x float64) bool {
		var j int
		j, err = permuteIndex(p, i, times)
		if err != nil {
			return false
		}
		if j >= v.size {
			err = &ErrIndexOutOfRange{Index: j, Size: v.size}
			return false
		}
		out.Set(j, x)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func permuteIndex(p Permuter, index, times int) (int, error) {
	n := p.Size()
	if index < 0 || index >= n {
		return 0, &ErrIndexOutOfRange{Index: index, Size: n}
	}

	step := p.Forward
	if times < 0 {
		step = p.Inverse
		times = -times
	}
	for range times {
		index = step(index)
	}
	return index, nil
}
