package sparse

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/rivgo/internal/conv"
)

// Support returns the set of indices holding a non-zero value.
// It fails when the vector is too large to address with 32-bit positions.
func Support(sv SparseVector) (*roaring.Bitmap, error) {
	if !conv.FitsUint32(sv.Size()) {
		return nil, fmt.Errorf("support: size %d exceeds 32-bit bitmap range", sv.Size())
	}

	rb := roaring.New()
	for i, x := range sv.All() {
		if x == 0 {
			continue
		}
		id, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		rb.Add(id)
	}
	return rb, nil
}

// Overlap returns how many indices are non-zero in both a and b.
// Labels of unrelated tokens rarely overlap; the count is a cheap prefilter
// before computing Similarity.
func Overlap(a, b SparseVector) (uint64, error) {
	if a.Size() != b.Size() {
		return 0, &ErrSizeMismatch{Expected: a.Size(), Actual: b.Size()}
	}
	ra, err := Support(a)
	if err != nil {
		return 0, err
	}
	rb, err := Support(b)
	if err != nil {
		return 0, err
	}
	return ra.AndCardinality(rb), nil
}
