package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// MaxIndex is the largest dimension that can be mirrored into a 32-bit bitmap.
const MaxIndex = math.MaxUint32

// FitsUint32 reports whether every index in [0, size) converts to uint32.
func FitsUint32(size int) bool {
	return size >= 0 && uint64(size) <= uint64(MaxIndex)+1
}

// Float64ToUint64Bits rounds v to the nearest integer and returns its low
// bits two's-complement representation masked to the given width.
// The second return value reports whether the rounded value was already
// inside [0, 2^bits), i.e. whether the projection was lossless.
func Float64ToUint64Bits(v float64, bits uint) (uint64, bool) {
	mask := uint64(math.MaxUint64)
	if bits < 64 {
		mask = (uint64(1) << bits) - 1
	}

	r := math.Round(v)
	if math.IsNaN(r) {
		return 0, false
	}

	switch {
	case r < 0:
		if r < math.MinInt64 {
			return 0, false
		}
		return uint64(int64(r)) & mask, false
	case r >= math.MaxUint64:
		return mask, false
	}

	u := uint64(r)
	return u & mask, u <= mask
}
