package hilbert

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOrder is returned for an order outside [1, MaxOrder].
	ErrInvalidOrder = errors.New("hilbert order must be between 1 and 32")

	// ErrInvalidDimensions is returned when a key is requested for zero dimensions.
	ErrInvalidDimensions = errors.New("dimensions must be positive")

	// ErrInvalidKey is returned when a key is negative or wider than order*dims bits.
	ErrInvalidKey = errors.New("key out of range")

	// ErrInvalidBucketBits is returned for a bucket width outside [1, 64].
	ErrInvalidBucketBits = errors.New("bucket bits must be between 1 and 64")
)

// ErrCoordinateRange indicates a coordinate that does not fit in order bits.
// It is only returned by strict codecs.
type ErrCoordinateRange struct {
	Index int
	Value float64
	Order uint
}

func (e *ErrCoordinateRange) Error() string {
	return fmt.Sprintf("coordinate %d = %v outside [0, 2^%d)", e.Index, e.Value, e.Order)
}
