package permutation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a permutation size is not positive.
	ErrInvalidSize = errors.New("permutation size must be positive")

	// ErrNotBijection is returned when a forward map repeats or skips an index.
	ErrNotBijection = errors.New("forward map is not a bijection")
)

// ErrIndexOutOfRange indicates an index outside the permutation's domain.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("permutation index %d out of range [0, %d)", e.Index, e.Size)
}
