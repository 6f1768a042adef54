package label

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNNZ is returned when the requested number of non-zero entries
	// is not positive.
	ErrInvalidNNZ = errors.New("nnz must be positive")

	// ErrInvalidWidth is returned for a shingle width below one.
	ErrInvalidWidth = errors.New("shingle width must be positive")
)

// ErrCapacity indicates that size cannot hold the requested number of
// distinct indices.
type ErrCapacity struct {
	Requested int
	Size      int
}

func (e *ErrCapacity) Error() string {
	return fmt.Sprintf("cannot draw %d distinct indices from a vector of size %d", e.Requested, e.Size)
}
