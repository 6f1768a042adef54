package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a vector dimension is not positive.
	ErrInvalidSize = errors.New("size must be positive")

	// ErrImmutable is the sentinel behind every rejected mutation of a frozen vector.
	ErrImmutable = errors.New("vector is immutable")
)

// ErrIndexOutOfRange indicates an index outside [0, Size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

// ErrSizeMismatch indicates a binary operation on vectors of different sizes.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrParse indicates malformed vector text.
//
// The underlying strconv error (if any) can be accessed via errors.Unwrap.
type ErrParse struct {
	Token  string
	Reason string
	cause  error
}

func (e *ErrParse) Error() string {
	if e.Token == "" {
		return "parse vector: " + e.Reason
	}
	return fmt.Sprintf("parse vector: %s: %q", e.Reason, e.Token)
}

func (e *ErrParse) Unwrap() error { return e.cause }

// ErrImmutableOperation reports which mutation was attempted on a frozen vector.
// It unwraps to ErrImmutable.
type ErrImmutableOperation struct {
	Op string
}

func (e *ErrImmutableOperation) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrImmutable)
}

func (e *ErrImmutableOperation) Unwrap() error { return ErrImmutable }
