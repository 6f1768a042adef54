package rivgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rivgo/hilbert"
	"github.com/hupe1980/rivgo/label"
	"github.com/hupe1980/rivgo/sparse"
)

var (
	// ErrImmutable is returned when a frozen vector is mutated.
	ErrImmutable = sparse.ErrImmutable

	// ErrInvalidNNZ is returned when the label nnz is not positive.
	ErrInvalidNNZ = label.ErrInvalidNNZ

	// ErrInvalidOrder is returned for a Hilbert order outside [1, 32].
	ErrInvalidOrder = hilbert.ErrInvalidOrder

	// ErrInvalidWindow is returned for a negative context window.
	ErrInvalidWindow = errors.New("context window must not be negative")
)

// ErrDimensionMismatch indicates a vector whose size differs from the space.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidConfig indicates a configuration value that cannot be used.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidConfig struct {
	Field  string
	Reason string
	cause  error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var sm *sparse.ErrSizeMismatch
	if errors.As(err, &sm) {
		return &ErrDimensionMismatch{Expected: sm.Expected, Actual: sm.Actual, cause: err}
	}

	return err
}
