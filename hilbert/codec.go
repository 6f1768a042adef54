package hilbert

import (
	"fmt"
	"math/big"

	"github.com/hupe1980/rivgo/internal/conv"
	"github.com/hupe1980/rivgo/sparse"
)

const (
	// MaxOrder is the widest supported coordinate, in bits.
	MaxOrder uint = 32

	// DefaultOrder is the coordinate width used when none is configured.
	DefaultOrder = MaxOrder
)

// Codec encodes and decodes Hilbert keys for a fixed coordinate width.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	order  uint
	strict bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithOrder sets the number of bits per coordinate.
func WithOrder(order uint) Option {
	return func(c *Codec) {
		c.order = order
	}
}

// WithStrict makes the codec reject coordinates that do not fit in order bits
// instead of keeping their low bits.
func WithStrict(strict bool) Option {
	return func(c *Codec) {
		c.strict = strict
	}
}

// New creates a Codec. The default is order 32 with lenient projection.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{order: DefaultOrder}
	for _, opt := range opts {
		opt(c)
	}
	if c.order < 1 || c.order > MaxOrder {
		return nil, ErrInvalidOrder
	}
	return c, nil
}

// Order returns the number of bits per coordinate.
func (c *Codec) Order() uint { return c.order }

// Strict reports whether out-of-range coordinates are rejected.
func (c *Codec) Strict() bool { return c.strict }

// KeyBits returns the width of keys for dims coordinates.
func (c *Codec) KeyBits(dims int) int { return int(c.order) * dims }

// Encode returns the Hilbert key of every coordinate of v, including the
// implicit zeros.
func (c *Codec) Encode(v sparse.SparseVector) (*big.Int, error) {
	coords, err := c.project(v)
	if err != nil {
		return nil, err
	}
	return c.encode(coords), nil
}

// EncodeCoordinates returns the Hilbert key of integral coordinates.
func (c *Codec) EncodeCoordinates(coords []uint64) (*big.Int, error) {
	coords, err := c.clamp(coords)
	if err != nil {
		return nil, err
	}
	return c.encode(coords), nil
}

// Decode returns the dims coordinates addressed by key. It is the exact
// inverse of Encode for coordinates inside [0, 2^order).
func (c *Codec) Decode(key *big.Int, dims int) ([]float64, error) {
	coords, err := c.DecodeCoordinates(key, dims)
	if err != nil {
		return nil, err
	}
	return toFloats(coords), nil
}

// DecodeCoordinates is Decode with integral output.
func (c *Codec) DecodeCoordinates(key *big.Int, dims int) ([]uint64, error) {
	if err := c.checkKey(key, dims); err != nil {
		return nil, err
	}
	return c.decode(key, dims), nil
}

// DecodeVector is Decode returning a pruned sparse vector of size dims.
func (c *Codec) DecodeVector(key *big.Int, dims int) (*sparse.Vector, error) {
	coords, err := c.Decode(key, dims)
	if err != nil {
		return nil, err
	}
	return sparse.FromDense(coords)
}

// HilbillyKey returns the plain bit interleave of the coordinates of v:
// the most significant bit of every coordinate, then the next, and so on.
func (c *Codec) HilbillyKey(v sparse.SparseVector) (*big.Int, error) {
	coords, err := c.project(v)
	if err != nil {
		return nil, err
	}
	return c.interleave(coords), nil
}

// HilbillyKeyCoordinates is HilbillyKey for integral coordinates.
func (c *Codec) HilbillyKeyCoordinates(coords []uint64) (*big.Int, error) {
	coords, err := c.clamp(coords)
	if err != nil {
		return nil, err
	}
	return c.interleave(coords), nil
}

// DecodeHilbilly inverts HilbillyKey.
func (c *Codec) DecodeHilbilly(key *big.Int, dims int) ([]float64, error) {
	if err := c.checkKey(key, dims); err != nil {
		return nil, err
	}
	return toFloats(c.deinterleave(key, dims)), nil
}

// project reads the dense coordinates of v and fits them into order bits.
func (c *Codec) project(v sparse.SparseVector) ([]uint64, error) {
	dims := v.Size()
	if dims <= 0 {
		return nil, ErrInvalidDimensions
	}

	coords := make([]uint64, dims)
	for i, x := range v.All() {
		u, ok := conv.Float64ToUint64Bits(x, c.order)
		if !ok && c.strict {
			return nil, &ErrCoordinateRange{Index: i, Value: x, Order: c.order}
		}
		coords[i] = u
	}
	return coords, nil
}

// clamp returns coords masked to order bits, copying only when needed.
func (c *Codec) clamp(coords []uint64) ([]uint64, error) {
	if len(coords) == 0 {
		return nil, ErrInvalidDimensions
	}

	mask := c.coordMask()
	var out []uint64
	for i, u := range coords {
		if u <= mask {
			continue
		}
		if c.strict {
			return nil, &ErrCoordinateRange{Index: i, Value: float64(u), Order: c.order}
		}
		if out == nil {
			out = append([]uint64(nil), coords...)
		}
		out[i] = u & mask
	}
	if out == nil {
		return coords, nil
	}
	return out, nil
}

func (c *Codec) coordMask() uint64 {
	return (uint64(1) << c.order) - 1
}

func (c *Codec) checkKey(key *big.Int, dims int) error {
	if dims <= 0 {
		return ErrInvalidDimensions
	}
	if key == nil || key.Sign() < 0 || key.BitLen() > c.KeyBits(dims) {
		return fmt.Errorf("%w: %d-bit key for %d dimensions of order %d", ErrInvalidKey, bitLen(key), dims, c.order)
	}
	return nil
}

func bitLen(key *big.Int) int {
	if key == nil {
		return 0
	}
	return key.BitLen()
}

func toFloats(coords []uint64) []float64 {
	out := make([]float64, len(coords))
	for i, u := range coords {
		out[i] = float64(u)
	}
	return out
}
