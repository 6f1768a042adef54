package hilbert

import (
	"math/big"
	"math/bits"
)

// word holds the per-level constants for n-bit words. Positions are counted
// from the left: position 1 is the most significant of the n bits and
// position n is the least significant.
type word struct {
	n    int
	mask *big.Int
}

func newWord(n int) word {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return word{n: n, mask: mask.Sub(mask, big.NewInt(1))}
}

// alphas splits coordinates into order words. Word i holds bit order-1-i of
// every coordinate, coordinate 0 in position 1.
func (c *Codec) alphas(coords []uint64) []*big.Int {
	n := len(coords)
	out := make([]*big.Int, c.order)
	for i := range out {
		a := new(big.Int)
		shift := c.order - 1 - uint(i)
		for j, u := range coords {
			if (u>>shift)&1 == 1 {
				a.SetBit(a, n-1-j, 1)
			}
		}
		out[i] = a
	}
	return out
}

// coordinates is the inverse of alphas.
func (c *Codec) coordinates(alphas []*big.Int, n int) []uint64 {
	out := make([]uint64, n)
	for i, a := range alphas {
		shift := c.order - 1 - uint(i)
		for j := range out {
			out[j] |= uint64(a.Bit(n-1-j)) << shift
		}
	}
	return out
}

// encode runs the curve transform from coordinate bits to key chunks.
func (c *Codec) encode(coords []uint64) *big.Int {
	w := newWord(len(coords))

	key := new(big.Int)
	omega := new(big.Int)
	shift := 0
	for _, alpha := range c.alphas(coords) {
		sigmaHat := new(big.Int).Xor(alpha, omega)
		sigma := w.rotateLeft(sigmaHat, shift)
		rho := w.inverseGray(sigma)

		key.Lsh(key, uint(w.n))
		key.Or(key, rho)

		j := w.principal(rho)
		omega.Xor(omega, w.rotateRight(w.tau(sigma, j), shift))
		shift = (shift + j - 1) % w.n
	}
	return key
}

// decode runs the curve transform from key chunks to coordinate bits.
func (c *Codec) decode(key *big.Int, n int) []uint64 {
	w := newWord(n)

	alphas := make([]*big.Int, c.order)
	omega := new(big.Int)
	shift := 0
	for i := range alphas {
		rho := new(big.Int).Rsh(key, uint(n)*(c.order-1-uint(i)))
		rho.And(rho, w.mask)

		sigma := w.gray(rho)
		j := w.principal(rho)

		alphas[i] = new(big.Int).Xor(omega, w.rotateRight(sigma, shift))
		omega.Xor(omega, w.rotateRight(w.tau(sigma, j), shift))
		shift = (shift + j - 1) % n
	}
	return c.coordinates(alphas, n)
}

// interleave concatenates the alpha words with no transform.
func (c *Codec) interleave(coords []uint64) *big.Int {
	n := uint(len(coords))
	key := new(big.Int)
	for _, alpha := range c.alphas(coords) {
		key.Lsh(key, n)
		key.Or(key, alpha)
	}
	return key
}

func (c *Codec) deinterleave(key *big.Int, n int) []uint64 {
	w := newWord(n)
	alphas := make([]*big.Int, c.order)
	for i := range alphas {
		a := new(big.Int).Rsh(key, uint(n)*(c.order-1-uint(i)))
		alphas[i] = a.And(a, w.mask)
	}
	return c.coordinates(alphas, n)
}

// gray returns rho XOR (rho >> 1).
func (w word) gray(rho *big.Int) *big.Int {
	g := new(big.Int).Rsh(rho, 1)
	return g.Xor(g, rho)
}

// inverseGray undoes gray: bit at position p is the XOR of positions 1..p.
func (w word) inverseGray(sigma *big.Int) *big.Int {
	rho := new(big.Int).Set(sigma)
	t := new(big.Int)
	for s := 1; s < w.n; s <<= 1 {
		rho.Xor(rho, t.Rsh(rho, uint(s)))
	}
	return rho
}

// principal returns the position of the least significant bit of rho that
// differs from its position-n bit, or n if all bits are equal.
func (w word) principal(rho *big.Int) int {
	diff := rho
	if rho.Bit(0) == 1 {
		diff = new(big.Int).Xor(rho, w.mask)
	}
	if diff.Sign() == 0 {
		return w.n
	}
	return w.n - int(diff.TrailingZeroBits())
}

// tau complements sigma in position n and, if that leaves odd parity, in
// position j as well.
func (w word) tau(sigma *big.Int, j int) *big.Int {
	t := new(big.Int).Set(sigma)
	t.SetBit(t, 0, t.Bit(0)^1)
	if parity(t) == 1 {
		b := w.n - j
		t.SetBit(t, b, t.Bit(b)^1)
	}
	return t
}

// rotateRight rotates the n-bit word x right by s positions.
func (w word) rotateRight(x *big.Int, s int) *big.Int {
	s %= w.n
	if s == 0 {
		return new(big.Int).Set(x)
	}
	hi := new(big.Int).Lsh(x, uint(w.n-s))
	hi.And(hi, w.mask)
	lo := new(big.Int).Rsh(x, uint(s))
	return lo.Or(lo, hi)
}

func (w word) rotateLeft(x *big.Int, s int) *big.Int {
	s %= w.n
	if s == 0 {
		return new(big.Int).Set(x)
	}
	return w.rotateRight(x, w.n-s)
}

func parity(x *big.Int) uint {
	var ones int
	for _, b := range x.Bits() {
		ones += bits.OnesCount(uint(b))
	}
	return uint(ones & 1)
}
