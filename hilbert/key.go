package hilbert

import "math/big"

// Compare orders two keys like big.Int.Cmp.
func Compare(a, b *big.Int) int { return a.Cmp(b) }

// Bucket returns the top bits of a key that is keyBits wide, as a coarse
// bucket id. Keys that share a bucket lie in the same sub-cube of the curve.
// bits larger than keyBits returns the whole key.
func Bucket(key *big.Int, keyBits int, bits uint) (uint64, error) {
	if bits < 1 || bits > 64 {
		return 0, ErrInvalidBucketBits
	}
	if key == nil || key.Sign() < 0 || key.BitLen() > keyBits {
		return 0, ErrInvalidKey
	}

	shift := keyBits - int(bits)
	if shift <= 0 {
		return key.Uint64(), nil
	}
	return new(big.Int).Rsh(key, uint(shift)).Uint64(), nil
}
