// Package hilbert maps coordinate vectors to keys on an n-dimensional Hilbert
// curve and back.
//
// Every coordinate is rounded to an integer and projected into [0, 2^order).
// The codec then walks the curve one bit level at a time, from the most
// significant bit of every coordinate down, using the Butz/Lawder algebra:
//
//   - rho is the n-bit chunk of the key for the level,
//   - sigma is its Gray code and tau the entry/exchange word,
//   - J is the principal position of rho,
//   - sigma and tau are rotated right by the accumulated shift sum(J-1),
//   - omega is the running XOR of the rotated tau words,
//   - alpha = omega XOR rotated sigma holds the level's coordinate bits.
//
// Points that are close along the curve are close in space, so sorting
// vectors by key groups neighbours together. Keys are big.Int values of
// order*dims bits.
//
// HilbillyKey is the plain bit interleave of the same coordinate bits with no
// curve transform. It is cheaper and orders points by their high bits only.
package hilbert
