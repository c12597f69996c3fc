// Package parity computes the ITU-R M.823 (32,26) Hamming parity used to
// validate every 30-bit DGPS word.
package parity

import "math/bits"

// masks are the six fixed XOR masks that define the M.823 parity bits, most
// significant parity bit first.
var masks = [6]uint32{
	0xBB1F3480,
	0x5D8F9A40,
	0xAEC7CD00,
	0x5763E680,
	0x6BB1F340,
	0x8B7A89C0,
}

// Compute returns the six M.823 parity bits for a 32-bit word, packed
// MSB-first into the bottom 6 bits of the result.  It is pure, total and
// branch-free: every word, valid or not, produces a result.
func Compute(word uint32) uint32 {
	var result uint32
	for _, mask := range masks {
		result <<= 1
		result |= uint32(bits.OnesCount32(word&mask) & 1)
	}
	return result
}

// Valid reports whether the bottom 6 bits of word already equal the parity
// computed over the whole word, i.e. whether word is a valid M.823 codeword.
func Valid(word uint32) bool {
	return Compute(word) == word&0x3F
}
