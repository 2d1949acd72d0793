package localefmt

import "math/bits"

// words is the two's-complement storage of an integer as a little-endian
// slice of machine-native unsigned words.
// The zero-length slice represents the value 0.
type words []uint

// The largest power of ten that fits in a single word, together with its
// exponent: 10^9 for 32-bit words, 10^19 for 64-bit words.
// One division by chunkBase peels off up to chunkExp decimal digits.
const (
	chunkBase32 = 1_000_000_000
	chunkBase64 = 10_000_000_000_000_000_000
	chunkBase   = chunkBase32 + bits.UintSize/64*(chunkBase64-chunkBase32)
	chunkExp    = 9 + bits.UintSize/64*10
)

// trim returns w without its high zero words.
// No allocation, only a length adjustment: after trimming, either the slice
// is empty or its last word is non-zero.
func (w words) trim() words {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	return w[:n]
}

// isNeg reports whether the sign bit of the most-significant word is set,
// i.e. whether w is negative under a two's-complement reading.
func (w words) isNeg() bool {
	return int(w[len(w)-1]) < 0
}

// negate replaces w with its two's complement in place: every word is
// inverted, then a carry of 1 is propagated from the least-significant word.
// Negating the most negative pattern (single high bit set) yields the same
// pattern back, which is the correct two's-complement result.
func (w words) negate() {
	carry := uint(1)
	for i := range w {
		w[i], carry = bits.Add(^w[i], carry, 0)
	}
}

// divChunk divides w by chunkBase in place and returns the trimmed quotient
// view together with the remainder.
// Standard long division, most-significant word first: each step divides the
// double-word (remainder, w[i]) by chunkBase, so the remainder stays in
// [0, chunkBase) throughout.
func (w words) divChunk() (words, uint) {
	var rem uint
	for i := len(w) - 1; i >= 0; i-- {
		w[i], rem = bits.Div(rem, w[i], chunkBase)
	}
	return w.trim(), rem
}
