package localefmt

import (
	"math/big"
	"math/bits"
)

// maxDigits returns an upper bound on the number of decimal digits needed to
// represent an unsigned integer of the given bit width.
// 28/93 = 0.30107... is slightly above log10(2) = 0.30102..., so the integer
// estimate never rounds below the true digit count; the +1 covers the floor.
func maxDigits(bitWidth int) int {
	return bitWidth*28/93 + 1
}

// emitChunk writes the decimal digits of rem right to left into buf, the
// last digit landing at buf[end-1], and returns the index of the first
// written digit. At least one digit is always written, even for rem == 0.
func emitChunk(buf []byte, end int, rem uint) int {
	for {
		end--
		buf[end] = byte(rem%10) + '0'
		rem /= 10
		if rem == 0 {
			return end
		}
	}
}

// appendMagnitude appends the decimal digits of the magnitude mag to dst,
// prefixed with '-' if neg, destroying mag in the process.
//
// The output buffer is sized from the bit width alone and pre-filled with
// '0', so interior chunks that come up short of chunkExp digits are
// zero-padded simply by skipping the cursor past bytes the emitter never
// touched. Only the most-significant chunk is written unpadded.
func appendMagnitude(dst []byte, mag words, neg bool) []byte {
	mag = mag.trim()
	if len(mag) == 0 {
		return append(dst, '0')
	}

	size := maxDigits(len(mag) * bits.UintSize)
	if neg {
		size++
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = '0'
	}

	var (
		rem uint
		pos int
	)
	end := len(buf)
	for {
		mag, rem = mag.divChunk()
		pos = emitChunk(buf, end, rem)
		if len(mag) == 0 {
			break
		}
		end -= chunkExp
		pos = end
	}

	if neg {
		pos--
		buf[pos] = '-'
	}
	return append(dst, buf[pos:]...)
}

// NumericString converts the integer stored in ws to its exact decimal
// representation.
// ws is the integer's storage as a little-endian slice of machine words,
// read as two's complement if signed is true and as an unsigned magnitude
// otherwise.
// The returned string follows the formal EBNF grammar:
//
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= ['-'] digits
//
// with no leading zeros (zero is exactly "0", never "-0"), no '+', and no
// scientific notation. This is the unlocalized form expected by the decimal
// entry points of a locale-aware formatting library; grouping, sign symbols,
// and digit shapes are applied downstream.
//
// NumericString consumes ws: the conversion divides the buffer in place and
// leaves its contents destroyed. Callers that need the value afterwards must
// pass a copy, and must not share ws with another goroutine for the duration
// of the call.
//
// NumericString panics if ws is empty; a zero value still occupies at least
// one word.
func NumericString(ws []uint, signed bool) string {
	return string(AppendNumericString(nil, ws, signed))
}

// AppendNumericString is like [NumericString] but appends the result to dst
// and returns the extended buffer. It consumes ws the same way.
func AppendNumericString(dst []byte, ws []uint, signed bool) []byte {
	if len(ws) == 0 {
		panic("localefmt: empty word buffer")
	}
	mag := words(ws)
	neg := signed && mag.isNeg()
	if neg {
		mag.negate()
	}
	return appendMagnitude(dst, mag, neg)
}

// NumericStringFromBig converts x to the same exact decimal form as
// [NumericString], extracting the magnitude words via [big.Int.Bits].
// Unlike NumericString, it does not modify x.
func NumericStringFromBig(x *big.Int) string {
	bw := x.Bits()
	mag := make(words, len(bw))
	for i, w := range bw {
		mag[i] = uint(w)
	}
	return string(appendMagnitude(nil, mag, x.Sign() < 0))
}

// IsNumericString reports whether s is a valid numeric string, that is,
// whether it could have been produced by [NumericString]: an optional '-'
// followed by decimal digits, with no leading zeros and no "-0".
func IsNumericString(s string) bool {
	pos, width := 0, len(s)
	if pos < width && s[pos] == '-' {
		pos++
	}
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	switch {
	case pos != width || pos == start:
		return false
	case s[start] == '0' && (pos-start > 1 || start > 0):
		return false
	}
	return true
}
