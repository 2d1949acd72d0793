package localefmt

import (
	"math/big"
	"math/bits"
	"testing"
)

func TestWords_trim(t *testing.T) {
	tests := []struct {
		w    words
		want int
	}{
		{words{}, 0},
		{words{0}, 0},
		{words{0, 0, 0}, 0},
		{words{1}, 1},
		{words{1, 0}, 1},
		{words{0, 1}, 2},
		{words{1, 0, 2, 0, 0}, 3},
	}
	for _, tt := range tests {
		got := tt.w.trim()
		if len(got) != tt.want {
			t.Errorf("trim(%v) has %v words, want %v", tt.w, len(got), tt.want)
		}
		if len(got) > 0 && got[len(got)-1] == 0 {
			t.Errorf("trim(%v) = %v, which still has a high zero word", tt.w, got)
		}
	}
}

func TestWords_isNeg(t *testing.T) {
	signBit := uint(1) << (bits.UintSize - 1)
	tests := []struct {
		w    words
		want bool
	}{
		{words{0}, false},
		{words{1}, false},
		{words{signBit}, true},
		{words{^uint(0)}, true},
		{words{signBit, 0}, false},
		{words{0, signBit}, true},
		{words{^uint(0), signBit - 1}, false},
	}
	for _, tt := range tests {
		if got := tt.w.isNeg(); got != tt.want {
			t.Errorf("isNeg(%#x) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestWords_negate(t *testing.T) {
	signBit := uint(1) << (bits.UintSize - 1)
	tests := []struct {
		w    words
		want words
	}{
		{words{0}, words{0}},
		{words{1}, words{^uint(0)}},
		{words{^uint(0)}, words{1}},
		{words{^uint(0), ^uint(0)}, words{1, 0}},
		// The most negative pattern is its own two's complement.
		{words{signBit}, words{signBit}},
		{words{0, signBit}, words{0, signBit}},
		{words{0, 0, 0, 0}, words{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		got := append(words(nil), tt.w...)
		got.negate()
		if len(got) != len(tt.want) {
			t.Fatalf("negate(%#x) has %v words, want %v", tt.w, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("negate(%#x) = %#x, want %#x", tt.w, got, tt.want)
				break
			}
		}
	}
}

func TestWords_negate_involution(t *testing.T) {
	w := words{12345, 0x1234, ^uint(0), 7}
	got := append(words(nil), w...)
	got.negate()
	got.negate()
	for i := range got {
		if got[i] != w[i] {
			t.Fatalf("negate(negate(%#x)) = %#x", w, got)
		}
	}
}

func TestWords_divChunk(t *testing.T) {
	tests := []words{
		{1},
		{chunkBase - 1},
		{chunkBase},
		{chunkBase + 1},
		{^uint(0)},
		{^uint(0), ^uint(0)},
		{0, 1},
		{7, 0, 3},
		{^uint(0), 0, 0, ^uint(0)},
	}
	for _, tt := range tests {
		x := bigFromWords(tt)
		q, rem := append(words(nil), tt...).divChunk()
		if rem >= chunkBase {
			t.Errorf("divChunk(%#x) remainder = %v, want below %v", tt, rem, uint(chunkBase))
			continue
		}

		// q*chunkBase + rem must reconstruct the dividend.
		got := bigFromWords(q)
		got.Mul(got, new(big.Int).SetUint64(chunkBase))
		got.Add(got, new(big.Int).SetUint64(uint64(rem)))
		if got.Cmp(x) != 0 {
			t.Errorf("divChunk(%#x): %v * %v + %v = %v, want %v", tt, bigFromWords(q), uint(chunkBase), rem, got, x)
		}
		if len(q) > 0 && q[len(q)-1] == 0 {
			t.Errorf("divChunk(%#x) quotient %#x has a high zero word", tt, q)
		}
	}
}

func TestChunkConstants(t *testing.T) {
	// chunkBase must be the largest power of ten that fits in a word.
	want := uint(1)
	for i := 0; i < chunkExp; i++ {
		next := want * 10
		if next/10 != want {
			t.Fatalf("10^%v overflows a %v-bit word", i+1, bits.UintSize)
		}
		want = next
	}
	if uint(chunkBase) != want {
		t.Errorf("chunkBase = %v, want 10^%v = %v", uint(chunkBase), chunkExp, want)
	}
	if hi, _ := bits.Mul(uint(chunkBase), 10); hi == 0 {
		// No overflow in the high word means 10^(chunkExp+1) still fits,
		// so chunkBase would not be the largest power of ten.
		t.Errorf("chunkBase * 10 fits in a %v-bit word; chunkExp is too small", bits.UintSize)
	}
}
