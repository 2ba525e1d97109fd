package xss

import "github.com/bits-and-blooms/bitset"

// parenthesesWriter appends a balanced-parentheses encoding of a PSS tree
// one bit at a time: 1 for an opening parenthesis (node entry), 0 for a
// closing parenthesis (node exit). A tree over n interior positions plus
// its synthetic root and virtual trailing child is encoded in 2n+2 bits.
type parenthesesWriter struct {
	bits *bitset.BitSet
	pos  uint
}

func newParenthesesWriter(capacityBits uint) *parenthesesWriter {
	return &parenthesesWriter{bits: bitset.New(capacityBits)}
}

func (w *parenthesesWriter) appendOpen() {
	w.bits.Set(w.pos)
	w.pos++
}

func (w *parenthesesWriter) appendClose() {
	w.bits.Clear(w.pos)
	w.pos++
}

// Len returns the number of parenthesis bits written so far.
func (w *parenthesesWriter) Len() uint { return w.pos }

// Bits returns the underlying bit vector.
func (w *parenthesesWriter) Bits() *bitset.BitSet { return w.bits }
