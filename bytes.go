package bitarray

import "fmt"

// FromBytes imports buf as an array of len(buf)*8 bits. Each byte expands
// into 8 bits through the order mapping, so under OrderMSB the high bit of
// buf[0] becomes bit 0.
func FromBytes(buf []byte, order Order) *Array {
	a := NewOrdered(len(buf)*8, false, order)
	for i, b := range buf {
		for j := 0; j < 8; j++ {
			if b&order.mask(j) != 0 {
				a.setBit(i*8+j, true)
			}
		}
	}
	return a
}

// Bytes exports the full bit sequence. When the length is not a multiple of
// 8 the unused positions of the final byte are zero. The export always
// succeeds; use AlignedBytes to instead reject unaligned lengths.
func (a *Array) Bytes() []byte {
	out := make([]byte, (a.length+7)/8)
	for i := 0; i < a.length; i++ {
		if a.bit(i) {
			out[i/8] |= a.order.mask(i)
		}
	}
	return out
}

// AlignedBytes exports the bit sequence, failing with ErrAlignment when the
// length is not a multiple of 8.
func (a *Array) AlignedBytes() ([]byte, error) {
	if a.length%8 != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrAlignment, a.length)
	}
	return a.Bytes(), nil
}
