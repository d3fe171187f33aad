package bitarray

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ReadFrom reads exactly nbits bits from r into a new array. The stream
// carries the array's byte serialization: full bytes expand through the
// order mapping, and when nbits is not a multiple of 8 the remaining bits of
// the final byte are consumed and discarded, leaving r byte-aligned.
func ReadFrom(r io.Reader, nbits int, order Order) (*Array, error) {
	if nbits < 0 {
		return nil, fmt.Errorf("%w: read %d bits", ErrRange, nbits)
	}
	a := NewOrdered(nbits, false, order)
	br := bitio.NewReader(r)
	for i := 0; i < nbits; i += 8 {
		for j := 0; j < 8; j++ {
			val, err := br.ReadBool()
			if err != nil {
				return nil, fmt.Errorf("read bit %d: %w", i+j, err)
			}
			// The stream always runs from each byte's high bit down, so
			// the logical position within the byte depends on the order.
			logical := i + j
			if order == OrderLSB {
				logical = i + 7 - j
			}
			if val && logical < nbits {
				a.setBit(logical, true)
			}
		}
	}
	return a, nil
}

// WriteTo writes the array's byte serialization to w, padding the final
// partial byte with zeros. It returns the number of bytes written.
func (a *Array) WriteTo(w io.Writer) (int64, error) {
	bw := bitio.NewWriter(w)
	for i := 0; i < a.length; i += 8 {
		for j := 0; j < 8; j++ {
			logical := i + j
			if a.order == OrderLSB {
				logical = i + 7 - j
			}
			val := logical < a.length && a.bit(logical)
			if err := bw.WriteBool(val); err != nil {
				return int64(i / 8), fmt.Errorf("write bit %d: %w", i+j, err)
			}
		}
	}
	if _, err := bw.Align(); err != nil {
		return 0, err
	}
	return int64((a.length + 7) / 8), nil
}
