package bitarray

import (
	"fmt"
	"math/bits"
)

// Source is the read contract shared by Array and View. Bulk operations
// accept any Source so arrays and views combine uniformly.
type Source interface {
	Len() int
	Get(i int) (bool, error)
}

// And returns the bitwise AND of two equal-length sources. The result is a
// new array carrying the left operand's byte mapping.
func And(a, b Source) (*Array, error) {
	return combine(a, b, func(x, y uint64) uint64 { return x & y })
}

// Or returns the bitwise OR of two equal-length sources.
func Or(a, b Source) (*Array, error) {
	return combine(a, b, func(x, y uint64) uint64 { return x | y })
}

// Xor returns the bitwise XOR of two equal-length sources.
func Xor(a, b Source) (*Array, error) {
	return combine(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// AndNot returns the bits set in a but not in b.
func AndNot(a, b Source) (*Array, error) {
	return combine(a, b, func(x, y uint64) uint64 { return x &^ y })
}

// Not returns the complement of every bit in [0, Len()).
func Not(a Source) (*Array, error) {
	x, err := materialize(a)
	if err != nil {
		return nil, err
	}
	out := x.Clone()
	for i := range out.words {
		out.words[i] = ^out.words[i]
	}
	out.clearPadding()
	return out, nil
}

// OnesCount returns the number of set bits in [0, Len()).
func OnesCount(s Source) (int, error) {
	x, err := materialize(s)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, w := range x.words {
		count += bits.OnesCount64(w)
	}
	return count, nil
}

// Compare orders two equal-length sources lexicographically, treating bit 0
// as the most-significant position. It returns -1, 0 or 1. Unequal lengths
// fail with ErrLengthMismatch; there is no implicit zero-extension.
func Compare(a, b Source) (int, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: compare %d with %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	x, err := materialize(a)
	if err != nil {
		return 0, err
	}
	y, err := materialize(b)
	if err != nil {
		return 0, err
	}
	// Reversing each word puts bit 0 at the numeric top, so word values
	// order the same way the bit sequence does.
	for i := range x.words {
		xr, yr := bits.Reverse64(x.words[i]), bits.Reverse64(y.words[i])
		if xr < yr {
			return -1, nil
		}
		if xr > yr {
			return 1, nil
		}
	}
	return 0, nil
}

// ShiftLeft moves every bit n positions toward index 0. Bits shifted past
// the front are discarded and the vacated tail fills with zeros; the length
// is unchanged. Shifting by the length or more zeroes the array.
func (a *Array) ShiftLeft(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: shift by %d", ErrRange, n)
	}
	if n == 0 || a.length == 0 {
		return nil
	}
	if n >= a.length {
		for i := range a.words {
			a.words[i] = 0
		}
		return nil
	}
	wshift, bshift := n/wordBits, uint(n%wordBits)
	for i := 0; i < len(a.words); i++ {
		j := i + wshift
		var w uint64
		if j < len(a.words) {
			w = a.words[j] >> bshift
			if bshift > 0 && j+1 < len(a.words) {
				w |= a.words[j+1] << (wordBits - bshift)
			}
		}
		a.words[i] = w
	}
	return nil
}

// ShiftRight moves every bit n positions away from index 0, with the same
// fixed-width contract as ShiftLeft.
func (a *Array) ShiftRight(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: shift by %d", ErrRange, n)
	}
	if n == 0 || a.length == 0 {
		return nil
	}
	if n >= a.length {
		for i := range a.words {
			a.words[i] = 0
		}
		return nil
	}
	wshift, bshift := n/wordBits, uint(n%wordBits)
	for i := len(a.words) - 1; i >= 0; i-- {
		j := i - wshift
		var w uint64
		if j >= 0 {
			w = a.words[j] << bshift
			if bshift > 0 && j > 0 {
				w |= a.words[j-1] >> (wordBits - bshift)
			}
		}
		a.words[i] = w
	}
	// Bits pushed past the length land in the padding.
	a.clearPadding()
	return nil
}

// RotateLeft moves every bit n positions toward index 0 with wrap-around.
// n is taken modulo the length; rotating an empty array is a no-op.
func (a *Array) RotateLeft(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: rotate by %d", ErrRange, n)
	}
	if a.length == 0 {
		return nil
	}
	n %= a.length
	if n == 0 {
		return nil
	}
	wrapped := a.Clone()
	if err := a.ShiftLeft(n); err != nil {
		return err
	}
	if err := wrapped.ShiftRight(a.length - n); err != nil {
		return err
	}
	for i := range a.words {
		a.words[i] |= wrapped.words[i]
	}
	return nil
}

// RotateRight moves every bit n positions away from index 0 with
// wrap-around, under the same contract as RotateLeft.
func (a *Array) RotateRight(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: rotate by %d", ErrRange, n)
	}
	if a.length == 0 {
		return nil
	}
	n %= a.length
	if n == 0 {
		return nil
	}
	wrapped := a.Clone()
	if err := a.ShiftRight(n); err != nil {
		return err
	}
	if err := wrapped.ShiftLeft(a.length - n); err != nil {
		return err
	}
	for i := range a.words {
		a.words[i] |= wrapped.words[i]
	}
	return nil
}

func combine(a, b Source, f func(x, y uint64) uint64) (*Array, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: %d with %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	x, err := materialize(a)
	if err != nil {
		return nil, err
	}
	y, err := materialize(b)
	if err != nil {
		return nil, err
	}
	out := &Array{
		words:  make([]uint64, len(x.words)),
		length: x.length,
		order:  x.order,
	}
	for i := range out.words {
		out.words[i] = f(x.words[i], y.words[i])
	}
	out.clearPadding()
	return out, nil
}

// materialize resolves a Source to word-aligned storage: arrays pass
// through, views are compacted after revalidation.
func materialize(s Source) (*Array, error) {
	switch t := s.(type) {
	case *Array:
		return t, nil
	case *View:
		return t.Compact()
	default:
		out := New(s.Len())
		for i := 0; i < out.length; i++ {
			val, err := s.Get(i)
			if err != nil {
				return nil, err
			}
			out.setBit(i, val)
		}
		return out, nil
	}
}
