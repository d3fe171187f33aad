package bitarray

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

const wordBits = 64

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Array is a mutable, resizable sequence of bits packed into 64-bit words.
// Bits past the logical length up to the end of the last word are kept zero
// at all times, so word-wise bulk operations never see stale data.
//
// The zero value is an empty MSB-ordered array ready for use.
type Array struct {
	words  []uint64
	length int
	order  Order
}

// New returns an array of n zero bits with OrderMSB byte mapping.
func New(n int) *Array {
	return NewOrdered(n, false, OrderMSB)
}

// NewFilled returns an array of n bits all set to fill, with OrderMSB byte
// mapping.
func NewFilled(n int, fill bool) *Array {
	return NewOrdered(n, fill, OrderMSB)
}

// NewOrdered returns an array of n bits all set to fill, using order for
// byte import/export. n == 0 is valid and yields an empty array.
func NewOrdered(n int, fill bool, order Order) *Array {
	if n < 0 {
		n = 0
	}
	a := &Array{
		words:  make([]uint64, wordsFor(n)),
		length: n,
		order:  order,
	}
	if fill {
		for i := range a.words {
			a.words[i] = ^uint64(0)
		}
		a.clearPadding()
	}
	return a
}

// Len returns the number of bits in the array.
func (a *Array) Len() int {
	return a.length
}

// Order returns the byte mapping the array was constructed with.
func (a *Array) Order() Order {
	return a.order
}

// Get returns the bit at index i.
func (a *Array) Get(i int) (bool, error) {
	if i < 0 || i >= a.length {
		return false, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, a.length)
	}
	return a.bit(i), nil
}

// Set writes the bit at index i.
func (a *Array) Set(i int, val bool) error {
	if i < 0 || i >= a.length {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, a.length)
	}
	a.setBit(i, val)
	return nil
}

// Push appends a single bit at the end.
func (a *Array) Push(val bool) {
	if a.length%wordBits == 0 {
		a.words = append(a.words, 0)
	}
	a.length++
	a.setBit(a.length-1, val)
}

// Pop removes and returns the last bit.
func (a *Array) Pop() (bool, error) {
	if a.length == 0 {
		return false, fmt.Errorf("%w: pop", ErrEmpty)
	}
	val := a.bit(a.length - 1)
	a.setBit(a.length-1, false)
	a.length--
	a.words = a.words[:wordsFor(a.length)]
	return val, nil
}

// Resize grows or shrinks the array to n bits. Grown positions take the
// fill value; shrinking discards the tail. Stale bits from a previously
// longer length never reappear on a later grow.
func (a *Array) Resize(n int, fill bool) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrRange, n)
	}
	if n == a.length {
		return nil
	}
	nw := wordsFor(n)
	if n < a.length {
		a.words = a.words[:nw]
		a.length = n
		a.clearPadding()
		return nil
	}
	old := a.length
	if nw > len(a.words) {
		if nw <= cap(a.words) {
			// Re-exposed words may hold bits from before an earlier shrink.
			a.words = a.words[:nw]
			for i := wordsFor(old); i < nw; i++ {
				a.words[i] = 0
			}
		} else {
			words := make([]uint64, nw)
			copy(words, a.words)
			a.words = words
		}
	}
	a.length = n
	if fill {
		a.setRange(old, n, true)
	}
	return nil
}

// Equal reports whether both arrays hold the same bit sequence. Lengths must
// match and every bit in [0, Len()) must agree; the byte-mapping Order is
// not part of the comparison.
func (a *Array) Equal(other *Array) bool {
	return a.length == other.length && slices.Equal(a.words, other.words)
}

// Clone returns an independent copy of the array.
func (a *Array) Clone() *Array {
	return &Array{
		words:  slices.Clone(a.words),
		length: a.length,
		order:  a.order,
	}
}

// Range calls fn for every bit in order, stopping early if fn returns false.
func (a *Array) Range(fn func(i int, val bool) bool) {
	for i := 0; i < a.length; i++ {
		if !fn(i, a.bit(i)) {
			return
		}
	}
}

// Any reports whether at least one bit is set.
func (a *Array) Any() bool {
	for _, w := range a.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (a *Array) None() bool {
	return !a.Any()
}

// All reports whether every bit in [0, Len()) is set. An empty array
// vacuously satisfies All.
func (a *Array) All() bool {
	if a.length == 0 {
		return true
	}
	last := len(a.words) - 1
	for i := 0; i < last; i++ {
		if a.words[i] != ^uint64(0) {
			return false
		}
	}
	mask := ^uint64(0)
	if r := a.length % wordBits; r != 0 {
		mask >>= wordBits - r
	}
	return a.words[last] == mask
}

// Slice returns a read-only view over bits [start, end).
func (a *Array) Slice(start, end int) (*View, error) {
	return a.slice(start, end, false)
}

// SliceWritable returns a view over bits [start, end) whose Set writes
// through to this array. Write-through is a deliberate opt-in; Slice views
// reject Set with ErrReadOnlyView.
func (a *Array) SliceWritable(start, end int) (*View, error) {
	return a.slice(start, end, true)
}

func (a *Array) slice(start, end int, writable bool) (*View, error) {
	if start < 0 || start > end || end > a.length {
		return nil, fmt.Errorf("%w: slice [%d, %d) with length %d", ErrRange, start, end, a.length)
	}
	return &View{arr: a, start: start, end: end, writable: writable}, nil
}

func (a *Array) String() string {
	var sb strings.Builder
	sb.Grow(a.length)
	for i := 0; i < a.length; i++ {
		if a.bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (a *Array) bit(i int) bool {
	return a.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

func (a *Array) setBit(i int, val bool) {
	if val {
		a.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		a.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// setRange sets every bit in [from, to) word-wise.
func (a *Array) setRange(from, to int, val bool) {
	if from >= to {
		return
	}
	first, last := from/wordBits, (to-1)/wordBits
	fmask := ^uint64(0) << (from % wordBits)
	lmask := ^uint64(0) >> (wordBits - 1 - (to-1)%wordBits)
	if first == last {
		a.applyMask(first, fmask&lmask, val)
		return
	}
	a.applyMask(first, fmask, val)
	for i := first + 1; i < last; i++ {
		a.applyMask(i, ^uint64(0), val)
	}
	a.applyMask(last, lmask, val)
}

func (a *Array) applyMask(word int, mask uint64, val bool) {
	if val {
		a.words[word] |= mask
	} else {
		a.words[word] &^= mask
	}
}

// clearPadding zeroes the bits of the last word past the logical length,
// restoring the storage invariant.
func (a *Array) clearPadding() {
	if r := a.length % wordBits; r != 0 {
		a.words[len(a.words)-1] &= ^uint64(0) >> (wordBits - r)
	}
}
