package bitarray

import "fmt"

// View is a non-owning window over bits [start, end) of an Array. Slicing a
// View re-slices against the same root array, so validity only ever depends
// on one origin.
//
// A view does not pin its origin's length: if the origin is resized below
// end, every later access fails with ErrInvalidView instead of reading
// stale bits.
type View struct {
	arr      *Array
	start    int
	end      int
	writable bool
}

// Len returns the number of bits in the window.
func (v *View) Len() int {
	return v.end - v.start
}

// Get returns the bit at index i of the window.
func (v *View) Get(i int) (bool, error) {
	if err := v.validate(); err != nil {
		return false, err
	}
	if i < 0 || i >= v.Len() {
		return false, fmt.Errorf("%w: index %d with view length %d", ErrIndexOutOfRange, i, v.Len())
	}
	return v.arr.bit(v.start + i), nil
}

// Set writes the bit at index i of the window through to the origin array.
// Only views created with SliceWritable may write; all others fail with
// ErrReadOnlyView.
func (v *View) Set(i int, val bool) error {
	if err := v.validate(); err != nil {
		return err
	}
	if !v.writable {
		return fmt.Errorf("%w: set on slice", ErrReadOnlyView)
	}
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("%w: index %d with view length %d", ErrIndexOutOfRange, i, v.Len())
	}
	v.arr.setBit(v.start+i, val)
	return nil
}

// Slice returns a narrower view over bits [start, end) of this view,
// keeping its writability.
func (v *View) Slice(start, end int) (*View, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	if start < 0 || start > end || end > v.Len() {
		return nil, fmt.Errorf("%w: slice [%d, %d) with view length %d", ErrRange, start, end, v.Len())
	}
	return &View{arr: v.arr, start: v.start + start, end: v.start + end, writable: v.writable}, nil
}

// Bytes exports the window's bits, padded to a byte boundary relative to the
// view's own length, using the origin's byte mapping.
func (v *View) Bytes() ([]byte, error) {
	a, err := v.Compact()
	if err != nil {
		return nil, err
	}
	return a.Bytes(), nil
}

// AlignedBytes exports the window's bits, failing with ErrAlignment when the
// view length is not a multiple of 8.
func (v *View) AlignedBytes() ([]byte, error) {
	if v.Len()%8 != 0 {
		return nil, fmt.Errorf("%w: view length %d", ErrAlignment, v.Len())
	}
	return v.Bytes()
}

// Compact copies the window into a standalone Array carrying the origin's
// byte mapping. The copy is built word-at-a-time from the origin's storage.
func (v *View) Compact() (*Array, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	n := v.Len()
	out := &Array{
		words:  make([]uint64, wordsFor(n)),
		length: n,
		order:  v.arr.order,
	}
	for k := range out.words {
		out.words[k] = v.arr.extractWord(v.start + k*wordBits)
	}
	out.clearPadding()
	return out, nil
}

// Range calls fn for every bit of the window in order, stopping early if fn
// returns false.
func (v *View) Range(fn func(i int, val bool) bool) error {
	if err := v.validate(); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		if !fn(i, v.arr.bit(v.start+i)) {
			return nil
		}
	}
	return nil
}

// OnesCount returns the number of set bits in the window.
func (v *View) OnesCount() (int, error) {
	a, err := v.Compact()
	if err != nil {
		return 0, err
	}
	return OnesCount(a)
}

func (v *View) validate() error {
	if v.end > v.arr.length {
		return fmt.Errorf("%w: view ends at %d, origin length %d", ErrInvalidView, v.end, v.arr.length)
	}
	return nil
}

// extractWord gathers the 64 bits starting at absolute position from,
// crossing the word boundary when from is unaligned. Bits past the storage
// read as zero.
func (a *Array) extractWord(from int) uint64 {
	i, off := from/wordBits, uint(from%wordBits)
	if i >= len(a.words) {
		return 0
	}
	w := a.words[i] >> off
	if off > 0 && i+1 < len(a.words) {
		w |= a.words[i+1] << (wordBits - off)
	}
	return w
}
