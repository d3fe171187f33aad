package bitarray

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Roaring returns the set-bit indices of the array as a compressed bitmap,
// for handing dense buffers to sparse set machinery.
func (a *Array) Roaring() *roaring.Bitmap {
	rb := roaring.New()
	a.Range(func(i int, val bool) bool {
		if val {
			rb.Add(uint32(i))
		}
		return true
	})
	return rb
}

// FromRoaring builds a dense array of n bits with every index present in rb
// set. Fails with ErrIndexOutOfRange when rb holds an index >= n.
func FromRoaring(rb *roaring.Bitmap, n int, order Order) (*Array, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrRange, n)
	}
	a := NewOrdered(n, false, order)
	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= n {
			return nil, fmt.Errorf("%w: roaring index %d with length %d", ErrIndexOutOfRange, i, n)
		}
		a.setBit(i, true)
	}
	return a, nil
}
