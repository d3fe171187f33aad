package bitarray_test

import (
	"testing"

	"github.com/edwces/bitarray"
)

func TestArraySlice(t *testing.T) {
	tests := map[string]struct {
		start, end int
		error      bool
	}{
		"negative start": {
			start: -1,
			end:   4,
			error: true,
		},
		"start past end": {
			start: 5,
			end:   4,
			error: true,
		},
		"end past length": {
			start: 0,
			end:   9,
			error: true,
		},
		"full range": {
			start: 0,
			end:   8,
		},
		"empty range": {
			start: 3,
			end:   3,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			a := bitarray.New(8)

			v, err := a.Slice(test.start, test.end)

			if err != nil && !test.error {
				t.Fatalf("got error: %s, want error: nil", err.Error())
			}
			if err == nil && test.error {
				t.Fatalf("got error: nil, want error: error")
			}
			if err == nil && v.Len() != test.end-test.start {
				t.Fatalf("got view length %d, want %d", v.Len(), test.end-test.start)
			}
		})
	}
}

func TestViewGet(t *testing.T) {
	a := bitarray.FromBytes([]byte{0b10110100}, bitarray.OrderMSB)

	v, err := a.Slice(2, 5)
	if err != nil {
		t.Fatal(err)
	}

	if v.Len() != 3 {
		t.Fatalf("got view length %d, want 3", v.Len())
	}
	for i, want := range []bool{true, true, false} {
		got, err := v.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("bit %d: got %t, want %t", i, got, want)
		}
	}

	if _, err := v.Get(3); err == nil {
		t.Fatal("got error: nil, want error: error")
	}
	if _, err := v.Get(-1); err == nil {
		t.Fatal("got error: nil, want error: error")
	}
}

func TestViewReadOnly(t *testing.T) {
	a := bitarray.New(8)

	v, err := a.Slice(0, 8)
	if err != nil {
		t.Fatal(err)
	}

	if err := v.Set(0, true); err == nil {
		t.Fatal("got error: nil, want error: error")
	}
	got, err := a.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Fatal("read-only view mutated the origin")
	}
}

func TestViewWriteThrough(t *testing.T) {
	a := bitarray.New(16)

	v, err := a.SliceWritable(4, 12)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Set(2, true); err != nil {
		t.Fatal(err)
	}

	got, err := a.Get(6)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("write did not reach origin bit 6")
	}

	if err := v.Set(8, true); err == nil {
		t.Fatal("got error: nil, want error: error")
	}
}

func TestViewInvalidatedByShrink(t *testing.T) {
	a := bitarray.New(16)

	v, err := a.Slice(4, 12)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Resize(8, false); err != nil {
		t.Fatal(err)
	}

	if _, err := v.Get(0); err == nil {
		t.Fatal("got error: nil, want error: error")
	}
	if _, err := v.Bytes(); err == nil {
		t.Fatal("got error: nil, want error: error")
	}

	// Growing back past the window makes the view usable again.
	if err := a.Resize(16, false); err != nil {
		t.Fatal(err)
	}
	if _, err := v.Get(0); err != nil {
		t.Fatal(err)
	}
}

func TestViewSliceNested(t *testing.T) {
	a := bitarray.FromBytes([]byte{0b10110100}, bitarray.OrderMSB)

	outer, err := a.Slice(1, 7)
	if err != nil {
		t.Fatal(err)
	}
	inner, err := outer.Slice(1, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Bits [2, 5) of the array.
	for i, want := range []bool{true, true, false} {
		got, err := inner.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("bit %d: got %t, want %t", i, got, want)
		}
	}

	if _, err := outer.Slice(2, 7); err == nil {
		t.Fatal("got error: nil, want error: error")
	}
}

func TestViewBytes(t *testing.T) {
	a := bitarray.FromBytes([]byte{0b10110100}, bitarray.OrderMSB)

	v, err := a.Slice(2, 5)
	if err != nil {
		t.Fatal(err)
	}

	got, err := v.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 0b11000000 {
		t.Fatalf("got bytes %08b, want 11000000", got[0])
	}

	if _, err := v.AlignedBytes(); err == nil {
		t.Fatal("got error: nil, want error: error")
	}
}

func TestViewCompact(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0, 0x13, 0x57, 0x9B, 0xDF}
	a := bitarray.FromBytes(data, bitarray.OrderMSB)

	// Unaligned window crossing the word boundary.
	v, err := a.Slice(13, 83)
	if err != nil {
		t.Fatal(err)
	}
	c, err := v.Compact()
	if err != nil {
		t.Fatal(err)
	}

	if c.Len() != 70 {
		t.Fatalf("got length %d, want 70", c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		want, err := a.Get(13 + i)
		if err != nil {
			t.Fatal(err)
		}
		got, err := c.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("bit %d: got %t, want %t", i, got, want)
		}
	}

	// The copy is standalone.
	if err := c.Set(0, !mustGet(t, c, 0)); err != nil {
		t.Fatal(err)
	}
	if mustGet(t, a, 13) == mustGet(t, c, 0) {
		t.Fatal("compacted copy still aliases the origin")
	}
}

func TestViewOnesCount(t *testing.T) {
	a := bitarray.FromBytes([]byte{0xF0}, bitarray.OrderMSB)

	v, err := a.Slice(2, 6)
	if err != nil {
		t.Fatal(err)
	}
	got, err := v.OnesCount()
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func mustGet(t *testing.T, s bitarray.Source, i int) bool {
	t.Helper()
	val, err := s.Get(i)
	if err != nil {
		t.Fatal(err)
	}
	return val
}
