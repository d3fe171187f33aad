package bitarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwces/bitarray"
)

func TestFromBytes(t *testing.T) {
	tests := map[string]struct {
		data  []byte
		order bitarray.Order
		want  []bool
	}{
		"all ones MSB": {
			data:  []byte{0xFF},
			order: bitarray.OrderMSB,
			want:  []bool{true, true, true, true, true, true, true, true},
		},
		"all zeros MSB": {
			data:  []byte{0x00},
			order: bitarray.OrderMSB,
			want:  []bool{false, false, false, false, false, false, false, false},
		},
		"MSB maps high bit first": {
			data:  []byte{0b10110100},
			order: bitarray.OrderMSB,
			want:  []bool{true, false, true, true, false, true, false, false},
		},
		"LSB maps low bit first": {
			data:  []byte{0b10110100},
			order: bitarray.OrderLSB,
			want:  []bool{false, false, true, false, true, true, false, true},
		},
		"empty": {
			data:  []byte{},
			order: bitarray.OrderMSB,
			want:  nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			a := bitarray.FromBytes(test.data, test.order)

			require.Equal(t, len(test.want), a.Len())
			for i, want := range test.want {
				got, err := a.Get(i)
				require.NoError(t, err)
				assert.Equal(t, want, got, "bit %d", i)
			}
		})
	}
}

func TestBytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xFF, 0xB4, 0x01, 0x80, 0x55, 0xAA, 0x10, 0x20}

	for _, order := range []bitarray.Order{bitarray.OrderMSB, bitarray.OrderLSB} {
		t.Run(order.String(), func(t *testing.T) {
			a := bitarray.FromBytes(data, order)

			require.Equal(t, len(data)*8, a.Len())
			assert.Equal(t, data, a.Bytes())

			aligned, err := a.AlignedBytes()
			require.NoError(t, err)
			assert.Equal(t, data, aligned)
		})
	}
}

func TestBytesPadsFinalByte(t *testing.T) {
	a := bitarray.New(0)
	a.Push(true)
	a.Push(true)
	a.Push(false)
	a.Push(true)

	assert.Equal(t, []byte{0b11010000}, a.Bytes())
}

func TestAlignedBytesRejectsUnaligned(t *testing.T) {
	a := bitarray.New(12)

	_, err := a.AlignedBytes()

	require.Error(t, err)
	assert.ErrorIs(t, err, bitarray.ErrAlignment)
}

func TestBytesAfterShrink(t *testing.T) {
	a := bitarray.FromBytes([]byte{0xFF, 0xFF}, bitarray.OrderMSB)

	require.NoError(t, a.Resize(8, false))
	require.NoError(t, a.Resize(16, false))

	got, err := a.AlignedBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0x00}, got)
}
