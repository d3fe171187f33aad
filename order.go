package bitarray

// Order selects how logical bit indices map onto the bits of a byte when
// converting to or from byte buffers. It is fixed per Array at construction
// and applied by every byte-boundary conversion in the package.
type Order uint8

const (
	// OrderMSB maps logical bit 0 to the most-significant bit of byte 0.
	OrderMSB Order = iota
	// OrderLSB maps logical bit 0 to the least-significant bit of byte 0.
	OrderLSB
)

func (o Order) String() string {
	if o == OrderLSB {
		return "LSB"
	}
	return "MSB"
}

// mask returns the in-byte mask for logical position i%8. Every byte
// import/export path goes through this single mapping.
func (o Order) mask(i int) byte {
	if o == OrderLSB {
		return 1 << (i % 8)
	}
	return 0b10000000 >> (i % 8)
}
