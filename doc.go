/*

Package bitarray provides a mutable, resizable, densely packed bit container
with byte-buffer import/export and zero-copy sub-range views.

An Array stores its bits in 64-bit words and carries a logical bit length, so
single-bit access, resizing and bulk bitwise operations all cost time
proportional to the number of words touched. Views expose a bounds-checked
window into an Array for extracting bit-granular fields, e.g. flag and
fragment-offset fields when parsing packet headers.

Bit order

Logical index 0 is the first bit of the sequence. How that index maps onto
byte buffers is governed by an Order fixed per Array. Under OrderMSB (the
default) bit 0 is the most-significant bit of byte 0, so the byte 1100_1101
is indexed as:

    INDEX  0    1    2    3    4    5    6    7
    BIT    1    1    0    0    1    1    0    1

Under OrderLSB bit 0 is the least-significant bit of byte 0 and the same byte
reads 1, 0, 1, 1, 0, 0, 1, 1. The chosen Order is applied by every byte
conversion (FromBytes, Bytes, AlignedBytes, ReadFrom, WriteTo) and nowhere
else; single-bit and bulk operations work purely on logical indices.

Comparison and shifting treat index 0 as the most-significant end: Compare
orders sequences lexicographically from bit 0, and ShiftLeft moves bits
toward bit 0.

Arrays and Views are not safe for concurrent use; guard shared instances with
a lock. A View never outlives its contract silently: if the origin Array is
resized below the view's window, every subsequent access on that view fails
with ErrInvalidView.

*/
package bitarray
