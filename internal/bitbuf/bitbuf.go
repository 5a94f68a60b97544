// Package bitbuf implements an append-only sequence of bits used by every
// later stage of the encoder pipeline: segment payloads, mode/count headers,
// and the final codeword stream are all assembled through a Buffer before
// being packed into bytes.
package bitbuf

// Buffer is an appendable sequence of bits (0s and 1s), most significant bit
// appended first within each call to AppendBits.
//
// The zero value is an empty buffer ready to use.
type Buffer struct {
	bits []bool
}

// Len returns the number of bits currently held.
func (b *Buffer) Len() int {
	return len(b.bits)
}

// AppendBit appends a single bit.
func (b *Buffer) AppendBit(bit bool) {
	b.bits = append(b.bits, bit)
}

// AppendBits appends the low-order length bits of val, most significant
// first. Requires length <= 31 and val < 2^length.
func (b *Buffer) AppendBits(val uint32, length int) {
	if length < 0 || length > 31 || (val>>uint(length)) != 0 {
		panic("bitbuf: value out of range for requested width")
	}
	for i := length - 1; i >= 0; i-- {
		b.bits = append(b.bits, (val>>uint(i))&1 != 0)
	}
}

// Bit returns the bit at index i.
func (b *Buffer) Bit(i int) bool {
	return b.bits[i]
}

// ByteLen returns ceil(Len()/8), the number of bytes required to hold the
// buffer including any trailing partial byte.
func (b *Buffer) ByteLen() int {
	return (len(b.bits) + 7) / 8
}

// Bytes packs the buffer into a big-endian byte slice, padding the final
// partial byte with zero bits.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.ByteLen())
	for i, bit := range b.bits {
		if bit {
			out[i>>3] |= 1 << uint(7-(i&7))
		}
	}
	return out
}

// Reset clears the buffer for reuse.
func (b *Buffer) Reset() {
	b.bits = b.bits[:0]
}
