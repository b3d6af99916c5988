package mnemonic

// bitBuffer is a fixed-capacity MSB-first bit sequence. It is sized
// once from the type table, so encode/decode never reallocate and the
// packing logic stays plain shift/mask arithmetic.
type bitBuffer struct {
	buf []byte
	n   int // bits written
}

func newBitBuffer(capBits int) *bitBuffer {
	return &bitBuffer{buf: make([]byte, (capBits+7)/8)}
}

// appendBits writes the low `width` bits of v, most significant first.
// Writing past capacity is a programming error given correct size-table
// invariants, so it panics rather than returning an error.
func (b *bitBuffer) appendBits(v uint, width int) {
	if b.n+width > len(b.buf)*8 {
		panic("mnemonic: bit buffer overflow")
	}
	for i := width - 1; i >= 0; i-- {
		if v&(1<<uint(i)) != 0 {
			b.buf[b.n/8] |= 1 << uint(7-b.n%8)
		}
		b.n++
	}
}

// appendBytes writes whole bytes MSB-first.
func (b *bitBuffer) appendBytes(p []byte) {
	for _, by := range p {
		b.appendBits(uint(by), 8)
	}
}

// readBits returns the `width` bits starting at bit offset off,
// MSB-first, as an unsigned integer.
func (b *bitBuffer) readBits(off, width int) uint {
	if off+width > b.n {
		panic("mnemonic: bit buffer read past end")
	}
	var v uint
	for i := 0; i < width; i++ {
		v <<= 1
		if b.buf[(off+i)/8]&(1<<uint(7-(off+i)%8)) != 0 {
			v |= 1
		}
	}
	return v
}

// len reports the number of bits written.
func (b *bitBuffer) len() int { return b.n }

// bytesRange packs the bits in [off, off+nbits) into bytes. nbits must
// be a multiple of 8; the size table guarantees this for entropy.
func (b *bitBuffer) bytesRange(off, nbits int) []byte {
	if nbits%8 != 0 {
		panic("mnemonic: bit range not on byte boundary")
	}
	out := make([]byte, nbits/8)
	for i := range out {
		out[i] = byte(b.readBits(off+i*8, 8))
	}
	return out
}
