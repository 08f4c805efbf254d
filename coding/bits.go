// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit buffer.  Bits are packed most
// significant bit first.  The zero value is an empty buffer.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for the data codewords
// of a QR code with the given version and level.
func NewBits(v Version, l Level) *Bits {
	n := 0
	if check(v, l) == nil {
		n = v.DataBytes(l)
	}
	return &Bits{b: make([]byte, 0, n)}
}

// Bits returns the number of bits in b.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the bytes of b.  A trailing partial byte is padded
// with zero bits.  The slice aliases b.
func (b *Bits) Bytes() []byte { return b.b }

// Write appends the nbit low bits of v to b, most significant first.
// nbit must not exceed 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBit appends one bit to b.
func (b *Bits) WriteBit(bit bool) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, 0)
	}
	if bit {
		b.b[len(b.b)-1] |= 0x80 >> (b.nbit & 7)
	}
	b.nbit++
}

// Bit reports whether the ith bit of b is set.
func (b *Bits) Bit(i int) bool {
	return b.b[i>>3]>>(7&^i)&1 != 0
}

// Byte returns the ith byte of b.  Bits not yet written read as zero.
func (b *Bits) Byte(i int) byte { return b.b[i] }
