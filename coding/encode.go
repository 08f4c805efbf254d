// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Pad codewords, alternating after the terminator.
const (
	pad0 = 0xec
	pad1 = 0x11
)

// DataStream returns the data codewords for segs in a QR code with
// the given version and level: segment headers and bodies followed
// by the terminator and padding.
func DataStream(v Version, l Level, segs ...Segment) (*Bits, error) {
	if err := check(v, l); err != nil {
		return nil, err
	}
	b := NewBits(v, l)
	for _, seg := range segs {
		if err := writeSegment(b, seg, v); err != nil {
			return nil, err
		}
	}
	if err := b.PadTo(v.DataBits(l)); err != nil {
		return nil, err
	}
	return b, nil
}

// PadTo adds the 4 bit terminator to b if it fits, pads b with zero
// bits to a byte boundary and fills it up to n bits with pad
// codewords.  PadTo fails if b is longer than n bits.
func (b *Bits) PadTo(n int) error {
	if b.nbit > n {
		return CapacityError{b.nbit, n}
	}
	if b.nbit+4 <= n {
		b.Write(0, 4)
	}
	b.nbit = len(b.b) * 8
	for i := 0; b.nbit < n; i++ {
		if i&1 == 0 {
			b.Write(pad0, 8)
		} else {
			b.Write(pad1, 8)
		}
	}
	return nil
}

// interleave returns the bytes of blocks, taking the ith byte of
// each block in turn and skipping blocks that have been exhausted.
func interleave(blocks [][]byte) []byte {
	n, max := 0, 0
	for _, b := range blocks {
		n += len(b)
		if len(b) > max {
			max = len(b)
		}
	}
	dst := make([]byte, 0, n)
	for i := 0; i < max; i++ {
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
	}
	return dst
}

// Codewords returns the data and check codewords for b, which must
// hold the padded data stream of a QR code with the given version and
// level, with blocks interleaved: data codewords of all blocks first,
// then check codewords.
func Codewords(b *Bits, v Version, l Level) []byte {
	bl := blocks(v, l)
	if b.Bits() != v.DataBits(l) {
		panic("qr: wrong data length")
	}
	data := make([][]byte, len(bl))
	ecc := make([][]byte, len(bl))
	src := b.Bytes()
	for i, blk := range bl {
		data[i], src = src[:blk.Data], src[blk.Data:]
		ecc[i] = Field.ECC(data[i], blk.Check())
	}
	return append(interleave(data), interleave(ecc)...)
}
