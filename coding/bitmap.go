// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "bytes"

// A Bitmap is the immutable module matrix of a finished QR code.
type Bitmap struct {
	v      Version
	l      Level
	mask   Mask
	size   int    // modules on a side
	stride int    // bytes per row
	bits   []byte // 1 is dark, 0 is light
}

func newBitmap(v Version, l Level, mask Mask) *Bitmap {
	siz := v.Size()
	stride := (siz + 7) >> 3
	return &Bitmap{
		v:      v,
		l:      l,
		mask:   mask,
		size:   siz,
		stride: stride,
		bits:   make([]byte, siz*stride),
	}
}

// Version returns the version of the code.
func (b *Bitmap) Version() Version { return b.v }

// Level returns the error correction level of the code.
func (b *Bitmap) Level() Level { return b.l }

// Mask returns the mask pattern applied to the code.
func (b *Bitmap) Mask() Mask { return b.mask }

// ModuleCount returns the number of modules on a side.
func (b *Bitmap) ModuleCount() int { return b.size }

// IsDark reports whether the module at row, col is dark.
// IsDark panics with a BoundsError if row or col is out of range.
func (b *Bitmap) IsDark(row, col int) bool {
	if uint(row) >= uint(b.size) || uint(col) >= uint(b.size) {
		panic(BoundsError{row, col, b.size})
	}
	return b.dark(row, col)
}

func (b *Bitmap) dark(row, col int) bool {
	return b.bits[row*b.stride+col>>3]&(0x80>>(col&7)) != 0
}

// Equal reports whether b and c hold the same code.
func (b *Bitmap) Equal(c *Bitmap) bool {
	return b.v == c.v && b.l == c.l && b.mask == c.mask &&
		bytes.Equal(b.bits, c.bits)
}
