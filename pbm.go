// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	pix := c.pixels()
	ls := strconv.Itoa(pix)
	b.WriteString("P4\n" + ls + " " + ls + "\n")
	row := make([]byte, (pix+7)/8)
	for y := 0; y < pix; y += c.Scale {
		clear(row)
		for x := 0; x < pix; x++ {
			if c.pixel(x, y) {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
		// Rows of one QR pixel are identical.
		for i := 0; i < c.Scale; i++ {
			b.Write(row)
		}
	}
	return b.Flush()
}
