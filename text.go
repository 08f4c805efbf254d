// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// halfBlocks is indexed by top pixel | bottom pixel<<1.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// String returns the code drawn with Unicode half block characters,
// two QR pixels per character cell, including the quiet zone.  Black
// is drawn as a block, unless c.Reverse is set.  c.Scale is ignored.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	var b strings.Builder
	lo, hi := -c.Border, c.Size+c.Border
	b.Grow((hi - lo) * (hi - lo) * 3 / 2)
	for y := lo; y < hi; y += 2 {
		for x := lo; x < hi; x++ {
			i := c.fg(x, y)
			if y+1 < hi {
				i |= c.fg(x, y+1) << 1
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// fg returns 1 if QR pixel (x,y) is drawn in the foreground colour.
func (c *Code) fg(x, y int) int {
	if c.Black(x, y) != c.Reverse {
		return 1
	}
	return 0
}

// ASCII writes the code to w with two '#' characters per black QR
// pixel and two spaces per white one, including the quiet zone.
// c.Scale is ignored.
func (c *Code) ASCII(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	lo, hi := -c.Border, c.Size+c.Border
	pix := hi - lo
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			var p byte = ' '
			if c.fg(x, y) != 0 {
				p = '#'
			}
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
