// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"image"
	"image/color"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// A Matrix is a square grid of dark and light modules.
// *coding.Bitmap implements Matrix.
type Matrix interface {
	ModuleCount() int
	IsDark(row, col int) bool
}

// A Code is a square pixel grid.
// It implements image.Image and PNG, PBM and text encoding.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row
	Scale  int    // number of image pixels per QR pixel
	Border int    // quiet zone width in QR pixels

	// Reverse swaps black and white.
	Reverse bool

	// Palette, if not nil, holds the background and foreground
	// colours for image output.
	Palette *[2]color.Color
}

// Defaults for NewCode.
const (
	DefaultScale  = 8
	DefaultBorder = 4
)

// NewCode returns a Code displaying m.
func NewCode(m Matrix) *Code {
	siz := m.ModuleCount()
	stride := (siz + 7) >> 3
	b := make([]byte, siz*stride)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if m.IsDark(y, x) {
				b[y*stride+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return &Code{
		Bitmap: b,
		Size:   siz,
		Stride: stride,
		Scale:  DefaultScale,
		Border: DefaultBorder,
	}
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride >= (c.Size+7)>>3 &&
		len(c.Bitmap) >= c.Size*c.Stride && c.Scale > 0 && c.Border >= 0
}

// pixels returns the number of image pixels on a side.
func (c *Code) pixels() int { return (c.Size + c.Border*2) * c.Scale }

// pixel reports whether image pixel (x,y) is foreground.
func (c *Code) pixel(x, y int) bool {
	return c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// palette returns the background and foreground colours.
func (c *Code) palette() color.Palette {
	if c.Palette != nil {
		return color.Palette{c.Palette[0], c.Palette[1]}
	}
	return color.Palette{whiteColor, blackColor}
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.palette()}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.pixels()
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return c.pal[0]
	}
	if c.pixel(x, y) {
		return c.pal[1]
	}
	return c.pal[0]
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette == nil {
		return color.GrayModel
	}
	return c.pal
}
