// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/png"
	"io"
)

// maxPixels limits the width of PNG images, which are built in memory
// at one byte per pixel.
const maxPixels = 32767 * 8

// PNG returns a PNG image displaying the code.  It returns nil if
// EncodePNG fails, that is, on ErrArgs or ErrLargeImage.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a 1 bit paletted PNG image displaying the code to w.
// It returns ErrArgs if c cannot be rendered and ErrLargeImage if the
// image would be wider than 262136 pixels.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	pix := c.pixels()
	if pix > maxPixels {
		return ErrLargeImage
	}
	img := image.NewPaletted(image.Rect(0, 0, pix, pix), c.palette())
	for y := 0; y < pix; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+pix]
		for x := range row {
			if c.pixel(x, y) {
				row[x] = 1
			}
		}
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
