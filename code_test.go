// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCode returns the Code for version 1-L holding "A".
func testCode(t *testing.T) *Code {
	s, err := NewFromText(1, L, "A")
	require.NoError(t, err)
	c, err := s.Code()
	require.NoError(t, err)
	return c
}

func TestNewCode(t *testing.T) {
	s, err := NewFromText(3, Q, "pixels")
	require.NoError(t, err)
	bm, err := s.Bitmap()
	require.NoError(t, err)
	c := NewCode(bm)
	assert.Equal(t, 29, c.Size)
	assert.Equal(t, 4, c.Stride)
	assert.Equal(t, DefaultScale, c.Scale)
	assert.Equal(t, DefaultBorder, c.Border)
	for y := -1; y <= c.Size; y++ {
		for x := -1; x <= c.Size; x++ {
			want := 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
				bm.IsDark(y, x)
			require.Equal(t, want, c.Black(x, y), "%d,%d", x, y)
		}
	}
}

func TestImage(t *testing.T) {
	c := testCode(t)
	c.Scale = 2
	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 58, 58), img.Bounds())
	assert.Equal(t, color.GrayModel, img.ColorModel())
	gray := func(x, y int) uint8 {
		return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
	}
	assert.Equal(t, uint8(0xff), gray(0, 0))
	assert.Equal(t, uint8(0xff), gray(7, 7))
	assert.Equal(t, uint8(0x00), gray(8, 8)) // finder corner
	assert.Equal(t, uint8(0x00), gray(9, 9))
	assert.Equal(t, uint8(0xff), gray(10, 10))

	c.Reverse = true
	img = c.Image()
	assert.Equal(t, uint8(0x00), gray(0, 0))
	assert.Equal(t, uint8(0xff), gray(8, 8))

	c.Reverse = false
	red, blue := color.RGBA{0xff, 0, 0, 0xff}, color.RGBA{0, 0, 0xff, 0xff}
	c.Palette = &[2]color.Color{red, blue}
	img = c.Image()
	assert.Equal(t, red, img.At(0, 0))
	assert.Equal(t, blue, img.At(8, 8))
	assert.Equal(t, color.Palette{red, blue}, img.ColorModel())
}

func TestEncodePNG(t *testing.T) {
	c := testCode(t)
	c.Scale = 3
	c.Border = 2
	var b bytes.Buffer
	require.NoError(t, c.EncodePNG(&b))
	assert.Equal(t, b.Bytes(), c.PNG())

	img, err := png.Decode(&b)
	require.NoError(t, err)
	want := c.Image()
	require.Equal(t, want.Bounds(), img.Bounds())
	for y := 0; y < 75; y++ {
		for x := 0; x < 75; x++ {
			r0, g0, b0, _ := want.At(x, y).RGBA()
			r1, g1, b1, _ := img.At(x, y).RGBA()
			require.Equal(t, [3]uint32{r0, g0, b0}, [3]uint32{r1, g1, b1},
				"pixel %d,%d", x, y)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	var b bytes.Buffer
	c := testCode(t)
	c.Scale = 0
	assert.Equal(t, ErrArgs, c.EncodePNG(&b))
	assert.Equal(t, ErrArgs, c.EncodePBM(&b))
	assert.Equal(t, ErrArgs, c.ASCII(&b))
	assert.Nil(t, c.PNG())
	assert.Empty(t, c.String())

	c = testCode(t)
	c.Border = -1
	assert.Equal(t, ErrArgs, c.EncodePNG(&b))
	c = testCode(t)
	c.Bitmap = c.Bitmap[:10]
	assert.Equal(t, ErrArgs, c.EncodePBM(&b))
	assert.Equal(t, ErrArgs, testCode(t).EncodePNG(nil))

	c = testCode(t)
	c.Scale = 10000
	assert.Equal(t, ErrLargeImage, c.EncodePNG(&b))
	assert.Zero(t, b.Len())
	assert.Nil(t, c.PNG())
	assert.Equal(t, 10000*29, c.Image().Bounds().Dx())
}

func TestEncodePBM(t *testing.T) {
	c := testCode(t)
	c.Scale = 2
	c.Border = 1
	var b bytes.Buffer
	require.NoError(t, c.EncodePBM(&b))
	hdr := "P4\n46 46\n"
	require.True(t, strings.HasPrefix(b.String(), hdr))
	data := b.Bytes()[len(hdr):]
	require.Len(t, data, 46*6)
	// border rows
	assert.Equal(t, make([]byte, 12), data[:12])
	// first module row: 2 light border pixels, 14 dark finder pixels
	row := data[12:18]
	assert.Equal(t, []byte{0x3f, 0xff}, row[:2])
	assert.Equal(t, row, data[18:24])

	c.Reverse = true
	b.Reset()
	require.NoError(t, c.EncodePBM(&b))
	data = b.Bytes()[len(hdr):]
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 5), data[:5])
	assert.Equal(t, []byte{0xc0, 0x00}, data[12:14])
}

func TestString(t *testing.T) {
	c := testCode(t)
	c.Border = 0
	want := []string{
		"█▀▀▀▀▀█  █▄█▀ █▀▀▀▀▀█",
		"█ ███ █ ▀█ █▀ █ ███ █",
		"█ ▀▀▀ █   ▀ █ █ ▀▀▀ █",
		"▀▀▀▀▀▀▀ █▄▀▄█ ▀▀▀▀▀▀▀",
		"█▀█▄▀▀▀▀█▀▀▀ ▀█   █▄ ",
		" █ ██▀▀ ▄█▀ ▀ ▄ ▀ ▄ ▀",
		"  ▀▀ ▀▀ █  ▄▀▄▀▄▀▄▀▄▀",
		"█▀▀▀▀▀█ █▄██▄█▀█▄█▀▀▀",
		"█ ███ █ ▀█▄▀ ▀█▀ ▀█▄▀",
		"█ ▀▀▀ █ █▀  ▀ ▄ ▀ ▄▄▀",
		"▀▀▀▀▀▀▀ ▀▀▀ ▀ ▀ ▀ ▀▀▀",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", c.String())

	c.Border = 1
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, " ▄▄▄▄▄▄▄ ", string([]rune(lines[0])[:9]))

	c.Border = 0
	c.Reverse = true
	assert.True(t, strings.HasPrefix(c.String(), " ▄▄▄▄▄ "))
}

func TestASCII(t *testing.T) {
	c := testCode(t)
	c.Border = 1
	var b bytes.Buffer
	require.NoError(t, c.ASCII(&b))
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 24)
	assert.Empty(t, lines[23])
	assert.Equal(t, strings.Repeat(" ", 46), lines[0])
	assert.Equal(t, "  ##############    ##  ####  ##############  ", lines[1])
	assert.Equal(t, "  ##############  ######  ##  ##  ##  ######  ", lines[21])
}
