// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math"

// Penalty returns the penalty value for a QR code.  The value is used
// for choosing the mask: the lower the better.
//
// The total penalty is the sum of:
//
//   - for each module with more than 5 of its up to 8 neighbours of
//     the same colour, 3 plus the excess over 5;
//   - for each possibly overlapping 2x2 box of one colour, 3;
//   - for each horizontal or vertical 1:1:3:1:1 finder-like pattern
//     (dark, light, dark, dark, dark, light, dark), 40;
//   - for the deviation of the dark module ratio from 50%, 10 per 5%,
//     not rounded.
func (b *Bitmap) Penalty() float64 {
	const (
		MaxSame  = 5  // neighbours of the same colour before penalty
		SameP    = 3  // base points for too many same neighbours
		BoxP     = 3  // points per box
		FindP    = 40 // points per pattern
		BalPP    = 10 // points
		BalPStep = 5  // per 5% deviation from 50%
	)
	siz := b.size
	p := 0

	for row := 0; row < siz; row++ {
		for col := 0; col < siz; col++ {
			d := b.dark(row, col)
			same := 0
			for r := max(row-1, 0); r <= min(row+1, siz-1); r++ {
				for c := max(col-1, 0); c <= min(col+1, siz-1); c++ {
					if (r != row || c != col) && b.dark(r, c) == d {
						same++
					}
				}
			}
			if same > MaxSame {
				p += SameP + same - MaxSame
			}
		}
	}

	for row := 0; row < siz-1; row++ {
		for col := 0; col < siz-1; col++ {
			d := b.dark(row, col)
			if b.dark(row+1, col) == d && b.dark(row, col+1) == d &&
				b.dark(row+1, col+1) == d {
				p += BoxP
			}
		}
	}

	find := [7]bool{true, false, true, true, true, false, true}
	for i := 0; i < siz; i++ {
	Next:
		for j := 0; j+len(find) <= siz; j++ {
			h, v := true, true
			for k, f := range find {
				h = h && b.dark(i, j+k) == f
				v = v && b.dark(j+k, i) == f
				if !h && !v {
					continue Next
				}
			}
			if h {
				p += FindP
			}
			if v {
				p += FindP
			}
		}
	}

	nd := 0
	for _, v := range b.bits {
		for ; v != 0; v &= v - 1 {
			nd++
		}
	}
	ratio := math.Abs(100*float64(nd)/float64(siz)/float64(siz)-50) / BalPStep
	return float64(p) + ratio*BalPP
}

// ChooseMask returns the mask with the lowest penalty for a QR code
// with the given version, level and interleaved codewords.  Each
// candidate is laid out without format and version information.
// The first of equal penalties wins.
func ChooseMask(v Version, l Level, data []byte) Mask {
	m := newBuilder(v, l)
	var pen [NumMasks]float64
	for mask := Mask(0); mask < NumMasks; mask++ {
		m.build(data, mask, true)
		pen[mask] = m.bitmap(mask).Penalty()
	}
	return lowest(pen)
}

// lowest returns the mask with the lowest penalty, the first one on
// ties.
func lowest(pen [NumMasks]float64) Mask {
	best, low := Mask(0), math.Inf(1)
	for mask, p := range pen {
		if p < low {
			best, low = Mask(mask), p
		}
	}
	return best
}

// Layout returns the Bitmap of a QR code with the given version,
// level, interleaved codewords and mask.
func Layout(v Version, l Level, data []byte, mask Mask) *Bitmap {
	m := newBuilder(v, l)
	m.build(data, mask, false)
	return m.bitmap(mask)
}

// Encode returns the QR code with the given version and level holding
// segs, masked with the pattern of the lowest penalty.
func Encode(v Version, l Level, segs ...Segment) (*Bitmap, error) {
	b, err := DataStream(v, l, segs...)
	if err != nil {
		return nil, err
	}
	data := Codewords(b, v, l)
	return Layout(v, l, data, ChooseMask(v, l, data)), nil
}
