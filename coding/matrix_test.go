// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFormatBits(t *testing.T) {
	assert.Equal(t, 0x5412, FormatBits(M, 0))
	assert.Equal(t, 0x77c4, FormatBits(L, 0))
	assert.Equal(t, 0x1689, FormatBits(H, 0))
	assert.Equal(t, 0x355f, FormatBits(Q, 0))
	assert.Equal(t, 0x72f3, FormatBits(L, 1))
	assert.Equal(t, 0x083b, FormatBits(H, 7))
	assert.Equal(t, 0x07c94, VersionBits(7))
	assert.Equal(t, 0x28c69, VersionBits(40))
}

// encode returns the codewords and QR code for data.
func encode(t require.TestingT, v Version, l Level, data []byte) ([]byte, *Bitmap) {
	b, err := DataStream(v, l, Bytes(data))
	require.NoError(t, err)
	cw := Codewords(b, v, l)
	return cw, Layout(v, l, cw, ChooseMask(v, l, cw))
}

// readFormat reads both copies of the format information.
func readFormat(b *Bitmap) (vert, horiz int) {
	siz := b.ModuleCount()
	bit := func(row, col, i int) int {
		if b.IsDark(row, col) {
			return 1 << i
		}
		return 0
	}
	for i := 0; i < 15; i++ {
		switch {
		case i < 6:
			vert |= bit(i, 8, i)
		case i < 8:
			vert |= bit(i+1, 8, i)
		default:
			vert |= bit(siz-15+i, 8, i)
		}
		switch {
		case i < 8:
			horiz |= bit(8, siz-i-1, i)
		case i < 9:
			horiz |= bit(8, 15-i, i)
		default:
			horiz |= bit(8, 14-i, i)
		}
	}
	return vert, horiz
}

// readData reads data modules back in placement order, removing the
// mask.
func readData(b *Bitmap) []byte {
	fn := newBuilder(b.Version(), b.Level())
	fn.patterns(b.Mask(), false)
	var bits Bits
	siz := b.ModuleCount()
	row, inc := siz-1, -1
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for ; 0 <= row && row < siz; row += inc {
			for c := col; c > col-2; c-- {
				if fn.at(row, c) == unset {
					bits.WriteBit(b.IsDark(row, c) != b.Mask().Invert(row, c))
				}
			}
		}
		row -= inc
		inc = -inc
	}
	return bits.Bytes()
}

func TestLayoutFunctionPatterns(t *testing.T) {
	finder := [7]string{
		"#######",
		"#.....#",
		"#.###.#",
		"#.###.#",
		"#.###.#",
		"#.....#",
		"#######",
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		_, b := encode(t, v, M, []byte("finder"))
		siz := b.ModuleCount()
		require.Equal(t, v.Size(), siz)
		for _, o := range [][2]int{{0, 0}, {siz - 7, 0}, {0, siz - 7}} {
			for r := 0; r < 7; r++ {
				for c := 0; c < 7; c++ {
					assert.Equal(t, finder[r][c] == '#', b.IsDark(o[0]+r, o[1]+c),
						"version %v: finder at %v: %d,%d", v, o, r, c)
				}
			}
			// separators
			for i := -1; i <= 7; i++ {
				for _, p := range [][2]int{{o[0] + i, o[1] - 1}, {o[0] + i, o[1] + 7},
					{o[0] - 1, o[1] + i}, {o[0] + 7, o[1] + i}} {
					if 0 <= p[0] && p[0] < siz && 0 <= p[1] && p[1] < siz {
						assert.False(t, b.IsDark(p[0], p[1]),
							"version %v: separator %v", v, p)
					}
				}
			}
		}
		for i := 8; i < siz-8; i++ {
			assert.Equal(t, i&1 == 0, b.IsDark(6, i), "version %v: timing 6,%d", v, i)
			assert.Equal(t, i&1 == 0, b.IsDark(i, 6), "version %v: timing %d,6", v, i)
		}
		pos := v.AlignmentPositions()
		for _, row := range pos {
			for _, col := range pos {
				if row < 9 && (col < 9 || col > siz-9) || row > siz-9 && col < 9 {
					continue
				}
				for r := -2; r <= 2; r++ {
					for c := -2; c <= 2; c++ {
						want := r == -2 || r == 2 || c == -2 || c == 2 ||
							r == 0 && c == 0
						assert.Equal(t, want, b.IsDark(row+r, col+c),
							"version %v: alignment at %d,%d", v, row, col)
					}
				}
			}
		}
		assert.True(t, b.IsDark(siz-8, 8), "version %v: dark module", v)
	}
}

func TestLayoutInformation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Version(rapid.IntRange(1, 40).Draw(t, "v"))
		l := Level(rapid.IntRange(0, 3).Draw(t, "l"))
		mask := Mask(rapid.IntRange(0, NumMasks-1).Draw(t, "mask"))
		b, err := DataStream(v, l)
		require.NoError(t, err)
		bm := Layout(v, l, Codewords(b, v, l), mask)
		assert.Equal(t, mask, bm.Mask())

		vert, horiz := readFormat(bm)
		assert.Equal(t, FormatBits(l, mask), vert)
		assert.Equal(t, FormatBits(l, mask), horiz)

		if v < 7 {
			return
		}
		siz := bm.ModuleCount()
		var top, left int
		for i := 0; i < 18; i++ {
			if bm.IsDark(i/3, i%3+siz-11) {
				top |= 1 << i
			}
			if bm.IsDark(i%3+siz-11, i/3) {
				left |= 1 << i
			}
		}
		assert.Equal(t, VersionBits(v), top)
		assert.Equal(t, VersionBits(v), left)
	})
}

func TestLayoutTrial(t *testing.T) {
	for _, v := range []Version{1, 6, 7, 40} {
		m := newBuilder(v, Q)
		m.build(nil, 3, true)
		b := m.bitmap(3)
		vert, horiz := readFormat(b)
		assert.Zero(t, vert, "version %v", v)
		assert.Zero(t, horiz, "version %v", v)
		siz := b.ModuleCount()
		assert.False(t, b.IsDark(siz-8, 8), "version %v: dark module", v)
		if v >= 7 {
			for i := 0; i < 18; i++ {
				assert.False(t, b.IsDark(i/3, i%3+siz-11))
				assert.False(t, b.IsDark(i%3+siz-11, i/3))
			}
		}
	}
}

func TestLayoutData(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Version(rapid.IntRange(1, 40).Draw(t, "v"))
		l := Level(rapid.IntRange(0, 3).Draw(t, "l"))
		mask := Mask(rapid.IntRange(0, NumMasks-1).Draw(t, "mask"))
		max := (v.DataBits(l) - 4 - Byte.CountLength(v)) / 8
		n := rapid.IntRange(0, min(max, 100)).Draw(t, "n")
		data := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "data")
		b, err := DataStream(v, l, Bytes(data))
		require.NoError(t, err)
		cw := Codewords(b, v, l)

		got := readData(Layout(v, l, cw, mask))
		require.GreaterOrEqual(t, len(got), len(cw))
		assert.Equal(t, cw, got[:len(cw)])
		// remainder bits
		for _, c := range got[len(cw):] {
			assert.Zero(t, c)
		}
		assert.Less(t, len(got)-len(cw), 2)
	})
}

func TestPenalty(t *testing.T) {
	// all light version 1:
	// 19*19 interior modules with 8 light neighbours, 3+3 each;
	// 20*20 boxes, 3 each; 50% deviation from balance, 100.
	b := newBitmap(1, L, 0)
	assert.Equal(t, float64(19*19*6+20*20*3+100), b.Penalty())

	// a finder-like run, horizontal and vertical
	run := []bool{true, false, true, true, true, false, true}
	h := newBitmap(1, L, 0)
	v := newBitmap(1, L, 0)
	for i, dark := range run {
		if dark {
			setDark(h, 10, 5+i)
			setDark(v, 5+i, 3)
		}
	}
	assert.InDelta(t, 3383.732426303855, h.Penalty(), 1e-9)
	assert.InDelta(t, 3383.732426303855, v.Penalty(), 1e-9)
}

func setDark(b *Bitmap, row, col int) {
	b.bits[row*b.stride+col>>3] |= 0x80 >> (col & 7)
}

func TestChooseMask(t *testing.T) {
	for _, tt := range []struct {
		name string
		v    Version
		l    Level
		segs []Segment
		mask Mask
		pen  []float64 // trial penalties
	}{
		{
			name: "A", v: 1, l: L, segs: []Segment{Bytes{0x41}}, mask: 0,
			pen: []float64{
				1178.1224489795918, 1488.4013605442176,
				1213.843537414966, 1180.0294784580499,
				1195.6802721088436, 1254.3083900226757,
				1344.3083900226757, 1218.2154195011337,
			},
		},
		{
			name: "empty", v: 1, l: L, mask: 2,
			pen: []float64{
				1282.1224489795918, 1464.3083900226757,
				1160.843537414966, 1163.1224489795918,
				1173.5873015873017, 1292.4013605442176,
				1280.6802721088436, 1286.2154195011337,
			},
		},
		{
			name: "hello", v: 7, l: M, segs: []Segment{Text("hello, world")}, mask: 2,
			pen: []float64{
				3792.641975308642, 4035.604938271605,
				3038.135802469136, 3567.3456790123455,
				3865.3456790123455, 3545.5308641975307,
				3589.8395061728397, 4311.530864197531,
			},
		},
		{
			name: "blocks", v: 5, l: H, segs: []Segment{Text("xxxxxxxxxxxxxxxxxxxx")}, mask: 3,
			pen: []float64{
				2686.972242512783, 2750.8035062089116,
				2474.533966398831, 2445.264426588751,
				2993.2417823228634, 2927.0956902848793,
				2976.4105186267348, 2996.8035062089116,
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, err := DataStream(tt.v, tt.l, tt.segs...)
			require.NoError(t, err)
			cw := Codewords(b, tt.v, tt.l)
			m := newBuilder(tt.v, tt.l)
			for mask, want := range tt.pen {
				m.build(cw, Mask(mask), true)
				assert.InDelta(t, want, m.bitmap(Mask(mask)).Penalty(), 1e-9,
					"mask %d", mask)
			}
			assert.Equal(t, tt.mask, ChooseMask(tt.v, tt.l, cw))

			bm, err := Encode(tt.v, tt.l, tt.segs...)
			require.NoError(t, err)
			assert.Equal(t, tt.mask, bm.Mask())
			assert.True(t, bm.Equal(Layout(tt.v, tt.l, cw, tt.mask)))
		})
	}
}

func TestLowestPenalty(t *testing.T) {
	for _, tt := range []struct {
		pen  [NumMasks]float64
		want Mask
	}{
		{[NumMasks]float64{9, 8, 7, 6, 5, 4, 3, 2}, 7},
		{[NumMasks]float64{5, 5, 5, 5, 5, 5, 5, 5}, 0},
		{[NumMasks]float64{9, 9, 9, 4, 9, 4, 9, 9}, 3},
		{[NumMasks]float64{9, 9, 9, 9, 9, 9, 1, 1}, 6},
	} {
		assert.Equal(t, tt.want, lowest(tt.pen), "%v", tt.pen)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Version(rapid.IntRange(1, 10).Draw(t, "v"))
		l := Level(rapid.IntRange(0, 3).Draw(t, "l"))
		max := (v.DataBits(l) - 4 - Byte.CountLength(v)) / 8
		n := rapid.IntRange(0, max).Draw(t, "n")
		data := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "data")
		a, err := Encode(v, l, Bytes(data))
		require.NoError(t, err)
		b, err := Encode(v, l, Bytes(data))
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
		assert.Equal(t, v, a.Version())
		assert.Equal(t, l, a.Level())
	})
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(0, L)
	assert.ErrorIs(t, err, ErrVersion)
	_, err = Encode(1, Level(5))
	assert.ErrorIs(t, err, ErrLevel)
	_, err = Encode(1, H, Bytes(make([]byte, 8)))
	assert.Equal(t, CapacityError{76, 72}, err)
}

func TestBitmapIsDarkBounds(t *testing.T) {
	b, err := Encode(1, L)
	require.NoError(t, err)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}} {
		assert.PanicsWithValue(t, BoundsError{p[0], p[1], 21}, func() {
			b.IsDark(p[0], p[1])
		})
	}
	assert.NotPanics(t, func() { b.IsDark(20, 20) })
	assert.EqualError(t, BoundsError{21, 0, 21}, "qr: module 21,0 out of range [0,21)")
}
