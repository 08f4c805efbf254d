// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrmatrix/gf256"

// BCH generator polynomials and the format information mask.
const (
	formatGen  = 0x537  // x^10+x^8+x^5+x^4+x^2+x+1
	formatMask = 0x5412 // 101010000010010
	versionGen = 0x1f25 // x^12+x^11+x^10+x^9+x^8+x^5+x^2+1
)

// FormatBits returns the 15 bit format information for level l and
// mask m.
func FormatBits(l Level, m Mask) int {
	return gf256.BCH(int(l)<<3|int(m), formatGen) ^ formatMask
}

// VersionBits returns the 18 bit version information for version v.
func VersionBits(v Version) int {
	return gf256.BCH(int(v), versionGen)
}

// A cell is a module of a matrix under construction.
type cell byte

const (
	unset cell = iota
	light
	dark
)

func cellOf(b bool) cell {
	if b {
		return dark
	}
	return light
}

// builder constructs the module matrix of a QR code.
type builder struct {
	v     Version
	l     Level
	size  int
	cells []cell // size*size, row major
}

func newBuilder(v Version, l Level) *builder {
	siz := v.Size()
	return &builder{v: v, l: l, size: siz, cells: make([]cell, siz*siz)}
}

func (m *builder) at(row, col int) cell { return m.cells[row*m.size+col] }

func (m *builder) set(row, col int, c cell) { m.cells[row*m.size+col] = c }

// build lays out function patterns and data for mask.
func (m *builder) build(data []byte, mask Mask, trial bool) {
	m.patterns(mask, trial)
	m.place(data, mask)
}

// patterns clears m and lays out function patterns for mask.  If
// trial is set, format and version information modules are light.
func (m *builder) patterns(mask Mask, trial bool) {
	clear(m.cells)
	m.finder(0, 0)
	m.finder(m.size-7, 0)
	m.finder(0, m.size-7)
	m.alignment()
	m.timing()
	m.format(mask, trial)
	if m.v >= 7 {
		m.version(trial)
	}
}

// finder draws a finder pattern with its top left corner at row, col
// and the light separator around it.
func (m *builder) finder(row, col int) {
	for r := -1; r <= 7; r++ {
		if row+r < 0 || m.size <= row+r {
			continue
		}
		for c := -1; c <= 7; c++ {
			if col+c < 0 || m.size <= col+c {
				continue
			}
			isDark := 0 <= r && r <= 6 && (c == 0 || c == 6) ||
				0 <= c && c <= 6 && (r == 0 || r == 6) ||
				2 <= r && r <= 4 && 2 <= c && c <= 4
			m.set(row+r, col+c, cellOf(isDark))
		}
	}
}

// alignment draws alignment patterns centred at each pair of
// alignment coordinates not covered by finder patterns.
func (m *builder) alignment() {
	pos := m.v.AlignmentPositions()
	for _, row := range pos {
		for _, col := range pos {
			if m.at(row, col) != unset {
				continue
			}
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					isDark := r == -2 || r == 2 || c == -2 || c == 2 ||
						r == 0 && c == 0
					m.set(row+r, col+c, cellOf(isDark))
				}
			}
		}
	}
}

// timing draws the timing patterns on row and column 6.
func (m *builder) timing() {
	for i := 8; i < m.size-8; i++ {
		if m.at(i, 6) == unset {
			m.set(i, 6, cellOf(i&1 == 0))
		}
		if m.at(6, i) == unset {
			m.set(6, i, cellOf(i&1 == 0))
		}
	}
}

// format draws both copies of the format information and the dark
// module.
func (m *builder) format(mask Mask, trial bool) {
	bits := FormatBits(m.l, mask)
	siz := m.size
	for i := 0; i < 15; i++ {
		c := cellOf(!trial && bits>>i&1 != 0)
		// vertical, beside the left finder patterns
		switch {
		case i < 6:
			m.set(i, 8, c)
		case i < 8:
			m.set(i+1, 8, c)
		default:
			m.set(siz-15+i, 8, c)
		}
		// horizontal, below the top finder patterns
		switch {
		case i < 8:
			m.set(8, siz-i-1, c)
		case i < 9:
			m.set(8, 15-i, c)
		default:
			m.set(8, 14-i, c)
		}
	}
	m.set(siz-8, 8, cellOf(!trial))
}

// version draws both 3x6 copies of the version information.
func (m *builder) version(trial bool) {
	bits := VersionBits(m.v)
	off := m.size - 11
	for i := 0; i < 18; i++ {
		c := cellOf(!trial && bits>>i&1 != 0)
		m.set(i/3, i%3+off, c)
		m.set(i%3+off, i/3, c)
	}
}

// place writes data bits into unset modules in zigzag scan order:
// upwards and downwards in turn through two column strips from the
// right, skipping the vertical timing pattern.  Bits past the end of
// data are zero.  Each bit is inverted where mask says so.
func (m *builder) place(data []byte, mask Mask) {
	s := NewBitStream(data)
	siz := m.size
	row, inc := siz-1, -1
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for {
			for c := col; c > col-2; c-- {
				if m.at(row, c) == unset {
					bit := s.Next() != 0
					m.set(row, c, cellOf(bit != mask.Invert(row, c)))
				}
			}
			row += inc
			if row < 0 || siz <= row {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}

// bitmap returns the completed matrix as a Bitmap.
func (m *builder) bitmap(mask Mask) *Bitmap {
	b := newBitmap(m.v, m.l, mask)
	for row := 0; row < m.size; row++ {
		line := b.bits[row*b.stride:]
		for col, c := range m.cells[row*m.size : (row+1)*m.size] {
			switch c {
			case dark:
				line[col>>3] |= 0x80 >> (col & 7)
			case unset:
				panic("qr: internal error: unset module")
			}
		}
	}
	return b
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
