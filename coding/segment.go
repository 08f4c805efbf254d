// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// A Mode is a QR segment encoding mode.  Only Byte mode segments are
// implemented; the other modes are listed for their header fields.
type Mode int8

// Encoding modes.
const (
	Numeric      Mode = iota // numeric mode
	Alphanumeric             // alphanumeric mode
	Byte                     // byte mode, any data
	Kanji                    // kanji mode
)

var modes = [...]struct {
	name      string
	indicator byte
	// countLength lists lengths of the character count field in
	// the three QR version size classes.
	countLength [3]byte
}{
	Numeric:      {"numeric", 1, [3]byte{10, 12, 14}},
	Alphanumeric: {"alphanumeric", 2, [3]byte{9, 11, 13}},
	Byte:         {"byte", 4, [3]byte{8, 16, 16}},
	Kanji:        {"kanji", 8, [3]byte{8, 10, 12}},
}

func (m Mode) valid() bool { return 0 <= m && int(m) < len(modes) }

func (m Mode) String() string {
	if m.valid() {
		return modes[m].name
	}
	return strconv.Itoa(int(m))
}

// Indicator returns the 4 bit mode indicator for m.
func (m Mode) Indicator() byte { return modes[m].indicator }

// CountLength returns the width in bits of the character count field
// for m at version v.
func (m Mode) CountLength(v Version) int {
	return int(modes[m].countLength[v.SizeClass()])
}

// A Segment is a chunk of data encoded in one mode.
type Segment interface {
	Mode() Mode     // encoding mode
	Len() int       // character count
	Encode(b *Bits) // write the segment body to b
}

// Bytes is a byte mode segment.
type Bytes []byte

// Text returns a byte mode segment holding the UTF-8 encoding of s.
func Text(s string) Bytes { return Bytes(s) }

// Latin1 returns a byte mode segment holding s converted from UTF-8
// to ISO 8859-1.  It fails if s contains characters outside Latin-1.
func Latin1(s string) (Bytes, error) {
	t, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}
	return Bytes(t), nil
}

func (Bytes) Mode() Mode { return Byte }

func (s Bytes) Len() int { return len(s) }

func (s Bytes) Encode(b *Bits) {
	for _, v := range s {
		b.Write(uint32(v), 8)
	}
}

// writeSegment writes the header and body of seg to b.
func writeSegment(b *Bits, seg Segment, v Version) error {
	m := seg.Mode()
	if !m.valid() {
		panic("qr: invalid mode " + m.String())
	}
	n, w := seg.Len(), m.CountLength(v)
	if n >= 1<<w {
		return CountError{m, n, v}
	}
	b.Write(uint32(m.Indicator()), 4)
	b.Write(uint32(n), w)
	seg.Encode(b)
	return nil
}
