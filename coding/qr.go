// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the bit
// stream, Reed-Solomon check codewords, block interleaving, module
// placement and mask selection.
package coding // import "github.com/unixdj/qrmatrix/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrmatrix/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

// Version range.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a QR code of
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes.  The class selects the width of segment
// character count fields.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
// The values are those stored in the format information.
type Level int

const (
	M Level = iota // 15% of codewords recoverable
	L              // 7%
	H              // 30%
	Q              // 25%
)

func (l Level) String() string {
	if M <= l && l <= Q {
		return "MLHQ"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is an error correction level.
func (l Level) IsValid() bool { return M <= l && l <= Q }

// CapacityError is returned when the encoded data does not fit in the
// chosen version and level.
type CapacityError struct {
	Bits     int // encoded data length
	Capacity int // data capacity of the code
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Capacity)
}

// CountError is returned when a segment is too long for the character
// count field at the chosen version.
type CountError struct {
	Mode
	Count int
	Version
}

func (e CountError) Error() string {
	return fmt.Sprintf("qr: %d-character %s segment too long for version %s",
		e.Count, e.Mode, e.Version)
}

// BoundsError describes an access outside a Bitmap.
type BoundsError struct {
	Row, Col int // requested position
	Size     int // modules on a side
}

func (e BoundsError) Error() string {
	return fmt.Sprintf("qr: module %d,%d out of range [0,%d)",
		e.Row, e.Col, e.Size)
}

func check(v Version, l Level) error {
	if !v.IsValid() {
		return ErrVersion
	}
	if !l.IsValid() {
		return ErrLevel
	}
	return nil
}
