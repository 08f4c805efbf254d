// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes byte payloads into QR codes of a given version and
error correction level.

A Symbol collects byte mode segments and lays them out, lazily, into a
module matrix.  The matrix is read with ModuleCount and IsDark, or
rendered through a Code:

	s, err := qr.NewFromText(4, qr.M, "https://example.com/")
	if err != nil {
		return err
	}
	c, err := s.Code()
	if err != nil {
		return err
	}
	err = c.EncodePNG(w)

The version is not chosen automatically: data that does not fit is
reported with a coding.CapacityError.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"github.com/unixdj/qrmatrix/coding"
)

// Errors returned by New for arguments out of range.
var (
	ErrVersion = coding.ErrVersion
	ErrLevel   = coding.ErrLevel
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% of codewords recoverable
	M              // 15%
	Q              // 25%
	H              // 30%
)

// levels maps Level to the value stored in the format information.
var levels = [...]coding.Level{L: coding.L, M: coding.M, Q: coding.Q, H: coding.H}

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return "Level(" + coding.Level(l).String() + ")"
}

// A Symbol is a QR code under construction.  Segments are appended
// with the Add methods; the module matrix is built on first access
// and rebuilt after further appends.
type Symbol struct {
	v    coding.Version
	l    Level
	segs []coding.Segment
	bm   *coding.Bitmap // nil until built
}

// New returns an empty Symbol with the given version, 1 to 40, and
// error correction level.
func New(version int, level Level) (*Symbol, error) {
	v := coding.Version(version)
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if level < L || H < level {
		return nil, ErrLevel
	}
	return &Symbol{v: v, l: level}, nil
}

// NewFromBytes returns a Symbol holding data in one byte mode segment.
func NewFromBytes(version int, level Level, data []byte) (*Symbol, error) {
	s, err := New(version, level)
	if err != nil {
		return nil, err
	}
	s.AddBytes(data)
	return s, nil
}

// NewFromText returns a Symbol holding the UTF-8 encoding of text in
// one byte mode segment.
func NewFromText(version int, level Level, text string) (*Symbol, error) {
	s, err := New(version, level)
	if err != nil {
		return nil, err
	}
	s.AddText(text)
	return s, nil
}

// Version returns the QR version of s.
func (s *Symbol) Version() int { return int(s.v) }

// Level returns the error correction level of s.
func (s *Symbol) Level() Level { return s.l }

func (s *Symbol) add(seg coding.Segment) {
	s.segs = append(s.segs, seg)
	s.bm = nil
}

// AddBytes appends a byte mode segment holding a copy of data.
func (s *Symbol) AddBytes(data []byte) {
	s.add(append(coding.Bytes{}, data...))
}

// AddText appends a byte mode segment holding the UTF-8 encoding of
// text.
func (s *Symbol) AddText(text string) { s.add(coding.Text(text)) }

// AddLatin1 appends a byte mode segment holding text converted to
// ISO 8859-1.  Nothing is appended if text has characters outside
// Latin-1.
func (s *Symbol) AddLatin1(text string) error {
	seg, err := coding.Latin1(text)
	if err != nil {
		return err
	}
	s.add(seg)
	return nil
}

// Bitmap returns the module matrix of s, building it if needed.
// It fails with a coding.CapacityError or coding.CountError if the
// segments do not fit.
func (s *Symbol) Bitmap() (*coding.Bitmap, error) {
	if s.bm == nil {
		bm, err := coding.Encode(s.v, levels[s.l], s.segs...)
		if err != nil {
			return nil, err
		}
		s.bm = bm
	}
	return s.bm, nil
}

// ModuleCount returns the number of modules on a side of s.
func (s *Symbol) ModuleCount() int { return s.v.Size() }

// IsDark reports whether the module at row, col is dark.  It fails
// with a coding.BoundsError if row or col is outside
// [0, ModuleCount()), or with the error from Bitmap.
func (s *Symbol) IsDark(row, col int) (bool, error) {
	if siz := s.ModuleCount(); uint(row) >= uint(siz) || uint(col) >= uint(siz) {
		return false, coding.BoundsError{Row: row, Col: col, Size: siz}
	}
	bm, err := s.Bitmap()
	if err != nil {
		return false, err
	}
	return bm.IsDark(row, col), nil
}

// Mask returns the mask pattern chosen for s.
func (s *Symbol) Mask() (coding.Mask, error) {
	bm, err := s.Bitmap()
	if err != nil {
		return 0, err
	}
	return bm.Mask(), nil
}

// Code returns a renderable Code displaying s.
func (s *Symbol) Code() (*Code, error) {
	bm, err := s.Bitmap()
	if err != nil {
		return nil, err
	}
	return NewCode(bm), nil
}
