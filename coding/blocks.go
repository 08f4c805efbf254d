// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

//go:generate sh -c "go run gen.go | gofmt > tables.go"

// A version describes metadata associated with a version.
type version struct {
	align []int      // alignment pattern centre coordinates
	level [4][]group // block groups by Level
}

// A group is a run of identical Reed-Solomon blocks.
type group struct {
	count int // number of blocks
	total int // codewords per block
	data  int // data codewords per block
}

// A Block describes one Reed-Solomon block of a QR code.
type Block struct {
	Data  int // number of data codewords
	Total int // number of data and check codewords
}

// Check returns the number of check codewords in the block.
func (b Block) Check() int { return b.Total - b.Data }

// Blocks returns the Reed-Solomon blocks of a QR code with the given
// version and level, in interleaving order.
func Blocks(v Version, l Level) ([]Block, error) {
	if err := check(v, l); err != nil {
		return nil, err
	}
	return blocks(v, l), nil
}

func blocks(v Version, l Level) []Block {
	var b []Block
	for _, g := range vtab[v].level[l] {
		for i := 0; i < g.count; i++ {
			b = append(b, Block{g.data, g.total})
		}
	}
	return b
}

// DataBytes returns the number of data codewords that can be stored
// in a QR code with the given version and level.  Both must be valid.
func (v Version) DataBytes(l Level) int {
	n := 0
	for _, g := range vtab[v].level[l] {
		n += g.count * g.data
	}
	return n
}

// DataBits returns the number of data bits that can be stored in a
// QR code with the given version and level.  Both must be valid.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// Bytes returns the total number of data and check codewords in a QR
// code of version v.
func (v Version) Bytes() int {
	n := 0
	for _, g := range vtab[v].level[M] {
		n += g.count * g.total
	}
	return n
}

// AlignmentPositions returns the row and column coordinates of
// alignment pattern centres for version v.  The slice must not be
// modified.
func (v Version) AlignmentPositions() []int { return vtab[v].align }
