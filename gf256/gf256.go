// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and polynomials over it.
package gf256 // import "github.com/unixdj/qrmatrix/gf256"

import "strconv"

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	log [256]byte // log[0] is unused
	exp [256]byte // exp[255] == exp[0]
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The QR field is NewField(0x11d, 2).
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}

	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.exp[255] = f.exp[0]
	return &f
}

// nbit returns the number of significant bits in p.
func nbit(p int) uint {
	n := uint(0)
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// polyDiv divides the polynomial p by q and returns the remainder.
func polyDiv(p, q int) int {
	np := nbit(p)
	nq := nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<(np-1)) != 0 {
			p ^= q << (np - nq)
		}
	}
	return p
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// reducible reports whether p is reducible.
func reducible(p int) bool {
	// Multiplying n-bit * n-bit produces (2n-1)-bit,
	// so if p is reducible, one of its factors must be
	// of np/2+1 bits or fewer.
	np := nbit(p)
	for q := 2; q < 1<<(np/2+1); q++ {
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.  e is reduced
// modulo 255 into the range 0 to 255, so Exp(-1) == Exp(254) and
// Exp(255) == Exp(0).
func (f *Field) Exp(e int) byte {
	for e < 0 {
		e += 255
	}
	for e >= 256 {
		e -= 255
	}
	return f.exp[e]
}

// Log returns the base-α logarithm of x in the field.
// Zero has no logarithm: Log panics if x == 0.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log(0)")
	}
	return int(f.log[x])
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.Exp(int(f.log[x]) + int(f.log[y]))
}

// BCH returns data followed by the remainder of its division by the
// binary generator polynomial gen.  The result is data shifted left
// by the degree of gen, with the check bits in the low bits.
func BCH(data, gen int) int {
	n := nbit(gen) - 1
	return data<<n | polyDiv(data<<n, gen)
}
