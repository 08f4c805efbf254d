// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over a Field.  Coefficients are stored
// highest degree first with leading zero coefficients stripped, so
// the length of a Poly is its degree plus one.  The zero polynomial
// has length 0.  A Poly is immutable.
type Poly struct {
	f *Field
	c []byte
}

// NewPoly returns the polynomial with coefficients c, highest degree
// first, multiplied by x^shift.  c is copied.
func (f *Field) NewPoly(c []byte, shift int) Poly {
	for len(c) != 0 && c[0] == 0 {
		c = c[1:]
	}
	if len(c) == 0 {
		return Poly{f: f}
	}
	p := make([]byte, len(c)+shift)
	copy(p, c)
	return Poly{f, p}
}

// Len returns the number of coefficients in p.
func (p Poly) Len() int { return len(p.c) }

// At returns the ith coefficient of p, counting from the highest
// degree.
func (p Poly) At(i int) byte { return p.c[i] }

// Coefficients returns a copy of the coefficients of p.
func (p Poly) Coefficients() []byte {
	return append([]byte(nil), p.c...)
}

// Mul returns the product of p and q.
func (p Poly) Mul(q Poly) Poly {
	if len(p.c) == 0 || len(q.c) == 0 {
		return Poly{f: p.f}
	}
	f := p.f
	r := make([]byte, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		for j, b := range q.c {
			r[i+j] ^= f.Mul(a, b)
		}
	}
	return f.NewPoly(r, 0)
}

// Mod returns the remainder of the division of p by d.  The result is
// shorter than d.  Mod panics if d is the zero polynomial.
func (p Poly) Mod(d Poly) Poly {
	if len(d.c) == 0 {
		panic("gf256: division by zero polynomial")
	}
	f := p.f
	dlog := f.Log(d.c[0])
	for len(p.c) >= len(d.c) {
		ratio := f.Log(p.c[0]) - dlog
		r := append([]byte(nil), p.c...)
		for i, v := range d.c {
			if v != 0 {
				r[i] ^= f.Exp(f.Log(v) + ratio)
			}
		}
		p = f.NewPoly(r, 0)
	}
	return p
}

// RSGenerator returns the Reed-Solomon generator polynomial of degree
// n, the product of (x - α^i) for i from 0 to n-1.
func (f *Field) RSGenerator(n int) Poly {
	g := f.NewPoly([]byte{1}, 0)
	for i := 0; i < n; i++ {
		g = g.Mul(f.NewPoly([]byte{1, f.Exp(i)}, 0))
	}
	return g
}

// ECC returns the n Reed-Solomon check bytes for data.  The check
// bytes are the low-order coefficients of the remainder of data·x^n
// divided by the generator polynomial, zero-filled on the left if the
// remainder is shorter.
func (f *Field) ECC(data []byte, n int) []byte {
	gen := f.RSGenerator(n)
	rem := f.NewPoly(data, gen.Len()-1).Mod(gen)
	check := make([]byte, n)
	copy(check[n-rem.Len():], rem.c)
	return check
}
