// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and the Reed-Solomon check byte computation used by QR codes.
package gf256 // import "github.com/unixdj/qrbyte/gf256"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrTable is wrapped by errors describing an invalid log/antilog table.
var ErrTable = errors.New("gf256: invalid table")

// A Field represents an instance of GF(256) defined by a specific
// polynomial.  A Field is immutable and safe for concurrent use.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // exp[i+255] == exp[i]
}

// NewField returns the field defined by the polynomial poly and
// generator α.  QR codes use polynomial 0x11d with generator 2.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || α < 2 || α > 0xff {
		panic("gf256: invalid polynomial " + strconv.Itoa(poly) +
			" or generator " + strconv.Itoa(α))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: " + strconv.Itoa(α) +
				" does not generate the field " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	copy(f.exp[255:], f.exp[:255])
	return &f
}

// mul multiplies x and y modulo poly by shifting and adding.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		if y <<= 1; y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// LoadField reads a log/antilog table and returns the Field it
// describes.  Each line holds comma-separated integers: an exponent
// and its value, optionally followed by a value and its exponent.
// Blank lines and lines starting with '#' are ignored.  Exponents 0 to
// 254 must all be present.  The table is checked for consistency, so
// that a Field returned without error satisfies Exp(Log(x)) == x.
func LoadField(r io.Reader) (*Field, error) {
	var (
		f       Field
		haveExp [255]bool
		haveLog [256]bool
		logs    [256]int
		line    int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || s[0] == '#' {
			continue
		}
		fields := strings.Split(s, ",")
		if len(fields) != 2 && len(fields) != 4 {
			return nil, lineError(line, "want 2 or 4 fields, have %d",
				len(fields))
		}
		var n [4]int
		for i, v := range fields {
			u, err := strconv.ParseUint(strings.TrimSpace(v), 10, 16)
			if err != nil || u > 255 {
				return nil, lineError(line, "bad number %q", v)
			}
			n[i] = int(u)
		}
		e, x := n[0], n[1]
		switch {
		case x == 0:
			return nil, lineError(line, "exponent %d maps to zero", e)
		case e == 255:
			if x != 1 {
				return nil, lineError(line, "exponent 255 maps to %d", x)
			}
		case haveExp[e] && int(f.exp[e]) != x:
			return nil, lineError(line, "exponent %d redefined", e)
		default:
			haveExp[e] = true
			f.exp[e] = byte(x)
		}
		if len(fields) == 4 {
			x, e := n[2], n[3]
			if x == 0 || e > 254 {
				return nil, lineError(line, "bad log entry %d,%d", x, e)
			}
			if haveLog[x] && logs[x] != e {
				return nil, lineError(line, "log of %d redefined", x)
			}
			haveLog[x] = true
			logs[x] = e
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	var seen [256]bool
	for e, ok := range haveExp {
		if !ok {
			return nil, fmt.Errorf("%w: exponent %d missing", ErrTable, e)
		}
		x := f.exp[e]
		if seen[x] {
			return nil, fmt.Errorf("%w: value %d repeated", ErrTable, x)
		}
		seen[x] = true
		f.log[x] = byte(e)
	}
	for x, ok := range haveLog {
		if ok && int(f.log[x]) != logs[x] {
			return nil, fmt.Errorf("%w: log of %d is %d, want %d",
				ErrTable, x, logs[x], f.log[x])
		}
	}
	if f.exp[0] != 1 {
		return nil, fmt.Errorf("%w: exponent 0 maps to %d", ErrTable,
			f.exp[0])
	}
	copy(f.exp[255:], f.exp[:255])
	// Multiplication by α must distribute over addition.
	var basis [8]byte
	for i := range basis {
		basis[i] = f.MulExp(1<<i, 1)
	}
	for x := 1; x < 256; x++ {
		var y byte
		for i, b := range basis {
			if x>>i&1 != 0 {
				y ^= b
			}
		}
		if f.MulExp(byte(x), 1) != y {
			return nil, fmt.Errorf("%w: not a field at value %d",
				ErrTable, x)
		}
	}
	return &f, nil
}

func lineError(line int, format string, a ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrTable, line,
		fmt.Sprintf(format, a...))
}

// WriteTo writes the log/antilog table of f to w in the format read
// by LoadField.
func (f *Field) WriteTo(w io.Writer) (int64, error) {
	b := bufio.NewWriter(w)
	var n int64
	for e := 0; e < 256; e++ {
		var s string
		if e == 0 {
			s = "0,1\n"
		} else {
			s = fmt.Sprintf("%d,%d,%d,%d\n", e, f.Exp(e), e, f.log[e])
		}
		m, err := b.WriteString(s)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, b.Flush()
}

// Exp returns the e'th power of α in f.  e may be any non-negative
// integer.
func (f *Field) Exp(e int) byte {
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in f.
// Log panics if x == 0.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log of zero")
	}
	return int(f.log[x])
}

// MulExp returns x multiplied by α to the power of e, that is,
// Exp(Log(x) + e).  MulExp panics if x == 0.
func (f *Field) MulExp(x byte, e int) byte {
	return f.exp[(f.Log(x)+e)%255]
}

// Mul returns the product of x and y in f.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Inv returns the multiplicative inverse of x in f.
// Inv panics if x == 0.
func (f *Field) Inv(x byte) byte {
	return f.exp[255-f.Log(x)]
}

// Gen returns the Reed-Solomon generator polynomial of degree n,
// (x - α⁰)(x - α¹)...(x - αⁿ⁻¹), as the exponents of its n+1
// coefficients, highest degree first.  No coefficient is zero.
func Gen(f *Field, n int) []byte {
	p := make([]byte, 1, n+1)
	p[0] = 1
	for i := 0; i < n; i++ {
		p = append(p, 0)
		for j := len(p) - 1; j > 0; j-- {
			p[j] ^= f.Mul(p[j-1], f.Exp(i))
		}
	}
	for i, c := range p {
		p[i] = byte(f.Log(c))
	}
	return p
}

// An RSEncoder computes Reed-Solomon check bytes by dividing the
// data polynomial by a generator polynomial.
type RSEncoder struct {
	f   *Field
	gen []byte // exponents of the generator coefficients
	p   []byte // scratch dividend
}

// NewRSEncoder returns an RSEncoder over f for the generator polynomial
// with coefficient exponents gen, highest degree first.  The encoder
// produces len(gen)-1 check bytes.
func NewRSEncoder(f *Field, gen []byte) *RSEncoder {
	if len(gen) < 2 || gen[0] != 0 {
		panic("gf256: invalid generator polynomial")
	}
	return &RSEncoder{f: f, gen: gen}
}

// Check returns the number of check bytes produced by rs.
func (rs *RSEncoder) Check() int { return len(rs.gen) - 1 }

// ECC writes to check the check bytes for data.
// check must be exactly rs.Check() bytes long.
func (rs *RSEncoder) ECC(data, check []byte) {
	n := rs.Check()
	if len(check) != n {
		panic("gf256: invalid check byte length")
	}
	// The dividend is data followed by n zero coefficients.
	if cap(rs.p) < len(data)+n {
		rs.p = make([]byte, len(data)+n)
	}
	p := rs.p[:len(data)+n]
	copy(p, data)
	clear(p[len(data):])
	// Each step cancels the leading term.  A zero leading term is
	// already cancelled and is skipped.
	for i := 0; i < len(data); i++ {
		c := p[i]
		if c == 0 {
			continue
		}
		e := rs.f.Log(c)
		q := p[i:]
		for j, g := range rs.gen {
			q[j] ^= rs.f.Exp(int(g) + e)
		}
	}
	copy(check, p[len(data):])
}
