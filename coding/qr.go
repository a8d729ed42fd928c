// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details for byte mode
// symbols at error correction level M.
package coding // import "github.com/unixdj/qrbyte/coding"

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/unixdj/qrbyte/gf256"
)

var (
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
	ErrTooLong = errors.New("qr: text too long")
	ErrTable   = errors.New("qr: inconsistent version table")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the number of modules on a side of a QR code of
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// DataBytes returns the number of data bytes that can be stored in a
// QR code with the given version.
func (v Version) DataBytes() int {
	vt := &vtab[v]
	return vt.bytes - vt.nblock*vt.check
}

// DataBits returns the number of data bits that can be stored in a
// QR code with the given version.
func (v Version) DataBits() int { return v.DataBytes() * 8 }

// countLength returns the length of the character count field.
func (v Version) countLength() int {
	if v <= 9 {
		return 8
	}
	return 16
}

// Capacity returns the maximum length of text in bytes that can be
// encoded in a single byte mode segment in a QR code of version v.
func (v Version) Capacity() int {
	return (v.DataBits() - 4 - v.countLength()) / 8
}

// EncodedLength returns the length in bits of a byte mode segment
// holding n bytes in a QR code of version v, including the header.
func (v Version) EncodedLength(n int) int {
	return 4 + v.countLength() + n*8
}

// Blocks returns the lengths of the data blocks of version v.
// When the data bytes do not divide evenly, the last blocks are one
// byte longer than the first.
func (v Version) Blocks() []int {
	vt := &vtab[v]
	nd := v.DataBytes()
	db := nd / vt.nblock
	normal := (db+1)*vt.nblock - nd
	b := make([]int, vt.nblock)
	for i := range b {
		if i == normal {
			db++
		}
		b[i] = db
	}
	return b
}

// CheckBytes returns the number of check bytes per block of version v.
func (v Version) CheckBytes() int { return vtab[v].check }

// alignment returns the centres of the alignment boxes of version v on
// either axis, starting with the timing strip at 6.  Version 1 has none.
func (v Version) alignment() []int {
	vt := &vtab[v]
	if vt.apos == 0 {
		return nil
	}
	c := []int{6}
	for x := vt.apos; x <= v.Size()-7; x += vt.astride {
		c = append(c, x)
		if vt.astride == 0 {
			break
		}
	}
	return c
}

// A version describes metadata associated with a version.
type version struct {
	apos    int    // centre of the first alignment box after 6
	astride int    // distance between alignment box centres
	bytes   int    // total data and check bytes
	pattern uint32 // version information, 0 below version 7
	nblock  int    // blocks
	check   int    // check bytes per block
}

// checkTables verifies the version table against the generator table,
// the field and the geometry of each version.
var checkTables = sync.OnceValue(func() error {
	for v := MinVersion; v <= MaxVersion; v++ {
		vt := &vtab[v]
		siz := v.Size()
		if vt.nblock < 1 || vt.check >= len(gentab) ||
			len(gentab[vt.check]) != vt.check+1 {
			return fmt.Errorf("%w: version %d: no generator of degree %d",
				ErrTable, v, vt.check)
		}
		if !bytes.Equal(gentab[vt.check], gf256.Gen(Field, vt.check)) {
			return fmt.Errorf("%w: version %d: bad generator", ErrTable, v)
		}
		if v.DataBytes() < vt.nblock {
			return fmt.Errorf("%w: version %d: %d data bytes in %d blocks",
				ErrTable, v, v.DataBytes(), vt.nblock)
		}
		if v >= 7 && vt.pattern>>12 != uint32(v) || v < 7 && vt.pattern != 0 {
			return fmt.Errorf("%w: version %d: bad version pattern",
				ErrTable, v)
		}
		if c := v.alignment(); v > 1 && c[len(c)-1] != siz-7 {
			return fmt.Errorf("%w: version %d: alignment ends at %d",
				ErrTable, v, c[len(c)-1])
		}
		if raw := siz*siz - NewLayout(v).Map.Count(); raw>>3 != vt.bytes {
			return fmt.Errorf("%w: version %d: %d data modules for %d bytes",
				ErrTable, v, raw, vt.bytes)
		}
	}
	return nil
})

// CapacityError reports text too long for a QR code version.
type CapacityError struct {
	Len     int     // length of text in bytes
	Max     int     // capacity in bytes
	Version Version // largest version tried
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bytes into version %s "+
		"holding %d bytes", e.Len, e.Version, e.Max)
}

func (e CapacityError) Unwrap() error { return ErrTooLong }

type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	vt := &vtab[v]
	n := vt.bytes
	if 1 < vt.nblock {
		n <<= 1
	}
	return &Bits{b: make([]byte, 0, n)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

func (b *Bits) Bits() int {
	return b.nbit
}

func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

func (b *Bits) growTo(n int) {
	for cap(b.b) < n {
		b.b = append(b.b[:cap(b.b)], 0)[:len(b.b)]
	}
}

func (b *Bits) Grow(n int) { b.growTo(len(b.b) + n) }

// Add adds n bytes to b and returns the added slice.
func (b *Bits) Add(n int) []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	b.Grow(n)
	start := len(b.b)
	b.b = b.b[:start+n]
	b.nbit = 8 * len(b.b)
	return b.b[start:]
}

// Write writes the nbit low bits of v to b, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Byte mode indicator.
const byteMode = 4

// WriteBytes writes s to b as a byte mode segment for version v.
func (b *Bits) WriteBytes(s string, v Version) {
	b.Write(byteMode, 4)
	b.Write(uint32(len(s)), v.countLength())
	if b.nbit&7 != 0 {
		for ; len(s) >= 4; s = s[4:] {
			v := uint32(s[0])<<24 | uint32(s[1])<<16 |
				uint32(s[2])<<8 | uint32(s[3])
			b.Write(v, 32)
		}
		if s != "" {
			var v uint32
			for i := 0; i < len(s); i++ {
				v = v<<8 | uint32(s[i])
			}
			b.Write(v, 8*len(s))
		}
	} else {
		b.b = append(b.b, s...)
		b.nbit += len(s) * 8
	}
}

// padTo adds up to t terminator bits to b, fills it with zero bits to
// a byte boundary and pads it to n bits with alternating bytes 0xec and
// 0x11.  n must be a multiple of 8.
func (b *Bits) padTo(t, n int) {
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	for pad := byte(0xec); len(b.b)*8 < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = len(b.b) * 8
}

// AddCheckBytes adds terminator, padding and checksum to b for the
// given QR version, computing the checksum over f.
func (b *Bits) AddCheckBytes(v Version, f *gf256.Field) {
	nb := v.DataBits()
	if b.nbit > nb {
		panic("qr: too much data")
	}
	vt := &vtab[v]
	b.growTo(vt.bytes)
	b.padTo(4, nb)

	dat := b.Bytes()
	rs := gf256.NewRSEncoder(f, gentab[vt.check])
	for _, db := range v.Blocks() {
		rs.ECC(dat[:db], b.Add(vt.check))
		dat = dat[db:]
	}

	if len(b.Bytes()) != vt.bytes {
		panic("qr: internal error")
	}
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}

// Permute returns a BitStream reading data and checksum bits in b
// with blocks interleaved for the given QR code version.
// The BitStream may use the same underlying buffer.
func (b *Bits) Permute(v Version) BitStream {
	vt := &vtab[v]
	src := b.Bytes()
	if len(src) != vt.bytes {
		panic("qr: wrong data length")
	}
	dst := src
	if vt.nblock != 1 {
		if cap(src) < len(src)*2 {
			dst = make([]byte, vt.bytes)
		} else {
			dst = src[len(src) : len(src)*2]
		}
		nd := v.DataBytes()
		interleave(dst[:nd], src[:nd], vt.nblock)
		interleave(dst[nd:], src[nd:], vt.nblock)
	}
	return NewBitStream(dst)
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

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

// A Code is a square pixel grid.
type Code struct {
	Bitmap   []byte // 1 is black, 0 is white
	Reserved []byte // 1 is a function pattern or format pixel, 0 is data
	Size     int    // number of pixels on a side
	Stride   int    // number of bytes per row
	Version  Version
	Mask     int // mask pattern
	Penalty  int // penalty of the mask pattern
}

func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// IsReserved reports whether the pixel at (x, y) belongs to a function
// pattern or the format or version information.
func (c *Code) IsReserved(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Reserved[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Encoder encodes a QR code.
type Encoder struct {
	v     Version
	field *gf256.Field
	b     *Bits
	mask  int // mask pattern plus 1, 0 to choose
}

// NewEncoder returns an Encoder for the given version computing check
// bytes over f.  If f is nil, Field is used.
func NewEncoder(v Version, f *gf256.Field) (*Encoder, error) {
	if v < MinVersion || v > MaxVersion {
		return nil, ErrVersion
	}
	if err := checkTables(); err != nil {
		return nil, err
	}
	if f == nil {
		f = Field
	}
	return &Encoder{v: v, field: f, b: NewBits(v)}, nil
}

// Version returns the version of codes produced by e.
func (e *Encoder) Version() Version { return e.v }

// SetMask sets the mask pattern used by e.  With mask -1, the default,
// the mask with the lowest penalty is chosen.
func (e *Encoder) SetMask(mask int) error {
	if mask < -1 || mask >= len(maskFunc) {
		return ErrMask
	}
	e.mask = mask + 1
	return nil
}

// Write adds byte mode segments holding text to e.  If the segments
// do not fit, Write returns a CapacityError and e is unchanged.
func (e *Encoder) Write(text ...string) error {
	n, nb := 0, e.b.Bits()
	for _, t := range text {
		n += len(t)
		nb += e.v.EncodedLength(len(t))
	}
	if nb > e.v.DataBits() {
		return CapacityError{
			Len:     n,
			Max:     max(0, (e.v.DataBits()-e.b.Bits()-4-e.v.countLength())/8),
			Version: e.v,
		}
	}
	for _, t := range text {
		e.b.WriteBytes(t, e.v)
	}
	return nil
}

func (e *Encoder) Reset() { e.b.Reset() }

// Code returns a QR code containing data written to e and resets e.
func (e *Encoder) Code() (*Code, error) {
	defer e.b.Reset()
	e.b.AddCheckBytes(e.v, e.field)
	bits := e.b.Permute(e.v)

	// Lay out the function patterns, write the data and checksum
	// bits around them and mask the result.
	l := NewLayout(e.v)
	m := l.Place(bits)
	var mask, pen int
	if e.mask != 0 {
		mask = e.mask - 1
		l.ApplyMask(m, mask)
		pen = Penalty(m)
	} else {
		m, mask, pen = l.Mask(m)
	}
	return &Code{
		Bitmap:   m.Bits,
		Reserved: l.Map.Bits,
		Size:     l.Size,
		Stride:   m.Stride,
		Version:  e.v,
		Mask:     mask,
		Penalty:  pen,
	}, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(text ...string) (*Code, error) {
	if err := e.Write(text...); err != nil {
		return nil, err
	}
	return e.Code()
}

// Encode encodes text using an Encoder with the given version.
func Encode(version Version, text ...string) (*Code, error) {
	e, err := NewEncoder(version, nil)
	if err != nil {
		return nil, err
	}
	return e.Encode(text...)
}
