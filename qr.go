// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as QR codes in byte mode at error correction
level M.

The text is stored as is: a QR code holds bytes, and the reader
decides how to interpret them.  EncodeLatin1 converts UTF-8 text to
ISO 8859-1, the default interpretation of byte mode.
*/
package qr // import "github.com/unixdj/qrbyte"

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrbyte/coding"
	"github.com/unixdj/qrbyte/gf256"
)

var (
	ErrTooLong = coding.ErrTooLong
	ErrVersion = coding.ErrVersion
	ErrCharset = errors.New("qr: text not representable in Latin-1")
)

// DefaultBorder is the width of the quiet zone in pixels set by Encode.
const DefaultBorder = 4

// Capacity returns the maximum number of bytes a QR code of version v
// can hold, or 0 if v is invalid.
func Capacity(v coding.Version) int {
	if v < coding.MinVersion || v > coding.MaxVersion {
		return 0
	}
	return v.Capacity()
}

// VersionFor returns the smallest version holding n bytes.
func VersionFor(n int) (coding.Version, error) {
	return versionFor(n, coding.MinVersion)
}

// versionFor returns the smallest version not below min holding n
// bytes.
func versionFor(n int, min coding.Version) (coding.Version, error) {
	max := coding.MaxVersion
	if min < coding.MinVersion || min > max {
		return 0, ErrVersion
	}
	if c := max.Capacity(); n > c {
		return 0, coding.CapacityError{Len: n, Max: c, Version: max}
	}
	v := min
	for v < max {
		if mid := (v + max) / 2; mid.Capacity() < n {
			v = mid + 1
		} else {
			max = mid
		}
	}
	return v, nil
}

// An Encoder encodes QR codes computing check bytes over a field.
type Encoder struct {
	field *gf256.Field
}

// NewEncoder returns an Encoder using f.  If f is nil, coding.Field
// is used.
func NewEncoder(f *gf256.Field) *Encoder {
	if f == nil {
		f = coding.Field
	}
	return &Encoder{field: f}
}

var std = NewEncoder(nil)

// Encode returns a QR code of the smallest version holding text.
func (e *Encoder) Encode(text string) (*Code, error) {
	return e.EncodeVersion(text, coding.MinVersion)
}

// EncodeVersion returns a QR code holding text of the smallest version
// not below min.
func (e *Encoder) EncodeVersion(text string, min coding.Version) (*Code, error) {
	v, err := versionFor(len(text), min)
	if err != nil {
		return nil, err
	}
	enc, err := coding.NewEncoder(v, e.field)
	if err != nil {
		return nil, err
	}
	cc, err := enc.Encode(text)
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap:   cc.Bitmap,
		Reserved: cc.Reserved,
		Size:     cc.Size,
		Stride:   cc.Stride,
		Version:  cc.Version,
		Mask:     cc.Mask,
		Penalty:  cc.Penalty,
		Border:   DefaultBorder,
	}, nil
}

// EncodeLatin1 converts text from UTF-8 to ISO 8859-1 and encodes it.
func (e *Encoder) EncodeLatin1(text string) (*Code, error) {
	s, err := Latin1(text)
	if err != nil {
		return nil, err
	}
	return e.Encode(s)
}

// Latin1 converts text from UTF-8 to ISO 8859-1.
func Latin1(text string) (string, error) {
	s, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCharset, err)
	}
	return s, nil
}

// Encode returns a QR code of the smallest version holding text.
func Encode(text string) (*Code, error) { return std.Encode(text) }

// EncodeVersion returns a QR code holding text of the smallest version
// not below min.
func EncodeVersion(text string, min coding.Version) (*Code, error) {
	return std.EncodeVersion(text, min)
}

// EncodeLatin1 converts text from UTF-8 to ISO 8859-1 and encodes it.
func EncodeLatin1(text string) (*Code, error) { return std.EncodeLatin1(text) }

// A Code is a square pixel grid.
type Code struct {
	Bitmap   []byte // 1 is black, 0 is white
	Reserved []byte // 1 is a function pattern or format pixel, 0 is data
	Size     int    // number of pixels on a side
	Stride   int    // number of bytes per row
	Version  coding.Version
	Mask     int  // mask pattern
	Penalty  int  // penalty of the mask pattern
	Border   int  // quiet zone width in pixels
	Reverse  bool // reverse colours
}

func (c *Code) bit(b []byte, x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		b[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool { return c.bit(c.Bitmap, x, y) }

// IsReserved reports whether the pixel at (x,y) belongs to a function
// pattern or the format or version information.
func (c *Code) IsReserved(x, y int) bool { return c.bit(c.Reserved, x, y) }

func (c *Code) matrix(b []byte) [][]bool {
	m := make([][]bool, c.Size)
	for y := range m {
		m[y] = make([]bool, c.Size)
		for x := range m[y] {
			m[y][x] = c.bit(b, x, y)
		}
	}
	return m
}

// Matrix returns the pixels of c by row, true for black.
func (c *Code) Matrix() [][]bool { return c.matrix(c.Bitmap) }

// ReservedMatrix returns the reserved pixels of c by row.
func (c *Code) ReservedMatrix() [][]bool { return c.matrix(c.Reserved) }

// String returns c drawn with Unicode half blocks, two rows of
// pixels per line, surrounded by c.Border white pixels.  White pixels
// are drawn as ink, for light text on a dark terminal; with c.Reverse
// black ones are.
func (c *Code) String() string {
	bord := max(c.Border, 0)
	var b strings.Builder
	b.Grow((c.Size + 2*bord + 1) * ((c.Size+2*bord+1)/2*3 + 1))
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if c.Black(x, y) == c.Reverse {
				n |= 2
			}
			if y+1 < c.Size+bord && c.Black(x, y+1) == c.Reverse {
				n |= 1
			}
			b.WriteString([4]string{" ", "▄", "▀", "█"}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
