// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// A Bitmap is a square grid of pixels, one bit per pixel.  Each row
// is Stride bytes long, the leftmost pixel in the most significant
// bit of the first byte.
type Bitmap struct {
	Size   int
	Stride int
	Bits   []byte
}

// NewBitmap returns an empty Bitmap with siz pixels on a side.
func NewBitmap(siz int) *Bitmap {
	stride := (siz + 7) >> 3
	return &Bitmap{Size: siz, Stride: stride, Bits: make([]byte, stride*siz)}
}

// Get reports whether the pixel at (x, y) is set.
func (m *Bitmap) Get(x, y int) bool {
	return m.Bits[y*m.Stride+x>>3]&(0x80>>(x&7)) != 0
}

// Set sets the pixel at (x, y) to v.
func (m *Bitmap) Set(x, y int, v bool) {
	off, b := y*m.Stride+x>>3, byte(0x80)>>(x&7)
	if v {
		m.Bits[off] |= b
	} else {
		m.Bits[off] &^= b
	}
}

// Flip inverts the pixel at (x, y).
func (m *Bitmap) Flip(x, y int) {
	m.Bits[y*m.Stride+x>>3] ^= 0x80 >> (x & 7)
}

// Count returns the number of set pixels.
func (m *Bitmap) Count() int {
	n := 0
	for _, b := range m.Bits {
		n += bits.OnesCount8(b)
	}
	return n
}

// Clone returns a copy of m.
func (m *Bitmap) Clone() *Bitmap {
	c := *m
	c.Bits = append([]byte(nil), m.Bits...)
	return &c
}

// A Layout describes the function patterns of a QR code version.
// The data and checksum bits are placed in pixels not set in Map.
type Layout struct {
	Version Version
	Size    int
	Map     *Bitmap // function patterns, format and version information
	Pattern *Bitmap // black pixels of the function patterns
}

// NewLayout returns the Layout for a QR code of version v.
// The format and version information areas are reserved in Map
// but left white in Pattern; Mask draws them.
func NewLayout(v Version) *Layout {
	if v < MinVersion || v > MaxVersion {
		panic("qr: invalid version " + v.String())
	}
	siz := v.Size()
	l := &Layout{
		Version: v,
		Size:    siz,
		Map:     NewBitmap(siz),
		Pattern: NewBitmap(siz),
	}

	// Timing markers (overwritten by boxes).
	for i := 8; i < siz-8; i++ {
		l.set(i, 6, i&1 == 0)
		l.set(6, i, i&1 == 0)
	}

	// Position boxes with separators.
	l.positionBox(0, 0)
	l.positionBox(siz-7, 0)
	l.positionBox(0, siz-7)

	// Alignment boxes, except where they would cover position boxes.
	c := v.alignment()
	for i, y := range c {
		for j, x := range c {
			if i == 0 && (j == 0 || j == len(c)-1) ||
				i == len(c)-1 && j == 0 {
				continue
			}
			l.alignBox(x, y)
		}
	}

	// Format information.
	for _, p := range formatPos(siz) {
		l.Map.Set(p[0][0], p[0][1], true)
		l.Map.Set(p[1][0], p[1][1], true)
	}

	// Version information.
	if v >= 7 {
		for i := 0; i < 18; i++ {
			a, b := siz-11+i%3, i/3
			l.Map.Set(a, b, true)
			l.Map.Set(b, a, true)
		}
	}

	// One lonely black pixel
	l.set(8, siz-8, true)
	return l
}

// set reserves the pixel at (x, y) and sets its colour.
func (l *Layout) set(x, y int, black bool) {
	l.Map.Set(x, y, true)
	l.Pattern.Set(x, y, black)
}

// positionBox draws a position (large) box at upper left x, y and the
// white separator around it, clipped to the code.
func (l *Layout) positionBox(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			if xx, yy := x+dx, y+dy; 0 <= xx && xx < l.Size &&
				0 <= yy && yy < l.Size {
				d := max(abs(dx-3), abs(dy-3))
				l.set(xx, yy, d != 2 && d != 4)
			}
		}
	}
}

// alignBox draws an alignment (small) box centred at x, y.
func (l *Layout) alignBox(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			l.set(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// formatPos returns the positions of the two copies of each format
// bit, least significant first.  The first copy surrounds the top left
// position box, the second is split between the other two.
func formatPos(siz int) (p [15][2][2]int) {
	for i := range p {
		switch {
		case i < 6:
			p[i][0] = [2]int{8, i}
		case i < 8:
			p[i][0] = [2]int{8, i + 1}
		case i == 8:
			p[i][0] = [2]int{7, 8}
		default:
			p[i][0] = [2]int{14 - i, 8}
		}
		if i < 8 {
			p[i][1] = [2]int{siz - 1 - i, 8}
		} else {
			p[i][1] = [2]int{8, siz - 15 + i}
		}
	}
	return p
}

// drawInfo draws the format information for mask and the version
// information into m.
func (l *Layout) drawInfo(m *Bitmap, mask int) {
	fb := ftab[mask]
	for i, p := range formatPos(l.Size) {
		b := fb>>i&1 != 0
		m.Set(p[0][0], p[0][1], b)
		m.Set(p[1][0], p[1][1], b)
	}
	if vb := vtab[l.Version].pattern; vb != 0 {
		for i := 0; i < 18; i++ {
			a, b := l.Size-11+i%3, i/3
			black := vb>>i&1 != 0
			m.Set(a, b, black)
			m.Set(b, a, black)
		}
	}
}
