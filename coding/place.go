// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A cursor walks the pixels of a QR code in placement order: in pairs
// of columns from the right, right pixel first, alternately upwards
// and downwards, skipping the vertical timing strip.
type cursor struct {
	siz    int
	x, y   int
	up     bool
	offset int  // 1 once the vertical timing strip is passed
	moved  bool // the start pixel has been examined
}

func newCursor(siz int) cursor {
	return cursor{siz: siz, x: siz - 1, y: siz - 1, up: true}
}

// step moves c to the next pixel, reserved or not, and reports
// whether it is inside the code.
func (c *cursor) step() bool {
	if c.x < 0 {
		return false
	}
	if c.x&1 == c.offset { // right column
		c.x--
		return true
	}
	c.x++
	dy := 1
	if c.up {
		dy = -1
	}
	if c.y += dy; c.y < 0 || c.y == c.siz {
		c.y -= dy
		c.up = !c.up
		if c.x -= 2; c.x == 6 {
			c.x, c.offset = 5, 1
		}
	}
	return c.x >= 0
}

// advance moves c to the next pixel not set in reserved and reports
// whether there is one.  The first call examines the start pixel.
func (c *cursor) advance(reserved *Bitmap) bool {
	for {
		if !c.moved {
			c.moved = true
		} else if !c.step() {
			return false
		}
		if !reserved.Get(c.x, c.y) {
			return true
		}
	}
}

// Place returns a new bitmap holding the function patterns of l with
// the bits read from s placed in the remaining pixels.  Pixels left
// when s runs out stay white.
func (l *Layout) Place(s BitStream) *Bitmap {
	m := l.Pattern.Clone()
	c := newCursor(l.Size)
	for c.advance(l.Map) {
		if s.Next() != 0 {
			m.Set(c.x, c.y, true)
		}
	}
	return m
}
