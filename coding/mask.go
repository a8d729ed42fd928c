// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//	   ███   ███         ▄▄▄▄▄ ▄▄▄▄▄        ▄▄▄   ▄▄▄     ▄█▄▀ ▀▄█▄▀ ▀
//	      ███   ███      █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	   ███   ███         ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//
// maskFunc[m](y, x) reports whether mask m inverts the pixel at row y,
// column x.
var maskFunc = [8]func(y, x int) bool{
	func(y, x int) bool { return (y+x)%2 == 0 },
	func(y, x int) bool { return y%2 == 0 },
	func(y, x int) bool { return x%3 == 0 },
	func(y, x int) bool { return (y+x)%3 == 0 },
	func(y, x int) bool { return (y/2+x/3)%2 == 0 },
	func(y, x int) bool { return y*x%2+y*x%3 == 0 },
	func(y, x int) bool { return (y*x%2+y*x%3)%2 == 0 },
	func(y, x int) bool { return ((y+x)%2+y*x%3)%2 == 0 },
}

// ApplyMask inverts the data pixels of m selected by mask and draws
// the format and version information.
func (l *Layout) ApplyMask(m *Bitmap, mask int) {
	f := maskFunc[mask]
	for y := 0; y < l.Size; y++ {
		for x := 0; x < l.Size; x++ {
			if !l.Map.Get(x, y) && f(y, x) {
				m.Flip(x, y)
			}
		}
	}
	l.drawInfo(m, mask)
}

// Mask applies to m the mask with the lowest penalty, the first one
// on a tie, and returns m, the mask and its penalty.
func (l *Layout) Mask(m *Bitmap) (*Bitmap, int, int) {
	best, pen := 0, 1<<30
	c := m.Clone()
	for mask := range maskFunc {
		copy(c.Bits, m.Bits)
		l.ApplyMask(c, mask)
		if p := Penalty(c); p < pen {
			best, pen = mask, p
		}
	}
	l.ApplyMask(m, best)
	return m, best, pen
}

// Penalty returns the penalty value for a QR code.
// The value is used for choosing the mask.
//
// Total penalty is the sum of penalties for runs and boxes
// of same-colour pixels, finder patterns and colour balance.
//
//   - RunP: for non-overlapping runs of n pixels, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for finder-like patterns 1011101 with 0000 before or
//     after them -> 40; may extend into the quiet zone
//   - BalP: for |2*black-total|*10/total rounded down -> 10 times that
func Penalty(m *Bitmap) int {
	const (
		BoxPP = 3  // BoxP:  points per box
		BalPP = 10 // BalP:  points per 5% step
	)
	siz := m.Size
	p := 0
	line := make([]bool, siz)
	for i := 0; i < siz; i++ {
		for j := range line {
			line[j] = m.Get(j, i)
		}
		p += linePenalty(line)
		for j := range line {
			line[j] = m.Get(i, j)
		}
		p += linePenalty(line)
	}
	for y := 1; y < siz; y++ {
		for x := 1; x < siz; x++ {
			c := m.Get(x, y)
			if m.Get(x-1, y) == c && m.Get(x, y-1) == c &&
				m.Get(x-1, y-1) == c {
				p += BoxPP
			}
		}
	}
	sq := siz * siz
	p += abs(m.Count()*2-sq) * 10 / sq * BalPP
	return p
}

// finder is the 1:1:3:1:1 pattern of a position box.
var finder = [7]bool{true, false, true, true, true, false, true}

// linePenalty returns RunP and FindP for a row or column.
func linePenalty(line []bool) int {
	const (
		MinRun    = 5  // RunP:  minimum run length
		RunPDelta = -2 // RunP:  add to run length
		FindPP    = 40 // FindP: points per pattern
	)
	p, r := 0, 1
	for i := 1; i <= len(line); i++ {
		if i < len(line) && line[i] == line[i-1] {
			r++
			continue
		}
		if r >= MinRun {
			p += r + RunPDelta
		}
		r = 1
	}
	for i := 0; i+len(finder) <= len(line); i++ {
		if [7]bool(line[i:i+len(finder)]) == finder &&
			(white(line, i-4, i) || white(line, i+7, i+11)) {
			p += FindPP
		}
	}
	return p
}

// white reports whether line has no black pixels from i to j-1.
// Pixels outside line are white.
func white(line []bool, i, j int) bool {
	for _, b := range line[max(i, 0):min(j, len(line))] {
		if b {
			return false
		}
	}
	return true
}
