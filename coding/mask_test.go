// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"testing"
)

// maskPat is the mask diagram in mask.go as rows of 12 pixels in
// octal, repeating in both directions.
var maskPat = [8][]uint16{
	{05252, 02525},
	{07777, 00000},
	{04444},
	{04444, 01111, 02222},
	{07070, 07070, 00707, 00707},
	{07777, 04040, 04444, 05252, 04444, 04040},
	{07777, 07070, 06666, 05252, 05555, 04343},
	{05252, 00707, 04343, 02525, 07070, 03434},
}

func TestMaskFunc(t *testing.T) {
	for mask, f := range maskFunc {
		pat := maskPat[mask]
		for y := 0; y < 24; y++ {
			for x := 0; x < 24; x++ {
				want := pat[y%len(pat)]>>(11-x%12)&1 != 0
				if f(y, x) != want {
					t.Fatalf("mask %d at row %d column %d: %v",
						mask, y, x, !want)
				}
			}
		}
	}
}

func bitmapOf(siz int, black func(x, y int) bool) *Bitmap {
	m := NewBitmap(siz)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			m.Set(x, y, black(x, y))
		}
	}
	return m
}

func TestPenalty(t *testing.T) {
	for _, tc := range []struct {
		name  string
		black func(x, y int) bool
		want  int
	}{
		// 42 runs of 21: 42×19, 20×20 boxes: 400×3, 100% one colour: 100.
		{"white", func(x, y int) bool { return false }, 798 + 1200 + 100},
		{"black", func(x, y int) bool { return true }, 798 + 1200 + 100},
		{"checkerboard", func(x, y int) bool { return (x+y)%2 == 0 }, 0},
		// Runs of 2 and 2×2 boxes in a 4×4 tile; 8 black of 16.
		{"tiles", func(x, y int) bool { return x/2%2 == y/2%2 }, 100 * 3},
	} {
		siz := 21
		if tc.name == "tiles" {
			siz = 20
		}
		if p := Penalty(bitmapOf(siz, tc.black)); p != tc.want {
			t.Errorf("%s: penalty %d, want %d", tc.name, p, tc.want)
		}
	}
}

func TestLinePenalty(t *testing.T) {
	for _, tc := range []struct {
		line string
		want int
	}{
		{"0100010", 0},
		{"1110000011111100", 3 + 4},
		{"1011101", 40},
		{"00001011101", 40},
		{"10111010000", 40},
		{"01011101000", 40},
		{"000101110100", 40},
		{"1101011101011", 0},
		{"101110100001011101", 80},
		// White on both sides counts once.
		{"000000010111010000000", 5 + 40 + 5},
	} {
		line := make([]bool, len(tc.line))
		for i, c := range tc.line {
			line[i] = c == '1'
		}
		if p := linePenalty(line); p != tc.want {
			t.Errorf("%s: penalty %d, want %d", tc.line, p, tc.want)
		}
	}
}

func TestMask(t *testing.T) {
	b := NewBits(1)
	b.WriteBytes("HELLO", 1)
	b.AddCheckBytes(1, Field)
	l := NewLayout(1)
	placed := l.Place(b.Permute(1))

	want := [8]int{1060, 1274, 1058, 992, 1012, 1141, 1179, 1063}
	for mask := range maskFunc {
		m := placed.Clone()
		l.ApplyMask(m, mask)
		if p := Penalty(m); p != want[mask] {
			t.Errorf("mask %d: penalty %d, want %d", mask, p, want[mask])
		}
		// Reserved pixels other than format information are not
		// masked.
		for y := 0; y < l.Size; y++ {
			for x := 0; x < l.Size; x++ {
				if (y == 8 || x == 8) && l.Map.Get(x, y) {
					continue
				}
				if l.Map.Get(x, y) && m.Get(x, y) != placed.Get(x, y) {
					t.Fatalf("mask %d: reserved pixel %d, %d changed",
						mask, x, y)
				}
			}
		}
	}

	m, mask, pen := l.Mask(placed.Clone())
	if mask != 3 || pen != 992 {
		t.Errorf("Mask chose %d with penalty %d", mask, pen)
	}
	m2, _, _ := l.Mask(placed.Clone())
	if !bytes.Equal(m.Bits, m2.Bits) {
		t.Error("Mask is not deterministic")
	}
}

func TestMaskTie(t *testing.T) {
	// Masks of equal penalty resolve to the lowest.
	c, err := Encode(1, "")
	if err != nil {
		t.Fatal(err)
	}
	b := NewBits(1)
	b.WriteBytes("", 1)
	b.AddCheckBytes(1, Field)
	l := NewLayout(1)
	placed := l.Place(b.Permute(1))
	for mask := range maskFunc {
		m := placed.Clone()
		l.ApplyMask(m, mask)
		p := Penalty(m)
		if p < c.Penalty || p == c.Penalty && mask < c.Mask {
			t.Errorf("mask %d penalty %d beats chosen mask %d penalty %d",
				mask, p, c.Mask, c.Penalty)
		}
	}
}
