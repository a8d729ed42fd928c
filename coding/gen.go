//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
)

// tables from qrencode-3.1.1/qrspec.c, level M column

var capacity = [41]struct {
	words int // total codewords
	ec    int // check codewords at level M
}{
	{0, 0},
	{26, 10}, {44, 16}, {70, 26}, {100, 36}, {134, 48}, // 1- 5
	{172, 64}, {196, 72}, {242, 88}, {292, 110}, {346, 130}, // 6-10
	{404, 150}, {466, 176}, {532, 198}, {581, 216}, {655, 240}, //11-15
	{733, 280}, {815, 308}, {901, 338}, {991, 364}, {1085, 416}, //16-20
	{1156, 442}, {1258, 476}, {1364, 504}, {1474, 560}, {1588, 588}, //21-25
	{1706, 644}, {1828, 700}, {1921, 728}, {2051, 784}, {2185, 812}, //26-30
	{2323, 868}, {2465, 924}, {2611, 980}, {2761, 1036}, {2876, 1064}, //31-35
	{3034, 1120}, {3196, 1204}, {3362, 1260}, {3532, 1316}, {3706, 1372}, //36-40
}

// blocks at level M
var eccTable = [41]int{
	0,
	1, 1, 1, 2, 2, 4, 4, 4, 5, 5, // 1-10
	5, 8, 9, 9, 10, 10, 11, 13, 14, 16, //11-20
	17, 17, 18, 20, 21, 23, 25, 26, 28, 29, //21-30
	31, 33, 35, 37, 38, 40, 43, 45, 47, 49, //31-40
}

var align = [41][2]int{
	{0, 0},
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1- 5
	{34, 0}, {22, 38}, {24, 42}, {26, 46}, {28, 50}, // 6-10
	{30, 54}, {32, 58}, {34, 62}, {26, 46}, {26, 48}, //11-15
	{26, 50}, {30, 54}, {30, 56}, {30, 58}, {34, 62}, //16-20
	{28, 50}, {26, 50}, {30, 54}, {28, 54}, {32, 58}, //21-25
	{30, 58}, {34, 62}, {26, 50}, {30, 54}, {26, 52}, //26-30
	{30, 56}, {34, 60}, {30, 58}, {34, 62}, {30, 54}, //31-35
	{24, 50}, {28, 54}, {32, 58}, {26, 54}, {30, 58}, //35-40
}

var versionPattern = [41]int{
	0,
	0, 0, 0, 0, 0, 0,
	0x07c94, 0x085bc, 0x09a99, 0x0a4d3, 0x0bbf6, 0x0c762, 0x0d847, 0x0e60d,
	0x0f928, 0x10b78, 0x1145d, 0x12a17, 0x13532, 0x149a6, 0x15683, 0x168c9,
	0x177ec, 0x18ec4, 0x191e1, 0x1afab, 0x1b08e, 0x1cc1a, 0x1d33f, 0x1ed75,
	0x1f250, 0x209d5, 0x216f0, 0x228ba, 0x2379f, 0x24b0b, 0x2542e, 0x26a64,
	0x27541, 0x28c69,
}

func calcFormat(fb uint16) uint16 {
	const formatPoly = 0x537
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return fb | rem
}

// GF(256) with polynomial 0x11d and generator 2.
var exp, log [256]int

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		exp[i] = x
		log[x] = i
		if x <<= 1; x&0x100 != 0 {
			x ^= 0x11d
		}
	}
}

func mul(x, y int) int {
	if x == 0 || y == 0 {
		return 0
	}
	return exp[(log[x]+log[y])%255]
}

// generator returns the exponents of the coefficients of
// (x - α⁰)(x - α¹)...(x - αⁿ⁻¹), highest degree first.
func generator(n int) []int {
	p := []int{1}
	for i := 0; i < n; i++ {
		q := make([]int, len(p)+1)
		for j, c := range p {
			q[j] ^= c
			q[j+1] ^= mul(c, exp[i])
		}
		p = q
	}
	for i, c := range p {
		p[i] = log[c]
	}
	return p
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Version table, level M.
var vtab = [MaxVersion + 1]version{
`)
	var checks [31]bool
	for i := 1; i <= 40; i++ {
		nblock := eccTable[i]
		check := capacity[i].ec / nblock
		checks[check] = true
		fmt.Fprintf(w, "\t%-3s {%d, %d, %d, %#x, %d, %d},\n",
			fmt.Sprint(i, ":"), align[i][0], max(align[i][1]-align[i][0], 0),
			capacity[i].words, versionPattern[i], nblock, check)
	}
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// Generator polynomials as exponents of α, "+
		"indexed by the number of check bytes.\nvar gentab = [31][]byte{\n")
	for n, ok := range checks {
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\t%d: {", n)
		for j, e := range generator(n) {
			if j != 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, e)
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// QR Code format bits, level M.\nvar ftab = [8]uint16{")
	for m := 0; m < 8; m++ {
		fb := uint16(0) << 13 // L=01, M=00, Q=11, H=10
		fb |= uint16(m) << 10 // mask
		fb = calcFormat(fb) ^ 0x5412
		if m != 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%#04x", fb)
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
