// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"bytes"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"
)

var f = NewField(0x11d, 2) // x^8 + x^4 + x^3 + x^2 + 1

func TestBasic(t *testing.T) {
	if f.Exp(0) != 1 || f.Exp(1) != 2 || f.Exp(8) != 0x1d || f.Exp(255) != 1 {
		t.Fatalf("bad exponents: %d %d %d %d",
			f.Exp(0), f.Exp(1), f.Exp(8), f.Exp(255))
	}
	for x := 1; x < 256; x++ {
		if got := f.Exp(f.Log(byte(x))); got != byte(x) {
			t.Errorf("Exp(Log(%d)) = %d", x, got)
		}
	}
	for e := 0; e < 255; e++ {
		if got := f.Log(f.Exp(e)); got != e {
			t.Errorf("Log(Exp(%d)) = %d", e, got)
		}
	}
}

func TestMul(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			if got, want := f.Mul(byte(x), byte(y)),
				byte(mul(x, y, 0x11d)); got != want {
				t.Fatalf("Mul(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
		if x == 0 {
			continue
		}
		for e := 0; e < 300; e += 7 {
			if got, want := f.MulExp(byte(x), e),
				f.Mul(byte(x), f.Exp(e)); got != want {
				t.Fatalf("MulExp(%d, %d) = %d, want %d",
					x, e, got, want)
			}
		}
		if f.Mul(byte(x), f.Inv(byte(x))) != 1 {
			t.Fatalf("Inv(%d) = %d is not an inverse", x, f.Inv(byte(x)))
		}
	}
}

func TestLogZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Log(0) did not panic")
		}
	}()
	f.Log(0)
}

func TestLoadField(t *testing.T) {
	r, err := os.Open("testdata/gf256.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	g, err := LoadField(r)
	if err != nil {
		t.Fatal(err)
	}
	if *g != *f {
		t.Error("loaded table differs from NewField(0x11d, 2)")
	}

	var b bytes.Buffer
	if _, err := f.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile("testdata/gf256.csv")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Error("WriteTo output differs from testdata/gf256.csv")
	}
}

func TestLoadFieldAntilogOnly(t *testing.T) {
	var b strings.Builder
	b.WriteString("# antilog only, reversed\n\n")
	for e := 254; e >= 0; e-- {
		b.WriteString(strconv.Itoa(e) + ", " + strconv.Itoa(int(f.Exp(e))))
		b.WriteByte('\n')
	}
	g, err := LoadField(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if *g != *f {
		t.Error("loaded table differs from NewField(0x11d, 2)")
	}
}

func TestLoadFieldErrors(t *testing.T) {
	full := func(edit func(lines []string) []string) string {
		var b bytes.Buffer
		f.WriteTo(&b)
		lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		return strings.Join(edit(lines), "\n")
	}
	for _, tc := range []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"fields", "0,1,2\n"},
		{"number", "0,x\n"},
		{"range", "0,256\n"},
		{"zero", "0,0\n"},
		{"missing", full(func(l []string) []string { return l[:200] })},
		{"exp255", full(func(l []string) []string {
			l[255] = "255,2"
			return l
		})},
		{"repeated", full(func(l []string) []string {
			l[3] = "3,4,3,25"
			return l
		})},
		{"redefined", full(func(l []string) []string {
			return append(l, "3,9")
		})},
		{"log", full(func(l []string) []string {
			l[3] = "3,8,3,4"
			return l
		})},
		{"not a field", full(func(l []string) []string {
			// swap the antilogs of 1 and 2, drop their logs
			l[1], l[2], l[4] = "1,4", "2,2", "4,16"
			return l
		})},
	} {
		_, err := LoadField(strings.NewReader(tc.in))
		if !errors.Is(err, ErrTable) {
			t.Errorf("%s: err = %v, want ErrTable", tc.name, err)
		}
	}
}

func TestGen(t *testing.T) {
	// ISO/IEC 18004 Annex A, generator polynomial for 10 check bytes.
	want := []byte{0, 251, 67, 46, 61, 118, 70, 64, 94, 32, 45}
	if got := Gen(f, 10); !bytes.Equal(got, want) {
		t.Errorf("Gen(10) = %v, want %v", got, want)
	}
	for n := 1; n <= 30; n++ {
		if got := Gen(f, n); len(got) != n+1 || got[0] != 0 {
			t.Errorf("Gen(%d) = %v", n, got)
		}
	}
}

func TestECC(t *testing.T) {
	// ISO/IEC 18004 Annex I, version 1-M "01234567".
	data := []byte{16, 32, 12, 86, 97, 128, 236, 17,
		236, 17, 236, 17, 236, 17, 236, 17}
	want := []byte{165, 36, 212, 193, 237, 54, 199, 135, 44, 85}
	rs := NewRSEncoder(f, Gen(f, 10))
	check := make([]byte, rs.Check())
	rs.ECC(data, check)
	if !bytes.Equal(check, want) {
		t.Errorf("ECC = %v, want %v", check, want)
	}
	// A codeword with its check bytes appended is divisible by the
	// generator, so it evaluates to zero at each of its roots.
	cw := append(append([]byte(nil), data...), check...)
	for i := 0; i < rs.Check(); i++ {
		var s byte
		for _, c := range cw {
			s = f.Mul(s, f.Exp(i)) ^ c
		}
		if s != 0 {
			t.Errorf("syndrome %d = %d", i, s)
		}
	}
	// Leading zeros do not change the remainder.
	rs.ECC(append([]byte{0, 0}, data...), check)
	if !bytes.Equal(check, want) {
		t.Errorf("ECC with leading zeros = %v, want %v", check, want)
	}
}

func BenchmarkECC(b *testing.B) {
	data := make([]byte, 43)
	for i := range data {
		data[i] = byte(i * 37)
	}
	rs := NewRSEncoder(f, Gen(f, 24))
	check := make([]byte, rs.Check())
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		rs.ECC(data, check)
	}
}
