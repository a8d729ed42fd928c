// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrbyte"
	"github.com/unixdj/qrbyte/coding"
)

func ExampleEncode() {
	c, err := qr.Encode("HELLO")
	if err != nil {
		log.Fatalln(err)
	}
	c.Border = 1
	fmt.Printf("version %d, mask %d\n", c.Version, c.Mask)
	fmt.Print(c)
	// Output:
	// version 1, mask 3
	// █▀▀▀▀▀▀▀█▀██▀██▀▀▀▀▀▀▀█
	// █ █▀▀▀█ █▄▄ ▄▀█ █▀▀▀█ █
	// █ █   █ █▄█▄▀▄█ █   █ █
	// █ ▀▀▀▀▀ █▀█▀▄ █ ▀▀▀▀▀ █
	// █▀█▀▀█▀▀▀▄▀█  █▀██▀█▀▀█
	// █▀▄▄█ ▄▀▄█ ▄ ▄▄▄██▄▄▀▀█
	// █▄▀▄ ▀▀▀ ▀██▄▀█▄ ▄▄▀▄▀█
	// █▀▀▀▀▀▀▀█ ▄▄ ▀█▄▀██▄█▄█
	// █ █▀▀▀█ █▄█▄█▀▀▀   ▄ ▀█
	// █ █   █ █ ▀▄▄▀█ ▀▄▄ ▄██
	// █ ▀▀▀▀▀ █▀█ ██ █ ▄███▄█
	// ▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀
}

func ExampleVersionFor() {
	for _, n := range []int{14, 15, 106, 107, 2331} {
		v, err := qr.VersionFor(n)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%d bytes: version %d, %d modules\n", n, v, v.Size())
	}
	_, err := qr.VersionFor(2332)
	fmt.Println(err)
	// Output:
	// 14 bytes: version 1, 21 modules
	// 15 bytes: version 2, 25 modules
	// 106 bytes: version 6, 41 modules
	// 107 bytes: version 7, 45 modules
	// 2331 bytes: version 40, 177 modules
	// qr: cannot encode 2332 bytes into version 40 holding 2331 bytes
}

func ExampleCode_Matrix() {
	c, err := qr.EncodeVersion("matrix", 2)
	if err != nil {
		log.Fatalln(err)
	}
	m := c.Matrix()
	for _, row := range m[:7] {
		for _, black := range row[:7] {
			if black {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	fmt.Println(c.Version == coding.Version(2), c.IsReserved(18, 18))
	// Output:
	// #######
	// #.....#
	// #.###.#
	// #.###.#
	// #.###.#
	// #.....#
	// #######
	// true true
}
