package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/qrbyte"
	"github.com/unixdj/qrbyte/coding"
	"github.com/unixdj/qrbyte/gf256"
)

var g = struct {
	border    int            // quiet zone
	rev       bool           // reverse colours
	format    int            // output format
	formatSet bool           // format given in config file
	ver       coding.Version // minimum QR version
	latin1    bool           // convert input to Latin-1
	debug     bool           // log debugging information
	config    string         // config file
	gfTable   string         // GF(256) table file
}{
	border: qr.DefaultBorder,
	ver:    coding.MinVersion,
}

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "qr"})

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator, byte mode, error correction level M\n",
		"Usage: ", cl.Program(), " ", cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults are read from the config file, by
default $XDG_CONFIG_HOME/qr/config.toml; options override them.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{"utf8", "utf8i", "ascii", "asciii"}

var encoders = [...]func(*qr.Code, io.Writer) error{
	func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	ascii,
}

// setFormat sets the output format by name.
func setFormat(name string) bool {
	for i, v := range formats {
		if name == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			return true
		}
	}
	return false
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input from UTF-8 to Latin-1")
	getopt.Flag(&g.debug, 'd', "log debugging information")
	getopt.Flag(&g.border, 'm', `quiet zone pixels`, "margin")
	getopt.Flag(&g.config, 'c', `config file`, "file")
	getopt.Flag(&g.gfTable, 'g', `read GF(256) log/antilog table `+
		`from file instead of computing it`, "file")
	ver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"minimum QR code version", "ver")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if standard output is a TTY, default is utf8, otherwise ascii`,
		"type")

	getopt.Parse()
	g.ver = coding.Version(*ver)
	if *ff != "" {
		setFormat(*ff)
	}
	if g.debug {
		logger.SetLevel(log.DebugLevel)
	}
	if err := loadConfig(func(r rune) bool { return getopt.IsSet(r) }); err != nil {
		logger.Fatal(err)
	}
	if !getopt.IsSet('t') && !g.formatSet {
		if isatty.IsTerminal(uintptr(syscall.Stdout)) {
			setFormat("utf8")
		} else {
			setFormat("ascii")
		}
	}
}

func main() {
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			logger.Fatal(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.latin1 {
		var err error
		if s, err = qr.Latin1(s); err != nil {
			logger.Fatal(err)
		}
	}

	enc := qr.NewEncoder(nil)
	if g.gfTable != "" {
		f, err := loadField(g.gfTable)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Debug("loaded field", "file", g.gfTable)
		enc = qr.NewEncoder(f)
	}
	c, err := enc.EncodeVersion(s, g.ver)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Debug("encoded", "bytes", len(s), "version", c.Version,
		"size", c.Size, "mask", c.Mask, "penalty", c.Penalty,
		"black", countBlack(c))

	c.Border = max(g.border, 0)
	c.Reverse = g.rev
	if err := encoders[g.format](c, os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

func loadField(name string) (*gf256.Field, error) {
	r, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	f, err := gf256.LoadField(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

func countBlack(c *qr.Code) int {
	n := 0
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				n++
			}
		}
	}
	return n
}

func ascii(c *qr.Code, w io.Writer) error {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
