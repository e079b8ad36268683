// Command lzwgc is the thin byte-stream collaborator around the LZW-GC
// codec: compress | decompress | debug over stdin/stdout.
//
// Not part of the core codec (see spec.md §6.3); a reference wrapper only.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	lzwgc "github.com/DonaldFoss/lzwgc"
)

func usage(stderr io.Writer) {
	fmt.Fprint(stderr, `Usage: lzwgc (compress|decompress|debug) [-b N]
  compress    read stdin, write compressed tokens to stdout
  decompress  read compressed tokens from stdin, write bytes to stdout
  debug       like compress|decompress run in lockstep, reporting divergence
  -b N        dictionary bit width, 9..24 (default 12)
`)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}
	mode := args[0]

	flags := pflag.NewFlagSet("lzwgc", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	bits := flags.IntP("bits", "b", 12, "dictionary bit width, 9..24")
	if err := flags.Parse(args[1:]); err != nil {
		return 1
	}

	in := bufio.NewReader(stdin)
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	var err error
	switch mode {
	case "compress", "c":
		err = compress(in, out, *bits)
	case "decompress", "x":
		err = decompress(in, out, *bits)
	case "debug", "d":
		err = debug(in, out, stderr, *bits)
	default:
		usage(stderr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "lzwgc: %v\n", err)
		return 1
	}
	return 0
}

func compress(in io.Reader, out io.Writer, bits int) error {
	w, err := lzwgc.NewWriter(out, bits)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, in); err != nil {
		return err
	}
	return w.Close()
}

func decompress(in io.Reader, out io.Writer, bits int) error {
	r, err := lzwgc.NewReader(in, bits)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, r)
	return err
}
