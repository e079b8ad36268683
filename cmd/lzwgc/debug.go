package main

import (
	"bufio"
	"fmt"
	"io"

	lzwgc "github.com/DonaldFoss/lzwgc"
	"github.com/DonaldFoss/lzwgc/compressor"
	"github.com/DonaldFoss/lzwgc/decompressor"
	"github.com/DonaldFoss/lzwgc/dictionary"
)

// debug runs a compressor and a decompressor over the same input in
// lockstep, feeding every token the compressor emits straight to the
// decompressor and reporting any divergence between their dictionaries to
// stderr. The compressor's trailing token (from Finalize) is decoded but not
// compared. Output bytes are the decompressed stream, which should equal the
// input whether or not any divergence was reported.
//
// Grounded directly in original_source/lzwgc_main.c's debug()/compare_dicts().
func debug(in *bufio.Reader, out io.Writer, stderr io.Writer, bits int) error {
	size, err := lzwgc.DictionarySize(bits)
	if err != nil {
		return err
	}

	enc, err := compressor.New(size)
	if err != nil {
		return err
	}
	dec, err := decompressor.New(size)
	if err != nil {
		return err
	}

	var tokenCount uint64
	feed := func(b byte) error {
		tok, ok := enc.Feed(b)
		if !ok {
			return nil
		}
		return exchangeAndCompare(enc, dec, tok, &tokenCount, out, stderr)
	}

	buf := make([]byte, 4096)
	for {
		n, rerr := in.Read(buf)
		for i := 0; i < n; i++ {
			if err := feed(buf[i]); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}

	if tok, ok := enc.Finalize(); ok {
		// The trailing token is never added to the compressor's dictionary,
		// while the decompressor runs the update rule on every token, so the
		// two dictionaries differ by one allocation here; no comparison.
		bytesOut, err := dec.Feed(tok)
		if err != nil {
			return err
		}
		if _, err := out.Write(bytesOut); err != nil {
			return err
		}
	}
	return nil
}

func exchangeAndCompare(
	enc *compressor.Compressor,
	dec *decompressor.Decompressor,
	tok dictionary.Token,
	tokenCount *uint64,
	out io.Writer,
	stderr io.Writer,
) error {
	bytesOut, err := dec.Feed(tok)
	if err != nil {
		return err
	}
	for _, d := range lzwgc.DictionaryDivergences(enc.Dictionary(), dec.Dictionary(), tok) {
		fmt.Fprintf(stderr, "%8d %06x %s\n", *tokenCount, tok, d)
	}
	*tokenCount++
	_, err = out.Write(bytesOut)
	return err
}
