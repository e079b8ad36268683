// Package decompressor implements the LZW-GC decompressor: a
// token-at-a-time state machine that validates, expands, and emits a byte
// run for each token, and applies the same shared dictionary update rule as
// package compressor so the two sides' dictionaries stay in lockstep.
package decompressor

import (
	"errors"

	"github.com/DonaldFoss/lzwgc/dictionary"
)

// ErrInvalidToken is returned by Feed when the token is >= the configured
// dictionary size, or names a vacant slot. This is fatal for the stream:
// the Decompressor must be discarded (spec.md §7).
var ErrInvalidToken = errors.New("decompressor: invalid token")

// Decompressor consumes dictionary tokens and produces byte runs.
type Decompressor struct {
	dict    *dictionary.Dictionary
	scratch []byte // reversed expansion buffer, capacity dynSize+1
	output  []byte // reused output buffer, capacity dynSize+1
}

// New creates a Decompressor for dictionary size S (256 <= S <= 1<<24).
func New(size uint32) (*Decompressor, error) {
	dict, err := dictionary.New(size)
	if err != nil {
		return nil, err
	}
	bufCap := dict.DynSize() + 1
	return &Decompressor{
		dict:    dict,
		scratch: make([]byte, bufCap),
		output:  make([]byte, bufCap),
	}, nil
}

// Feed consumes one token and returns the byte run it expands to. The
// returned slice aliases the Decompressor's internal output buffer and is
// only valid until the next call to Feed.
//
// A rejected token produces no output and returns ErrInvalidToken; the
// Decompressor must not be used further after that.
func (d *Decompressor) Feed(t dictionary.Token) ([]byte, error) {
	if !d.dict.Valid(t) {
		return nil, ErrInvalidToken
	}

	n := d.dict.Expand(t, d.scratch)
	for i := 0; i < n; i++ {
		d.output[i] = d.scratch[n-1-i]
	}

	d.dict.Update(t)

	return d.output[:n], nil
}

// Finalize does nothing and never produces output; Go's garbage collector
// reclaims the decompressor's buffers once it is dropped.
func (d *Decompressor) Finalize() {}

// Dictionary exposes the decompressor's dictionary for diagnostics (e.g.
// the debug CLI's lockstep comparison). It must not be mutated by callers.
func (d *Decompressor) Dictionary() *dictionary.Dictionary { return d.dict }
