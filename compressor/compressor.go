// Package compressor implements the LZW-GC compressor: a byte-at-a-time
// state machine that emits at most one token per fed byte and maintains a
// dictionary and reverse index in lockstep with its decompressor
// counterpart (package decompressor).
package compressor

import (
	"github.com/DonaldFoss/lzwgc/dictionary"
	"github.com/DonaldFoss/lzwgc/revindex"
)

// Compressor consumes bytes and produces dictionary tokens.
type Compressor struct {
	dict *dictionary.Dictionary
	rev  *revindex.Index

	matched dictionary.Token // current longest-match token

	haveOutput bool
	tokenOut   dictionary.Token
}

// New creates a Compressor for dictionary size S (256 <= S <= 1<<24).
func New(size uint32) (*Compressor, error) {
	dict, err := dictionary.New(size)
	if err != nil {
		return nil, err
	}
	return &Compressor{
		dict:    dict,
		rev:     revindex.New(dict.Size()),
		matched: dict.Size(), // sentinel: no match yet
	}, nil
}

// Feed consumes one byte and returns (token, true) if a token was emitted,
// or (0, false) if the byte only extended the current match or was the
// first byte of the stream.
func (c *Compressor) Feed(b byte) (dictionary.Token, bool) {
	s := c.matched

	if tok, ok := c.rev.Lookup(c.dict, s, b); ok {
		c.matched = tok
		c.haveOutput = false
		return 0, false
	}

	c.haveOutput = s < c.dict.Size()
	c.tokenOut = s
	c.matched = dictionary.Token(b)

	if c.haveOutput {
		res := c.dict.Update(c.tokenOut)
		c.rev.Apply(c.dict, res)
	}

	if !c.haveOutput {
		return 0, false
	}
	return c.tokenOut, true
}

// Finalize emits the trailing token, if any. The returned token (when
// present) is never itself inserted into the dictionary; see spec.md §9 on
// finalize output framing. Go's garbage collector reclaims the
// compressor's backing arrays once it is dropped, so there is no explicit
// resource-release step to perform here.
func (c *Compressor) Finalize() (dictionary.Token, bool) {
	tok := c.matched
	return tok, tok < c.dict.Size()
}

// Dictionary exposes the compressor's dictionary for diagnostics (e.g. the
// debug CLI's lockstep comparison). It must not be mutated by callers.
func (c *Compressor) Dictionary() *dictionary.Dictionary { return c.dict }
