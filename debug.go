package lzwgc

import (
	"fmt"

	"github.com/DonaldFoss/lzwgc/dictionary"
)

// DictionaryDivergences compares a compressor's and a decompressor's
// dictionaries immediately after exchanging token tok, and returns a
// human-readable description of any difference found. An empty result means
// the two dictionaries are in lockstep for everything this check covers:
// the allocator cursor, and — for tok itself, when it names a dynamic
// entry — that entry's Prev, Byte and Refs.
//
// This mirrors original_source/lzwgc_main.c's compare_dicts: the canonical
// bug this spec exists to catch is encoder/decoder dictionaries drifting
// apart, and this is the check that observes it.
func DictionaryDivergences(enc, dec *dictionary.Dictionary, tok dictionary.Token) []string {
	var diffs []string

	if enc.AllocIndex() != dec.AllocIndex() {
		diffs = append(diffs, fmt.Sprintf(
			"divergent alloc cursor: encoder=%d decoder=%d",
			enc.AllocIndex(), dec.AllocIndex()))
	}

	if tok < dictionary.FirstDynamicToken {
		return diffs
	}

	ix := dictionary.Index(tok)
	es, ds := enc.Slot(ix), dec.Slot(ix)

	if es.Refs != ds.Refs {
		diffs = append(diffs, fmt.Sprintf(
			"token %d: divergent refs: encoder=%d decoder=%d", tok, es.Refs, ds.Refs))
	}
	if es.Prev != ds.Prev || es.Byte != ds.Byte {
		diffs = append(diffs, fmt.Sprintf(
			"token %d: divergent definition: encoder=(prev=%d byte=%02x) decoder=(prev=%d byte=%02x)",
			tok, es.Prev, es.Byte, ds.Prev, ds.Byte))
	}

	return diffs
}
