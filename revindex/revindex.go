// Package revindex implements the compressor-side reverse lookup
// accelerator: a collision-resolving hash table mapping (previous-token,
// appended-byte) pairs to the dictionary token that stores them, so the
// compressor can answer "is this extension already in the dictionary?" in
// expected constant time instead of scanning the whole dictionary.
//
// This is a performance structure, not part of the wire format or the
// lockstep contract between compressor and decompressor: a correct
// compressor could equally use a linear scan of the dictionary (see
// dictionary.Dictionary.Valid/Slot), as long as ties are broken the same way
// (first slot matching (prev, byte), which the dictionary's own invariant
// guarantees is unique among well-formed slots).
package revindex

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/DonaldFoss/lzwgc/dictionary"
)

const (
	cellEmpty     = uint32(0)
	cellTombstone = uint32(1)
	// live cells store a dictionary token, which is always >= 256 and so
	// never collides with cellEmpty/cellTombstone.
)

// Index is an open-addressed hash table from (prev token, byte) to the
// dictionary token holding that pair.
type Index struct {
	table      []uint32 // capacity-sized; holds cellEmpty, cellTombstone, or a live token
	mask       uint64   // capacity-1; capacity is a power of two
	saturation int      // count of non-empty cells (live + tombstone)
}

// New allocates a reverse index sized for a dictionary of S tokens. Capacity
// is the next power of two at or above 2*S, per spec §3.4 ("H ~ 2*S").
func New(size dictionary.Token) *Index {
	capacity := uint64(1)
	for capacity < uint64(size)*2 {
		capacity <<= 1
	}
	return &Index{
		table: make([]uint32, capacity),
		mask:  capacity - 1,
	}
}

func hash(prev dictionary.Token, b byte) uint64 {
	var key [5]byte
	binary.LittleEndian.PutUint32(key[:4], uint32(prev))
	key[4] = b
	return xxhash.Sum64(key[:])
}

// Lookup probes for the token stored under (prev, b). It consults the
// dictionary to confirm a live cell's token actually carries (prev, b),
// since the table stores only tokens, not full keys (spec §4.2 step 1).
func (ix *Index) Lookup(dict *dictionary.Dictionary, prev dictionary.Token, b byte) (dictionary.Token, bool) {
	pos := hash(prev, b) & ix.mask
	for {
		cell := ix.table[pos]
		if cell == cellEmpty {
			return 0, false
		}
		if cell != cellTombstone {
			tok := dictionary.Token(cell)
			slot := dict.Slot(dictionary.Index(tok))
			if slot.Prev == prev && slot.Byte == b {
				return tok, true
			}
		}
		pos = (pos + 1) & ix.mask
	}
}

// Apply performs the reverse-index maintenance described in spec §4.3 for
// one dictionary.UpdateResult: tombstoning the evicted key (if it was
// present) and inserting the new key, rebuilding the table if saturation
// crosses 4/5.
func (ix *Index) Apply(dict *dictionary.Dictionary, res dictionary.UpdateResult) {
	if !res.Allocated {
		return
	}
	victimToken := dictionary.SlotToken(res.Victim)

	ix.tombstone(res.OldPrev, res.OldByte, victimToken)
	ix.insert(res.NewPrev, res.NewByte, victimToken)

	if 5*ix.saturation > 4*len(ix.table) {
		ix.rebuild(dict)
	}
}

func (ix *Index) tombstone(prev dictionary.Token, b byte, victim dictionary.Token) {
	pos := hash(prev, b) & ix.mask
	for {
		cell := ix.table[pos]
		if cell == cellEmpty {
			// The victim's old key was never present (it was vacant before
			// this allocation); nothing to remove.
			return
		}
		if cell == uint32(victim) {
			ix.table[pos] = cellTombstone
			return
		}
		pos = (pos + 1) & ix.mask
	}
}

func (ix *Index) insert(prev dictionary.Token, b byte, tok dictionary.Token) {
	pos := hash(prev, b) & ix.mask
	for {
		cell := ix.table[pos]
		if cell == cellEmpty {
			ix.saturation++
			ix.table[pos] = uint32(tok)
			return
		}
		if cell == cellTombstone || cell == uint32(tok) {
			ix.table[pos] = uint32(tok)
			return
		}
		pos = (pos + 1) & ix.mask
	}
}

func (ix *Index) rebuild(dict *dictionary.Dictionary) {
	for i := range ix.table {
		ix.table[i] = cellEmpty
	}
	ix.saturation = 0
	for i := 0; i < dict.DynSize(); i++ {
		if !dict.WellFormed(i) {
			continue
		}
		slot := dict.Slot(i)
		ix.insert(slot.Prev, slot.Byte, dictionary.SlotToken(i))
	}
}
