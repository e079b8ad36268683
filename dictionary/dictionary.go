// Package dictionary implements the LZW-GC shared dictionary: a fixed-size
// table of (prev-token, byte) entries with an incremental, garbage-collected
// allocator driven by approximate-LFU reference counters.
//
// A Dictionary is owned exclusively by one Compressor or Decompressor; both
// sides evolve their dictionary by applying Update to the same token stream,
// which is what keeps the two copies in lockstep despite eviction.
package dictionary

import "errors"

// Token is a non-negative integer tag for a byte string. Values below
// FirstDynamicToken are literal tokens standing for the byte of the same
// value; values at or above it name dynamic dictionary entries.
type Token uint32

// FirstDynamicToken is the first token number available for dictionary
// entries; tokens below it are literals for the byte of the same value.
const FirstDynamicToken Token = 256

const (
	// MinSize is the smallest permitted dictionary size.
	MinSize = 256
	// MaxSize is the largest permitted dictionary size.
	MaxSize = 1 << 24
)

// ErrInvalidSize is returned by New when size is outside [MinSize, MaxSize].
var ErrInvalidSize = errors.New("dictionary: size out of range [256, 1<<24]")

// Slot is one dynamic dictionary entry.
type Slot struct {
	Prev Token  // token this slot extends; expanding it recursively reaches a literal
	Byte byte   // byte appended at this level
	Refs uint32 // reference counter driving eviction
}

// Dictionary is the shared, incrementally garbage-collected token table.
type Dictionary struct {
	size      Token  // S: total token space, including the 256 literals
	slots     []Slot // dynamic slots, length S-256
	allocIdx  int    // index of the most recently allocated slot
	histToken Token  // last token observed on the update stream; == size means "none yet"
}

// New allocates a Dictionary for a stream with dictionary size S (the
// sentinel / reserved token value). S must satisfy 256 <= S <= 1<<24.
//
// Every backing slice is allocated here and never regrows: the dictionary's
// steady-state operation performs no further allocation.
func New(size uint32) (*Dictionary, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	dynSize := int(size) - int(FirstDynamicToken)
	d := &Dictionary{
		size:      Token(size),
		slots:     make([]Slot, dynSize),
		histToken: Token(size), // sentinel: no update observed yet
	}
	for i := range d.slots {
		d.slots[i].Prev = indexToToken(i) // vacant: prev == own token
	}
	// First real allocation lands at dynamic slot 0 (spec.md §9, "allocation
	// cursor start"): the cyclic scan starts from (allocIdx+1) mod dynSize.
	d.allocIdx = dynSize - 1
	return d, nil
}

// Size returns S, the configured dictionary size (also the sentinel token
// value meaning "invalid / no token").
func (d *Dictionary) Size() Token { return d.size }

// DynSize returns the number of dynamic slots, S-256.
func (d *Dictionary) DynSize() int { return len(d.slots) }

// AllocIndex returns the dynamic slot index most recently allocated.
func (d *Dictionary) AllocIndex() int { return d.allocIdx }

// HistToken returns the last token observed on the update stream, or Size()
// if Update has never been called.
func (d *Dictionary) HistToken() Token { return d.histToken }

// Slot returns a copy of dynamic slot i. Callers must ensure 0 <= i <
// DynSize().
func (d *Dictionary) Slot(i int) Slot { return d.slots[i] }

func indexToToken(i int) Token { return FirstDynamicToken + Token(i) }

func tokenToIndex(t Token) int { return int(t - FirstDynamicToken) }

// WellFormed reports whether dynamic slot i holds a real entry (as opposed
// to being vacant: never extended, or evicted and not yet overwritten).
func (d *Dictionary) WellFormed(i int) bool {
	return d.slots[i].Prev != indexToToken(i)
}

// Valid reports whether t names a usable token: either a literal (< 256),
// or a dynamic token whose slot is well-formed.
func (d *Dictionary) Valid(t Token) bool {
	if t >= d.size {
		return false
	}
	if t < FirstDynamicToken {
		return true
	}
	return d.WellFormed(tokenToIndex(t))
}

// Expand walks prev from t, writing bytes into dst in reverse expansion
// order (deepest byte first), and returns the number of bytes written. The
// caller is responsible for reversing dst[:n] to get the forward string.
// dst must have capacity for at least DynSize()+1 bytes. t must be Valid.
//
// This does not touch reference counters; see Update for the counter walk
// that accompanies the shared dictionary update rule.
func (d *Dictionary) Expand(t Token, dst []byte) int {
	n := 0
	for t >= FirstDynamicToken {
		s := d.slots[tokenToIndex(t)]
		dst[n] = s.Byte
		n++
		t = s.Prev
	}
	dst[n] = byte(t) // literal token: its own value is the final byte
	n++
	return n
}

// UpdateResult reports what Update did, so callers that maintain a reverse
// index (see package revindex) can keep it synchronized.
type UpdateResult struct {
	Allocated bool  // false on the very first Update call, and on every call when S == 256
	Victim    int   // dynamic slot index that was (re)written
	OldPrev   Token // victim's Prev before being overwritten (vacant if == token(Victim))
	OldByte   byte  // victim's Byte before being overwritten
	NewPrev   Token // the new entry's Prev (== histToken before this call)
	NewByte   byte  // the new entry's Byte (first byte of t's expansion)
}

// Update applies the shared dictionary update rule (spec §4.1) for observed
// token t. It is a pure function of the current dictionary and t, and must
// be called with the identical token sequence on both the compressor and
// decompressor sides for their dictionaries to remain byte-identical.
func (d *Dictionary) Update(t Token) UpdateResult {
	if d.histToken == d.size {
		// First update: record history, no allocation, no eviction.
		d.histToken = t
		return UpdateResult{Allocated: false}
	}

	// Step 1: bump reference counts along t's expansion. The walk bottoms
	// out at a literal token, whose value is the first byte of t's
	// expansion — what actually extends the previous entry.
	walk := t
	for walk >= FirstDynamicToken {
		ix := tokenToIndex(walk)
		d.slots[ix].Refs++
		walk = d.slots[ix].Prev
	}
	c := byte(walk)

	// A dictionary with no dynamic slots (S == 256) can never grow; every
	// token it ever sees is a literal, so there is nothing to evict or
	// allocate. Update still tracks histToken for the next call.
	dynSize := len(d.slots)
	if dynSize == 0 {
		d.histToken = t
		return UpdateResult{Allocated: false}
	}

	// Step 2: pick a victim via the cyclic halving scan.
	ii := d.allocIdx
	for {
		ii = (ii + 1) % dynSize
		if d.slots[ii].Refs == 0 {
			break
		}
		d.slots[ii].Refs /= 2
	}

	// Step 3: overwrite the victim, recording its prior contents for
	// reverse-index maintenance.
	res := UpdateResult{
		Allocated: true,
		Victim:    ii,
		OldPrev:   d.slots[ii].Prev,
		OldByte:   d.slots[ii].Byte,
		NewPrev:   d.histToken,
		NewByte:   c,
	}

	d.slots[ii].Prev = d.histToken
	d.slots[ii].Byte = c
	// Refs is already 0 (that's why ii was chosen); leave it.

	d.allocIdx = ii
	d.histToken = t

	return res
}

// SlotToken converts a dynamic slot index to its external token value.
func SlotToken(i int) Token { return indexToToken(i) }

// Index converts a dynamic dictionary token to its slot index. t must be >= FirstDynamicToken.
func Index(t Token) int { return tokenToIndex(t) }
