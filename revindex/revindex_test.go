package revindex

import (
	"testing"

	"github.com/DonaldFoss/lzwgc/dictionary"
)

func TestLookupMissOnEmptyIndex(t *testing.T) {
	dict, err := dictionary.New(260)
	if err != nil {
		t.Fatal(err)
	}
	ix := New(dict.Size())
	if _, ok := ix.Lookup(dict, dict.Size(), 'A'); ok {
		t.Error("expected miss on empty dictionary")
	}
}

func TestInsertThenLookupHits(t *testing.T) {
	dict, err := dictionary.New(260)
	if err != nil {
		t.Fatal(err)
	}
	ix := New(dict.Size())

	dict.Update(dictionary.Token('A'))
	res := dict.Update(dictionary.Token('B')) // allocates token 256 = "AB"
	ix.Apply(dict, res)

	tok, ok := ix.Lookup(dict, res.NewPrev, res.NewByte)
	if !ok {
		t.Fatal("expected hit for newly inserted (prev, byte) pair")
	}
	if tok != dictionary.SlotToken(res.Victim) {
		t.Errorf("Lookup returned token %d, want %d", tok, dictionary.SlotToken(res.Victim))
	}
}

func TestApplyTombstonesEvictedKey(t *testing.T) {
	// Small dynamic space forces eviction quickly.
	dict, err := dictionary.New(258)
	if err != nil {
		t.Fatal(err)
	}
	ix := New(dict.Size())

	dict.Update(dictionary.Token('A'))
	r1 := dict.Update(dictionary.Token('B'))
	ix.Apply(dict, r1)
	r2 := dict.Update(dictionary.Token('C'))
	ix.Apply(dict, r2)
	r3 := dict.Update(dictionary.Token('D')) // must evict one of the two slots
	ix.Apply(dict, r3)

	// The evicted key should no longer resolve to the evicted token.
	if _, ok := ix.Lookup(dict, r3.OldPrev, r3.OldByte); ok {
		// Only a real miss matters if the old key actually existed and
		// differs from the new key written into the same slot.
		if r3.OldPrev != r3.NewPrev || r3.OldByte != r3.NewByte {
			t.Errorf("evicted key (%d, %q) should no longer resolve", r3.OldPrev, r3.OldByte)
		}
	}

	// The newly written key must resolve to the victim's token.
	tok, ok := ix.Lookup(dict, r3.NewPrev, r3.NewByte)
	if !ok || tok != dictionary.SlotToken(r3.Victim) {
		t.Errorf("Lookup(%d, %q) = (%d, %v), want (%d, true)", r3.NewPrev, r3.NewByte, tok, ok, dictionary.SlotToken(r3.Victim))
	}
}

func TestRebuildPreservesAllWellFormedEntries(t *testing.T) {
	dict, err := dictionary.New(256 + 8)
	if err != nil {
		t.Fatal(err)
	}
	ix := New(dict.Size())

	dict.Update(dictionary.Token(0))
	var last dictionary.UpdateResult
	for i := 1; i < 8; i++ {
		last = dict.Update(dictionary.Token(i))
		ix.Apply(dict, last)
	}
	// Churn entries through eviction (tombstone + reinsert) many times.
	for round := 0; round < 50; round++ {
		res := dict.Update(dictionary.Token(round % 250))
		ix.Apply(dict, res)
	}
	// Saturation stays far below the 4/5 threshold here, so rebuild
	// explicitly from the churned dictionary.
	ix.rebuild(dict)

	for i := 0; i < dict.DynSize(); i++ {
		if !dict.WellFormed(i) {
			continue
		}
		slot := dict.Slot(i)
		tok, ok := ix.Lookup(dict, slot.Prev, slot.Byte)
		if !ok {
			t.Errorf("slot %d: well-formed entry (%d,%q) missing from reverse index", i, slot.Prev, slot.Byte)
			continue
		}
		if tok != dictionary.SlotToken(i) {
			t.Errorf("slot %d: reverse index points at token %d instead", i, tok)
		}
	}
	_ = last
}
