package compressor

import "testing"

func TestNewRejectsOutOfRangeSize(t *testing.T) {
	if _, err := New(255); err == nil {
		t.Error("expected error for size below minimum")
	}
}

func TestFirstByteProducesNoOutput(t *testing.T) {
	c, err := New(260)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Feed('A'); ok {
		t.Error("first fed byte should never emit a token")
	}
}

func TestMissEmitsLiteralToken(t *testing.T) {
	c, err := New(260)
	if err != nil {
		t.Fatal(err)
	}
	c.Feed('A')
	tok, ok := c.Feed('B')
	if !ok || tok != 'A' {
		t.Errorf("Feed('B') after 'A': got (%d,%v), want (65,true)", tok, ok)
	}
}

func TestHitExtendsMatchWithoutEmitting(t *testing.T) {
	c, err := New(260)
	if err != nil {
		t.Fatal(err)
	}
	c.Feed('A')
	c.Feed('B') // emits 'A'; the first update only records history, matched becomes 'B'
	if tok, ok := c.Feed('A'); !ok || tok != 'B' {
		t.Errorf("third byte 'A': got (%d,%v), want (66,true)", tok, ok)
	}
	// Emitting 'B' allocated dict entry "AB" and matched is now 'A', so the
	// fourth byte should hit the freshly allocated entry and emit nothing
	// yet.
	if _, ok := c.Feed('B'); ok {
		t.Error("fourth byte 'B' should hit the newly allocated entry \"AB\"")
	}
}

func TestFullRunEmitsExpectedTokenSequence(t *testing.T) {
	c, err := New(260)
	if err != nil {
		t.Fatal(err)
	}
	var got []dictToken
	feed := func(b byte) {
		if tok, ok := c.Feed(b); ok {
			got = append(got, dictToken(tok))
		}
	}
	for _, b := range []byte("ABAB") {
		feed(b)
	}
	tok, ok := c.Finalize()
	if !ok {
		t.Fatal("expected a trailing token from Finalize")
	}
	got = append(got, dictToken(tok))

	want := []dictToken{65, 66, 256}
	if len(got) != len(want) {
		t.Fatalf("token sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFinalizeOnEmptyInputEmitsNothing(t *testing.T) {
	c, err := New(260)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Finalize(); ok {
		t.Error("Finalize with no fed bytes should not emit a token")
	}
}

func TestFinalizeAfterSingleByteEmitsIt(t *testing.T) {
	c, err := New(260)
	if err != nil {
		t.Fatal(err)
	}
	c.Feed('Z')
	tok, ok := c.Finalize()
	if !ok || tok != 'Z' {
		t.Errorf("Finalize after single byte: got (%d,%v), want (90,true)", tok, ok)
	}
}

func TestDictionaryAccessibleAfterFinalize(t *testing.T) {
	c, err := New(260)
	if err != nil {
		t.Fatal(err)
	}
	c.Feed('A')
	c.Feed('B')
	c.Finalize()
	if c.Dictionary() == nil {
		t.Error("Dictionary() should remain usable after Finalize")
	}
}

// dictToken avoids importing the dictionary package just for numeric
// comparisons in table-driven assertions above.
type dictToken = uint32
