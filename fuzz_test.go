package lzwgc

import (
	"bytes"
	"io"
	"testing"
)

// FuzzRoundTrip checks that whatever bytes go into a Writer come back out of
// a matching Reader unchanged, for a representative spread of dictionary
// sizes.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add([]byte("hello"))
	f.Add([]byte("TOBEORNOTTOBEORTOBEORNOT"))
	f.Add([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	f.Add(bytes.Repeat([]byte{0x00, 0xff}, 64))
	f.Add([]byte("abababababababababababababababab"))

	f.Fuzz(func(t *testing.T, input []byte) {
		for _, bits := range []int{9, 12, 17} {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, bits)
			if err != nil {
				t.Fatalf("NewWriter(bits=%d): %v", bits, err)
			}
			if _, err := w.Write(input); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			r, err := NewReader(&buf, bits)
			if err != nil {
				t.Fatalf("NewReader(bits=%d): %v", bits, err)
			}
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll (bits=%d): %v", bits, err)
			}
			if !bytes.Equal(got, input) {
				t.Errorf("bits=%d: round trip = %q, want %q", bits, got, input)
			}
		}
	})
}
