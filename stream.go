package lzwgc

import (
	"fmt"
	"io"

	"github.com/DonaldFoss/lzwgc/compressor"
	"github.com/DonaldFoss/lzwgc/decompressor"
	"github.com/DonaldFoss/lzwgc/dictionary"
)

const (
	minBitWidth = 9
	maxBitWidth = 24
	// wideTokenBitWidth is the threshold above which tokens are written as
	// 3 bytes instead of 2 (spec.md §6.2).
	wideTokenBitWidth = 16
)

// DictionarySize returns the dictionary size S = 2^bitWidth - 1 that a
// stream using the given bit width implies, per spec.md §6.2. bitWidth must
// be in [9, 24].
func DictionarySize(bitWidth int) (uint32, error) {
	if bitWidth < minBitWidth || bitWidth > maxBitWidth {
		return 0, ErrInvalidBitWidth
	}
	return uint32(1)<<uint(bitWidth) - 1, nil
}

func tokenWireWidth(bitWidth int) int {
	if bitWidth <= wideTokenBitWidth {
		return 2
	}
	return 3
}

// Writer compresses bytes written to it and writes the resulting tokens to
// an underlying io.Writer using the wire format of spec.md §6.2.
type Writer struct {
	w         io.Writer
	bitWidth  int
	wireWidth int
	c         *compressor.Compressor
}

// NewWriter creates a Writer that encodes with dictionary size 2^bitWidth-1.
// bitWidth must be in [9, 24].
func NewWriter(w io.Writer, bitWidth int) (*Writer, error) {
	size, err := DictionarySize(bitWidth)
	if err != nil {
		return nil, err
	}
	c, err := compressor.New(size)
	if err != nil {
		return nil, err
	}
	return &Writer{
		w:         w,
		bitWidth:  bitWidth,
		wireWidth: tokenWireWidth(bitWidth),
		c:         c,
	}, nil
}

// Write feeds p through the compressor, writing any emitted tokens to the
// underlying writer. It always consumes all of p unless a write error
// occurs.
func (w *Writer) Write(p []byte) (int, error) {
	for i, b := range p {
		if tok, ok := w.c.Feed(b); ok {
			if err := w.writeToken(tok); err != nil {
				return i, err
			}
		}
	}
	return len(p), nil
}

// Close flushes the trailing token, if any. It does not close the
// underlying writer.
func (w *Writer) Close() error {
	tok, ok := w.c.Finalize()
	if !ok {
		return nil
	}
	return w.writeToken(tok)
}

func (w *Writer) writeToken(tok dictionary.Token) error {
	var buf [3]byte
	v := uint32(tok)
	n := w.wireWidth
	if n == 3 {
		buf[0] = byte(v >> 16)
	}
	buf[n-2] = byte(v >> 8)
	buf[n-1] = byte(v)

	written, err := w.w.Write(buf[:n])
	if err != nil {
		return err
	}
	if written != n {
		return io.ErrShortWrite
	}
	return nil
}

// Reader decompresses tokens read from an underlying io.Reader, serving the
// resulting bytes through Read.
type Reader struct {
	r         io.Reader
	wireWidth int
	reserved  dictionary.Token
	d         *decompressor.Decompressor
	pending   []byte
}

// NewReader creates a Reader that decodes with dictionary size
// 2^bitWidth-1. bitWidth must be in [9, 24] and must match the bit width the
// encoder used; there is no way to detect a mismatch from the stream
// itself.
func NewReader(r io.Reader, bitWidth int) (*Reader, error) {
	size, err := DictionarySize(bitWidth)
	if err != nil {
		return nil, err
	}
	d, err := decompressor.New(size)
	if err != nil {
		return nil, err
	}
	return &Reader{
		r:         r,
		wireWidth: tokenWireWidth(bitWidth),
		reserved:  dictionary.Token(size),
		d:         d,
	}, nil
}

// Read decompresses tokens from the underlying reader until p is full or
// the underlying reader reaches EOF between tokens.
func (r *Reader) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if len(r.pending) == 0 {
			tok, err := r.readToken()
			if err != nil {
				if err == io.EOF {
					if total > 0 {
						return total, nil
					}
					return 0, io.EOF
				}
				return total, err
			}
			out, err := r.d.Feed(tok)
			if err != nil {
				return total, err
			}
			r.pending = out
		}
		n := copy(p[total:], r.pending)
		r.pending = r.pending[n:]
		total += n
	}
	return total, nil
}

func (r *Reader) readToken() (dictionary.Token, error) {
	var buf [3]byte
	n := r.wireWidth
	if _, err := io.ReadFull(r.r, buf[:n]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: %w", ErrTruncatedToken, err)
		}
		return 0, err
	}

	var v uint32
	if n == 3 {
		v = uint32(buf[0]) << 16
	}
	v |= uint32(buf[n-2])<<8 | uint32(buf[n-1])
	tok := dictionary.Token(v)

	if tok == r.reserved {
		return 0, ErrReservedToken
	}
	return tok, nil
}
