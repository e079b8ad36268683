// Package lzwgc provides the byte-oriented stream codec for LZW-GC: a
// Writer/Reader pair that wraps the core compressor/decompressor state
// machines (packages compressor and decompressor) with the minimal wire
// framing described in spec.md §6.2 — big-endian tokens of 2 or 3 bytes,
// no length prefix, no magic, no checksum, terminated by EOF.
package lzwgc

import "errors"

var (
	// ErrInvalidBitWidth is returned when the configured bit width B is
	// outside [9, 24].
	ErrInvalidBitWidth = errors.New("lzwgc: bit width out of range [9, 24]")

	// ErrReservedToken is returned by Reader when the wire contains the
	// reserved sentinel token value 2^B-1, which must never appear in a
	// conforming stream.
	ErrReservedToken = errors.New("lzwgc: stream contains reserved token")

	// ErrTruncatedToken is returned by Reader when the underlying reader
	// ends partway through a token.
	ErrTruncatedToken = errors.New("lzwgc: truncated token at end of stream")
)
