// Package varint implements the self-delimiting big-endian integer codec
// used to pack composite keys and values around an FST's uint64 payload.
//
// The encoding stores i<<3 in the minimum number of big-endian bytes, with
// the low 3 bits of the final byte holding (byte count - 1). A decoder
// therefore only needs to look at the last byte of a buffer to know how
// many preceding bytes belong to the integer, which lets callers pack a
// variable-width integer after an arbitrary-length key and recover both by
// reading from the tail.
package varint

import "errors"

// MaxValue is the largest integer this codec can encode (2^61 - 1). Above
// this the shifted value (i<<3) would no longer fit in 8 bytes.
const MaxValue = 1<<61 - 1

// ErrValueTooLarge is returned by Encode when i exceeds MaxValue.
var ErrValueTooLarge = errors.New("varint: value too large to encode")

// ErrTruncated is returned by Decode when fewer bytes are present than the
// trailing length marker claims.
var ErrTruncated = errors.New("varint: truncated input")

// ErrEmpty is returned by Decode when given a zero-length buffer.
var ErrEmpty = errors.New("varint: empty input")

// Encode returns the 1-8 byte big-endian encoding of i.
func Encode(i uint64) ([]byte, error) {
	if i > MaxValue {
		return nil, ErrValueTooLarge
	}
	shifted := i << 3
	n := byteLen(shifted)
	buf := make([]byte, n)
	appendInto(buf, shifted, n)
	buf[n-1] |= byte(n - 1)
	return buf, nil
}

// AppendEncode appends the encoding of i to dst and returns the extended
// slice, avoiding an allocation when dst has spare capacity.
func AppendEncode(dst []byte, i uint64) ([]byte, error) {
	if i > MaxValue {
		return nil, ErrValueTooLarge
	}
	shifted := i << 3
	n := byteLen(shifted)
	off := len(dst)
	dst = append(dst, make([]byte, n)...)
	appendInto(dst[off:], shifted, n)
	dst[off+n-1] |= byte(n - 1)
	return dst, nil
}

// Decode reads the integer encoded at the tail of b, returning the value
// and the preceding bytes that were not part of the encoding (empty for a
// buffer that holds nothing but the varint itself).
func Decode(b []byte) (rest []byte, value uint64, err error) {
	if len(b) == 0 {
		return nil, 0, ErrEmpty
	}
	last := b[len(b)-1]
	n := int(last&0x07) + 1
	if len(b) < n {
		return nil, 0, ErrTruncated
	}
	chunk := b[len(b)-n : len(b)]
	var shifted uint64
	for _, c := range chunk {
		shifted = shifted<<8 | uint64(c)
	}
	shifted &^= 0x07
	return b[:len(b)-n], shifted >> 3, nil
}

// byteLen returns the minimum number of big-endian bytes (1-8) needed to
// hold shifted.
func byteLen(shifted uint64) int {
	n := 1
	for v := shifted >> 8; v != 0; v >>= 8 {
		n++
	}
	return n
}

// appendInto writes shifted into buf (len(buf) == n) in big-endian order.
func appendInto(buf []byte, shifted uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(shifted)
		shifted >>= 8
	}
}
