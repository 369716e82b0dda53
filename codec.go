package fstkv

import "github.com/coregx/fstkv/internal/varint"

// MaxEncodableUint is the largest value EncodeUint can represent (2^61-1).
const MaxEncodableUint = varint.MaxValue

// EncodeUint returns the self-delimiting big-endian encoding of i, for
// callers packing composite keys or values around an FST's native uint64
// payload. See spec.md §4.6.
func EncodeUint(i uint64) ([]byte, error) {
	b, err := varint.Encode(i)
	if err != nil {
		return nil, wrapErr(KindValue, "encode", ErrValueTooLarge)
	}
	return b, nil
}

// DecodeUint reads the integer encoded at the tail of b, returning the
// value and the preceding bytes that were not part of the encoding.
func DecodeUint(b []byte) (rest []byte, value uint64, err error) {
	rest, value, err = varint.Decode(b)
	if err != nil {
		return nil, 0, wrapErr(KindValue, "decode", err)
	}
	return rest, value, nil
}
