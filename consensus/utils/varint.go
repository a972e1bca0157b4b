package utils

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

var ErrNonCanonicalEncoding = errors.New("binary: varint has non canonical encoding")
var ErrVarintOverflow = errors.New("binary: varint overflows a 64-bit integer")
var ErrVarintShort = errors.New("binary: buffer too small for varint")

// CanonicalUvarint decodes a uint64 from buf and returns that value and the
// number of bytes read (> 0). If an error occurred, the value is 0
// and the number of bytes n is <= 0 meaning:
//   - n == 0: buf too small;
//   - n < 0: value larger than 64 bits (overflow), or a non-canonical
//     encoding, and -n is the number of bytes read.
func CanonicalUvarint(buf []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, b := range buf {
		if i == binary.MaxVarintLen64 {
			// Catch byte reads past MaxVarintLen64.
			// See issue https://golang.org/issues/41185
			return 0, -(i + 1) // overflow
		}
		if i > 0 && b == 0 {
			return 0, -(i + 1) // non canonical
		}
		if b < 0x80 {
			if i == binary.MaxVarintLen64-1 && b > 1 {
				return 0, -(i + 1) // overflow
			}
			return x | uint64(b)<<s, i + 1
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
	return 0, 0
}

// CanonicalUvarintErr is CanonicalUvarint with the failure reason spelled out.
func CanonicalUvarintErr(buf []byte) (uint64, int, error) {
	v, n := CanonicalUvarint(buf)
	if n > 0 {
		return v, n, nil
	} else if n == 0 {
		return 0, 0, ErrVarintShort
	}
	if -n > 1 && -n <= binary.MaxVarintLen64 && buf[-n-1] == 0 {
		return 0, 0, ErrNonCanonicalEncoding
	}
	return 0, 0, ErrVarintOverflow
}

func UVarInt64Size[T uint64 | int | uint8](v T) (n int) {
	return 1 + (bits.Len64(uint64(v))*9)/64
}
