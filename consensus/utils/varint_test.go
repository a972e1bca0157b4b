package utils

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func FuzzCanonicalUvarint(f *testing.F) {
	for i := 0; i < 10; i++ {
		encoded := binary.AppendUvarint(nil, uint64(1)<<((i+0)*7))
		f.Add(encoded)
		encoded = binary.AppendUvarint(nil, uint64(1)<<((i+1)*7))
		f.Add(encoded)
		encoded = binary.AppendUvarint(nil, uint64(1)<<((i+2)*7))
		f.Add(encoded)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		var buf [binary.MaxVarintLen64]byte
		value, n := CanonicalUvarint(data)
		if n <= 0 {
			t.SkipNow()
		}

		data = data[:n]

		if len(data) != UVarInt64Size(value) {
			t.Fatalf("[%d] expected %d bytes, got %d", value, n, UVarInt64Size(value))
		}

		encoded := binary.AppendUvarint(buf[:0], value)
		if !bytes.Equal(encoded, data) {
			t.Fatalf("[%d] canonical encoding mismatch: have %x, want %x", value, encoded, data)
		}
	})
}

func TestCanonicalUvarintErr(t *testing.T) {
	if v, n, err := CanonicalUvarintErr([]byte{0xd1, 0x01, 0xff}); err != nil || v != 0xd1 || n != 2 {
		t.Fatalf("expected 0xd1 in 2 bytes, got %#x %d %v", v, n, err)
	}

	if _, _, err := CanonicalUvarintErr(nil); !errors.Is(err, ErrVarintShort) {
		t.Fatalf("expected ErrVarintShort, got %v", err)
	}

	if _, _, err := CanonicalUvarintErr([]byte{0x80}); !errors.Is(err, ErrVarintShort) {
		t.Fatalf("expected ErrVarintShort, got %v", err)
	}

	if _, _, err := CanonicalUvarintErr([]byte{0xd1, 0x80, 0x00}); !errors.Is(err, ErrNonCanonicalEncoding) {
		t.Fatalf("expected ErrNonCanonicalEncoding, got %v", err)
	}

	overflow := bytes.Repeat([]byte{0xff}, binary.MaxVarintLen64)
	overflow = append(overflow, 0x01)
	if _, _, err := CanonicalUvarintErr(overflow); !errors.Is(err, ErrVarintOverflow) {
		t.Fatalf("expected ErrVarintOverflow, got %v", err)
	}
}
