package address

import (
	"bytes"
	"errors"
	"testing"
)

var mainPrefixes = Prefixes{Address: 0xd1, Integrated: 0x404f, Subaddress: 0x3750}

func TestPrefixesTag(t *testing.T) {
	tests := []struct {
		kind Kind
		want []byte
		hex  string
	}{
		{KindStandard, []byte{0xd1, 0x01}, "d101"},
		{KindIntegrated, []byte{0xcf, 0x80, 0x01}, "cf8001"},
		{KindSubaddress, []byte{0xd0, 0x6e}, "d06e"},
	}

	for _, tt := range tests {
		if got := mainPrefixes.Tag(tt.kind); !bytes.Equal(got, tt.want) {
			t.Fatalf("%s: expected %x, got %x", tt.kind, tt.want, got)
		}
		if got := mainPrefixes.TagHex(tt.kind); got != tt.hex {
			t.Fatalf("%s: expected %s, got %s", tt.kind, tt.hex, got)
		}
	}
}

func TestReadTag(t *testing.T) {
	for _, k := range Kinds {
		raw := append(mainPrefixes.Tag(k), make([]byte, 68)...)
		tag, n, err := ReadTag(raw)
		if err != nil {
			t.Fatal(err)
		}
		if n != len(mainPrefixes.Tag(k)) {
			t.Fatalf("%s: expected %d tag bytes, got %d", k, len(mainPrefixes.Tag(k)), n)
		}
		if kind, ok := mainPrefixes.Match(tag); !ok || kind != k {
			t.Fatalf("%s: matched %s (%v)", k, kind, ok)
		}
	}

	if _, ok := mainPrefixes.Match(53); ok {
		t.Fatal("testnet prefix matched mainnet prefixes")
	}
}

func TestPrefixesDistinct(t *testing.T) {
	if err := mainPrefixes.Distinct(); err != nil {
		t.Fatal(err)
	}

	collide := Prefixes{Address: 24, Integrated: 25, Subaddress: 24}
	err := collide.Distinct()
	if !errors.Is(err, ErrPrefixCollision) {
		t.Fatalf("expected ErrPrefixCollision, got %v", err)
	}
	var collision *CollisionError
	if !errors.As(err, &collision) || collision.A != KindStandard || collision.B != KindSubaddress || collision.Prefix != 24 {
		t.Fatalf("unexpected collision %+v", collision)
	}
}
