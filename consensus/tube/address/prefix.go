package address

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bittube/tube-params/consensus/utils"
	fasthex "github.com/tmthrgd/go-hex"
)

type Kind uint8

const (
	KindStandard Kind = iota
	KindIntegrated
	KindSubaddress
)

var Kinds = [...]Kind{KindStandard, KindIntegrated, KindSubaddress}

var ErrPrefixCollision = errors.New("address prefixes are not distinct")

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "address"
	case KindIntegrated:
		return "integrated"
	case KindSubaddress:
		return "subaddress"
	}
	return "unknown"
}

// Prefixes holds the varint tags that lead each kind of encoded address on one network.
type Prefixes struct {
	Address    uint64 `json:"address"`
	Integrated uint64 `json:"integrated"`
	Subaddress uint64 `json:"subaddress"`
}

func (p Prefixes) Of(kind Kind) uint64 {
	switch kind {
	case KindIntegrated:
		return p.Integrated
	case KindSubaddress:
		return p.Subaddress
	default:
		return p.Address
	}
}

// Tag returns the canonical varint bytes an encoded address of kind starts with.
func (p Prefixes) Tag(kind Kind) []byte {
	return binary.AppendUvarint(make([]byte, 0, binary.MaxVarintLen64), p.Of(kind))
}

func (p Prefixes) TagHex(kind Kind) string {
	return fasthex.EncodeToString(p.Tag(kind))
}

// Match reports which kind, if any, tag belongs to.
func (p Prefixes) Match(tag uint64) (Kind, bool) {
	for _, k := range Kinds {
		if p.Of(k) == tag {
			return k, true
		}
	}
	return KindStandard, false
}

type CollisionError struct {
	A, B   Kind
	Prefix uint64
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %s and %s both use %#x", ErrPrefixCollision, e.A, e.B, e.Prefix)
}

func (e *CollisionError) Unwrap() error {
	return ErrPrefixCollision
}

// Distinct errors with a *CollisionError when two kinds share a prefix, which
// would make encodings ambiguous.
func (p Prefixes) Distinct() error {
	for i, a := range Kinds {
		for _, b := range Kinds[i+1:] {
			if p.Of(a) == p.Of(b) {
				return &CollisionError{A: a, B: b, Prefix: p.Of(a)}
			}
		}
	}
	return nil
}

// ReadTag reads the leading varint of a raw (base58 decoded) address blob.
// Neither keys nor checksum are looked at.
func ReadTag(raw []byte) (tag uint64, n int, err error) {
	return utils.CanonicalUvarintErr(raw)
}
