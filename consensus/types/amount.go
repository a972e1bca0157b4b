package types

import (
	"errors"
	"io"
	"math/big"
	"strconv"

	"github.com/bittube/tube-params/consensus/utils"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")
var ErrInvalidAmount = errors.New("amount is not a decimal integer")

// Amount is an exact count of atomic units. The zero value is 0.
//
// The backing integer is never handed out, so copies of an Amount can be shared
// freely between goroutines.
type Amount struct {
	v *big.Int
}

var ZeroAmount Amount

func AmountFrom64(v uint64) Amount {
	return Amount{v: new(big.Int).SetUint64(v)}
}

// AmountFromBig copies v. Negative values are rejected.
func AmountFromBig(v *big.Int) (Amount, error) {
	if v == nil {
		return ZeroAmount, nil
	}
	if v.Sign() < 0 {
		return ZeroAmount, ErrNegativeAmount
	}
	return Amount{v: new(big.Int).Set(v)}, nil
}

func MustAmountFromString(s string) Amount {
	if a, err := AmountFromString(s); err != nil {
		panic(err)
	} else {
		return a
	}
}

// AmountFromString parses a base 10 integer made of digits only.
func AmountFromString(s string) (Amount, error) {
	if len(s) == 0 {
		return ZeroAmount, ErrInvalidAmount
	}
	if s[0] == '-' {
		return ZeroAmount, ErrNegativeAmount
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ZeroAmount, ErrInvalidAmount
		}
	}

	if v, err := utils.ParseUint64([]byte(s)); err == nil {
		return AmountFrom64(v), nil
	} else if !errors.Is(err, strconv.ErrRange) {
		return ZeroAmount, err
	}

	// Fallback to big int if number is out of range
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ZeroAmount, ErrInvalidAmount
	}
	return Amount{v: v}, nil
}

func (a Amount) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Big returns a copy of the amount as a *big.Int.
func (a Amount) Big() *big.Int {
	return new(big.Int).Set(a.big())
}

func (a Amount) IsZero() bool {
	return a.v == nil || a.v.Sign() == 0
}

func (a Amount) Cmp(b Amount) int {
	return a.big().Cmp(b.big())
}

func (a Amount) Equals(b Amount) bool {
	return a.Cmp(b) == 0
}

// Uint64 returns the amount and whether it fits into 64 bits.
func (a Amount) Uint64() (uint64, bool) {
	v := a.big()
	return v.Uint64(), v.IsUint64()
}

func (a Amount) Add(b Amount) Amount {
	return Amount{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b, saturating at zero.
func (a Amount) Sub(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return ZeroAmount
	}
	return Amount{v: new(big.Int).Sub(a.big(), b.big())}
}

// MulRatio scales the amount by ratio, rounding towards zero. The ratio is
// converted exactly from its float64 representation.
func (a Amount) MulRatio(ratio float64) Amount {
	if ratio <= 0 || a.IsZero() {
		return ZeroAmount
	}
	r := new(big.Rat).SetFloat64(ratio)
	if r == nil {
		return ZeroAmount
	}
	r.Mul(r, new(big.Rat).SetInt(a.big()))
	return Amount{v: new(big.Int).Quo(r.Num(), r.Denom())}
}

func (a Amount) String() string {
	return a.big().String()
}

// MarshalJSON quotes the value so JavaScript consumers never round it.
func (a Amount) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 24)
	buf = append(buf, '"')
	buf = a.big().Append(buf, 10)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON accepts a quoted decimal string or a bare JSON integer.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return io.ErrUnexpectedEOF
	}

	if b[0] == '"' {
		if len(b) < 2 || b[len(b)-1] != '"' {
			return errors.New("invalid bytes")
		}
		b = b[1 : len(b)-1]
	}

	v, err := AmountFromString(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Amount) MarshalText() ([]byte, error) {
	return a.big().Append(nil, 10), nil
}

func (a *Amount) UnmarshalText(b []byte) error {
	v, err := AmountFromString(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
