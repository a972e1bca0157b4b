package utils

import (
	"errors"
	"math/big"
	"strings"
)

var ErrInvalidUnits = errors.New("units: invalid decimal amount")
var ErrTooManyDecimals = errors.New("units: too many decimal places")

// FormatUnits renders an atomic amount as a decimal string with exactly places
// fractional digits, e.g. 150000000 at 8 places is "1.50000000".
func FormatUnits(atomic *big.Int, places uint8) string {
	if atomic == nil {
		atomic = new(big.Int)
	}
	digits := new(big.Int).Abs(atomic).String()

	var sb strings.Builder
	if atomic.Sign() < 0 {
		sb.WriteByte('-')
	}
	if places == 0 {
		sb.WriteString(digits)
		return sb.String()
	}

	if pad := int(places) + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	split := len(digits) - int(places)
	sb.WriteString(digits[:split])
	sb.WriteByte('.')
	sb.WriteString(digits[split:])
	return sb.String()
}

// ParseUnits is the inverse of FormatUnits. It accepts fewer fractional digits
// than places but never more, and rejects signs and exponents.
func ParseUnits(s string, places uint8) (*big.Int, error) {
	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" && (!hasDot || frac == "") {
		return nil, ErrInvalidUnits
	}
	if hasDot && frac == "" {
		return nil, ErrInvalidUnits
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, ErrInvalidUnits
	}
	if len(frac) > int(places) {
		return nil, ErrTooManyDecimals
	}

	digits := whole + frac + strings.Repeat("0", int(places)-len(frac))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, ErrInvalidUnits
	}
	return v, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
