package params

import (
	"math"
	"net/url"

	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/tube/address"
	"github.com/pkg/errors"
)

// MaxCoinUnitPlaces bounds the decimal places a display unit may have.
const MaxCoinUnitPlaces = 18

// Validate checks every field once. The first violation is returned as a
// *FieldError naming the field with the wallet's config key.
func (s Set) Validate() error {
	if err := validateURL("apiUrl", s.APIURL); err != nil {
		return err
	}
	for _, n := range tube.Networks {
		if err := validateURL(explorerKey(n), s.ExplorerURLs[n]); err != nil {
			return err
		}
	}

	if !s.NetworkType.Valid() {
		return invalidf("nettype", "%d is not a network type", int(s.NetworkType))
	}

	if s.CoinUnitPlaces > MaxCoinUnitPlaces {
		return invalidf("coinUnitPlaces", "%d exceeds %d", s.CoinUnitPlaces, MaxCoinUnitPlaces)
	}

	for _, f := range []struct {
		key, value string
	}{
		{"coinSymbol", s.CoinSymbol},
		{"coinName", s.CoinName},
		{"coinUriPrefix", s.CoinURIPrefix},
		{"openAliasPrefix", s.OpenAliasPrefix},
	} {
		if f.value == "" {
			return invalidf(f.key, "must not be empty")
		}
	}

	for _, n := range tube.Networks {
		var collision *address.CollisionError
		if err := s.Prefixes[n].Distinct(); errors.As(err, &collision) {
			return fieldError(prefixKey(n, collision.B), errors.Wrapf(ErrPrefixCollision, "%s %s and %s both use %#x", n, collision.A, collision.B, collision.Prefix))
		}
	}

	if math.IsNaN(s.TxChargeRatio) || s.TxChargeRatio < 0 || s.TxChargeRatio > 1 {
		return invalidf("txChargeRatio", "%v is outside [0, 1]", s.TxChargeRatio)
	}

	if s.IdleTimeout == 0 {
		return invalidf("idleTimeout", "must be positive")
	}
	if s.IdleWarningDuration >= s.IdleTimeout {
		return fieldError("idleWarningDuration", errors.Wrapf(ErrIdleWarning, "%d >= %d", s.IdleWarningDuration, s.IdleTimeout))
	}

	if s.MaxBlockNumber == 0 {
		return invalidf("maxBlockNumber", "must be positive")
	}
	if s.AvgBlockTime == 0 {
		return invalidf("avgBlockTime", "must be positive")
	}

	return nil
}

func validateURL(key, value string) error {
	if value == "" {
		return invalidf(key, "must not be empty")
	}
	u, err := url.Parse(value)
	if err != nil {
		return fieldError(key, errors.Wrap(ErrInvalidField, err.Error()))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return invalidf(key, "scheme %q is not http(s)", u.Scheme)
	}
	if u.Host == "" {
		return invalidf(key, "%q has no host", value)
	}
	return nil
}

func explorerKey(n tube.NetworkType) string {
	return n.String() + "ExplorerUrl"
}

// prefixKey names prefix fields the way the wallet config does: addressPrefix,
// integratedAddressPrefixTestnet, subAddressPrefixStagenet...
func prefixKey(n tube.NetworkType, kind address.Kind) string {
	var key string
	switch kind {
	case address.KindIntegrated:
		key = "integratedAddressPrefix"
	case address.KindSubaddress:
		key = "subAddressPrefix"
	default:
		key = "addressPrefix"
	}
	switch n {
	case tube.NetworkTestnet:
		key += "Testnet"
	case tube.NetworkStagenet:
		key += "Stagenet"
	}
	return key
}
