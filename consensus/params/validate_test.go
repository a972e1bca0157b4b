package params

import (
	"errors"
	"math"
	"testing"

	"github.com/bittube/tube-params/consensus/tube"
)

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Set)
		field  string
		err    error
	}{
		{"empty api url", func(s *Set) { s.APIURL = "" }, "apiUrl", ErrInvalidField},
		{"api url scheme", func(s *Set) { s.APIURL = "ftp://host/" }, "apiUrl", ErrInvalidField},
		{"api url host", func(s *Set) { s.APIURL = "http:///path" }, "apiUrl", ErrInvalidField},
		{"testnet explorer", func(s *Set) { s.ExplorerURLs[tube.NetworkTestnet] = "::" }, "testnetExplorerUrl", ErrInvalidField},
		{"network type", func(s *Set) { s.NetworkType = 3 }, "nettype", ErrInvalidField},
		{"unit places", func(s *Set) { s.CoinUnitPlaces = 40 }, "coinUnitPlaces", ErrInvalidField},
		{"coin symbol", func(s *Set) { s.CoinSymbol = "" }, "coinSymbol", ErrInvalidField},
		{"openalias prefix", func(s *Set) { s.OpenAliasPrefix = "" }, "openAliasPrefix", ErrInvalidField},
		{"mainnet collision", func(s *Set) { s.Prefixes[tube.NetworkMainnet].Integrated = 0xd1 }, "integratedAddressPrefix", ErrPrefixCollision},
		{"stagenet collision", func(s *Set) { s.Prefixes[tube.NetworkStagenet].Subaddress = 25 }, "subAddressPrefixStagenet", ErrPrefixCollision},
		{"testnet collision", func(s *Set) { s.Prefixes[tube.NetworkTestnet].Subaddress = 53 }, "subAddressPrefixTestnet", ErrPrefixCollision},
		{"charge ratio high", func(s *Set) { s.TxChargeRatio = 1.5 }, "txChargeRatio", ErrInvalidField},
		{"charge ratio negative", func(s *Set) { s.TxChargeRatio = -0.1 }, "txChargeRatio", ErrInvalidField},
		{"charge ratio nan", func(s *Set) { s.TxChargeRatio = math.NaN() }, "txChargeRatio", ErrInvalidField},
		{"idle timeout zero", func(s *Set) { s.IdleTimeout = 0 }, "idleTimeout", ErrInvalidField},
		{"idle warning equal", func(s *Set) { s.IdleWarningDuration = 30 }, "idleWarningDuration", ErrIdleWarning},
		{"idle warning longer", func(s *Set) { s.IdleWarningDuration = 45 }, "idleWarningDuration", ErrIdleWarning},
		{"max block number", func(s *Set) { s.MaxBlockNumber = 0 }, "maxBlockNumber", ErrInvalidField},
		{"avg block time", func(s *Set) { s.AvgBlockTime = 0 }, "avgBlockTime", ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TubeParams
			tt.modify(&s)

			err := s.Validate()
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != tt.field {
				t.Fatalf("expected field %s, got %v", tt.field, err)
			}

			if r, err := NewRegistry(s); r != nil || err == nil {
				t.Fatal("registry built from invalid parameters")
			}
		})
	}
}

func TestValidateAcceptsCrossNetworkReuse(t *testing.T) {
	s := TubeParams
	s.Prefixes[tube.NetworkTestnet] = s.Prefixes[tube.NetworkStagenet]
	if err := s.Validate(); err != nil {
		t.Fatalf("prefixes only need to be distinct within a network: %s", err)
	}
}

func TestMustNewRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	s := TubeParams
	s.IdleWarningDuration = s.IdleTimeout
	MustNewRegistry(s)
}
