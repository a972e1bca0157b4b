package params

import (
	"bytes"
	"reflect"
	"sort"
	"strings"

	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/tube/address"
	"github.com/bittube/tube-params/consensus/types"
	"github.com/bittube/tube-params/consensus/utils"
	"github.com/pkg/errors"
)

// document is the flat object shape of the wallet's config literal.
type document struct {
	APIURL              string `json:"apiUrl"`
	MainnetExplorerURL  string `json:"mainnetExplorerUrl"`
	TestnetExplorerURL  string `json:"testnetExplorerUrl"`
	StagenetExplorerURL string `json:"stagenetExplorerUrl"`

	NetType tube.NetworkType `json:"nettype"`

	CoinUnitPlaces        uint8  `json:"coinUnitPlaces"`
	TxMinConfirms         uint64 `json:"txMinConfirms"`
	TxCoinbaseMinConfirms uint64 `json:"txCoinbaseMinConfirms"`

	CoinSymbol      string `json:"coinSymbol"`
	OpenAliasPrefix string `json:"openAliasPrefix"`
	CoinName        string `json:"coinName"`
	CoinURIPrefix   string `json:"coinUriPrefix"`

	AddressPrefix                   uint64 `json:"addressPrefix"`
	IntegratedAddressPrefix         uint64 `json:"integratedAddressPrefix"`
	SubAddressPrefix                uint64 `json:"subAddressPrefix"`
	AddressPrefixTestnet            uint64 `json:"addressPrefixTestnet"`
	IntegratedAddressPrefixTestnet  uint64 `json:"integratedAddressPrefixTestnet"`
	SubAddressPrefixTestnet         uint64 `json:"subAddressPrefixTestnet"`
	AddressPrefixStagenet           uint64 `json:"addressPrefixStagenet"`
	IntegratedAddressPrefixStagenet uint64 `json:"integratedAddressPrefixStagenet"`
	SubAddressPrefixStagenet        uint64 `json:"subAddressPrefixStagenet"`

	FeePerKB      types.Amount `json:"feePerKB"`
	DustThreshold types.Amount `json:"dustThreshold"`

	TxChargeRatio   float64 `json:"txChargeRatio"`
	DefaultMixin    uint64  `json:"defaultMixin"`
	TxChargeAddress string  `json:"txChargeAddress"`

	IdleTimeout         uint64 `json:"idleTimeout"`
	IdleWarningDuration uint64 `json:"idleWarningDuration"`

	MaxBlockNumber uint64 `json:"maxBlockNumber"`
	AvgBlockTime   uint64 `json:"avgBlockTime"`

	DebugMode bool `json:"debugMode"`
}

// documentKeys lists the json keys of document in declaration order.
var documentKeys = func() (keys []string) {
	t := reflect.TypeOf(document{})
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, t.Field(i).Tag.Get("json"))
	}
	return keys
}()

func newDocument(s Set) *document {
	return &document{
		APIURL:              s.APIURL,
		MainnetExplorerURL:  s.ExplorerURLs[tube.NetworkMainnet],
		TestnetExplorerURL:  s.ExplorerURLs[tube.NetworkTestnet],
		StagenetExplorerURL: s.ExplorerURLs[tube.NetworkStagenet],

		NetType: s.NetworkType,

		CoinUnitPlaces:        s.CoinUnitPlaces,
		TxMinConfirms:         s.TxMinConfirms,
		TxCoinbaseMinConfirms: s.TxCoinbaseMinConfirms,

		CoinSymbol:      s.CoinSymbol,
		OpenAliasPrefix: s.OpenAliasPrefix,
		CoinName:        s.CoinName,
		CoinURIPrefix:   s.CoinURIPrefix,

		AddressPrefix:                   s.Prefixes[tube.NetworkMainnet].Address,
		IntegratedAddressPrefix:         s.Prefixes[tube.NetworkMainnet].Integrated,
		SubAddressPrefix:                s.Prefixes[tube.NetworkMainnet].Subaddress,
		AddressPrefixTestnet:            s.Prefixes[tube.NetworkTestnet].Address,
		IntegratedAddressPrefixTestnet:  s.Prefixes[tube.NetworkTestnet].Integrated,
		SubAddressPrefixTestnet:         s.Prefixes[tube.NetworkTestnet].Subaddress,
		AddressPrefixStagenet:           s.Prefixes[tube.NetworkStagenet].Address,
		IntegratedAddressPrefixStagenet: s.Prefixes[tube.NetworkStagenet].Integrated,
		SubAddressPrefixStagenet:        s.Prefixes[tube.NetworkStagenet].Subaddress,

		FeePerKB:      s.FeePerKB,
		DustThreshold: s.DustThreshold,

		TxChargeRatio:   s.TxChargeRatio,
		DefaultMixin:    s.DefaultMixin,
		TxChargeAddress: s.TxChargeAddress,

		IdleTimeout:         s.IdleTimeout,
		IdleWarningDuration: s.IdleWarningDuration,

		MaxBlockNumber: s.MaxBlockNumber,
		AvgBlockTime:   s.AvgBlockTime,

		DebugMode: s.DebugMode,
	}
}

func (d *document) set() Set {
	return Set{
		APIURL: d.APIURL,
		ExplorerURLs: [tube.NetworkCount]string{
			tube.NetworkMainnet:  d.MainnetExplorerURL,
			tube.NetworkTestnet:  d.TestnetExplorerURL,
			tube.NetworkStagenet: d.StagenetExplorerURL,
		},
		NetworkType: d.NetType,

		CoinUnitPlaces:        d.CoinUnitPlaces,
		TxMinConfirms:         d.TxMinConfirms,
		TxCoinbaseMinConfirms: d.TxCoinbaseMinConfirms,

		CoinSymbol:      d.CoinSymbol,
		CoinName:        d.CoinName,
		CoinURIPrefix:   d.CoinURIPrefix,
		OpenAliasPrefix: d.OpenAliasPrefix,

		Prefixes: [tube.NetworkCount]address.Prefixes{
			tube.NetworkMainnet: {
				Address:    d.AddressPrefix,
				Integrated: d.IntegratedAddressPrefix,
				Subaddress: d.SubAddressPrefix,
			},
			tube.NetworkTestnet: {
				Address:    d.AddressPrefixTestnet,
				Integrated: d.IntegratedAddressPrefixTestnet,
				Subaddress: d.SubAddressPrefixTestnet,
			},
			tube.NetworkStagenet: {
				Address:    d.AddressPrefixStagenet,
				Integrated: d.IntegratedAddressPrefixStagenet,
				Subaddress: d.SubAddressPrefixStagenet,
			},
		},

		FeePerKB:      d.FeePerKB,
		DustThreshold: d.DustThreshold,

		TxChargeRatio:   d.TxChargeRatio,
		TxChargeAddress: d.TxChargeAddress,
		DefaultMixin:    d.DefaultMixin,

		IdleTimeout:         d.IdleTimeout,
		IdleWarningDuration: d.IdleWarningDuration,

		MaxBlockNumber: d.MaxBlockNumber,
		AvgBlockTime:   d.AvgBlockTime,

		DebugMode: d.DebugMode,
	}
}

// FromJSON decodes the wallet config object. Every field is required, null
// counts as missing, and unknown fields are rejected. The result is validated.
func FromJSON(data []byte) (Set, error) {
	var raw map[string]utils.RawJSON
	if err := utils.UnmarshalJSON(data, &raw); err != nil {
		return Set{}, errors.Wrap(err, "decoding parameter object")
	}
	if raw == nil {
		return Set{}, errors.New("decoding parameter object: not an object")
	}

	var d document
	fields := reflect.ValueOf(&d).Elem()
	for i, key := range documentKeys {
		value, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return Set{}, missing(key)
		}
		if err := utils.UnmarshalJSON(value, fields.Field(i).Addr().Interface()); err != nil {
			return Set{}, fieldError(key, errors.Wrap(ErrInvalidField, err.Error()))
		}
		delete(raw, key)
	}

	if len(raw) > 0 {
		unknown := make([]string, 0, len(raw))
		for key := range raw {
			unknown = append(unknown, key)
		}
		sort.Strings(unknown)
		return Set{}, fieldError(unknown[0], errors.Wrapf(ErrUnknownField, "unexpected %s", strings.Join(unknown, ", ")))
	}

	s := d.set()
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// ToJSON encodes s in the wallet config object shape, amounts quoted.
func ToJSON(s Set) ([]byte, error) {
	return utils.MarshalJSON(newDocument(s))
}

func ToJSONIndent(s Set) ([]byte, error) {
	return utils.MarshalJSONIndent(newDocument(s), "    ")
}
