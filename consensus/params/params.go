// Package params holds the network parameter set consumed by the TUBE wallet
// front-end and its collaborators: endpoints, address prefixes, unit and fee
// constants, confirmation depths and UI timing.
//
// A Set is a plain value. Arrays are used instead of maps and amounts are
// immutable, so copies never alias each other.
package params

import (
	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/tube/address"
	"github.com/bittube/tube-params/consensus/types"
)

type Set struct {
	// APIURL base URL of the backend RPC/query service
	APIURL string

	// ExplorerURLs block explorer base URL per network, indexed by tube.NetworkType
	ExplorerURLs [tube.NetworkCount]string

	// NetworkType selects the active explorer URL and address prefixes
	NetworkType tube.NetworkType

	CoinUnitPlaces uint8

	TxMinConfirms         uint64
	TxCoinbaseMinConfirms uint64

	CoinSymbol      string
	CoinName        string
	CoinURIPrefix   string
	OpenAliasPrefix string

	// Prefixes address version tags per network, indexed by tube.NetworkType
	Prefixes [tube.NetworkCount]address.Prefixes

	// FeePerKB legacy, fees are dynamic now
	FeePerKB types.Amount
	// DustThreshold used for choosing outputs and change
	DustThreshold types.Amount

	// TxChargeRatio fraction of the fee routed to TxChargeAddress
	TxChargeRatio   float64
	TxChargeAddress string

	DefaultMixin uint64

	// IdleTimeout and IdleWarningDuration are in seconds
	IdleTimeout         uint64
	IdleWarningDuration uint64

	MaxBlockNumber uint64
	// AvgBlockTime seconds
	AvgBlockTime uint64

	DebugMode bool
}

func (s Set) ExplorerURL() string {
	return s.ExplorerURLFor(s.NetworkType)
}

func (s Set) ExplorerURLFor(n tube.NetworkType) string {
	if !n.Valid() {
		return ""
	}
	return s.ExplorerURLs[n]
}

func (s Set) AddressPrefixes() address.Prefixes {
	return s.AddressPrefixesFor(s.NetworkType)
}

func (s Set) AddressPrefixesFor(n tube.NetworkType) address.Prefixes {
	if !n.Valid() {
		return address.Prefixes{}
	}
	return s.Prefixes[n]
}

// AddressPrefix is the standard address tag of the active network.
func (s Set) AddressPrefix() uint64 {
	return s.AddressPrefixes().Address
}

func (s Set) IntegratedAddressPrefix() uint64 {
	return s.AddressPrefixes().Integrated
}

func (s Set) SubAddressPrefix() uint64 {
	return s.AddressPrefixes().Subaddress
}

// Equals compares every field, amounts by value.
func (s Set) Equals(o Set) bool {
	if !s.FeePerKB.Equals(o.FeePerKB) || !s.DustThreshold.Equals(o.DustThreshold) {
		return false
	}
	s.FeePerKB, o.FeePerKB = types.ZeroAmount, types.ZeroAmount
	s.DustThreshold, o.DustThreshold = types.ZeroAmount, types.ZeroAmount
	return s == o
}
