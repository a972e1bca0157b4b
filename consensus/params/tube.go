package params

import (
	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/tube/address"
	"github.com/bittube/tube-params/consensus/types"
)

// TubeParams is the shipped parameter set of the TUBE web wallet.
var TubeParams = Set{
	APIURL: "http://67.211.220.134:8088/",
	ExplorerURLs: [tube.NetworkCount]string{
		tube.NetworkMainnet:  "http://explorer.bit.tube/",
		tube.NetworkTestnet:  "https://testnet.xmrchain.com/",
		tube.NetworkStagenet: "http://162.210.173.150:8083/",
	},
	NetworkType: tube.NetworkMainnet,

	CoinUnitPlaces: tube.CoinUnitPlaces,

	TxMinConfirms:         tube.TxSpendableAge,
	TxCoinbaseMinConfirms: tube.MinerRewardUnlockTime,

	CoinSymbol:      tube.CoinSymbol,
	CoinName:        tube.CoinName,
	CoinURIPrefix:   tube.CoinURIPrefix,
	OpenAliasPrefix: tube.OpenAliasPrefix,

	Prefixes: [tube.NetworkCount]address.Prefixes{
		tube.NetworkMainnet: {
			Address:    tube.MainAddress,
			Integrated: tube.MainIntegrated,
			Subaddress: tube.MainSubaddress,
		},
		tube.NetworkTestnet: {
			Address:    tube.TestAddress,
			Integrated: tube.TestIntegrated,
			Subaddress: tube.TestSubaddress,
		},
		tube.NetworkStagenet: {
			Address:    tube.StageAddress,
			Integrated: tube.StageIntegrated,
			Subaddress: tube.StageSubaddress,
		},
	},

	FeePerKB:      types.MustAmountFromString(tube.FeePerKB),
	DustThreshold: types.MustAmountFromString(tube.DustThreshold),

	TxChargeRatio:   0.5,
	TxChargeAddress: "",

	DefaultMixin: tube.DefaultMixin,

	IdleTimeout:         30,
	IdleWarningDuration: 20,

	MaxBlockNumber: tube.MaxBlockNumber,
	AvgBlockTime:   tube.BlockTime,

	DebugMode: true,
}
