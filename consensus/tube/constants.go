package tube

// Coin identity
const (
	CoinSymbol      = "TUBE"
	CoinName        = "Tube"
	CoinURIPrefix   = "tube:"
	OpenAliasPrefix = "tube"

	// CoinUnitPlaces decimal digits between atomic units and one TUBE
	CoinUnitPlaces = 8
)

// Address prefixes (full varint values)
const (
	MainAddress    uint64 = 0xd1
	MainIntegrated uint64 = 0x404f
	MainSubaddress uint64 = 0x3750

	TestAddress    uint64 = 53
	TestIntegrated uint64 = 54
	TestSubaddress uint64 = 63

	StageAddress    uint64 = 24
	StageIntegrated uint64 = 25
	StageSubaddress uint64 = 36
)

// Spendable age, in blocks
const (
	TxSpendableAge        = 10 // CRYPTONOTE_DEFAULT_TX_SPENDABLE_AGE
	MinerRewardUnlockTime = 10 // CRYPTONOTE_MINED_MONEY_UNLOCK_WINDOW
)

// Fee parameters, atomic units
const (
	// FeePerKB is legacy, fees are dynamic
	FeePerKB      = "2000000000"
	DustThreshold = "10000000"

	DefaultMixin = 2
)

// Block timing
const (
	DifficultyTarget = 120 // seconds per block
	BlockTime        = DifficultyTarget

	// MaxBlockNumber unlock_time values below this are heights, above are unix timestamps
	MaxBlockNumber = 500000000
)
