package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bittube/tube-params/consensus/types"
	"github.com/bittube/tube-params/consensus/utils"
	"github.com/pkg/errors"
	fasthex "github.com/tmthrgd/go-hex"
)

const TxIdSize = 32

var ErrInvalidTxId = errors.New("transaction id must be 64 hexadecimal characters")

// FormatAmount renders atomic units in display units with CoinUnitPlaces decimals.
func (s Set) FormatAmount(a types.Amount) string {
	return utils.FormatUnits(a.Big(), s.CoinUnitPlaces)
}

// ParseAmount converts a display unit string such as "1.5" to atomic units.
func (s Set) ParseAmount(v string) (types.Amount, error) {
	atomic, err := utils.ParseUnits(v, s.CoinUnitPlaces)
	if err != nil {
		return types.ZeroAmount, err
	}
	return types.AmountFromBig(atomic)
}

// ExplorerTxURL links a transaction on the active network's explorer.
func (s Set) ExplorerTxURL(txId string) (string, error) {
	var id [TxIdSize]byte
	if len(txId) != TxIdSize*2 {
		return "", ErrInvalidTxId
	}
	if _, err := fasthex.Decode(id[:], []byte(txId)); err != nil {
		return "", ErrInvalidTxId
	}
	return s.explorerLink("tx", fasthex.EncodeToString(id[:]))
}

func (s Set) ExplorerBlockURL(height uint64) (string, error) {
	return s.explorerLink("block", strconv.FormatUint(height, 10))
}

func (s Set) explorerLink(kind, id string) (string, error) {
	link, err := url.JoinPath(s.ExplorerURL(), kind, id)
	if err != nil {
		return "", errors.Wrap(err, "building explorer link")
	}
	return link, nil
}

// RequiredConfirmations is the depth an output needs before it can be spent.
func (s Set) RequiredConfirmations(coinbase bool) uint64 {
	if coinbase {
		return s.TxCoinbaseMinConfirms
	}
	return s.TxMinConfirms
}

func (s Set) IsSpendable(confirmations uint64, coinbase bool) bool {
	return confirmations >= s.RequiredConfirmations(coinbase)
}

// IsBlockHeight reports whether an unlock_time value is a block height. Values
// at or above MaxBlockNumber are unix timestamps.
func (s Set) IsBlockHeight(v uint64) bool {
	return v < s.MaxBlockNumber
}

// BlocksDuration estimates how long n blocks take to be mined. It saturates at
// the largest time.Duration.
func (s Set) BlocksDuration(n uint64) time.Duration {
	if n == 0 || s.AvgBlockTime == 0 {
		return 0
	}
	perBlock := s.AvgBlockTime * uint64(time.Second)
	if s.AvgBlockTime > math.MaxInt64/uint64(time.Second) || n > math.MaxInt64/perBlock {
		return math.MaxInt64
	}
	return time.Duration(n * perBlock)
}

// UnlockETA estimates when an output with unlockTime becomes unlocked. Locks
// already in the past, or unset, return now.
func (s Set) UnlockETA(unlockTime, currentHeight uint64, now time.Time) time.Time {
	if s.IsBlockHeight(unlockTime) {
		if unlockTime <= currentHeight {
			return now
		}
		return now.Add(s.BlocksDuration(unlockTime - currentHeight))
	}

	if unlockTime > math.MaxInt64 {
		unlockTime = math.MaxInt64
	}
	at := time.Unix(int64(unlockTime), 0)
	if at.Before(now) {
		return now
	}
	return at
}

func (s Set) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Second
}

func (s Set) IdleWarningPeriod() time.Duration {
	return time.Duration(s.IdleWarningDuration) * time.Second
}

// IdleWarningAfter is the inactivity after which the lockout warning shows,
// leaving IdleWarningDuration until the session is locked.
func (s Set) IdleWarningAfter() time.Duration {
	return s.IdleTimeoutDuration() - s.IdleWarningPeriod()
}

// PaymentURI builds a coin URI such as "tube:<address>?tx_amount=1.5".
// The address is used verbatim.
func (s Set) PaymentURI(address string, amount types.Amount, description string) string {
	var sb strings.Builder
	sb.WriteString(s.CoinURIPrefix)
	sb.WriteString(address)

	query := url.Values{}
	if !amount.IsZero() {
		v := s.FormatAmount(amount)
		if strings.Contains(v, ".") {
			v = strings.TrimRight(strings.TrimRight(v, "0"), ".")
		}
		query.Set("tx_amount", v)
	}
	if description != "" {
		query.Set("tx_description", description)
	}
	if len(query) > 0 {
		sb.WriteByte('?')
		sb.WriteString(query.Encode())
	}
	return sb.String()
}

// ChargeSplit divides fee between the charge address and the rest. Without a
// charge address nothing is routed.
func (s Set) ChargeSplit(fee types.Amount) (charge, rest types.Amount) {
	if s.TxChargeAddress == "" {
		return types.ZeroAmount, fee
	}
	charge = fee.MulRatio(s.TxChargeRatio)
	return charge, fee.Sub(charge)
}
