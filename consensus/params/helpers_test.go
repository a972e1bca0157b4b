package params

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/bittube/tube-params/consensus/tube"
	"github.com/bittube/tube-params/consensus/types"
	"github.com/bittube/tube-params/consensus/utils"
)

func TestFormatParseAmount(t *testing.T) {
	s := TubeParams

	tests := []struct {
		atomic  uint64
		display string
	}{
		{0, "0.00000000"},
		{1, "0.00000001"},
		{150000000, "1.50000000"},
		{2000000000, "20.00000000"},
	}
	for _, tt := range tests {
		if v := s.FormatAmount(types.AmountFrom64(tt.atomic)); v != tt.display {
			t.Fatalf("FormatAmount(%d) = %q, expected %q", tt.atomic, v, tt.display)
		}
		a, err := s.ParseAmount(tt.display)
		if err != nil {
			t.Fatal(err)
		}
		if !a.Equals(types.AmountFrom64(tt.atomic)) {
			t.Fatalf("ParseAmount(%q) = %s, expected %d", tt.display, a, tt.atomic)
		}
	}

	if _, err := s.ParseAmount("1.123456789"); !errors.Is(err, utils.ErrTooManyDecimals) {
		t.Fatalf("expected ErrTooManyDecimals, got %v", err)
	}
	if _, err := s.ParseAmount("-1"); !errors.Is(err, utils.ErrInvalidUnits) {
		t.Fatalf("expected ErrInvalidUnits, got %v", err)
	}
}

func TestExplorerLinks(t *testing.T) {
	const txId = "9D1F5C0A3D8B7E5F6A4B3C2D1E0F9A8B7C6D5E4F3A2B1C0D9E8F7A6B5C4D3E2F"

	link, err := TubeParams.ExplorerTxURL(txId)
	if err != nil {
		t.Fatal(err)
	}
	if link != "http://explorer.bit.tube/tx/"+strings.ToLower(txId) {
		t.Fatalf("unexpected tx link %s", link)
	}

	link, err = TubeParams.ExplorerBlockURL(12345)
	if err != nil {
		t.Fatal(err)
	}
	if link != "http://explorer.bit.tube/block/12345" {
		t.Fatalf("unexpected block link %s", link)
	}

	s := TubeParams
	s.NetworkType = tube.NetworkTestnet
	link, err = s.ExplorerBlockURL(1)
	if err != nil {
		t.Fatal(err)
	}
	if link != "https://testnet.xmrchain.com/block/1" {
		t.Fatalf("unexpected testnet block link %s", link)
	}

	for _, bad := range []string{"", "abcd", txId[:63] + "z", txId + "00"} {
		if _, err = TubeParams.ExplorerTxURL(bad); !errors.Is(err, ErrInvalidTxId) {
			t.Fatalf("%q: expected ErrInvalidTxId, got %v", bad, err)
		}
	}
}

func TestConfirmations(t *testing.T) {
	s := TubeParams
	s.TxCoinbaseMinConfirms = 60

	if s.RequiredConfirmations(false) != 10 || s.RequiredConfirmations(true) != 60 {
		t.Fatal("wrong confirmation depth")
	}
	if s.IsSpendable(9, false) || !s.IsSpendable(10, false) {
		t.Fatal("regular output spendability wrong")
	}
	if s.IsSpendable(59, true) || !s.IsSpendable(60, true) {
		t.Fatal("coinbase output spendability wrong")
	}
}

func TestUnlockETA(t *testing.T) {
	s := TubeParams
	now := time.Unix(1700000000, 0)

	if !s.IsBlockHeight(499999999) || s.IsBlockHeight(500000000) {
		t.Fatal("block height boundary wrong")
	}

	tests := []struct {
		name               string
		unlockTime, height uint64
		expected           time.Time
	}{
		{"unset", 0, 100, now},
		{"height reached", 100, 100, now},
		{"height ahead", 110, 100, now.Add(10 * 120 * time.Second)},
		{"timestamp ahead", 1800000000, 100, time.Unix(1800000000, 0)},
		{"timestamp passed", 1600000000, 100, now},
		{"distant height", 400000000, 1000000, now.Add(math.MaxInt64)},
		{"timestamp beyond int64", math.MaxUint64, 1000000, time.Unix(math.MaxInt64, 0)},
	}
	for _, tt := range tests {
		eta := s.UnlockETA(tt.unlockTime, tt.height, now)
		if !eta.Equal(tt.expected) {
			t.Fatalf("%s: got %s, expected %s", tt.name, eta, tt.expected)
		}
		if eta.Before(now) {
			t.Fatalf("%s: unlock estimated in the past: %s", tt.name, eta)
		}
	}
}

func TestBlocksDuration(t *testing.T) {
	s := TubeParams

	tests := []struct {
		blocks   uint64
		expected time.Duration
	}{
		{0, 0},
		{1, 2 * time.Minute},
		{720, 24 * time.Hour},
		{math.MaxInt64 / uint64(120*time.Second), time.Duration(math.MaxInt64/uint64(120*time.Second)) * 120 * time.Second},
		{math.MaxInt64/uint64(120*time.Second) + 1, math.MaxInt64},
		{400000000, math.MaxInt64},
		{math.MaxUint64, math.MaxInt64},
	}
	for _, tt := range tests {
		if d := s.BlocksDuration(tt.blocks); d != tt.expected {
			t.Fatalf("BlocksDuration(%d) = %d, expected %d", tt.blocks, d, tt.expected)
		}
	}

	s.AvgBlockTime = math.MaxUint64
	if d := s.BlocksDuration(1); d != math.MaxInt64 {
		t.Fatalf("huge block time did not saturate: %d", d)
	}
}

func TestIdleDurations(t *testing.T) {
	s := TubeParams
	if s.IdleTimeoutDuration() != 30*time.Second {
		t.Fatalf("unexpected idle timeout %s", s.IdleTimeoutDuration())
	}
	if s.IdleWarningPeriod() != 20*time.Second {
		t.Fatalf("unexpected warning period %s", s.IdleWarningPeriod())
	}
	if s.IdleWarningAfter() != 10*time.Second {
		t.Fatalf("unexpected warning delay %s", s.IdleWarningAfter())
	}
}

func TestPaymentURI(t *testing.T) {
	const addr = "bxcTestAddress"
	s := TubeParams

	tests := []struct {
		amount      types.Amount
		description string
		expected    string
	}{
		{types.ZeroAmount, "", "tube:" + addr},
		{types.AmountFrom64(150000000), "", "tube:" + addr + "?tx_amount=1.5"},
		{types.AmountFrom64(2000000000), "", "tube:" + addr + "?tx_amount=20"},
		{types.AmountFrom64(1), "coffee & cake", "tube:" + addr + "?tx_amount=0.00000001&tx_description=coffee+%26+cake"},
	}
	for _, tt := range tests {
		if uri := s.PaymentURI(addr, tt.amount, tt.description); uri != tt.expected {
			t.Fatalf("got %s, expected %s", uri, tt.expected)
		}
	}

	s.CoinUnitPlaces = 0
	if uri := s.PaymentURI(addr, types.AmountFrom64(100), ""); uri != "tube:"+addr+"?tx_amount=100" {
		t.Fatalf("whole unit amount mangled: %s", uri)
	}
}

func TestChargeSplit(t *testing.T) {
	s := TubeParams

	charge, rest := s.ChargeSplit(types.AmountFrom64(2000000000))
	if !charge.IsZero() || !rest.Equals(types.AmountFrom64(2000000000)) {
		t.Fatalf("expected nothing routed without a charge address, got %s / %s", charge, rest)
	}

	s.TxChargeAddress = "bxcChargeAddress"
	charge, rest = s.ChargeSplit(types.AmountFrom64(2000000000))
	if !charge.Equals(types.AmountFrom64(1000000000)) || !rest.Equals(types.AmountFrom64(1000000000)) {
		t.Fatalf("unexpected split %s / %s", charge, rest)
	}

	charge, rest = s.ChargeSplit(types.AmountFrom64(3))
	if !charge.Equals(types.AmountFrom64(1)) || !rest.Equals(types.AmountFrom64(2)) {
		t.Fatalf("odd fee split %s / %s", charge, rest)
	}
}
