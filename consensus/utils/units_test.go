package utils

import (
	"errors"
	"math/big"
	"testing"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		atomic int64
		places uint8
		want   string
	}{
		{0, 8, "0.00000000"},
		{1, 8, "0.00000001"},
		{150000000, 8, "1.50000000"},
		{2000000000, 8, "20.00000000"},
		{10000000, 8, "0.10000000"},
		{-5, 2, "-0.05"},
		{12345, 0, "12345"},
	}

	for _, tt := range tests {
		if got := FormatUnits(big.NewInt(tt.atomic), tt.places); got != tt.want {
			t.Fatalf("FormatUnits(%d, %d): expected %s, got %s", tt.atomic, tt.places, tt.want, got)
		}
	}

	if got := FormatUnits(nil, 2); got != "0.00" {
		t.Fatalf("FormatUnits(nil): expected 0.00, got %s", got)
	}
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1", 100000000},
		{"1.5", 150000000},
		{".5", 50000000},
		{"0.00000001", 1},
		{"20.00000000", 2000000000},
		{"007", 700000000},
	}

	for _, tt := range tests {
		v, err := ParseUnits(tt.in, 8)
		if err != nil {
			t.Fatalf("ParseUnits(%q): %s", tt.in, err)
		}
		if v.Cmp(big.NewInt(tt.want)) != 0 {
			t.Fatalf("ParseUnits(%q): expected %d, got %s", tt.in, tt.want, v)
		}
	}
}

func TestParseUnitsRejects(t *testing.T) {
	for _, in := range []string{"", ".", "1.", "-1", "+1", "1e8", "1.2.3", "abc", " 1"} {
		if _, err := ParseUnits(in, 8); !errors.Is(err, ErrInvalidUnits) {
			t.Fatalf("ParseUnits(%q): expected ErrInvalidUnits, got %v", in, err)
		}
	}

	if _, err := ParseUnits("0.000000001", 8); !errors.Is(err, ErrTooManyDecimals) {
		t.Fatalf("expected ErrTooManyDecimals, got %v", err)
	}
}

func TestUnitsRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00000000", "1.00000000", "123456789012345678901.23456789"} {
		v, err := ParseUnits(s, 8)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatUnits(v, 8); got != s {
			t.Fatalf("round trip: expected %s, got %s", s, got)
		}
	}
}
