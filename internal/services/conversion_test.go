package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

func TestRate(t *testing.T) {
	mapping := mappingOf(map[string]string{
		"ETH":  "1645.93",
		"USDC": "1",
		"ATOM": "7.186",
		"FREE": "0",
	})

	tests := []struct {
		name     string
		source   string
		dest     string
		expected decimal.Decimal
	}{
		{name: "both_priced", source: "ETH", dest: "USDC", expected: dec("1645.93")},
		{name: "inverse", source: "USDC", dest: "ATOM", expected: dec("1").DivRound(dec("7.186"), 18)},
		{name: "same_asset", source: "ATOM", dest: "ATOM", expected: dec("1")},
		{name: "unknown_source", source: "DOGE", dest: "USDC", expected: decimal.Zero},
		{name: "unknown_dest", source: "ETH", dest: "DOGE", expected: decimal.Zero},
		{name: "zero_source_price", source: "FREE", dest: "USDC", expected: decimal.Zero},
		{name: "zero_dest_price", source: "ETH", dest: "FREE", expected: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := Rate(tt.source, tt.dest, mapping)
			assert.True(t, tt.expected.Equal(rate), "expected %s, got %s", tt.expected, rate)
		})
	}
}

func TestRate_EmptyMapping(t *testing.T) {
	assert.True(t, Rate("ETH", "USDC", nil).IsZero())
	assert.True(t, Rate("ETH", "USDC", models.PriceMapping{}).IsZero())
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		rate      decimal.Decimal
		direction models.Direction
		expected  string
		ok        bool
	}{
		{name: "forward", amount: "1.5", rate: dec("2"), direction: models.Forward, expected: "3.000000", ok: true},
		{name: "forward_rounds_to_six_places", amount: "1", rate: dec("0.1234567"), direction: models.Forward, expected: "0.123457", ok: true},
		{name: "forward_zero_rate", amount: "3", rate: decimal.Zero, direction: models.Forward, expected: "0.000000", ok: true},
		{name: "forward_zero_amount", amount: "0", rate: dec("2"), direction: models.Forward, expected: "0.000000", ok: true},
		{name: "reverse", amount: "3", rate: dec("2"), direction: models.Reverse, expected: "1.500000", ok: true},
		{name: "reverse_repeating", amount: "2", rate: dec("3"), direction: models.Reverse, expected: "0.666667", ok: true},
		{name: "reverse_zero_rate_keeps_current", amount: "3", rate: decimal.Zero, direction: models.Reverse, expected: "", ok: false},
		{name: "empty_forward", amount: "", rate: dec("2"), direction: models.Forward, expected: "", ok: true},
		{name: "empty_reverse_zero_rate", amount: "", rate: decimal.Zero, direction: models.Reverse, expected: "", ok: true},
		{name: "non_numeric", amount: "abc", rate: dec("2"), direction: models.Forward, expected: "", ok: true},
		{name: "trailing_garbage", amount: "12abc", rate: dec("2"), direction: models.Forward, expected: "", ok: true},
		{name: "negative", amount: "-1", rate: dec("2"), direction: models.Reverse, expected: "", ok: true},
		{name: "huge_exponent_forward", amount: "1e10000000", rate: dec("2"), direction: models.Forward, expected: "", ok: true},
		{name: "huge_exponent_reverse", amount: "1e10000000", rate: dec("2"), direction: models.Reverse, expected: "", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derived, ok := Derive(tt.amount, tt.rate, tt.direction)
			assert.Equal(t, tt.expected, derived)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDerive_RoundTrip(t *testing.T) {
	mapping := mappingOf(map[string]string{
		"ETH":  "1645.93",
		"USDC": "1",
		"ATOM": "7.186",
		"BLUR": "0.20811525423728813",
		"WBTC": "26002.82202020202",
	})
	amounts := []string{"1", "0.5", "123.456", "0.000123", "10"}
	half := dec("0.0000005")

	for _, a := range SortedAssets(mapping) {
		for _, b := range SortedAssets(mapping) {
			forward := Rate(a, b, mapping)
			backward := Rate(b, a, mapping)
			for _, amount := range amounts {
				there, ok := Derive(amount, forward, models.Forward)
				assert.True(t, ok)
				back, ok := Derive(there, backward, models.Forward)
				assert.True(t, ok)

				// One rounding on each leg; the first one is scaled by the backward rate.
				tolerance := half.Mul(backward).Add(half).Add(dec("0.000000001"))
				diff := dec(back).Sub(dec(amount)).Abs()
				assert.True(t, diff.LessThanOrEqual(tolerance),
					"%s %s->%s->%s = %s, diff %s > %s", amount, a, b, a, back, diff, tolerance)
			}
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"", false},
		{"abc", false},
		{"-0.1", false},
		{"0", true},
		{"0.5", true},
		{".5", true},
		{"1.", true},
		{"007.25", true},
		{"1e3", false},
		{"1E3", false},
		{"1e10000000", false},
		{"+1", false},
		{" 1", false},
		{"1.2.3", false},
		{strings.Repeat("9", maxAmountLength), true},
		{strings.Repeat("9", maxAmountLength+1), false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.amount), func(t *testing.T) {
			_, ok := ParseAmount(tt.amount)
			assert.Equal(t, tt.valid, ok)
		})
	}
}
