package services

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

const (
	// AmountPlaces is the number of decimals every derived amount is rounded to.
	AmountPlaces = 6
	// ratePlaces bounds the precision of divisions before display rounding.
	ratePlaces = 18
	// maxAmountLength caps user input before it reaches the decimal parser.
	maxAmountLength = 64
)

// plainDecimal matches unsigned decimals without exponent.
var plainDecimal = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// Rate returns how many units of destAsset one unit of sourceAsset buys.
// It is zero when either asset is unknown or priced at zero.
func Rate(sourceAsset, destAsset string, mapping models.PriceMapping) decimal.Decimal {
	sourcePrice := mapping.Price(sourceAsset)
	destPrice := mapping.Price(destAsset)
	if !sourcePrice.IsPositive() || !destPrice.IsPositive() {
		return decimal.Zero
	}
	return sourcePrice.DivRound(destPrice, ratePlaces)
}

// Derive converts amount across rate and formats the result with AmountPlaces decimals.
//
// An empty, non-numeric or negative amount yields "" with ok set. A Reverse
// derivation over a non-positive rate yields ok == false: the caller must keep
// whatever value it currently shows.
func Derive(amount string, rate decimal.Decimal, direction models.Direction) (derived string, ok bool) {
	value, valid := ParseAmount(amount)
	if !valid {
		return "", true
	}

	if direction == models.Reverse {
		if !rate.IsPositive() {
			return "", false
		}
		return value.DivRound(rate, ratePlaces).StringFixed(AmountPlaces), true
	}

	return value.Mul(rate).StringFixed(AmountPlaces), true
}

// ParseAmount parses a user-entered amount. Only non-negative decimals in
// plain notation of at most maxAmountLength characters are valid.
func ParseAmount(amount string) (decimal.Decimal, bool) {
	if amount == "" || len(amount) > maxAmountLength || !plainDecimal.MatchString(amount) {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(amount)
	if err != nil || value.IsNegative() {
		return decimal.Zero, false
	}
	return value, true
}
