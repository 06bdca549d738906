package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is a single entry of the upstream price feed as it arrives on the wire.
type PriceRecord struct {
	Currency string          `json:"currency"` // Asset symbol as published by the feed
	Date     string          `json:"date"`     // ISO-8601 observation timestamp
	Price    decimal.Decimal `json:"price"`    // Price of one unit of the asset
}

// PriceObservation is a decoded price of one asset at one instant.
type PriceObservation struct {
	Asset      string          `json:"asset"`       // Asset symbol, used verbatim as the mapping key
	Price      decimal.Decimal `json:"price"`       // Non-negative price
	ObservedAt time.Time       `json:"observed_at"` // When the price was observed
}

// PriceMapping holds the latest observation per asset.
type PriceMapping map[string]PriceObservation

// Price returns the price of asset, or zero when the asset is unknown.
func (m PriceMapping) Price(asset string) decimal.Decimal {
	if obs, ok := m[asset]; ok {
		return obs.Price
	}
	return decimal.Zero
}

// Has reports whether asset is tradable in the mapping.
func (m PriceMapping) Has(asset string) bool {
	_, ok := m[asset]
	return ok
}

// Clone returns a copy that shares nothing with m.
func (m PriceMapping) Clone() PriceMapping {
	out := make(PriceMapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// PriceSnapshot is the read-only view of the price feed handed to observers.
type PriceSnapshot struct {
	Mapping   PriceMapping
	Assets    []string // Sorted asset symbols
	Loading   bool     // True only while the first load is in flight
	Err       error    // Non-nil only when no data could ever be loaded
	UpdatedAt time.Time
}
