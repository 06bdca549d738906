package models

import "github.com/shopspring/decimal"

// Side names one of the two amount fields.
type Side string

const (
	SideSource Side = "source"
	SideDest   Side = "dest"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideSource {
		return SideDest
	}
	return SideSource
}

// Direction tells which way an amount is converted.
type Direction int

const (
	// Forward derives the destination amount from the source amount.
	Forward Direction = iota
	// Reverse derives the source amount from the destination amount.
	Reverse
)

// Default trading pair shown before the user picks anything.
const (
	DefaultSourceAsset = "ETH"
	DefaultDestAsset   = "USDC"
)

// ConversionState is the pair of linked amount fields and their assets.
// The amount on LastEditedSide is authoritative, the other one is derived.
// An empty amount means nothing was entered, which is not the same as "0".
type ConversionState struct {
	SourceAsset    string `json:"source_asset"`
	DestAsset      string `json:"dest_asset"`
	SourceAmount   string `json:"source_amount"`
	DestAmount     string `json:"dest_amount"`
	LastEditedSide Side   `json:"last_edited_side"`
}

// Authoritative returns the amount the user typed last.
func (s ConversionState) Authoritative() string {
	if s.LastEditedSide == SideDest {
		return s.DestAmount
	}
	return s.SourceAmount
}

// Quote is the conversion state as shown to the user, with the rate and prices behind it.
type Quote struct {
	ConversionState
	Rate        decimal.Decimal `json:"rate"`
	SourcePrice decimal.Decimal `json:"source_price"`
	DestPrice   decimal.Decimal `json:"dest_price"`
}
