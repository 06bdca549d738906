package services

import (
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

type syncActionKind int

const (
	actionEditSource syncActionKind = iota
	actionEditDest
	actionSetSourceAsset
	actionSetDestAsset
	actionSetMapping
	actionSwapAssets
	actionClearAmounts
)

type syncAction struct {
	kind    syncActionKind
	value   string
	mapping models.PriceMapping
}

// SyncController keeps the source and destination amounts consistent.
//
// The field on LastEditedSide is authoritative; the other one is derived from
// it and recomputed only when the user edits, an asset changes or the rate
// changes. A derived value never feeds back into the authoritative one.
// SyncController is not safe for concurrent use; the Engine confines it to
// its event loop.
type SyncController struct {
	state    models.ConversionState
	mapping  models.PriceMapping
	rate     decimal.Decimal
	onChange func(models.ConversionState)
}

// NewSyncController creates a controller for the given pair with no amounts entered.
func NewSyncController(sourceAsset, destAsset string) *SyncController {
	return &SyncController{
		state: models.ConversionState{
			SourceAsset:    sourceAsset,
			DestAsset:      destAsset,
			LastEditedSide: models.SideSource,
		},
		mapping: models.PriceMapping{},
		rate:    decimal.Zero,
	}
}

// OnChange registers the callback invoked whenever the state changes.
func (c *SyncController) OnChange(fn func(models.ConversionState)) {
	c.onChange = fn
}

// State returns the current conversion state.
func (c *SyncController) State() models.ConversionState {
	return c.state
}

// Rate returns the exchange rate for the current pair.
func (c *SyncController) Rate() decimal.Decimal {
	return c.rate
}

// Quote returns the state together with the rate and the prices behind it.
func (c *SyncController) Quote() models.Quote {
	return models.Quote{
		ConversionState: c.state,
		Rate:            c.rate,
		SourcePrice:     c.mapping.Price(c.state.SourceAsset),
		DestPrice:       c.mapping.Price(c.state.DestAsset),
	}
}

// Tradable reports whether asset has a price in the current mapping.
func (c *SyncController) Tradable(asset string) bool {
	return c.mapping.Has(asset)
}

// EditSource makes the source amount authoritative and derives the destination amount.
func (c *SyncController) EditSource(amount string) models.ConversionState {
	return c.dispatch(syncAction{kind: actionEditSource, value: amount})
}

// EditDest makes the destination amount authoritative and derives the source amount.
func (c *SyncController) EditDest(amount string) models.ConversionState {
	return c.dispatch(syncAction{kind: actionEditDest, value: amount})
}

// SetSourceAsset changes the source asset and recomputes the derived amount.
func (c *SyncController) SetSourceAsset(asset string) models.ConversionState {
	return c.dispatch(syncAction{kind: actionSetSourceAsset, value: asset})
}

// SetDestAsset changes the destination asset and recomputes the derived amount.
func (c *SyncController) SetDestAsset(asset string) models.ConversionState {
	return c.dispatch(syncAction{kind: actionSetDestAsset, value: asset})
}

// SetPriceMapping installs new prices. The derived amount is recomputed only
// if the rate for the current pair actually moved.
func (c *SyncController) SetPriceMapping(mapping models.PriceMapping) models.ConversionState {
	return c.dispatch(syncAction{kind: actionSetMapping, mapping: mapping})
}

// SwapAssets exchanges the assets and the displayed amounts as they are and
// flips the authoritative side. Nothing is recomputed, so swapping twice
// restores the exact previous state.
func (c *SyncController) SwapAssets() models.ConversionState {
	return c.dispatch(syncAction{kind: actionSwapAssets})
}

// ClearAmounts empties both amount fields.
func (c *SyncController) ClearAmounts() models.ConversionState {
	return c.dispatch(syncAction{kind: actionClearAmounts})
}

func (c *SyncController) dispatch(action syncAction) models.ConversionState {
	next := c.state
	recompute := false

	switch action.kind {
	case actionEditSource:
		next.LastEditedSide = models.SideSource
		next.SourceAmount = action.value
		recompute = true
	case actionEditDest:
		next.LastEditedSide = models.SideDest
		next.DestAmount = action.value
		recompute = true
	case actionSetSourceAsset:
		next.SourceAsset = action.value
		recompute = true
	case actionSetDestAsset:
		next.DestAsset = action.value
		recompute = true
	case actionSetMapping:
		if action.mapping == nil {
			action.mapping = models.PriceMapping{}
		}
		c.mapping = action.mapping
		recompute = !Rate(next.SourceAsset, next.DestAsset, c.mapping).Equal(c.rate)
	case actionSwapAssets:
		next.SourceAsset, next.DestAsset = next.DestAsset, next.SourceAsset
		next.SourceAmount, next.DestAmount = next.DestAmount, next.SourceAmount
		next.LastEditedSide = next.LastEditedSide.Opposite()
	case actionClearAmounts:
		next.SourceAmount = ""
		next.DestAmount = ""
	}

	c.rate = Rate(next.SourceAsset, next.DestAsset, c.mapping)
	if recompute {
		next = deriveCounterpart(next, c.rate)
	}

	changed := next != c.state
	c.state = next
	if changed && c.onChange != nil {
		c.onChange(next)
	}
	return next
}

// deriveCounterpart recomputes the non-authoritative amount from the authoritative one.
func deriveCounterpart(state models.ConversionState, rate decimal.Decimal) models.ConversionState {
	if state.LastEditedSide == models.SideDest {
		if amount, ok := Derive(state.DestAmount, rate, models.Reverse); ok {
			state.SourceAmount = amount
		}
		return state
	}

	state.DestAmount, _ = Derive(state.SourceAmount, rate, models.Forward)
	return state
}
