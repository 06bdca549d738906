package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

func newPricedController() *SyncController {
	c := NewSyncController("ETH", "USDC")
	c.SetPriceMapping(mappingOf(map[string]string{
		"ETH":  "2000",
		"USDC": "1",
		"ATOM": "8",
	}))
	return c
}

func TestSyncController_EditSource(t *testing.T) {
	c := newPricedController()

	state := c.EditSource("1.5")

	assert.Equal(t, models.SideSource, state.LastEditedSide)
	assert.Equal(t, "1.5", state.SourceAmount)
	assert.Equal(t, "3000.000000", state.DestAmount)
}

func TestSyncController_EditDest(t *testing.T) {
	c := newPricedController()

	state := c.EditDest("500")

	assert.Equal(t, models.SideDest, state.LastEditedSide)
	assert.Equal(t, "500", state.DestAmount)
	assert.Equal(t, "0.250000", state.SourceAmount)
}

func TestSyncController_InvalidAuthoritativeAmount(t *testing.T) {
	tests := []struct {
		name   string
		edit   func(c *SyncController) models.ConversionState
		source string
		dest   string
	}{
		{
			name:   "empty_source_clears_dest",
			edit:   func(c *SyncController) models.ConversionState { c.EditSource("1"); return c.EditSource("") },
			source: "",
			dest:   "",
		},
		{
			name:   "garbage_source_clears_dest",
			edit:   func(c *SyncController) models.ConversionState { c.EditSource("1"); return c.EditSource("1..2") },
			source: "1..2",
			dest:   "",
		},
		{
			name:   "empty_dest_clears_source",
			edit:   func(c *SyncController) models.ConversionState { c.EditDest("10"); return c.EditDest("") },
			source: "",
			dest:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.edit(newPricedController())
			assert.Equal(t, tt.source, state.SourceAmount)
			assert.Equal(t, tt.dest, state.DestAmount)
		})
	}
}

func TestSyncController_ZeroRate(t *testing.T) {
	c := NewSyncController("ETH", "UNKNOWN")
	c.SetPriceMapping(mappingOf(map[string]string{"ETH": "2000"}))

	state := c.EditSource("2")
	assert.Equal(t, "0.000000", state.DestAmount, "forward derivation always proceeds")

	state = c.EditDest("7")
	assert.Equal(t, "2", state.SourceAmount, "reverse derivation leaves the source untouched")
	assert.Equal(t, "7", state.DestAmount)
}

func TestSyncController_PriceChangeRecomputesDerivedOnly(t *testing.T) {
	c := newPricedController()
	c.EditSource("1")

	state := c.SetPriceMapping(mappingOf(map[string]string{"ETH": "2500", "USDC": "1"}))
	assert.Equal(t, "1", state.SourceAmount)
	assert.Equal(t, "2500.000000", state.DestAmount)

	c.EditDest("1000")
	state = c.SetPriceMapping(mappingOf(map[string]string{"ETH": "4000", "USDC": "1"}))
	assert.Equal(t, "1000", state.DestAmount)
	assert.Equal(t, "0.250000", state.SourceAmount)
}

func TestSyncController_NoFeedbackLoop(t *testing.T) {
	c := newPricedController()
	var states []models.ConversionState
	c.OnChange(func(s models.ConversionState) { states = append(states, s) })

	c.EditSource("0.1")
	c.SetPriceMapping(mappingOf(map[string]string{"ETH": "1999.5", "USDC": "1"}))
	c.SetDestAsset("ETH")
	c.SetSourceAsset("USDC")

	for _, s := range states {
		assert.Equal(t, "0.1", s.SourceAmount, "authoritative amount must never be rewritten")
	}
	assert.Len(t, states, 4)
}

func TestSyncController_UnchangedRateKeepsDisplayedValues(t *testing.T) {
	c := newPricedController()
	c.EditSource("1")
	c.SwapAssets()
	before := c.State()

	calls := 0
	c.OnChange(func(models.ConversionState) { calls++ })
	state := c.SetPriceMapping(mappingOf(map[string]string{
		"ETH":  "2000",
		"USDC": "1",
		"ATOM": "9",
	}))

	assert.Equal(t, before, state)
	assert.Equal(t, 0, calls)
}

func TestSyncController_AssetChange(t *testing.T) {
	c := newPricedController()
	c.EditSource("2")

	state := c.SetDestAsset("ATOM")
	assert.Equal(t, "2", state.SourceAmount)
	assert.Equal(t, "500.000000", state.DestAmount)

	c.EditDest("16")
	state = c.SetSourceAsset("USDC")
	assert.Equal(t, "16", state.DestAmount)
	assert.Equal(t, "128.000000", state.SourceAmount)
}

func TestSyncController_SwapAssets(t *testing.T) {
	c := newPricedController()
	c.EditSource("1.5")

	state := c.SwapAssets()

	assert.Equal(t, "USDC", state.SourceAsset)
	assert.Equal(t, "ETH", state.DestAsset)
	assert.Equal(t, "3000.000000", state.SourceAmount)
	assert.Equal(t, "1.5", state.DestAmount)
	assert.Equal(t, models.SideDest, state.LastEditedSide)
	assert.Equal(t, "0.0005", c.Rate().String())
}

func TestSyncController_SwapIsInvolution(t *testing.T) {
	setups := map[string]func(c *SyncController){
		"source_edited": func(c *SyncController) { c.EditSource("0.123") },
		"dest_edited":   func(c *SyncController) { c.EditDest("77.7") },
		"nothing":       func(c *SyncController) {},
		"invalid":       func(c *SyncController) { c.EditSource("x") },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			c := newPricedController()
			setup(c)
			original := c.State()

			c.SwapAssets()
			assert.Equal(t, original, c.SwapAssets())
		})
	}
}

func TestSyncController_ClearAmounts(t *testing.T) {
	c := newPricedController()
	c.EditDest("10")

	state := c.ClearAmounts()

	assert.Equal(t, "", state.SourceAmount)
	assert.Equal(t, "", state.DestAmount)
	assert.Equal(t, models.SideDest, state.LastEditedSide)
	assert.Equal(t, "ETH", state.SourceAsset)
}

func TestSyncController_Quote(t *testing.T) {
	c := newPricedController()
	c.EditSource("1")

	quote := c.Quote()

	assert.Equal(t, "1", quote.SourceAmount)
	assert.Equal(t, "2000", quote.Rate.String())
	assert.Equal(t, "2000", quote.SourcePrice.String())
	assert.Equal(t, "1", quote.DestPrice.String())
	assert.True(t, c.Tradable("ATOM"))
	assert.False(t, c.Tradable("DOGE"))
}
