package handlers

//go:generate mockgen -source=swap.go -destination=mock_swap.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
)

// SwapController drives the two amount fields and the selected pair.
type SwapController interface {
	Quote(ctx context.Context) (models.Quote, error)
	EditSourceAmount(ctx context.Context, amount string) (models.Quote, error)
	EditDestAmount(ctx context.Context, amount string) (models.Quote, error)
	SetSourceAsset(ctx context.Context, asset string) (models.Quote, error)
	SetDestAsset(ctx context.Context, asset string) (models.Quote, error)
	SwapAssets(ctx context.Context) (models.Quote, error)
}

// AmountRequest represents the JSON body of an amount edit
// swagger:model AmountRequest
type AmountRequest struct {
	// Amount as typed by the user, may be empty
	// default: 1.5
	Amount string `json:"amount"`
}

// AssetRequest represents the JSON body of an asset selection
// swagger:model AssetRequest
type AssetRequest struct {
	// Asset symbol
	// required: true
	// default: ETH
	Asset string `json:"asset"`
}

// QuoteResponse represents the swap form
// swagger:model QuoteResponse
type QuoteResponse struct {
	// Asset to sell
	// default: ETH
	SourceAsset string `json:"source_asset"`

	// Asset to buy
	// default: USDC
	DestAsset string `json:"dest_asset"`

	// Amount to sell
	// default: 1.5
	SourceAmount string `json:"source_amount"`

	// Amount to buy
	// default: 2468.895000
	DestAmount string `json:"dest_amount"`

	// Side the user edited last
	// default: source
	LastEditedSide string `json:"last_edited_side"`

	// Units of dest per unit of source, 0 when unknown
	// default: 1645.93
	Rate string `json:"rate"`

	// USD price of the source asset
	SourcePrice string `json:"source_price"`

	// USD price of the dest asset
	DestPrice string `json:"dest_price"`
}

func newQuoteResponse(q models.Quote) QuoteResponse {
	return QuoteResponse{
		SourceAsset:    q.SourceAsset,
		DestAsset:      q.DestAsset,
		SourceAmount:   q.SourceAmount,
		DestAmount:     q.DestAmount,
		LastEditedSide: string(q.LastEditedSide),
		Rate:           q.Rate.String(),
		SourcePrice:    q.SourcePrice.String(),
		DestPrice:      q.DestPrice.String(),
	}
}

func writeQuote(w http.ResponseWriter, quote models.Quote, err error) {
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownAsset):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEngineStopped):
			writeError(w, http.StatusServiceUnavailable, "Service unavailable")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, newQuoteResponse(quote))
}

// NewGetSwapHandler returns the current swap form.
// @Summary Get swap form
// @Description Returns both amounts, the selected pair and the current rate
// @Tags swap
// @Produce json
// @Success 200 {object} handlers.QuoteResponse "Swap form"
// @Failure 503 {object} handlers.ErrorResponse "Service unavailable"
// @Router /swap [get]
func NewGetSwapHandler(ctrl SwapController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quote, err := ctrl.Quote(r.Context())
		writeQuote(w, quote, err)
	}
}

func newAmountHandler(edit func(ctx context.Context, amount string) (models.Quote, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		quote, err := edit(r.Context(), req.Amount)
		writeQuote(w, quote, err)
	}
}

func newAssetHandler(set func(ctx context.Context, asset string) (models.Quote, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Asset == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		quote, err := set(r.Context(), req.Asset)
		writeQuote(w, quote, err)
	}
}

// NewSetSourceAmountHandler records an edit of the source amount.
// @Summary Edit source amount
// @Description Sets the amount to sell and derives the amount to buy
// @Tags swap
// @Accept json
// @Produce json
// @Param request body handlers.AmountRequest true "Amount"
// @Success 200 {object} handlers.QuoteResponse "Swap form"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /swap/source-amount [put]
func NewSetSourceAmountHandler(ctrl SwapController) http.HandlerFunc {
	return newAmountHandler(ctrl.EditSourceAmount)
}

// NewSetDestAmountHandler records an edit of the destination amount.
// @Summary Edit destination amount
// @Description Sets the amount to buy and derives the amount to sell
// @Tags swap
// @Accept json
// @Produce json
// @Param request body handlers.AmountRequest true "Amount"
// @Success 200 {object} handlers.QuoteResponse "Swap form"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /swap/dest-amount [put]
func NewSetDestAmountHandler(ctrl SwapController) http.HandlerFunc {
	return newAmountHandler(ctrl.EditDestAmount)
}

// NewSetSourceAssetHandler selects the asset to sell.
// @Summary Select source asset
// @Tags swap
// @Accept json
// @Produce json
// @Param request body handlers.AssetRequest true "Asset"
// @Success 200 {object} handlers.QuoteResponse "Swap form"
// @Failure 400 {object} handlers.ErrorResponse "Unknown asset"
// @Router /swap/source-asset [put]
func NewSetSourceAssetHandler(ctrl SwapController) http.HandlerFunc {
	return newAssetHandler(ctrl.SetSourceAsset)
}

// NewSetDestAssetHandler selects the asset to buy.
// @Summary Select destination asset
// @Tags swap
// @Accept json
// @Produce json
// @Param request body handlers.AssetRequest true "Asset"
// @Success 200 {object} handlers.QuoteResponse "Swap form"
// @Failure 400 {object} handlers.ErrorResponse "Unknown asset"
// @Router /swap/dest-asset [put]
func NewSetDestAssetHandler(ctrl SwapController) http.HandlerFunc {
	return newAssetHandler(ctrl.SetDestAsset)
}

// NewFlipSwapHandler swaps the source and destination.
// @Summary Flip pair
// @Description Exchanges the assets together with the displayed amounts
// @Tags swap
// @Produce json
// @Success 200 {object} handlers.QuoteResponse "Swap form"
// @Router /swap/flip [post]
func NewFlipSwapHandler(ctrl SwapController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quote, err := ctrl.SwapAssets(r.Context())
		writeQuote(w, quote, err)
	}
}
