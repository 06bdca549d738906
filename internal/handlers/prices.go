package handlers

//go:generate mockgen -source=prices.go -destination=mock_prices.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
)

// PriceFeeder exposes the price feed snapshot and a manual refresh.
type PriceFeeder interface {
	Prices() models.PriceSnapshot
	RefreshPrices(ctx context.Context) (models.PriceMapping, error)
}

// PriceItem is the latest known price of one asset
// swagger:model PriceItem
type PriceItem struct {
	// USD price of one unit
	// default: 1645.93
	Price string `json:"price"`

	// When the price was observed
	Date time.Time `json:"date"`
}

// PricesResponse represents the price feed state
// swagger:model PricesResponse
type PricesResponse struct {
	// Latest price per asset
	Prices map[string]PriceItem `json:"prices"`

	// Tradable assets, sorted
	Assets []string `json:"assets"`

	// True while the first load is in flight
	Loading bool `json:"loading"`

	// Set when market data could never be loaded
	Error string `json:"error,omitempty"`
}

func newPricesResponse(snapshot models.PriceSnapshot) PricesResponse {
	resp := PricesResponse{
		Prices:  make(map[string]PriceItem, len(snapshot.Mapping)),
		Assets:  snapshot.Assets,
		Loading: snapshot.Loading,
	}
	if resp.Assets == nil {
		resp.Assets = []string{}
	}
	for asset, obs := range snapshot.Mapping {
		resp.Prices[asset] = PriceItem{Price: obs.Price.String(), Date: obs.ObservedAt}
	}
	if snapshot.Err != nil {
		resp.Error = snapshot.Err.Error()
	}
	return resp
}

// NewGetPricesHandler returns the current price feed snapshot.
// @Summary Get prices
// @Description Returns the latest price per asset and the list of tradable assets
// @Tags prices
// @Produce json
// @Success 200 {object} handlers.PricesResponse "Price snapshot"
// @Failure 503 {object} handlers.PricesResponse "Market data unavailable"
// @Router /prices [get]
func NewGetPricesHandler(feed PriceFeeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := feed.Prices()

		status := http.StatusOK
		if snapshot.Err != nil {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, newPricesResponse(snapshot))
	}
}

// NewRefreshPricesHandler fetches the feed right away.
// @Summary Refresh prices
// @Description Retries the price feed immediately. Keeps the last prices when a refresh fails after a successful load.
// @Tags prices
// @Produce json
// @Success 200 {object} handlers.PricesResponse "Price snapshot"
// @Failure 503 {object} handlers.ErrorResponse "Market data unavailable"
// @Router /prices/refresh [post]
func NewRefreshPricesHandler(feed PriceFeeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := feed.RefreshPrices(r.Context())
		if err != nil && !errors.Is(err, services.ErrFeedStale) {
			writeError(w, http.StatusServiceUnavailable, services.ErrFeedUnavailable.Error())
			return
		}

		writeJSON(w, http.StatusOK, newPricesResponse(feed.Prices()))
	}
}
