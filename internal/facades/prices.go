package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// DefaultPricesURL is the public price feed used when no URL is configured.
const DefaultPricesURL = "https://interview.switcheo.com/prices.json"

// PricesHTTPFacade reads the JSON price feed over HTTP.
type PricesHTTPFacade struct {
	client *http.Client
	url    string
}

// NewPricesHTTPFacade creates a facade polling url with the given request timeout.
func NewPricesHTTPFacade(url string, timeout time.Duration) *PricesHTTPFacade {
	if url == "" {
		url = DefaultPricesURL
	}
	return &PricesHTTPFacade{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// FetchPrices downloads the feed and decodes it into observations.
// Records with an unparseable date or a negative price are skipped.
func (f *PricesHTTPFacade) FetchPrices(ctx context.Context) ([]models.PriceObservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch prices via HTTP", "url", f.url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("unexpected price feed status", "url", f.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("price feed returned status %d", resp.StatusCode)
	}

	var records []models.PriceRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		logger.Log.Errorw("failed to decode price feed", "url", f.url, "error", err)
		return nil, fmt.Errorf("decode price feed: %w", err)
	}

	observations := make([]models.PriceObservation, 0, len(records))
	for _, r := range records {
		observedAt, err := time.Parse(time.RFC3339Nano, r.Date)
		if err != nil {
			logger.Log.Warnw("skipping price record with invalid date", "currency", r.Currency, "date", r.Date)
			continue
		}
		if r.Price.IsNegative() {
			logger.Log.Warnw("skipping price record with negative price", "currency", r.Currency, "price", r.Price.String())
			continue
		}
		observations = append(observations, models.PriceObservation{
			Asset:      r.Currency,
			Price:      r.Price,
			ObservedAt: observedAt,
		})
	}

	return observations, nil
}
