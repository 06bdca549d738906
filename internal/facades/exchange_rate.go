package facades

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ExchangeRatesGRPCFacade reads asset prices from the exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
	now    func() time.Time
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client, now: time.Now}
}

// FetchPrices returns one observation per rate published by the exchanger,
// stamped with the time of the call. Negative rates are skipped.
func (f *ExchangeRatesGRPCFacade) FetchPrices(ctx context.Context) ([]models.PriceObservation, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	observedAt := f.now()
	observations := make([]models.PriceObservation, 0, len(resp.Rates))
	for currency, rate := range resp.Rates {
		if rate < 0 {
			logger.Log.Warnw("skipping negative exchange rate", "currency", currency, "rate", rate)
			continue
		}
		observations = append(observations, models.PriceObservation{
			Asset:      currency,
			Price:      decimal.NewFromFloat32(rate),
			ObservedAt: observedAt,
		})
	}

	return observations, nil
}
