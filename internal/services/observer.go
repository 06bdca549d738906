package services

import (
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// LoggingObserver writes every engine event to the service log.
type LoggingObserver struct{}

// NewLoggingObserver creates a LoggingObserver.
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{}
}

func (o *LoggingObserver) OnStateChange(state models.ConversionState) {
	logger.Log.Debugw("conversion state changed",
		"source_asset", state.SourceAsset,
		"dest_asset", state.DestAsset,
		"source_amount", state.SourceAmount,
		"dest_amount", state.DestAmount,
		"last_edited", state.LastEditedSide,
	)
}

func (o *LoggingObserver) OnTransactionStatusChange(attempt models.TransactionAttempt) {
	logger.Log.Infow("transaction status changed",
		"transaction_id", attempt.ID,
		"status", attempt.Status,
		"error", attempt.ErrorMessage,
	)
}

func (o *LoggingObserver) OnPriceMappingChange(snapshot models.PriceSnapshot) {
	logger.Log.Infow("price mapping changed",
		"assets", len(snapshot.Assets),
		"loading", snapshot.Loading,
		"error", snapshot.Err,
	)
}
