package services

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

const publishTimeout = 5 * time.Second

// TransactionEventPublisher forwards transaction status changes to Kafka.
// Events are queued on the event loop and written by Run, in order.
type TransactionEventPublisher struct {
	NopObserver

	kafkaWriter KafkaWriter
	queue       chan models.TransactionEvent
}

// NewTransactionEventPublisher creates a publisher with room for queueSize pending events.
func NewTransactionEventPublisher(kafkaWriter KafkaWriter, queueSize int) *TransactionEventPublisher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &TransactionEventPublisher{
		kafkaWriter: kafkaWriter,
		queue:       make(chan models.TransactionEvent, queueSize),
	}
}

// OnTransactionStatusChange queues non-idle status changes for publishing.
func (p *TransactionEventPublisher) OnTransactionStatusChange(attempt models.TransactionAttempt) {
	if attempt.Status == models.StatusIdle {
		return
	}

	event := models.TransactionEvent{
		TransactionID: attempt.ID,
		Timestamp:     attempt.UpdatedAt.Unix(),
		Amount:        attempt.RequestedAmount.String(),
		Asset:         attempt.SourceAsset,
		Status:        string(attempt.Status),
	}
	if attempt.ErrorMessage != "" {
		msg := attempt.ErrorMessage
		event.Error = &msg
	}

	select {
	case p.queue <- event:
	default:
		logger.Log.Warnw("Transaction event queue full, dropping event", "transaction_id", event.TransactionID, "status", event.Status)
	}
}

// Run publishes queued events until ctx is done.
func (p *TransactionEventPublisher) Run(ctx context.Context) {
	for {
		select {
		case event := <-p.queue:
			p.publish(ctx, event)
		case <-ctx.Done():
			return
		}
	}
}

// publish writes one event to Kafka, keyed by transaction ID.
func (p *TransactionEventPublisher) publish(ctx context.Context, event models.TransactionEvent) {
	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction event for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction event to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction event published to Kafka", "transaction_id", event.TransactionID, "status", event.Status)
	}
}
