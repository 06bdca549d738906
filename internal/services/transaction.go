package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

var (
	// ErrInvalidAmount is returned when the amount to swap is empty, malformed or not positive.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrTransactionPending is returned when a swap is submitted while another one is in flight.
	ErrTransactionPending = errors.New("a transaction is already pending")
	// ErrInsufficientBalance is returned when the amount exceeds the wallet balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrChainFailure is the simulated on-chain failure of a pending swap.
	ErrChainFailure = errors.New("transaction failed on chain")
)

const chainFailureMessage = "Transaction failed on chain"

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// RandomSource yields uniformly distributed numbers in [0, 1).
type RandomSource interface {
	Float64() float64
}

// TransactionTimings configures the simulated latency, display windows and failure rate.
type TransactionTimings struct {
	Latency        time.Duration // time spent PENDING
	SuccessDisplay time.Duration // how long SUCCESS stays visible
	FailureDisplay time.Duration // how long a chain failure stays visible
	BlockedDisplay time.Duration // how long an insufficient balance error stays visible
	FailureRate    float64
}

// DefaultTransactionTimings returns the stock simulation parameters.
func DefaultTransactionTimings() TransactionTimings {
	return TransactionTimings{
		Latency:        2 * time.Second,
		SuccessDisplay: 2 * time.Second,
		FailureDisplay: 5 * time.Second,
		BlockedDisplay: 3 * time.Second,
		FailureRate:    0.1,
	}
}

// TransactionSimulator drives one simulated swap at a time through
// IDLE -> PENDING -> SUCCESS|FAILED -> IDLE. It is not safe for concurrent use;
// the Scheduler must call back on the same goroutine that calls Submit.
type TransactionSimulator struct {
	scheduler Scheduler
	random    RandomSource
	timings   TransactionTimings
	now       func() time.Time
	newID     func() string

	attempt   models.TransactionAttempt
	onChange  func(models.TransactionAttempt)
	onSuccess func()
}

// NewTransactionSimulator creates an idle simulator.
func NewTransactionSimulator(scheduler Scheduler, random RandomSource, timings TransactionTimings) *TransactionSimulator {
	return &TransactionSimulator{
		scheduler: scheduler,
		random:    random,
		timings:   timings,
		now:       time.Now,
		newID:     uuid.NewString,
		attempt:   models.TransactionAttempt{Status: models.StatusIdle},
	}
}

// OnChange registers the callback invoked on every status change.
func (s *TransactionSimulator) OnChange(fn func(models.TransactionAttempt)) {
	s.onChange = fn
}

// OnSuccess registers the callback invoked when a swap settles successfully.
func (s *TransactionSimulator) OnSuccess(fn func()) {
	s.onSuccess = fn
}

// Attempt returns the attempt currently on display.
func (s *TransactionSimulator) Attempt() models.TransactionAttempt {
	return s.attempt
}

// Submit starts a simulated swap of amount units of sourceAsset.
//
// Invalid amounts and submissions while PENDING are rejected without any state
// change. An amount above availableBalance shows a transient insufficient
// balance error and never enters PENDING.
func (s *TransactionSimulator) Submit(amount, sourceAsset string, availableBalance decimal.Decimal) (models.TransactionAttempt, error) {
	value, ok := ParseAmount(amount)
	if !ok || !value.IsPositive() {
		return s.attempt, ErrInvalidAmount
	}

	if s.attempt.Status == models.StatusPending {
		return s.attempt, ErrTransactionPending
	}

	id := s.newID()

	if value.GreaterThan(availableBalance) {
		s.set(models.TransactionAttempt{
			ID:              id,
			RequestedAmount: value,
			SourceAsset:     sourceAsset,
			Status:          models.StatusFailed,
			ErrorKind:       models.ErrorKindInsufficientBalance,
			ErrorMessage:    fmt.Sprintf("Insufficient balance. You only have %s %s", availableBalance.StringFixed(2), sourceAsset),
		})
		s.clearAfter(id, s.timings.BlockedDisplay)
		return s.attempt, ErrInsufficientBalance
	}

	s.set(models.TransactionAttempt{
		ID:              id,
		RequestedAmount: value,
		SourceAsset:     sourceAsset,
		Status:          models.StatusPending,
	})
	s.scheduler.AfterFunc(s.timings.Latency, func() { s.resolve(id) })

	logger.Log.Infow("swap submitted", "transaction_id", id, "amount", value.String(), "asset", sourceAsset)
	return s.attempt, nil
}

// resolve settles the pending attempt. The outcome is drawn now, not at submission.
func (s *TransactionSimulator) resolve(id string) {
	if s.attempt.ID != id || s.attempt.Status != models.StatusPending {
		return
	}

	settled := s.attempt
	settled.ErrorKind = models.ErrorKindNone
	settled.ErrorMessage = ""

	if s.random.Float64() < s.timings.FailureRate {
		settled.Status = models.StatusFailed
		settled.ErrorKind = models.ErrorKindChainFailure
		settled.ErrorMessage = chainFailureMessage
		s.set(settled)
		s.clearAfter(id, s.timings.FailureDisplay)
		logger.Log.Warnw("swap failed", "transaction_id", id, "error", ErrChainFailure)
		return
	}

	settled.Status = models.StatusSuccess
	s.set(settled)
	if s.onSuccess != nil {
		s.onSuccess()
	}
	s.clearAfter(id, s.timings.SuccessDisplay)
	logger.Log.Infow("swap settled", "transaction_id", id)
}

// clearAfter returns to IDLE after d, unless a newer attempt took over meanwhile.
func (s *TransactionSimulator) clearAfter(id string, d time.Duration) {
	s.scheduler.AfterFunc(d, func() {
		if s.attempt.ID != id || !s.attempt.Status.Terminal() {
			return
		}
		s.set(models.TransactionAttempt{Status: models.StatusIdle})
	})
}

func (s *TransactionSimulator) set(attempt models.TransactionAttempt) {
	attempt.UpdatedAt = s.now()
	s.attempt = attempt
	if s.onChange != nil {
		s.onChange(attempt)
	}
}
