package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

var (
	// ErrEngineStopped is returned when an action arrives after the event loop exited.
	ErrEngineStopped = errors.New("swap engine stopped")
	// ErrUnknownAsset is returned when selecting an asset that has no price.
	ErrUnknownAsset = errors.New("unknown asset")
)

// Observer receives read-only copies of every state change.
// Callbacks run on the event loop and must not block.
type Observer interface {
	OnStateChange(state models.ConversionState)
	OnTransactionStatusChange(attempt models.TransactionAttempt)
	OnPriceMappingChange(snapshot models.PriceSnapshot)
}

// NopObserver ignores every event. Embed it to implement part of Observer.
type NopObserver struct{}

func (NopObserver) OnStateChange(models.ConversionState) {}

func (NopObserver) OnTransactionStatusChange(models.TransactionAttempt) {}

func (NopObserver) OnPriceMappingChange(models.PriceSnapshot) {}

// EngineConfig configures a new Engine. Zero fields fall back to the defaults.
type EngineConfig struct {
	SourceAsset string
	DestAsset   string
	Timings     TransactionTimings
	Random      RandomSource
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// Engine is the single logical thread of the swap.
//
// Every SyncController and TransactionSimulator transition, including timer
// callbacks and price publishes, runs to completion on the goroutine executing
// Run, so no two transitions ever interleave.
type Engine struct {
	feed      *PriceFeed
	sync      *SyncController
	tx        *TransactionSimulator
	balances  BalanceProvider
	observers []Observer

	events chan func()
	done   chan struct{}
}

// NewEngine wires the feed, controller and simulator around one event loop.
func NewEngine(feed *PriceFeed, balances BalanceProvider, cfg EngineConfig, observers ...Observer) *Engine {
	if cfg.SourceAsset == "" {
		cfg.SourceAsset = models.DefaultSourceAsset
	}
	if cfg.DestAsset == "" {
		cfg.DestAsset = models.DefaultDestAsset
	}
	if cfg.Timings == (TransactionTimings{}) {
		cfg.Timings = DefaultTransactionTimings()
	}
	if cfg.Random == nil {
		cfg.Random = globalRandom{}
	}

	e := &Engine{
		feed:      feed,
		balances:  balances,
		observers: observers,
		events:    make(chan func(), 64),
		done:      make(chan struct{}),
	}

	e.sync = NewSyncController(cfg.SourceAsset, cfg.DestAsset)
	e.tx = NewTransactionSimulator(e, cfg.Random, cfg.Timings)

	e.sync.OnChange(func(state models.ConversionState) {
		for _, o := range e.observers {
			o.OnStateChange(state)
		}
	})
	e.tx.OnChange(func(attempt models.TransactionAttempt) {
		for _, o := range e.observers {
			o.OnTransactionStatusChange(attempt)
		}
	})
	e.tx.OnSuccess(func() {
		e.sync.ClearAmounts()
	})
	feed.OnChange(func(snapshot models.PriceSnapshot) {
		e.post(context.Background(), func() {
			e.sync.SetPriceMapping(snapshot.Mapping)
			for _, o := range e.observers {
				o.OnPriceMappingChange(snapshot)
			}
		})
	})

	return e
}

// Run starts price polling and processes events until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	stopPolling := e.feed.Start(ctx)
	defer stopPolling()
	defer close(e.done)

	logger.Log.Info("swap engine started")
	for {
		select {
		case fn := <-e.events:
			fn()
		case <-ctx.Done():
			logger.Log.Info("swap engine stopped")
			return nil
		}
	}
}

// AfterFunc schedules fn on the event loop once d has elapsed.
func (e *Engine) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		e.post(context.Background(), fn)
	})
}

func (e *Engine) post(ctx context.Context, fn func()) bool {
	select {
	case e.events <- fn:
		return true
	case <-e.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// do runs fn on the event loop and waits for it to finish.
func (e *Engine) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !e.post(ctx, func() {
		fn()
		close(finished)
	}) {
		if err := ctx.Err(); err != nil {
			return err
		}
		return ErrEngineStopped
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrEngineStopped
	}
}

// Prices returns the current price feed snapshot.
func (e *Engine) Prices() models.PriceSnapshot {
	return e.feed.Snapshot()
}

// RefreshPrices fetches the feed right away instead of waiting for the next poll.
func (e *Engine) RefreshPrices(ctx context.Context) (models.PriceMapping, error) {
	return e.feed.Refresh(ctx)
}

// Quote returns the current amounts, assets and rate.
func (e *Engine) Quote(ctx context.Context) (models.Quote, error) {
	var quote models.Quote
	err := e.do(ctx, func() {
		quote = e.sync.Quote()
	})
	return quote, err
}

// EditSourceAmount records a user edit of the source amount.
func (e *Engine) EditSourceAmount(ctx context.Context, amount string) (models.Quote, error) {
	return e.apply(ctx, func() error {
		e.sync.EditSource(amount)
		return nil
	})
}

// EditDestAmount records a user edit of the destination amount.
func (e *Engine) EditDestAmount(ctx context.Context, amount string) (models.Quote, error) {
	return e.apply(ctx, func() error {
		e.sync.EditDest(amount)
		return nil
	})
}

// SetSourceAsset selects the asset to sell.
func (e *Engine) SetSourceAsset(ctx context.Context, asset string) (models.Quote, error) {
	return e.apply(ctx, func() error {
		if !e.sync.Tradable(asset) {
			return fmt.Errorf("%w: %s", ErrUnknownAsset, asset)
		}
		e.sync.SetSourceAsset(asset)
		return nil
	})
}

// SetDestAsset selects the asset to buy.
func (e *Engine) SetDestAsset(ctx context.Context, asset string) (models.Quote, error) {
	return e.apply(ctx, func() error {
		if !e.sync.Tradable(asset) {
			return fmt.Errorf("%w: %s", ErrUnknownAsset, asset)
		}
		e.sync.SetDestAsset(asset)
		return nil
	})
}

// SwapAssets flips the pair along with the displayed amounts.
func (e *Engine) SwapAssets(ctx context.Context) (models.Quote, error) {
	return e.apply(ctx, func() error {
		e.sync.SwapAssets()
		return nil
	})
}

func (e *Engine) apply(ctx context.Context, fn func() error) (models.Quote, error) {
	var (
		quote  models.Quote
		action error
	)
	if err := e.do(ctx, func() {
		action = fn()
		quote = e.sync.Quote()
	}); err != nil {
		return models.Quote{}, err
	}
	return quote, action
}

// Submit swaps the current source amount. The wallet balance is looked up
// off the event loop; the attempt is handed to the simulator with the state
// read back on the loop, so edits made during the lookup are honored. The
// lookup is repeated when the source asset changed in the meantime.
func (e *Engine) Submit(ctx context.Context) (models.TransactionAttempt, error) {
	var state models.ConversionState
	if err := e.do(ctx, func() {
		state = e.sync.State()
	}); err != nil {
		return models.TransactionAttempt{}, err
	}

	for {
		balance := decimal.Zero
		lookedUp := false
		if _, ok := ParseAmount(state.SourceAmount); ok {
			var err error
			balance, err = e.balances.GetBalance(ctx, state.SourceAsset)
			if err != nil {
				logger.Log.Errorw("failed to get wallet balance", "asset", state.SourceAsset, "error", err)
				return models.TransactionAttempt{}, fmt.Errorf("get balance: %w", err)
			}
			lookedUp = true
		}

		var (
			attempt models.TransactionAttempt
			submit  error
			stale   bool
		)
		if err := e.do(ctx, func() {
			current := e.sync.State()
			if _, ok := ParseAmount(current.SourceAmount); ok && (!lookedUp || current.SourceAsset != state.SourceAsset) {
				state, stale = current, true
				return
			}
			attempt, submit = e.tx.Submit(current.SourceAmount, current.SourceAsset, balance)
		}); err != nil {
			return models.TransactionAttempt{}, err
		}
		if !stale {
			return attempt, submit
		}
	}
}

// Transaction returns the attempt currently on display.
func (e *Engine) Transaction(ctx context.Context) (models.TransactionAttempt, error) {
	var attempt models.TransactionAttempt
	err := e.do(ctx, func() {
		attempt = e.tx.Attempt()
	})
	return attempt, err
}
