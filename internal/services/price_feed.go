package services

//go:generate mockgen -source=price_feed.go -destination=mock_price_feed.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// DefaultPollInterval is how often the price feed is refreshed in the background.
const DefaultPollInterval = 60 * time.Second

var (
	// ErrFeedUnavailable is returned when no market data could be loaded yet.
	ErrFeedUnavailable = errors.New("market data unavailable")
	// ErrFeedStale is returned when a background refresh failed and the last known prices are kept.
	ErrFeedStale = errors.New("market data refresh failed")
)

// PriceSource fetches raw price observations from upstream.
type PriceSource interface {
	FetchPrices(ctx context.Context) ([]models.PriceObservation, error)
}

// PriceFeed polls a PriceSource and keeps one canonical price per asset.
type PriceFeed struct {
	source   PriceSource
	interval time.Duration
	now      func() time.Time

	refreshMu sync.Mutex // serializes refreshes so publishes stay ordered

	mu        sync.RWMutex
	snapshot  models.PriceSnapshot
	attempted bool
	loaded    bool
	onChange  func(models.PriceSnapshot)
}

// NewPriceFeed creates a feed that starts in the loading state.
func NewPriceFeed(source PriceSource, interval time.Duration) *PriceFeed {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PriceFeed{
		source:   source,
		interval: interval,
		now:      time.Now,
		snapshot: models.PriceSnapshot{
			Mapping: models.PriceMapping{},
			Assets:  []string{},
			Loading: true,
		},
	}
}

// OnChange registers the callback invoked after every published snapshot.
// It must be set before Start.
func (f *PriceFeed) OnChange(fn func(models.PriceSnapshot)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

// Snapshot returns a copy of the current feed state.
func (f *PriceFeed) Snapshot() models.PriceSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	snap := f.snapshot
	snap.Mapping = f.snapshot.Mapping.Clone()
	snap.Assets = make([]string, len(f.snapshot.Assets))
	copy(snap.Assets, f.snapshot.Assets)
	return snap
}

// Refresh fetches the feed once and publishes the reduced mapping.
//
// Before the first successful load a failure is surfaced as ErrFeedUnavailable.
// Afterwards a failure leaves the published snapshot untouched and returns the
// last known mapping together with ErrFeedStale.
func (f *PriceFeed) Refresh(ctx context.Context) (models.PriceMapping, error) {
	f.refreshMu.Lock()
	defer f.refreshMu.Unlock()

	observations, err := f.source.FetchPrices(ctx)
	if err != nil {
		return f.fail(err)
	}

	mapping := ReducePrices(observations)
	f.publish(func(s *models.PriceSnapshot) {
		s.Mapping = mapping
		s.Assets = SortedAssets(mapping)
		s.Loading = false
		s.Err = nil
		s.UpdatedAt = f.now()
	}, true)

	logger.Log.Infow("price feed refreshed", "assets", len(mapping), "observations", len(observations))
	return mapping.Clone(), nil
}

func (f *PriceFeed) fail(cause error) (models.PriceMapping, error) {
	f.mu.RLock()
	loaded := f.loaded
	last := f.snapshot.Mapping.Clone()
	f.mu.RUnlock()

	if loaded {
		logger.Log.Warnw("price refresh failed, keeping last known prices", "error", cause)
		return last, fmt.Errorf("%w: %w", ErrFeedStale, cause)
	}

	logger.Log.Errorw("failed to load market data", "error", cause)
	f.publish(func(s *models.PriceSnapshot) {
		s.Loading = false
		s.Err = ErrFeedUnavailable
	}, false)
	return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, cause)
}

func (f *PriceFeed) publish(apply func(*models.PriceSnapshot), loaded bool) {
	f.mu.Lock()
	before := f.snapshot
	apply(&f.snapshot)
	first := !f.attempted
	f.attempted = true
	f.loaded = f.loaded || loaded
	snap := f.snapshot
	onChange := f.onChange
	f.mu.Unlock()

	// A repeated failure before the first load changes nothing observable.
	if !loaded && !first && before.Err == snap.Err && before.Loading == snap.Loading {
		return
	}
	if onChange != nil {
		onChange(snap)
	}
}

// Start refreshes immediately and then every poll interval until ctx is done
// or the returned stop function is called. stop waits for the poller to exit.
func (f *PriceFeed) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		f.poll(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}

func (f *PriceFeed) poll(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	logger.Log.Infow("starting price feed polling", "interval", f.interval)
	f.refreshInBackground(ctx)

	for {
		select {
		case <-ticker.C:
			f.refreshInBackground(ctx)
		case <-ctx.Done():
			logger.Log.Info("stopping price feed polling")
			return
		}
	}
}

func (f *PriceFeed) refreshInBackground(ctx context.Context) {
	// Errors are already logged and published by Refresh.
	_, _ = f.Refresh(ctx)
}

// ReducePrices keeps the most recent observation per asset. An observation
// replaces the kept one only when strictly newer, so on equal timestamps the
// first one in feed order wins.
func ReducePrices(observations []models.PriceObservation) models.PriceMapping {
	mapping := make(models.PriceMapping, len(observations))
	for _, obs := range observations {
		best, ok := mapping[obs.Asset]
		if !ok || obs.ObservedAt.After(best.ObservedAt) {
			mapping[obs.Asset] = obs
		}
	}
	return mapping
}

// SortedAssets returns the mapping keys in lexicographic order.
func SortedAssets(mapping models.PriceMapping) []string {
	assets := make([]string, 0, len(mapping))
	for asset := range mapping {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	return assets
}
