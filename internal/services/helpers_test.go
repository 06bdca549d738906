package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// manualScheduler fires callbacks only when the test advances its clock.
type manualScheduler struct {
	now   time.Duration
	seq   int
	tasks []scheduledTask
}

type scheduledTask struct {
	at  time.Duration
	seq int
	fn  func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, scheduledTask{at: s.now + d, seq: s.seq, fn: fn})
}

// Advance runs every task due within d, earliest first.
func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := -1
		for i, t := range s.tasks {
			if t.at > target {
				continue
			}
			if next == -1 || t.at < s.tasks[next].at || (t.at == s.tasks[next].at && t.seq < s.tasks[next].seq) {
				next = i
			}
		}
		if next == -1 {
			break
		}
		task := s.tasks[next]
		s.tasks = append(s.tasks[:next], s.tasks[next+1:]...)
		s.now = task.at
		task.fn()
	}
	s.now = target
}

// Pending returns the number of callbacks not fired yet.
func (s *manualScheduler) Pending() int {
	return len(s.tasks)
}

type fixedRandom float64

func (r fixedRandom) Float64() float64 {
	return float64(r)
}

type countingRandom struct {
	value float64
	calls int
}

func (r *countingRandom) Float64() float64 {
	r.calls++
	return r.value
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func observation(asset, price string, at time.Time) models.PriceObservation {
	return models.PriceObservation{Asset: asset, Price: dec(price), ObservedAt: at}
}

func mappingOf(prices map[string]string) models.PriceMapping {
	at := time.Date(2023, 8, 29, 7, 10, 40, 0, time.UTC)
	mapping := make(models.PriceMapping, len(prices))
	for asset, price := range prices {
		mapping[asset] = observation(asset, price, at)
	}
	return mapping
}
