package usecase

import (
	"log/slog"
	"time"

	"clipmarket/internal/core/port"
)

// Metrics receives engine instrumentation. The prometheus adapter implements
// it; the zero configuration uses a no-op recorder.
type Metrics interface {
	CampaignProcessed(outcome string)
	PayoutCreated(amount float64, budgetLimited bool)
	ClipSkipped(reason string)
	Disbursement(outcome string)
	ObservationRecorded(platform, outcome string)
	RunFinished(job string, d time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) CampaignProcessed(string)           {}
func (noopMetrics) PayoutCreated(float64, bool)        {}
func (noopMetrics) ClipSkipped(string)                 {}
func (noopMetrics) Disbursement(string)                {}
func (noopMetrics) ObservationRecorded(string, string) {}
func (noopMetrics) RunFinished(string, time.Duration)  {}

// settings is shared by the payout engine and the view tracker.
type settings struct {
	logger        *slog.Logger
	metrics       Metrics
	guard         port.RunGuard
	leaseTTL      time.Duration
	now           func() time.Time
	concurrency   int
	pendingMinAge time.Duration
	pendingBatch  int
}

func defaultSettings() settings {
	return settings{
		logger:       slog.Default(),
		metrics:      noopMetrics{},
		guard:        NewLocalRunGuard(),
		leaseTTL:     15 * time.Minute,
		now:          time.Now,
		concurrency:  4,
		pendingBatch: 100,
	}
}

// Option customises a PayoutUseCase or ViewTracker.
type Option func(*settings)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics overrides the default no-op metrics recorder.
func WithMetrics(m Metrics) Option {
	return func(s *settings) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRunGuard sets the lease provider used to keep overlapping runs of the
// same job apart, and the lease TTL.
func WithRunGuard(g port.RunGuard, ttl time.Duration) Option {
	return func(s *settings) {
		if g != nil {
			s.guard = g
		}
		if ttl > 0 {
			s.leaseTTL = ttl
		}
	}
}

// WithClock sets the function used to derive timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.now = clock }
}

// WithConcurrency bounds how many campaigns are calculated in parallel.
func WithConcurrency(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithPendingPolicy configures which PENDING records a disbursement run
// picks up: those older than minAge, at most batch per run.
func WithPendingPolicy(minAge time.Duration, batch int) Option {
	return func(s *settings) {
		if minAge >= 0 {
			s.pendingMinAge = minAge
		}
		if batch > 0 {
			s.pendingBatch = batch
		}
	}
}
