package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "clipmarket"

// EngineMetrics records payout engine and view tracker activity. It
// implements usecase.Metrics.
type EngineMetrics struct {
	campaigns     *prometheus.CounterVec
	payouts       *prometheus.CounterVec
	payoutAmount  prometheus.Counter
	clipsSkipped  *prometheus.CounterVec
	disbursements *prometheus.CounterVec
	observations  *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
}

// NewEngineMetrics creates the collectors and registers them with reg.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	m := &EngineMetrics{
		campaigns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_processed_total",
			Help:      "Campaigns handled by payout calculation runs by outcome.",
		}, []string{"outcome"}),
		payouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payouts_created_total",
			Help:      "Payout records created, split by whether the budget clipped them.",
		}, []string{"budget_limited"}),
		payoutAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_amount_total",
			Help:      "Sum of created payout amounts.",
		}),
		clipsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clips_skipped_total",
			Help:      "Clips that produced no payout by reason.",
		}, []string{"reason"}),
		disbursements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disbursements_total",
			Help:      "Pending payouts handed to the disbursement sink by outcome.",
		}, []string{"outcome"}),
		observations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_observations_total",
			Help:      "View observations fetched from the supplier by platform and outcome.",
		}, []string{"platform", "outcome"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of engine runs by job.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"job"}),
	}
	reg.MustRegister(
		m.campaigns,
		m.payouts,
		m.payoutAmount,
		m.clipsSkipped,
		m.disbursements,
		m.observations,
		m.runDuration,
	)
	return m
}

func (m *EngineMetrics) CampaignProcessed(outcome string) {
	m.campaigns.WithLabelValues(label(outcome)).Inc()
}

func (m *EngineMetrics) PayoutCreated(amount float64, budgetLimited bool) {
	m.payouts.WithLabelValues(strconv.FormatBool(budgetLimited)).Inc()
	if amount > 0 {
		m.payoutAmount.Add(amount)
	}
}

func (m *EngineMetrics) ClipSkipped(reason string) {
	m.clipsSkipped.WithLabelValues(label(reason)).Inc()
}

func (m *EngineMetrics) Disbursement(outcome string) {
	m.disbursements.WithLabelValues(label(outcome)).Inc()
}

func (m *EngineMetrics) ObservationRecorded(platform, outcome string) {
	m.observations.WithLabelValues(label(platform), label(outcome)).Inc()
}

func (m *EngineMetrics) RunFinished(job string, d time.Duration) {
	m.runDuration.WithLabelValues(label(job)).Observe(d.Seconds())
}

func label(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
