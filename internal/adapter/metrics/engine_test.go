package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewEngineMetrics(reg)

	m.CampaignProcessed("ok")
	m.CampaignProcessed("ok")
	m.CampaignProcessed("stale")
	m.PayoutCreated(2.5, false)
	m.PayoutCreated(1.25, true)
	m.ClipSkipped("")
	m.Disbursement("paid")
	m.ObservationRecorded("tiktok", "ok")
	m.RunFinished("calculate", 150*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.campaigns.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.campaigns.WithLabelValues("stale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payouts.WithLabelValues("true")))
	assert.InDelta(t, 3.75, testutil.ToFloat64(m.payoutAmount), 1e-9)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.clipsSkipped.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.observations.WithLabelValues("tiktok", "ok")))

	n, err := testutil.GatherAndCount(reg, "clipmarket_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewEngineMetricsRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewEngineMetrics(reg)
	assert.Panics(t, func() { NewEngineMetrics(reg) })
}
