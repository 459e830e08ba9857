package port

import (
	"context"

	"clipmarket/internal/core/domain"
)

// ViewLedger stores daily view observations and answers "views since the
// last payout" queries.
type ViewLedger interface {
	// LatestObservations returns the newest observation for the clip together
	// with the count it was last settled at. It does not fail for clips
	// without history; Found is false when no observation exists.
	LatestObservations(ctx context.Context, clip domain.Clip) (ObservationPair, error)
	// UpsertObservation stores obs, replacing an observation for the same
	// clip and day.
	UpsertObservation(ctx context.Context, obs domain.ViewObservation) error
}

// ObservationPair is the pair of view counts a payout delta is computed
// from. Previous is nil when the clip was never settled and the caller falls
// back to the clip's initial views.
type ObservationPair struct {
	Previous *int64
	Latest   int64
	Found    bool
}

// Baseline returns Previous, or initial when Previous is nil.
func (p ObservationPair) Baseline(initial int64) int64 {
	if p.Previous != nil {
		return *p.Previous
	}
	return initial
}
