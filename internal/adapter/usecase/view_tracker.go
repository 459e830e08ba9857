package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clipmarket/internal/core/domain"
	"clipmarket/internal/core/port"
)

const jobTrack = "track"

// ViewTracker polls the view supplier for every tracked clip and records
// the day's observation in the view ledger. It implements
// port.ViewTrackingUseCase.
type ViewTracker struct {
	repo     port.PayoutRepository
	views    port.ViewLedger
	supplier port.ViewSupplier
	settings
}

func NewViewTracker(repo port.PayoutRepository, views port.ViewLedger, supplier port.ViewSupplier, opts ...Option) *ViewTracker {
	t := &ViewTracker{repo: repo, views: views, supplier: supplier, settings: defaultSettings()}
	for _, opt := range opts {
		opt(&t.settings)
	}
	return t
}

// TrackViews records today's observation for each ACTIVE clip of each
// ACTIVE campaign whose platform the campaign targets. Supplier and ledger
// failures are counted per clip and do not stop the run.
func (t *ViewTracker) TrackViews(ctx context.Context) (*port.TrackResult, error) {
	release, err := t.acquire(ctx, jobTrack)
	if err != nil {
		return nil, err
	}
	defer release()

	started := t.now()
	defer func() { t.metrics.RunFinished(jobTrack, time.Since(started)) }()

	campaigns, err := t.repo.ListActiveCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}

	res := &port.TrackResult{Campaigns: len(campaigns)}
	day := domain.ObservationDay(t.now())
	for _, camp := range campaigns {
		clips, err := t.repo.ListActiveClips(ctx, camp.ID)
		if err != nil {
			t.logger.Error("list clips failed", slog.Int64("campaign_id", camp.ID), slog.Any("error", err))
			continue
		}
		for _, clip := range clips {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			if !camp.Targets(clip.Platform) {
				res.Skipped++
				continue
			}
			snap, err := t.supplier.FetchViews(ctx, clip)
			if err != nil {
				res.Failed++
				t.metrics.ObservationRecorded(clip.Platform, "supplier_error")
				t.logger.Warn("view fetch failed",
					slog.Int64("clip_id", clip.ID), slog.String("platform", clip.Platform), slog.Any("error", err))
				continue
			}
			err = t.views.UpsertObservation(ctx, domain.ViewObservation{
				ClipID:   clip.ID,
				Date:     day,
				Views:    snap.Views,
				Likes:    snap.Likes,
				Shares:   snap.Shares,
				Platform: clip.Platform,
			})
			if err != nil {
				res.Failed++
				t.metrics.ObservationRecorded(clip.Platform, "store_error")
				t.logger.Error("store observation failed", slog.Int64("clip_id", clip.ID), slog.Any("error", err))
				continue
			}
			res.Recorded++
			t.metrics.ObservationRecorded(clip.Platform, "ok")
		}
	}
	t.logger.Info("view tracking finished",
		slog.Int("campaigns", res.Campaigns),
		slog.Int("recorded", res.Recorded),
		slog.Int("failed", res.Failed))
	return res, nil
}
