package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"clipmarket/internal/core/domain"
	"clipmarket/internal/core/port"
)

const (
	jobCalculate = "calculate"
	jobDisburse  = "disburse"
)

// PayoutUseCase is the payout calculation engine. It turns view growth of
// approved clips into payout records, keeps campaigns within budget and
// completes campaigns whose budget is used up. It implements
// port.PayoutUseCase.
type PayoutUseCase struct {
	repo  port.PayoutRepository
	views port.ViewLedger
	sink  port.DisbursementSink
	settings
}

// NewPayoutUseCase creates the engine over the given repository, view
// ledger and disbursement sink.
func NewPayoutUseCase(repo port.PayoutRepository, views port.ViewLedger, sink port.DisbursementSink, opts ...Option) *PayoutUseCase {
	u := &PayoutUseCase{repo: repo, views: views, sink: sink, settings: defaultSettings()}
	for _, opt := range opts {
		opt(&u.settings)
	}
	return u
}

// CalculateAllCampaignPayouts computes payouts for every ACTIVE campaign.
// Campaigns are independent: one failing is logged and omitted from the
// result while the others are still calculated and persisted. Results keep
// the order the repository listed the campaigns in.
func (u *PayoutUseCase) CalculateAllCampaignPayouts(ctx context.Context) ([]port.CampaignResult, error) {
	release, err := u.acquire(ctx, jobCalculate)
	if err != nil {
		return nil, err
	}
	defer release()

	started := u.now()
	defer func() { u.metrics.RunFinished(jobCalculate, time.Since(started)) }()

	campaigns, err := u.repo.ListActiveCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}

	results := make([]*port.CampaignResult, len(campaigns))
	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i := range campaigns {
		camp := campaigns[i]
		g.Go(func() error {
			res, err := u.safeCalculate(ctx, camp)
			if err != nil {
				u.metrics.CampaignProcessed("failed")
				u.logger.Error("campaign payout calculation failed",
					slog.Int64("campaign_id", camp.ID), slog.Any("error", err))
				return nil
			}
			u.metrics.CampaignProcessed("ok")
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	out := make([]port.CampaignResult, 0, len(results))
	var records int
	for _, res := range results {
		if res != nil {
			out = append(out, *res)
			records += len(res.Payouts)
		}
	}
	u.logger.Info("payout calculation finished",
		slog.Int("campaigns", len(campaigns)),
		slog.Int("succeeded", len(out)),
		slog.Int("payouts", records))
	return out, nil
}

// safeCalculate turns a panic inside one campaign into an error so the rest
// of the run continues.
func (u *PayoutUseCase) safeCalculate(ctx context.Context, camp domain.Campaign) (res *port.CampaignResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return u.calculateCampaign(ctx, camp)
}

// calculateCampaign runs the per-campaign algorithm. Clips are walked in
// order with a running total so that each clip's budget check sees what the
// clips before it consumed. Nothing is written unless the whole campaign
// computed cleanly, and then everything is written in one atomic update.
func (u *PayoutUseCase) calculateCampaign(ctx context.Context, camp domain.Campaign) (*port.CampaignResult, error) {
	if err := camp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidCampaign, err)
	}
	clips, err := u.repo.ListActiveClips(ctx, camp.ID)
	if err != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}

	var (
		now         = u.now().UTC()
		remaining   = camp.Remaining()
		queued      = decimal.Zero
		records     []domain.PayoutRecord
		settlements []port.ClipSettlement
	)
	for _, clip := range clips {
		pair, err := u.views.LatestObservations(ctx, clip)
		if err != nil {
			u.metrics.ClipSkipped("lookup_error")
			u.logger.Warn("skipping clip: view lookup failed",
				slog.Int64("campaign_id", camp.ID), slog.Int64("clip_id", clip.ID), slog.Any("error", err))
			continue
		}
		if !pair.Found {
			u.metrics.ClipSkipped("no_observation")
			continue
		}

		baseline := pair.Baseline(clip.InitialViews)
		periodViews := domain.PeriodViews(baseline, pair.Latest)
		if periodViews == 0 {
			continue
		}

		amount := domain.PayoutAmount(periodViews, camp.PayoutRate)
		limited := false
		if available := remaining.Sub(queued); amount.GreaterThan(available) {
			amount = available
			limited = true
		}
		if !amount.IsPositive() {
			// views stay unsettled and keep accruing towards the next run
			u.metrics.ClipSkipped("zero_amount")
			continue
		}

		records = append(records, domain.PayoutRecord{
			ID:            uuid.New(),
			CampaignID:    camp.ID,
			UserID:        clip.UserID,
			ClipID:        clip.ID,
			PeriodViews:   periodViews,
			BaselineViews: baseline,
			LatestViews:   pair.Latest,
			Amount:        amount,
			BudgetLimited: limited,
			Status:        domain.PayoutPending,
			ComputedAt:    now,
		})
		settlements = append(settlements, port.ClipSettlement{ClipID: clip.ID, Views: pair.Latest})
		queued = queued.Add(amount)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	spent := camp.Spent.Add(queued)
	shouldComplete := spent.GreaterThanOrEqual(camp.Budget)
	status := camp.Status
	if shouldComplete {
		status = domain.CampaignCompleted
	}

	if len(records) > 0 || status != camp.Status {
		err = u.repo.ApplyCampaignPayouts(ctx, port.CampaignUpdate{
			CampaignID:      camp.ID,
			ExpectedVersion: camp.Version,
			Spent:           spent,
			Status:          status,
			Records:         records,
			Settlements:     settlements,
		})
		if err != nil {
			return nil, fmt.Errorf("apply payouts: %w", err)
		}
	}

	for _, rec := range records {
		u.metrics.PayoutCreated(rec.Amount.InexactFloat64(), rec.BudgetLimited)
	}
	if shouldComplete {
		u.logger.Info("campaign budget exhausted, marked completed",
			slog.Int64("campaign_id", camp.ID), slog.String("spent", spent.StringFixed(domain.CurrencyPlaces)))
	}
	if records == nil {
		records = []domain.PayoutRecord{}
	}
	return &port.CampaignResult{
		CampaignID:     camp.ID,
		Payouts:        records,
		TotalSpent:     queued,
		ShouldComplete: shouldComplete,
	}, nil
}

// ProcessPendingPayouts hands due PENDING records to the disbursement sink
// and marks them PAID once accepted. A record the sink rejects stays PENDING
// and is picked up again by a later run.
func (u *PayoutUseCase) ProcessPendingPayouts(ctx context.Context) error {
	release, err := u.acquire(ctx, jobDisburse)
	if err != nil {
		return err
	}
	defer release()

	started := u.now()
	defer func() { u.metrics.RunFinished(jobDisburse, time.Since(started)) }()

	due := u.now().UTC().Add(-u.pendingMinAge)
	records, err := u.repo.ListPendingPayouts(ctx, due, u.pendingBatch)
	if err != nil {
		return fmt.Errorf("list pending payouts: %w", err)
	}

	var paid, failed int
	for _, rec := range records {
		if ctx.Err() != nil {
			break
		}
		if err = u.sink.Disburse(ctx, rec); err != nil {
			failed++
			u.metrics.Disbursement("sink_error")
			u.logger.Warn("disbursement hand-off failed",
				slog.String("payout_id", rec.ID.String()), slog.Any("error", err))
			continue
		}
		err = u.repo.MarkPayoutPaid(ctx, rec.ID, u.now().UTC())
		switch {
		case errors.Is(err, port.ErrPayoutNotPending):
			u.metrics.Disbursement("already_paid")
		case err != nil:
			failed++
			u.metrics.Disbursement("mark_error")
			u.logger.Error("mark payout paid failed",
				slog.String("payout_id", rec.ID.String()), slog.Any("error", err))
		default:
			paid++
			u.metrics.Disbursement("paid")
		}
	}
	u.logger.Info("pending payouts processed",
		slog.Int("due", len(records)), slog.Int("paid", paid), slog.Int("failed", failed))
	return nil
}

// ListCampaignPayouts returns a page of a campaign's payout records.
func (u *PayoutUseCase) ListCampaignPayouts(ctx context.Context, campaignID int64, page port.Page) ([]domain.PayoutRecord, error) {
	if page.Limit <= 0 || page.Limit > 500 {
		page.Limit = 50
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return u.repo.ListCampaignPayouts(ctx, campaignID, page)
}

// GetStats returns aggregated payout totals in a period.
func (u *PayoutUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx, req)
}

func (s *settings) acquire(ctx context.Context, job string) (func(), error) {
	release, ok, err := s.guard.Acquire(ctx, job, s.leaseTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire %s lease: %w", job, err)
	}
	if !ok {
		return nil, port.ErrRunInProgress
	}
	return release, nil
}
