package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"clipmarket/internal/core/domain"
)

// PayoutUseCase defines the operations exposed by the payout engine to its
// triggers. This interface represents the primary port into the application
// domain.
type PayoutUseCase interface {
	// CalculateAllCampaignPayouts computes payouts for every ACTIVE campaign.
	// A campaign that fails is logged and left out of the result; the error
	// is only non-nil when the run could not start at all.
	CalculateAllCampaignPayouts(ctx context.Context) ([]CampaignResult, error)

	// ProcessPendingPayouts hands PENDING records to the disbursement sink
	// and marks the accepted ones PAID. Records that fail stay PENDING.
	ProcessPendingPayouts(ctx context.Context) error

	// ListCampaignPayouts returns a page of a campaign's payout records.
	ListCampaignPayouts(ctx context.Context, campaignID int64, page Page) ([]domain.PayoutRecord, error)

	// GetStats returns payout totals for the specified campaign (optional)
	// and time period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// ViewTrackingUseCase polls view suppliers and records observations.
type ViewTrackingUseCase interface {
	TrackViews(ctx context.Context) (*TrackResult, error)
}

// CampaignResult summarises one campaign's calculation. TotalSpent is the
// amount added to the campaign's spend in this run.
type CampaignResult struct {
	CampaignID     int64                 `json:"campaignId"`
	Payouts        []domain.PayoutRecord `json:"payouts"`
	TotalSpent     decimal.Decimal       `json:"totalSpent"`
	ShouldComplete bool                  `json:"shouldComplete"`
}

// TrackResult counts the outcome of a view tracking run.
type TrackResult struct {
	Campaigns int `json:"campaigns"`
	Recorded  int `json:"recorded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// StatsResp contains payout totals for a period. Amounts are currency
// values; counts are numbers of payout records.
type StatsResp struct {
	Records       int64           `json:"records"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PeriodViews   int64           `json:"periodViews"`
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}
