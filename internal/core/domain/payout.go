package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutPending PayoutStatus = "PENDING"
	PayoutPaid    PayoutStatus = "PAID"
)

const (
	// RateUnit is the number of views a campaign payout rate is quoted for.
	RateUnit = 1000
	// CurrencyPlaces is the precision payout amounts are rounded to.
	CurrencyPlaces = 2
)

// PayoutRecord is the amount earned by one clip in one engine run.
// BaselineViews and LatestViews are the observation points PeriodViews was
// computed from. BudgetLimited is set when Amount was cut down to the
// campaign's remaining budget.
type PayoutRecord struct {
	ID            uuid.UUID       `json:"id"`
	CampaignID    int64           `json:"campaignId"`
	UserID        string          `json:"userId"`
	ClipID        int64           `json:"clipId"`
	PeriodViews   int64           `json:"periodViews"`
	BaselineViews int64           `json:"baselineViews"`
	LatestViews   int64           `json:"latestViews"`
	Amount        decimal.Decimal `json:"amount"`
	BudgetLimited bool            `json:"budgetLimited"`
	Status        PayoutStatus    `json:"status"`
	ComputedAt    time.Time       `json:"computedAt"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
}

// PeriodViews returns the growth from baseline to latest. A drop in the
// reported count yields zero.
func PeriodViews(baseline, latest int64) int64 {
	if latest <= baseline {
		return 0
	}
	return latest - baseline
}

// PayoutAmount converts a view delta into currency at rate per RateUnit views,
// rounded half-up to CurrencyPlaces.
func PayoutAmount(periodViews int64, rate decimal.Decimal) decimal.Decimal {
	if periodViews <= 0 || !rate.IsPositive() {
		return decimal.Zero
	}
	raw := decimal.NewFromInt(periodViews).Mul(rate).Div(decimal.NewFromInt(RateUnit))
	// Round is half away from zero, which is half-up for non-negative values.
	return raw.Round(CurrencyPlaces)
}
