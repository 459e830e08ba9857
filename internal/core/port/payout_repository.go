package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"clipmarket/internal/core/domain"
)

var (
	// ErrStaleCampaign is returned when a campaign changed between the read a
	// calculation was based on and the write applying it.
	ErrStaleCampaign = errors.New("campaign modified concurrently")
	// ErrPayoutNotPending is returned when a payout record is not in the
	// PENDING state any more.
	ErrPayoutNotPending = errors.New("payout is not pending")
	// ErrCampaignNotFound is returned for unknown campaign ids.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrInvalidCampaign marks campaigns whose stored values cannot be used
	// for a calculation.
	ErrInvalidCampaign = errors.New("invalid campaign")
)

// PayoutRepository defines the persistence layer for the payout engine: the
// campaign store and the payout ledger. It is an outbound port.
// Implementations must be concurrency-safe and apply a campaign's spend,
// status and payout rows atomically.
type PayoutRepository interface {
	// ListActiveCampaigns returns all campaigns with status ACTIVE.
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListActiveClips returns the ACTIVE clips of a campaign ordered by id.
	ListActiveClips(ctx context.Context, campaignID int64) ([]domain.Clip, error)
	// ApplyCampaignPayouts persists the outcome of one campaign calculation
	// in a single transaction. It fails with ErrStaleCampaign when the
	// campaign version no longer equals update.ExpectedVersion, in which case
	// nothing is written.
	ApplyCampaignPayouts(ctx context.Context, update CampaignUpdate) error
	// ListPendingPayouts returns PENDING records computed at or before
	// olderThan, oldest first.
	ListPendingPayouts(ctx context.Context, olderThan time.Time, limit int) ([]domain.PayoutRecord, error)
	// MarkPayoutPaid transitions a record from PENDING to PAID.
	MarkPayoutPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	// ListCampaignPayouts returns the payout records of a campaign, newest
	// first.
	ListCampaignPayouts(ctx context.Context, campaignID int64, page Page) ([]domain.PayoutRecord, error)
	// GetStats returns aggregated payout totals for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// CampaignUpdate is the write set produced by one campaign calculation.
type CampaignUpdate struct {
	CampaignID      int64
	ExpectedVersion int64
	Spent           decimal.Decimal
	Status          domain.CampaignStatus
	Records         []domain.PayoutRecord
	Settlements     []ClipSettlement
}

// ClipSettlement moves a clip's settled view count forward to Views.
type ClipSettlement struct {
	ClipID int64
	Views  int64
}

// Page bounds list queries.
type Page struct {
	Limit  int
	Offset int
}
