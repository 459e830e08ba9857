package domain

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignCompleted CampaignStatus = "COMPLETED"
	CampaignCancelled CampaignStatus = "CANCELLED"
)

// Campaign represents a brand campaign clippers submit content against.
// Money fields are decimal currency amounts. PayoutRate is paid per
// RateUnit views. Version is bumped on every engine write and is used as the
// compare-and-set token for spend updates.
type Campaign struct {
	ID              int64
	Name            string
	Budget          decimal.Decimal
	Spent           decimal.Decimal
	PayoutRate      decimal.Decimal
	Status          CampaignStatus
	TargetPlatforms []string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Remaining returns the unspent part of the budget. It is never negative.
func (c Campaign) Remaining() decimal.Decimal {
	r := c.Budget.Sub(c.Spent)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// IsExhausted reports whether spent has reached the budget.
func (c Campaign) IsExhausted() bool {
	return c.Spent.GreaterThanOrEqual(c.Budget)
}

// Targets reports whether clips on platform are tracked for this campaign.
// An empty target set accepts every platform.
func (c Campaign) Targets(platform string) bool {
	if len(c.TargetPlatforms) == 0 {
		return true
	}
	return slices.ContainsFunc(c.TargetPlatforms, func(p string) bool {
		return strings.EqualFold(p, platform)
	})
}

// Validate checks the monetary fields the engine relies on.
func (c Campaign) Validate() error {
	switch {
	case c.Budget.IsNegative():
		return errors.New("negative budget")
	case c.Spent.IsNegative():
		return errors.New("negative spent")
	case c.PayoutRate.IsNegative():
		return errors.New("negative payout rate")
	}
	return nil
}
