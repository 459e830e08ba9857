package gormstore

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clipmarket/internal/core/domain"
)

// Money columns are stored as text so sqlite keeps the exact decimal value.

type campaignModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"not null"`
	Budget          decimal.Decimal `gorm:"type:text;not null"`
	Spent           decimal.Decimal `gorm:"type:text;not null"`
	PayoutRate      decimal.Decimal `gorm:"type:text;not null"`
	Status          string          `gorm:"size:16;index;not null"`
	TargetPlatforms string          `gorm:"not null;default:''"`
	Version         int64           `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (campaignModel) TableName() string { return "campaigns" }

type clipModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CampaignID   int64  `gorm:"index;not null"`
	UserID       string `gorm:"not null"`
	URL          string `gorm:"not null"`
	Platform     string `gorm:"size:32;not null"`
	Status       string `gorm:"size:16;index;not null"`
	InitialViews int64  `gorm:"not null;default:0"`
	SettledViews *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (clipModel) TableName() string { return "clips" }

type observationModel struct {
	ClipID     int64  `gorm:"primaryKey;autoIncrement:false"`
	ObservedOn string `gorm:"primaryKey;size:10"`
	Views      int64  `gorm:"not null"`
	Likes      int64  `gorm:"not null;default:0"`
	Shares     int64  `gorm:"not null;default:0"`
	Platform   string `gorm:"size:32"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (observationModel) TableName() string { return "view_observations" }

type payoutModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CampaignID    int64           `gorm:"index;not null"`
	UserID        string          `gorm:"not null"`
	ClipID        int64           `gorm:"index;not null"`
	PeriodViews   int64           `gorm:"not null"`
	BaselineViews int64           `gorm:"not null"`
	LatestViews   int64           `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:text;not null"`
	BudgetLimited bool            `gorm:"not null"`
	Status        string          `gorm:"size:16;index;not null"`
	ComputedAt    time.Time       `gorm:"index;not null"`
	PaidAt        *time.Time
}

func (payoutModel) TableName() string { return "payout_records" }

// AutoMigrate creates or updates the store's tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&campaignModel{},
		&clipModel{},
		&observationModel{},
		&payoutModel{},
	)
}

const dayLayout = "2006-01-02"

func (m campaignModel) toDomain() domain.Campaign {
	var platforms []string
	for _, p := range strings.Split(m.TargetPlatforms, ",") {
		if p = strings.TrimSpace(p); p != "" {
			platforms = append(platforms, p)
		}
	}
	return domain.Campaign{
		ID:              m.ID,
		Name:            m.Name,
		Budget:          m.Budget,
		Spent:           m.Spent,
		PayoutRate:      m.PayoutRate,
		Status:          domain.CampaignStatus(m.Status),
		TargetPlatforms: platforms,
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (m clipModel) toDomain() domain.Clip {
	return domain.Clip{
		ID:           m.ID,
		CampaignID:   m.CampaignID,
		UserID:       m.UserID,
		URL:          m.URL,
		Platform:     m.Platform,
		Status:       domain.ClipStatus(m.Status),
		InitialViews: m.InitialViews,
		SettledViews: m.SettledViews,
		CreatedAt:    m.CreatedAt,
	}
}

func payoutFromDomain(r domain.PayoutRecord) payoutModel {
	return payoutModel{
		ID:            r.ID,
		CampaignID:    r.CampaignID,
		UserID:        r.UserID,
		ClipID:        r.ClipID,
		PeriodViews:   r.PeriodViews,
		BaselineViews: r.BaselineViews,
		LatestViews:   r.LatestViews,
		Amount:        r.Amount,
		BudgetLimited: r.BudgetLimited,
		Status:        string(r.Status),
		ComputedAt:    r.ComputedAt.UTC(),
		PaidAt:        r.PaidAt,
	}
}

func (m payoutModel) toDomain() domain.PayoutRecord {
	return domain.PayoutRecord{
		ID:            m.ID,
		CampaignID:    m.CampaignID,
		UserID:        m.UserID,
		ClipID:        m.ClipID,
		PeriodViews:   m.PeriodViews,
		BaselineViews: m.BaselineViews,
		LatestViews:   m.LatestViews,
		Amount:        m.Amount,
		BudgetLimited: m.BudgetLimited,
		Status:        domain.PayoutStatus(m.Status),
		ComputedAt:    m.ComputedAt,
		PaidAt:        m.PaidAt,
	}
}
