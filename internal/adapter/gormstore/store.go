package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"clipmarket/internal/core/domain"
	"clipmarket/internal/core/port"
)

// Store implements port.PayoutRepository and port.ViewLedger on gorm. It is
// used with sqlite for local runs and tests.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// OpenSQLite opens dsn with the pure Go sqlite driver and migrates the
// schema. sqlite allows a single writer, so the pool is capped at one
// connection.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err = AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func (s *Store) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var rows []campaignModel
	err := s.db.WithContext(ctx).
		Where("status = ?", string(domain.CampaignActive)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (s *Store) ListActiveClips(ctx context.Context, campaignID int64) ([]domain.Clip, error) {
	var rows []clipModel
	err := s.db.WithContext(ctx).
		Where("campaign_id = ? AND status = ?", campaignID, string(domain.ClipActive)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Clip, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// ApplyCampaignPayouts writes the update in one transaction. The campaign
// row is only changed while its version matches ExpectedVersion.
func (s *Store) ApplyCampaignPayouts(ctx context.Context, update port.CampaignUpdate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var camp campaignModel
		if err := tx.First(&camp, update.CampaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return port.ErrStaleCampaign
			}
			return err
		}
		if update.Spent.GreaterThan(camp.Budget) {
			return port.ErrStaleCampaign
		}

		res := tx.Model(&campaignModel{}).
			Where("id = ? AND version = ? AND status = ?", update.CampaignID, update.ExpectedVersion, string(domain.CampaignActive)).
			Updates(map[string]any{
				"spent":      update.Spent,
				"status":     string(update.Status),
				"version":    gorm.Expr("version + 1"),
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return port.ErrStaleCampaign
		}

		if len(update.Records) > 0 {
			rows := make([]payoutModel, 0, len(update.Records))
			for _, r := range update.Records {
				rows = append(rows, payoutFromDomain(r))
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("insert payouts: %w", err)
			}
		}
		for _, st := range update.Settlements {
			err := tx.Model(&clipModel{}).
				Where("id = ? AND campaign_id = ?", st.ClipID, update.CampaignID).
				Updates(map[string]any{"settled_views": st.Views, "updated_at": time.Now().UTC()}).Error
			if err != nil {
				return fmt.Errorf("settle clip %d: %w", st.ClipID, err)
			}
		}
		return nil
	})
}

func (s *Store) ListPendingPayouts(ctx context.Context, olderThan time.Time, limit int) ([]domain.PayoutRecord, error) {
	var rows []payoutModel
	err := s.db.WithContext(ctx).
		Where("status = ? AND computed_at <= ?", string(domain.PayoutPending), olderThan.UTC()).
		Order("computed_at, id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return payoutsToDomain(rows), nil
}

func (s *Store) MarkPayoutPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	res := s.db.WithContext(ctx).Model(&payoutModel{}).
		Where("id = ? AND status = ?", id, string(domain.PayoutPending)).
		Updates(map[string]any{"status": string(domain.PayoutPaid), "paid_at": paidAt.UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return port.ErrPayoutNotPending
	}
	return nil
}

func (s *Store) ListCampaignPayouts(ctx context.Context, campaignID int64, page port.Page) ([]domain.PayoutRecord, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&campaignModel{}).Where("id = ?", campaignID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, port.ErrCampaignNotFound
	}
	var rows []payoutModel
	err := s.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("computed_at DESC, id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return payoutsToDomain(rows), nil
}

// GetStats sums in Go since the amounts are stored as text.
func (s *Store) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	q := s.db.WithContext(ctx).
		Where("computed_at >= ? AND computed_at <= ?", req.From.UTC(), req.To.UTC())
	if req.CampaignID != nil {
		q = q.Where("campaign_id = ?", *req.CampaignID)
	}
	var rows []payoutModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	resp := &port.StatsResp{PendingAmount: decimal.Zero, PaidAmount: decimal.Zero}
	for _, r := range rows {
		resp.Records++
		resp.PeriodViews += r.PeriodViews
		switch domain.PayoutStatus(r.Status) {
		case domain.PayoutPending:
			resp.PendingAmount = resp.PendingAmount.Add(r.Amount)
		case domain.PayoutPaid:
			resp.PaidAmount = resp.PaidAmount.Add(r.Amount)
		}
	}
	return resp, nil
}

// LatestObservations returns the clip's settled count and newest
// observation.
func (s *Store) LatestObservations(ctx context.Context, clip domain.Clip) (port.ObservationPair, error) {
	var c clipModel
	err := s.db.WithContext(ctx).Select("id", "settled_views").First(&c, clip.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return port.ObservationPair{}, nil
	}
	if err != nil {
		return port.ObservationPair{}, err
	}

	var latest []observationModel
	err = s.db.WithContext(ctx).
		Where("clip_id = ?", clip.ID).
		Order("observed_on DESC").
		Limit(1).
		Find(&latest).Error
	if err != nil {
		return port.ObservationPair{}, err
	}
	if len(latest) == 0 {
		return port.ObservationPair{Previous: c.SettledViews}, nil
	}
	return port.ObservationPair{Previous: c.SettledViews, Latest: latest[0].Views, Found: true}, nil
}

// UpsertObservation stores obs, replacing the one for the same clip and day.
func (s *Store) UpsertObservation(ctx context.Context, obs domain.ViewObservation) error {
	now := time.Now().UTC()
	row := observationModel{
		ClipID:     obs.ClipID,
		ObservedOn: domain.ObservationDay(obs.Date).Format(dayLayout),
		Views:      obs.Views,
		Likes:      obs.Likes,
		Shares:     obs.Shares,
		Platform:   obs.Platform,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clip_id"}, {Name: "observed_on"}},
		DoUpdates: clause.AssignmentColumns([]string{"views", "likes", "shares", "platform", "updated_at"}),
	}).Create(&row).Error
}

func payoutsToDomain(rows []payoutModel) []domain.PayoutRecord {
	out := make([]domain.PayoutRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}
