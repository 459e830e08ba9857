package gormstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clipmarket/internal/adapter/usecase"
	"clipmarket/internal/core/domain"
	"clipmarket/internal/core/port"
	"clipmarket/internal/core/port/mocks"
)

var day1 = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func setupStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db, err := OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return New(db), db
}

func createCampaign(t *testing.T, db *gorm.DB, budget, rate string) campaignModel {
	t.Helper()
	c := campaignModel{
		Name:            "Spring launch",
		Budget:          decimal.RequireFromString(budget),
		Spent:           decimal.Zero,
		PayoutRate:      decimal.RequireFromString(rate),
		Status:          string(domain.CampaignActive),
		TargetPlatforms: "tiktok,youtube",
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func createClip(t *testing.T, db *gorm.DB, campaignID int64, user string, initial int64) clipModel {
	t.Helper()
	c := clipModel{
		CampaignID:   campaignID,
		UserID:       user,
		URL:          "https://example.com/" + uuid.NewString(),
		Platform:     "tiktok",
		Status:       string(domain.ClipActive),
		InitialViews: initial,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func observe(t *testing.T, s *Store, clipID int64, day time.Time, views int64) {
	t.Helper()
	require.NoError(t, s.UpsertObservation(context.Background(), domain.ViewObservation{
		ClipID: clipID, Date: day, Views: views, Platform: "tiktok",
	}))
}

func newEngine(t *testing.T, s *Store, now *time.Time) *usecase.PayoutUseCase {
	return usecase.NewPayoutUseCase(s, s, mocks.NewMockDisbursementSink(t),
		usecase.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		usecase.WithClock(func() time.Time { return *now }),
		usecase.WithConcurrency(1))
}

func TestUpsertObservationReplacesSameDay(t *testing.T) {
	s, db := setupStore(t)
	camp := createCampaign(t, db, "100", "1")
	clip := createClip(t, db, camp.ID, "user-1", 0)

	observe(t, s, clip.ID, day1, 100)
	observe(t, s, clip.ID, day1.Add(3*time.Hour), 250)

	var n int64
	require.NoError(t, db.Model(&observationModel{}).Where("clip_id = ?", clip.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	pair, err := s.LatestObservations(context.Background(), clip.toDomain())
	require.NoError(t, err)
	assert.True(t, pair.Found)
	assert.Equal(t, int64(250), pair.Latest)
	assert.Nil(t, pair.Previous)
}

func TestLatestObservationsWithoutData(t *testing.T) {
	s, db := setupStore(t)
	camp := createCampaign(t, db, "100", "1")
	clip := createClip(t, db, camp.ID, "user-1", 0)

	pair, err := s.LatestObservations(context.Background(), clip.toDomain())
	require.NoError(t, err)
	assert.False(t, pair.Found)

	pair, err = s.LatestObservations(context.Background(), domain.Clip{ID: 999})
	require.NoError(t, err)
	assert.False(t, pair.Found)
}

func TestEngineRunsAreIdempotent(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()
	camp := createCampaign(t, db, "100", "2.00")
	clip := createClip(t, db, camp.ID, "user-1", 0)
	observe(t, s, clip.ID, day1, 10000)

	now := day1
	engine := newEngine(t, s, &now)

	res, err := engine.CalculateAllCampaignPayouts(ctx)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Len(t, res[0].Payouts, 1)
	assert.Equal(t, "20.00", res[0].Payouts[0].Amount.StringFixed(2))

	// same observations, nothing new to pay
	now = day1.Add(time.Hour)
	res, err = engine.CalculateAllCampaignPayouts(ctx)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Empty(t, res[0].Payouts)

	observe(t, s, clip.ID, day1.AddDate(0, 0, 1), 12500)
	now = day1.AddDate(0, 0, 1)
	res, err = engine.CalculateAllCampaignPayouts(ctx)
	require.NoError(t, err)
	require.Len(t, res[0].Payouts, 1)
	assert.Equal(t, int64(2500), res[0].Payouts[0].PeriodViews)
	assert.Equal(t, int64(10000), res[0].Payouts[0].BaselineViews)
	assert.Equal(t, "5.00", res[0].Payouts[0].Amount.StringFixed(2))

	var stored campaignModel
	require.NoError(t, db.First(&stored, camp.ID).Error)
	assert.Equal(t, "25.00", stored.Spent.StringFixed(2))
	assert.Equal(t, int64(2), stored.Version)

	var c clipModel
	require.NoError(t, db.First(&c, clip.ID).Error)
	require.NotNil(t, c.SettledViews)
	assert.Equal(t, int64(12500), *c.SettledViews)
}

func TestEngineExhaustsBudgetAndCompletes(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()
	camp := createCampaign(t, db, "30", "2.00")
	a := createClip(t, db, camp.ID, "user-1", 0)
	b := createClip(t, db, camp.ID, "user-2", 0)
	observe(t, s, a.ID, day1, 10000) // 20.00
	observe(t, s, b.ID, day1, 10000) // 20.00, clipped to 10.00

	now := day1
	res, err := newEngine(t, s, &now).CalculateAllCampaignPayouts(ctx)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Len(t, res[0].Payouts, 2)
	assert.False(t, res[0].Payouts[0].BudgetLimited)
	assert.True(t, res[0].Payouts[1].BudgetLimited)
	assert.Equal(t, "10.00", res[0].Payouts[1].Amount.StringFixed(2))
	assert.True(t, res[0].ShouldComplete)

	var stored campaignModel
	require.NoError(t, db.First(&stored, camp.ID).Error)
	assert.Equal(t, string(domain.CampaignCompleted), stored.Status)
	assert.True(t, stored.Spent.Equal(stored.Budget))

	active, err := s.ListActiveCampaigns(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestApplyCampaignPayoutsRejectsStaleVersion(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()
	camp := createCampaign(t, db, "100", "1")
	clip := createClip(t, db, camp.ID, "user-1", 0)

	update := port.CampaignUpdate{
		CampaignID:      camp.ID,
		ExpectedVersion: 0,
		Spent:           decimal.RequireFromString("5"),
		Status:          domain.CampaignActive,
		Records: []domain.PayoutRecord{{
			ID: uuid.New(), CampaignID: camp.ID, UserID: "user-1", ClipID: clip.ID,
			PeriodViews: 5000, LatestViews: 5000, Amount: decimal.RequireFromString("5"),
			Status: domain.PayoutPending, ComputedAt: day1,
		}},
		Settlements: []port.ClipSettlement{{ClipID: clip.ID, Views: 5000}},
	}
	require.NoError(t, s.ApplyCampaignPayouts(ctx, update))

	update.Records[0].ID = uuid.New()
	err := s.ApplyCampaignPayouts(ctx, update)
	require.ErrorIs(t, err, port.ErrStaleCampaign)

	var n int64
	require.NoError(t, db.Model(&payoutModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestApplyCampaignPayoutsRejectsOverspend(t *testing.T) {
	s, db := setupStore(t)
	camp := createCampaign(t, db, "10", "1")

	err := s.ApplyCampaignPayouts(context.Background(), port.CampaignUpdate{
		CampaignID: camp.ID,
		Spent:      decimal.RequireFromString("10.01"),
		Status:     domain.CampaignCompleted,
	})
	require.ErrorIs(t, err, port.ErrStaleCampaign)
}

func TestPendingPayoutLifecycle(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()
	camp := createCampaign(t, db, "100", "1")
	clip := createClip(t, db, camp.ID, "user-1", 0)

	older := domain.PayoutRecord{ID: uuid.New(), CampaignID: camp.ID, UserID: "user-1", ClipID: clip.ID,
		PeriodViews: 1000, Amount: decimal.RequireFromString("1"), Status: domain.PayoutPending, ComputedAt: day1.Add(-2 * time.Hour)}
	newer := older
	newer.ID = uuid.New()
	newer.Amount = decimal.RequireFromString("2.50")
	newer.ComputedAt = day1
	require.NoError(t, s.ApplyCampaignPayouts(ctx, port.CampaignUpdate{
		CampaignID: camp.ID, Spent: decimal.RequireFromString("3.50"), Status: domain.CampaignActive,
		Records: []domain.PayoutRecord{older, newer},
	}))

	due, err := s.ListPendingPayouts(ctx, day1.Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, older.ID, due[0].ID)

	require.NoError(t, s.MarkPayoutPaid(ctx, older.ID, day1))
	require.ErrorIs(t, s.MarkPayoutPaid(ctx, older.ID, day1), port.ErrPayoutNotPending)

	page, err := s.ListCampaignPayouts(ctx, camp.ID, port.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, newer.ID, page[0].ID)
	assert.Equal(t, domain.PayoutPaid, page[1].Status)

	_, err = s.ListCampaignPayouts(ctx, 404, port.Page{Limit: 10})
	require.ErrorIs(t, err, port.ErrCampaignNotFound)

	stats, err := s.GetStats(ctx, port.StatsReq{From: day1.Add(-24 * time.Hour), To: day1.Add(time.Hour), CampaignID: &camp.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Records)
	assert.Equal(t, "2.50", stats.PendingAmount.StringFixed(2))
	assert.Equal(t, "1.00", stats.PaidAmount.StringFixed(2))
	assert.Equal(t, int64(2000), stats.PeriodViews)
}

func TestSeedIsIdempotent(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, db))
	require.NoError(t, Seed(ctx, db))

	camps, err := s.ListActiveCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, camps, 5)
	assert.ElementsMatch(t, []string{"tiktok", "youtube", "instagram"}, camps[0].TargetPlatforms)

	clips, err := s.ListActiveClips(ctx, camps[0].ID)
	require.NoError(t, err)
	assert.Len(t, clips, 10)
}
