package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clipmarket/internal/core/domain"
	"clipmarket/internal/core/port"
	"clipmarket/internal/core/port/mocks"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(v int64) *int64 { return &v }

func newTestEngine(t *testing.T, repo port.PayoutRepository, views port.ViewLedger, sink port.DisbursementSink, opts ...Option) *PayoutUseCase {
	t.Helper()
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return testNow }),
	}
	return NewPayoutUseCase(repo, views, sink, append(base, opts...)...)
}

func activeCampaign(id int64, budget, spent, rate string) domain.Campaign {
	return domain.Campaign{
		ID:         id,
		Budget:     dec(budget),
		Spent:      dec(spent),
		PayoutRate: dec(rate),
		Status:     domain.CampaignActive,
		Version:    3,
	}
}

// TestBudgetClipping checks that a payout larger than the remaining budget
// is cut down to it and the campaign completes in the same update.
func TestBudgetClipping(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	views := mocks.NewMockViewLedger(t)

	camp := activeCampaign(1, "100", "90", "10")
	clip := domain.Clip{ID: 11, CampaignID: 1, UserID: "u1", InitialViews: 1000, Status: domain.ClipActive}

	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{camp}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(1)).Return([]domain.Clip{clip}, nil)
	views.EXPECT().LatestObservations(mock.Anything, clip).Return(port.ObservationPair{Latest: 3000, Found: true}, nil)

	var applied port.CampaignUpdate
	repo.EXPECT().ApplyCampaignPayouts(mock.Anything, mock.AnythingOfType("port.CampaignUpdate")).
		Run(func(_ context.Context, update port.CampaignUpdate) { applied = update }).
		Return(nil)

	res, err := newTestEngine(t, repo, views, nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)

	assert.True(t, res[0].ShouldComplete)
	assert.True(t, res[0].TotalSpent.Equal(dec("10")))
	require.Len(t, res[0].Payouts, 1)
	rec := res[0].Payouts[0]
	assert.True(t, rec.Amount.Equal(dec("10")))
	assert.True(t, rec.BudgetLimited)
	assert.Equal(t, int64(2000), rec.PeriodViews)
	assert.Equal(t, domain.PayoutPending, rec.Status)

	assert.Equal(t, int64(3), applied.ExpectedVersion)
	assert.True(t, applied.Spent.Equal(dec("100")))
	assert.Equal(t, domain.CampaignCompleted, applied.Status)
	assert.Equal(t, []port.ClipSettlement{{ClipID: 11, Views: 3000}}, applied.Settlements)
}

func TestPayoutRounding(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	views := mocks.NewMockViewLedger(t)

	camp := activeCampaign(1, "1000", "0", "7.5")
	clip := domain.Clip{ID: 5, CampaignID: 1, UserID: "u1", Status: domain.ClipActive}

	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{camp}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(1)).Return([]domain.Clip{clip}, nil)
	views.EXPECT().LatestObservations(mock.Anything, clip).
		Return(port.ObservationPair{Previous: ptr(1000), Latest: 1333, Found: true}, nil)
	repo.EXPECT().ApplyCampaignPayouts(mock.Anything, mock.Anything).Return(nil)

	res, err := newTestEngine(t, repo, views, nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Len(t, res[0].Payouts, 1)
	assert.Equal(t, "2.50", res[0].Payouts[0].Amount.StringFixed(2))
	assert.Equal(t, int64(1000), res[0].Payouts[0].BaselineViews)
	assert.False(t, res[0].Payouts[0].BudgetLimited)
	assert.False(t, res[0].ShouldComplete)
}

// TestViewDropProducesNoPayout checks that a count drop is clamped to zero
// and, with nothing to write, the store is not touched.
func TestViewDropProducesNoPayout(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	views := mocks.NewMockViewLedger(t)

	camp := activeCampaign(1, "100", "0", "10")
	clip := domain.Clip{ID: 5, CampaignID: 1, Status: domain.ClipActive}

	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{camp}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(1)).Return([]domain.Clip{clip}, nil)
	views.EXPECT().LatestObservations(mock.Anything, clip).
		Return(port.ObservationPair{Previous: ptr(10000), Latest: 9500, Found: true}, nil)

	res, err := newTestEngine(t, repo, views, nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Empty(t, res[0].Payouts)
	assert.True(t, res[0].TotalSpent.IsZero())
	repo.AssertNotCalled(t, "ApplyCampaignPayouts", mock.Anything, mock.Anything)
}

// TestRunningBudgetAcrossClips checks that later clips see the budget the
// earlier ones consumed in the same run.
func TestRunningBudgetAcrossClips(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	views := mocks.NewMockViewLedger(t)

	camp := activeCampaign(1, "15", "0", "10")
	a := domain.Clip{ID: 1, CampaignID: 1, UserID: "ua", Status: domain.ClipActive}
	b := domain.Clip{ID: 2, CampaignID: 1, UserID: "ub", Status: domain.ClipActive}
	c := domain.Clip{ID: 3, CampaignID: 1, UserID: "uc", Status: domain.ClipActive}

	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{camp}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(1)).Return([]domain.Clip{a, b, c}, nil)
	views.EXPECT().LatestObservations(mock.Anything, a).Return(port.ObservationPair{Latest: 1000, Found: true}, nil)
	views.EXPECT().LatestObservations(mock.Anything, b).Return(port.ObservationPair{Latest: 1000, Found: true}, nil)
	views.EXPECT().LatestObservations(mock.Anything, c).Return(port.ObservationPair{Latest: 1000, Found: true}, nil)

	var applied port.CampaignUpdate
	repo.EXPECT().ApplyCampaignPayouts(mock.Anything, mock.Anything).
		Run(func(_ context.Context, update port.CampaignUpdate) { applied = update }).
		Return(nil)

	res, err := newTestEngine(t, repo, views, nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)

	payouts := res[0].Payouts
	require.Len(t, payouts, 2, "third clip finds no budget left and gets no record")
	assert.True(t, payouts[0].Amount.Equal(dec("10")))
	assert.False(t, payouts[0].BudgetLimited)
	assert.True(t, payouts[1].Amount.Equal(dec("5")))
	assert.True(t, payouts[1].BudgetLimited)

	assert.True(t, applied.Spent.Equal(dec("15")))
	assert.Equal(t, domain.CampaignCompleted, applied.Status)
	assert.Len(t, applied.Settlements, 2)
	assert.True(t, applied.Spent.LessThanOrEqual(camp.Budget))
}

// TestCampaignFailureIsolation checks that a campaign failing during clip
// lookup is left out while the other campaign is still persisted.
func TestCampaignFailureIsolation(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	views := mocks.NewMockViewLedger(t)

	good := activeCampaign(1, "100", "0", "10")
	bad := activeCampaign(2, "100", "40", "10")
	clip := domain.Clip{ID: 7, CampaignID: 1, UserID: "u", Status: domain.ClipActive}

	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{good, bad}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(1)).Return([]domain.Clip{clip}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(2)).Return(nil, errors.New("connection reset"))
	views.EXPECT().LatestObservations(mock.Anything, clip).Return(port.ObservationPair{Latest: 500, Found: true}, nil)
	repo.EXPECT().ApplyCampaignPayouts(mock.Anything, mock.MatchedBy(func(u port.CampaignUpdate) bool {
		return u.CampaignID == 1
	})).Return(nil).Once()

	res, err := newTestEngine(t, repo, views, nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(1), res[0].CampaignID)
	assert.True(t, res[0].TotalSpent.Equal(dec("5")))
}

func TestStaleCampaignIsOmitted(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	views := mocks.NewMockViewLedger(t)

	camp := activeCampaign(1, "100", "0", "10")
	clip := domain.Clip{ID: 7, CampaignID: 1, Status: domain.ClipActive}

	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{camp}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(1)).Return([]domain.Clip{clip}, nil)
	views.EXPECT().LatestObservations(mock.Anything, clip).Return(port.ObservationPair{Latest: 500, Found: true}, nil)
	repo.EXPECT().ApplyCampaignPayouts(mock.Anything, mock.Anything).Return(port.ErrStaleCampaign)

	res, err := newTestEngine(t, repo, views, nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res)
}

// TestClipLookupFailureSkipsClip checks that a failing view lookup only
// costs that clip its payout.
func TestClipLookupFailureSkipsClip(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	views := mocks.NewMockViewLedger(t)

	camp := activeCampaign(1, "100", "0", "10")
	broken := domain.Clip{ID: 1, CampaignID: 1, Status: domain.ClipActive}
	fresh := domain.Clip{ID: 2, CampaignID: 1, Status: domain.ClipActive}
	ok := domain.Clip{ID: 3, CampaignID: 1, UserID: "u3", Status: domain.ClipActive}

	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{camp}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(1)).Return([]domain.Clip{broken, fresh, ok}, nil)
	views.EXPECT().LatestObservations(mock.Anything, broken).Return(port.ObservationPair{}, context.DeadlineExceeded)
	views.EXPECT().LatestObservations(mock.Anything, fresh).Return(port.ObservationPair{}, nil)
	views.EXPECT().LatestObservations(mock.Anything, ok).Return(port.ObservationPair{Latest: 1000, Found: true}, nil)
	repo.EXPECT().ApplyCampaignPayouts(mock.Anything, mock.Anything).Return(nil)

	res, err := newTestEngine(t, repo, views, nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Len(t, res[0].Payouts, 1)
	assert.Equal(t, int64(3), res[0].Payouts[0].ClipID)
}

func TestExhaustedActiveCampaignCompletes(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)

	camp := activeCampaign(1, "50", "50", "10")
	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{camp}, nil)
	repo.EXPECT().ListActiveClips(mock.Anything, int64(1)).Return(nil, nil)
	repo.EXPECT().ApplyCampaignPayouts(mock.Anything, mock.MatchedBy(func(u port.CampaignUpdate) bool {
		return len(u.Records) == 0 && u.Status == domain.CampaignCompleted && u.Spent.Equal(dec("50"))
	})).Return(nil)

	res, err := newTestEngine(t, repo, mocks.NewMockViewLedger(t), nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].ShouldComplete)
	assert.Empty(t, res[0].Payouts)
}

func TestInvalidCampaignIsOmitted(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)

	camp := activeCampaign(1, "-5", "0", "10")
	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return([]domain.Campaign{camp}, nil)

	res, err := newTestEngine(t, repo, mocks.NewMockViewLedger(t), nil).CalculateAllCampaignPayouts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestCalculateFailsWhenCampaignsCannotBeListed(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	repo.EXPECT().ListActiveCampaigns(mock.Anything).Return(nil, errors.New("dial tcp: refused"))

	_, err := newTestEngine(t, repo, mocks.NewMockViewLedger(t), nil).CalculateAllCampaignPayouts(context.Background())
	require.Error(t, err)
}

func TestCalculateRejectsOverlappingRun(t *testing.T) {
	guard := NewLocalRunGuard()
	release, ok, err := guard.Acquire(context.Background(), jobCalculate, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	defer release()

	engine := newTestEngine(t, mocks.NewMockPayoutRepository(t), mocks.NewMockViewLedger(t), nil, WithRunGuard(guard, time.Minute))
	_, err = engine.CalculateAllCampaignPayouts(context.Background())
	require.ErrorIs(t, err, port.ErrRunInProgress)
}

func TestProcessPendingPayouts(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	sink := mocks.NewMockDisbursementSink(t)

	failing := domain.PayoutRecord{ID: uuid.New(), Amount: dec("3"), Status: domain.PayoutPending}
	accepted := domain.PayoutRecord{ID: uuid.New(), Amount: dec("4"), Status: domain.PayoutPending}
	raced := domain.PayoutRecord{ID: uuid.New(), Amount: dec("5"), Status: domain.PayoutPending}

	repo.EXPECT().ListPendingPayouts(mock.Anything, testNow.Add(-time.Hour), 10).
		Return([]domain.PayoutRecord{failing, accepted, raced}, nil)
	sink.EXPECT().Disburse(mock.Anything, failing).Return(errors.New("sink unavailable"))
	sink.EXPECT().Disburse(mock.Anything, accepted).Return(nil)
	sink.EXPECT().Disburse(mock.Anything, raced).Return(nil)
	repo.EXPECT().MarkPayoutPaid(mock.Anything, accepted.ID, testNow).Return(nil).Once()
	repo.EXPECT().MarkPayoutPaid(mock.Anything, raced.ID, testNow).Return(port.ErrPayoutNotPending).Once()

	engine := newTestEngine(t, repo, nil, sink, WithPendingPolicy(time.Hour, 10))
	require.NoError(t, engine.ProcessPendingPayouts(context.Background()))
	repo.AssertNotCalled(t, "MarkPayoutPaid", mock.Anything, failing.ID, mock.Anything)
}

func TestListCampaignPayoutsClampsPage(t *testing.T) {
	repo := mocks.NewMockPayoutRepository(t)
	repo.EXPECT().ListCampaignPayouts(mock.Anything, int64(9), port.Page{Limit: 50, Offset: 0}).Return(nil, nil)

	_, err := newTestEngine(t, repo, nil, nil).ListCampaignPayouts(context.Background(), 9, port.Page{Limit: -1, Offset: -3})
	require.NoError(t, err)
}
