package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clipmarket/internal/core/domain"
	"clipmarket/internal/core/port"
)

const payoutColumns = `id, campaign_id, user_id, clip_id, period_views, baseline_views, latest_views,
	amount, budget_limited, status, computed_at, paid_at`

// PayoutRepository implements port.PayoutRepository using pgxpool for PostgreSQL.
type PayoutRepository struct {
	pool *pgxpool.Pool
}

// NewPayoutRepository returns a new repository instance.
func NewPayoutRepository(pool *pgxpool.Pool) *PayoutRepository {
	return &PayoutRepository{pool: pool}
}

// ListActiveCampaigns returns campaigns with status ACTIVE ordered by id.
func (r *PayoutRepository) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, budget, spent, payout_rate, status, target_platforms, version, created_at, updated_at
        FROM campaigns
        WHERE status = 'ACTIVE'
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.Budget, &c.Spent, &c.PayoutRate, &c.Status,
			&c.TargetPlatforms, &c.Version, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}

// ListActiveClips returns the ACTIVE clips of a campaign ordered by id.
func (r *PayoutRepository) ListActiveClips(ctx context.Context, campaignID int64) ([]domain.Clip, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, user_id, url, platform, status, initial_views, settled_views, created_at
        FROM clips
        WHERE campaign_id = $1 AND status = 'ACTIVE'
        ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Clip, error) {
		var c domain.Clip
		err := row.Scan(&c.ID, &c.CampaignID, &c.UserID, &c.URL, &c.Platform, &c.Status,
			&c.InitialViews, &c.SettledViews, &c.CreatedAt)
		return c, err
	})
}

// ApplyCampaignPayouts writes the campaign's new spend and status, its new
// payout records and clip settlements in one transaction. The campaign row
// is updated only if its version still matches, which makes concurrent runs
// computed from the same snapshot fail instead of overspending.
func (r *PayoutRepository) ApplyCampaignPayouts(ctx context.Context, update port.CampaignUpdate) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
        UPDATE campaigns
        SET spent = $1, status = $2, version = version + 1, updated_at = now()
        WHERE id = $3 AND version = $4 AND status = 'ACTIVE' AND $1 <= budget`,
		update.Spent, update.Status, update.CampaignID, update.ExpectedVersion)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = port.ErrStaleCampaign
		return err
	}

	if len(update.Records) > 0 || len(update.Settlements) > 0 {
		batch := &pgx.Batch{}
		for _, rec := range update.Records {
			batch.Queue(`INSERT INTO payout_records (`+payoutColumns+`)
                VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
				rec.ID, rec.CampaignID, rec.UserID, rec.ClipID, rec.PeriodViews, rec.BaselineViews,
				rec.LatestViews, rec.Amount, rec.BudgetLimited, rec.Status, rec.ComputedAt, rec.PaidAt)
		}
		for _, s := range update.Settlements {
			batch.Queue(`UPDATE clips SET settled_views = $1, updated_at = now() WHERE id = $2 AND campaign_id = $3`,
				s.Views, s.ClipID, update.CampaignID)
		}
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err = br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("batch statement %d: %w", i, err)
			}
		}
		if err = br.Close(); err != nil {
			return err
		}
	}

	err = tx.Commit(ctx)
	return err
}

// ListPendingPayouts returns PENDING records computed at or before
// olderThan, oldest first.
func (r *PayoutRepository) ListPendingPayouts(ctx context.Context, olderThan time.Time, limit int) ([]domain.PayoutRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+payoutColumns+`
        FROM payout_records
        WHERE status = 'PENDING' AND computed_at <= $1
        ORDER BY computed_at, id
        LIMIT $2`, olderThan, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanPayout)
}

// MarkPayoutPaid transitions a PENDING record to PAID.
func (r *PayoutRepository) MarkPayoutPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE payout_records SET status = 'PAID', paid_at = $2 WHERE id = $1 AND status = 'PENDING'`, id, paidAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrPayoutNotPending
	}
	return nil
}

// ListCampaignPayouts returns a campaign's records, newest first.
func (r *PayoutRepository) ListCampaignPayouts(ctx context.Context, campaignID int64, page port.Page) ([]domain.PayoutRecord, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, campaignID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, port.ErrCampaignNotFound
	}
	rows, err := r.pool.Query(ctx, `SELECT `+payoutColumns+`
        FROM payout_records
        WHERE campaign_id = $1
        ORDER BY computed_at DESC, id
        LIMIT $2 OFFSET $3`, campaignID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanPayout)
}

// GetStats returns payout totals for records computed in the period.
func (r *PayoutRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`
        SELECT
            count(*),
            COALESCE(sum(amount) FILTER (WHERE status = 'PENDING'), 0),
            COALESCE(sum(amount) FILTER (WHERE status = 'PAID'), 0),
            COALESCE(sum(period_views), 0)::bigint
        FROM payout_records
        WHERE computed_at >= $1 AND computed_at <= $2 %s`, whereCampaign)
	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Records, &resp.PendingAmount, &resp.PaidAmount, &resp.PeriodViews)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func scanPayout(row pgx.CollectableRow) (domain.PayoutRecord, error) {
	var p domain.PayoutRecord
	err := row.Scan(&p.ID, &p.CampaignID, &p.UserID, &p.ClipID, &p.PeriodViews, &p.BaselineViews,
		&p.LatestViews, &p.Amount, &p.BudgetLimited, &p.Status, &p.ComputedAt, &p.PaidAt)
	return p, err
}
