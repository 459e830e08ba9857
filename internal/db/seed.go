package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts demo campaigns, clips and a week of view observations.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	platforms := []string{"tiktok", "youtube", "instagram"}

	// create campaigns
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		budget := decimal.NewFromInt(int64(500 * i)) // 500.00 .. 2500.00
		rate := decimal.RequireFromString("1.50")    // per thousand views
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, budget, spent, payout_rate, status, target_platforms, version, created_at, updated_at)
VALUES ($1,$2,$3,0,$4,'ACTIVE',$5,0,now(),now()) ON CONFLICT DO NOTHING`,
			i, name, budget, rate, platforms)
		if err != nil {
			return err
		}
		// create clips for campaign
		for j := 1; j <= 10; j++ {
			clipID := (i-1)*10 + j
			platform := platforms[r.Intn(len(platforms))]
			url := fmt.Sprintf("https://example.com/%s/clip/%d", platform, clipID)
			userID := fmt.Sprintf("user-%d", r.Intn(25)+1)
			initial := int64(r.Intn(500))
			_, err = db.Exec(ctx, `INSERT INTO clips
(id, campaign_id, user_id, url, platform, status, initial_views, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,'ACTIVE',$6,now(),now()) ON CONFLICT DO NOTHING`,
				clipID, i, userID, url, platform, initial)
			if err != nil {
				return err
			}
			// cumulative, non-decreasing daily counts
			views := initial
			for d := 7; d >= 1; d-- {
				views += int64(r.Intn(5000))
				day := time.Now().UTC().AddDate(0, 0, -d)
				_, err = db.Exec(ctx, `INSERT INTO view_observations
(clip_id, observed_on, views, likes, shares, platform, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now()) ON CONFLICT DO NOTHING`,
					clipID, day, views, views/20, views/200, platform)
				if err != nil {
					return err
				}
			}
		}
	}
	// keep serial sequences ahead of the explicit ids above
	if _, err := db.Exec(ctx, `SELECT setval('campaigns_id_seq', (SELECT max(id) FROM campaigns))`); err != nil {
		return err
	}
	_, err := db.Exec(ctx, `SELECT setval('clips_id_seq', (SELECT max(id) FROM clips))`)
	return err
}
