package gormstore

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clipmarket/internal/core/domain"
)

// Seed inserts demo campaigns, clips and a week of view observations. It is
// a no-op when campaigns already exist.
func Seed(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&campaignModel{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	platforms := []string{"tiktok", "youtube", "instagram"}
	today := domain.ObservationDay(time.Now())

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 1; i <= 5; i++ {
			camp := campaignModel{
				Name:            fmt.Sprintf("Campaign %d", i),
				Budget:          decimal.NewFromInt(int64(500 * i)),
				Spent:           decimal.Zero,
				PayoutRate:      decimal.RequireFromString("1.50"),
				Status:          string(domain.CampaignActive),
				TargetPlatforms: strings.Join(platforms, ","),
			}
			if err := tx.Create(&camp).Error; err != nil {
				return err
			}
			for j := 1; j <= 10; j++ {
				platform := platforms[r.Intn(len(platforms))]
				clip := clipModel{
					CampaignID:   camp.ID,
					UserID:       fmt.Sprintf("user-%d", r.Intn(25)+1),
					URL:          fmt.Sprintf("https://example.com/%s/clip/%d-%d", platform, camp.ID, j),
					Platform:     platform,
					Status:       string(domain.ClipActive),
					InitialViews: int64(r.Intn(500)),
				}
				if err := tx.Create(&clip).Error; err != nil {
					return err
				}
				views := clip.InitialViews
				obs := make([]observationModel, 0, 7)
				for d := 7; d >= 1; d-- {
					views += int64(r.Intn(5000))
					obs = append(obs, observationModel{
						ClipID:     clip.ID,
						ObservedOn: today.AddDate(0, 0, -d).Format(dayLayout),
						Views:      views,
						Likes:      views / 20,
						Shares:     views / 200,
						Platform:   platform,
					})
				}
				if err := tx.Create(&obs).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
