package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clipmarket/internal/core/domain"
	"clipmarket/internal/core/port"
)

// ViewLedger implements port.ViewLedger on the view_observations table.
type ViewLedger struct {
	pool *pgxpool.Pool
}

func NewViewLedger(pool *pgxpool.Pool) *ViewLedger {
	return &ViewLedger{pool: pool}
}

// LatestObservations returns the clip's settled view count and its newest
// observation. Clips without observations yield Found == false.
func (l *ViewLedger) LatestObservations(ctx context.Context, clip domain.Clip) (port.ObservationPair, error) {
	var settled, latest *int64
	err := l.pool.QueryRow(ctx, `
        SELECT c.settled_views, o.views
        FROM clips c
        LEFT JOIN LATERAL (
            SELECT views
            FROM view_observations
            WHERE clip_id = c.id
            ORDER BY observed_on DESC
            LIMIT 1
        ) o ON true
        WHERE c.id = $1`, clip.ID).Scan(&settled, &latest)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ObservationPair{}, nil
	}
	if err != nil {
		return port.ObservationPair{}, err
	}
	if latest == nil {
		return port.ObservationPair{Previous: settled}, nil
	}
	return port.ObservationPair{Previous: settled, Latest: *latest, Found: true}, nil
}

// UpsertObservation stores the observation, overwriting one already taken
// for the same clip and day.
func (l *ViewLedger) UpsertObservation(ctx context.Context, obs domain.ViewObservation) error {
	_, err := l.pool.Exec(ctx, `
        INSERT INTO view_observations (clip_id, observed_on, views, likes, shares, platform, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, now(), now())
        ON CONFLICT (clip_id, observed_on) DO UPDATE
        SET views = EXCLUDED.views,
            likes = EXCLUDED.likes,
            shares = EXCLUDED.shares,
            platform = EXCLUDED.platform,
            updated_at = now()`,
		obs.ClipID, domain.ObservationDay(obs.Date), obs.Views, obs.Likes, obs.Shares, obs.Platform)
	return err
}
