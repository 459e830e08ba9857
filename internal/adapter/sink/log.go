package sink

import (
	"context"
	"log/slog"

	"clipmarket/internal/core/domain"
)

// LogSink hands payouts over by logging them. It is the default sink when no
// payment rail is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Disburse(_ context.Context, rec domain.PayoutRecord) error {
	s.logger.Info("payout disbursed",
		slog.String("payout_id", rec.ID.String()),
		slog.Int64("campaign_id", rec.CampaignID),
		slog.String("user_id", rec.UserID),
		slog.Int64("clip_id", rec.ClipID),
		slog.String("amount", rec.Amount.StringFixed(domain.CurrencyPlaces)))
	return nil
}
