package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"clipmarket/internal/core/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes payouts to a topic for the payment service. Messages
// are keyed by payout id so redeliveries land on the same partition.
type KafkaSink struct {
	writer messageWriter
}

type payoutMessage struct {
	ID          string `json:"id"`
	CampaignID  int64  `json:"campaignId"`
	UserID      string `json:"userId"`
	ClipID      int64  `json:"clipId"`
	PeriodViews int64  `json:"periodViews"`
	Amount      string `json:"amount"`
	ComputedAt  string `json:"computedAt"`
}

func NewKafkaSink(brokers []string, topic string) (*KafkaSink, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka sink requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka sink requires a topic")
	}
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
	}, nil
}

func (s *KafkaSink) Disburse(ctx context.Context, rec domain.PayoutRecord) error {
	payload, err := json.Marshal(payoutMessage{
		ID:          rec.ID.String(),
		CampaignID:  rec.CampaignID,
		UserID:      rec.UserID,
		ClipID:      rec.ClipID,
		PeriodViews: rec.PeriodViews,
		Amount:      rec.Amount.StringFixed(domain.CurrencyPlaces),
		ComputedAt:  rec.ComputedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rec.ID.String()),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
