package configs

import (
	"fmt"
	"strings"
)

const (
	SinkDriverLog   = "log"
	SinkDriverKafka = "kafka"
)

// Sink selects where PENDING payouts are handed for disbursement.
type Sink struct {
	Driver       string   `env:"DRIVER" envDefault:"log"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"payouts.pending"`
}

// Validate checks that the selected driver is configured.
func (c Sink) Validate() error {
	switch strings.ToLower(c.Driver) {
	case SinkDriverLog:
		return nil
	case SinkDriverKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("kafka sink requires SINK_KAFKA_BROKERS")
		}
		return nil
	default:
		return fmt.Errorf("unsupported sink driver %q", c.Driver)
	}
}
