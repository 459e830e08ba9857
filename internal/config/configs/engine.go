package configs

import "time"

// Engine tunes the payout engine.
type Engine struct {
	// Concurrency is the number of campaigns calculated in parallel.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
	// PendingMinAge is how long a PENDING payout waits before it is handed
	// to the disbursement sink.
	PendingMinAge time.Duration `env:"PENDING_MIN_AGE" envDefault:"1h"`
	// PendingBatchSize caps the records handed over per run.
	PendingBatchSize int `env:"PENDING_BATCH_SIZE" envDefault:"100"`
}
