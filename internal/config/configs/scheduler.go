package configs

import "time"

// Scheduler configures the in-process triggers. When disabled the jobs only
// run through the HTTP trigger endpoints.
type Scheduler struct {
	Enabled           bool          `env:"ENABLED" envDefault:"false"`
	CalculateInterval time.Duration `env:"CALCULATE_INTERVAL" envDefault:"1h"`
	ProcessInterval   time.Duration `env:"PROCESS_INTERVAL" envDefault:"1h"`
	TrackInterval     time.Duration `env:"TRACK_INTERVAL" envDefault:"6h"`
}
