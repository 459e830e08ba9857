package configs

import "time"

// Supplier configures the HTTP client of the view supplier service.
type Supplier struct {
	BaseURL       string        `env:"BASE_URL" envDefault:"http://localhost:9090"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"10s"`
	RatePerSecond float64       `env:"RATE_PER_SECOND" envDefault:"5"`
	Burst         int           `env:"BURST" envDefault:"1"`
}
