package configs

import "time"

// Redis configures the shared run lease store. An empty Address keeps leases
// in process.
type Redis struct {
	Address  string        `env:"ADDRESS"`
	LeaseTTL time.Duration `env:"LEASE_TTL" envDefault:"15m"`
}
