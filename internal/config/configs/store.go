package configs

import (
	"fmt"
	"strings"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Store selects the persistence backend. "postgres" uses the pgx adapter
// and the Postgres section; "sqlite" uses the gorm adapter on a local file,
// which is meant for development and demos.
type Store struct {
	Driver     string `env:"DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"clipmarket.db"`
	// Seed inserts demo campaigns, clips and a week of observations on
	// startup.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Validate reports an unsupported driver.
func (c Store) Validate() error {
	switch strings.ToLower(c.Driver) {
	case StoreDriverPostgres, StoreDriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported store driver %q", c.Driver)
	}
}
