package configs

import "time"

// Redis configures the optional cross-instance generation lease. An empty
// Address disables it.
type Redis struct {
	Address  string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	LeaseTTL time.Duration `env:"LEASE_TTL" envDefault:"2m"`
}
