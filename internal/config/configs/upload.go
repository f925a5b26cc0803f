package configs

import "time"

// Upload configures the two-step upload channel. PublicURL is the externally
// reachable base of this service and prefixes every issued upload URL.
type Upload struct {
	PublicURL string        `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	TTL       time.Duration `env:"TTL" envDefault:"15m"`
	MaxBytes  int64         `env:"MAX_BYTES" envDefault:"10485760"`
}
