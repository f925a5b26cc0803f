package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"postcraft/internal/config/configs"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// Store selects the persistence backend: "postgres" or "memory". The
	// memory store loses all data on restart and is meant for local runs.
	Store string `env:"STORE_DRIVER" envDefault:"postgres"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. It is only used when Store
	// is "postgres". Environment variables prefixed with PSQL_ will
	// populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Gemini configures the generative-language client, including its
	// rate limit and circuit breaker. Environment variables prefixed with
	// GEMINI_ will populate this struct.
	Gemini configs.Gemini `envPrefix:"GEMINI_"`

	// Redis configures the optional cross-instance generation lease. The
	// lease is disabled while REDIS_ADDRESS is empty.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Upload configures the single-use upload URLs. Environment variables
	// prefixed with UPLOAD_ will populate this struct.
	Upload configs.Upload `envPrefix:"UPLOAD_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, or STORE_DRIVER names an unknown backend, an error is
// returned. All fields are loaded with their specified defaults when no
// environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Store {
	case StorePostgres, StoreMemory:
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store)
	}
	return cfg, nil
}
