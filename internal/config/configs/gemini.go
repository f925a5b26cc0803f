package configs

import "time"

// Gemini configures the generative-language API used to draft posts. The
// API key is optional at startup; generation requests fail with a
// configuration error while it is unset.
type Gemini struct {
	APIKey  string        `env:"API_KEY"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string        `env:"MODEL" envDefault:"gemini-pro"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`

	// RPS and Burst size the token bucket shared by all outbound calls.
	RPS   float64 `env:"RPS" envDefault:"2"`
	Burst int     `env:"BURST" envDefault:"4"`

	// BreakerFailures consecutive upstream failures open the circuit for
	// BreakerCooldown.
	BreakerFailures uint32        `env:"BREAKER_FAILURES" envDefault:"5"`
	BreakerCooldown time.Duration `env:"BREAKER_COOLDOWN" envDefault:"30s"`
}
