package config

import (
	"github.com/caarlos0/env/v11"

	"campaign-pricing/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional geo registry cache (REDIS_*).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Metrics configures Prometheus exposition (METRICS_*).
	Metrics configs.Metrics `envPrefix:"METRICS_"`

	// Pricing holds tunables of the pricing engine (PRICING_*).
	Pricing configs.Pricing `envPrefix:"PRICING_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
