package configs

import "time"

// Redis configures the read-through cache in front of the geo registry.
// When Enabled is false lookups go straight to PostgreSQL.
type Redis struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Addr     string        `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"1h"`
}
