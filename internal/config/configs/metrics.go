package configs

// Metrics configures Prometheus exposition on the HTTP server.
type Metrics struct {
	Enabled   bool   `env:"ENABLED" envDefault:"true"`
	Path      string `env:"PATH" envDefault:"/metrics"`
	Namespace string `env:"NAMESPACE" envDefault:"campaign_pricing"`
}
