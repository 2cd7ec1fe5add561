package configs

// Pricing holds tunables of the pricing engine.
type Pricing struct {
	// RadiusDensity is people per square mile assumed inside a 30-mile
	// radius when estimating reach.
	RadiusDensity float64 `env:"RADIUS_DENSITY" envDefault:"500"`
}
