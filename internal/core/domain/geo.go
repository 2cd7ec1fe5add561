package domain

// GeoFact is a stored geographic record for a country (StateCode nil) or for
// a state within it.
type GeoFact struct {
	ID                int64   `json:"id"`
	CountryCode       string  `json:"country_code"`
	StateCode         *string `json:"state_code,omitempty"`
	CountryName       string  `json:"country_name"`
	StateName         string  `json:"state_name,omitempty"`
	Population        int64   `json:"population"`
	LandAreaSqKm      float64 `json:"land_area_sq_km"`
	DensityMultiplier float64 `json:"density_multiplier"`
	TaxRate           float64 `json:"tax_rate"` // percent
}

// IsCountryLevel reports whether the fact describes a whole nation.
func (g GeoFact) IsCountryLevel() bool {
	return g.StateCode == nil
}
