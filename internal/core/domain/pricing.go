package domain

// PricingRequest is the validated input of a price calculation. Optional
// location fields are nil when the caller did not supply them.
type PricingRequest struct {
	IndustryType   string
	AdvertType     string
	Coverage       CoverageType
	DurationDays   int
	TargetPostcode *string
	TargetState    *string
	TargetCountry  *string
}

// ReachRequest selects the audience estimate for a coverage area.
type ReachRequest struct {
	Coverage       CoverageType
	TargetPostcode *string
	TargetState    *string
	TargetCountry  *string
}

// Reach is an audience estimate with a readable description of the area.
type Reach struct {
	EstimatedReach int64  `json:"estimated_reach"`
	Description    string `json:"coverage_area_description"`
}

// PriceBreakdown itemises how a PricingResult was derived.
type PriceBreakdown struct {
	BaseRate                float64 `json:"base_rate"`
	IndustryMultiplier      float64 `json:"industry_multiplier"`
	CoverageMultiplier      float64 `json:"coverage_multiplier"`
	DurationDays            int     `json:"duration_days"`
	GrossPrice              float64 `json:"gross_price"`
	DiscountPct             float64 `json:"discount_pct"`
	DiscountAmount          float64 `json:"discount_amount"`
	TotalPrice              float64 `json:"total_price"`
	EstimatedReach          int64   `json:"estimated_reach"`
	CoverageAreaDescription string  `json:"coverage_area_description"`
	DefaultRateApplied      bool    `json:"default_rate_applied"`
}

// PricingResult is the outcome of a price calculation. It is a value; the
// engine never retains or mutates it.
type PricingResult struct {
	BaseRate           float64        `json:"base_rate"`
	IndustryMultiplier float64        `json:"industry_multiplier"`
	CoverageMultiplier float64        `json:"coverage_multiplier"`
	DiscountAmount     float64        `json:"discount_amount"`
	EstimatedReach     int64          `json:"estimated_reach"`
	TotalPrice         float64        `json:"total_price"`
	Breakdown          PriceBreakdown `json:"breakdown"`
}

// ClampDurationDays floors a requested campaign length at one day.
func ClampDurationDays(days int) int {
	if days < 1 {
		return 1
	}
	return days
}
