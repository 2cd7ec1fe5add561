package domain

// RateMatrixEntry is a pricing rule for an (industry, advert, coverage[,
// country]) tuple. BaseRate is a currency amount per day.
type RateMatrixEntry struct {
	ID                  int64        `json:"id"`
	IndustryType        string       `json:"industry_type"`
	AdvertType          string       `json:"advert_type"`
	Coverage            CoverageType `json:"coverage_type"`
	CountryCode         *string      `json:"country_code,omitempty"`
	BaseRate            float64      `json:"base_rate"`
	Multiplier          float64      `json:"multiplier"`
	StateDiscountPct    float64      `json:"state_discount_pct"`
	NationalDiscountPct float64      `json:"national_discount_pct"`
}

// Default discount percentages applied when no rate row exists.
const (
	DefaultStateDiscountPct    = 10.0
	DefaultNationalDiscountPct = 15.0
)

// DefaultRateEntry synthesises the in-memory rule used when the rate matrix
// has no row for the tuple.
func DefaultRateEntry(industry, advert string, coverage CoverageType) (RateMatrixEntry, error) {
	var base float64
	switch coverage {
	case CoverageRadius30:
		base = 100.0
	case CoverageState:
		base = 500.0
	case CoverageCountry:
		base = 2000.0
	default:
		return RateMatrixEntry{}, ErrInvalidCoverageType
	}
	return RateMatrixEntry{
		IndustryType:        industry,
		AdvertType:          advert,
		Coverage:            coverage,
		BaseRate:            base,
		Multiplier:          1.0,
		StateDiscountPct:    DefaultStateDiscountPct,
		NationalDiscountPct: DefaultNationalDiscountPct,
	}, nil
}
