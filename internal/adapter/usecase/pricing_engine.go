package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"campaign-pricing/internal/core/domain"
	"campaign-pricing/internal/core/port"
)

const (
	// DefaultRadiusDensity is the assumed population density, in people per
	// square mile, inside a 30-mile radius.
	DefaultRadiusDensity = 500.0
	// DefaultStateReach is used when no state-level fact is stored.
	DefaultStateReach int64 = 500_000
	// DefaultCountryReach is used when no country-level fact is stored.
	DefaultCountryReach int64 = 50_000_000
)

// PricingEngine computes campaign prices and reach estimates. It implements
// port.PricingUseCase and holds no mutable state, so a single instance can
// serve concurrent requests.
type PricingEngine struct {
	geo   port.GeoRegistry
	rates port.RateMatrix

	// radiusDensity is the people per square mile applied to radius
	// coverage. Replacing it with a postcode-level source is the intended
	// extension point.
	radiusDensity float64
}

// NewPricingEngine creates an engine over the given registry and rate
// matrix. A non-positive radiusDensity selects DefaultRadiusDensity.
func NewPricingEngine(geo port.GeoRegistry, rates port.RateMatrix, radiusDensity float64) *PricingEngine {
	if radiusDensity <= 0 {
		radiusDensity = DefaultRadiusDensity
	}
	return &PricingEngine{geo: geo, rates: rates, radiusDensity: radiusDensity}
}

// CalculatePrice prices req. DurationDays is taken as given; clamping to a
// minimum of one day is the caller's job (see domain.ClampDurationDays).
func (e *PricingEngine) CalculatePrice(ctx context.Context, req domain.PricingRequest) (domain.PricingResult, error) {
	coverageMultiplier, err := req.Coverage.Multiplier()
	if err != nil {
		return domain.PricingResult{}, err
	}

	country := optional(req.TargetCountry)
	rate, err := e.rates.FindRate(ctx, req.IndustryType, req.AdvertType, req.Coverage, country)
	if err != nil {
		return domain.PricingResult{}, err
	}
	defaulted := rate == nil
	if defaulted {
		def, err := domain.DefaultRateEntry(req.IndustryType, req.AdvertType, req.Coverage)
		if err != nil {
			return domain.PricingResult{}, err
		}
		rate = &def
	}

	gross := rate.BaseRate * rate.Multiplier * coverageMultiplier * float64(req.DurationDays)
	discountPct := discountPct(rate, req.Coverage)
	discount := gross * discountPct / 100
	total := domain.RoundMoney(math.Max(gross-discount, 0))

	reach, err := e.EstimateReach(ctx, domain.ReachRequest{
		Coverage:       req.Coverage,
		TargetPostcode: req.TargetPostcode,
		TargetState:    req.TargetState,
		TargetCountry:  req.TargetCountry,
	})
	if err != nil {
		return domain.PricingResult{}, err
	}

	discountAmount := domain.RoundMoney(discount)
	return domain.PricingResult{
		BaseRate:           rate.BaseRate,
		IndustryMultiplier: rate.Multiplier,
		CoverageMultiplier: coverageMultiplier,
		DiscountAmount:     discountAmount,
		EstimatedReach:     reach.EstimatedReach,
		TotalPrice:         total,
		Breakdown: domain.PriceBreakdown{
			BaseRate:                rate.BaseRate,
			IndustryMultiplier:      rate.Multiplier,
			CoverageMultiplier:      coverageMultiplier,
			DurationDays:            req.DurationDays,
			GrossPrice:              domain.RoundMoney(gross),
			DiscountPct:             discountPct,
			DiscountAmount:          discountAmount,
			TotalPrice:              total,
			EstimatedReach:          reach.EstimatedReach,
			CoverageAreaDescription: reach.Description,
			DefaultRateApplied:      defaulted,
		},
	}, nil
}

// EstimateReach returns the audience estimate for the coverage area. Missing
// geo facts fall back to fixed defaults; store errors are returned as is.
func (e *PricingEngine) EstimateReach(ctx context.Context, req domain.ReachRequest) (domain.Reach, error) {
	country := optional(req.TargetCountry)
	state := optional(req.TargetState)

	switch req.Coverage {
	case domain.CoverageRadius30:
		return domain.Reach{
			EstimatedReach: int64(math.Round(math.Pi * domain.RadiusMiles * domain.RadiusMiles * e.radiusDensity)),
			Description:    fmt.Sprintf("30-mile radius around %s", valueOr(optional(req.TargetPostcode), "specified location")),
		}, nil

	case domain.CoverageState:
		reach := DefaultStateReach
		// facts are keyed by country, so a bare state keeps the default
		if country != nil && state != nil {
			fact, err := e.geo.FindRegion(ctx, *country, *state)
			if err != nil {
				return domain.Reach{}, err
			}
			if fact != nil {
				reach = fact.Population
			}
		}
		return domain.Reach{
			EstimatedReach: reach,
			Description:    fmt.Sprintf("State-wide: %s, %s", valueOr(state, "specified state"), valueOr(country, "specified country")),
		}, nil

	case domain.CoverageCountry:
		reach := DefaultCountryReach
		if country != nil {
			fact, err := e.geo.FindCountry(ctx, *country)
			if err != nil {
				return domain.Reach{}, err
			}
			if fact != nil {
				reach = fact.Population
			}
		}
		return domain.Reach{
			EstimatedReach: reach,
			Description:    fmt.Sprintf("Country-wide: %s", valueOr(country, "specified country")),
		}, nil

	default:
		return domain.Reach{}, domain.ErrInvalidCoverageType
	}
}

// discountPct returns the percentage of gross taken off for the coverage.
// Radius coverage is never discounted.
func discountPct(rate *domain.RateMatrixEntry, coverage domain.CoverageType) float64 {
	switch coverage {
	case domain.CoverageState:
		return rate.StateDiscountPct
	case domain.CoverageCountry:
		return rate.NationalDiscountPct
	default:
		return 0
	}
}

// optional trims s and maps nil or blank to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
