package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-pricing/internal/core/domain"
	"campaign-pricing/internal/core/port/mocks"
)

type pricingFixture struct {
	geo    *mocks.MockGeoRegistry
	rates  *mocks.MockRateMatrix
	engine *PricingEngine
}

func createTestPricingEngine(t *testing.T) pricingFixture {
	geo := mocks.NewMockGeoRegistry(t)
	rates := mocks.NewMockRateMatrix(t)
	return pricingFixture{
		geo:    geo,
		rates:  rates,
		engine: NewPricingEngine(geo, rates, 0),
	}
}

func strPtr(s string) *string { return &s }

func countryIs(code string) interface{} {
	return mock.MatchedBy(func(c *string) bool { return c != nil && *c == code })
}

func noCountry() interface{} {
	return mock.MatchedBy(func(c *string) bool { return c == nil })
}

// TestCalculatePrice_RadiusDefaultRate covers a quote with no rate row:
// 100/day for 10 days, no discount, reach pi*30^2*500.
func TestCalculatePrice_RadiusDefaultRate(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()

	fx.rates.EXPECT().
		FindRate(ctx, "Retail", "display", domain.CoverageRadius30, noCountry()).
		Return(nil, nil)

	res, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType: "Retail",
		AdvertType:   "display",
		Coverage:     domain.CoverageRadius30,
		DurationDays: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.BaseRate)
	assert.Equal(t, 1.0, res.IndustryMultiplier)
	assert.Equal(t, 1.0, res.CoverageMultiplier)
	assert.Equal(t, 0.0, res.DiscountAmount)
	assert.Equal(t, 1000.0, res.TotalPrice)
	assert.Equal(t, int64(1_413_717), res.EstimatedReach)

	assert.Equal(t, 1000.0, res.Breakdown.GrossPrice)
	assert.Equal(t, 10, res.Breakdown.DurationDays)
	assert.True(t, res.Breakdown.DefaultRateApplied)
	assert.Equal(t, "30-mile radius around specified location", res.Breakdown.CoverageAreaDescription)
}

// TestCalculatePrice_CountryMatrixEntry covers a configured country rule with
// a 15% national discount over 30 days.
func TestCalculatePrice_CountryMatrixEntry(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()

	fx.rates.EXPECT().
		FindRate(ctx, "Retail", "display", domain.CoverageCountry, countryIs("US")).
		Return(&domain.RateMatrixEntry{
			BaseRate:            2000,
			Multiplier:          1.0,
			StateDiscountPct:    10,
			NationalDiscountPct: 15,
		}, nil)
	fx.geo.EXPECT().
		FindCountry(ctx, "US").
		Return(&domain.GeoFact{CountryCode: "US", Population: 331_000_000, TaxRate: 0}, nil)

	res, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType:  "Retail",
		AdvertType:    "display",
		Coverage:      domain.CoverageCountry,
		DurationDays:  30,
		TargetCountry: strPtr("US"),
	})
	require.NoError(t, err)

	assert.Equal(t, 300000.0, res.Breakdown.GrossPrice)
	assert.Equal(t, 15.0, res.Breakdown.DiscountPct)
	assert.Equal(t, 45000.0, res.DiscountAmount)
	assert.Equal(t, 255000.0, res.TotalPrice)
	assert.Equal(t, 5.0, res.CoverageMultiplier)
	assert.Equal(t, int64(331_000_000), res.EstimatedReach)
	assert.False(t, res.Breakdown.DefaultRateApplied)
	assert.Equal(t, "Country-wide: US", res.Breakdown.CoverageAreaDescription)
}

func TestCalculatePrice_StateDiscountAndPopulation(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()

	fx.rates.EXPECT().
		FindRate(ctx, "Food", "video", domain.CoverageState, countryIs("US")).
		Return(nil, nil)
	fx.geo.EXPECT().
		FindRegion(ctx, "US", "CA").
		Return(&domain.GeoFact{CountryCode: "US", StateCode: strPtr("CA"), Population: 39_000_000}, nil)

	res, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType:  "Food",
		AdvertType:    "video",
		Coverage:      domain.CoverageState,
		DurationDays:  4,
		TargetState:   strPtr("CA"),
		TargetCountry: strPtr("US"),
	})
	require.NoError(t, err)

	// 500 * 1.0 * 2.5 * 4 = 5000, minus 10%.
	assert.Equal(t, 5000.0, res.Breakdown.GrossPrice)
	assert.Equal(t, 500.0, res.DiscountAmount)
	assert.Equal(t, 4500.0, res.TotalPrice)
	assert.Equal(t, int64(39_000_000), res.EstimatedReach)
	assert.Equal(t, "State-wide: CA, US", res.Breakdown.CoverageAreaDescription)
}

func TestCalculatePrice_IndustryMultiplier(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()

	fx.rates.EXPECT().
		FindRate(ctx, "Finance", "banner", domain.CoverageRadius30, noCountry()).
		Return(&domain.RateMatrixEntry{BaseRate: 200, Multiplier: 1.5, StateDiscountPct: 50, NationalDiscountPct: 50}, nil)

	res, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType: "Finance",
		AdvertType:   "banner",
		Coverage:     domain.CoverageRadius30,
		DurationDays: 10,
	})
	require.NoError(t, err)

	// radius coverage ignores both discount columns
	assert.Equal(t, 0.0, res.DiscountAmount)
	assert.Equal(t, 3000.0, res.TotalPrice)
	assert.Equal(t, 1.5, res.IndustryMultiplier)
}

func TestCalculatePrice_TotalNeverNegative(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()

	fx.rates.EXPECT().
		FindRate(ctx, "Retail", "display", domain.CoverageCountry, noCountry()).
		Return(&domain.RateMatrixEntry{BaseRate: 2000, Multiplier: 1, NationalDiscountPct: 150}, nil)

	res, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType: "Retail",
		AdvertType:   "display",
		Coverage:     domain.CoverageCountry,
		DurationDays: 3,
	})
	require.NoError(t, err)

	assert.Greater(t, res.DiscountAmount, res.Breakdown.GrossPrice)
	assert.Equal(t, 0.0, res.TotalPrice)
	assert.Equal(t, DefaultCountryReach, res.EstimatedReach)
	assert.Equal(t, "Country-wide: specified country", res.Breakdown.CoverageAreaDescription)
}

func TestCalculatePrice_RoundsTotalToCents(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()

	fx.rates.EXPECT().
		FindRate(ctx, "Retail", "display", domain.CoverageRadius30, noCountry()).
		Return(&domain.RateMatrixEntry{BaseRate: 33.333, Multiplier: 1}, nil)

	res, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType: "Retail",
		AdvertType:   "display",
		Coverage:     domain.CoverageRadius30,
		DurationDays: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 33.33, res.TotalPrice)
}

func TestCalculatePrice_InvalidCoverage(t *testing.T) {
	fx := createTestPricingEngine(t)

	_, err := fx.engine.CalculatePrice(context.Background(), domain.PricingRequest{
		IndustryType: "Retail",
		AdvertType:   "display",
		Coverage:     domain.CoverageType(0),
		DurationDays: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCoverageType)
}

func TestCalculatePrice_RateMatrixErrorPropagates(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()
	errDown := errors.New("connection refused")

	fx.rates.EXPECT().
		FindRate(ctx, "Retail", "display", domain.CoverageState, noCountry()).
		Return(nil, errDown)

	_, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType: "Retail",
		AdvertType:   "display",
		Coverage:     domain.CoverageState,
		DurationDays: 10,
	})
	assert.ErrorIs(t, err, errDown)
}

func TestCalculatePrice_RegistryErrorPropagates(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()
	errDown := errors.New("connection refused")

	fx.rates.EXPECT().
		FindRate(ctx, "Retail", "display", domain.CoverageState, countryIs("DE")).
		Return(nil, nil)
	fx.geo.EXPECT().
		FindRegion(ctx, "DE", "BY").
		Return(nil, errDown)

	_, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType:  "Retail",
		AdvertType:    "display",
		Coverage:      domain.CoverageState,
		DurationDays:  10,
		TargetState:   strPtr("BY"),
		TargetCountry: strPtr("DE"),
	})
	assert.ErrorIs(t, err, errDown)
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()

	fx.rates.EXPECT().
		FindRate(ctx, "Retail", "display", domain.CoverageState, countryIs("AU")).
		Return(&domain.RateMatrixEntry{BaseRate: 420, Multiplier: 1.2, StateDiscountPct: 12.5}, nil)
	fx.geo.EXPECT().
		FindRegion(ctx, "AU", "NSW").
		Return(&domain.GeoFact{Population: 8_100_000}, nil)

	req := domain.PricingRequest{
		IndustryType:  "Retail",
		AdvertType:    "display",
		Coverage:      domain.CoverageState,
		DurationDays:  17,
		TargetState:   strPtr("NSW"),
		TargetCountry: strPtr("AU"),
	}
	first, err := fx.engine.CalculatePrice(ctx, req)
	require.NoError(t, err)
	second, err := fx.engine.CalculatePrice(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculatePrice_BlankLocationTreatedAsAbsent(t *testing.T) {
	fx := createTestPricingEngine(t)
	ctx := context.Background()

	fx.rates.EXPECT().
		FindRate(ctx, "Retail", "display", domain.CoverageState, noCountry()).
		Return(nil, nil)

	res, err := fx.engine.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType:  "Retail",
		AdvertType:    "display",
		Coverage:      domain.CoverageState,
		DurationDays:  1,
		TargetState:   strPtr("TX"),
		TargetCountry: strPtr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultStateReach, res.EstimatedReach)
	assert.Equal(t, "State-wide: TX, specified country", res.Breakdown.CoverageAreaDescription)
}

func TestEstimateReach(t *testing.T) {
	ctx := context.Background()

	t.Run("radius uses configured density and postcode", func(t *testing.T) {
		engine := NewPricingEngine(mocks.NewMockGeoRegistry(t), mocks.NewMockRateMatrix(t), 1000)
		reach, err := engine.EstimateReach(ctx, domain.ReachRequest{
			Coverage:       domain.CoverageRadius30,
			TargetPostcode: strPtr("90210"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2_827_433), reach.EstimatedReach)
		assert.Equal(t, "30-mile radius around 90210", reach.Description)
	})

	t.Run("missing state fact defaults", func(t *testing.T) {
		geo := mocks.NewMockGeoRegistry(t)
		geo.EXPECT().FindRegion(ctx, "US", "WY").Return(nil, nil)
		engine := NewPricingEngine(geo, mocks.NewMockRateMatrix(t), 0)

		reach, err := engine.EstimateReach(ctx, domain.ReachRequest{
			Coverage:      domain.CoverageState,
			TargetState:   strPtr("WY"),
			TargetCountry: strPtr("US"),
		})
		require.NoError(t, err)
		assert.Equal(t, DefaultStateReach, reach.EstimatedReach)
	})

	t.Run("missing country fact defaults", func(t *testing.T) {
		geo := mocks.NewMockGeoRegistry(t)
		geo.EXPECT().FindCountry(ctx, "ZZ").Return(nil, nil)
		engine := NewPricingEngine(geo, mocks.NewMockRateMatrix(t), 0)

		reach, err := engine.EstimateReach(ctx, domain.ReachRequest{
			Coverage:      domain.CoverageCountry,
			TargetCountry: strPtr("ZZ"),
		})
		require.NoError(t, err)
		assert.Equal(t, DefaultCountryReach, reach.EstimatedReach)
		assert.Equal(t, "Country-wide: ZZ", reach.Description)
	})

	t.Run("invalid coverage", func(t *testing.T) {
		engine := NewPricingEngine(mocks.NewMockGeoRegistry(t), mocks.NewMockRateMatrix(t), 0)
		_, err := engine.EstimateReach(ctx, domain.ReachRequest{Coverage: domain.CoverageType(99)})
		assert.ErrorIs(t, err, domain.ErrInvalidCoverageType)
	})
}
