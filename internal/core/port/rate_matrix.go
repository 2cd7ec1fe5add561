package port

import (
	"context"

	"campaign-pricing/internal/core/domain"
)

// RateMatrix looks up the authoritative pricing rule for a tuple. When
// countryCode is non-nil a country-specific rule takes precedence over the
// country-agnostic one. A miss returns (nil, nil).
type RateMatrix interface {
	FindRate(ctx context.Context, industryType, advertType string, coverage domain.CoverageType, countryCode *string) (*domain.RateMatrixEntry, error)
}
