package port

import (
	"context"

	"campaign-pricing/internal/core/domain"
)

// GeoRegistry is the read-only lookup of geographic facts consumed by the
// pricing engine and the invoice scheduler. It is an outbound port.
// Implementations return (nil, nil) when no row matches; an error means
// the store itself failed and is passed to the caller as is.
type GeoRegistry interface {
	// FindRegion returns the state-level fact for countryCode/stateCode.
	FindRegion(ctx context.Context, countryCode, stateCode string) (*domain.GeoFact, error)
	// FindCountry returns the country-level fact (state code is null).
	FindCountry(ctx context.Context, countryCode string) (*domain.GeoFact, error)
}
