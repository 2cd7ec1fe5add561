package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"campaign-pricing/internal/core/domain"
)

const geoFactColumns = `id, country_code, state_code, country_name, state_name,
    population, land_area_sq_km, density_multiplier, tax_rate`

// GeoRegistry implements port.GeoRegistry over the geo_facts table.
type GeoRegistry struct {
	pool *pgxpool.Pool
}

// NewGeoRegistry returns a registry reading from pool.
func NewGeoRegistry(pool *pgxpool.Pool) *GeoRegistry {
	return &GeoRegistry{pool: pool}
}

// FindRegion returns the state-level fact or nil when none is stored.
func (r *GeoRegistry) FindRegion(ctx context.Context, countryCode, stateCode string) (*domain.GeoFact, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+geoFactColumns+`
        FROM geo_facts
        WHERE country_code = $1 AND state_code = $2`,
		normalizeCode(countryCode), normalizeCode(stateCode))
	fact, err := scanGeoFact(row)
	if err != nil {
		return nil, errors.Wrapf(err, "find region %s/%s", countryCode, stateCode)
	}
	return fact, nil
}

// FindCountry returns the country-level fact (state_code IS NULL) or nil.
func (r *GeoRegistry) FindCountry(ctx context.Context, countryCode string) (*domain.GeoFact, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+geoFactColumns+`
        FROM geo_facts
        WHERE country_code = $1 AND state_code IS NULL`,
		normalizeCode(countryCode))
	fact, err := scanGeoFact(row)
	if err != nil {
		return nil, errors.Wrapf(err, "find country %s", countryCode)
	}
	return fact, nil
}

func scanGeoFact(row pgx.Row) (*domain.GeoFact, error) {
	var g domain.GeoFact
	err := row.Scan(
		&g.ID,
		&g.CountryCode,
		&g.StateCode,
		&g.CountryName,
		&g.StateName,
		&g.Population,
		&g.LandAreaSqKm,
		&g.DensityMultiplier,
		&g.TaxRate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// normalizeCode upper-cases ISO country and subdivision codes.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
