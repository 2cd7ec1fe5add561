package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"campaign-pricing/internal/core/domain"
)

// RateMatrix implements port.RateMatrix over the rate_matrix table.
type RateMatrix struct {
	pool *pgxpool.Pool
}

// NewRateMatrix returns a rate matrix reading from pool.
func NewRateMatrix(pool *pgxpool.Pool) *RateMatrix {
	return &RateMatrix{pool: pool}
}

// FindRate returns the authoritative rule for the tuple. A row for the
// given country wins over the country-agnostic row; nil means neither
// exists.
func (r *RateMatrix) FindRate(ctx context.Context, industryType, advertType string, coverage domain.CoverageType, countryCode *string) (*domain.RateMatrixEntry, error) {
	var country *string
	if countryCode != nil {
		c := normalizeCode(*countryCode)
		country = &c
	}

	var (
		e           domain.RateMatrixEntry
		coverageRaw string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT id, industry_type, advert_type, coverage_type, country_code,
               base_rate, multiplier, state_discount_pct, national_discount_pct
        FROM rate_matrix
        WHERE industry_type = $1
          AND advert_type = $2
          AND coverage_type = $3
          AND (country_code IS NULL OR country_code = $4)
        ORDER BY country_code NULLS LAST
        LIMIT 1`,
		industryType, advertType, coverage.String(), country,
	).Scan(
		&e.ID,
		&e.IndustryType,
		&e.AdvertType,
		&coverageRaw,
		&e.CountryCode,
		&e.BaseRate,
		&e.Multiplier,
		&e.StateDiscountPct,
		&e.NationalDiscountPct,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find rate %s/%s/%s", industryType, advertType, coverage)
	}
	if e.Coverage, err = domain.ParseCoverageType(coverageRaw); err != nil {
		return nil, errors.Wrapf(err, "rate %d", e.ID)
	}
	return &e, nil
}
