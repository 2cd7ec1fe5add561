package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedGeo struct {
	country, state    string
	countryName, name string
	population        int64
	areaSqKm, density float64
	taxRate           float64
}

var seedGeoFacts = []seedGeo{
	{"US", "", "United States", "", 331_000_000, 9_833_520, 1.0, 0},
	{"US", "CA", "United States", "California", 39_000_000, 423_970, 1.4, 0},
	{"US", "TX", "United States", "Texas", 30_000_000, 695_662, 1.0, 0},
	{"US", "NY", "United States", "New York", 19_500_000, 141_297, 1.6, 0},
	{"GB", "", "United Kingdom", "", 67_000_000, 242_495, 1.2, 20},
	{"DE", "", "Germany", "", 84_000_000, 357_592, 1.1, 19},
	{"DE", "BY", "Germany", "Bavaria", 13_400_000, 70_550, 1.0, 19},
	{"AU", "", "Australia", "", 26_000_000, 7_692_024, 0.6, 10},
	{"AU", "NSW", "Australia", "New South Wales", 8_200_000, 800_642, 0.9, 10},
}

type seedRate struct {
	industry, advert, coverage, country string
	baseRate, multiplier                float64
	stateDiscount, nationalDiscount     float64
}

var seedRates = []seedRate{
	{"Retail", "display", "radius_30", "", 120, 1.0, 10, 15},
	{"Retail", "display", "state", "", 550, 1.0, 10, 15},
	{"Retail", "display", "country", "", 2000, 1.0, 10, 15},
	{"Retail", "display", "country", "US", 2400, 1.0, 10, 20},
	{"Finance", "video", "radius_30", "", 180, 1.5, 10, 15},
	{"Finance", "video", "state", "", 700, 1.5, 12, 15},
	{"Finance", "video", "country", "", 2600, 1.5, 10, 18},
}

// Seed inserts demo geo facts, rate rows and campaigns. It is idempotent:
// existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, g := range seedGeoFacts {
		_, err := db.Exec(ctx, `INSERT INTO geo_facts
    (country_code, state_code, country_name, state_name, population, land_area_sq_km, density_multiplier, tax_rate)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8) ON CONFLICT DO NOTHING`,
			g.country, g.state, g.countryName, g.name, g.population, g.areaSqKm, g.density, g.taxRate)
		if err != nil {
			return fmt.Errorf("seed geo fact %s/%s: %w", g.country, g.state, err)
		}
	}

	for _, rt := range seedRates {
		_, err := db.Exec(ctx, `INSERT INTO rate_matrix
    (industry_type, advert_type, coverage_type, country_code, base_rate, multiplier, state_discount_pct, national_discount_pct)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8) ON CONFLICT DO NOTHING`,
			rt.industry, rt.advert, rt.coverage, rt.country, rt.baseRate, rt.multiplier, rt.stateDiscount, rt.nationalDiscount)
		if err != nil {
			return fmt.Errorf("seed rate %s/%s/%s: %w", rt.industry, rt.advert, rt.coverage, err)
		}
	}

	coverages := []string{"radius_30", "state", "country"}
	countries := []string{"US", "GB", "DE", "AU"}
	for i := 1; i <= 5; i++ {
		start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, r.Intn(14))
		end := start.AddDate(0, 1+r.Intn(6), 0)
		coverage := coverages[r.Intn(len(coverages))]
		country := countries[r.Intn(len(countries))]
		var state any
		if coverage == "state" && country == "US" {
			state = "CA"
		}
		status := "approved"
		if i == 5 {
			status = "draft"
		}
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, name, industry_type, advert_type, coverage_type, target_postcode, target_state,
     target_country, budget, start_date, end_date, status)
VALUES ($1, $2, $3, 'Retail', 'display', $4, $5, $6, $7, $8, $9, $10, $11) ON CONFLICT DO NOTHING`,
			i, 100+i, fmt.Sprintf("Campaign %d", i), coverage, "10001", state, country,
			float64(1000*(1+r.Intn(10))), start, end, status)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
	}

	// explicit ids above do not advance the serial
	_, err := db.Exec(ctx, `SELECT setval(pg_get_serial_sequence('campaigns', 'id'), GREATEST((SELECT MAX(id) FROM campaigns), 1))`)
	return err
}
