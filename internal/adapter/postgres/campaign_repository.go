package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"campaign-pricing/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		coverageRaw string
		status      string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT id, advertiser_id, name, industry_type, advert_type, coverage_type,
               target_postcode, target_state, target_country, budget,
               start_date, end_date, status, created_at, updated_at
        FROM campaigns
        WHERE id = $1`, id).
		Scan(
			&c.ID,
			&c.AdvertiserID,
			&c.Name,
			&c.IndustryType,
			&c.AdvertType,
			&coverageRaw,
			&c.TargetPostcode,
			&c.TargetState,
			&c.TargetCountry,
			&c.Budget,
			&c.StartDate,
			&c.EndDate,
			&status,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get campaign %d", id)
	}
	if c.Coverage, err = domain.ParseCoverageType(coverageRaw); err != nil {
		return nil, errors.Wrapf(err, "campaign %d", id)
	}
	c.Status = domain.CampaignStatus(status)
	return &c, nil
}
