package usecase

import (
	"context"
	"log/slog"

	"campaign-pricing/internal/core/domain"
	"campaign-pricing/internal/core/port"
	"campaign-pricing/internal/metrics"
)

// BillingUseCase prices and invoices stored campaigns. It implements
// port.BillingUseCase and owns the "invoice once" rule that the invoice
// scheduler leaves to its callers.
type BillingUseCase struct {
	campaigns port.CampaignRepository
	invoices  port.InvoiceRepository
	pricing   port.PricingUseCase
	generator port.InvoiceGenerator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewBillingUseCase wires the use case. m may be nil.
func NewBillingUseCase(
	campaigns port.CampaignRepository,
	invoices port.InvoiceRepository,
	pricing port.PricingUseCase,
	generator port.InvoiceGenerator,
	m *metrics.Metrics,
	logger *slog.Logger,
) *BillingUseCase {
	return &BillingUseCase{
		campaigns: campaigns,
		invoices:  invoices,
		pricing:   pricing,
		generator: generator,
		metrics:   m,
		logger:    logger,
	}
}

// QuoteCampaign prices a stored campaign over its own date range.
func (u *BillingUseCase) QuoteCampaign(ctx context.Context, campaignID int64) (domain.PricingResult, error) {
	c, err := u.getCampaign(ctx, campaignID)
	if err != nil {
		return domain.PricingResult{}, err
	}
	var country *string
	if c.TargetCountry != "" {
		country = &c.TargetCountry
	}
	result, err := u.pricing.CalculatePrice(ctx, domain.PricingRequest{
		IndustryType:   c.IndustryType,
		AdvertType:     c.AdvertType,
		Coverage:       c.Coverage,
		DurationDays:   domain.ClampDurationDays(c.DurationDays()),
		TargetPostcode: c.TargetPostcode,
		TargetState:    c.TargetState,
		TargetCountry:  country,
	})
	if err != nil {
		return domain.PricingResult{}, err
	}
	u.metrics.RecordQuote(c.Coverage.String(), result.TotalPrice, result.Breakdown.DefaultRateApplied)
	return result, nil
}

// InvoiceCampaign generates the campaign's monthly invoices and stores them
// in one batch. It refuses to run twice for the same campaign.
func (u *BillingUseCase) InvoiceCampaign(ctx context.Context, campaignID int64) ([]domain.Invoice, error) {
	c, err := u.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	invoiced, err := u.invoices.HasInvoices(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if invoiced {
		return nil, domain.ErrCampaignAlreadyInvoiced
	}

	generated, err := u.generator.GenerateMonthlyInvoices(ctx, *c)
	if err != nil {
		return nil, err
	}
	stored, err := u.invoices.CreateInvoices(ctx, generated)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, inv := range stored {
		total += inv.TotalAmount
	}
	u.metrics.RecordInvoices(len(stored), total)
	u.logger.Info("campaign invoiced",
		slog.Int64("campaign_id", campaignID),
		slog.Int("invoices", len(stored)),
		slog.Float64("total", domain.RoundMoney(total)),
	)
	return stored, nil
}

// ListInvoices returns the campaign's persisted invoices.
func (u *BillingUseCase) ListInvoices(ctx context.Context, campaignID int64) ([]domain.Invoice, error) {
	if _, err := u.getCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.invoices.ListInvoices(ctx, campaignID)
}

func (u *BillingUseCase) getCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}
