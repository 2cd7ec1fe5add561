package port

import (
	"context"

	"campaign-pricing/internal/core/domain"
)

// BillingUseCase operates on stored campaigns: quoting them and running
// their one-time monthly invoicing.
type BillingUseCase interface {
	// QuoteCampaign prices a stored campaign from its coverage and date
	// range. Returns domain.ErrCampaignNotFound for unknown ids.
	QuoteCampaign(ctx context.Context, campaignID int64) (domain.PricingResult, error)

	// InvoiceCampaign generates and persists the campaign's invoices. A
	// second run for the same campaign returns
	// domain.ErrCampaignAlreadyInvoiced.
	InvoiceCampaign(ctx context.Context, campaignID int64) ([]domain.Invoice, error)

	// ListInvoices returns persisted invoices in billing order.
	ListInvoices(ctx context.Context, campaignID int64) ([]domain.Invoice, error)
}
