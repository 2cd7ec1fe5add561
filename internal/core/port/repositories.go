package port

import (
	"context"

	"campaign-pricing/internal/core/domain"
)

// CampaignRepository loads campaigns for pricing and billing.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id or nil if it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
}

// InvoiceRepository persists generated invoices. Implementations must
// store a batch atomically: either every invoice is written or none is.
type InvoiceRepository interface {
	// CreateInvoices stores the batch and fills in generated ids and
	// creation timestamps.
	CreateInvoices(ctx context.Context, invoices []domain.Invoice) ([]domain.Invoice, error)
	// HasInvoices reports whether any invoice exists for the campaign.
	HasInvoices(ctx context.Context, campaignID int64) (bool, error)
	// ListInvoices returns the campaign's invoices ordered by billing date.
	ListInvoices(ctx context.Context, campaignID int64) ([]domain.Invoice, error)
}
