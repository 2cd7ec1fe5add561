package port

import (
	"context"

	"campaign-pricing/internal/core/domain"
)

// PricingUseCase prices campaigns and estimates their audience. It is the
// primary port of the pricing engine. Mock implementations are generated
// from this interface for testing.
type PricingUseCase interface {
	// CalculatePrice prices a campaign request. Missing rate or geo rows
	// fall back to documented defaults; only an invalid coverage type or a
	// store failure returns an error.
	CalculatePrice(ctx context.Context, req domain.PricingRequest) (domain.PricingResult, error)

	// EstimateReach returns the audience estimate and area description for
	// a coverage selection without pricing it.
	EstimateReach(ctx context.Context, req domain.ReachRequest) (domain.Reach, error)
}

// InvoiceGenerator splits a campaign budget into monthly invoices. It does
// not persist anything.
type InvoiceGenerator interface {
	GenerateMonthlyInvoices(ctx context.Context, campaign domain.Campaign) ([]domain.Invoice, error)
}
