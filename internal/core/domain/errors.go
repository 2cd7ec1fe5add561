package domain

import "errors"

var (
	// ErrInvalidCoverageType is returned for any coverage value outside the
	// closed CoverageType set.
	ErrInvalidCoverageType = errors.New("invalid coverage type")

	// ErrInvalidRequest marks a malformed pricing or billing request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCampaignNotFound is returned when a campaign id does not resolve.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrCampaignAlreadyInvoiced is returned when invoices already exist for
	// a campaign and a new run is requested.
	ErrCampaignAlreadyInvoiced = errors.New("campaign already invoiced")
)
