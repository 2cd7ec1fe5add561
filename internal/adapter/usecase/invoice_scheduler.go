package usecase

import (
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"campaign-pricing/internal/core/domain"
	"campaign-pricing/internal/core/port"
)

// SuffixFunc returns the random tail of an invoice number.
type SuffixFunc func() string

// RandomSuffix returns six upper-case hex characters taken from a random
// (version 4) UUID.
func RandomSuffix() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:3]))
}

// InvoiceScheduler splits a campaign budget into monthly invoices. It
// implements port.InvoiceGenerator and performs no persistence.
type InvoiceScheduler struct {
	geo    port.GeoRegistry
	suffix SuffixFunc
}

// NewInvoiceScheduler creates a scheduler. A nil suffix selects
// RandomSuffix.
func NewInvoiceScheduler(geo port.GeoRegistry, suffix SuffixFunc) *InvoiceScheduler {
	if suffix == nil {
		suffix = RandomSuffix
	}
	return &InvoiceScheduler{geo: geo, suffix: suffix}
}

// GenerateMonthlyInvoices returns one invoice per 30-day period of the
// campaign in billing order. The budget is the net total split evenly;
// country-level tax is added on top of each period. A reversed or empty
// date range still yields a single invoice.
func (s *InvoiceScheduler) GenerateMonthlyInvoices(ctx context.Context, c domain.Campaign) ([]domain.Invoice, error) {
	months := durationMonths(c.DurationDays())
	monthlyNet := c.Budget / float64(months)

	taxRate, err := s.countryTaxRate(ctx, c.TargetCountry)
	if err != nil {
		return nil, err
	}

	start := midnight(c.StartDate)
	invoices := make([]domain.Invoice, 0, months)
	for i := 0; i < months; i++ {
		billing := start.AddDate(0, 0, i*domain.InvoicePeriodDays)
		tax := monthlyNet * taxRate / 100

		status := domain.InvoiceStatusPending
		if i == 0 && c.Status != domain.CampaignStatusDraft {
			status = domain.InvoiceStatusPaid
		}

		invoices = append(invoices, domain.Invoice{
			InvoiceNumber: fmt.Sprintf("INV-%d-%d-%s", c.ID, i+1, s.suffix()),
			CampaignID:    c.ID,
			AdvertiserID:  c.AdvertiserID,
			Sequence:      i + 1,
			Amount:        monthlyNet,
			TaxRate:       taxRate,
			TaxAmount:     tax,
			TotalAmount:   monthlyNet + tax,
			Country:       c.TargetCountry,
			BillingDate:   billing,
			DueDate:       billing.AddDate(0, 0, domain.InvoiceDueDays),
			Status:        status,
		})
	}
	return invoices, nil
}

// countryTaxRate returns the country-level tax percentage, or 0 when the
// country is blank or unknown. State-level rows are never consulted.
func (s *InvoiceScheduler) countryTaxRate(ctx context.Context, country string) (float64, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return 0, nil
	}
	fact, err := s.geo.FindCountry(ctx, country)
	if err != nil {
		return 0, err
	}
	if fact == nil {
		return 0, nil
	}
	return fact.TaxRate, nil
}

// durationMonths converts days to billing periods, rounding half to even
// and never returning less than one.
func durationMonths(days int) int {
	months := int(math.RoundToEven(float64(days) / domain.InvoicePeriodDays))
	return max(1, months)
}

// midnight truncates t to the start of its UTC day. Stored timestamps come
// back in the server's local zone, so the calendar day is read in UTC.
func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
