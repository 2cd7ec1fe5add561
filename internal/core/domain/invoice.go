package domain

import "time"

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// InvoicePeriodDays is the fixed billing cadence.
const InvoicePeriodDays = 30

// InvoiceDueDays is the number of days after billing an invoice falls due.
const InvoiceDueDays = 7

// Invoice is one billing period of a campaign. Amount is net; TotalAmount
// is Amount plus TaxAmount.
type Invoice struct {
	ID            int64         `json:"id,omitempty"`
	InvoiceNumber string        `json:"invoice_number"`
	CampaignID    int64         `json:"campaign_id"`
	AdvertiserID  int64         `json:"advertiser_id"`
	Sequence      int           `json:"sequence"` // 1-based billing period
	Amount        float64       `json:"amount"`
	TaxRate       float64       `json:"tax_rate"`
	TaxAmount     float64       `json:"tax_amount"`
	TotalAmount   float64       `json:"total_amount"`
	Country       string        `json:"country"`
	BillingDate   time.Time     `json:"billing_date"`
	DueDate       time.Time     `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at,omitempty"`
}
