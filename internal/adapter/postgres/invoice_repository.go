package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"campaign-pricing/internal/core/domain"
)

const (
	pgUniqueViolation      = "23505"
	invoicePeriodUniqueKey = "invoices_campaign_id_period_seq_key"
)

// InvoiceRepository implements port.InvoiceRepository using pgxpool.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository returns a new repository instance.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// CreateInvoices inserts the batch in a single transaction. A concurrent
// run that already stored a period for the campaign surfaces as
// domain.ErrCampaignAlreadyInvoiced and nothing from this batch is kept.
func (r *InvoiceRepository) CreateInvoices(ctx context.Context, invoices []domain.Invoice) ([]domain.Invoice, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "begin invoice batch")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stored := make([]domain.Invoice, len(invoices))
	copy(stored, invoices)
	for i := range stored {
		inv := &stored[i]
		err = tx.QueryRow(ctx, `
            INSERT INTO invoices
                (invoice_number, campaign_id, advertiser_id, period_seq, amount, tax_rate,
                 tax_amount, total_amount, country, billing_date, due_date, status)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
            RETURNING id, created_at`,
			inv.InvoiceNumber, inv.CampaignID, inv.AdvertiserID, inv.Sequence, inv.Amount, inv.TaxRate,
			inv.TaxAmount, inv.TotalAmount, inv.Country, inv.BillingDate, inv.DueDate, string(inv.Status),
		).Scan(&inv.ID, &inv.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == invoicePeriodUniqueKey {
				return nil, domain.ErrCampaignAlreadyInvoiced
			}
			return nil, errors.Wrapf(err, "insert invoice %s", inv.InvoiceNumber)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit invoice batch")
	}
	return stored, nil
}

// HasInvoices reports whether any invoice exists for the campaign.
func (r *InvoiceRepository) HasInvoices(ctx context.Context, campaignID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE campaign_id = $1)`, campaignID).Scan(&exists)
	if err != nil {
		return false, errors.Wrapf(err, "check invoices of campaign %d", campaignID)
	}
	return exists, nil
}

// ListInvoices returns the campaign's invoices in billing order.
func (r *InvoiceRepository) ListInvoices(ctx context.Context, campaignID int64) ([]domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, invoice_number, campaign_id, advertiser_id, period_seq, amount, tax_rate,
               tax_amount, total_amount, country, billing_date, due_date, status, created_at
        FROM invoices
        WHERE campaign_id = $1
        ORDER BY billing_date, period_seq`, campaignID)
	if err != nil {
		return nil, errors.Wrapf(err, "list invoices of campaign %d", campaignID)
	}
	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		var (
			inv    domain.Invoice
			status string
		)
		err := row.Scan(
			&inv.ID,
			&inv.InvoiceNumber,
			&inv.CampaignID,
			&inv.AdvertiserID,
			&inv.Sequence,
			&inv.Amount,
			&inv.TaxRate,
			&inv.TaxAmount,
			&inv.TotalAmount,
			&inv.Country,
			&inv.BillingDate,
			&inv.DueDate,
			&status,
			&inv.CreatedAt,
		)
		inv.Status = domain.InvoiceStatus(status)
		return inv, err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan invoices of campaign %d", campaignID)
	}
	return invoices, nil
}
