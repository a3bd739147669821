package postgres

import (
	"context"
	"database/sql"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository"
)

// accountingRepository is the ledger side of invoice drafting: it persists
// the billing document and nothing else.
type accountingRepository struct {
	db *sql.DB
}

func NewAccountingRepository(db *sql.DB) repository.AccountingRepository {
	return &accountingRepository{db: db}
}

func (r *accountingRepository) CreateInvoice(ctx context.Context, invoice *domain.CustomerInvoice) error {
	query := `INSERT INTO account_invoices (invoice_date, type, created_on) VALUES ($1, $2, $3) RETURNING id`
	now := time.Now()
	if err := r.db.QueryRowContext(ctx, query, invoice.InvoiceDate, invoice.Type, now).Scan(&invoice.ID); err != nil {
		return err
	}
	invoice.CreatedOn = now
	return nil
}
