package service

import (
	"context"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/logger"
	"bikeshop-backend/internal/repository"
)

// invoiceService turns a returned contract into a billing request in the
// accounting collaborator. The drafted invoice carries only its date and
// type; it is not linked back to the contract, the customer or a price.
type invoiceService struct {
	accountingRepo repository.AccountingRepository
}

func NewInvoiceService(accountingRepo repository.AccountingRepository) InvoiceService {
	return &invoiceService{accountingRepo: accountingRepo}
}

func (s *invoiceService) DraftInvoice(ctx context.Context, invoiceDate time.Time) (*domain.CustomerInvoice, error) {
	invoice := &domain.CustomerInvoice{
		InvoiceDate: invoiceDate,
		Type:        domain.InvoiceTypeCustomer,
	}
	if err := s.accountingRepo.CreateInvoice(ctx, invoice); err != nil {
		return nil, err
	}
	logger.Info("Drafted customer invoice", "invoice_id", invoice.ID, "invoice_date", invoiceDate.Format("2006-01-02"))
	return invoice, nil
}
