package domain

import "time"

// InvoiceTypeCustomer marks a drafted invoice as an outbound customer
// invoice in the accounting collaborator.
const InvoiceTypeCustomer = "customer_invoice"

// CustomerInvoice is the billing record drafted when a contract is
// returned. It intentionally carries no link back to the contract, the
// customer or a price.
type CustomerInvoice struct {
	ID          int32     `json:"id"`
	InvoiceDate time.Time `json:"invoice_date"`
	Type        string    `json:"type"`
	CreatedOn   time.Time `json:"created_on"`
}
