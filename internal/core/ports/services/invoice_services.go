package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// InvoiceSvcFacade defines the business operations on invoices.
type InvoiceSvcFacade interface {
	// CreateInvoice validates an invoice, computes its line amounts and
	// totals, and persists it.
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// CreateInvoiceFromTransactions builds an invoice whose line items are
	// derived from existing ledger entries and persists it.
	CreateInvoiceFromTransactions(ctx context.Context, invoice domain.Invoice, transactionIDs []string) (*domain.Invoice, error)

	// GetInvoiceByID retrieves an invoice with its items and payments.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices matching the filter, newest first.
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)

	// UpdateInvoice recomputes totals and updates an invoice.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice with its items and payments.
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// AddPayment records a payment and flips the invoice to PAID once
	// cumulative payments reach its total.
	AddPayment(ctx context.Context, invoiceID string, payment domain.Payment) (*domain.Invoice, error)
}
