package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

var oneHundred = decimal.NewFromInt(100)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	txnRepo     portsrepo.TransactionReader
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, txnRepo portsrepo.TransactionReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: repo, txnRepo: txnRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func termDays(terms domain.PaymentTerms) int {
	switch terms {
	case domain.Net7:
		return 7
	case domain.Net15:
		return 15
	case domain.Net60:
		return 60
	default:
		return 30
	}
}

func (s *invoiceService) validate(invoice domain.Invoice) error {
	if invoice.ClientName == "" {
		return apperrors.NewValidationError("client name is required")
	}
	if len(invoice.Items) == 0 {
		return apperrors.NewValidationError("invoice requires at least one line item")
	}
	if invoice.TaxRate.IsNegative() {
		return apperrors.NewValidationError("tax rate cannot be negative")
	}
	for _, item := range invoice.Items {
		if !item.Quantity.IsPositive() {
			return apperrors.NewValidationError("line item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return apperrors.NewValidationError("line item unit price cannot be negative")
		}
	}
	return nil
}

// computeTotals derives every stored monetary figure from the line items so
// a stored invoice never disagrees with its own lines.
func computeTotals(invoice *domain.Invoice) {
	subtotal := decimal.Zero
	for i := range invoice.Items {
		invoice.Items[i].Amount = invoice.Items[i].Quantity.Mul(invoice.Items[i].UnitPrice)
		subtotal = subtotal.Add(invoice.Items[i].Amount)
	}
	invoice.Subtotal = subtotal
	invoice.TaxAmount = subtotal.Mul(invoice.TaxRate).Div(oneHundred)
	invoice.Total = subtotal.Add(invoice.TaxAmount)
}

// CreateInvoice validates an invoice, computes its line amounts and totals,
// and persists it.
func (s *invoiceService) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	if err := s.validate(invoice); err != nil {
		return nil, err
	}

	now := time.Now()
	invoice.InvoiceID = uuid.NewString()
	invoice.CreatedAt = now
	invoice.LastUpdatedAt = now
	if invoice.Status == "" {
		invoice.Status = domain.InvoiceDraft
	}
	if invoice.PaymentTerms == "" {
		invoice.PaymentTerms = domain.Net30
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = now
	}
	if invoice.DueDate.IsZero() {
		invoice.DueDate = invoice.IssueDate.AddDate(0, 0, termDays(invoice.PaymentTerms))
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceItemID = uuid.NewString()
		invoice.Items[i].InvoiceID = invoice.InvoiceID
	}
	computeTotals(&invoice)

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total", invoice.Total.String()))
	return &invoice, nil
}

// CreateInvoiceFromTransactions builds an invoice whose line items are derived
// from existing ledger entries and persists it. Entries that no longer exist
// are skipped; only an empty result is an error.
func (s *invoiceService) CreateInvoiceFromTransactions(ctx context.Context, invoice domain.Invoice, transactionIDs []string) (*domain.Invoice, error) {
	if len(transactionIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one transaction ID is required")
	}

	items := make([]domain.InvoiceItem, 0, len(transactionIDs))
	for _, id := range transactionIDs {
		txn, err := s.txnRepo.FindTransactionByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}

		quantity := txn.Quantity
		if quantity == 0 {
			quantity = 1
		}
		qty := decimal.NewFromInt(quantity)
		description := txn.Description
		if description == "" {
			description = "Transaction #" + txn.TransactionID
		}
		txnID := txn.TransactionID
		items = append(items, domain.InvoiceItem{
			Description:   description,
			Quantity:      qty,
			UnitPrice:     txn.Amount.Div(qty),
			TransactionID: &txnID,
		})
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("no transactions found for invoice")
	}

	invoice.Items = items
	return s.CreateInvoice(ctx, invoice)
}

// GetInvoiceByID retrieves an invoice with its items and payments.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

// ListInvoices retrieves invoices matching the filter, newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

// UpdateInvoice recomputes totals and updates an invoice. Paid and cancelled
// invoices are immutable.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	if err := s.validate(invoice); err != nil {
		return nil, err
	}

	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoice.InvoiceID)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.InvoicePaid || existing.Status == domain.InvoiceCancelled {
		return nil, apperrors.NewConflictError(fmt.Sprintf("cannot modify a %s invoice", existing.Status))
	}

	invoice.CreatedAt = existing.CreatedAt
	invoice.LastUpdatedAt = time.Now()
	for i := range invoice.Items {
		if invoice.Items[i].InvoiceItemID == "" {
			invoice.Items[i].InvoiceItemID = uuid.NewString()
		}
		invoice.Items[i].InvoiceID = invoice.InvoiceID
	}
	computeTotals(&invoice)

	if err := s.invoiceRepo.UpdateInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoice.InvoiceID))
	return &invoice, nil
}

// DeleteInvoice removes an invoice with its items and payments.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		}
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

// AddPayment records a payment and flips the invoice to PAID once cumulative
// payments reach its total.
func (s *invoiceService) AddPayment(ctx context.Context, invoiceID string, payment domain.Payment) (*domain.Invoice, error) {
	if !payment.AmountPaid.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be positive")
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoiceCancelled {
		return nil, apperrors.NewConflictError("cannot pay a cancelled invoice")
	}

	payment.PaymentID = uuid.NewString()
	payment.InvoiceID = invoiceID
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}

	if err := s.invoiceRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	invoice.Payments = append(invoice.Payments, payment)

	paid := decimal.Zero
	for _, p := range invoice.Payments {
		paid = paid.Add(p.AmountPaid)
	}
	if paid.GreaterThanOrEqual(invoice.Total) && invoice.Status != domain.InvoicePaid {
		if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoicePaid); err != nil {
			s.LogError(ctx, err, "Failed to mark invoice as paid", slog.String("invoice_id", invoiceID))
			return nil, err
		}
		invoice.Status = domain.InvoicePaid
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("invoice_id", invoiceID),
		slog.String("amount", payment.AmountPaid.String()),
		slog.String("status", string(invoice.Status)))
	return invoice, nil
}
