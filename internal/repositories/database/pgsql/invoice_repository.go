package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/models"
	"github.com/finbooks/finbooks_backend/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, client_name, client_email, client_address, issue_date, due_date, status, payment_terms, currency_code, subtotal, tax_rate, tax_amount, total, notes, created_at, last_updated_at`

func insertInvoiceItems(ctx context.Context, tx pgx.Tx, items []domain.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (invoice_item_id, invoice_id, description, quantity, unit_price, amount, inventory_item_id, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, item := range items {
		m := mapping.ToModelInvoiceItem(item)
		_, err := tx.Exec(ctx, query,
			m.InvoiceItemID,
			m.InvoiceID,
			m.Description,
			m.Quantity,
			m.UnitPrice,
			m.Amount,
			m.InventoryItemID,
			m.TransactionID,
		)
		if err != nil {
			return fmt.Errorf("failed to save invoice item %s: %w", m.InvoiceItemID, err)
		}
	}
	return nil
}

// SaveInvoice inserts an invoice header and its line items atomically.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin invoice save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.ClientName, m.ClientEmail, m.ClientAddress,
		m.IssueDate, m.DueDate, m.Status, m.PaymentTerms, m.CurrencyCode,
		m.Subtotal, m.TaxRate, m.TaxAmount, m.Total, m.Notes,
		m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, m.InvoiceNumber)
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}

	if err := insertInvoiceItems(ctx, tx, invoice.Items); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice save: %w", err)
	}
	return nil
}

func scanInvoiceHeader(row pgx.Row) (*domain.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID, &m.InvoiceNumber, &m.ClientName, &m.ClientEmail, &m.ClientAddress,
		&m.IssueDate, &m.DueDate, &m.Status, &m.PaymentTerms, &m.CurrencyCode,
		&m.Subtotal, &m.TaxRate, &m.TaxAmount, &m.Total, &m.Notes,
		&m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

// FindInvoiceByID retrieves an invoice with its items and payments.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	invoice, err := scanInvoiceHeader(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	items, err := r.findItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	payments, err := r.findPayments(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	invoice.Payments = payments
	return invoice, nil
}

func (r *PgxInvoiceRepository) findItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT invoice_item_id, invoice_id, description, quantity, unit_price, amount, inventory_item_id, transaction_id
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY invoice_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice items for %s: %w", invoiceID, err)
	}
	defer rows.Close()

	ms := make([]models.InvoiceItem, 0)
	for rows.Next() {
		var m models.InvoiceItem
		if err := rows.Scan(&m.InvoiceItemID, &m.InvoiceID, &m.Description, &m.Quantity, &m.UnitPrice, &m.Amount, &m.InventoryItemID, &m.TransactionID); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading invoice item rows: %w", err)
	}
	return mapping.ToDomainInvoiceItemSlice(ms), nil
}

func (r *PgxInvoiceRepository) findPayments(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, invoice_id, amount_paid, payment_date, payment_method, transaction_reference
		FROM payment_history
		WHERE invoice_id = $1
		ORDER BY payment_date;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for %s: %w", invoiceID, err)
	}
	defer rows.Close()

	ms := make([]models.Payment, 0)
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.InvoiceID, &m.AmountPaid, &m.PaymentDate, &m.PaymentMethod, &m.TransactionReference); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

// ListInvoices retrieves invoice headers matching the filter, newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != nil {
		conditions = append(conditions, "status = "+arg(string(*filter.Status)))
	}
	if filter.ClientName != nil {
		conditions = append(conditions, "client_name ILIKE "+arg("%"+*filter.ClientName+"%"))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "issue_date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "issue_date <= "+arg(*filter.EndDate))
	}

	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY issue_date DESC, created_at DESC"
	query += " LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoiceHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading invoice rows: %w", err)
	}
	return invoices, nil
}

// UpdateInvoice updates an invoice header and replaces its line items.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin invoice update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE invoices
		SET invoice_number = $2, client_name = $3, client_email = $4, client_address = $5,
			issue_date = $6, due_date = $7, status = $8, payment_terms = $9, currency_code = $10,
			subtotal = $11, tax_rate = $12, tax_amount = $13, total = $14, notes = $15,
			last_updated_at = $16
		WHERE invoice_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.ClientName, m.ClientEmail, m.ClientAddress,
		m.IssueDate, m.DueDate, m.Status, m.PaymentTerms, m.CurrencyCode,
		m.Subtotal, m.TaxRate, m.TaxAmount, m.Total, m.Notes,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, m.InvoiceID); err != nil {
		return fmt.Errorf("failed to replace invoice items for %s: %w", m.InvoiceID, err)
	}
	if err := insertInvoiceItems(ctx, tx, invoice.Items); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice update: %w", err)
	}
	return nil
}

// DeleteInvoice removes an invoice; items and payments go with it via
// ON DELETE CASCADE.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SavePayment records a payment against an invoice.
func (r *PgxInvoiceRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payment_history (payment_id, invoice_id, amount_paid, payment_date, payment_method, transaction_reference)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.PaymentID, m.InvoiceID, m.AmountPaid, m.PaymentDate, m.PaymentMethod, m.TransactionReference)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// UpdateInvoiceStatus sets the lifecycle status of an invoice.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error {
	query := `UPDATE invoices SET status = $2, last_updated_at = now() WHERE invoice_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update status of invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
