package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the persisted invoice lifecycle state.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is a persisted invoice header; line items and payments live in
// their own tables.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	ClientName    string          `db:"client_name"`
	ClientEmail   string          `db:"client_email"`
	ClientAddress string          `db:"client_address"`
	IssueDate     time.Time       `db:"issue_date"`
	DueDate       time.Time       `db:"due_date"`
	Status        InvoiceStatus   `db:"status"`
	PaymentTerms  string          `db:"payment_terms"`
	CurrencyCode  string          `db:"currency_code"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	TaxRate       decimal.Decimal `db:"tax_rate"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
	Total         decimal.Decimal `db:"total"`
	Notes         string          `db:"notes"`
	AuditFields
}

// InvoiceItem is one persisted invoice line.
type InvoiceItem struct {
	InvoiceItemID   string          `db:"invoice_item_id"`
	InvoiceID       string          `db:"invoice_id"`
	Description     string          `db:"description"`
	Quantity        decimal.Decimal `db:"quantity"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	Amount          decimal.Decimal `db:"amount"`
	InventoryItemID *string         `db:"inventory_item_id"` // Nullable
	TransactionID   *string         `db:"transaction_id"`    // Nullable
}

// Payment is one persisted payment against an invoice.
type Payment struct {
	PaymentID            string          `db:"payment_id"`
	InvoiceID            string          `db:"invoice_id"`
	AmountPaid           decimal.Decimal `db:"amount_paid"`
	PaymentDate          time.Time       `db:"payment_date"`
	PaymentMethod        string          `db:"payment_method"`
	TransactionReference string          `db:"transaction_reference"`
}
