package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks the lifecycle of an invoice. The transition to PAID is
// one-directional and happens only once cumulative payments reach the total.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// PaymentTerms is the agreed payment window for an invoice.
type PaymentTerms string

const (
	Net7  PaymentTerms = "NET_7"
	Net15 PaymentTerms = "NET_15"
	Net30 PaymentTerms = "NET_30"
	Net60 PaymentTerms = "NET_60"
)

// Invoice is an invoice header plus its line items and payment history.
// Invariants: Subtotal = sum of item amounts, TaxAmount = Subtotal*TaxRate/100,
// Total = Subtotal + TaxAmount.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientName    string          `json:"clientName"`
	ClientEmail   string          `json:"clientEmail"`
	ClientAddress string          `json:"clientAddress"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	PaymentTerms  PaymentTerms    `json:"paymentTerms"`
	CurrencyCode  string          `json:"currencyCode"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	Notes         string          `json:"notes"`

	Items    []InvoiceItem `json:"items"`
	Payments []Payment     `json:"payments"`

	AuditFields
}

// InvoiceItem is one line on an invoice. Amount = Quantity * UnitPrice.
type InvoiceItem struct {
	InvoiceItemID   string          `json:"invoiceItemID"`
	InvoiceID       string          `json:"invoiceID"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Amount          decimal.Decimal `json:"amount"`
	InventoryItemID *string         `json:"inventoryItemID"`
	TransactionID   *string         `json:"transactionID"`
}

// Payment records a single payment against an invoice.
type Payment struct {
	PaymentID            string          `json:"paymentID"`
	InvoiceID            string          `json:"invoiceID"`
	AmountPaid           decimal.Decimal `json:"amountPaid"`
	PaymentDate          time.Time       `json:"paymentDate"`
	PaymentMethod        string          `json:"paymentMethod"`
	TransactionReference string          `json:"transactionReference"`
}

// InvoiceFilter narrows ListInvoices queries.
type InvoiceFilter struct {
	Status     *InvoiceStatus
	ClientName *string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}
