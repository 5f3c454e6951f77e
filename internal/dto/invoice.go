package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// InvoiceItemRequest defines one line of an invoice create/update request.
type InvoiceItemRequest struct {
	Description     string          `json:"description" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice" binding:"required"`
	InventoryItemID *string         `json:"inventoryItemID"`
	TransactionID   *string         `json:"transactionID"`
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// Amounts and totals are computed server side from the line items. When
// TransactionIDs is set, the line items are derived from those ledger
// entries instead.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	ClientName    string               `json:"clientName" binding:"required"`
	ClientEmail   string               `json:"clientEmail" binding:"omitempty,email"`
	ClientAddress string               `json:"clientAddress"`
	IssueDate     *time.Time           `json:"issueDate"`
	DueDate       *time.Time           `json:"dueDate"`
	Status        domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
	PaymentTerms  domain.PaymentTerms  `json:"paymentTerms" binding:"omitempty,oneof=NET_7 NET_15 NET_30 NET_60"`
	CurrencyCode  string               `json:"currencyCode"`
	TaxRate       decimal.Decimal      `json:"taxRate"`
	Notes          string               `json:"notes"`
	Items          []InvoiceItemRequest `json:"items" binding:"omitempty,dive"`
	TransactionIDs []string             `json:"transactionIDs"`
}

// ToDomainInvoice converts the request to a domain Invoice.
func (r CreateInvoiceRequest) ToDomainInvoice() domain.Invoice {
	invoice := domain.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientAddress: r.ClientAddress,
		Status:        r.Status,
		PaymentTerms:  r.PaymentTerms,
		CurrencyCode:  r.CurrencyCode,
		TaxRate:       r.TaxRate,
		Notes:         r.Notes,
		Items:         make([]domain.InvoiceItem, len(r.Items)),
	}
	if r.IssueDate != nil {
		invoice.IssueDate = *r.IssueDate
	}
	if r.DueDate != nil {
		invoice.DueDate = *r.DueDate
	}
	for i, item := range r.Items {
		invoice.Items[i] = domain.InvoiceItem{
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			InventoryItemID: item.InventoryItemID,
			TransactionID:   item.TransactionID,
		}
	}
	return invoice
}

// UpdateInvoiceRequest mirrors CreateInvoiceRequest for full replacement updates.
type UpdateInvoiceRequest = CreateInvoiceRequest

// AddPaymentRequest defines the data needed to record a payment.
type AddPaymentRequest struct {
	AmountPaid           decimal.Decimal `json:"amountPaid" binding:"required"`
	PaymentDate          *time.Time      `json:"paymentDate"`
	PaymentMethod        string          `json:"paymentMethod"`
	TransactionReference string          `json:"transactionReference"`
}

// ToDomainPayment converts the request to a domain Payment.
func (r AddPaymentRequest) ToDomainPayment() domain.Payment {
	payment := domain.Payment{
		AmountPaid:           r.AmountPaid,
		PaymentMethod:        r.PaymentMethod,
		TransactionReference: r.TransactionReference,
	}
	if r.PaymentDate != nil {
		payment.PaymentDate = *r.PaymentDate
	}
	return payment
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Status     *domain.InvoiceStatus `form:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
	ClientName *string               `form:"clientName"`
	StartDate  *time.Time            `form:"startDate" time_format:"2006-01-02"`
	EndDate    *time.Time            `form:"endDate" time_format:"2006-01-02"`
	Limit      int                   `form:"limit,default=100"`
	Offset     int                   `form:"offset,default=0"`
}

// ToDomainFilter converts the query parameters to a domain filter.
func (p ListInvoicesParams) ToDomainFilter() domain.InvoiceFilter {
	return domain.InvoiceFilter{
		Status:     p.Status,
		ClientName: p.ClientName,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Limit:      p.Limit,
		Offset:     p.Offset,
	}
}

// InvoiceItemResponse defines one line of an invoice response.
type InvoiceItemResponse struct {
	InvoiceItemID   string          `json:"invoiceItemID"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Amount          decimal.Decimal `json:"amount"`
	InventoryItemID *string         `json:"inventoryItemID,omitempty"`
	TransactionID   *string         `json:"transactionID,omitempty"`
}

// PaymentResponse defines one recorded payment in an invoice response.
type PaymentResponse struct {
	PaymentID            string          `json:"paymentID"`
	AmountPaid           decimal.Decimal `json:"amountPaid"`
	PaymentDate          time.Time       `json:"paymentDate"`
	PaymentMethod        string          `json:"paymentMethod,omitempty"`
	TransactionReference string          `json:"transactionReference,omitempty"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	ClientName    string                `json:"clientName"`
	ClientEmail   string                `json:"clientEmail,omitempty"`
	ClientAddress string                `json:"clientAddress,omitempty"`
	IssueDate     time.Time             `json:"issueDate"`
	DueDate       time.Time             `json:"dueDate"`
	Status        domain.InvoiceStatus  `json:"status"`
	PaymentTerms  domain.PaymentTerms   `json:"paymentTerms"`
	CurrencyCode  string                `json:"currencyCode,omitempty"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxRate       decimal.Decimal       `json:"taxRate"`
	TaxAmount     decimal.Decimal       `json:"taxAmount"`
	Total         decimal.Decimal       `json:"total"`
	Notes         string                `json:"notes,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	Payments      []PaymentResponse     `json:"payments"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(invoice *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = InvoiceItemResponse{
			InvoiceItemID:   item.InvoiceItemID,
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			Amount:          item.Amount,
			InventoryItemID: item.InventoryItemID,
			TransactionID:   item.TransactionID,
		}
	}
	payments := make([]PaymentResponse, len(invoice.Payments))
	for i, p := range invoice.Payments {
		payments[i] = PaymentResponse{
			PaymentID:            p.PaymentID,
			AmountPaid:           p.AmountPaid,
			PaymentDate:          p.PaymentDate,
			PaymentMethod:        p.PaymentMethod,
			TransactionReference: p.TransactionReference,
		}
	}
	return InvoiceResponse{
		InvoiceID:     invoice.InvoiceID,
		InvoiceNumber: invoice.InvoiceNumber,
		ClientName:    invoice.ClientName,
		ClientEmail:   invoice.ClientEmail,
		ClientAddress: invoice.ClientAddress,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		Status:        invoice.Status,
		PaymentTerms:  invoice.PaymentTerms,
		CurrencyCode:  invoice.CurrencyCode,
		Subtotal:      invoice.Subtotal,
		TaxRate:       invoice.TaxRate,
		TaxAmount:     invoice.TaxAmount,
		Total:         invoice.Total,
		Notes:         invoice.Notes,
		Items:         items,
		Payments:      payments,
		CreatedAt:     invoice.CreatedAt,
		LastUpdatedAt: invoice.LastUpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
