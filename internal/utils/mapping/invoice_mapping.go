package mapping

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice header to a model Invoice.
// Items and payments are mapped separately since they persist in their own tables.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		ClientName:    d.ClientName,
		ClientEmail:   d.ClientEmail,
		ClientAddress: d.ClientAddress,
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		Status:        models.InvoiceStatus(d.Status),
		PaymentTerms:  string(d.PaymentTerms),
		CurrencyCode:  d.CurrencyCode,
		Subtotal:      d.Subtotal,
		TaxRate:       d.TaxRate,
		TaxAmount:     d.TaxAmount,
		Total:         d.Total,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice header to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		ClientName:    m.ClientName,
		ClientEmail:   m.ClientEmail,
		ClientAddress: m.ClientAddress,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		Status:        domain.InvoiceStatus(m.Status),
		PaymentTerms:  domain.PaymentTerms(m.PaymentTerms),
		CurrencyCode:  m.CurrencyCode,
		Subtotal:      m.Subtotal,
		TaxRate:       m.TaxRate,
		TaxAmount:     m.TaxAmount,
		Total:         m.Total,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		InvoiceItemID:   d.InvoiceItemID,
		InvoiceID:       d.InvoiceID,
		Description:     d.Description,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		Amount:          d.Amount,
		InventoryItemID: d.InventoryItemID,
		TransactionID:   d.TransactionID,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		InvoiceItemID:   m.InvoiceItemID,
		InvoiceID:       m.InvoiceID,
		Description:     m.Description,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		Amount:          m.Amount,
		InventoryItemID: m.InventoryItemID,
		TransactionID:   m.TransactionID,
	}
}

// ToDomainInvoiceItemSlice converts model InvoiceItems to domain InvoiceItems
func ToDomainInvoiceItemSlice(ms []models.InvoiceItem) []domain.InvoiceItem {
	ds := make([]domain.InvoiceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceItem(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:            d.PaymentID,
		InvoiceID:            d.InvoiceID,
		AmountPaid:           d.AmountPaid,
		PaymentDate:          d.PaymentDate,
		PaymentMethod:        d.PaymentMethod,
		TransactionReference: d.TransactionReference,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:            m.PaymentID,
		InvoiceID:            m.InvoiceID,
		AmountPaid:           m.AmountPaid,
		PaymentDate:          m.PaymentDate,
		PaymentMethod:        m.PaymentMethod,
		TransactionReference: m.TransactionReference,
	}
}

// ToDomainPaymentSlice converts model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
