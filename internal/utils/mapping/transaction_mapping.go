package mapping

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		Amount:            d.Amount,
		TransactionType:   models.TransactionType(d.TransactionType),
		Description:       d.Description,
		Category:          d.Category,
		AccountCategoryID: d.AccountCategoryID,
		TransactionDate:   d.TransactionDate,
		Region:            d.Region,
		Notes:             d.Notes,
		InventoryItemID:   d.InventoryItemID,
		Quantity:          d.Quantity,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		Amount:            m.Amount,
		TransactionType:   domain.TransactionType(m.TransactionType),
		Description:       m.Description,
		Category:          m.Category,
		AccountCategoryID: m.AccountCategoryID,
		TransactionDate:   m.TransactionDate,
		Region:            m.Region,
		Notes:             m.Notes,
		InventoryItemID:   m.InventoryItemID,
		Quantity:          m.Quantity,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
