package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// TransactionSvcFacade defines the business operations on ledger entries.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new ledger entry, adjusting
	// linked inventory stock atomically when the entry references an item.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// GetTransactionByID retrieves a single ledger entry.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves entries matching the filter, newest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// UpdateTransaction updates an existing ledger entry.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// DeleteTransaction removes a ledger entry.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// GetMonthlySummary aggregates income, expense and net for one calendar month.
	GetMonthlySummary(ctx context.Context, year int, month int) (*domain.MonthlySummary, error)
}
