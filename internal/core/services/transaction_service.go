package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo       portsrepo.TransactionRepositoryWithTx
	categoryRepo  portsrepo.CategoryReader
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWithTx, categoryRepo portsrepo.CategoryReader, inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:       txnRepo,
		categoryRepo:  categoryRepo,
		inventoryRepo: inventoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) validate(txn domain.Transaction) error {
	if !txn.TransactionType.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid transaction type: %s", txn.TransactionType))
	}
	if !txn.Amount.IsPositive() {
		return apperrors.NewValidationError("amount must be positive")
	}
	if txn.Quantity < 0 {
		return apperrors.NewValidationError("quantity cannot be negative")
	}
	return nil
}

// stockDelta translates a ledger entry into its inventory effect: sales
// (INCOME) deplete stock, purchases (EXPENSE) replenish it.
func stockDelta(txn domain.Transaction) int64 {
	switch txn.TransactionType {
	case domain.Income:
		return -txn.Quantity
	case domain.Expense:
		return txn.Quantity
	}
	return 0
}

// CreateTransaction validates and persists a new ledger entry. When the entry
// references an inventory item, the stock adjustment commits in the same
// database transaction as the entry itself.
func (s *transactionService) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if err := s.validate(txn); err != nil {
		return nil, err
	}
	if txn.AccountCategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *txn.AccountCategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("account category does not exist")
			}
			return nil, err
		}
	}

	now := time.Now()
	txn.TransactionID = uuid.NewString()
	txn.CreatedAt = now
	txn.LastUpdatedAt = now
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = now
	}

	delta := stockDelta(txn)
	if txn.InventoryItemID == nil || delta == 0 {
		if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
			s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
			return nil, err
		}
		s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
		return &txn, nil
	}

	if _, err := s.inventoryRepo.FindItemByID(ctx, *txn.InventoryItemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("inventory item does not exist")
		}
		return nil, err
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction for stock adjustment")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txnRepo.Rollback(ctx, tx) }()

	if err := s.txnRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}
	if err := s.inventoryRepo.AdjustQuantity(ctx, tx, *txn.InventoryItemID, delta); err != nil {
		s.LogError(ctx, err, "Failed to adjust inventory stock",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("item_id", *txn.InventoryItemID),
			slog.Int64("delta", delta))
		return nil, err
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction with stock adjustment", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created with stock adjustment",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("item_id", *txn.InventoryItemID),
		slog.Int64("delta", delta))
	return &txn, nil
}

// GetTransactionByID retrieves a single ledger entry.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves entries matching the filter, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// UpdateTransaction updates an existing ledger entry. Stock linked at
// creation time is not re-adjusted on update.
func (s *transactionService) UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if err := s.validate(txn); err != nil {
		return nil, err
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, txn.TransactionID)
	if err != nil {
		return nil, err
	}

	// Stock links are set at creation and never re-adjusted on update.
	txn.InventoryItemID = existing.InventoryItemID
	txn.Quantity = existing.Quantity
	txn.CreatedAt = existing.CreatedAt
	txn.LastUpdatedAt = time.Now()
	if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

// DeleteTransaction removes a ledger entry.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// GetMonthlySummary aggregates income, expense and net for one calendar month.
func (s *transactionService) GetMonthlySummary(ctx context.Context, year int, month int) (*domain.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month must be between 1 and 12")
	}
	if year < 1 {
		return nil, apperrors.NewValidationError("year must be positive")
	}
	summary, err := s.txnRepo.GetMonthlySummary(ctx, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to build monthly summary", slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to build monthly summary: %w", err)
	}
	return summary, nil
}
