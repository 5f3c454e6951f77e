package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/models"
	"github.com/finbooks/finbooks_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, amount, transaction_type, description, category, account_category_id, transaction_date, region, notes, inventory_item_id, quantity, created_at, last_updated_at`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

func transactionInsertArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID,
		m.Amount,
		m.TransactionType,
		m.Description,
		m.Category,
		m.AccountCategoryID,
		m.TransactionDate,
		m.Region,
		m.Notes,
		m.InventoryItemID,
		m.Quantity,
		m.CreatedAt,
		m.LastUpdatedAt,
	}
}

func mapSaveTransactionError(err error, transactionID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, transactionID)
	}
	return fmt.Errorf("failed to save transaction %s: %w", transactionID, err)
}

// SaveTransaction inserts a new ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := r.Pool.Exec(ctx, insertTransactionQuery, transactionInsertArgs(m)...); err != nil {
		return mapSaveTransactionError(err, m.TransactionID)
	}
	return nil
}

// SaveTransactionInTx inserts a new ledger entry within an open transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := tx.Exec(ctx, insertTransactionQuery, transactionInsertArgs(m)...); err != nil {
		return mapSaveTransactionError(err, m.TransactionID)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Amount,
		&m.TransactionType,
		&m.Description,
		&m.Category,
		&m.AccountCategoryID,
		&m.TransactionDate,
		&m.Region,
		&m.Notes,
		&m.InventoryItemID,
		&m.Quantity,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindTransactionByID retrieves a ledger entry by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves entries matching the filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != nil {
		conditions = append(conditions, "transaction_type = "+arg(string(*filter.Type)))
	}
	if filter.Category != nil {
		conditions = append(conditions, "category = "+arg(*filter.Category))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "transaction_date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "transaction_date <= "+arg(*filter.EndDate))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY transaction_date DESC, created_at DESC"
	query += " LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction updates an existing ledger entry.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET amount = $2, transaction_type = $3, description = $4, category = $5,
			account_category_id = $6, transaction_date = $7, region = $8, notes = $9,
			last_updated_at = $10
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Amount,
		m.TransactionType,
		m.Description,
		m.Category,
		m.AccountCategoryID,
		m.TransactionDate,
		m.Region,
		m.Notes,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a ledger entry.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetMonthlySummary aggregates income, expense and net for one calendar month.
func (r *PgxTransactionRepository) GetMonthlySummary(ctx context.Context, year int, month int) (*domain.MonthlySummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'INCOME'), 0) AS total_income,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'EXPENSE'), 0) AS total_expense
		FROM transactions
		WHERE EXTRACT(YEAR FROM transaction_date) = $1
		  AND EXTRACT(MONTH FROM transaction_date) = $2;
	`
	var totalIncome, totalExpense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, year, month).Scan(&totalIncome, &totalExpense); err != nil {
		return nil, fmt.Errorf("failed to build monthly summary for %d-%02d: %w", year, month, err)
	}

	return &domain.MonthlySummary{
		Year:         year,
		Month:        month,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Net:          totalIncome.Sub(totalExpense),
	}, nil
}
