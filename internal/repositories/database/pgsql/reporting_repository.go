package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregate queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// rangeConditions appends date bounds for the given column. A nil range or a
// zero bound means unbounded on that side.
func rangeConditions(column string, dateRange *domain.DateRange, args *[]any) string {
	if dateRange == nil {
		return ""
	}
	var clause string
	if !dateRange.Start.IsZero() {
		*args = append(*args, dateRange.Start)
		clause += fmt.Sprintf(" AND %s >= $%d", column, len(*args))
	}
	if !dateRange.End.IsZero() {
		*args = append(*args, dateRange.End)
		clause += fmt.Sprintf(" AND %s <= $%d", column, len(*args))
	}
	return clause
}

// SumAmount totals entries of one type within the range.
func (r *PgxReportingRepository) SumAmount(ctx context.Context, txnType domain.TransactionType, dateRange *domain.DateRange) (decimal.Decimal, error) {
	args := []any{string(txnType)}
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE transaction_type = $1`
	query += rangeConditions("transaction_date", dateRange, &args)

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s amounts: %w", txnType, err)
	}
	return total, nil
}

// MonthlySeries totals entries of one type per calendar month within the range.
func (r *PgxReportingRepository) MonthlySeries(ctx context.Context, txnType domain.TransactionType, dateRange *domain.DateRange) ([]domain.MonthlyAmount, error) {
	args := []any{string(txnType)}
	query := `
		SELECT date_trunc('month', transaction_date) AS month, SUM(amount) AS total
		FROM transactions
		WHERE transaction_type = $1`
	query += rangeConditions("transaction_date", dateRange, &args)
	query += `
		GROUP BY month
		ORDER BY month;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s monthly series: %w", txnType, err)
	}
	defer rows.Close()

	series := make([]domain.MonthlyAmount, 0)
	for rows.Next() {
		var m domain.MonthlyAmount
		if err := rows.Scan(&m.Month, &m.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly series row: %w", err)
		}
		series = append(series, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading monthly series rows: %w", err)
	}
	return series, nil
}

// CategoryBalances totals entries per account category of one type. The left
// join keeps categories with no matching entries in the result at zero, so
// statement trees always show the full chart of accounts.
func (r *PgxReportingRepository) CategoryBalances(ctx context.Context, txnType domain.TransactionType, dateRange *domain.DateRange) ([]domain.CategoryBalance, error) {
	args := []any{string(txnType)}
	query := `
		SELECT c.category_id, c.code, c.name, c.parent_id, COALESCE(SUM(t.amount), 0) AS balance
		FROM account_categories c
		LEFT JOIN transactions t
			ON t.account_category_id = c.category_id`
	query += rangeConditions("t.transaction_date", dateRange, &args)
	query += `
		WHERE c.type = $1
		GROUP BY c.category_id, c.code, c.name, c.parent_id
		ORDER BY c.code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s category balances: %w", txnType, err)
	}
	defer rows.Close()

	balances := make([]domain.CategoryBalance, 0)
	for rows.Next() {
		var b domain.CategoryBalance
		if err := rows.Scan(&b.CategoryID, &b.Code, &b.Name, &b.ParentID, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan category balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading category balance rows: %w", err)
	}
	return balances, nil
}

// LatestEntryDate returns the most recent transaction date, or nil when the
// ledger is empty.
func (r *PgxReportingRepository) LatestEntryDate(ctx context.Context) (*time.Time, error) {
	var latest *time.Time
	if err := r.Pool.QueryRow(ctx, `SELECT MAX(transaction_date) FROM transactions;`).Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to find latest entry date: %w", err)
	}
	return latest, nil
}

// ItemMonthlySold returns the per-month sold quantity of one inventory item.
// Only INCOME entries count as sales.
func (r *PgxReportingRepository) ItemMonthlySold(ctx context.Context, itemID string) ([]domain.MonthlyQuantity, error) {
	query := `
		SELECT date_trunc('month', transaction_date) AS month, SUM(quantity)::float8 AS sold
		FROM transactions
		WHERE inventory_item_id = $1 AND transaction_type = 'INCOME'
		GROUP BY month
		ORDER BY month;
	`
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly sales of item %s: %w", itemID, err)
	}
	defer rows.Close()

	series := make([]domain.MonthlyQuantity, 0)
	for rows.Next() {
		var m domain.MonthlyQuantity
		if err := rows.Scan(&m.Month, &m.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan monthly quantity row: %w", err)
		}
		series = append(series, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading monthly quantity rows: %w", err)
	}
	return series, nil
}

// ItemTotals returns the lifetime sold quantity and revenue of one item.
func (r *PgxReportingRepository) ItemTotals(ctx context.Context, itemID string) (*domain.ItemTotals, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)::float8, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE inventory_item_id = $1 AND transaction_type = 'INCOME';
	`
	var totals domain.ItemTotals
	if err := r.Pool.QueryRow(ctx, query, itemID).Scan(&totals.TotalSold, &totals.TotalRevenue); err != nil {
		return nil, fmt.Errorf("failed to load totals of item %s: %w", itemID, err)
	}
	return &totals, nil
}

// ItemRegionalSales returns per-region sales of one item, by revenue descending.
func (r *PgxReportingRepository) ItemRegionalSales(ctx context.Context, itemID string, limit int) ([]domain.RegionalSales, error) {
	query := `
		SELECT region, SUM(quantity)::float8 AS sold, SUM(amount) AS revenue, COUNT(*) AS txn_count
		FROM transactions
		WHERE inventory_item_id = $1 AND transaction_type = 'INCOME' AND region <> ''
		GROUP BY region
		ORDER BY revenue DESC
		LIMIT $2;
	`
	return r.queryRegionalSales(ctx, query, itemID, limit)
}

// TopRegions returns per-region income totals across all stock items, by
// revenue descending. Only item-linked sales count.
func (r *PgxReportingRepository) TopRegions(ctx context.Context, limit int) ([]domain.RegionalSales, error) {
	query := `
		SELECT region, SUM(quantity)::float8 AS sold, SUM(amount) AS revenue, COUNT(*) AS txn_count
		FROM transactions
		WHERE transaction_type = 'INCOME' AND inventory_item_id IS NOT NULL AND region <> ''
		GROUP BY region
		ORDER BY revenue DESC
		LIMIT $1;
	`
	return r.queryRegionalSales(ctx, query, limit)
}

func (r *PgxReportingRepository) queryRegionalSales(ctx context.Context, query string, args ...any) ([]domain.RegionalSales, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load regional sales: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.RegionalSales, 0)
	for rows.Next() {
		var s domain.RegionalSales
		if err := rows.Scan(&s.Region, &s.QuantitySold, &s.Revenue, &s.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan regional sales row: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading regional sales rows: %w", err)
	}
	return sales, nil
}
