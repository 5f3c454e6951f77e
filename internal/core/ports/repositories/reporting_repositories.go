package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind financial
// statements, dashboards and forecasting. All range parameters treat a nil
// range as unbounded.
type ReportingRepository interface {
	// SumAmount totals entries of one type within the range.
	SumAmount(ctx context.Context, txnType domain.TransactionType, dateRange *domain.DateRange) (decimal.Decimal, error)

	// MonthlySeries totals entries of one type per calendar month within the range.
	MonthlySeries(ctx context.Context, txnType domain.TransactionType, dateRange *domain.DateRange) ([]domain.MonthlyAmount, error)

	// CategoryBalances totals entries per account category of one type,
	// zero-filling categories with no matching entries.
	CategoryBalances(ctx context.Context, txnType domain.TransactionType, dateRange *domain.DateRange) ([]domain.CategoryBalance, error)

	// LatestEntryDate returns the most recent transaction date, or nil when
	// the ledger is empty.
	LatestEntryDate(ctx context.Context) (*time.Time, error)

	// ItemMonthlySold returns the per-month sold quantity of one inventory item.
	ItemMonthlySold(ctx context.Context, itemID string) ([]domain.MonthlyQuantity, error)

	// ItemTotals returns the lifetime sold quantity and revenue of one inventory item.
	ItemTotals(ctx context.Context, itemID string) (*domain.ItemTotals, error)

	// ItemRegionalSales returns per-region sales of one item, by revenue descending.
	ItemRegionalSales(ctx context.Context, itemID string, limit int) ([]domain.RegionalSales, error)

	// TopRegions returns overall per-region income totals, by revenue descending.
	TopRegions(ctx context.Context, limit int) ([]domain.RegionalSales, error)
}
