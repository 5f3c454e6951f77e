package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// monthStampFormat labels each profit and loss bucket with its month's
// start date.
const monthStampFormat = "2006-01-02"

// monthlyBreakdownEntries turns a monthly series into date-stamped breakdown
// entries and totals it.
func monthlyBreakdownEntries(series []domain.MonthlyAmount) (decimal.Decimal, []domain.BreakdownEntry) {
	total := decimal.Zero
	entries := make([]domain.BreakdownEntry, len(series))
	for i, bucket := range series {
		entries[i] = domain.BreakdownEntry{
			Category: bucket.Month.Format(monthStampFormat),
			Amount:   bucket.Amount,
		}
		total = total.Add(bucket.Amount)
	}
	return total, entries
}

// ProfitAndLoss generates a profit and loss statement for a period. The
// breakdowns are monthly buckets, each labeled with the month's start date,
// and the totals are the sums of those buckets.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitLossReport, error) {
	period := domain.Between(from, to)

	revenueSeries, err := s.reportingRepo.MonthlySeries(ctx, domain.Income, &period)
	if err != nil {
		s.LogError(ctx, err, "Failed to build revenue breakdown")
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}
	expenseSeries, err := s.reportingRepo.MonthlySeries(ctx, domain.Expense, &period)
	if err != nil {
		s.LogError(ctx, err, "Failed to build expenses breakdown")
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}

	totalRevenue, revenueBreakdown := monthlyBreakdownEntries(revenueSeries)
	totalExpenses, expensesBreakdown := monthlyBreakdownEntries(expenseSeries)

	report := &domain.ProfitLossReport{
		PeriodStart:       from,
		PeriodEnd:         to,
		TotalRevenue:      totalRevenue,
		TotalExpenses:     totalExpenses,
		NetProfit:         totalRevenue.Sub(totalExpenses),
		RevenueBreakdown:  revenueBreakdown,
		ExpensesBreakdown: expensesBreakdown,
	}

	s.LogInfo(ctx, "Profit and loss report generated",
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.String("net_profit", report.NetProfit.String()))
	return report, nil
}

// BalanceSheet generates a balance sheet as of a specific date. Equity is
// derived as assets minus liabilities rather than summed from EQUITY entries,
// so the sheet always balances.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	upTo := domain.AsOf(asOf)

	totalAssets, err := s.reportingRepo.SumAmount(ctx, domain.Asset, &upTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to total assets for balance sheet")
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}
	totalLiabilities, err := s.reportingRepo.SumAmount(ctx, domain.Liability, &upTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to total liabilities for balance sheet")
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	report := &domain.BalanceSheetReport{
		AsOfDate:             asOf,
		TotalAssets:          totalAssets,
		TotalLiabilities:     totalLiabilities,
		TotalEquity:          totalAssets.Sub(totalLiabilities),
		AssetsBreakdown:      []domain.BreakdownEntry{},
		LiabilitiesBreakdown: []domain.BreakdownEntry{},
		EquityBreakdown:      []domain.BreakdownEntry{},
	}

	s.LogInfo(ctx, "Balance sheet report generated",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.String("total_equity", report.TotalEquity.String()))
	return report, nil
}

// ProfitAndLossIFRS generates a hierarchical profit and loss statement.
// Totals come from the flat category balances; the trees are presentation.
func (s *reportingService) ProfitAndLossIFRS(ctx context.Context, from, to time.Time) (*domain.ProfitLossIFRSReport, error) {
	period := domain.Between(from, to)

	revenueBalances, err := s.reportingRepo.CategoryBalances(ctx, domain.Income, &period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load revenue category balances")
		return nil, fmt.Errorf("failed to retrieve IFRS profit and loss data: %w", err)
	}
	expenseBalances, err := s.reportingRepo.CategoryBalances(ctx, domain.Expense, &period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expense category balances")
		return nil, fmt.Errorf("failed to retrieve IFRS profit and loss data: %w", err)
	}

	totalRevenue := accounting.SumBalances(revenueBalances)
	totalExpenses := accounting.SumBalances(expenseBalances)

	report := &domain.ProfitLossIFRSReport{
		PeriodStart:   from,
		PeriodEnd:     to,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetProfit:     totalRevenue.Sub(totalExpenses),
		Revenue:       accounting.BuildCategoryTree(revenueBalances),
		Expenses:      accounting.BuildCategoryTree(expenseBalances),
	}

	s.LogInfo(ctx, "IFRS profit and loss report generated",
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.Int("revenue_categories", len(revenueBalances)),
		slog.Int("expense_categories", len(expenseBalances)))
	return report, nil
}

// BalanceSheetIFRS generates a hierarchical balance sheet.
func (s *reportingService) BalanceSheetIFRS(ctx context.Context, asOf time.Time) (*domain.BalanceSheetIFRSReport, error) {
	upTo := domain.AsOf(asOf)

	assetBalances, err := s.reportingRepo.CategoryBalances(ctx, domain.Asset, &upTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to load asset category balances")
		return nil, fmt.Errorf("failed to retrieve IFRS balance sheet data: %w", err)
	}
	liabilityBalances, err := s.reportingRepo.CategoryBalances(ctx, domain.Liability, &upTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to load liability category balances")
		return nil, fmt.Errorf("failed to retrieve IFRS balance sheet data: %w", err)
	}
	equityBalances, err := s.reportingRepo.CategoryBalances(ctx, domain.Equity, &upTo)
	if err != nil {
		s.LogError(ctx, err, "Failed to load equity category balances")
		return nil, fmt.Errorf("failed to retrieve IFRS balance sheet data: %w", err)
	}

	totalAssets := accounting.SumBalances(assetBalances)
	totalLiabilities := accounting.SumBalances(liabilityBalances)

	report := &domain.BalanceSheetIFRSReport{
		AsOfDate:         asOf,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalAssets.Sub(totalLiabilities),
		Assets:           accounting.BuildCategoryTree(assetBalances),
		Liabilities:      accounting.BuildCategoryTree(liabilityBalances),
		Equity:           accounting.BuildCategoryTree(equityBalances),
	}

	s.LogInfo(ctx, "IFRS balance sheet report generated",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("asset_categories", len(assetBalances)),
		slog.Int("liability_categories", len(liabilityBalances)),
		slog.Int("equity_categories", len(equityBalances)))
	return report, nil
}

// Dashboard summarizes the ledger over a named window against the preceding
// window of equal length. Windows anchor on the most recent ledger entry, so
// a backfilled dataset still produces a meaningful comparison.
func (s *reportingService) Dashboard(ctx context.Context, period domain.DashboardPeriod) (*domain.DashboardData, error) {
	if !period.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid dashboard period: %s", period))
	}

	latest, err := s.reportingRepo.LatestEntryDate(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to find latest ledger entry date")
		return nil, fmt.Errorf("failed to retrieve dashboard data: %w", err)
	}
	if latest == nil {
		// Empty ledger: everything zeroes out.
		return &domain.DashboardData{
			TotalIncome:      decimal.Zero,
			TotalExpenses:    decimal.Zero,
			NetProfit:        decimal.Zero,
			PreviousIncome:   decimal.Zero,
			PreviousExpenses: decimal.Zero,
			PreviousProfit:   decimal.Zero,
			MonthlyData:      []domain.MonthlyBreakdown{},
		}, nil
	}

	current, previous := accounting.DashboardWindows(period, *latest)

	var (
		income, expenses         decimal.Decimal
		prevIncome, prevExpenses decimal.Decimal
		incomeSeries             []domain.MonthlyAmount
		expenseSeries            []domain.MonthlyAmount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		income, err = s.reportingRepo.SumAmount(gctx, domain.Income, &current)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.reportingRepo.SumAmount(gctx, domain.Expense, &current)
		return err
	})
	g.Go(func() (err error) {
		prevIncome, err = s.reportingRepo.SumAmount(gctx, domain.Income, &previous)
		return err
	})
	g.Go(func() (err error) {
		prevExpenses, err = s.reportingRepo.SumAmount(gctx, domain.Expense, &previous)
		return err
	})
	g.Go(func() (err error) {
		incomeSeries, err = s.reportingRepo.MonthlySeries(gctx, domain.Income, &current)
		return err
	})
	g.Go(func() (err error) {
		expenseSeries, err = s.reportingRepo.MonthlySeries(gctx, domain.Expense, &current)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to aggregate dashboard data", slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to retrieve dashboard data: %w", err)
	}

	data := &domain.DashboardData{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetProfit:        income.Sub(expenses),
		PreviousIncome:   prevIncome,
		PreviousExpenses: prevExpenses,
		PreviousProfit:   prevIncome.Sub(prevExpenses),
		MonthlyData:      accounting.MergeMonthlyBreakdown(incomeSeries, expenseSeries),
	}

	s.LogInfo(ctx, "Dashboard data generated",
		slog.String("period", string(period)),
		slog.String("net_profit", data.NetProfit.String()),
		slog.Int("months", len(data.MonthlyData)))
	return data, nil
}
