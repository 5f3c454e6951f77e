package services

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// ProfitAndLoss generates a profit and loss statement for a period.
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitLossReport, error)

	// BalanceSheet generates a balance sheet as of a specific date.
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// ProfitAndLossIFRS generates a hierarchical profit and loss statement.
	ProfitAndLossIFRS(ctx context.Context, from, to time.Time) (*domain.ProfitLossIFRSReport, error)

	// BalanceSheetIFRS generates a hierarchical balance sheet.
	BalanceSheetIFRS(ctx context.Context, asOf time.Time) (*domain.BalanceSheetIFRSReport, error)

	// Dashboard summarizes the ledger over a named window against the
	// preceding window of equal length.
	Dashboard(ctx context.Context, period domain.DashboardPeriod) (*domain.DashboardData, error)
}
