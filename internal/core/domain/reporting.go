package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAmount is one bucket of a month-grouped amount series.
// Month is the first instant of the calendar month.
type MonthlyAmount struct {
	Month  time.Time       `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// BreakdownEntry is one date-stamped line in a statement breakdown.
type BreakdownEntry struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProfitLossReport is the simple (non-IFRS) profit and loss statement.
type ProfitLossReport struct {
	PeriodStart       time.Time        `json:"periodStart"`
	PeriodEnd         time.Time        `json:"periodEnd"`
	TotalRevenue      decimal.Decimal  `json:"totalRevenue"`
	TotalExpenses     decimal.Decimal  `json:"totalExpenses"`
	NetProfit         decimal.Decimal  `json:"netProfit"`
	RevenueBreakdown  []BreakdownEntry `json:"revenueBreakdown"`
	ExpensesBreakdown []BreakdownEntry `json:"expensesBreakdown"`
}

// BalanceSheetReport is the simple (non-IFRS) balance sheet.
// TotalEquity is derived as TotalAssets - TotalLiabilities. The breakdown
// lists are always present but empty; the hierarchical variant is the one
// that itemizes positions.
type BalanceSheetReport struct {
	AsOfDate             time.Time        `json:"asOfDate"`
	TotalAssets          decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities     decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity          decimal.Decimal  `json:"totalEquity"`
	AssetsBreakdown      []BreakdownEntry `json:"assetsBreakdown"`
	LiabilitiesBreakdown []BreakdownEntry `json:"liabilitiesBreakdown"`
	EquityBreakdown      []BreakdownEntry `json:"equityBreakdown"`
}

// CategoryBalance is the aggregated amount for one account category within a
// period or as of a date. Categories without matching entries carry a zero
// amount rather than being omitted.
type CategoryBalance struct {
	CategoryID string          `json:"categoryID"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	ParentID   *string         `json:"parentID"`
	Amount     decimal.Decimal `json:"amount"`
}

// CategoryNode is a CategoryBalance shaped into the chart-of-accounts tree.
type CategoryNode struct {
	CategoryBalance
	Children []*CategoryNode `json:"children"`
}

// ProfitLossIFRSReport is the hierarchical profit and loss statement.
// Totals are computed over the flat category list, not re-summed from the
// trees, so a parent category with its own entries is not double counted.
type ProfitLossIFRSReport struct {
	PeriodStart   time.Time       `json:"periodStart"`
	PeriodEnd     time.Time       `json:"periodEnd"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	Revenue       []*CategoryNode `json:"revenue"`
	Expenses      []*CategoryNode `json:"expenses"`
}

// BalanceSheetIFRSReport is the hierarchical balance sheet.
type BalanceSheetIFRSReport struct {
	AsOfDate         time.Time       `json:"asOfDate"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	Assets           []*CategoryNode `json:"assets"`
	Liabilities      []*CategoryNode `json:"liabilities"`
	Equity           []*CategoryNode `json:"equity"`
}

// DashboardPeriod is a supported dashboard window token.
type DashboardPeriod string

const (
	Period30Days DashboardPeriod = "30d"
	Period90Days DashboardPeriod = "90d"
	PeriodYear   DashboardPeriod = "year"
)

// Valid reports whether p is a supported period token.
func (p DashboardPeriod) Valid() bool {
	switch p {
	case Period30Days, Period90Days, PeriodYear:
		return true
	}
	return false
}

// MonthlyBreakdown is one month of the combined income/expense dashboard
// series. A month with only one side present carries zero for the other.
type MonthlyBreakdown struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// DashboardData compares the current window against the immediately
// preceding window of equal length.
type DashboardData struct {
	TotalIncome      decimal.Decimal    `json:"totalIncome"`
	TotalExpenses    decimal.Decimal    `json:"totalExpenses"`
	NetProfit        decimal.Decimal    `json:"netProfit"`
	PreviousIncome   decimal.Decimal    `json:"previousIncome"`
	PreviousExpenses decimal.Decimal    `json:"previousExpenses"`
	PreviousProfit   decimal.Decimal    `json:"previousProfit"`
	MonthlyData      []MonthlyBreakdown `json:"monthlyData"`
}
