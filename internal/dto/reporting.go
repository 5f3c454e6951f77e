package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// PeriodParams defines the date range query parameters for period statements.
type PeriodParams struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// AsOfParams defines the reporting date parameter for point-in-time statements.
type AsOfParams struct {
	AsOf *time.Time `form:"asOf" time_format:"2006-01-02"`
}

// RevenuePredictionParams defines the forecast horizon parameter.
type RevenuePredictionParams struct {
	Months int `form:"months,default=6"`
}

// DashboardParams defines the dashboard window parameter.
type DashboardParams struct {
	Period domain.DashboardPeriod `form:"period,default=30d" binding:"omitempty,oneof=30d 90d year"`
}

// BreakdownEntryResponse is one line of a statement breakdown.
type BreakdownEntryResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

func toBreakdownResponse(entries []domain.BreakdownEntry) []BreakdownEntryResponse {
	res := make([]BreakdownEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = BreakdownEntryResponse{Category: e.Category, Amount: e.Amount}
	}
	return res
}

// ProfitLossResponse defines the data returned for a profit and loss statement.
type ProfitLossResponse struct {
	PeriodStart       time.Time                `json:"periodStart"`
	PeriodEnd         time.Time                `json:"periodEnd"`
	TotalRevenue      decimal.Decimal          `json:"totalRevenue"`
	TotalExpenses     decimal.Decimal          `json:"totalExpenses"`
	NetProfit         decimal.Decimal          `json:"netProfit"`
	RevenueBreakdown  []BreakdownEntryResponse `json:"revenueBreakdown"`
	ExpensesBreakdown []BreakdownEntryResponse `json:"expensesBreakdown"`
}

// ToProfitLossResponse converts a domain.ProfitLossReport to its DTO.
func ToProfitLossResponse(r *domain.ProfitLossReport) ProfitLossResponse {
	return ProfitLossResponse{
		PeriodStart:       r.PeriodStart,
		PeriodEnd:         r.PeriodEnd,
		TotalRevenue:      r.TotalRevenue,
		TotalExpenses:     r.TotalExpenses,
		NetProfit:         r.NetProfit,
		RevenueBreakdown:  toBreakdownResponse(r.RevenueBreakdown),
		ExpensesBreakdown: toBreakdownResponse(r.ExpensesBreakdown),
	}
}

// BalanceSheetResponse defines the data returned for a balance sheet.
type BalanceSheetResponse struct {
	AsOfDate             time.Time                `json:"asOfDate"`
	TotalAssets          decimal.Decimal          `json:"totalAssets"`
	TotalLiabilities     decimal.Decimal          `json:"totalLiabilities"`
	TotalEquity          decimal.Decimal          `json:"totalEquity"`
	AssetsBreakdown      []BreakdownEntryResponse `json:"assetsBreakdown"`
	LiabilitiesBreakdown []BreakdownEntryResponse `json:"liabilitiesBreakdown"`
	EquityBreakdown      []BreakdownEntryResponse `json:"equityBreakdown"`
}

// ToBalanceSheetResponse converts a domain.BalanceSheetReport to its DTO.
func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOfDate:             r.AsOfDate,
		TotalAssets:          r.TotalAssets,
		TotalLiabilities:     r.TotalLiabilities,
		TotalEquity:          r.TotalEquity,
		AssetsBreakdown:      toBreakdownResponse(r.AssetsBreakdown),
		LiabilitiesBreakdown: toBreakdownResponse(r.LiabilitiesBreakdown),
		EquityBreakdown:      toBreakdownResponse(r.EquityBreakdown),
	}
}

// CategoryNodeResponse is one node of a hierarchical statement section.
type CategoryNodeResponse struct {
	CategoryID string                 `json:"categoryID"`
	Code       string                 `json:"code"`
	Name       string                 `json:"name"`
	Amount     decimal.Decimal        `json:"amount"`
	Children   []CategoryNodeResponse `json:"children"`
}

func toCategoryNodeResponse(nodes []*domain.CategoryNode) []CategoryNodeResponse {
	res := make([]CategoryNodeResponse, len(nodes))
	for i, node := range nodes {
		res[i] = CategoryNodeResponse{
			CategoryID: node.CategoryID,
			Code:       node.Code,
			Name:       node.Name,
			Amount:     node.Amount,
			Children:   toCategoryNodeResponse(node.Children),
		}
	}
	return res
}

// ToCategoryTreeResponse converts a slice of category tree roots to DTOs.
func ToCategoryTreeResponse(nodes []*domain.CategoryNode) []CategoryNodeResponse {
	return toCategoryNodeResponse(nodes)
}

// ProfitLossIFRSResponse defines the data returned for a hierarchical
// profit and loss statement.
type ProfitLossIFRSResponse struct {
	PeriodStart   time.Time              `json:"periodStart"`
	PeriodEnd     time.Time              `json:"periodEnd"`
	TotalRevenue  decimal.Decimal        `json:"totalRevenue"`
	TotalExpenses decimal.Decimal        `json:"totalExpenses"`
	NetProfit     decimal.Decimal        `json:"netProfit"`
	Revenue       []CategoryNodeResponse `json:"revenue"`
	Expenses      []CategoryNodeResponse `json:"expenses"`
}

// ToProfitLossIFRSResponse converts a domain.ProfitLossIFRSReport to its DTO.
func ToProfitLossIFRSResponse(r *domain.ProfitLossIFRSReport) ProfitLossIFRSResponse {
	return ProfitLossIFRSResponse{
		PeriodStart:   r.PeriodStart,
		PeriodEnd:     r.PeriodEnd,
		TotalRevenue:  r.TotalRevenue,
		TotalExpenses: r.TotalExpenses,
		NetProfit:     r.NetProfit,
		Revenue:       toCategoryNodeResponse(r.Revenue),
		Expenses:      toCategoryNodeResponse(r.Expenses),
	}
}

// BalanceSheetIFRSResponse defines the data returned for a hierarchical
// balance sheet.
type BalanceSheetIFRSResponse struct {
	AsOfDate         time.Time              `json:"asOfDate"`
	TotalAssets      decimal.Decimal        `json:"totalAssets"`
	TotalLiabilities decimal.Decimal        `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal        `json:"totalEquity"`
	Assets           []CategoryNodeResponse `json:"assets"`
	Liabilities      []CategoryNodeResponse `json:"liabilities"`
	Equity           []CategoryNodeResponse `json:"equity"`
}

// ToBalanceSheetIFRSResponse converts a domain.BalanceSheetIFRSReport to its DTO.
func ToBalanceSheetIFRSResponse(r *domain.BalanceSheetIFRSReport) BalanceSheetIFRSResponse {
	return BalanceSheetIFRSResponse{
		AsOfDate:         r.AsOfDate,
		TotalAssets:      r.TotalAssets,
		TotalLiabilities: r.TotalLiabilities,
		TotalEquity:      r.TotalEquity,
		Assets:           toCategoryNodeResponse(r.Assets),
		Liabilities:      toCategoryNodeResponse(r.Liabilities),
		Equity:           toCategoryNodeResponse(r.Equity),
	}
}

// MonthlyBreakdownResponse is one month of the dashboard series.
type MonthlyBreakdownResponse struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// DashboardResponse defines the data returned for the dashboard summary.
type DashboardResponse struct {
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	TotalExpenses    decimal.Decimal            `json:"totalExpenses"`
	NetProfit        decimal.Decimal            `json:"netProfit"`
	PreviousIncome   decimal.Decimal            `json:"previousIncome"`
	PreviousExpenses decimal.Decimal            `json:"previousExpenses"`
	PreviousProfit   decimal.Decimal            `json:"previousProfit"`
	MonthlyData      []MonthlyBreakdownResponse `json:"monthlyData"`
}

// ToDashboardResponse converts a domain.DashboardData to its DTO.
func ToDashboardResponse(d *domain.DashboardData) DashboardResponse {
	monthly := make([]MonthlyBreakdownResponse, len(d.MonthlyData))
	for i, m := range d.MonthlyData {
		monthly[i] = MonthlyBreakdownResponse{Month: m.Month, Income: m.Income, Expenses: m.Expenses}
	}
	return DashboardResponse{
		TotalIncome:      d.TotalIncome,
		TotalExpenses:    d.TotalExpenses,
		NetProfit:        d.NetProfit,
		PreviousIncome:   d.PreviousIncome,
		PreviousExpenses: d.PreviousExpenses,
		PreviousProfit:   d.PreviousProfit,
		MonthlyData:      monthly,
	}
}

// RevenuePredictionResponse is one forecasted month of revenue.
type RevenuePredictionResponse struct {
	PredictionDate  time.Time       `json:"predictionDate"`
	PredictedAmount decimal.Decimal `json:"predictedAmount"`
	ConfidenceLevel float64         `json:"confidenceLevel"`
	Factors         []string        `json:"factors"`
}

// ToRevenuePredictionResponse converts domain predictions to DTOs.
func ToRevenuePredictionResponse(predictions []domain.RevenuePrediction) []RevenuePredictionResponse {
	res := make([]RevenuePredictionResponse, len(predictions))
	for i, p := range predictions {
		res[i] = RevenuePredictionResponse{
			PredictionDate:  p.PredictionDate,
			PredictedAmount: p.PredictedAmount,
			ConfidenceLevel: p.ConfidenceLevel,
			Factors:         p.Factors,
		}
	}
	return res
}

// RegionalSalesResponse is one region's aggregated sales.
type RegionalSalesResponse struct {
	Region           string          `json:"region"`
	QuantitySold     float64         `json:"quantitySold"`
	Revenue          decimal.Decimal `json:"revenue"`
	TransactionCount int64           `json:"transactionCount,omitempty"`
}

func toRegionalSalesResponse(sales []domain.RegionalSales) []RegionalSalesResponse {
	res := make([]RegionalSalesResponse, len(sales))
	for i, s := range sales {
		res[i] = RegionalSalesResponse{
			Region:           s.Region,
			QuantitySold:     s.QuantitySold,
			Revenue:          s.Revenue,
			TransactionCount: s.TransactionCount,
		}
	}
	return res
}

// ItemSalesAnalysisResponse is the per-item demand analysis.
type ItemSalesAnalysisResponse struct {
	ItemID                string                  `json:"itemID"`
	Name                  string                  `json:"name"`
	CurrentStock          int64                   `json:"currentStock"`
	TotalSold             float64                 `json:"totalSold"`
	TotalRevenue          decimal.Decimal         `json:"totalRevenue"`
	PredictedMonthlySales float64                 `json:"predictedMonthlySales"`
	GrowthRate            float64                 `json:"growthRate"`
	TurnoverRate          float64                 `json:"turnoverRate"`
	PredictionConfidence  float64                 `json:"predictionConfidence"`
	RevenueImpact         float64                 `json:"revenueImpact"`
	RestockRecommendation string                  `json:"restockRecommendation"`
	RegionalSales         []RegionalSalesResponse `json:"regionalSales"`
}

func toItemSalesAnalysisResponse(analyses []domain.ItemSalesAnalysis) []ItemSalesAnalysisResponse {
	res := make([]ItemSalesAnalysisResponse, len(analyses))
	for i, a := range analyses {
		res[i] = ItemSalesAnalysisResponse{
			ItemID:                a.ItemID,
			Name:                  a.Name,
			CurrentStock:          a.CurrentStock,
			TotalSold:             a.TotalSold,
			TotalRevenue:          a.TotalRevenue,
			PredictedMonthlySales: a.PredictedMonthlySales,
			GrowthRate:            a.GrowthRate,
			TurnoverRate:          a.TurnoverRate,
			PredictionConfidence:  a.PredictionConfidence,
			RevenueImpact:         a.RevenueImpact,
			RestockRecommendation: a.RestockRecommendation,
			RegionalSales:         toRegionalSalesResponse(a.RegionalSales),
		}
	}
	return res
}

// InventorySalesAnalysisResponse defines the aggregate demand analysis.
type InventorySalesAnalysisResponse struct {
	TopSellingItems  []ItemSalesAnalysisResponse `json:"topSellingItems"`
	ItemsToRestock   []ItemSalesAnalysisResponse `json:"itemsToRestock"`
	GrowthItems      []ItemSalesAnalysisResponse `json:"growthItems"`
	TopRegions       []RegionalSalesResponse     `json:"topRegions"`
	AllItemsAnalysis []ItemSalesAnalysisResponse `json:"allItemsAnalysis"`
}

// ToInventorySalesAnalysisResponse converts a domain.InventorySalesAnalysis to its DTO.
func ToInventorySalesAnalysisResponse(a *domain.InventorySalesAnalysis) InventorySalesAnalysisResponse {
	return InventorySalesAnalysisResponse{
		TopSellingItems:  toItemSalesAnalysisResponse(a.TopSellingItems),
		ItemsToRestock:   toItemSalesAnalysisResponse(a.ItemsToRestock),
		GrowthItems:      toItemSalesAnalysisResponse(a.GrowthItems),
		TopRegions:       toRegionalSalesResponse(a.TopRegions),
		AllItemsAnalysis: toItemSalesAnalysisResponse(a.AllItemsAnalysis),
	}
}
