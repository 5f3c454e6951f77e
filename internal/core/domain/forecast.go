package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenuePrediction is one forecasted month of revenue.
// ConfidenceLevel is a heuristic score in [0,1], not a statistical interval.
type RevenuePrediction struct {
	PredictionDate  time.Time       `json:"predictionDate"`
	PredictedAmount decimal.Decimal `json:"predictedAmount"`
	ConfidenceLevel float64         `json:"confidenceLevel"`
	Factors         []string        `json:"factors"`
}

// Restock tiers, derived from predicted demand vs. current stock.
const (
	RestockHigh   = "High"
	RestockMedium = "Medium"
	RestockLow    = "Low"
)

// MonthlyQuantity is one bucket of a month-grouped sold-quantity series.
type MonthlyQuantity struct {
	Month    time.Time `json:"month"`
	Quantity float64   `json:"quantity"`
}

// ItemTotals aggregates lifetime sales figures for one inventory item.
type ItemTotals struct {
	TotalSold    float64         `json:"totalSold"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// RegionalSales aggregates sales of one region.
type RegionalSales struct {
	Region           string          `json:"region"`
	QuantitySold     float64         `json:"quantitySold"`
	Revenue          decimal.Decimal `json:"revenue"`
	TransactionCount int64           `json:"transactionCount,omitempty"`
}

// ItemSalesAnalysis is the derived (not persisted) per-item demand analysis.
type ItemSalesAnalysis struct {
	ItemID                string          `json:"itemID"`
	Name                  string          `json:"name"`
	CurrentStock          int64           `json:"currentStock"`
	TotalSold             float64         `json:"totalSold"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue"`
	PredictedMonthlySales float64         `json:"predictedMonthlySales"`
	GrowthRate            float64         `json:"growthRate"`
	TurnoverRate          float64         `json:"turnoverRate"`
	PredictionConfidence  float64         `json:"predictionConfidence"`
	RevenueImpact         float64         `json:"revenueImpact"`
	RestockRecommendation string          `json:"restockRecommendation"`
	RegionalSales         []RegionalSales `json:"regionalSales"`
}

// InventorySalesAnalysis is the aggregate demand analysis across all items.
type InventorySalesAnalysis struct {
	TopSellingItems  []ItemSalesAnalysis `json:"topSellingItems"`
	ItemsToRestock   []ItemSalesAnalysis `json:"itemsToRestock"`
	GrowthItems      []ItemSalesAnalysis `json:"growthItems"`
	TopRegions       []RegionalSales     `json:"topRegions"`
	AllItemsAnalysis []ItemSalesAnalysis `json:"allItemsAnalysis"`
}
