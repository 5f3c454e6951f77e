package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ForecastService defines the predictive operations over the ledger.
type ForecastService interface {
	// PredictRevenue forecasts monthly revenue for the requested horizon.
	// An empty ledger yields an empty slice, not an error.
	PredictRevenue(ctx context.Context, monthsAhead int) ([]domain.RevenuePrediction, error)

	// AnalyzeInventorySales builds the per-item demand analysis and its
	// aggregate views.
	AnalyzeInventorySales(ctx context.Context) (*domain.InventorySalesAnalysis, error)
}
