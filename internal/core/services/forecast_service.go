package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
	"github.com/finbooks/finbooks_backend/internal/utils/regression"
)

const (
	maxForecastMonths = 12
	topListSize       = 5
	analysisWorkers   = 8

	// Minimum history before the demand model is worth fitting.
	minDemandMonths = 3
)

// forecastService implements the ForecastService interface
type forecastService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	inventoryRepo portsrepo.InventoryReader
}

// NewForecastService creates a new forecast service
func NewForecastService(reportingRepo portsrepo.ReportingRepository, inventoryRepo portsrepo.InventoryReader) portssvc.ForecastService {
	return &forecastService{
		reportingRepo: reportingRepo,
		inventoryRepo: inventoryRepo,
	}
}

var _ portssvc.ForecastService = (*forecastService)(nil)

// PredictRevenue forecasts monthly revenue by fitting a least-squares line
// through the historical month-over-month income series.
func (s *forecastService) PredictRevenue(ctx context.Context, monthsAhead int) ([]domain.RevenuePrediction, error) {
	if monthsAhead < 1 || monthsAhead > maxForecastMonths {
		return nil, apperrors.NewValidationError(fmt.Sprintf("months ahead must be between 1 and %d", maxForecastMonths))
	}

	history, err := s.reportingRepo.MonthlySeries(ctx, domain.Income, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load revenue history")
		return nil, fmt.Errorf("failed to load revenue history: %w", err)
	}
	if len(history) == 0 {
		s.LogInfo(ctx, "No revenue history available, returning empty forecast")
		return []domain.RevenuePrediction{}, nil
	}

	n := len(history)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, m := range history {
		xs[i] = float64(i)
		ys[i], _ = m.Amount.Float64()
	}

	var model regression.LinearModel
	if n == 1 {
		// A single month gives no trend; forecast it flat.
		model = regression.LinearModel{Intercept: ys[0], N: 1}
	} else {
		model = regression.FitLinear(xs, ys)
	}

	lastMonth := accounting.MonthStart(history[n-1].Month)
	predictions := make([]domain.RevenuePrediction, 0, monthsAhead)
	for i := 0; i < monthsAhead; i++ {
		predicted := model.Predict(float64(n + i))
		if predicted < 0 {
			predicted = 0
		}

		// Confidence decays with prediction distance, rewards longer history
		// and a better fit.
		confidence := 0.3*(1/float64(i+1)) +
			0.3*math.Min(1, float64(n)/12) +
			0.4*math.Max(0, model.RSquared)
		confidence = math.Round(confidence*100) / 100

		predictions = append(predictions, domain.RevenuePrediction{
			PredictionDate:  accounting.AddMonths(lastMonth, i+1),
			PredictedAmount: decimal.NewFromFloat(predicted).Round(2),
			ConfidenceLevel: confidence,
			Factors: []string{
				fmt.Sprintf("Model accuracy (R²): %.2f", model.RSquared),
				fmt.Sprintf("Data points: %d months", n),
				fmt.Sprintf("Prediction distance: %d months", i+1),
				fmt.Sprintf("Standard error: %.2f", model.StdError),
			},
		})
	}

	s.LogInfo(ctx, "Revenue forecast generated",
		slog.Int("months_ahead", monthsAhead),
		slog.Int("history_months", n),
		slog.Float64("r_squared", model.RSquared))
	return predictions, nil
}

// AnalyzeInventorySales builds the per-item demand analysis and its
// aggregate views. Items are analyzed concurrently with a bounded worker
// count since each needs several aggregate queries.
func (s *forecastService) AnalyzeInventorySales(ctx context.Context) (*domain.InventorySalesAnalysis, error) {
	items, err := s.listAllItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory for sales analysis")
		return nil, fmt.Errorf("failed to analyze inventory sales: %w", err)
	}

	// Each worker writes its own slot, so no further synchronization is needed.
	analyses := make([]domain.ItemSalesAnalysis, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analysisWorkers)
	for i := range items {
		g.Go(func() error {
			analysis, err := s.analyzeItem(gctx, items[i])
			if err != nil {
				return err
			}
			analyses[i] = *analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to analyze inventory items")
		return nil, fmt.Errorf("failed to analyze inventory sales: %w", err)
	}

	topRegions, err := s.reportingRepo.TopRegions(ctx, topListSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to load top regions")
		return nil, fmt.Errorf("failed to analyze inventory sales: %w", err)
	}

	result := &domain.InventorySalesAnalysis{
		TopSellingItems:  topBy(analyses, topListSize, func(a, b domain.ItemSalesAnalysis) bool { return a.RevenueImpact > b.RevenueImpact }),
		ItemsToRestock:   filterRestock(analyses),
		GrowthItems:      topBy(analyses, topListSize, func(a, b domain.ItemSalesAnalysis) bool { return a.GrowthRate > b.GrowthRate }),
		TopRegions:       topRegions,
		AllItemsAnalysis: analyses,
	}

	s.LogInfo(ctx, "Inventory sales analysis generated",
		slog.Int("items", len(analyses)),
		slog.Int("restock_candidates", len(result.ItemsToRestock)))
	return result, nil
}

func (s *forecastService) listAllItems(ctx context.Context) ([]domain.InventoryItem, error) {
	const pageSize = 500
	var all []domain.InventoryItem
	for offset := 0; ; offset += pageSize {
		page, err := s.inventoryRepo.ListItems(ctx, "", pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

func (s *forecastService) analyzeItem(ctx context.Context, item domain.InventoryItem) (*domain.ItemSalesAnalysis, error) {
	monthly, err := s.reportingRepo.ItemMonthlySold(ctx, item.ItemID)
	if err != nil {
		return nil, err
	}
	totals, err := s.reportingRepo.ItemTotals(ctx, item.ItemID)
	if err != nil {
		return nil, err
	}
	regional, err := s.reportingRepo.ItemRegionalSales(ctx, item.ItemID, topListSize)
	if err != nil {
		return nil, err
	}

	predicted, growth, confidence := demandForecast(monthly)

	stock := item.Quantity
	turnover := 0.0
	if stock > 0 {
		turnover = totals.TotalSold / float64(stock)
	}
	revenue, _ := totals.TotalRevenue.Float64()
	revenueImpact := revenue / float64(1+stock)

	return &domain.ItemSalesAnalysis{
		ItemID:                item.ItemID,
		Name:                  item.Name,
		CurrentStock:          stock,
		TotalSold:             totals.TotalSold,
		TotalRevenue:          totals.TotalRevenue,
		PredictedMonthlySales: predicted,
		GrowthRate:            growth,
		TurnoverRate:          turnover,
		PredictionConfidence:  confidence,
		RevenueImpact:         revenueImpact,
		RestockRecommendation: restockTier(stock, predicted),
		RegionalSales:         regional,
	}, nil
}

// demandForecast fits a seeded regression forest over the item's monthly
// sold quantities. Each sample carries the sequence index plus calendar
// month and ISO week to let the trees pick up seasonal structure.
func demandForecast(monthly []domain.MonthlyQuantity) (predicted, growth, confidence float64) {
	n := len(monthly)
	if n < minDemandMonths {
		return 0, 0, 0
	}

	samples := make([][]float64, n)
	targets := make([]float64, n)
	for i, m := range monthly {
		_, week := m.Month.ISOWeek()
		samples[i] = []float64{float64(i), float64(m.Month.Month()), float64(week)}
		targets[i] = m.Quantity
	}

	forest := regression.FitForest(samples, targets)
	next := accounting.AddMonths(accounting.MonthStart(monthly[n-1].Month), 1)
	_, nextWeek := next.ISOWeek()
	predicted = forest.Predict([]float64{float64(n), float64(next.Month()), float64(nextWeek)})
	if predicted < 0 {
		predicted = 0
	}

	last := targets[n-1]
	if last != 0 {
		growth = (predicted - last) / last
	}

	confidence = 0.7 + float64(n)/20

	return predicted, growth, confidence
}

// restockTier grades urgency by how many predicted months the current stock
// covers.
func restockTier(stock int64, predicted float64) string {
	switch {
	case float64(stock) < 2*predicted:
		return domain.RestockHigh
	case float64(stock) < 4*predicted:
		return domain.RestockMedium
	default:
		return domain.RestockLow
	}
}

func topBy(analyses []domain.ItemSalesAnalysis, limit int, less func(a, b domain.ItemSalesAnalysis) bool) []domain.ItemSalesAnalysis {
	sorted := make([]domain.ItemSalesAnalysis, len(analyses))
	copy(sorted, analyses)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func filterRestock(analyses []domain.ItemSalesAnalysis) []domain.ItemSalesAnalysis {
	restock := make([]domain.ItemSalesAnalysis, 0)
	for _, a := range analyses {
		if a.RestockRecommendation == domain.RestockHigh {
			restock = append(restock, a)
		}
	}
	return restock
}
