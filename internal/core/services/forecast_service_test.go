package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockInventoryRepo *MockInventoryRepository
	service           portssvc.ForecastService
}

func (suite *ForecastServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.service = services.NewForecastService(suite.mockReportingRepo, suite.mockInventoryRepo)
}

func monthlyAmount(year int, m time.Month, amount int64) domain.MonthlyAmount {
	return domain.MonthlyAmount{
		Month:  time.Date(year, m, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(amount),
	}
}

func (suite *ForecastServiceTestSuite) TestPredictRevenue_InvalidHorizon() {
	ctx := context.Background()

	_, err := suite.service.PredictRevenue(ctx, 0)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// The horizon caps at a year.
	_, err = suite.service.PredictRevenue(ctx, 13)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockReportingRepo.AssertNotCalled(suite.T(), "MonthlySeries")
}

func (suite *ForecastServiceTestSuite) TestPredictRevenue_EmptyHistory() {
	ctx := context.Background()

	suite.mockReportingRepo.On("MonthlySeries", ctx, domain.Income, (*domain.DateRange)(nil)).
		Return([]domain.MonthlyAmount{}, nil).Once()

	predictions, err := suite.service.PredictRevenue(ctx, 3)

	suite.Require().NoError(err)
	suite.NotNil(predictions)
	suite.Empty(predictions)
}

func (suite *ForecastServiceTestSuite) TestPredictRevenue_LinearTrend() {
	ctx := context.Background()
	history := []domain.MonthlyAmount{
		monthlyAmount(2025, time.January, 1000),
		monthlyAmount(2025, time.February, 1500),
		monthlyAmount(2025, time.March, 2000),
	}

	suite.mockReportingRepo.On("MonthlySeries", ctx, domain.Income, (*domain.DateRange)(nil)).
		Return(history, nil).Once()

	predictions, err := suite.service.PredictRevenue(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(predictions, 2)

	// Perfect 500/month trend extrapolates to 2500 in April, 3000 in May.
	april := predictions[0]
	suite.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), april.PredictionDate)
	suite.True(april.PredictedAmount.Equal(decimal.NewFromInt(2500)), "april %s", april.PredictedAmount)
	suite.True(predictions[1].PredictedAmount.Equal(decimal.NewFromInt(3000)), "may %s", predictions[1].PredictedAmount)

	// R²=1, 3 months of data, distance 1: 0.3*1 + 0.3*0.25 + 0.4*1 = 0.78.
	suite.InDelta(0.78, april.ConfidenceLevel, 0.001)
	suite.Greater(april.ConfidenceLevel, predictions[1].ConfidenceLevel)
	suite.Len(april.Factors, 4)
}

func (suite *ForecastServiceTestSuite) TestPredictRevenue_ClampsNegative() {
	ctx := context.Background()
	history := []domain.MonthlyAmount{
		monthlyAmount(2025, time.January, 900),
		monthlyAmount(2025, time.February, 400),
		monthlyAmount(2025, time.March, 50),
	}

	suite.mockReportingRepo.On("MonthlySeries", ctx, domain.Income, (*domain.DateRange)(nil)).
		Return(history, nil).Once()

	predictions, err := suite.service.PredictRevenue(ctx, 6)

	suite.Require().NoError(err)
	for _, p := range predictions {
		suite.False(p.PredictedAmount.IsNegative(), "prediction for %s is negative", p.PredictionDate)
	}
}

func (suite *ForecastServiceTestSuite) TestAnalyzeInventorySales_SparseHistoryZeroes() {
	ctx := context.Background()
	item := domain.InventoryItem{ItemID: "item-1", Name: "Lamp", Quantity: 5}

	suite.mockInventoryRepo.On("ListItems", mock.Anything, "", 500, 0).
		Return([]domain.InventoryItem{item}, nil).Once()
	suite.mockReportingRepo.On("ItemMonthlySold", mock.Anything, "item-1").
		Return([]domain.MonthlyQuantity{
			{Month: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), Quantity: 2},
		}, nil).Once()
	suite.mockReportingRepo.On("ItemTotals", mock.Anything, "item-1").
		Return(&domain.ItemTotals{TotalSold: 2, TotalRevenue: decimal.NewFromInt(40)}, nil).Once()
	suite.mockReportingRepo.On("ItemRegionalSales", mock.Anything, "item-1", 5).
		Return([]domain.RegionalSales{}, nil).Once()
	suite.mockReportingRepo.On("TopRegions", mock.Anything, 5).
		Return([]domain.RegionalSales{}, nil).Once()

	analysis, err := suite.service.AnalyzeInventorySales(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(analysis.AllItemsAnalysis, 1)

	got := analysis.AllItemsAnalysis[0]
	suite.Zero(got.PredictedMonthlySales)
	suite.Zero(got.GrowthRate)
	suite.Zero(got.PredictionConfidence)
	suite.Equal(domain.RestockLow, got.RestockRecommendation)
	// 2 sold over stock of 5.
	suite.InDelta(0.4, got.TurnoverRate, 0.001)
	// 40 revenue over (1 + 5) stock.
	suite.InDelta(40.0/6.0, got.RevenueImpact, 0.001)
	suite.Empty(analysis.ItemsToRestock)
}

func (suite *ForecastServiceTestSuite) TestAnalyzeInventorySales_LowStockFlagsRestock() {
	ctx := context.Background()
	item := domain.InventoryItem{ItemID: "item-2", Name: "Chair", Quantity: 1}

	monthly := make([]domain.MonthlyQuantity, 6)
	quantities := []float64{10, 12, 15, 17, 20, 23}
	for i := range monthly {
		monthly[i] = domain.MonthlyQuantity{
			Month:    time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Quantity: quantities[i],
		}
	}

	suite.mockInventoryRepo.On("ListItems", mock.Anything, "", 500, 0).
		Return([]domain.InventoryItem{item}, nil).Once()
	suite.mockReportingRepo.On("ItemMonthlySold", mock.Anything, "item-2").
		Return(monthly, nil).Once()
	suite.mockReportingRepo.On("ItemTotals", mock.Anything, "item-2").
		Return(&domain.ItemTotals{TotalSold: 97, TotalRevenue: decimal.NewFromInt(4850)}, nil).Once()
	suite.mockReportingRepo.On("ItemRegionalSales", mock.Anything, "item-2", 5).
		Return([]domain.RegionalSales{{Region: "North", QuantitySold: 60, Revenue: decimal.NewFromInt(3000)}}, nil).Once()
	suite.mockReportingRepo.On("TopRegions", mock.Anything, 5).
		Return([]domain.RegionalSales{{Region: "North", QuantitySold: 60, Revenue: decimal.NewFromInt(3000)}}, nil).Once()

	analysis, err := suite.service.AnalyzeInventorySales(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(analysis.AllItemsAnalysis, 1)

	got := analysis.AllItemsAnalysis[0]
	// Demand sits well above one unit of stock, so urgency is High.
	suite.Greater(got.PredictedMonthlySales, 2.0)
	suite.Equal(domain.RestockHigh, got.RestockRecommendation)
	// Six months of history: 0.7 + 6/20.
	suite.InDelta(1.0, got.PredictionConfidence, 0.001)
	suite.Require().Len(analysis.ItemsToRestock, 1)
	suite.Equal("item-2", analysis.ItemsToRestock[0].ItemID)
	suite.Require().Len(analysis.TopRegions, 1)
	suite.Equal("North", analysis.TopRegions[0].Region)
}

func (suite *ForecastServiceTestSuite) TestAnalyzeInventorySales_RestockTierBoundaries() {
	ctx := context.Background()

	// A flat history of 3 sold per month predicts exactly 3, so the tier
	// cutoffs land at stock 6 and 12.
	items := []struct {
		item domain.InventoryItem
		want string
	}{
		{domain.InventoryItem{ItemID: "item-high", Name: "Bolt", Quantity: 5}, domain.RestockHigh},
		{domain.InventoryItem{ItemID: "item-medium", Name: "Nut", Quantity: 10}, domain.RestockMedium},
		{domain.InventoryItem{ItemID: "item-low", Name: "Washer", Quantity: 20}, domain.RestockLow},
	}

	monthly := make([]domain.MonthlyQuantity, 4)
	for i := range monthly {
		monthly[i] = domain.MonthlyQuantity{
			Month:    time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Quantity: 3,
		}
	}

	listed := make([]domain.InventoryItem, 0, len(items))
	for _, tc := range items {
		listed = append(listed, tc.item)
		suite.mockReportingRepo.On("ItemMonthlySold", mock.Anything, tc.item.ItemID).
			Return(monthly, nil).Once()
		suite.mockReportingRepo.On("ItemTotals", mock.Anything, tc.item.ItemID).
			Return(&domain.ItemTotals{TotalSold: 12, TotalRevenue: decimal.NewFromInt(240)}, nil).Once()
		suite.mockReportingRepo.On("ItemRegionalSales", mock.Anything, tc.item.ItemID, 5).
			Return([]domain.RegionalSales{}, nil).Once()
	}
	suite.mockInventoryRepo.On("ListItems", mock.Anything, "", 500, 0).
		Return(listed, nil).Once()
	suite.mockReportingRepo.On("TopRegions", mock.Anything, 5).
		Return([]domain.RegionalSales{}, nil).Once()

	analysis, err := suite.service.AnalyzeInventorySales(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(analysis.AllItemsAnalysis, len(items))
	for i, tc := range items {
		got := analysis.AllItemsAnalysis[i]
		suite.InDelta(3.0, got.PredictedMonthlySales, 0.001)
		suite.Equal(tc.want, got.RestockRecommendation, "stock %d", tc.item.Quantity)
	}
	suite.Require().Len(analysis.ItemsToRestock, 1)
	suite.Equal("item-high", analysis.ItemsToRestock[0].ItemID)
}

func TestForecastServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
