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

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_NetEqualsRevenueMinusExpenses() {
	ctx := context.Background()
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("MonthlySeries", ctx, domain.Income, mock.AnythingOfType("*domain.DateRange")).
		Return([]domain.MonthlyAmount{
			monthlyAmount(2025, time.January, 2000),
			monthlyAmount(2025, time.February, 3000),
		}, nil).Once()
	suite.mockRepo.On("MonthlySeries", ctx, domain.Expense, mock.AnythingOfType("*domain.DateRange")).
		Return([]domain.MonthlyAmount{
			monthlyAmount(2025, time.February, 3200),
		}, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(5000)), "revenue %s", report.TotalRevenue)
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(3200)), "expenses %s", report.TotalExpenses)
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(1800)))

	// Breakdown buckets carry the month start date as their label.
	suite.Require().Len(report.RevenueBreakdown, 2)
	suite.Equal("2025-01-01", report.RevenueBreakdown[0].Category)
	suite.Equal("2025-02-01", report.RevenueBreakdown[1].Category)
	suite.True(report.RevenueBreakdown[1].Amount.Equal(decimal.NewFromInt(3000)))
	suite.Require().Len(report.ExpensesBreakdown, 1)
	suite.Equal("2025-02-01", report.ExpensesBreakdown[0].Category)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_EquityIsDerived() {
	ctx := context.Background()
	asOf := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumAmount", ctx, domain.Asset, mock.AnythingOfType("*domain.DateRange")).
		Return(decimal.NewFromInt(10000), nil).Once()
	suite.mockRepo.On("SumAmount", ctx, domain.Liability, mock.AnythingOfType("*domain.DateRange")).
		Return(decimal.NewFromInt(4000), nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(6000)))

	// The simple sheet carries its breakdown lists as present but empty.
	suite.NotNil(report.AssetsBreakdown)
	suite.Empty(report.AssetsBreakdown)
	suite.NotNil(report.LiabilitiesBreakdown)
	suite.Empty(report.LiabilitiesBreakdown)
	suite.NotNil(report.EquityBreakdown)
	suite.Empty(report.EquityBreakdown)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLossIFRS_TotalsFromFlatList() {
	ctx := context.Background()
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	rootID := "rev-root"

	revenueBalances := []domain.CategoryBalance{
		{CategoryID: rootID, Code: "4000", Name: "Revenue", Amount: decimal.NewFromInt(500)},
		{CategoryID: "rev-sales", Code: "4100", Name: "Sales", ParentID: &rootID, Amount: decimal.NewFromInt(1500)},
	}

	suite.mockRepo.On("CategoryBalances", ctx, domain.Income, mock.AnythingOfType("*domain.DateRange")).
		Return(revenueBalances, nil).Once()
	suite.mockRepo.On("CategoryBalances", ctx, domain.Expense, mock.AnythingOfType("*domain.DateRange")).
		Return([]domain.CategoryBalance{}, nil).Once()

	report, err := suite.service.ProfitAndLossIFRS(ctx, from, to)

	suite.Require().NoError(err)
	// A parent with its own entries counts once, not once per tree level.
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(2000)), "revenue %s", report.TotalRevenue)
	suite.Require().Len(report.Revenue, 1)
	suite.Len(report.Revenue[0].Children, 1)
	suite.Empty(report.Expenses)
}

func (suite *ReportingServiceTestSuite) TestDashboard_InvalidPeriod() {
	ctx := context.Background()

	_, err := suite.service.Dashboard(ctx, domain.DashboardPeriod("quarter"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "LatestEntryDate")
}

func (suite *ReportingServiceTestSuite) TestDashboard_EmptyLedger() {
	ctx := context.Background()

	suite.mockRepo.On("LatestEntryDate", ctx).Return(nil, nil).Once()

	data, err := suite.service.Dashboard(ctx, domain.Period30Days)

	suite.Require().NoError(err)
	suite.True(data.TotalIncome.IsZero())
	suite.True(data.NetProfit.IsZero())
	suite.NotNil(data.MonthlyData)
	suite.Empty(data.MonthlyData)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumAmount")
}

func (suite *ReportingServiceTestSuite) TestDashboard_ComparesAgainstPreviousWindow() {
	ctx := context.Background()
	latest := time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("LatestEntryDate", mock.Anything).Return(&latest, nil).Once()
	suite.mockRepo.On("SumAmount", mock.Anything, domain.Income, mock.MatchedBy(func(r *domain.DateRange) bool {
		return r.Start.Month() == time.March
	})).Return(decimal.NewFromInt(900), nil).Once()
	suite.mockRepo.On("SumAmount", mock.Anything, domain.Expense, mock.MatchedBy(func(r *domain.DateRange) bool {
		return r.Start.Month() == time.March
	})).Return(decimal.NewFromInt(400), nil).Once()
	suite.mockRepo.On("SumAmount", mock.Anything, domain.Income, mock.MatchedBy(func(r *domain.DateRange) bool {
		return r.Start.Month() == time.February
	})).Return(decimal.NewFromInt(700), nil).Once()
	suite.mockRepo.On("SumAmount", mock.Anything, domain.Expense, mock.MatchedBy(func(r *domain.DateRange) bool {
		return r.Start.Month() == time.February
	})).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockRepo.On("MonthlySeries", mock.Anything, domain.Income, mock.AnythingOfType("*domain.DateRange")).
		Return([]domain.MonthlyAmount{{Month: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(900)}}, nil).Once()
	suite.mockRepo.On("MonthlySeries", mock.Anything, domain.Expense, mock.AnythingOfType("*domain.DateRange")).
		Return([]domain.MonthlyAmount{}, nil).Once()

	data, err := suite.service.Dashboard(ctx, domain.Period30Days)

	suite.Require().NoError(err)
	suite.True(data.NetProfit.Equal(decimal.NewFromInt(500)))
	suite.True(data.PreviousProfit.Equal(decimal.NewFromInt(200)))
	suite.Require().Len(data.MonthlyData, 1)
	suite.Equal("Mar 2025", data.MonthlyData[0].Month)
	suite.True(data.MonthlyData[0].Expenses.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
