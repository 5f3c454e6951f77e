package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo       *MockTransactionRepository
	mockCategoryRepo  *MockCategoryRepository
	mockInventoryRepo *MockInventoryRepository
	service           portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCategoryRepo, suite.mockInventoryRepo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	txn := domain.Transaction{
		Amount:          decimal.NewFromInt(250),
		TransactionType: domain.Income,
		Description:     "Consulting fee",
		Category:        "Services",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID != "" && t.Amount.Equal(txn.Amount) && !t.TransactionDate.IsZero()
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, txn)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.TransactionID)
	suite.False(created.CreatedAt.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidType() {
	ctx := context.Background()
	txn := domain.Transaction{
		Amount:          decimal.NewFromInt(10),
		TransactionType: domain.TransactionType("BOGUS"),
	}

	created, err := suite.service.CreateTransaction(ctx, txn)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	txn := domain.Transaction{
		Amount:          decimal.Zero,
		TransactionType: domain.Expense,
	}

	_, err := suite.service.CreateTransaction(ctx, txn)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaleDecrementsStock() {
	ctx := context.Background()
	itemID := "item-1"
	txn := domain.Transaction{
		Amount:          decimal.NewFromInt(90),
		TransactionType: domain.Income,
		InventoryItemID: &itemID,
		Quantity:        3,
	}

	suite.mockInventoryRepo.On("FindItemByID", ctx, itemID).
		Return(&domain.InventoryItem{ItemID: itemID, Quantity: 10}, nil).Once()
	suite.mockTxnRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockInventoryRepo.On("AdjustQuantity", ctx, mock.Anything, itemID, int64(-3)).Return(nil).Once()
	suite.mockTxnRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockTxnRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	created, err := suite.service.CreateTransaction(ctx, txn)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PurchaseIncrementsStock() {
	ctx := context.Background()
	itemID := "item-2"
	txn := domain.Transaction{
		Amount:          decimal.NewFromInt(400),
		TransactionType: domain.Expense,
		InventoryItemID: &itemID,
		Quantity:        20,
	}

	suite.mockInventoryRepo.On("FindItemByID", ctx, itemID).
		Return(&domain.InventoryItem{ItemID: itemID, Quantity: 0}, nil).Once()
	suite.mockTxnRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockInventoryRepo.On("AdjustQuantity", ctx, mock.Anything, itemID, int64(20)).Return(nil).Once()
	suite.mockTxnRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockTxnRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	_, err := suite.service.CreateTransaction(ctx, txn)

	suite.Require().NoError(err)
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MissingInventoryItem() {
	ctx := context.Background()
	itemID := "missing"
	txn := domain.Transaction{
		Amount:          decimal.NewFromInt(50),
		TransactionType: domain.Income,
		InventoryItemID: &itemID,
		Quantity:        1,
	}

	suite.mockInventoryRepo.On("FindItemByID", ctx, itemID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, txn)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "Begin")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	ctx := context.Background()
	categoryID := "missing-cat"
	txn := domain.Transaction{
		Amount:            decimal.NewFromInt(50),
		TransactionType:   domain.Expense,
		AccountCategoryID: &categoryID,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, txn)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyResult() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.AnythingOfType("domain.TransactionFilter")).
		Return(nil, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, domain.TransactionFilter{})

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func (suite *TransactionServiceTestSuite) TestGetMonthlySummary_InvalidMonth() {
	ctx := context.Background()

	_, err := suite.service.GetMonthlySummary(ctx, 2025, 13)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "GetMonthlySummary")
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "nope").
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
