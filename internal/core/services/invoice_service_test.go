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

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockInvoiceRepository
	mockTxnRepo *MockTransactionRepository
	service     portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo, suite.mockTxnRepo)
}

func draftInvoice() domain.Invoice {
	return domain.Invoice{
		InvoiceNumber: "INV-001",
		ClientName:    "Acme Ltd",
		TaxRate:       decimal.NewFromInt(10),
		Items: []domain.InvoiceItem{
			{Description: "Widget", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(25)},
			{Description: "Gadget", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50)},
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ComputesTotals() {
	ctx := context.Background()

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	created, err := suite.service.CreateInvoice(ctx, draftInvoice())

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	// 4*25 + 2*50 = 200, tax 10% = 20, total 220.
	suite.True(created.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal %s", created.Subtotal)
	suite.True(created.TaxAmount.Equal(decimal.NewFromInt(20)), "tax %s", created.TaxAmount)
	suite.True(created.Total.Equal(decimal.NewFromInt(220)), "total %s", created.Total)
	suite.Equal(domain.InvoiceDraft, created.Status)
	suite.Equal(domain.Net30, created.PaymentTerms)
	suite.Equal(created.IssueDate.AddDate(0, 0, 30), created.DueDate)
	suite.False(created.CreatedAt.IsZero())
	suite.Equal(created.CreatedAt, created.LastUpdatedAt)
	for _, item := range created.Items {
		suite.NotEmpty(item.InvoiceItemID)
		suite.Equal(created.InvoiceID, item.InvoiceID)
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RequiresLineItems() {
	ctx := context.Background()
	invoice := draftInvoice()
	invoice.Items = nil

	_, err := suite.service.CreateInvoice(ctx, invoice)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_PaidIsImmutable() {
	ctx := context.Background()
	invoice := draftInvoice()
	invoice.InvoiceID = "inv-1"

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").
		Return(&domain.Invoice{InvoiceID: "inv-1", Status: domain.InvoicePaid}, nil).Once()

	_, err := suite.service.UpdateInvoice(ctx, invoice)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice")
}

func (suite *InvoiceServiceTestSuite) TestAddPayment_PartialKeepsStatus() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: "inv-2",
		Status:    domain.InvoiceSent,
		Total:     decimal.NewFromInt(220),
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-2").Return(invoice, nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.InvoiceID == "inv-2" && p.PaymentID != ""
	})).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, "inv-2", domain.Payment{
		AmountPaid:  decimal.NewFromInt(100),
		PaymentDate: time.Now(),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceSent, updated.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus")
}

func (suite *InvoiceServiceTestSuite) TestAddPayment_FullMarksPaid() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: "inv-3",
		Status:    domain.InvoiceSent,
		Total:     decimal.NewFromInt(220),
		Payments: []domain.Payment{
			{PaymentID: "p1", InvoiceID: "inv-3", AmountPaid: decimal.NewFromInt(100)},
		},
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-3").Return(invoice, nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockRepo.On("UpdateInvoiceStatus", ctx, "inv-3", domain.InvoicePaid).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, "inv-3", domain.Payment{
		AmountPaid: decimal.NewFromInt(120),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestAddPayment_CancelledRejected() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-4").
		Return(&domain.Invoice{InvoiceID: "inv-4", Status: domain.InvoiceCancelled}, nil).Once()

	_, err := suite.service.AddPayment(ctx, "inv-4", domain.Payment{AmountPaid: decimal.NewFromInt(10)})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *InvoiceServiceTestSuite) TestAddPayment_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.AddPayment(ctx, "inv-5", domain.Payment{AmountPaid: decimal.Zero})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindInvoiceByID")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoiceFromTransactions_BuildsLineItems() {
	ctx := context.Background()

	sale := &domain.Transaction{
		TransactionID:   "txn-1",
		Amount:          decimal.NewFromInt(300),
		TransactionType: domain.Income,
		Description:     "Consulting",
		Quantity:        3,
	}
	// No quantity recorded, so it invoices as a single unit.
	fee := &domain.Transaction{
		TransactionID:   "txn-2",
		Amount:          decimal.NewFromInt(50),
		TransactionType: domain.Income,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-1").Return(sale, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-2").Return(fee, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	header := domain.Invoice{InvoiceNumber: "INV-010", ClientName: "Acme Ltd"}
	created, err := suite.service.CreateInvoiceFromTransactions(ctx, header, []string{"txn-1", "txn-gone", "txn-2"})

	suite.Require().NoError(err)
	suite.Require().Len(created.Items, 2)
	suite.Equal("Consulting", created.Items[0].Description)
	suite.True(created.Items[0].Quantity.Equal(decimal.NewFromInt(3)))
	suite.True(created.Items[0].UnitPrice.Equal(decimal.NewFromInt(100)))
	suite.Equal("Transaction #txn-2", created.Items[1].Description)
	suite.True(created.Items[1].Quantity.Equal(decimal.NewFromInt(1)))
	suite.Require().NotNil(created.Items[1].TransactionID)
	suite.Equal("txn-2", *created.Items[1].TransactionID)
	suite.True(created.Subtotal.Equal(decimal.NewFromInt(350)), "subtotal %s", created.Subtotal)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoiceFromTransactions_NoneFound() {
	ctx := context.Background()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, "txn-gone").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoiceFromTransactions(ctx, domain.Invoice{ClientName: "Acme Ltd"}, []string{"txn-gone"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
