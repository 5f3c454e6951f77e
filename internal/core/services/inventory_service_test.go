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

type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInventoryRepository
	service  portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInventoryRepository)
	suite.service = services.NewInventoryService(suite.mockRepo)
}

func (suite *InventoryServiceTestSuite) TestCreateItem_Success() {
	ctx := context.Background()
	item := domain.InventoryItem{
		Name:     "Desk Lamp",
		Price:    decimal.NewFromInt(45),
		Quantity: 12,
	}

	suite.mockRepo.On("SaveItem", ctx, mock.MatchedBy(func(i domain.InventoryItem) bool {
		return i.ItemID != "" && i.Name == "Desk Lamp"
	})).Return(nil).Once()

	created, err := suite.service.CreateItem(ctx, item)

	suite.Require().NoError(err)
	suite.NotEmpty(created.ItemID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_NegativePrice() {
	ctx := context.Background()
	item := domain.InventoryItem{Name: "Broken", Price: decimal.NewFromInt(-1)}

	_, err := suite.service.CreateItem(ctx, item)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveItem")
}

func (suite *InventoryServiceTestSuite) TestCreateItem_NegativeQuantity() {
	ctx := context.Background()
	item := domain.InventoryItem{Name: "Broken", Price: decimal.NewFromInt(5), Quantity: -3}

	_, err := suite.service.CreateItem(ctx, item)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_PreservesCreatedAt() {
	ctx := context.Background()
	existing := &domain.InventoryItem{ItemID: "item-1", Name: "Old Name", Price: decimal.NewFromInt(10)}
	update := domain.InventoryItem{ItemID: "item-1", Name: "New Name", Price: decimal.NewFromInt(12)}

	suite.mockRepo.On("FindItemByID", ctx, "item-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateItem", ctx, mock.MatchedBy(func(i domain.InventoryItem) bool {
		return i.Name == "New Name" && i.CreatedAt.Equal(existing.CreatedAt)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateItem(ctx, update)

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestGetItemByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindItemByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	item, err := suite.service.GetItemByID(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestListItems_DefaultsLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListItems", ctx, "", 100, 0).Return([]domain.InventoryItem{}, nil).Once()

	items, err := suite.service.ListItems(ctx, "", 0, -5)

	suite.Require().NoError(err)
	suite.Empty(items)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestListItems_PassesNameSearch() {
	ctx := context.Background()

	widgets := []domain.InventoryItem{{ItemID: "item-1", Name: "Widget"}}
	suite.mockRepo.On("ListItems", ctx, "widg", 100, 0).Return(widgets, nil).Once()

	items, err := suite.service.ListItems(ctx, "widg", 100, 0)

	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Widget", items[0].Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
