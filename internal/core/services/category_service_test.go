package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

func parentPtr(s string) *string { return &s }

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	category := domain.AccountCategory{
		Name: "Sales Revenue",
		Code: "4100",
		Type: domain.Income,
	}

	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.AccountCategory) bool {
		return c.CategoryID != "" && c.Code == "4100"
	})).Return(nil).Once()

	created, err := suite.service.CreateCategory(ctx, category)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.CategoryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_ParentTypeMismatch() {
	ctx := context.Background()
	category := domain.AccountCategory{
		Name:     "Office Supplies",
		Code:     "5100",
		Type:     domain.Expense,
		ParentID: parentPtr("parent-1"),
	}

	suite.mockRepo.On("FindCategoryByID", ctx, "parent-1").
		Return(&domain.AccountCategory{CategoryID: "parent-1", Type: domain.Income}, nil).Once()

	_, err := suite.service.CreateCategory(ctx, category)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory")
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateCode() {
	ctx := context.Background()
	category := domain.AccountCategory{
		Name: "Sales Revenue",
		Code: "4100",
		Type: domain.Income,
	}

	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.AccountCategory")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCategory(ctx, category)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_RejectsSelfParent() {
	ctx := context.Background()
	category := domain.AccountCategory{
		CategoryID: "cat-1",
		Name:       "Revenue",
		Code:       "4000",
		Type:       domain.Income,
		ParentID:   parentPtr("cat-1"),
	}

	suite.mockRepo.On("FindCategoryByID", ctx, "cat-1").
		Return(&domain.AccountCategory{CategoryID: "cat-1", Type: domain.Income}, nil).Once()

	_, err := suite.service.UpdateCategory(ctx, category)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory")
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_RejectsCycle() {
	ctx := context.Background()
	// a -> b -> c, then reparenting a under c would close the loop.
	category := domain.AccountCategory{
		CategoryID: "a",
		Name:       "A",
		Code:       "100",
		Type:       domain.Asset,
		ParentID:   parentPtr("c"),
	}

	suite.mockRepo.On("FindCategoryByID", ctx, "a").
		Return(&domain.AccountCategory{CategoryID: "a", Type: domain.Asset}, nil)
	suite.mockRepo.On("FindCategoryByID", ctx, "c").
		Return(&domain.AccountCategory{CategoryID: "c", Type: domain.Asset, ParentID: parentPtr("b")}, nil)
	suite.mockRepo.On("FindCategoryByID", ctx, "b").
		Return(&domain.AccountCategory{CategoryID: "b", Type: domain.Asset, ParentID: parentPtr("a")}, nil)

	_, err := suite.service.UpdateCategory(ctx, category)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_BlockedByChildren() {
	ctx := context.Background()

	suite.mockRepo.On("HasChildren", ctx, "cat-1").Return(true, nil).Once()

	err := suite.service.DeleteCategory(ctx, "cat-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_BlockedByTransactions() {
	ctx := context.Background()

	suite.mockRepo.On("HasChildren", ctx, "cat-2").Return(false, nil).Once()
	suite.mockRepo.On("HasTransactions", ctx, "cat-2").Return(true, nil).Once()

	err := suite.service.DeleteCategory(ctx, "cat-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()

	suite.mockRepo.On("HasChildren", ctx, "cat-3").Return(false, nil).Once()
	suite.mockRepo.On("HasTransactions", ctx, "cat-3").Return(false, nil).Once()
	suite.mockRepo.On("DeleteCategory", ctx, "cat-3").Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, "cat-3")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestGetCategoryTree_NestsByParent() {
	ctx := context.Background()
	categories := []domain.AccountCategory{
		{CategoryID: "root", Name: "Revenue", Code: "4000", Type: domain.Income},
		{CategoryID: "child", Name: "Sales", Code: "4100", Type: domain.Income, ParentID: parentPtr("root")},
	}

	suite.mockRepo.On("ListCategories", ctx, (*domain.TransactionType)(nil)).
		Return(categories, nil).Once()

	tree, err := suite.service.GetCategoryTree(ctx, nil)

	suite.Require().NoError(err)
	suite.Require().Len(tree, 1)
	suite.Equal("root", tree[0].CategoryID)
	suite.Require().Len(tree[0].Children, 1)
	suite.Equal("child", tree[0].Children[0].CategoryID)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
