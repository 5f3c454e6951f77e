package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CategorySvcFacade defines the business operations on the chart of accounts.
type CategorySvcFacade interface {
	// CreateCategory validates and persists a new category.
	CreateCategory(ctx context.Context, category domain.AccountCategory) (*domain.AccountCategory, error)

	// GetCategoryByID retrieves a single category.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.AccountCategory, error)

	// ListCategories retrieves all categories, optionally filtered by type.
	ListCategories(ctx context.Context, categoryType *domain.TransactionType) ([]domain.AccountCategory, error)

	// GetCategoryTree returns the full hierarchy as nested nodes.
	GetCategoryTree(ctx context.Context, categoryType *domain.TransactionType) ([]*domain.CategoryNode, error)

	// UpdateCategory updates a category, rejecting reparenting that would
	// create a cycle.
	UpdateCategory(ctx context.Context, category domain.AccountCategory) (*domain.AccountCategory, error)

	// DeleteCategory removes a category unless it has children or is
	// referenced by ledger entries.
	DeleteCategory(ctx context.Context, categoryID string) error
}
