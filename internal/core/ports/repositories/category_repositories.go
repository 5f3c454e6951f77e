package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CategoryReader defines read operations for the chart of accounts
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.AccountCategory, error)

	// ListCategories retrieves all categories, optionally filtered by type.
	ListCategories(ctx context.Context, categoryType *domain.TransactionType) ([]domain.AccountCategory, error)

	// HasChildren reports whether any category names this one as its parent.
	HasChildren(ctx context.Context, categoryID string) (bool, error)

	// HasTransactions reports whether any ledger entry references this category.
	HasTransactions(ctx context.Context, categoryID string) (bool, error)
}

// CategoryWriter defines write operations for the chart of accounts
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.AccountCategory) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.AccountCategory) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
