package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// InventoryReader defines read operations for stock records
type InventoryReader interface {
	// FindItemByID retrieves a specific stock item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListItems retrieves a paginated list of stock items, optionally
	// filtered by a case-insensitive name substring.
	ListItems(ctx context.Context, nameSearch string, limit int, offset int) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for stock records
type InventoryWriter interface {
	// SaveItem persists a new stock item.
	SaveItem(ctx context.Context, item domain.InventoryItem) error

	// UpdateItem updates an existing stock item's details.
	UpdateItem(ctx context.Context, item domain.InventoryItem) error

	// DeleteItem removes a stock item.
	DeleteItem(ctx context.Context, itemID string) error

	// AdjustQuantity applies a signed stock delta, clamping the result at zero,
	// within an open database transaction.
	AdjustQuantity(ctx context.Context, tx pgx.Tx, itemID string, delta int64) error
}

// InventoryRepositoryFacade combines all inventory repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}

// InventoryRepositoryWithTx extends InventoryRepositoryFacade with transaction capabilities
type InventoryRepositoryWithTx interface {
	InventoryRepositoryFacade
	TransactionManager
}
