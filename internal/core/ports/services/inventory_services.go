package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// InventorySvcFacade defines the business operations on stock records.
type InventorySvcFacade interface {
	// CreateItem validates and persists a new stock item.
	CreateItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error)

	// GetItemByID retrieves a single stock item.
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListItems retrieves a paginated list of stock items, optionally
	// filtered by a case-insensitive name substring.
	ListItems(ctx context.Context, nameSearch string, limit int, offset int) ([]domain.InventoryItem, error)

	// UpdateItem updates a stock item's details.
	UpdateItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error)

	// DeleteItem removes a stock item.
	DeleteItem(ctx context.Context, itemID string) error
}
