package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// inventoryService implements the InventorySvcFacade interface
type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewInventoryService creates a new inventory service
func NewInventoryService(repo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: repo}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) validate(item domain.InventoryItem) error {
	if item.Name == "" {
		return apperrors.NewValidationError("item name is required")
	}
	if item.Price.IsNegative() {
		return apperrors.NewValidationError("price cannot be negative")
	}
	if item.Quantity < 0 {
		return apperrors.NewValidationError("quantity cannot be negative")
	}
	return nil
}

// CreateItem validates and persists a new stock item.
func (s *inventoryService) CreateItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	if err := s.validate(item); err != nil {
		return nil, err
	}

	now := time.Now()
	item.ItemID = uuid.NewString()
	item.CreatedAt = now
	item.LastUpdatedAt = now

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save inventory item", slog.String("item_id", item.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Inventory item created", slog.String("item_id", item.ItemID), slog.String("name", item.Name))
	return &item, nil
}

// GetItemByID retrieves a single stock item.
func (s *inventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find inventory item", slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

// ListItems retrieves a paginated list of stock items, optionally filtered
// by a name substring.
func (s *inventoryService) ListItems(ctx context.Context, nameSearch string, limit int, offset int) ([]domain.InventoryItem, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.inventoryRepo.ListItems(ctx, nameSearch, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory items")
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	if items == nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}

// UpdateItem updates a stock item's details.
func (s *inventoryService) UpdateItem(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	if err := s.validate(item); err != nil {
		return nil, err
	}

	existing, err := s.inventoryRepo.FindItemByID(ctx, item.ItemID)
	if err != nil {
		return nil, err
	}

	item.CreatedAt = existing.CreatedAt
	item.LastUpdatedAt = time.Now()
	if err := s.inventoryRepo.UpdateItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to update inventory item", slog.String("item_id", item.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Inventory item updated", slog.String("item_id", item.ItemID))
	return &item, nil
}

// DeleteItem removes a stock item.
func (s *inventoryService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.inventoryRepo.DeleteItem(ctx, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete inventory item", slog.String("item_id", itemID))
		}
		return err
	}
	s.LogInfo(ctx, "Inventory item deleted", slog.String("item_id", itemID))
	return nil
}
