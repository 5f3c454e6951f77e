package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CreateInventoryItemRequest defines the data needed to create a stock item.
type CreateInventoryItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"omitempty,min=0"`
}

// ToDomainItem converts the request to a domain InventoryItem.
func (r CreateInventoryItemRequest) ToDomainItem() domain.InventoryItem {
	return domain.InventoryItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}

// UpdateInventoryItemRequest defines the data allowed for updating a stock item.
type UpdateInventoryItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"omitempty,min=0"`
}

// ToDomainItem converts the request to a domain InventoryItem.
func (r UpdateInventoryItemRequest) ToDomainItem() domain.InventoryItem {
	return domain.InventoryItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}

// ListInventoryParams defines query parameters for listing stock items.
type ListInventoryParams struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=100"`
	Offset int    `form:"offset,default=0"`
}

// InventoryItemResponse defines the data returned for a stock item.
type InventoryItemResponse struct {
	ItemID        string          `json:"itemID"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int64           `json:"quantity"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its response DTO.
func ToInventoryItemResponse(item *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:        item.ItemID,
		Name:          item.Name,
		Description:   item.Description,
		Price:         item.Price,
		Quantity:      item.Quantity,
		CreatedAt:     item.CreatedAt,
		LastUpdatedAt: item.LastUpdatedAt,
	}
}

// ToListInventoryItemResponse converts a slice of domain.InventoryItem to DTOs.
func ToListInventoryItemResponse(items []domain.InventoryItem) []InventoryItemResponse {
	res := make([]InventoryItemResponse, len(items))
	for i := range items {
		res[i] = ToInventoryItemResponse(&items[i])
	}
	return res
}
