package domain

import "github.com/shopspring/decimal"

// InventoryItem represents a stocked product. Quantity never goes negative;
// depletions are clamped at zero.
type InventoryItem struct {
	ItemID      string          `json:"itemID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	AuditFields
}
