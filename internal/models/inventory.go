package models

import "github.com/shopspring/decimal"

// InventoryItem is a persisted stock record.
type InventoryItem struct {
	ItemID      string          `db:"item_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Quantity    int64           `db:"quantity"`
	AuditFields
}
