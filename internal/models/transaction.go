package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the accounting classification of a ledger entry.
type TransactionType string

const (
	Income    TransactionType = "INCOME"
	Expense   TransactionType = "EXPENSE"
	Asset     TransactionType = "ASSET"
	Liability TransactionType = "LIABILITY"
	Equity    TransactionType = "EQUITY"
)

// Transaction is a persisted ledger entry. Amount is always positive; the
// sign of its effect comes from TransactionType.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	Amount            decimal.Decimal `db:"amount"`
	TransactionType   TransactionType `db:"transaction_type"`
	Description       string          `db:"description"`
	Category          string          `db:"category"`
	AccountCategoryID *string         `db:"account_category_id"` // Nullable FK -> account_categories
	TransactionDate   time.Time       `db:"transaction_date"`
	Region            string          `db:"region"`
	Notes             string          `db:"notes"`
	InventoryItemID   *string         `db:"inventory_item_id"` // Nullable FK -> inventory_items
	Quantity          int64           `db:"quantity"`
	AuditFields
}
