package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the fundamental accounting type of a ledger entry.
type TransactionType string

const (
	Income    TransactionType = "INCOME"
	Expense   TransactionType = "EXPENSE"
	Asset     TransactionType = "ASSET"
	Liability TransactionType = "LIABILITY"
	Equity    TransactionType = "EQUITY"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, Asset, Liability, Equity:
		return true
	}
	return false
}

// Transaction represents a single dated financial movement.
// Amount is always positive; direction is implied by TransactionType.
type Transaction struct {
	TransactionID     string          `json:"transactionID"`
	Amount            decimal.Decimal `json:"amount"`
	TransactionType   TransactionType `json:"transactionType"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	AccountCategoryID *string         `json:"accountCategoryID"`
	TransactionDate   time.Time       `json:"transactionDate"`
	Region            string          `json:"region"`
	Notes             string          `json:"notes"`

	// Optional inventory link; a sale (INCOME) decrements stock, a purchase
	// (EXPENSE) increments it.
	InventoryItemID *string `json:"inventoryItemID"`
	Quantity        int64   `json:"quantity"`

	AuditFields
}

// TransactionFilter narrows ListTransactions queries.
type TransactionFilter struct {
	Type      *TransactionType
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// MonthlySummary aggregates one calendar month of income and expenses.
type MonthlySummary struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
}
