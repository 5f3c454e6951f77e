package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

func TestUpdateTransactionRequest_ToDomainTransaction(t *testing.T) {
	categoryID := "cat-1"
	date := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
	req := dto.UpdateTransactionRequest{
		Amount:            decimal.NewFromInt(150),
		TransactionType:   domain.Expense,
		Description:       "Office supplies",
		Category:          "Supplies",
		AccountCategoryID: &categoryID,
		TransactionDate:   &date,
		Region:            "South",
		Notes:             "quarterly order",
	}

	txn := req.ToDomainTransaction()

	assert.True(t, txn.Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, domain.Expense, txn.TransactionType)
	assert.Equal(t, "Office supplies", txn.Description)
	assert.Equal(t, &categoryID, txn.AccountCategoryID)
	assert.Equal(t, date, txn.TransactionDate)
	assert.Equal(t, "South", txn.Region)
}

func TestUpdateTransactionRequest_ToDomainTransaction_NoDate(t *testing.T) {
	req := dto.UpdateTransactionRequest{
		Amount:          decimal.NewFromInt(20),
		TransactionType: domain.Income,
	}

	txn := req.ToDomainTransaction()

	// An omitted date stays zero for the service to default.
	assert.True(t, txn.TransactionDate.IsZero())
}

func TestUpdateInventoryItemRequest_ToDomainItem(t *testing.T) {
	req := dto.UpdateInventoryItemRequest{
		Name:        "Desk Lamp",
		Description: "LED, adjustable arm",
		Price:       decimal.NewFromFloat(34.50),
		Quantity:    12,
	}

	item := req.ToDomainItem()

	assert.Equal(t, "Desk Lamp", item.Name)
	assert.Equal(t, "LED, adjustable arm", item.Description)
	assert.True(t, item.Price.Equal(decimal.NewFromFloat(34.50)))
	assert.Equal(t, int64(12), item.Quantity)
}
