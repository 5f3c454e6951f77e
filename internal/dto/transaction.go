package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
type CreateTransactionRequest struct {
	Amount            decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType   domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE ASSET LIABILITY EQUITY"`
	Description       string                 `json:"description"`
	Category          string                 `json:"category"`
	AccountCategoryID *string                `json:"accountCategoryID"` // Optional link into the chart of accounts
	TransactionDate   *time.Time             `json:"transactionDate"`   // Defaults to now
	Region            string                 `json:"region"`
	Notes             string                 `json:"notes"`
	InventoryItemID   *string                `json:"inventoryItemID"` // Optional link to a stock item
	Quantity          int64                  `json:"quantity" binding:"omitempty,min=0"`
}

// ToDomainTransaction converts the request to a domain Transaction.
func (r CreateTransactionRequest) ToDomainTransaction() domain.Transaction {
	txn := domain.Transaction{
		Amount:            r.Amount,
		TransactionType:   r.TransactionType,
		Description:       r.Description,
		Category:          r.Category,
		AccountCategoryID: r.AccountCategoryID,
		Region:            r.Region,
		Notes:             r.Notes,
		InventoryItemID:   r.InventoryItemID,
		Quantity:          r.Quantity,
	}
	if r.TransactionDate != nil {
		txn.TransactionDate = *r.TransactionDate
	}
	return txn
}

// UpdateTransactionRequest defines the data allowed for updating an entry.
type UpdateTransactionRequest struct {
	Amount            decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType   domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE ASSET LIABILITY EQUITY"`
	Description       string                 `json:"description"`
	Category          string                 `json:"category"`
	AccountCategoryID *string                `json:"accountCategoryID"`
	TransactionDate   *time.Time             `json:"transactionDate"`
	Region            string                 `json:"region"`
	Notes             string                 `json:"notes"`
}

// ToDomainTransaction converts the request to a domain Transaction.
func (r UpdateTransactionRequest) ToDomainTransaction() domain.Transaction {
	txn := domain.Transaction{
		Amount:            r.Amount,
		TransactionType:   r.TransactionType,
		Description:       r.Description,
		Category:          r.Category,
		AccountCategoryID: r.AccountCategoryID,
		Region:            r.Region,
		Notes:             r.Notes,
	}
	if r.TransactionDate != nil {
		txn.TransactionDate = *r.TransactionDate
	}
	return txn
}

// ListTransactionsParams defines query parameters for listing entries.
type ListTransactionsParams struct {
	Type      *domain.TransactionType `form:"type" binding:"omitempty,oneof=INCOME EXPENSE ASSET LIABILITY EQUITY"`
	Category  *string                 `form:"category"`
	StartDate *time.Time              `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time              `form:"endDate" time_format:"2006-01-02"`
	Limit     int                     `form:"limit,default=100"`
	Offset    int                     `form:"offset,default=0"`
}

// ToDomainFilter converts the query parameters to a domain filter.
func (p ListTransactionsParams) ToDomainFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		Type:      p.Type,
		Category:  p.Category,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Limit:     p.Limit,
		Offset:    p.Offset,
	}
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID     string                 `json:"transactionID"`
	Amount            decimal.Decimal        `json:"amount"`
	TransactionType   domain.TransactionType `json:"transactionType"`
	Description       string                 `json:"description"`
	Category          string                 `json:"category"`
	AccountCategoryID *string                `json:"accountCategoryID,omitempty"`
	TransactionDate   time.Time              `json:"transactionDate"`
	Region            string                 `json:"region,omitempty"`
	Notes             string                 `json:"notes,omitempty"`
	InventoryItemID   *string                `json:"inventoryItemID,omitempty"`
	Quantity          int64                  `json:"quantity,omitempty"`
	CreatedAt         time.Time              `json:"createdAt"`
	LastUpdatedAt     time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		Amount:            txn.Amount,
		TransactionType:   txn.TransactionType,
		Description:       txn.Description,
		Category:          txn.Category,
		AccountCategoryID: txn.AccountCategoryID,
		TransactionDate:   txn.TransactionDate,
		Region:            txn.Region,
		Notes:             txn.Notes,
		InventoryItemID:   txn.InventoryItemID,
		Quantity:          txn.Quantity,
		CreatedAt:         txn.CreatedAt,
		LastUpdatedAt:     txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// MonthlySummaryResponse defines the data returned for a monthly summary.
type MonthlySummaryResponse struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary to its DTO.
func ToMonthlySummaryResponse(s *domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:         s.Year,
		Month:        s.Month,
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Net:          s.Net,
	}
}
