package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a chart-of-accounts node.
type CreateCategoryRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Code     string                 `json:"code" binding:"required"`
	Type     domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE ASSET LIABILITY EQUITY"`
	ParentID *string                `json:"parentID"` // Optional, use pointer for nullability
}

// ToDomainCategory converts the request to a domain AccountCategory.
func (r CreateCategoryRequest) ToDomainCategory() domain.AccountCategory {
	return domain.AccountCategory{
		Name:     r.Name,
		Code:     r.Code,
		Type:     r.Type,
		ParentID: r.ParentID,
	}
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Code     string                 `json:"code" binding:"required"`
	Type     domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE ASSET LIABILITY EQUITY"`
	ParentID *string                `json:"parentID"`
}

// ToDomainCategory converts the request to a domain AccountCategory.
func (r UpdateCategoryRequest) ToDomainCategory() domain.AccountCategory {
	return domain.AccountCategory{
		Name:     r.Name,
		Code:     r.Code,
		Type:     r.Type,
		ParentID: r.ParentID,
	}
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Type *domain.TransactionType `form:"type" binding:"omitempty,oneof=INCOME EXPENSE ASSET LIABILITY EQUITY"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string                 `json:"categoryID"`
	Name          string                 `json:"name"`
	Code          string                 `json:"code"`
	Type          domain.TransactionType `json:"type"`
	ParentID      *string                `json:"parentID,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.AccountCategory to its response DTO.
func ToCategoryResponse(c *domain.AccountCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		Name:          c.Name,
		Code:          c.Code,
		Type:          c.Type,
		ParentID:      c.ParentID,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.AccountCategory to DTOs.
func ToListCategoryResponse(categories []domain.AccountCategory) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
