package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) validate(category domain.AccountCategory) error {
	if category.Name == "" {
		return apperrors.NewValidationError("category name is required")
	}
	if category.Code == "" {
		return apperrors.NewValidationError("category code is required")
	}
	if !category.Type.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid category type: %s", category.Type))
	}
	return nil
}

// checkParent verifies the parent exists and carries the same accounting type.
func (s *categoryService) checkParent(ctx context.Context, category domain.AccountCategory) error {
	if category.ParentID == nil {
		return nil
	}
	parent, err := s.categoryRepo.FindCategoryByID(ctx, *category.ParentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("parent category does not exist")
		}
		return err
	}
	if parent.Type != category.Type {
		return apperrors.NewValidationError("parent category must have the same type")
	}
	return nil
}

// CreateCategory validates and persists a new category.
func (s *categoryService) CreateCategory(ctx context.Context, category domain.AccountCategory) (*domain.AccountCategory, error) {
	if err := s.validate(category); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, category); err != nil {
		return nil, err
	}

	now := time.Now()
	category.CategoryID = uuid.NewString()
	category.CreatedAt = now
	category.LastUpdatedAt = now

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.String("code", category.Code))
	return &category, nil
}

// GetCategoryByID retrieves a single category.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.AccountCategory, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

// ListCategories retrieves all categories, optionally filtered by type.
func (s *categoryService) ListCategories(ctx context.Context, categoryType *domain.TransactionType) ([]domain.AccountCategory, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, categoryType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.AccountCategory{}, nil
	}
	return categories, nil
}

// GetCategoryTree returns the full hierarchy as nested nodes. Balances are
// not resolved here; the tree carries zero amounts.
func (s *categoryService) GetCategoryTree(ctx context.Context, categoryType *domain.TransactionType) ([]*domain.CategoryNode, error) {
	categories, err := s.ListCategories(ctx, categoryType)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.CategoryBalance, len(categories))
	for i, c := range categories {
		balances[i] = domain.CategoryBalance{
			CategoryID: c.CategoryID,
			Code:       c.Code,
			Name:       c.Name,
			ParentID:   c.ParentID,
			Amount:     decimal.Zero,
		}
	}
	return accounting.BuildCategoryTree(balances), nil
}

// UpdateCategory updates a category, rejecting reparenting that would create
// a cycle. The check walks the ancestor chain of the proposed parent; hitting
// the category itself means the new edge closes a loop.
func (s *categoryService) UpdateCategory(ctx context.Context, category domain.AccountCategory) (*domain.AccountCategory, error) {
	if err := s.validate(category); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindCategoryByID(ctx, category.CategoryID)
	if err != nil {
		return nil, err
	}

	if category.ParentID != nil {
		if *category.ParentID == category.CategoryID {
			return nil, apperrors.NewValidationError("category cannot be its own parent")
		}
		if err := s.checkParent(ctx, category); err != nil {
			return nil, err
		}
		if err := s.checkForCycle(ctx, category.CategoryID, *category.ParentID); err != nil {
			return nil, err
		}
	}

	category.CreatedAt = existing.CreatedAt
	category.LastUpdatedAt = time.Now()
	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) checkForCycle(ctx context.Context, categoryID, parentID string) error {
	seen := map[string]bool{categoryID: true}
	current := parentID
	for {
		if seen[current] {
			return apperrors.NewValidationError("reparenting would create a cycle in the category hierarchy")
		}
		seen[current] = true

		node, err := s.categoryRepo.FindCategoryByID(ctx, current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil
			}
			return err
		}
		if node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
}

// DeleteCategory removes a category unless it has children or is referenced
// by ledger entries.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	hasChildren, err := s.categoryRepo.HasChildren(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category children", slog.String("category_id", categoryID))
		return err
	}
	if hasChildren {
		return apperrors.NewConflictError("category has child categories")
	}

	hasTxns, err := s.categoryRepo.HasTransactions(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category transactions", slog.String("category_id", categoryID))
		return err
	}
	if hasTxns {
		return apperrors.NewConflictError("category is referenced by transactions")
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
