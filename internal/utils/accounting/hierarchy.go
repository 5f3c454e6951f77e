package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// BuildCategoryTree shapes a flat list of category balances into the
// chart-of-accounts hierarchy. Roots are categories with a nil ParentID.
// A category whose parent is not present in the input is dropped rather
// than promoted, so a filtered slice of a deeper hierarchy never shows
// subtrees floating at the top level.
func BuildCategoryTree(balances []domain.CategoryBalance) []*domain.CategoryNode {
	nodes := make(map[string]*domain.CategoryNode, len(balances))
	for i := range balances {
		nodes[balances[i].CategoryID] = &domain.CategoryNode{
			CategoryBalance: balances[i],
			Children:        []*domain.CategoryNode{},
		}
	}

	roots := make([]*domain.CategoryNode, 0)
	for i := range balances {
		node := nodes[balances[i].CategoryID]
		if balances[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*balances[i].ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	return roots
}

// SumBalances totals the flat list. Statement totals come from here rather
// than from walking the tree, so a parent category holding entries of its
// own is counted exactly once.
func SumBalances(balances []domain.CategoryBalance) decimal.Decimal {
	total := decimal.Zero
	for i := range balances {
		total = total.Add(balances[i].Amount)
	}
	return total
}
