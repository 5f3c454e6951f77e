package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

func bal(id, code, name string, parentID *string, amount int64) domain.CategoryBalance {
	return domain.CategoryBalance{
		CategoryID: id,
		Code:       code,
		Name:       name,
		ParentID:   parentID,
		Amount:     decimal.NewFromInt(amount),
	}
}

func strPtr(s string) *string { return &s }

func TestBuildCategoryTree_NestsChildrenUnderParents(t *testing.T) {
	balances := []domain.CategoryBalance{
		bal("rev", "4000", "Revenue", nil, 0),
		bal("sales", "4100", "Sales", strPtr("rev"), 1200),
		bal("services", "4200", "Services", strPtr("rev"), 800),
		bal("retail", "4110", "Retail Sales", strPtr("sales"), 700),
	}

	roots := BuildCategoryTree(balances)

	require.Len(t, roots, 1)
	assert.Equal(t, "rev", roots[0].CategoryID)
	require.Len(t, roots[0].Children, 2)
	sales := roots[0].Children[0]
	assert.Equal(t, "sales", sales.CategoryID)
	require.Len(t, sales.Children, 1)
	assert.Equal(t, "retail", sales.Children[0].CategoryID)
	assert.Empty(t, roots[0].Children[1].Children)
}

func TestBuildCategoryTree_DropsOrphans(t *testing.T) {
	balances := []domain.CategoryBalance{
		bal("a", "1000", "Assets", nil, 0),
		bal("ghost", "9999", "Orphan", strPtr("missing"), 50),
	}

	roots := BuildCategoryTree(balances)

	require.Len(t, roots, 1)
	assert.Equal(t, "a", roots[0].CategoryID)
	assert.Empty(t, roots[0].Children)
}

func TestBuildCategoryTree_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildCategoryTree(nil))
}

func TestSumBalances_CountsParentEntriesOnce(t *testing.T) {
	balances := []domain.CategoryBalance{
		bal("rev", "4000", "Revenue", nil, 100),
		bal("sales", "4100", "Sales", strPtr("rev"), 1200),
		bal("services", "4200", "Services", strPtr("rev"), 800),
	}

	total := SumBalances(balances)

	assert.True(t, decimal.NewFromInt(2100).Equal(total), "got %s", total)
}
