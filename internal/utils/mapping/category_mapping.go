package mapping

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/models"
)

// ToModelAccountCategory converts a domain AccountCategory to a model AccountCategory
func ToModelAccountCategory(d domain.AccountCategory) models.AccountCategory {
	return models.AccountCategory{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Code:        d.Code,
		Type:        models.TransactionType(d.Type),
		ParentID:    d.ParentID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountCategory converts a model AccountCategory to a domain AccountCategory
func ToDomainAccountCategory(m models.AccountCategory) domain.AccountCategory {
	return domain.AccountCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Code:        m.Code,
		Type:        domain.TransactionType(m.Type),
		ParentID:    m.ParentID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountCategorySlice converts a slice of model AccountCategories to domain AccountCategories
func ToDomainAccountCategorySlice(ms []models.AccountCategory) []domain.AccountCategory {
	ds := make([]domain.AccountCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccountCategory(m)
	}
	return ds
}
