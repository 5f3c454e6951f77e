package models

// AccountCategory is a persisted chart-of-accounts node.
type AccountCategory struct {
	CategoryID string          `db:"category_id"`
	Name       string          `db:"name"`
	Code       string          `db:"code"`
	Type       TransactionType `db:"type"`
	ParentID   *string         `db:"parent_id"` // Nullable self reference
	AuditFields
}
