package domain

// AccountCategory is a node in the chart-of-accounts hierarchy used for
// IFRS-style statement rollups. ParentID is nil for root categories.
type AccountCategory struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Code       string          `json:"code"`
	Type       TransactionType `json:"type"`
	ParentID   *string         `json:"parentID"`
	AuditFields
}
