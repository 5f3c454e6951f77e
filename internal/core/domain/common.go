package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DateRange is a closed interval over transaction dates. A zero Start or End
// leaves that side unbounded.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AsOf builds a range bounded only above, for as-of-date statements.
func AsOf(t time.Time) DateRange {
	return DateRange{End: t}
}

// Between builds a fully bounded range.
func Between(start, end time.Time) DateRange {
	return DateRange{Start: start, End: end}
}
