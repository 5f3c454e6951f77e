package accounting

import (
	"sort"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// MonthDisplayFormat is the label layout for dashboard month buckets.
const MonthDisplayFormat = "Jan 2006"

// MonthStart truncates t to the first instant of its calendar month in UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths advances the first-of-month anchor by n calendar months.
func AddMonths(monthStart time.Time, n int) time.Time {
	return monthStart.AddDate(0, n, 0)
}

// DashboardWindows derives the current and previous comparison ranges for a
// dashboard period, anchored on the given reference date (the date of the
// most recent ledger entry, falling back to today when the ledger is empty).
func DashboardWindows(period domain.DashboardPeriod, reference time.Time) (current, previous domain.DateRange) {
	ref := reference.UTC()
	switch period {
	case domain.Period90Days:
		// Quarter-ish window: 90 days back, snapped to the start of that month.
		curStart := MonthStart(ref.AddDate(0, 0, -90))
		prevStart := MonthStart(curStart.AddDate(0, 0, -90))
		current = domain.DateRange{Start: curStart, End: ref}
		previous = domain.DateRange{Start: prevStart, End: curStart.Add(-time.Nanosecond)}
	case domain.PeriodYear:
		curStart := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		prevStart := curStart.AddDate(-1, 0, 0)
		current = domain.DateRange{Start: curStart, End: ref}
		previous = domain.DateRange{Start: prevStart, End: ref.AddDate(-1, 0, 0)}
	default: // 30d
		curStart := MonthStart(ref)
		prevStart := AddMonths(curStart, -1)
		current = domain.DateRange{Start: curStart, End: ref}
		previous = domain.DateRange{Start: prevStart, End: curStart.Add(-time.Nanosecond)}
	}
	return current, previous
}

// MergeMonthlyBreakdown joins income and expense month series on their month
// bucket, zero-filling the missing side, and returns the rows in
// chronological order with display labels.
func MergeMonthlyBreakdown(income, expenses []domain.MonthlyAmount) []domain.MonthlyBreakdown {
	type pair struct {
		income  domain.MonthlyAmount
		expense domain.MonthlyAmount
	}
	byMonth := make(map[time.Time]*pair)
	for _, m := range income {
		key := MonthStart(m.Month)
		p, ok := byMonth[key]
		if !ok {
			p = &pair{}
			byMonth[key] = p
		}
		p.income.Amount = p.income.Amount.Add(m.Amount)
	}
	for _, m := range expenses {
		key := MonthStart(m.Month)
		p, ok := byMonth[key]
		if !ok {
			p = &pair{}
			byMonth[key] = p
		}
		p.expense.Amount = p.expense.Amount.Add(m.Amount)
	}

	months := make([]time.Time, 0, len(byMonth))
	for key := range byMonth {
		months = append(months, key)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	merged := make([]domain.MonthlyBreakdown, 0, len(months))
	for _, key := range months {
		p := byMonth[key]
		merged = append(merged, domain.MonthlyBreakdown{
			Month:    key.Format(MonthDisplayFormat),
			Income:   p.income.Amount,
			Expenses: p.expense.Amount,
		})
	}
	return merged
}
