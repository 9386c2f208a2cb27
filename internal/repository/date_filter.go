package repository

import (
	"strings"
	"time"
)

// DateFilter narrows event listings by calendar date relative to today.
type DateFilter string

const (
	DateFilterAll       DateFilter = "all"
	DateFilterUpcoming  DateFilter = "upcoming"
	DateFilterPast      DateFilter = "past"
	DateFilterThisWeek  DateFilter = "this_week"
	DateFilterThisMonth DateFilter = "this_month"
)

const sqlDate = "2006-01-02"

// ParseDateFilter maps a query string value onto a DateFilter.  Empty and
// unknown values mean no date narrowing.
func ParseDateFilter(s string) DateFilter {
	switch f := DateFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case DateFilterUpcoming, DateFilterPast, DateFilterThisWeek, DateFilterThisMonth:
		return f
	}
	return DateFilterAll
}

// MonthEnd returns the last calendar day of t's month.
func MonthEnd(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location())
}

// clause returns the SQL condition on e.date for the filter, or "" when the
// filter does not narrow.  Both ends of the week and month windows are
// inclusive.
func (f DateFilter) clause(today time.Time) (string, []any) {
	day := today.Format(sqlDate)
	switch f {
	case DateFilterUpcoming:
		return "e.date >= ?", []any{day}
	case DateFilterPast:
		return "e.date < ?", []any{day}
	case DateFilterThisWeek:
		return "e.date BETWEEN ? AND ?", []any{day, today.AddDate(0, 0, 7).Format(sqlDate)}
	case DateFilterThisMonth:
		return "e.date BETWEEN ? AND ?", []any{day, MonthEnd(today).Format(sqlDate)}
	}
	return "", nil
}
