package maintenance

import (
	"strings"
	"time"
)

// Status buckets for a device's next maintenance date
const (
	StatusNoDate   = "no_date"
	StatusOverdue  = "overdue"
	StatusDueToday = "due_today"
	StatusDueSoon  = "due_soon"
	StatusNotDue   = "not_due"
)

// DateLayout is the calendar-date format used for all maintenance dates
const DateLayout = "2006-01-02"

const (
	MinWindowDays = 1
	MaxWindowDays = 365
	MinLimit      = 1
	MaxLimit      = 50
)

// Today truncates a timestamp to a UTC calendar date. All classification
// works on date-only values so that SQL dates and computed dates can never
// disagree across timezone or DST boundaries.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a stored maintenance date. Returns false for empty,
// whitespace-only or malformed values, which all classify as no_date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Classify buckets a device by its next maintenance date. The second return
// value is the signed days-overdue: positive when past due, negative when the
// date is still ahead, zero for due_today and no_date.
//
// The due_soon upper bound (today + days) is inclusive.
func Classify(next string, today time.Time, days int) (string, int) {
	date, ok := ParseDate(next)
	if !ok {
		return StatusNoDate, 0
	}

	days = ClampDays(days)
	today = Today(today)
	overdueBy := int(today.Sub(date) / (24 * time.Hour))

	switch {
	case date.Before(today):
		return StatusOverdue, overdueBy
	case date.Equal(today):
		return StatusDueToday, 0
	case !date.After(today.AddDate(0, 0, days)):
		return StatusDueSoon, overdueBy
	default:
		return StatusNotDue, overdueBy
	}
}

// StatusRank gives the display ordering of the due buckets: overdue first,
// then due today, due soon, and finally devices with no recorded date.
func StatusRank(status string) int {
	switch status {
	case StatusOverdue:
		return 0
	case StatusDueToday:
		return 1
	case StatusDueSoon:
		return 2
	case StatusNoDate:
		return 3
	default:
		return 4
	}
}

// ValidStatusFilter reports whether a caller-supplied status filter names one
// of the four listable buckets.
func ValidStatusFilter(status string) bool {
	switch status {
	case StatusOverdue, StatusDueToday, StatusDueSoon, StatusNoDate:
		return true
	}
	return false
}

// ClampDays bounds the lookahead window to [1, 365]. Out-of-range values are
// silently clamped, never rejected.
func ClampDays(days int) int {
	if days < MinWindowDays {
		return MinWindowDays
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}

// ClampLimit bounds a page size to [1, 50].
func ClampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ClampOffset bounds an offset to be non-negative.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
