package domain

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates (date-only, no time,
// no timezone).
const DateFormat = "2006-01-02"

// Date truncates t to a calendar date: midnight UTC of the same
// year/month/day. All daily-log dates are stored and compared in this form.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a normalized calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date(t), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// DaysBetween returns the number of whole days from a to b.
// Negative when b is before a. Both arguments are normalized first, so
// time-of-day components never influence the result.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// maxRangeDays caps inclusive date ranges at one year: 366 inclusive days,
// which covers leap years.
const maxRangeDays = 365

// ValidateDateRange checks that start does not come after end and that the
// inclusive span stays within the one-year cap. Heatmap and log range
// queries share this bound.
func ValidateDateRange(start, end time.Time) error {
	start, end = Date(start), Date(end)
	if start.After(end) {
		return fmt.Errorf("start after end: %w", ErrInvalidDateRange)
	}
	if DaysBetween(start, end) > maxRangeDays {
		return fmt.Errorf("range exceeds one year: %w", ErrInvalidDateRange)
	}
	return nil
}
