package model

import "time"

// DateLayout is the canonical calendar-date format used in map keys and DSLs.
const DateLayout = "2006-01-02"

// DateOf strips the time-of-day component, keeping only the calendar date.
// The result is always midnight UTC so that two timestamps on the same wall
// date compare equal regardless of their original zone offsets.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// FormatDate renders the date portion of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a date-only time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
