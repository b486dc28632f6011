package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date format used everywhere a
// date crosses a boundary: storage, JSON, query parameters.
const DateLayout = "2006-01-02"

// Date is a calendar date ("2026-08-28") with no time-of-day component.
// Keeping it a plain string type means bson/json marshal it as-is and
// lexicographic ordering equals chronological ordering.
type Date string

// ParseDate validates s against DateLayout.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date(s), nil
}

// DateOf truncates t to a calendar date in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// DateAtOffset computes the calendar date for an instant as seen by a
// caller offsetMinutes east of UTC. The offset is applied before
// truncation; truncating naively in UTC puts late-evening callers on
// the wrong day.
func DateAtOffset(t time.Time, offsetMinutes int) Date {
	return DateOf(t.UTC().Add(time.Duration(offsetMinutes) * time.Minute))
}

func (d Date) String() string { return string(d) }

// Time returns midnight UTC of the date. Invalid dates return the zero
// time; all Dates built through ParseDate/DateOf are valid.
func (d Date) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the date n days later (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DaysSince returns the number of calendar days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.Time().Sub(other.Time()).Hours() / 24)
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Time().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
