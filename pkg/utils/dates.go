package utils

import "time"

const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "Jan 2, 2006"
)

// FormatDate returns "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayDateLayout)
}

// FormatDateRange collapses same-day ranges to a single date.
func FormatDateRange(start, end time.Time) string {
	if end.IsZero() || sameDay(start, end) {
		return FormatDate(start)
	}
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return start.Format("Jan 2") + "-" + end.Format("2, 2006")
	}
	return FormatDate(start) + " - " + FormatDate(end)
}

// ParseDate accepts DateLayout or RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// AgeOn returns completed years between birth and on. Birthdays on Feb 29
// count as reached on Mar 1 in non-leap years.
func AgeOn(birth, on time.Time) int {
	if birth.IsZero() || on.Before(birth) {
		return 0
	}
	age := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	return age
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
