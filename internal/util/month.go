package util

import "time"

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// MonthLayout is accepted for month-only values
const MonthLayout = "2006-01"

// DateOf returns the calendar date of t, in t's own location, as UTC midnight.
// Calendar dates are compared and stored in this form.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FirstOfMonth returns the first day of t's month as UTC midnight
func FirstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// MonthToDate returns the inclusive range from the first of today's month to today
func MonthToDate(today time.Time) (time.Time, time.Time) {
	return FirstOfMonth(today), DateOf(today)
}

// TrailingDays returns the inclusive range [today - days, today]
func TrailingDays(today time.Time, days int) (time.Time, time.Time) {
	end := DateOf(today)
	return end.AddDate(0, 0, -days), end
}

// MonthLabel formats the month of t like "October 2026"
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseMonth parses YYYY-MM-DD or YYYY-MM and normalizes the result to the first of the month
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		var monthErr error
		t, monthErr = time.Parse(MonthLayout, s)
		if monthErr != nil {
			return time.Time{}, err
		}
	}
	return FirstOfMonth(t), nil
}
