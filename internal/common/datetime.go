package common

import (
	"time"
)

// DateLayout
const (
	DateFormatYYYYMMDD            = "2006-01-02"
	DateFormatYYYYMM              = "2006-01"
	DateFormatYYYYMMDDWithoutDash = "20060102"
	DateFormatYYYYMMDDWithTime    = "2006-01-02 15:04:05"
)

// ParseStringToDatetime parses value using the given layout.
func ParseStringToDatetime(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, ErrInvalidFormatDate
	}
	return t, nil
}

// TruncateToDay drops the time-of-day portion in UTC. Effective dates and
// period boundaries are always whole calendar days.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole days from a (inclusive) to b (exclusive).
func DaysBetween(a, b time.Time) int {
	return int(TruncateToDay(b).Sub(TruncateToDay(a)).Hours() / 24)
}

// IsLeapYear reports whether year has a Feb 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the calendar day count of year.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the day count of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDayOfMonth clamps day to the last valid day of the month, so an
// anchor day of 31 lands on Feb 28/29, Apr 30 and so on.
func ClampDayOfMonth(year int, month time.Month, day int) int {
	if max := DaysInMonth(year, month); day > max {
		return max
	}
	return day
}
