package domain

import "time"

// DateLayout is the wire and storage format of a puzzle date
const DateLayout = "2006-01-02"

// Epoch is day zero of puzzle numbering
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateOf returns the UTC calendar date of t at midnight
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EpochDay returns the number of whole days between Epoch and the date of t.
// Dates before Epoch yield negative values.
func EpochDay(t time.Time) int64 {
	return DaysBetween(Epoch, t)
}

// DaysBetween returns the number of calendar days from a to b
func DaysBetween(a, b time.Time) int64 {
	return int64(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// DateString returns date in YYYY-MM-DD format
func DateString(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}
