package timeutil

import "time"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func EndOfMonth(value time.Time) time.Time {
	first := time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
	return first.AddDate(0, 1, -1)
}
