// Package dateutil provides date parsing and week-key utilities.
package dateutil

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

// WeekKeyLayout is the serialization format for week start dates.
const WeekKeyLayout = "2006-01-02"

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date truncated to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(WeekKeyLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t as midnight UTC of the same calendar day.
// Pinning to UTC keeps week keys stable across DST boundaries.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Sunday of the week containing t, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	day := TruncateToDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekEnd returns the Saturday of the week starting at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// WeekKey serializes a week start date as its persistence key, YYYY-MM-DD.
func WeekKey(weekStart time.Time) string {
	return weekStart.Format(WeekKeyLayout)
}

// ParseWeekKey parses a week key and normalizes it to the Sunday of its week.
func ParseWeekKey(s string) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return WeekStart(t), nil
}

// FormatWeekRange renders a week span for display, e.g. "Jan 5 - Jan 11, 2026".
func FormatWeekRange(weekStart time.Time) string {
	end := WeekEnd(weekStart)
	return weekStart.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}
