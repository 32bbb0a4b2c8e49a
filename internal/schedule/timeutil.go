package schedule

import (
	"fmt"
	"time"
)

const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

var dateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseDateTime reads a wall-clock timestamp. Offsets are dropped: stored
// times carry no zone and are handled as UTC.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return naive(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q, expected %s", s, DateTimeLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected %s", s, DateLayout)
	}
	return t, nil
}

func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange is the half-open range [day 00:00, next day 00:00).
func DayRange(day time.Time) (time.Time, time.Time) {
	from := startOfDay(day)
	return from, from.AddDate(0, 0, 1)
}

// WeekRange is the Monday-based week containing day.
func WeekRange(day time.Time) (time.Time, time.Time) {
	d := startOfDay(day)
	offset := (int(d.Weekday()) + 6) % 7
	from := d.AddDate(0, 0, -offset)
	return from, from.AddDate(0, 0, 7)
}

func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// WallClock returns a clock reading the current time in loc as a naive
// timestamp, comparable with stored schedule times.
func WallClock(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time {
		return naive(time.Now().In(loc))
	}
}
