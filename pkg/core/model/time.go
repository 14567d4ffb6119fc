package model

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ClockTime is a time of day on a shift's local clock, minute resolution
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" string into a ClockTime
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// MustParseClock parses an "HH:MM" string and panics on failure.
// Intended for constants and test fixtures.
func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes since midnight
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is earlier in the day than other
func (c ClockTime) Before(other ClockTime) bool {
	return c.Minutes() < other.Minutes()
}

// After reports whether c is later in the day than other
func (c ClockTime) After(other ClockTime) bool {
	return c.Minutes() > other.Minutes()
}

// SpanMinutes returns the length in minutes of the interval from start to
// end. An end at or before the start is treated as the following day, so
// 22:00-02:00 spans 240 minutes and never goes negative.
func SpanMinutes(start, end ClockTime) int {
	span := end.Minutes() - start.Minutes()
	if span <= 0 {
		span += minutesPerDay
	}
	return span
}

// NormalizedInterval returns [start, end) in minutes since midnight with
// overnight end times pushed past 1440. Used for overlap comparisons.
func NormalizedInterval(start, end ClockTime) (int, int) {
	s := start.Minutes()
	e := end.Minutes()
	if e <= s {
		e += minutesPerDay
	}
	return s, e
}

// IntervalsOverlap reports whether two same-date [start, end) shift
// intervals overlap, normalizing overnight end times first.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd ClockTime) bool {
	as, ae := NormalizedInterval(aStart, aEnd)
	bs, be := NormalizedInterval(bStart, bEnd)
	return as < be && bs < ae
}

// DateOnly truncates a timestamp to midnight UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsMonday reports whether the date falls on a Monday
func IsMonday(t time.Time) bool {
	return t.Weekday() == time.Monday
}

// WeekStart returns the Monday of the week containing the given date
func WeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

// WeekdayOffset returns the day offset from Monday for a weekday,
// so Monday=0 through Sunday=6.
func WeekdayOffset(day time.Weekday) int {
	return (int(day) + 6) % 7
}

// DateForWeekday returns the concrete date of the given weekday within the
// week beginning at weekStart (a Monday).
func DateForWeekday(weekStart time.Time, day time.Weekday) time.Time {
	return DateOnly(weekStart).AddDate(0, 0, WeekdayOffset(day))
}

// ParseDate parses a "2006-01-02" date string as midnight UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date as "2006-01-02"
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
