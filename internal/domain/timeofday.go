package domain

import (
	"fmt"
	"slices"
	"time"
)

const (
	MinutesPerDay = 24 * 60

	DateLayout = "2006-01-02"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// 24:00 is allowed as an end bound.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || len(s) != 5 {
		return 0, fmt.Errorf("%w: invalid time of day %q, expected HH:MM", ErrValidation, s)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: time of day %q out of range", ErrValidation, s)
	}
	return NewTimeOfDay(h, m), nil
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= MinutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On returns the instant at which this time of day falls on date in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, mo, d := date.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, loc).Add(time.Duration(t) * time.Minute)
}

// Weekday codes: 2 = Monday ... 8 = Sunday.
const (
	WeekdayMonday = 2
	WeekdaySunday = 8
)

func WeekdayCode(date time.Time) int {
	if date.Weekday() == time.Sunday {
		return WeekdaySunday
	}
	return int(date.Weekday()) + 1
}

func ValidWeekdayCode(code int) bool {
	return code >= WeekdayMonday && code <= WeekdaySunday
}

// WeekdaySet is a set of weekday codes. An empty set matches any day.
type WeekdaySet []int

func (s WeekdaySet) Any() bool {
	return len(s) == 0
}

func (s WeekdaySet) Contains(code int) bool {
	return s.Any() || slices.Contains(s, code)
}

// Normalize returns a sorted copy without duplicates.
func (s WeekdaySet) Normalize() WeekdaySet {
	out := slices.Clone(s)
	slices.Sort(out)
	return slices.Compact(out)
}

func (s WeekdaySet) Validate() error {
	for _, c := range s {
		if !ValidWeekdayCode(c) {
			return fmt.Errorf("%w: weekday code %d out of range 2..8", ErrValidation, c)
		}
	}
	return nil
}

// ParseDate parses a calendar date and returns midnight UTC of that date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return d, nil
}

// DateOf truncates t to its calendar date, as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
