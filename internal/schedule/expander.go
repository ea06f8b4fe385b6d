// Package schedule expands booking requests into concrete court slots.
package schedule

import (
	"fmt"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

const DefaultMaxRangeDays = 366

// Slot is one concrete (date, start, end) window produced by expansion.
type Slot struct {
	Date      time.Time
	StartTime domain.TimeOfDay
	EndTime   domain.TimeOfDay
}

func (s Slot) Weekday() int {
	return domain.WeekdayCode(s.Date)
}

type Expander struct {
	maxRangeDays int
}

func NewExpander(maxRangeDays int) *Expander {
	if maxRangeDays <= 0 {
		maxRangeDays = DefaultMaxRangeDays
	}
	return &Expander{maxRangeDays: maxRangeDays}
}

// Expand returns the slots for req in ascending date order. The result depends only on req.
func (e *Expander) Expand(req *domain.BookingRequest) ([]Slot, error) {
	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	switch req.Mode {
	case domain.BookingModeSingle:
		if req.Date.IsZero() {
			return nil, fmt.Errorf("%w: date is required for single bookings", domain.ErrValidation)
		}
		return []Slot{{Date: domain.DateOf(req.Date), StartTime: req.StartTime, EndTime: req.EndTime}}, nil

	case domain.BookingModeRecurring:
		return e.expandRecurring(req)

	default:
		return nil, fmt.Errorf("%w: unknown booking mode %q", domain.ErrValidation, req.Mode)
	}
}

func (e *Expander) expandRecurring(req *domain.BookingRequest) ([]Slot, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required for recurring bookings", domain.ErrValidation)
	}
	if len(req.Weekdays) == 0 {
		return nil, fmt.Errorf("%w: at least one weekday is required for recurring bookings", domain.ErrValidation)
	}
	if err := req.Weekdays.Validate(); err != nil {
		return nil, err
	}

	from, to := domain.DateOf(req.StartDate), domain.DateOf(req.EndDate)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end_date is before start_date", domain.ErrValidation)
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > e.maxRangeDays {
		return nil, fmt.Errorf("%w: date range of %d days exceeds the limit of %d", domain.ErrValidation, days, e.maxRangeDays)
	}

	weekdays := req.Weekdays.Normalize()
	var slots []Slot
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !weekdays.Contains(domain.WeekdayCode(d)) {
			continue
		}
		slots = append(slots, Slot{Date: d, StartTime: req.StartTime, EndTime: req.EndTime})
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: no selected weekday falls within the date range", domain.ErrValidation)
	}
	return slots, nil
}

func validateTimes(start, end domain.TimeOfDay) error {
	if !start.Valid() || !end.Valid() {
		return fmt.Errorf("%w: time of day out of range", domain.ErrValidation)
	}
	if start >= end {
		return fmt.Errorf("%w: start_time must be before end_time", domain.ErrValidation)
	}
	return nil
}
