package domain

import "fmt"

type PricingRule struct {
	ID           string     `json:"id"`
	CourtID      string     `json:"court_id"`
	Weekdays     WeekdaySet `json:"weekdays,omitempty"`
	StartTime    TimeOfDay  `json:"start_time"`
	EndTime      TimeOfDay  `json:"end_time"`
	PricePerHour int64      `json:"price_per_hour"`
	Priority     int        `json:"priority"`
}

func (r *PricingRule) Covers(weekday int, at TimeOfDay) bool {
	return r.Weekdays.Contains(weekday) && r.StartTime <= at && at < r.EndTime
}

func (r *PricingRule) Validate() error {
	if !r.StartTime.Valid() || !r.EndTime.Valid() || r.StartTime >= r.EndTime {
		return fmt.Errorf("%w: rule %s: start must be before end", ErrValidation, r.ID)
	}
	if r.PricePerHour < 0 {
		return fmt.Errorf("%w: rule %s: price per hour must not be negative", ErrValidation, r.ID)
	}
	return r.Weekdays.Validate()
}

type PriceSegment struct {
	RuleID string    `json:"rule_id"`
	From   TimeOfDay `json:"from"`
	To     TimeOfDay `json:"to"`
	// Numerator is price per hour times minutes; divide by 60 for money.
	Numerator int64 `json:"-"`
}

type PriceBreakdown struct {
	Total    int64          `json:"total"`
	Segments []PriceSegment `json:"segments"`
}
