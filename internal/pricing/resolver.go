// Package pricing resolves court prices from time-of-day and day-of-week rate rules.
package pricing

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

const minutesPerHour = 60

// Resolve prices the interval [start, end) on the given weekday code.
//
// Rules are walked in priority order (lower first). At each cursor the first rule
// covering the minute wins and is charged until its end, the requested end, or the
// start of another rule that would take precedence, whichever comes first.
// Amounts are kept as price-per-hour × minutes and divided once at the end.
func Resolve(rules []domain.PricingRule, weekday int, start, end domain.TimeOfDay) (*domain.PriceBreakdown, error) {
	if !start.Valid() || !end.Valid() {
		return nil, fmt.Errorf("%w: time of day out of range", domain.ErrValidation)
	}
	if start > end {
		return nil, fmt.Errorf("%w: start %s is after end %s", domain.ErrValidation, start, end)
	}

	res := &domain.PriceBreakdown{}
	if start == end {
		return res, nil
	}

	ordered := applicable(rules, weekday)

	var numerator int64
	cursor := start
	for cursor < end {
		idx := slices.IndexFunc(ordered, func(r domain.PricingRule) bool {
			return r.StartTime <= cursor && cursor < r.EndTime
		})
		if idx < 0 {
			return nil, &domain.RuleResolutionError{Weekday: weekday, At: cursor}
		}
		winner := ordered[idx]

		for _, r := range ordered[idx+1:] {
			if r.Priority != winner.Priority {
				break
			}
			if r.StartTime <= cursor && cursor < r.EndTime {
				return nil, &domain.AmbiguousRuleError{
					RuleIDs:  [2]string{winner.ID, r.ID},
					Priority: winner.Priority,
					At:       cursor,
				}
			}
		}

		next := min(winner.EndTime, end)
		for i, r := range ordered {
			if r.Priority > winner.Priority {
				break
			}
			if i != idx && r.StartTime > cursor && r.StartTime < next {
				next = r.StartTime
			}
		}

		part := winner.PricePerHour * int64(next-cursor)
		numerator += part
		res.Segments = append(res.Segments, domain.PriceSegment{
			RuleID:    winner.ID,
			From:      cursor,
			To:        next,
			Numerator: part,
		})
		cursor = next
	}

	res.Total = divRound(numerator, minutesPerHour)
	return res, nil
}

// applicable returns the rules matching weekday, stably sorted by priority.
func applicable(rules []domain.PricingRule, weekday int) []domain.PricingRule {
	out := make([]domain.PricingRule, 0, len(rules))
	for _, r := range rules {
		if r.Weekdays.Contains(weekday) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.PricingRule) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return out
}

// ValidateRules checks each rule on its own and rejects equal-priority overlaps on a shared weekday.
func ValidateRules(rules []domain.PricingRule) error {
	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return err
		}
	}
	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			a, b := &rules[i], &rules[j]
			if a.Priority != b.Priority || !sharesWeekday(a.Weekdays, b.Weekdays) {
				continue
			}
			if a.StartTime < b.EndTime && b.StartTime < a.EndTime {
				return &domain.AmbiguousRuleError{
					RuleIDs:  [2]string{a.ID, b.ID},
					Priority: a.Priority,
					At:       max(a.StartTime, b.StartTime),
				}
			}
		}
	}
	return nil
}

func sharesWeekday(a, b domain.WeekdaySet) bool {
	if a.Any() || b.Any() {
		return true
	}
	for _, c := range a {
		if b.Contains(c) {
			return true
		}
	}
	return false
}

func divRound(n, d int64) int64 {
	if n < 0 {
		return -divRound(-n, d)
	}
	return (n + d/2) / d
}
