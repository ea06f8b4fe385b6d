package schedule

import (
	"testing"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestExpand_Single(t *testing.T) {
	e := NewExpander(0)

	slots, err := e.Expand(&domain.BookingRequest{
		Mode:      domain.BookingModeSingle,
		Date:      date(t, "2026-10-20"),
		StartTime: domain.NewTimeOfDay(7, 0),
		EndTime:   domain.NewTimeOfDay(8, 0),
	})

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, date(t, "2026-10-20"), slots[0].Date)
	assert.Equal(t, 3, slots[0].Weekday())
}

func TestExpand_Recurring(t *testing.T) {
	e := NewExpander(0)

	// 2026-10-19 is a Monday. Mondays (2) and Thursdays (5) for two weeks.
	req := &domain.BookingRequest{
		Mode:      domain.BookingModeRecurring,
		StartDate: date(t, "2026-10-19"),
		EndDate:   date(t, "2026-11-01"),
		Weekdays:  domain.WeekdaySet{5, 2, 5},
		StartTime: domain.NewTimeOfDay(18, 0),
		EndTime:   domain.NewTimeOfDay(20, 0),
	}

	slots, err := e.Expand(req)

	require.NoError(t, err)
	got := make([]string, 0, len(slots))
	for _, s := range slots {
		got = append(got, s.Date.Format(domain.DateLayout))
		assert.Equal(t, domain.NewTimeOfDay(18, 0), s.StartTime)
		assert.Equal(t, domain.NewTimeOfDay(20, 0), s.EndTime)
	}
	assert.Equal(t, []string{"2026-10-19", "2026-10-22", "2026-10-26", "2026-10-29"}, got)
}

func TestExpand_RecurringIsIdempotent(t *testing.T) {
	e := NewExpander(0)
	req := &domain.BookingRequest{
		Mode:      domain.BookingModeRecurring,
		StartDate: date(t, "2026-10-01"),
		EndDate:   date(t, "2026-12-31"),
		Weekdays:  domain.WeekdaySet{3, 7, 8},
		StartTime: domain.NewTimeOfDay(6, 30),
		EndTime:   domain.NewTimeOfDay(8, 0),
	}

	first, err := e.Expand(req)
	require.NoError(t, err)
	second, err := e.Expand(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	seen := make(map[time.Time]bool)
	for _, s := range first {
		assert.False(t, seen[s.Date], "duplicate date %s", s.Date)
		seen[s.Date] = true
	}
}

func TestExpand_SundayCode(t *testing.T) {
	e := NewExpander(0)

	slots, err := e.Expand(&domain.BookingRequest{
		Mode:      domain.BookingModeRecurring,
		StartDate: date(t, "2026-10-19"),
		EndDate:   date(t, "2026-10-25"),
		Weekdays:  domain.WeekdaySet{8},
		StartTime: domain.NewTimeOfDay(9, 0),
		EndTime:   domain.NewTimeOfDay(10, 0),
	})

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, time.Sunday, slots[0].Date.Weekday())
}

func TestExpand_Validation(t *testing.T) {
	e := NewExpander(30)
	base := domain.BookingRequest{
		Mode:      domain.BookingModeRecurring,
		StartDate: date(t, "2026-10-19"),
		EndDate:   date(t, "2026-10-25"),
		Weekdays:  domain.WeekdaySet{2},
		StartTime: domain.NewTimeOfDay(9, 0),
		EndTime:   domain.NewTimeOfDay(10, 0),
	}

	tests := []struct {
		name   string
		mutate func(r *domain.BookingRequest)
	}{
		{"end before start time", func(r *domain.BookingRequest) { r.EndTime = domain.NewTimeOfDay(8, 0) }},
		{"zero length", func(r *domain.BookingRequest) { r.EndTime = r.StartTime }},
		{"weekday out of range", func(r *domain.BookingRequest) { r.Weekdays = domain.WeekdaySet{1} }},
		{"no weekdays", func(r *domain.BookingRequest) { r.Weekdays = nil }},
		{"end date before start date", func(r *domain.BookingRequest) { r.EndDate = date(t, "2026-10-01") }},
		{"range too long", func(r *domain.BookingRequest) { r.EndDate = date(t, "2027-10-01") }},
		{"no matching dates", func(r *domain.BookingRequest) {
			r.EndDate = date(t, "2026-10-20")
			r.Weekdays = domain.WeekdaySet{6}
		}},
		{"unknown mode", func(r *domain.BookingRequest) { r.Mode = "weekly" }},
		{"single without date", func(r *domain.BookingRequest) { r.Mode = domain.BookingModeSingle }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			_, err := e.Expand(&req)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
