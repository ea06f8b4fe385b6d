package domain

import (
	"slices"
	"time"
)

type OccurrenceStatus string

const (
	OccurrenceStatusPendingPayment OccurrenceStatus = "pending_payment"
	OccurrenceStatusActive         OccurrenceStatus = "active"
	OccurrenceStatusCheckedIn      OccurrenceStatus = "checked_in"
	OccurrenceStatusNoShow         OccurrenceStatus = "no_show"
	OccurrenceStatusCompleted      OccurrenceStatus = "completed"
	OccurrenceStatusCancelled      OccurrenceStatus = "cancelled"
)

// BlockingStatuses are the occurrence states that hold a court slot.
var BlockingStatuses = []OccurrenceStatus{
	OccurrenceStatusPendingPayment,
	OccurrenceStatusActive,
	OccurrenceStatusCheckedIn,
}

func (s OccurrenceStatus) Blocking() bool {
	return slices.Contains(BlockingStatuses, s)
}

type Occurrence struct {
	ID          string           `json:"id"`
	BookingID   string           `json:"booking_id"`
	CourtID     string           `json:"court_id"`
	Date        time.Time        `json:"date"`
	StartTime   TimeOfDay        `json:"start_time"`
	EndTime     TimeOfDay        `json:"end_time"`
	Amount      int64            `json:"amount"`
	Status      OccurrenceStatus `json:"status"`
	Note        string           `json:"note,omitempty"`
	CheckedInAt *time.Time       `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Overlaps reports whether o and other share a court, a date and part of their [start, end) windows.
func (o *Occurrence) Overlaps(other *Occurrence) bool {
	return o.CourtID == other.CourtID &&
		o.Date.Equal(other.Date) &&
		o.StartTime < other.EndTime &&
		other.StartTime < o.EndTime
}

func (o *Occurrence) StartsAt(loc *time.Location) time.Time {
	return o.StartTime.On(o.Date, loc)
}

func (o *Occurrence) EndsAt(loc *time.Location) time.Time {
	return o.EndTime.On(o.Date, loc)
}

type OccurrenceAction string

const (
	ActionCheckIn  OccurrenceAction = "check_in"
	ActionNoShow   OccurrenceAction = "no_show"
	ActionCancel   OccurrenceAction = "cancel"
	ActionComplete OccurrenceAction = "complete"
)

// StatusTransition is a compare-and-swap on an occurrence status.
type StatusTransition struct {
	ID   string
	From []OccurrenceStatus
	To   OccurrenceStatus
	Note string
	At   time.Time
}
