package domain

import "time"

type EventName string

const (
	EventBookingCreated    EventName = "bookingCreated"
	EventBookingUpdated    EventName = "bookingUpdated"
	EventBookingCancelled  EventName = "bookingCancelled"
	EventPaymentCreated    EventName = "paymentCreated"
	EventPaymentUpdated    EventName = "paymentUpdated"
	EventBookingsExpired   EventName = "bookingsExpired"
	EventPaymentsCancelled EventName = "paymentsCancelled"
)

// Event carries only identifiers. Listeners re-fetch state.
type Event struct {
	Name          EventName `json:"name"`
	CourtID       string    `json:"court_id,omitempty"`
	BookingIDs    []string  `json:"booking_ids,omitempty"`
	OccurrenceIDs []string  `json:"occurrence_ids,omitempty"`
	PaymentIDs    []string  `json:"payment_ids,omitempty"`
	At            time.Time `json:"at"`
}
