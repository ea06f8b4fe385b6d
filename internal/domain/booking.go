package domain

import "time"

type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "pending_payment"
	BookingStatusActive         BookingStatus = "active"
	BookingStatusCompleted      BookingStatus = "completed"
	BookingStatusCancelled      BookingStatus = "cancelled"
)

type BookingMode string

const (
	BookingModeSingle    BookingMode = "single"
	BookingModeRecurring BookingMode = "recurring"
)

type PaymentPlan string

const (
	PaymentPlanFull    PaymentPlan = "full"
	PaymentPlanDeposit PaymentPlan = "deposit"
)

type Booking struct {
	ID             string        `json:"id"`
	CourtID        string        `json:"court_id"`
	UserID         string        `json:"user_id"`
	Mode           BookingMode   `json:"mode"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	Weekdays       WeekdaySet    `json:"weekdays,omitempty"`
	StartTime      TimeOfDay     `json:"start_time"`
	EndTime        TimeOfDay     `json:"end_time"`
	Note           string        `json:"note,omitempty"`
	PaymentPlan    PaymentPlan   `json:"payment_plan"`
	VoucherID      *string       `json:"voucher_id,omitempty"`
	TotalAmount    int64         `json:"total_amount"`
	DiscountAmount int64         `json:"discount_amount"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type BookingDetails struct {
	Booking     Booking      `json:"booking"`
	Occurrences []Occurrence `json:"occurrences"`
	Payments    []Payment    `json:"payments"`
}

// BookingRequest is the explicit draft passed through expansion, pricing and reservation.
type BookingRequest struct {
	CourtID     string
	UserID      string
	Mode        BookingMode
	Date        time.Time
	StartDate   time.Time
	EndDate     time.Time
	Weekdays    WeekdaySet
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	Note        string
	PaymentPlan PaymentPlan
	VoucherID   *string
	// ClientTotal is what the UI displayed. Advisory only.
	ClientTotal *int64
}

// Reservation is everything persisted atomically when a booking is created.
type Reservation struct {
	Booking     *Booking
	Occurrences []*Occurrence
	Payment     *Payment
	Usage       *VoucherUsage
}

type BookingResult struct {
	Booking     *Booking      `json:"booking"`
	Occurrences []*Occurrence `json:"occurrences"`
	Payment     *Payment      `json:"payment"`
}

type Quote struct {
	TotalAmount    int64             `json:"total_amount"`
	DiscountAmount int64             `json:"discount_amount"`
	PayableAmount  int64             `json:"payable_amount"`
	HoldAmount     int64             `json:"hold_amount"`
	Occurrences    []OccurrenceQuote `json:"occurrences"`
}

type OccurrenceQuote struct {
	Date      time.Time `json:"date"`
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	Amount    int64     `json:"amount"`
}

type BookingCancellation struct {
	Booking       *Booking `json:"booking"`
	OccurrenceIDs []string `json:"occurrence_ids"`
	PaymentIDs    []string `json:"payment_ids"`
	// Changed is false when the booking was already cancelled.
	Changed bool `json:"changed"`
}
