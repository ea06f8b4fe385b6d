package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPendingPayment PaymentStatus = "pending_payment"
	PaymentStatusPaid           PaymentStatus = "paid"
	PaymentStatusCancelled      PaymentStatus = "cancelled"
)

type Payment struct {
	ID           string        `json:"id"`
	BookingID    string        `json:"booking_id"`
	OccurrenceID *string       `json:"occurrence_id,omitempty"`
	Amount       int64         `json:"amount"`
	Plan         PaymentPlan   `json:"plan"`
	Status       PaymentStatus `json:"status"`
	ExpiresAtUTC time.Time     `json:"expires_at_utc"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
	QRPayload    string        `json:"qr_payload"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Payable reports whether the hold can still be paid at now.
func (p *Payment) Payable(now time.Time) bool {
	return p.Status == PaymentStatusPendingPayment && now.Before(p.ExpiresAtUTC)
}

// PaymentOutcome is returned by payment transitions.
type PaymentOutcome struct {
	Payment       *Payment `json:"payment"`
	OccurrenceIDs []string `json:"occurrence_ids"`
	// Changed is false when the call was a repeat of an already applied transition.
	Changed bool `json:"changed"`
}

// ExpiredBatch is the result of one sweep pass.
type ExpiredBatch struct {
	Payments      []*Payment
	BookingIDs    []string
	OccurrenceIDs []string
}

func (b *ExpiredBatch) Empty() bool {
	return b == nil || len(b.Payments) == 0
}

func (b *ExpiredBatch) PaymentIDs() []string {
	ids := make([]string, 0, len(b.Payments))
	for _, p := range b.Payments {
		ids = append(ids, p.ID)
	}
	return ids
}
