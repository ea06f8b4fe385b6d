package dto

import (
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

type BookingResponse struct {
	ID             string  `json:"id"`
	CourtID        string  `json:"court_id"`
	UserID         string  `json:"user_id,omitempty"`
	Mode           string  `json:"mode"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Weekdays       []int   `json:"weekdays,omitempty"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Note           string  `json:"note,omitempty"`
	PaymentPlan    string  `json:"payment_plan"`
	VoucherID      *string `json:"voucher_id,omitempty"`
	TotalAmount    int64   `json:"total_amount"`
	DiscountAmount int64   `json:"discount_amount"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

type OccurrenceResponse struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	CourtID     string  `json:"court_id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Amount      int64   `json:"amount"`
	Status      string  `json:"status"`
	Note        string  `json:"note,omitempty"`
	CheckedInAt *string `json:"checked_in_at,omitempty"`
}

type PaymentResponse struct {
	ID           string  `json:"id"`
	BookingID    string  `json:"booking_id"`
	OccurrenceID *string `json:"occurrence_id,omitempty"`
	Amount       int64   `json:"amount"`
	Plan         string  `json:"plan"`
	Status       string  `json:"status"`
	ExpiresAtUTC string  `json:"expires_at_utc"`
	PaidAt       *string `json:"paid_at,omitempty"`
	QRPayload    string  `json:"qr_payload"`
}

type BookingResultResponse struct {
	Booking     BookingResponse      `json:"booking"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
	Payment     PaymentResponse      `json:"payment"`
}

type BookingDetailsResponse struct {
	Booking     BookingResponse      `json:"booking"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
	Payments    []PaymentResponse    `json:"payments"`
}

type CancellationResponse struct {
	Booking       BookingResponse `json:"booking"`
	OccurrenceIDs []string        `json:"occurrence_ids"`
	PaymentIDs    []string        `json:"payment_ids"`
	Changed       bool            `json:"changed"`
}

type PaymentOutcomeResponse struct {
	Payment       PaymentResponse `json:"payment"`
	OccurrenceIDs []string        `json:"occurrence_ids"`
	Changed       bool            `json:"changed"`
}

type QuoteLineResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Amount    int64  `json:"amount"`
}

type QuoteResponse struct {
	TotalAmount    int64               `json:"total_amount"`
	DiscountAmount int64               `json:"discount_amount"`
	PayableAmount  int64               `json:"payable_amount"`
	HoldAmount     int64               `json:"hold_amount"`
	Occurrences    []QuoteLineResponse `json:"occurrences"`
}

type PricingRuleResponse struct {
	ID           string `json:"id"`
	CourtID      string `json:"court_id"`
	Weekdays     []int  `json:"weekdays,omitempty"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	PricePerHour int64  `json:"price_per_hour"`
	Priority     int    `json:"priority"`
}

type VoucherResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	DiscountType  string `json:"discount_type"`
	DiscountValue int64  `json:"discount_value"`
	MaxDiscount   int64  `json:"max_discount,omitempty"`
	MinOrderTotal int64  `json:"min_order_total,omitempty"`
	ValidFrom     string `json:"valid_from,omitempty"`
	ValidTo       string `json:"valid_to,omitempty"`
	UsageLimit    int    `json:"usage_limit,omitempty"`
	PerUserLimit  int    `json:"per_user_limit,omitempty"`
	UsedCount     int    `json:"used_count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	// Conflict is the occurrence holding the requested slot.
	Conflict *OccurrenceResponse `json:"conflict,omitempty"`
	// Reason explains a rejected voucher.
	Reason string `json:"reason,omitempty"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func formatOptional(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return formatTime(t)
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		CourtID:        b.CourtID,
		UserID:         b.UserID,
		Mode:           string(b.Mode),
		StartDate:      b.StartDate.Format(domain.DateLayout),
		EndDate:        b.EndDate.Format(domain.DateLayout),
		Weekdays:       b.Weekdays,
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Note:           b.Note,
		PaymentPlan:    string(b.PaymentPlan),
		VoucherID:      b.VoucherID,
		TotalAmount:    b.TotalAmount,
		DiscountAmount: b.DiscountAmount,
		Status:         string(b.Status),
		CreatedAt:      formatTime(b.CreatedAt),
	}
}

func ToOccurrenceResponse(o *domain.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		ID:          o.ID,
		BookingID:   o.BookingID,
		CourtID:     o.CourtID,
		Date:        o.Date.Format(domain.DateLayout),
		StartTime:   o.StartTime.String(),
		EndTime:     o.EndTime.String(),
		Amount:      o.Amount,
		Status:      string(o.Status),
		Note:        o.Note,
		CheckedInAt: formatTimePtr(o.CheckedInAt),
	}
}

func ToOccurrenceResponses(occs []*domain.Occurrence) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(occs))
	for _, o := range occs {
		out = append(out, ToOccurrenceResponse(o))
	}
	return out
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		BookingID:    p.BookingID,
		OccurrenceID: p.OccurrenceID,
		Amount:       p.Amount,
		Plan:         string(p.Plan),
		Status:       string(p.Status),
		ExpiresAtUTC: formatTime(p.ExpiresAtUTC),
		PaidAt:       formatTimePtr(p.PaidAt),
		QRPayload:    p.QRPayload,
	}
}

func ToBookingResultResponse(r *domain.BookingResult) BookingResultResponse {
	return BookingResultResponse{
		Booking:     ToBookingResponse(r.Booking),
		Occurrences: ToOccurrenceResponses(r.Occurrences),
		Payment:     ToPaymentResponse(r.Payment),
	}
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	resp := BookingDetailsResponse{
		Booking:     ToBookingResponse(&d.Booking),
		Occurrences: make([]OccurrenceResponse, 0, len(d.Occurrences)),
		Payments:    make([]PaymentResponse, 0, len(d.Payments)),
	}
	for i := range d.Occurrences {
		resp.Occurrences = append(resp.Occurrences, ToOccurrenceResponse(&d.Occurrences[i]))
	}
	for i := range d.Payments {
		resp.Payments = append(resp.Payments, ToPaymentResponse(&d.Payments[i]))
	}
	return resp
}

func ToCancellationResponse(c *domain.BookingCancellation) CancellationResponse {
	return CancellationResponse{
		Booking:       ToBookingResponse(c.Booking),
		OccurrenceIDs: nonNil(c.OccurrenceIDs),
		PaymentIDs:    nonNil(c.PaymentIDs),
		Changed:       c.Changed,
	}
}

func ToPaymentOutcomeResponse(o *domain.PaymentOutcome) PaymentOutcomeResponse {
	return PaymentOutcomeResponse{
		Payment:       ToPaymentResponse(o.Payment),
		OccurrenceIDs: nonNil(o.OccurrenceIDs),
		Changed:       o.Changed,
	}
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	resp := QuoteResponse{
		TotalAmount:    q.TotalAmount,
		DiscountAmount: q.DiscountAmount,
		PayableAmount:  q.PayableAmount,
		HoldAmount:     q.HoldAmount,
		Occurrences:    make([]QuoteLineResponse, 0, len(q.Occurrences)),
	}
	for _, l := range q.Occurrences {
		resp.Occurrences = append(resp.Occurrences, QuoteLineResponse{
			Date:      l.Date.Format(domain.DateLayout),
			StartTime: l.StartTime.String(),
			EndTime:   l.EndTime.String(),
			Amount:    l.Amount,
		})
	}
	return resp
}

func ToPricingRuleResponses(rules []domain.PricingRule) []PricingRuleResponse {
	out := make([]PricingRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, PricingRuleResponse{
			ID:           r.ID,
			CourtID:      r.CourtID,
			Weekdays:     r.Weekdays,
			StartTime:    r.StartTime.String(),
			EndTime:      r.EndTime.String(),
			PricePerHour: r.PricePerHour,
			Priority:     r.Priority,
		})
	}
	return out
}

func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		ID:            v.ID,
		Code:          v.Code,
		DiscountType:  string(v.DiscountType),
		DiscountValue: v.DiscountValue,
		MaxDiscount:   v.MaxDiscount,
		MinOrderTotal: v.MinOrderTotal,
		ValidFrom:     formatOptional(v.ValidFrom),
		ValidTo:       formatOptional(v.ValidTo),
		UsageLimit:    v.UsageLimit,
		PerUserLimit:  v.PerUserLimit,
		UsedCount:     v.UsedCount,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
