package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	bookingColumns = `id, court_id, user_id, mode, start_date, end_date, weekdays, start_minute, end_minute,
		note, payment_plan, voucher_id, total_amount, discount_amount, status, created_at, updated_at`

	occurrenceColumns = `id, booking_id, court_id, date, start_minute, end_minute, amount,
		status, note, checked_in_at, created_at, updated_at`

	paymentColumns = `id, booking_id, occurrence_id, amount, plan, status, expires_at_utc,
		paid_at, qr_payload, created_at, updated_at`
)

// pgUniqueViolation and pgExclusionViolation are Postgres SQLSTATE codes.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		weekdays  []int64
		start     int
		end       int
		voucherID sql.NullString
	)
	if err := s.Scan(
		&b.ID, &b.CourtID, &b.UserID, &b.Mode, &b.StartDate, &b.EndDate, pq.Array(&weekdays),
		&start, &end, &b.Note, &b.PaymentPlan, &voucherID, &b.TotalAmount, &b.DiscountAmount,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.StartTime, b.EndTime = domain.TimeOfDay(start), domain.TimeOfDay(end)
	b.Weekdays = toWeekdays(weekdays)
	if voucherID.Valid {
		b.VoucherID = &voucherID.String
	}
	return &b, nil
}

func scanOccurrence(s scanner) (*domain.Occurrence, error) {
	var (
		o           domain.Occurrence
		start       int
		end         int
		checkedInAt sql.NullTime
	)
	if err := s.Scan(
		&o.ID, &o.BookingID, &o.CourtID, &o.Date, &start, &end, &o.Amount,
		&o.Status, &o.Note, &checkedInAt, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.StartTime, o.EndTime = domain.TimeOfDay(start), domain.TimeOfDay(end)
	if checkedInAt.Valid {
		o.CheckedInAt = &checkedInAt.Time
	}
	return &o, nil
}

func scanPayment(s scanner) (*domain.Payment, error) {
	var (
		p            domain.Payment
		occurrenceID sql.NullString
		paidAt       sql.NullTime
	)
	if err := s.Scan(
		&p.ID, &p.BookingID, &occurrenceID, &p.Amount, &p.Plan, &p.Status, &p.ExpiresAtUTC,
		&paidAt, &p.QRPayload, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if occurrenceID.Valid {
		p.OccurrenceID = &occurrenceID.String
	}
	if paidAt.Valid {
		p.PaidAt = &paidAt.Time
	}
	return &p, nil
}

func scanOccurrences(rows *sql.Rows) ([]*domain.Occurrence, error) {
	defer rows.Close()

	var res []*domain.Occurrence
	for rows.Next() {
		o, err := scanOccurrence(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func scanIDs(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func toWeekdays(codes []int64) domain.WeekdaySet {
	if len(codes) == 0 {
		return nil
	}
	out := make(domain.WeekdaySet, len(codes))
	for i, c := range codes {
		out[i] = int(c)
	}
	return out
}

func fromWeekdays(set domain.WeekdaySet) []int64 {
	out := make([]int64, len(set))
	for i, c := range set {
		out[i] = int64(c)
	}
	return out
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullZeroTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func dateStrings(occurrences []*domain.Occurrence) (dates []string, starts, ends []int64) {
	for _, o := range occurrences {
		dates = append(dates, o.Date.Format(domain.DateLayout))
		starts = append(starts, int64(o.StartTime))
		ends = append(ends, int64(o.EndTime))
	}
	return dates, starts, ends
}

// prefixed qualifies every column of a column list with alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, c := range parts {
		parts[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(parts, ", ")
}
