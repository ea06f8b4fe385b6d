package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Reserve(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Reservations of one court are serialized until the transaction ends.
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, res.Booking.CourtID); err != nil {
		return fmt.Errorf("lock court: %w", err)
	}

	dates, starts, ends := dateStrings(res.Occurrences)
	conflictQuery := `SELECT ` + prefixed("o", occurrenceColumns) + `
			  FROM occurrences o
			  JOIN unnest($2::date[], $3::int[], $4::int[]) AS c(date, start_minute, end_minute)
			    ON o.date = c.date
			   AND o.start_minute < c.end_minute
			   AND c.start_minute < o.end_minute
			  WHERE o.court_id = $1 AND o.status = ANY($5)
			  ORDER BY o.date, o.start_minute
			  LIMIT 1`
	blocking, err := scanOccurrence(tx.QueryRowContext(
		ctx, conflictQuery, res.Booking.CourtID,
		pq.Array(dates), pq.Array(starts), pq.Array(ends),
		pq.Array(domain.BlockingStatuses),
	))
	switch {
	case err == nil:
		return &domain.SlotConflictError{Blocking: *blocking}
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("find conflict: %w", err)
	}

	if res.Usage != nil {
		if err = redeemVoucher(ctx, tx, res.Usage); err != nil {
			return err
		}
	}

	b := res.Booking
	bookingQuery := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	if _, err = tx.ExecContext(
		ctx, bookingQuery, b.ID, b.CourtID, b.UserID, b.Mode,
		b.StartDate.Format(domain.DateLayout), b.EndDate.Format(domain.DateLayout),
		pq.Array(fromWeekdays(b.Weekdays)), int(b.StartTime), int(b.EndTime),
		b.Note, b.PaymentPlan, nullString(b.VoucherID), b.TotalAmount, b.DiscountAmount,
		b.Status, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	occurrenceQuery := `INSERT INTO occurrences (` + occurrenceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for _, o := range res.Occurrences {
		if _, err = tx.ExecContext(
			ctx, occurrenceQuery, o.ID, o.BookingID, o.CourtID, o.Date.Format(domain.DateLayout),
			int(o.StartTime), int(o.EndTime), o.Amount, o.Status, o.Note,
			nullTime(o.CheckedInAt), o.CreatedAt, o.UpdatedAt,
		); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
				return fmt.Errorf("%w: %s %s-%s", domain.ErrSlotConflict,
					o.Date.Format(domain.DateLayout), o.StartTime, o.EndTime)
			}
			return fmt.Errorf("insert occurrence: %w", err)
		}
	}

	p := res.Payment
	paymentQuery := `INSERT INTO payments (` + paymentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err = tx.ExecContext(
		ctx, paymentQuery, p.ID, p.BookingID, nullString(p.OccurrenceID), p.Amount, p.Plan,
		p.Status, p.ExpiresAtUTC, nullTime(p.PaidAt), p.QRPayload, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	if u := res.Usage; u != nil {
		usageQuery := `INSERT INTO voucher_usages (voucher_id, user_id, booking_id, used_at)
				  VALUES ($1, $2, $3, $4)`
		if _, err = tx.ExecContext(ctx, usageQuery, u.VoucherID, u.UserID, u.BookingID, u.UsedAt); err != nil {
			return fmt.Errorf("insert voucher usage: %w", err)
		}
	}

	return tx.Commit()
}

// redeemVoucher locks the voucher row and counts one more use.
func redeemVoucher(ctx context.Context, tx *sql.Tx, u *domain.VoucherUsage) error {
	var usageLimit, perUserLimit, usedCount int
	lockQuery := `SELECT usage_limit, per_user_limit, used_count FROM vouchers WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQuery, u.VoucherID).Scan(&usageLimit, &perUserLimit, &usedCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.VoucherError{VoucherID: u.VoucherID, Reason: domain.VoucherReasonUnknown}
		}
		return fmt.Errorf("lock voucher: %w", err)
	}

	if usageLimit > 0 && usedCount >= usageLimit {
		return &domain.VoucherError{VoucherID: u.VoucherID, Reason: domain.VoucherReasonUsageLimit}
	}

	if perUserLimit > 0 {
		var userUses int
		countQuery := `SELECT COUNT(*) FROM voucher_usages WHERE voucher_id = $1 AND user_id = $2`
		if err := tx.QueryRowContext(ctx, countQuery, u.VoucherID, u.UserID).Scan(&userUses); err != nil {
			return fmt.Errorf("count voucher usage: %w", err)
		}
		if userUses >= perUserLimit {
			return &domain.VoucherError{VoucherID: u.VoucherID, Reason: domain.VoucherReasonPerUserLimit}
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE vouchers SET used_count = used_count + 1 WHERE id = $1`, u.VoucherID); err != nil {
		return fmt.Errorf("increment voucher usage: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) ListBookingOccurrences(ctx context.Context, bookingID string) ([]*domain.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + `
              FROM occurrences
              WHERE booking_id = $1
              ORDER BY date, start_minute`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking occurrences: %w", err)
	}

	res, err := scanOccurrences(rows)
	if err != nil {
		return nil, fmt.Errorf("scan occurrence: %w", err)
	}
	return res, nil
}

func (r *BookingRepository) ListCourtOccurrences(ctx context.Context, courtID string, date time.Time) ([]*domain.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + `
              FROM occurrences
              WHERE court_id = $1 AND date = $2
              ORDER BY start_minute`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, courtID, date.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("list court occurrences: %w", err)
	}

	res, err := scanOccurrences(rows)
	if err != nil {
		return nil, fmt.Errorf("scan occurrence: %w", err)
	}
	return res, nil
}

func (r *BookingRepository) GetOccurrence(ctx context.Context, id string) (*domain.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + ` FROM occurrences WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get occurrence: %w", err)
	}

	o, err := scanOccurrence(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOccurrenceNotFound
		}
		return nil, fmt.Errorf("scan occurrence: %w", err)
	}
	return o, nil
}

func (r *BookingRepository) TransitionOccurrence(ctx context.Context, t domain.StatusTransition) (*domain.Occurrence, error) {
	var checkedInAt sql.NullTime
	if t.To == domain.OccurrenceStatusCheckedIn {
		checkedInAt = sql.NullTime{Time: t.At, Valid: true}
	}

	// Source status check and update in one statement.
	query := `UPDATE occurrences
			  SET status = $3,
			      note = CASE WHEN $4 = '' THEN note ELSE $4 END,
			      checked_in_at = COALESCE($5, checked_in_at),
			      updated_at = $6
			  WHERE id = $1 AND status = ANY($2)
			  RETURNING ` + occurrenceColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, t.ID, pq.Array(t.From),
		t.To, t.Note, checkedInAt, t.At,
	)
	if err != nil {
		return nil, fmt.Errorf("transition occurrence: %w", err)
	}

	o, err := scanOccurrence(row)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan occurrence: %w", err)
	}

	// Zero rows: either missing or already moved on.
	if _, getErr := r.GetOccurrence(ctx, t.ID); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrInvalidTransition
}

func (r *BookingRepository) CancelBooking(ctx context.Context, bookingID, note string, at time.Time) (*domain.BookingCancellation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	res := &domain.BookingCancellation{Booking: b}
	switch b.Status {
	case domain.BookingStatusCancelled:
		return res, nil
	case domain.BookingStatusCompleted:
		return nil, domain.ErrInvalidTransition
	}

	b.Status = domain.BookingStatusCancelled
	b.UpdatedAt = at
	if note != "" {
		b.Note = note
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, note = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Status, b.Note, at,
	); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `UPDATE occurrences
			  SET status = $2, updated_at = $4
			  WHERE booking_id = $1 AND status = ANY($3)
			  RETURNING id`,
		bookingID, domain.OccurrenceStatusCancelled,
		pq.Array([]domain.OccurrenceStatus{domain.OccurrenceStatusPendingPayment, domain.OccurrenceStatusActive}),
		at,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel occurrences: %w", err)
	}
	if res.OccurrenceIDs, err = scanIDs(rows); err != nil {
		return nil, fmt.Errorf("scan occurrence id: %w", err)
	}

	rows, err = tx.QueryContext(ctx, `UPDATE payments
			  SET status = $3, updated_at = $4
			  WHERE booking_id = $1 AND status = $2
			  RETURNING id`,
		bookingID, domain.PaymentStatusPendingPayment, domain.PaymentStatusCancelled, at,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel payments: %w", err)
	}
	if res.PaymentIDs, err = scanIDs(rows); err != nil {
		return nil, fmt.Errorf("scan payment id: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	res.Changed = true
	return res, nil
}
