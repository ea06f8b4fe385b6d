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

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PaymentRepository) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepository) ListBookingPayments(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
              FROM payments
              WHERE booking_id = $1
              ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, id string, now time.Time) (*domain.PaymentOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Status and expiry are checked by the same statement that flips the row.
	query := `UPDATE payments
			  SET status = $3, paid_at = $4, updated_at = $4
			  WHERE id = $1
			    AND status = $2
			    AND expires_at_utc > $4
			  RETURNING ` + paymentColumns
	p, err := scanPayment(tx.QueryRowContext(
		ctx, query, id,
		domain.PaymentStatusPendingPayment, domain.PaymentStatusPaid, now,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return r.diagnosePaid(ctx, tx, id, now)
	}
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	ids, err := cascade(ctx, tx, []string{p.ID}, domain.OccurrenceStatusActive, now)
	if err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		p.BookingID, domain.BookingStatusPendingPayment, domain.BookingStatusActive, now,
	); err != nil {
		return nil, fmt.Errorf("activate booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.PaymentOutcome{Payment: p, OccurrenceIDs: ids, Changed: true}, nil
}

// diagnosePaid explains why MarkPaid matched no row.
func (r *PaymentRepository) diagnosePaid(ctx context.Context, tx *sql.Tx, id string, now time.Time) (*domain.PaymentOutcome, error) {
	p, err := scanPayment(tx.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	switch {
	case p.Status == domain.PaymentStatusPaid:
		return &domain.PaymentOutcome{Payment: p}, nil
	case !now.Before(p.ExpiresAtUTC):
		return nil, domain.ErrHoldExpired
	default:
		return nil, domain.ErrPaymentNotPending
	}
}

func (r *PaymentRepository) CancelPayment(ctx context.Context, id string, now time.Time) (*domain.PaymentOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE payments
			  SET status = $3, updated_at = $4
			  WHERE id = $1 AND status = $2
			  RETURNING ` + paymentColumns
	p, err := scanPayment(tx.QueryRowContext(
		ctx, query, id,
		domain.PaymentStatusPendingPayment, domain.PaymentStatusCancelled, now,
	))
	if errors.Is(err, sql.ErrNoRows) {
		current, getErr := scanPayment(tx.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
		switch {
		case errors.Is(getErr, sql.ErrNoRows):
			return nil, domain.ErrPaymentNotFound
		case getErr != nil:
			return nil, fmt.Errorf("get payment: %w", getErr)
		case current.Status == domain.PaymentStatusCancelled:
			return &domain.PaymentOutcome{Payment: current}, nil
		default:
			return nil, domain.ErrPaymentNotPending
		}
	}
	if err != nil {
		return nil, fmt.Errorf("cancel payment: %w", err)
	}

	ids, err := releaseHolds(ctx, tx, []string{p.ID}, []string{p.BookingID}, now)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &domain.PaymentOutcome{Payment: p, OccurrenceIDs: ids, Changed: true}, nil
}

func (r *PaymentRepository) CancelExpired(ctx context.Context, now time.Time, limit int) (*domain.ExpiredBatch, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Rows locked by a concurrent confirm are skipped and picked up on a later tick.
	query := `
        UPDATE payments
        SET status = $2, updated_at = $3
        WHERE id IN (
            SELECT id FROM payments
            WHERE status = $1 AND expires_at_utc <= $3
            ORDER BY expires_at_utc, id
            LIMIT $4
            FOR UPDATE SKIP LOCKED
        )
        RETURNING ` + paymentColumns

	rows, err := tx.QueryContext(
		ctx, query,
		domain.PaymentStatusPendingPayment, domain.PaymentStatusCancelled, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	batch := &domain.ExpiredBatch{}
	seen := make(map[string]bool)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan: %w", err)
		}
		batch.Payments = append(batch.Payments, p)
		if !seen[p.BookingID] {
			seen[p.BookingID] = true
			batch.BookingIDs = append(batch.BookingIDs, p.BookingID)
		}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if batch.Empty() {
		return batch, nil
	}

	if batch.OccurrenceIDs, err = releaseHolds(ctx, tx, batch.PaymentIDs(), batch.BookingIDs, now); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return batch, nil
}

// releaseHolds cancels the occurrences covered by the cancelled payments and the
// bookings that never got paid.
func releaseHolds(ctx context.Context, tx *sql.Tx, paymentIDs, bookingIDs []string, now time.Time) ([]string, error) {
	ids, err := cascade(ctx, tx, paymentIDs, domain.OccurrenceStatusCancelled, now)
	if err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $3, updated_at = $4 WHERE id = ANY($1::text[]) AND status = $2`,
		pq.Array(bookingIDs), domain.BookingStatusPendingPayment, domain.BookingStatusCancelled, now,
	); err != nil {
		return nil, fmt.Errorf("cancel bookings: %w", err)
	}
	return ids, nil
}

// cascade moves the pending occurrences covered by the given payments to status.
func cascade(ctx context.Context, tx *sql.Tx, paymentIDs []string, status domain.OccurrenceStatus, now time.Time) ([]string, error) {
	query := `UPDATE occurrences o
			  SET status = $3, updated_at = $4
			  FROM payments p
			  WHERE p.id = ANY($1::text[])
			    AND o.booking_id = p.booking_id
			    AND (p.occurrence_id IS NULL OR o.id = p.occurrence_id)
			    AND o.status = $2
			  RETURNING o.id`

	rows, err := tx.QueryContext(ctx, query,
		pq.Array(paymentIDs), domain.OccurrenceStatusPendingPayment, status, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update occurrences: %w", err)
	}

	ids, err := scanIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("scan occurrence id: %w", err)
	}
	return ids, nil
}
