package ports

import (
	"context"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

type PaymentRepo interface {
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	ListBookingPayments(ctx context.Context, bookingID string) ([]*domain.Payment, error)
	// MarkPaid moves a pending hold to paid if it has not expired at now and activates
	// the pending occurrences and booking it covers.
	MarkPaid(ctx context.Context, id string, now time.Time) (*domain.PaymentOutcome, error)
	// CancelPayment moves a pending hold to cancelled and cancels what it covers.
	CancelPayment(ctx context.Context, id string, now time.Time) (*domain.PaymentOutcome, error)
	// CancelExpired cancels at most limit pending holds whose expiry is at or before now.
	CancelExpired(ctx context.Context, now time.Time, limit int) (*domain.ExpiredBatch, error)
}
