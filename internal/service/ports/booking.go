package ports

import (
	"context"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

type BookingRepo interface {
	// Reserve persists the booking, its occurrences, the payment hold and the voucher usage
	// as one unit. Overlaps with blocking occurrences of the same court fail with
	// *domain.SlotConflictError; exhausted vouchers fail with *domain.VoucherError.
	Reserve(ctx context.Context, r *domain.Reservation) error
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookingOccurrences(ctx context.Context, bookingID string) ([]*domain.Occurrence, error)
	ListCourtOccurrences(ctx context.Context, courtID string, date time.Time) ([]*domain.Occurrence, error)
	GetOccurrence(ctx context.Context, id string) (*domain.Occurrence, error)
	// TransitionOccurrence applies t only if the current status is one of t.From.
	// Otherwise it returns domain.ErrInvalidTransition.
	TransitionOccurrence(ctx context.Context, t domain.StatusTransition) (*domain.Occurrence, error)
	CancelBooking(ctx context.Context, bookingID, note string, at time.Time) (*domain.BookingCancellation, error)
}
