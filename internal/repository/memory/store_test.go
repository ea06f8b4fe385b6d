package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day   = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	clock = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
)

func reservation(id, courtID string, start, end domain.TimeOfDay, expires time.Time) *domain.Reservation {
	b := &domain.Booking{
		ID:        "b-" + id,
		CourtID:   courtID,
		UserID:    "user-1",
		Mode:      domain.BookingModeSingle,
		StartDate: day,
		EndDate:   day,
		StartTime: start,
		EndTime:   end,
		Status:    domain.BookingStatusPendingPayment,
		CreatedAt: clock,
		UpdatedAt: clock,
	}
	o := &domain.Occurrence{
		ID:        "o-" + id,
		BookingID: b.ID,
		CourtID:   courtID,
		Date:      day,
		StartTime: start,
		EndTime:   end,
		Amount:    100_000,
		Status:    domain.OccurrenceStatusPendingPayment,
		CreatedAt: clock,
		UpdatedAt: clock,
	}
	p := &domain.Payment{
		ID:           "p-" + id,
		BookingID:    b.ID,
		Amount:       100_000,
		Plan:         domain.PaymentPlanFull,
		Status:       domain.PaymentStatusPendingPayment,
		ExpiresAtUTC: expires,
		CreatedAt:    clock,
		UpdatedAt:    clock,
	}
	return &domain.Reservation{Booking: b, Occurrences: []*domain.Occurrence{o}, Payment: p}
}

func TestReserve_ConcurrentSameSlot(t *testing.T) {
	s := New()
	ctx := context.Background()

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Reserve(ctx, reservation(fmt.Sprint(i), "court-c", 420, 480, clock.Add(15*time.Minute)))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrSlotConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	occ, err := s.ListCourtOccurrences(ctx, "court-c", day)
	require.NoError(t, err)
	assert.Len(t, occ, 1)
}

func TestReserve_ConflictCarriesBlockingOccurrence(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Reserve(ctx, reservation("1", "court-c", 420, 480, clock.Add(time.Hour))))

	err := s.Reserve(ctx, reservation("2", "court-c", 450, 510, clock.Add(time.Hour)))

	var conflict *domain.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "o-1", conflict.Blocking.ID)

	_, err = s.GetBooking(ctx, "b-2")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestReserve_AdjacentAndOtherCourtAllowed(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Reserve(ctx, reservation("1", "court-c", 420, 480, clock.Add(time.Hour))))
	assert.NoError(t, s.Reserve(ctx, reservation("2", "court-c", 480, 540, clock.Add(time.Hour))))
	assert.NoError(t, s.Reserve(ctx, reservation("3", "court-d", 420, 480, clock.Add(time.Hour))))
}

func TestCancelExpired_FreesSlot(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Reserve(ctx, reservation("1", "court-c", 420, 480, clock.Add(15*time.Minute))))

	batch, err := s.CancelExpired(ctx, clock.Add(14*time.Minute), 100)
	require.NoError(t, err)
	assert.True(t, batch.Empty())

	batch, err = s.CancelExpired(ctx, clock.Add(16*time.Minute), 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1"}, batch.PaymentIDs())
	assert.Equal(t, []string{"b-1"}, batch.BookingIDs)
	assert.Equal(t, []string{"o-1"}, batch.OccurrenceIDs)

	occ, err := s.GetOccurrence(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusCancelled, occ.Status)

	b, err := s.GetBooking(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)

	assert.NoError(t, s.Reserve(ctx, reservation("2", "court-c", 420, 480, clock.Add(time.Hour))))

	batch, err = s.CancelExpired(ctx, clock.Add(17*time.Minute), 100)
	require.NoError(t, err)
	assert.True(t, batch.Empty())
}

func TestCancelExpired_RespectsLimit(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		start := domain.TimeOfDay(420 + i*60)
		require.NoError(t, s.Reserve(ctx, reservation(fmt.Sprint(i), "court-c", start, start+60, clock.Add(time.Duration(i+1)*time.Minute))))
	}

	batch, err := s.CancelExpired(ctx, clock.Add(time.Hour), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-0", "p-1"}, batch.PaymentIDs())

	batch, err = s.CancelExpired(ctx, clock.Add(time.Hour), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-2"}, batch.PaymentIDs())
}

func TestMarkPaid(t *testing.T) {
	s := New()
	ctx := context.Background()
	expires := clock.Add(15 * time.Minute)

	require.NoError(t, s.Reserve(ctx, reservation("1", "court-c", 420, 480, expires)))

	out, err := s.MarkPaid(ctx, "p-1", clock.Add(5*time.Minute))
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, domain.PaymentStatusPaid, out.Payment.Status)
	assert.Equal(t, []string{"o-1"}, out.OccurrenceIDs)

	occ, err := s.GetOccurrence(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusActive, occ.Status)

	b, err := s.GetBooking(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, b.Status)

	again, err := s.MarkPaid(ctx, "p-1", clock.Add(6*time.Minute))
	require.NoError(t, err)
	assert.False(t, again.Changed)

	_, err = s.CancelPayment(ctx, "p-1", clock.Add(7*time.Minute))
	assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
}

func TestMarkPaid_ExpiredHold(t *testing.T) {
	s := New()
	ctx := context.Background()
	expires := clock.Add(15 * time.Minute)

	require.NoError(t, s.Reserve(ctx, reservation("1", "court-c", 420, 480, expires)))

	_, err := s.MarkPaid(ctx, "p-1", expires)
	assert.ErrorIs(t, err, domain.ErrHoldExpired)

	p, err := s.GetPayment(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPendingPayment, p.Status)

	_, err = s.MarkPaid(ctx, "missing", clock)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestCancelPayment(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Reserve(ctx, reservation("1", "court-c", 420, 480, clock.Add(time.Hour))))

	out, err := s.CancelPayment(ctx, "p-1", clock)
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, []string{"o-1"}, out.OccurrenceIDs)

	again, err := s.CancelPayment(ctx, "p-1", clock)
	require.NoError(t, err)
	assert.False(t, again.Changed)

	_, err = s.MarkPaid(ctx, "p-1", clock)
	assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
}

func TestTransitionOccurrence(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Reserve(ctx, reservation("1", "court-c", 420, 480, clock.Add(time.Hour))))

	_, err := s.TransitionOccurrence(ctx, domain.StatusTransition{
		ID:   "o-1",
		From: []domain.OccurrenceStatus{domain.OccurrenceStatusActive},
		To:   domain.OccurrenceStatusCheckedIn,
		At:   clock,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = s.MarkPaid(ctx, "p-1", clock)
	require.NoError(t, err)

	occ, err := s.TransitionOccurrence(ctx, domain.StatusTransition{
		ID:   "o-1",
		From: []domain.OccurrenceStatus{domain.OccurrenceStatusActive},
		To:   domain.OccurrenceStatusCheckedIn,
		Note: "arrived",
		At:   clock,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusCheckedIn, occ.Status)
	assert.Equal(t, "arrived", occ.Note)
	require.NotNil(t, occ.CheckedInAt)
	assert.True(t, occ.CheckedInAt.Equal(clock))

	_, err = s.TransitionOccurrence(ctx, domain.StatusTransition{ID: "missing", At: clock})
	assert.ErrorIs(t, err, domain.ErrOccurrenceNotFound)
}

func TestCancelBooking(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Reserve(ctx, reservation("1", "court-c", 420, 480, clock.Add(time.Hour))))

	res, err := s.CancelBooking(ctx, "b-1", "rain", clock)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, domain.BookingStatusCancelled, res.Booking.Status)
	assert.Equal(t, []string{"o-1"}, res.OccurrenceIDs)
	assert.Equal(t, []string{"p-1"}, res.PaymentIDs)

	again, err := s.CancelBooking(ctx, "b-1", "", clock)
	require.NoError(t, err)
	assert.False(t, again.Changed)

	assert.NoError(t, s.Reserve(ctx, reservation("2", "court-c", 420, 480, clock.Add(time.Hour))))
}

func TestReserve_VoucherLimits(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateVoucher(ctx, &domain.Voucher{
		ID:            "v-1",
		Code:          "SPRING",
		DiscountType:  domain.DiscountTypeFixed,
		DiscountValue: 10_000,
		UsageLimit:    2,
		PerUserLimit:  1,
	}))

	withVoucher := func(id, user string, start domain.TimeOfDay) *domain.Reservation {
		r := reservation(id, "court-c", start, start+60, clock.Add(time.Hour))
		r.Booking.UserID = user
		r.Usage = &domain.VoucherUsage{VoucherID: "v-1", UserID: user, BookingID: r.Booking.ID, UsedAt: clock}
		return r
	}

	require.NoError(t, s.Reserve(ctx, withVoucher("1", "alice", 420)))

	var verr *domain.VoucherError
	err := s.Reserve(ctx, withVoucher("2", "alice", 480))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.VoucherReasonPerUserLimit, verr.Reason)

	require.NoError(t, s.Reserve(ctx, withVoucher("3", "bob", 540)))

	err = s.Reserve(ctx, withVoucher("4", "carol", 600))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.VoucherReasonUsageLimit, verr.Reason)

	// Rejected reservations leave nothing behind.
	occ, err := s.ListCourtOccurrences(ctx, "court-c", day)
	require.NoError(t, err)
	assert.Len(t, occ, 2)

	v, err := s.GetVoucher(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, 2, v.UsedCount)

	n, err := s.CountVoucherUsage(ctx, "v-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRules(t *testing.T) {
	s := New()
	ctx := context.Background()

	rules := []domain.PricingRule{{ID: "r-1", CourtID: "court-c", StartTime: 0, EndTime: 1440, PricePerHour: 100_000}}
	require.NoError(t, s.ReplaceRules(ctx, "court-c", rules))

	rules[0].PricePerHour = 1
	got, err := s.ListRules(ctx, "court-c")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(100_000), got[0].PricePerHour)

	got, err = s.ListRules(ctx, "court-x")
	require.NoError(t, err)
	assert.Empty(t, got)
}
