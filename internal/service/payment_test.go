package service

import (
	"context"
	"testing"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_Confirm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.book(t, tuesdayEvening())
	f.events.reset()

	f.clock.Advance(5 * time.Minute)
	out, err := f.payments.Confirm(ctx, res.Payment.ID)
	require.NoError(t, err)

	assert.True(t, out.Changed)
	assert.Equal(t, domain.PaymentStatusPaid, out.Payment.Status)
	require.NotNil(t, out.Payment.PaidAt)
	assert.Equal(t, start.Add(5*time.Minute), *out.Payment.PaidAt)
	assert.Equal(t, []string{res.Occurrences[0].ID}, out.OccurrenceIDs)
	assert.Equal(t, []domain.EventName{domain.EventPaymentUpdated, domain.EventBookingUpdated}, f.events.names())

	b, err := f.store.GetBooking(ctx, res.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, b.Status)

	occ, err := f.store.GetOccurrence(ctx, res.Occurrences[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusActive, occ.Status)

	f.events.reset()
	again, err := f.payments.Confirm(ctx, res.Payment.ID)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Empty(t, f.events.names())

	f.clock.Advance(time.Hour)
	batch, err := f.payments.CancelExpired(ctx)
	require.NoError(t, err)
	assert.True(t, batch.Empty())
}

func TestPaymentService_Confirm_AfterExpiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.book(t, tuesdayEvening())

	f.clock.Advance(15 * time.Minute)
	_, err := f.payments.Confirm(ctx, res.Payment.ID)
	require.ErrorIs(t, err, domain.ErrHoldExpired)

	occ, err := f.store.GetOccurrence(ctx, res.Occurrences[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusPendingPayment, occ.Status)
}

func TestPaymentService_Confirm_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.payments.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentService_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.book(t, tuesdayEvening())
	f.events.reset()

	out, err := f.payments.Cancel(ctx, res.Payment.ID)
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, domain.PaymentStatusCancelled, out.Payment.Status)
	assert.Equal(t, []domain.EventName{domain.EventPaymentUpdated, domain.EventBookingCancelled}, f.events.names())

	b, err := f.store.GetBooking(ctx, res.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)

	again, err := f.payments.Cancel(ctx, res.Payment.ID)
	require.NoError(t, err)
	assert.False(t, again.Changed)

	f.book(t, tuesdayEvening())
}

func TestPaymentService_Cancel_Paid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.book(t, tuesdayEvening())
	_, err := f.payments.Confirm(ctx, res.Payment.ID)
	require.NoError(t, err)

	_, err = f.payments.Cancel(ctx, res.Payment.ID)
	assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
}

func TestPaymentService_CancelExpired_OneEventPerBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, tuesdayEvening())
	second := tuesdayEvening()
	second.StartTime, second.EndTime = tod(7, 0), tod(8, 0)
	f.book(t, second)

	f.events.reset()
	f.clock.Advance(14 * time.Minute)
	batch, err := f.payments.CancelExpired(ctx)
	require.NoError(t, err)
	assert.True(t, batch.Empty())
	assert.Empty(t, f.events.names())

	f.clock.Advance(2 * time.Minute)
	batch, err = f.payments.CancelExpired(ctx)
	require.NoError(t, err)
	assert.Len(t, batch.Payments, 2)
	assert.Len(t, batch.BookingIDs, 2)
	assert.Len(t, batch.OccurrenceIDs, 2)

	require.Len(t, f.events.events, 2)
	assert.Equal(t, domain.EventPaymentsCancelled, f.events.events[0].Name)
	assert.Len(t, f.events.events[0].PaymentIDs, 2)
	assert.Equal(t, domain.EventBookingsExpired, f.events.events[1].Name)

	p, err := f.payments.Get(ctx, first.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCancelled, p.Status)
}

func TestPaymentService_CancelExpired_UsesBatchSize(t *testing.T) {
	repo := mocks.NewMockPaymentRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	clock := mocks.NewMockClock(t)
	s := NewPaymentService(repo, publisher, clock, Policy{SweepBatchSize: 50}, newTestLogger(t))

	clock.EXPECT().Now().Return(start)
	repo.EXPECT().CancelExpired(mock.Anything, start, 50).Return(&domain.ExpiredBatch{}, nil)

	batch, err := s.CancelExpired(context.Background())
	require.NoError(t, err)
	assert.True(t, batch.Empty())
}
