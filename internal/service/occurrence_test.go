package service

import (
	"context"
	"testing"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paidOccurrence books Tuesday 16:00-18:00, confirms it and returns the occurrence.
func (f *fixture) paidOccurrence(t *testing.T, req *domain.BookingRequest) *domain.Occurrence {
	t.Helper()
	res := f.book(t, req)
	_, err := f.payments.Confirm(context.Background(), res.Payment.ID)
	require.NoError(t, err)
	return res.Occurrences[0]
}

func at(h, m int) time.Time {
	return time.Date(2026, 10, 20, h, m, 0, 0, time.UTC)
}

func TestOccurrenceService_CheckInWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	occ := f.paidOccurrence(t, tuesdayEvening())

	f.clock.Set(at(15, 40))
	_, err := f.occurrences.CheckIn(ctx, occ.ID, "")
	require.ErrorIs(t, err, domain.ErrOutsideWindow)

	f.events.reset()
	f.clock.Set(at(15, 50))
	got, err := f.occurrences.CheckIn(ctx, occ.ID, "racket rental")
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusCheckedIn, got.Status)
	assert.Equal(t, "racket rental", got.Note)
	require.NotNil(t, got.CheckedInAt)
	assert.Equal(t, at(15, 50), *got.CheckedInAt)
	assert.Equal(t, []domain.EventName{domain.EventBookingUpdated}, f.events.names())

	again, err := f.occurrences.CheckIn(ctx, occ.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusCheckedIn, again.Status)

	f.clock.Set(at(18, 5))
	done, err := f.occurrences.Complete(ctx, occ.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusCompleted, done.Status)
}

func TestOccurrenceService_CheckInAfterEnd(t *testing.T) {
	f := newFixture(t)
	occ := f.paidOccurrence(t, tuesdayEvening())

	f.clock.Set(at(18, 1))
	_, err := f.occurrences.CheckIn(context.Background(), occ.ID, "")
	assert.ErrorIs(t, err, domain.ErrOutsideWindow)
}

func TestOccurrenceService_CheckInUnpaid(t *testing.T) {
	f := newFixture(t)
	res := f.book(t, tuesdayEvening())

	f.clock.Set(at(16, 0))
	_, err := f.occurrences.CheckIn(context.Background(), res.Occurrences[0].ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOccurrenceService_NoShow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	occ := f.paidOccurrence(t, tuesdayEvening())

	f.clock.Set(at(17, 59))
	_, err := f.occurrences.NoShow(ctx, occ.ID, "")
	require.ErrorIs(t, err, domain.ErrOutsideWindow)

	f.clock.Set(at(18, 1))
	got, err := f.occurrences.NoShow(ctx, occ.ID, "did not arrive")
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusNoShow, got.Status)

	_, err = f.occurrences.Complete(ctx, occ.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOccurrenceService_CancelFreesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	occ := f.paidOccurrence(t, tuesdayEvening())
	f.events.reset()

	got, err := f.occurrences.Cancel(ctx, occ.ID, "rain")
	require.NoError(t, err)
	assert.Equal(t, domain.OccurrenceStatusCancelled, got.Status)
	assert.Equal(t, []domain.EventName{domain.EventBookingCancelled}, f.events.names())

	f.book(t, tuesdayEvening())
}

func TestOccurrenceService_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.occurrences.CheckIn(context.Background(), "missing", "")
	assert.ErrorIs(t, err, domain.ErrOccurrenceNotFound)
}
