package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_CancelsExpired(t *testing.T) {
	canceller := mocks.NewMockHoldCanceller(t)
	log := newTestLogger(t)

	s := New(canceller, 50*time.Millisecond, log)

	batch := &domain.ExpiredBatch{
		Payments: []*domain.Payment{
			{ID: "p1", BookingID: "b1", ExpiresAtUTC: time.Now().Add(-time.Minute)},
		},
		BookingIDs:    []string{"b1"},
		OccurrenceIDs: []string{"o1"},
	}
	canceller.EXPECT().CancelExpired(mock.Anything).Return(batch, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(canceller.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	canceller := mocks.NewMockHoldCanceller(t)
	log := newTestLogger(t)

	s := New(canceller, 50*time.Millisecond, log)

	canceller.EXPECT().CancelExpired(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(canceller.Calls), 1)
}

func TestScheduler_Tick_EmptyBatch(t *testing.T) {
	canceller := mocks.NewMockHoldCanceller(t)
	s := New(canceller, time.Hour, newTestLogger(t))

	canceller.EXPECT().CancelExpired(mock.Anything).Return(&domain.ExpiredBatch{}, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	canceller := mocks.NewMockHoldCanceller(t)
	log := newTestLogger(t)

	s := New(canceller, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	canceller := mocks.NewMockHoldCanceller(t)
	log := newTestLogger(t)

	s := New(canceller, 20*time.Millisecond, log)

	var ticks atomic.Int32
	canceller.EXPECT().CancelExpired(mock.Anything).
		Run(func(context.Context) { ticks.Add(1) }).
		Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, ticks.Load(), int32(3))
}
