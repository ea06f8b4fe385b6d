package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type recordingSink struct {
	name  string
	err   error
	block chan struct{}

	mu     sync.Mutex
	events []domain.Event
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(_ context.Context, e domain.Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func (s *recordingSink) received() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

type panickingSink struct{}

func (panickingSink) Name() string { return "panic" }

func (panickingSink) Deliver(context.Context, domain.Event) error { panic("boom") }

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestBus_DeliversToEverySink(t *testing.T) {
	bus := NewBus(8, newTestLogger(t))
	a := &recordingSink{name: "a"}
	b := &recordingSink{name: "b", err: errors.New("broker down")}
	bus.Subscribe(a)
	bus.Subscribe(b)
	bus.Subscribe(panickingSink{})

	bus.Publish(context.Background(), domain.Event{Name: domain.EventBookingCreated, BookingIDs: []string{"b-1"}})
	bus.Publish(context.Background(), domain.Event{Name: domain.EventPaymentCreated, PaymentIDs: []string{"p-1"}})
	bus.Close()

	for _, s := range []*recordingSink{a, b} {
		got := s.received()
		require.Len(t, got, 2, s.name)
		assert.Equal(t, domain.EventBookingCreated, got[0].Name)
		assert.Equal(t, domain.EventPaymentCreated, got[1].Name)
	}
}

func TestBus_PublishNeverBlocks(t *testing.T) {
	bus := NewBus(1, newTestLogger(t))
	slow := &recordingSink{name: "slow", block: make(chan struct{})}
	bus.Subscribe(slow)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(context.Background(), domain.Event{Name: domain.EventBookingUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full queue")
	}

	close(slow.block)
	bus.Close()

	got := slow.received()
	assert.NotEmpty(t, got)
	assert.Less(t, len(got), 10)
}

func TestBus_CancelledContextStillDelivers(t *testing.T) {
	bus := NewBus(4, newTestLogger(t))
	s := &recordingSink{name: "s"}
	bus.Subscribe(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, domain.Event{Name: domain.EventBookingCancelled})
	bus.Close()

	assert.Len(t, s.received(), 1)
}

func TestBus_ClosedIgnoresPublish(t *testing.T) {
	bus := NewBus(4, newTestLogger(t))
	s := &recordingSink{name: "s"}
	bus.Subscribe(s)
	bus.Close()
	bus.Close()

	bus.Publish(context.Background(), domain.Event{Name: domain.EventBookingCreated})
	bus.Subscribe(&recordingSink{name: "late"})

	assert.Empty(t, s.received())
}
