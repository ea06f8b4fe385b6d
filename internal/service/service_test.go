package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/qr"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/repository/memory"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const court = "court-c"

// Monday noon; 2026-10-20 is the Tuesday after.
var start = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recorder) Publish(_ context.Context, e domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) names() []domain.EventName {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EventName, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Name)
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func tod(h, m int) domain.TimeOfDay { return domain.NewTimeOfDay(h, m) }

func date(d int) time.Time { return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC) }

func standardRules() []domain.PricingRule {
	return []domain.PricingRule{
		{ID: "day", CourtID: court, Weekdays: domain.WeekdaySet{2, 3, 4, 5, 6}, StartTime: tod(6, 0), EndTime: tod(17, 0), PricePerHour: 100_000, Priority: 1},
		{ID: "evening", CourtID: court, StartTime: tod(17, 0), EndTime: tod(23, 0), PricePerHour: 150_000, Priority: 2},
	}
}

type fixture struct {
	store       *memory.Store
	clock       *fakeClock
	events      *recorder
	bookings    *BookingService
	payments    *PaymentService
	occurrences *OccurrenceService
	pricing     *PricingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.New()
	require.NoError(t, store.ReplaceRules(context.Background(), court, standardRules()))

	clock := &fakeClock{now: start}
	events := &recorder{}
	log := newTestLogger(t)
	policy := Policy{
		HoldTTL:            15 * time.Minute,
		DepositPercent:     30,
		CheckInEarlyWindow: 15 * time.Minute,
		Location:           time.UTC,
	}

	return &fixture{
		store:       store,
		clock:       clock,
		events:      events,
		bookings:    NewBookingService(store, store, store, store, events, qr.NewSigner("test"), clock, policy, log),
		payments:    NewPaymentService(store, events, clock, policy, log),
		occurrences: NewOccurrenceService(store, events, clock, policy, log),
		pricing:     NewPricingService(store, log),
	}
}

func tuesdayEvening() *domain.BookingRequest {
	return &domain.BookingRequest{
		CourtID:   court,
		UserID:    "user-1",
		Mode:      domain.BookingModeSingle,
		Date:      date(20),
		StartTime: tod(16, 0),
		EndTime:   tod(18, 0),
	}
}

func (f *fixture) book(t *testing.T, req *domain.BookingRequest) *domain.BookingResult {
	t.Helper()
	res, err := f.bookings.Create(context.Background(), req)
	require.NoError(t, err)
	return res
}
