package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

type paymentsByID map[string]*domain.Payment

func (m paymentsByID) GetPayment(_ context.Context, id string) (*domain.Payment, error) {
	p, ok := m[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return p, nil
}

func TestTelegramNotifier_PaymentEvents(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{
		bot:    sender,
		chatID: 42,
		payments: paymentsByID{"p-1": {
			ID:           "p-1",
			BookingID:    "b-1",
			Amount:       75_000,
			Status:       domain.PaymentStatusPendingPayment,
			ExpiresAtUTC: time.Date(2026, 10, 20, 7, 15, 0, 0, time.UTC),
		}},
		logger: newTestLogger(t),
	}

	require.NoError(t, n.Deliver(context.Background(), domain.Event{
		Name:       domain.EventPaymentCreated,
		PaymentIDs: []string{"p-1"},
	}))
	require.NoError(t, n.Deliver(context.Background(), domain.Event{
		Name:       domain.EventPaymentsCancelled,
		PaymentIDs: []string{"p-2", "p-3"},
	}))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, int64(42), sender.sent[0].ChatID)
	assert.Contains(t, sender.sent[0].Text, "75000")
	assert.Contains(t, sender.sent[0].Text, "20.10.2026 07:15")
	assert.Contains(t, sender.sent[1].Text, "Cancelled: 2")
}

func TestTelegramNotifier_IgnoresBookingEvents(t *testing.T) {
	sender := &fakeSender{}
	n := &TelegramNotifier{bot: sender, chatID: 42, payments: paymentsByID{}, logger: newTestLogger(t)}

	require.NoError(t, n.Deliver(context.Background(), domain.Event{Name: domain.EventBookingCreated}))
	assert.Empty(t, sender.sent)
}

func TestTelegramNotifier_SendFailureIsTransient(t *testing.T) {
	sender := &fakeSender{err: errors.New("telegram unavailable")}
	n := &TelegramNotifier{bot: sender, chatID: 42, payments: paymentsByID{}, logger: newTestLogger(t)}

	err := n.Deliver(context.Background(), domain.Event{Name: domain.EventBookingsExpired, BookingIDs: []string{"b-1"}})
	assert.ErrorIs(t, err, domain.ErrNotifyTransient)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, paymentsByID{}, newTestLogger(t))
	require.NoError(t, err)

	assert.NoError(t, n.Deliver(context.Background(), domain.Event{Name: domain.EventBookingsExpired}))
}

type fakeChannel struct {
	failures  int
	calls     int
	published []amqp.Publishing
	keys      []string
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("channel closed")
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func newTestPublisher(t *testing.T, ch amqpChannel) *RabbitPublisher {
	return &RabbitPublisher{
		ch:       ch,
		exchange: "court-booking",
		strategy: retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1},
		logger:   newTestLogger(t),
	}
}

func TestRabbitPublisher_RetriesThenPublishes(t *testing.T) {
	ch := &fakeChannel{failures: 2}
	p := newTestPublisher(t, ch)

	err := p.Deliver(context.Background(), domain.Event{Name: domain.EventBookingCreated, BookingIDs: []string{"b-1"}})
	require.NoError(t, err)

	assert.Equal(t, 3, ch.calls)
	require.Len(t, ch.published, 1)
	assert.Equal(t, "bookingCreated", ch.keys[0])
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Contains(t, string(ch.published[0].Body), `"b-1"`)
}

func TestRabbitPublisher_GivesUp(t *testing.T) {
	ch := &fakeChannel{failures: 10}
	p := newTestPublisher(t, ch)

	err := p.Deliver(context.Background(), domain.Event{Name: domain.EventPaymentUpdated})
	assert.ErrorIs(t, err, domain.ErrNotifyTransient)
	assert.Equal(t, 3, ch.calls)
}

func TestRedisRelay_UnreachableIsTransient(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	relay := NewRedisRelay(client, "court-events", "node-1", newTestLogger(t))
	err := relay.Deliver(context.Background(), domain.Event{Name: domain.EventBookingCreated})
	assert.ErrorIs(t, err, domain.ErrNotifyTransient)
}
