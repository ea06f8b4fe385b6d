package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher sends every event to a topic exchange with the event name as routing key.
type RabbitPublisher struct {
	conn     *amqp.Connection
	exchange string
	strategy retry.Strategy
	logger   logger.Logger

	mu sync.Mutex
	ch amqpChannel
}

func NewRabbitPublisher(url, exchange string, logger logger.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		strategy: retry.Strategy{Attempts: 3, Delay: 200 * time.Millisecond, Backoff: 2},
		logger:   logger,
	}, nil
}

func (p *RabbitPublisher) Name() string { return "rabbitmq" }

// Deliver implements events.Sink with bounded retries.
func (p *RabbitPublisher) Deliver(ctx context.Context, e domain.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.At,
		Type:         string(e.Name),
		Body:         body,
	}

	delay := p.strategy.Delay
	for attempt := 1; ; attempt++ {
		p.mu.Lock()
		err = p.ch.PublishWithContext(ctx, p.exchange, string(e.Name), false, false, msg)
		p.mu.Unlock()
		if err == nil {
			return nil
		}
		if attempt >= p.strategy.Attempts {
			return fmt.Errorf("%w: publish %s after %d attempts: %w", domain.ErrNotifyTransient, e.Name, attempt, err)
		}

		p.logger.Warn("rabbitmq publish failed, retrying",
			logger.String("event", string(e.Name)),
			logger.Int("attempt", attempt),
			logger.String("error", err.Error()),
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", domain.ErrNotifyTransient, ctx.Err())
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * float64(p.strategy.Backoff))
	}
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
