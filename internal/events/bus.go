// Package events fans domain events out to delivery sinks without blocking the publisher.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultQueueSize = 256

// Sink delivers events to one transport. Errors are logged by the bus.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, e domain.Event) error
}

type delivery struct {
	ctx   context.Context
	event domain.Event
}

type subscriber struct {
	sink  Sink
	queue chan delivery
}

type Bus struct {
	queueSize int
	logger    logger.Logger

	mu     sync.RWMutex
	subs   []*subscriber
	closed bool
	wg     sync.WaitGroup
}

func NewBus(queueSize int, logger logger.Logger) *Bus {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Bus{queueSize: queueSize, logger: logger}
}

// Subscribe starts a worker that feeds sink from its own queue.
func (b *Bus) Subscribe(sink Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	sub := &subscriber{sink: sink, queue: make(chan delivery, b.queueSize)}
	b.subs = append(b.subs, sub)

	b.wg.Add(1)
	go b.run(sub)
}

// Publish implements ports.EventPublisher.
func (b *Bus) Publish(ctx context.Context, e domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	d := delivery{ctx: context.WithoutCancel(ctx), event: e}
	for _, sub := range b.subs {
		select {
		case sub.queue <- d:
		default:
			b.logger.Warn("event dropped, sink queue full",
				logger.String("sink", sub.sink.Name()),
				logger.String("event", string(e.Name)),
			)
		}
	}
}

// Close stops accepting events and waits until queued ones are delivered.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for _, sub := range b.subs {
		close(sub.queue)
	}
	b.mu.Unlock()

	b.wg.Wait()
}

func (b *Bus) run(sub *subscriber) {
	defer b.wg.Done()

	for d := range sub.queue {
		if err := b.deliver(sub.sink, d); err != nil {
			b.logger.Error("event delivery failed",
				logger.String("sink", sub.sink.Name()),
				logger.String("event", string(d.event.Name)),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (b *Bus) deliver(sink Sink, d delivery) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: sink panicked: %v", domain.ErrNotifyTransient, r)
		}
	}()

	if err = sink.Deliver(d.ctx, d.event); err != nil && !errors.Is(err, domain.ErrNotifyTransient) {
		err = fmt.Errorf("%w: %w", domain.ErrNotifyTransient, err)
	}
	return err
}
