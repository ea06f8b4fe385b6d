package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

type envelope struct {
	Origin string       `json:"origin"`
	Event  domain.Event `json:"event"`
}

// RedisRelay shares events between instances over a pub/sub channel.
type RedisRelay struct {
	client   redis.UniversalClient
	channel  string
	instance string
	logger   logger.Logger
}

func NewRedisRelay(client redis.UniversalClient, channel, instance string, logger logger.Logger) *RedisRelay {
	return &RedisRelay{client: client, channel: channel, instance: instance, logger: logger}
}

func (r *RedisRelay) Name() string { return "redis" }

// Deliver implements events.Sink.
func (r *RedisRelay) Deliver(ctx context.Context, e domain.Event) error {
	payload, err := json.Marshal(envelope{Origin: r.instance, Event: e})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err = r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("%w: redis publish: %w", domain.ErrNotifyTransient, err)
	}
	return nil
}

// Listen passes events published by other instances to handle until ctx is done.
func (r *RedisRelay) Listen(ctx context.Context, handle func(domain.Event)) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				r.logger.Warn("malformed relay message", logger.String("error", err.Error()))
				continue
			}
			if env.Origin == r.instance {
				continue
			}
			handle(env.Event)
		}
	}
}
