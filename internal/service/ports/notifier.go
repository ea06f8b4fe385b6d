package ports

import (
	"context"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

// EventPublisher must not block the caller. Delivery failures stay inside the publisher.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event)
}

type Clock interface {
	Now() time.Time
}
