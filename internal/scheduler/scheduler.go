package scheduler

import (
	"context"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type holdCanceller interface {
	CancelExpired(ctx context.Context) (*domain.ExpiredBatch, error)
}

// Scheduler sweeps expired payment holds on a fixed interval.
type Scheduler struct {
	paymentService holdCanceller
	interval       time.Duration
	logger         logger.Logger
}

func New(
	paymentService holdCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		paymentService: paymentService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	batch, err := s.paymentService.CancelExpired(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired holds",
			logger.String("error", err.Error()),
		)
		return
	}
	if batch.Empty() {
		return
	}

	for _, p := range batch.Payments {
		s.logger.Info("payment hold expired",
			logger.String("payment_id", p.ID),
			logger.String("booking_id", p.BookingID),
			logger.String("expired_at", p.ExpiresAtUTC.Format(time.RFC3339)),
		)
	}
	s.logger.Info("expired holds swept",
		logger.Int("payments", len(batch.Payments)),
		logger.Int("occurrences", len(batch.OccurrenceIDs)),
	)
}
