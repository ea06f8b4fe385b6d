package service

import (
	"context"
	"fmt"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	publisher   ports.EventPublisher
	clock       ports.Clock
	batchSize   int
	logger      logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	publisher ports.EventPublisher,
	clock ports.Clock,
	policy Policy,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		publisher:   publisher,
		clock:       clock,
		batchSize:   policy.withDefaults().SweepBatchSize,
		logger:      logger,
	}
}

func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	return s.paymentRepo.GetPayment(ctx, id)
}

// Confirm records a confirmed transfer. Holds past their expiry are rejected with
// domain.ErrHoldExpired even if funds arrived; repeating a confirmation is a no-op.
func (s *PaymentService) Confirm(ctx context.Context, id string) (*domain.PaymentOutcome, error) {
	now := s.clock.Now().UTC()

	out, err := s.paymentRepo.MarkPaid(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	if !out.Changed {
		return out, nil
	}

	s.logger.Info("payment confirmed",
		logger.String("payment_id", id),
		logger.String("booking_id", out.Payment.BookingID),
		logger.Int64("amount", out.Payment.Amount),
	)

	s.publisher.Publish(ctx, domain.Event{
		Name:       domain.EventPaymentUpdated,
		BookingIDs: []string{out.Payment.BookingID},
		PaymentIDs: []string{id},
		At:         now,
	})
	s.publisher.Publish(ctx, domain.Event{
		Name:          domain.EventBookingUpdated,
		BookingIDs:    []string{out.Payment.BookingID},
		OccurrenceIDs: out.OccurrenceIDs,
		At:            now,
	})

	return out, nil
}

// Cancel releases a pending hold and the slots it was keeping.
func (s *PaymentService) Cancel(ctx context.Context, id string) (*domain.PaymentOutcome, error) {
	now := s.clock.Now().UTC()

	out, err := s.paymentRepo.CancelPayment(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("cancel payment: %w", err)
	}
	if !out.Changed {
		return out, nil
	}

	s.logger.Info("payment cancelled",
		logger.String("payment_id", id),
		logger.String("booking_id", out.Payment.BookingID),
	)

	s.publisher.Publish(ctx, domain.Event{
		Name:       domain.EventPaymentUpdated,
		BookingIDs: []string{out.Payment.BookingID},
		PaymentIDs: []string{id},
		At:         now,
	})
	s.publisher.Publish(ctx, domain.Event{
		Name:          domain.EventBookingCancelled,
		BookingIDs:    []string{out.Payment.BookingID},
		OccurrenceIDs: out.OccurrenceIDs,
		At:            now,
	})

	return out, nil
}

// CancelExpired cancels one bounded batch of expired holds and emits a single
// notification per kind for the whole batch.
func (s *PaymentService) CancelExpired(ctx context.Context) (*domain.ExpiredBatch, error) {
	now := s.clock.Now().UTC()

	batch, err := s.paymentRepo.CancelExpired(ctx, now, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	if batch.Empty() {
		return batch, nil
	}

	s.logger.Info("expired holds cancelled",
		logger.Int("payments", len(batch.Payments)),
		logger.Int("occurrences", len(batch.OccurrenceIDs)),
	)

	s.publisher.Publish(ctx, domain.Event{
		Name:       domain.EventPaymentsCancelled,
		BookingIDs: batch.BookingIDs,
		PaymentIDs: batch.PaymentIDs(),
		At:         now,
	})
	s.publisher.Publish(ctx, domain.Event{
		Name:          domain.EventBookingsExpired,
		BookingIDs:    batch.BookingIDs,
		OccurrenceIDs: batch.OccurrenceIDs,
		At:            now,
	})

	return batch, nil
}
