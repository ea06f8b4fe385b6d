package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

func (s *Store) GetPayment(_ context.Context, id string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) ListBookingPayments(_ context.Context, bookingID string) ([]*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Payment
	for _, p := range s.payments {
		if p.BookingID == bookingID {
			cp := *p
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Payment) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

func (s *Store) MarkPaid(_ context.Context, id string, now time.Time) (*domain.PaymentOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}

	switch {
	case p.Status == domain.PaymentStatusPaid:
		cp := *p
		return &domain.PaymentOutcome{Payment: &cp}, nil
	case !now.Before(p.ExpiresAtUTC):
		return nil, domain.ErrHoldExpired
	case p.Status != domain.PaymentStatusPendingPayment:
		return nil, domain.ErrPaymentNotPending
	}

	p.Status = domain.PaymentStatusPaid
	p.PaidAt = &now
	p.UpdatedAt = now

	ids := s.cascade(p, domain.OccurrenceStatusActive, now)
	if b, ok := s.bookings[p.BookingID]; ok && b.Status == domain.BookingStatusPendingPayment {
		b.Status = domain.BookingStatusActive
		b.UpdatedAt = now
	}

	cp := *p
	return &domain.PaymentOutcome{Payment: &cp, OccurrenceIDs: ids, Changed: true}, nil
}

func (s *Store) CancelPayment(_ context.Context, id string, now time.Time) (*domain.PaymentOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}

	switch p.Status {
	case domain.PaymentStatusCancelled:
		cp := *p
		return &domain.PaymentOutcome{Payment: &cp}, nil
	case domain.PaymentStatusPaid:
		return nil, domain.ErrPaymentNotPending
	}

	ids := s.cancelHold(p, now)

	cp := *p
	return &domain.PaymentOutcome{Payment: &cp, OccurrenceIDs: ids, Changed: true}, nil
}

func (s *Store) CancelExpired(_ context.Context, now time.Time, limit int) (*domain.ExpiredBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []*domain.Payment
	for _, p := range s.payments {
		if p.Status == domain.PaymentStatusPendingPayment && !now.Before(p.ExpiresAtUTC) {
			expired = append(expired, p)
		}
	}
	slices.SortFunc(expired, func(a, b *domain.Payment) int {
		if c := a.ExpiresAtUTC.Compare(b.ExpiresAtUTC); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}

	batch := &domain.ExpiredBatch{}
	seen := make(map[string]bool)
	for _, p := range expired {
		batch.OccurrenceIDs = append(batch.OccurrenceIDs, s.cancelHold(p, now)...)
		cp := *p
		batch.Payments = append(batch.Payments, &cp)
		if !seen[p.BookingID] {
			seen[p.BookingID] = true
			batch.BookingIDs = append(batch.BookingIDs, p.BookingID)
		}
	}

	return batch, nil
}

// cancelHold cancels p and what it was keeping. Caller holds s.mu.
func (s *Store) cancelHold(p *domain.Payment, now time.Time) []string {
	p.Status = domain.PaymentStatusCancelled
	p.UpdatedAt = now

	ids := s.cascade(p, domain.OccurrenceStatusCancelled, now)
	if b, ok := s.bookings[p.BookingID]; ok && b.Status == domain.BookingStatusPendingPayment {
		b.Status = domain.BookingStatusCancelled
		b.UpdatedAt = now
	}
	return ids
}

// cascade moves the pending occurrences covered by p to status. Caller holds s.mu.
func (s *Store) cascade(p *domain.Payment, status domain.OccurrenceStatus, now time.Time) []string {
	var ids []string
	for _, id := range s.byBooking[p.BookingID] {
		if p.OccurrenceID != nil && *p.OccurrenceID != id {
			continue
		}
		o := s.occurrences[id]
		if o.Status != domain.OccurrenceStatusPendingPayment {
			continue
		}
		o.Status = status
		o.UpdatedAt = now
		ids = append(ids, id)
	}
	return ids
}
