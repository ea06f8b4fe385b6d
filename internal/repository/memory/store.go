// Package memory is an in-process implementation of the repository ports.
// Check-and-insert for a court is serialized by a per-court mutex; different courts proceed in parallel.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

type Store struct {
	mu          sync.RWMutex
	bookings    map[string]*domain.Booking
	occurrences map[string]*domain.Occurrence
	byCourt     map[string][]string
	byBooking   map[string][]string
	payments    map[string]*domain.Payment
	rules       map[string][]domain.PricingRule
	vouchers    map[string]*domain.Voucher
	usages      []domain.VoucherUsage

	locksMu    sync.Mutex
	courtLocks map[string]*sync.Mutex
}

func New() *Store {
	return &Store{
		bookings:    make(map[string]*domain.Booking),
		occurrences: make(map[string]*domain.Occurrence),
		byCourt:     make(map[string][]string),
		byBooking:   make(map[string][]string),
		payments:    make(map[string]*domain.Payment),
		rules:       make(map[string][]domain.PricingRule),
		vouchers:    make(map[string]*domain.Voucher),
		courtLocks:  make(map[string]*sync.Mutex),
	}
}

func (s *Store) courtLock(courtID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.courtLocks[courtID]
	if !ok {
		l = &sync.Mutex{}
		s.courtLocks[courtID] = l
	}
	return l
}

// Reserve implements ports.BookingRepo.
func (s *Store) Reserve(ctx context.Context, r *domain.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := s.courtLock(r.Booking.CourtID)
	l.Lock()
	defer l.Unlock()

	// Only Reserve makes a slot blocking, and it holds the court lock,
	// so the result of this scan stays valid until the insert below.
	if err := s.findConflict(r.Booking.CourtID, r.Occurrences); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Usage != nil {
		if err := s.redeemVoucher(r.Usage); err != nil {
			return err
		}
	}

	b := *r.Booking
	s.bookings[b.ID] = &b
	for _, o := range r.Occurrences {
		occ := *o
		s.occurrences[occ.ID] = &occ
		s.byCourt[occ.CourtID] = append(s.byCourt[occ.CourtID], occ.ID)
		s.byBooking[occ.BookingID] = append(s.byBooking[occ.BookingID], occ.ID)
	}
	p := *r.Payment
	s.payments[p.ID] = &p

	return nil
}

func (s *Store) findConflict(courtID string, candidates []*domain.Occurrence) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.byCourt[courtID] {
		existing := s.occurrences[id]
		if !existing.Status.Blocking() {
			continue
		}
		for _, c := range candidates {
			if c.Overlaps(existing) {
				return &domain.SlotConflictError{Blocking: *existing}
			}
		}
	}
	return nil
}

// redeemVoucher counts the usage. Caller holds s.mu.
func (s *Store) redeemVoucher(u *domain.VoucherUsage) error {
	v, ok := s.vouchers[u.VoucherID]
	if !ok {
		return &domain.VoucherError{VoucherID: u.VoucherID, Reason: domain.VoucherReasonUnknown}
	}
	if v.UsageLimit > 0 && v.UsedCount >= v.UsageLimit {
		return &domain.VoucherError{VoucherID: v.ID, Reason: domain.VoucherReasonUsageLimit}
	}
	if v.PerUserLimit > 0 && s.countUsage(v.ID, u.UserID) >= v.PerUserLimit {
		return &domain.VoucherError{VoucherID: v.ID, Reason: domain.VoucherReasonPerUserLimit}
	}

	v.UsedCount++
	s.usages = append(s.usages, *u)
	return nil
}

func (s *Store) countUsage(voucherID, userID string) int {
	n := 0
	for _, u := range s.usages {
		if u.VoucherID == voucherID && u.UserID == userID {
			n++
		}
	}
	return n
}

func (s *Store) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *Store) ListBookingOccurrences(_ context.Context, bookingID string) ([]*domain.Occurrence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(s.byBooking[bookingID], func(*domain.Occurrence) bool { return true }), nil
}

func (s *Store) ListCourtOccurrences(_ context.Context, courtID string, date time.Time) ([]*domain.Occurrence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(s.byCourt[courtID], func(o *domain.Occurrence) bool { return o.Date.Equal(date) }), nil
}

// collect copies the matching occurrences ordered by date and start time. Caller holds s.mu.
func (s *Store) collect(ids []string, keep func(*domain.Occurrence) bool) []*domain.Occurrence {
	out := make([]*domain.Occurrence, 0, len(ids))
	for _, id := range ids {
		o := s.occurrences[id]
		if keep(o) {
			cp := *o
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Occurrence) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.StartTime, b.StartTime)
	})
	return out
}

func (s *Store) GetOccurrence(_ context.Context, id string) (*domain.Occurrence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.occurrences[id]
	if !ok {
		return nil, domain.ErrOccurrenceNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *Store) TransitionOccurrence(_ context.Context, t domain.StatusTransition) (*domain.Occurrence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.occurrences[t.ID]
	if !ok {
		return nil, domain.ErrOccurrenceNotFound
	}
	if !slices.Contains(t.From, o.Status) {
		return nil, domain.ErrInvalidTransition
	}

	o.Status = t.To
	o.UpdatedAt = t.At
	if t.Note != "" {
		o.Note = t.Note
	}
	if t.To == domain.OccurrenceStatusCheckedIn {
		at := t.At
		o.CheckedInAt = &at
	}

	cp := *o
	return &cp, nil
}

func (s *Store) CancelBooking(_ context.Context, bookingID, note string, at time.Time) (*domain.BookingCancellation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	res := &domain.BookingCancellation{}
	switch b.Status {
	case domain.BookingStatusCancelled:
		cp := *b
		res.Booking = &cp
		return res, nil
	case domain.BookingStatusCompleted:
		return nil, domain.ErrInvalidTransition
	}

	b.Status = domain.BookingStatusCancelled
	b.UpdatedAt = at
	if note != "" {
		b.Note = note
	}

	for _, id := range s.byBooking[bookingID] {
		o := s.occurrences[id]
		if o.Status != domain.OccurrenceStatusPendingPayment && o.Status != domain.OccurrenceStatusActive {
			continue
		}
		o.Status = domain.OccurrenceStatusCancelled
		o.UpdatedAt = at
		res.OccurrenceIDs = append(res.OccurrenceIDs, o.ID)
	}

	for _, p := range s.payments {
		if p.BookingID == bookingID && p.Status == domain.PaymentStatusPendingPayment {
			p.Status = domain.PaymentStatusCancelled
			p.UpdatedAt = at
			res.PaymentIDs = append(res.PaymentIDs, p.ID)
		}
	}
	slices.Sort(res.PaymentIDs)

	cp := *b
	res.Booking = &cp
	res.Changed = true
	return res, nil
}

func (s *Store) ListRules(_ context.Context, courtID string) ([]domain.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.rules[courtID]), nil
}

func (s *Store) ReplaceRules(_ context.Context, courtID string, rules []domain.PricingRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules[courtID] = slices.Clone(rules)
	return nil
}

func (s *Store) CreateVoucher(_ context.Context, v *domain.Voucher) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *v
	s.vouchers[v.ID] = &cp
	return nil
}

func (s *Store) GetVoucher(_ context.Context, id string) (*domain.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vouchers[id]
	if !ok {
		return nil, domain.ErrVoucherNotFound
	}
	cp := *v
	return &cp, nil
}

func (s *Store) CountVoucherUsage(_ context.Context, voucherID, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countUsage(voucherID, userID), nil
}
