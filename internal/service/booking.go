package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/pricing"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/schedule"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	paymentRepo ports.PaymentRepo
	ruleRepo    ports.PricingRuleRepo
	voucherRepo ports.VoucherRepo
	publisher   ports.EventPublisher
	qr          ports.QRIssuer
	clock       ports.Clock
	expander    *schedule.Expander
	policy      Policy
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	paymentRepo ports.PaymentRepo,
	ruleRepo ports.PricingRuleRepo,
	voucherRepo ports.VoucherRepo,
	publisher ports.EventPublisher,
	qr ports.QRIssuer,
	clock ports.Clock,
	policy Policy,
	logger logger.Logger,
) *BookingService {
	policy = policy.withDefaults()
	return &BookingService{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		ruleRepo:    ruleRepo,
		voucherRepo: voucherRepo,
		publisher:   publisher,
		qr:          qr,
		clock:       clock,
		expander:    schedule.NewExpander(policy.MaxRangeDays),
		policy:      policy,
		logger:      logger,
	}
}

func newID() string {
	return uuid.New().String()
}

// Quote prices req without reserving anything.
func (s *BookingService) Quote(ctx context.Context, req *domain.BookingRequest) (*domain.Quote, error) {
	plan, err := normalizePlan(req.PaymentPlan)
	if err != nil {
		return nil, err
	}

	priced, err := s.price(ctx, req)
	if err != nil {
		return nil, err
	}

	_, discount, err := s.applyVoucher(ctx, req, priced.total, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		TotalAmount:    priced.total,
		DiscountAmount: discount,
		PayableAmount:  pricing.Payable(priced.total, discount),
		HoldAmount:     pricing.HoldAmount(priced.total, discount, plan, s.policy.DepositPercent),
		Occurrences:    priced.occurrenceQuotes(),
	}, nil
}

// Create expands, prices and reserves req. The slots and the payment hold are stored
// in one step; a concurrent request for an overlapping window loses with a slot conflict.
func (s *BookingService) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResult, error) {
	plan, err := normalizePlan(req.PaymentPlan)
	if err != nil {
		return nil, err
	}

	priced, err := s.price(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.ClientTotal != nil && *req.ClientTotal != priced.total {
		s.logger.Debug("client total ignored",
			logger.String("court_id", req.CourtID),
			logger.Int64("client_total", *req.ClientTotal),
			logger.Int64("server_total", priced.total),
		)
	}

	now := s.clock.Now().UTC()

	voucher, discount, err := s.applyVoucher(ctx, req, priced.total, now)
	if err != nil {
		return nil, err
	}

	res := s.buildReservation(req, plan, priced, voucher, discount, now)

	if err = s.bookingRepo.Reserve(ctx, res); err != nil {
		return nil, fmt.Errorf("reserve booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", res.Booking.ID),
		logger.String("court_id", res.Booking.CourtID),
		logger.Int("occurrences", len(res.Occurrences)),
		logger.Int64("total", res.Booking.TotalAmount),
		logger.String("payment_id", res.Payment.ID),
	)

	occurrenceIDs := make([]string, 0, len(res.Occurrences))
	for _, o := range res.Occurrences {
		occurrenceIDs = append(occurrenceIDs, o.ID)
	}
	s.publisher.Publish(ctx, domain.Event{
		Name:          domain.EventBookingCreated,
		CourtID:       res.Booking.CourtID,
		BookingIDs:    []string{res.Booking.ID},
		OccurrenceIDs: occurrenceIDs,
		At:            now,
	})
	s.publisher.Publish(ctx, domain.Event{
		Name:       domain.EventPaymentCreated,
		CourtID:    res.Booking.CourtID,
		BookingIDs: []string{res.Booking.ID},
		PaymentIDs: []string{res.Payment.ID},
		At:         now,
	})

	return &domain.BookingResult{
		Booking:     res.Booking,
		Occurrences: res.Occurrences,
		Payment:     res.Payment,
	}, nil
}

func (s *BookingService) buildReservation(
	req *domain.BookingRequest,
	plan domain.PaymentPlan,
	priced *pricedRequest,
	voucher *domain.Voucher,
	discount int64,
	now time.Time,
) *domain.Reservation {
	hold := pricing.HoldAmount(priced.total, discount, plan, s.policy.DepositPercent)

	// Nothing to collect: the booking is active right away.
	bookingStatus := domain.BookingStatusPendingPayment
	occurrenceStatus := domain.OccurrenceStatusPendingPayment
	paymentStatus := domain.PaymentStatusPendingPayment
	var paidAt *time.Time
	if hold == 0 {
		bookingStatus = domain.BookingStatusActive
		occurrenceStatus = domain.OccurrenceStatusActive
		paymentStatus = domain.PaymentStatusPaid
		paidAt = &now
	}

	booking := &domain.Booking{
		ID:             newID(),
		CourtID:        req.CourtID,
		UserID:         req.UserID,
		Mode:           req.Mode,
		Weekdays:       req.Weekdays.Normalize(),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Note:           req.Note,
		PaymentPlan:    plan,
		TotalAmount:    priced.total,
		DiscountAmount: discount,
		Status:         bookingStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.Mode == domain.BookingModeSingle {
		booking.StartDate = domain.DateOf(req.Date)
		booking.EndDate = booking.StartDate
		booking.Weekdays = nil
	} else {
		booking.StartDate = domain.DateOf(req.StartDate)
		booking.EndDate = domain.DateOf(req.EndDate)
	}

	occurrences := make([]*domain.Occurrence, 0, len(priced.slots))
	for _, ps := range priced.slots {
		occurrences = append(occurrences, &domain.Occurrence{
			ID:        newID(),
			BookingID: booking.ID,
			CourtID:   booking.CourtID,
			Date:      ps.slot.Date,
			StartTime: ps.slot.StartTime,
			EndTime:   ps.slot.EndTime,
			Amount:    ps.amount,
			Status:    occurrenceStatus,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	payment := &domain.Payment{
		ID:           newID(),
		BookingID:    booking.ID,
		Amount:       hold,
		Plan:         plan,
		Status:       paymentStatus,
		ExpiresAtUTC: now.Add(s.policy.HoldTTL),
		PaidAt:       paidAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	payment.QRPayload = s.qr.Payload(payment)

	res := &domain.Reservation{
		Booking:     booking,
		Occurrences: occurrences,
		Payment:     payment,
	}
	if voucher != nil {
		booking.VoucherID = &voucher.ID
		res.Usage = &domain.VoucherUsage{
			VoucherID: voucher.ID,
			UserID:    req.UserID,
			BookingID: booking.ID,
			UsedAt:    now,
		}
	}

	return res
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.BookingDetails, error) {
	b, err := s.bookingRepo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	occurrences, err := s.bookingRepo.ListBookingOccurrences(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}

	payments, err := s.paymentRepo.ListBookingPayments(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	details := &domain.BookingDetails{
		Booking:     *b,
		Occurrences: make([]domain.Occurrence, len(occurrences)),
		Payments:    make([]domain.Payment, len(payments)),
	}
	for i, o := range occurrences {
		details.Occurrences[i] = *o
	}
	for i, p := range payments {
		details.Payments[i] = *p
	}

	return details, nil
}

func (s *BookingService) ListCourtOccurrences(ctx context.Context, courtID string, date time.Time) ([]*domain.Occurrence, error) {
	return s.bookingRepo.ListCourtOccurrences(ctx, courtID, domain.DateOf(date))
}

// Cancel withdraws the booking intent. Occurrences already checked in, completed or
// marked as no-show keep their state; pending holds are released.
func (s *BookingService) Cancel(ctx context.Context, id, note string) (*domain.BookingCancellation, error) {
	now := s.clock.Now().UTC()

	c, err := s.bookingRepo.CancelBooking(ctx, id, note, now)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if !c.Changed {
		return c, nil
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.Int("occurrences", len(c.OccurrenceIDs)),
	)

	s.publisher.Publish(ctx, domain.Event{
		Name:          domain.EventBookingCancelled,
		CourtID:       c.Booking.CourtID,
		BookingIDs:    []string{id},
		OccurrenceIDs: c.OccurrenceIDs,
		At:            now,
	})
	if len(c.PaymentIDs) > 0 {
		s.publisher.Publish(ctx, domain.Event{
			Name:       domain.EventPaymentUpdated,
			CourtID:    c.Booking.CourtID,
			BookingIDs: []string{id},
			PaymentIDs: c.PaymentIDs,
			At:         now,
		})
	}

	return c, nil
}

func normalizePlan(p domain.PaymentPlan) (domain.PaymentPlan, error) {
	switch p {
	case "":
		return domain.PaymentPlanFull, nil
	case domain.PaymentPlanFull, domain.PaymentPlanDeposit:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown payment plan %q", domain.ErrValidation, p)
	}
}
