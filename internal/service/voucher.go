package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/pricing"
	"github.com/wb-go/wbf/logger"
)

// evaluateVoucher returns the discount v grants on total, or a *domain.VoucherError.
func evaluateVoucher(v *domain.Voucher, total int64, now time.Time, userUses int) (int64, error) {
	reject := func(r domain.VoucherReason) error {
		return &domain.VoucherError{VoucherID: v.ID, Reason: r}
	}

	switch {
	case !v.ValidFrom.IsZero() && now.Before(v.ValidFrom):
		return 0, reject(domain.VoucherReasonNotStarted)
	case !v.ValidTo.IsZero() && !now.Before(v.ValidTo):
		return 0, reject(domain.VoucherReasonExpired)
	case v.UsageLimit > 0 && v.UsedCount >= v.UsageLimit:
		return 0, reject(domain.VoucherReasonUsageLimit)
	case v.PerUserLimit > 0 && userUses >= v.PerUserLimit:
		return 0, reject(domain.VoucherReasonPerUserLimit)
	case total < v.MinOrderTotal:
		return 0, reject(domain.VoucherReasonBelowMinimum)
	}

	var discount int64
	switch v.DiscountType {
	case domain.DiscountTypePercent:
		discount = pricing.PercentOf(total, v.DiscountValue)
		if v.MaxDiscount > 0 {
			discount = min(discount, v.MaxDiscount)
		}
	case domain.DiscountTypeFixed:
		discount = v.DiscountValue
	}
	discount = min(discount, total)

	if discount <= 0 {
		return 0, reject(domain.VoucherReasonZeroDiscount)
	}
	return discount, nil
}

// applyVoucher loads the voucher referenced by req and evaluates it against the server-side total.
func (s *BookingService) applyVoucher(ctx context.Context, req *domain.BookingRequest, total int64, now time.Time) (*domain.Voucher, int64, error) {
	if req.VoucherID == nil || *req.VoucherID == "" {
		return nil, 0, nil
	}

	v, err := s.voucherRepo.GetVoucher(ctx, *req.VoucherID)
	if err != nil {
		if errors.Is(err, domain.ErrVoucherNotFound) {
			return nil, 0, &domain.VoucherError{VoucherID: *req.VoucherID, Reason: domain.VoucherReasonUnknown}
		}
		return nil, 0, fmt.Errorf("get voucher: %w", err)
	}

	uses := 0
	if req.UserID != "" && v.PerUserLimit > 0 {
		if uses, err = s.voucherRepo.CountVoucherUsage(ctx, v.ID, req.UserID); err != nil {
			return nil, 0, fmt.Errorf("count voucher usage: %w", err)
		}
	}

	discount, err := evaluateVoucher(v, total, now, uses)
	if err != nil {
		return nil, 0, err
	}
	return v, discount, nil
}

// ValidateVoucher reports whether voucherID applies to the booking described by req.
// The order total is recomputed from the stored rules; a client-supplied total is ignored.
func (s *BookingService) ValidateVoucher(ctx context.Context, voucherID string, req *domain.BookingRequest) (*domain.VoucherValidation, error) {
	priced, err := s.price(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.ClientTotal != nil && *req.ClientTotal != priced.total {
		s.logger.Debug("client total differs from server total",
			logger.String("court_id", req.CourtID),
			logger.Int64("client_total", *req.ClientTotal),
			logger.Int64("server_total", priced.total),
		)
	}

	req.VoucherID = &voucherID
	_, discount, err := s.applyVoucher(ctx, req, priced.total, s.clock.Now().UTC())
	if err != nil {
		var verr *domain.VoucherError
		if errors.As(err, &verr) {
			return &domain.VoucherValidation{
				IsValid:      false,
				OrderTotal:   priced.total,
				ErrorMessage: string(verr.Reason),
			}, nil
		}
		return nil, err
	}

	return &domain.VoucherValidation{
		IsValid:        true,
		DiscountAmount: discount,
		OrderTotal:     priced.total,
	}, nil
}

// CreateVoucher registers a voucher so bookings can redeem it.
func (s *BookingService) CreateVoucher(ctx context.Context, v *domain.Voucher) (*domain.Voucher, error) {
	if v.Code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}
	switch v.DiscountType {
	case domain.DiscountTypePercent:
		if v.DiscountValue <= 0 || v.DiscountValue > 100 {
			return nil, fmt.Errorf("%w: percent discount must be within 1..100", domain.ErrValidation)
		}
	case domain.DiscountTypeFixed:
		if v.DiscountValue <= 0 {
			return nil, fmt.Errorf("%w: fixed discount must be positive", domain.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown discount type %q", domain.ErrValidation, v.DiscountType)
	}
	if !v.ValidTo.IsZero() && !v.ValidFrom.IsZero() && !v.ValidTo.After(v.ValidFrom) {
		return nil, fmt.Errorf("%w: valid_to must be after valid_from", domain.ErrValidation)
	}

	if v.ID == "" {
		v.ID = newID()
	}
	v.UsedCount = 0
	v.CreatedAt = s.clock.Now().UTC()

	if err := s.voucherRepo.CreateVoucher(ctx, v); err != nil {
		return nil, fmt.Errorf("create voucher: %w", err)
	}
	return v, nil
}
