package service

import (
	"context"
	"testing"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateVoucher(t *testing.T) {
	now := start

	tests := []struct {
		name     string
		voucher  domain.Voucher
		total    int64
		userUses int
		want     int64
		reason   domain.VoucherReason
	}{
		{
			name:    "percent",
			voucher: domain.Voucher{DiscountType: domain.DiscountTypePercent, DiscountValue: 10},
			total:   250_000,
			want:    25_000,
		},
		{
			name:    "percent capped",
			voucher: domain.Voucher{DiscountType: domain.DiscountTypePercent, DiscountValue: 50, MaxDiscount: 40_000},
			total:   250_000,
			want:    40_000,
		},
		{
			name:    "fixed clamped to total",
			voucher: domain.Voucher{DiscountType: domain.DiscountTypeFixed, DiscountValue: 300_000},
			total:   250_000,
			want:    250_000,
		},
		{
			name:    "not started",
			voucher: domain.Voucher{DiscountType: domain.DiscountTypeFixed, DiscountValue: 1, ValidFrom: now.Add(time.Hour)},
			total:   100,
			reason:  domain.VoucherReasonNotStarted,
		},
		{
			name:    "expired at valid_to",
			voucher: domain.Voucher{DiscountType: domain.DiscountTypeFixed, DiscountValue: 1, ValidTo: now},
			total:   100,
			reason:  domain.VoucherReasonExpired,
		},
		{
			name:    "usage limit",
			voucher: domain.Voucher{DiscountType: domain.DiscountTypeFixed, DiscountValue: 1, UsageLimit: 3, UsedCount: 3},
			total:   100,
			reason:  domain.VoucherReasonUsageLimit,
		},
		{
			name:     "per user limit",
			voucher:  domain.Voucher{DiscountType: domain.DiscountTypeFixed, DiscountValue: 1, PerUserLimit: 1},
			total:    100,
			userUses: 1,
			reason:   domain.VoucherReasonPerUserLimit,
		},
		{
			name:    "below minimum",
			voucher: domain.Voucher{DiscountType: domain.DiscountTypeFixed, DiscountValue: 1, MinOrderTotal: 500},
			total:   100,
			reason:  domain.VoucherReasonBelowMinimum,
		},
		{
			name:    "rounds to zero",
			voucher: domain.Voucher{DiscountType: domain.DiscountTypePercent, DiscountValue: 1},
			total:   10,
			reason:  domain.VoucherReasonZeroDiscount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluateVoucher(&tt.voucher, tt.total, now, tt.userUses)
			if tt.reason != "" {
				var verr *domain.VoucherError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.reason, verr.Reason)
				assert.ErrorIs(t, err, domain.ErrVoucherInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingService_ValidateVoucher(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.bookings.CreateVoucher(ctx, &domain.Voucher{
		ID:            "ten",
		Code:          "TEN",
		DiscountType:  domain.DiscountTypePercent,
		DiscountValue: 10,
	})
	require.NoError(t, err)

	req := tuesdayEvening()
	bogus := int64(5)
	req.ClientTotal = &bogus

	v, err := f.bookings.ValidateVoucher(ctx, "ten", req)
	require.NoError(t, err)
	assert.True(t, v.IsValid)
	assert.Equal(t, int64(250_000), v.OrderTotal)
	assert.Equal(t, int64(25_000), v.DiscountAmount)

	v, err = f.bookings.ValidateVoucher(ctx, "nope", tuesdayEvening())
	require.NoError(t, err)
	assert.False(t, v.IsValid)
	assert.Equal(t, "voucher does not exist", v.ErrorMessage)
}

func TestBookingService_Create_VoucherRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.bookings.CreateVoucher(ctx, &domain.Voucher{
		ID:            "big",
		Code:          "BIG",
		DiscountType:  domain.DiscountTypeFixed,
		DiscountValue: 10_000,
		MinOrderTotal: 1_000_000,
	})
	require.NoError(t, err)

	req := tuesdayEvening()
	id := "big"
	req.VoucherID = &id
	_, err = f.bookings.Create(ctx, req)

	require.ErrorIs(t, err, domain.ErrVoucherInvalid)
	assert.Empty(t, f.events.names())
}

func TestBookingService_CreateVoucher_Validation(t *testing.T) {
	f := newFixture(t)

	cases := map[string]domain.Voucher{
		"missing code":   {DiscountType: domain.DiscountTypeFixed, DiscountValue: 1},
		"percent > 100":  {Code: "X", DiscountType: domain.DiscountTypePercent, DiscountValue: 120},
		"zero fixed":     {Code: "X", DiscountType: domain.DiscountTypeFixed},
		"unknown type":   {Code: "X", DiscountType: "bogo", DiscountValue: 1},
		"inverted range": {Code: "X", DiscountType: domain.DiscountTypeFixed, DiscountValue: 1, ValidFrom: start, ValidTo: start},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.bookings.CreateVoucher(context.Background(), &v)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
