package dto

import (
	"fmt"
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

type BookingRequest struct {
	CourtID     string  `json:"court_id"     binding:"required"`
	UserID      string  `json:"user_id"`
	Mode        string  `json:"mode"         binding:"required,oneof=single recurring"`
	Date        string  `json:"date"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Weekdays    []int   `json:"weekdays"`
	StartTime   string  `json:"start_time"   binding:"required"`
	EndTime     string  `json:"end_time"     binding:"required"`
	Note        string  `json:"note"`
	PaymentPlan string  `json:"payment_plan" binding:"omitempty,oneof=full deposit"`
	VoucherID   *string `json:"voucher_id"`
	ClientTotal *int64  `json:"client_total"`
}

// ToDomain parses dates and times. Semantic checks are left to the service.
func (r *BookingRequest) ToDomain() (*domain.BookingRequest, error) {
	out := &domain.BookingRequest{
		CourtID:     r.CourtID,
		UserID:      r.UserID,
		Mode:        domain.BookingMode(r.Mode),
		Weekdays:    domain.WeekdaySet(r.Weekdays),
		Note:        r.Note,
		PaymentPlan: domain.PaymentPlan(r.PaymentPlan),
		VoucherID:   r.VoucherID,
		ClientTotal: r.ClientTotal,
	}

	var err error
	if out.StartTime, err = domain.ParseTimeOfDay(r.StartTime); err != nil {
		return nil, err
	}
	if out.EndTime, err = domain.ParseTimeOfDay(r.EndTime); err != nil {
		return nil, err
	}

	for _, d := range []struct {
		raw string
		dst *time.Time
	}{
		{r.Date, &out.Date},
		{r.StartDate, &out.StartDate},
		{r.EndDate, &out.EndDate},
	} {
		if d.raw == "" {
			continue
		}
		if *d.dst, err = domain.ParseDate(d.raw); err != nil {
			return nil, err
		}
	}

	return out, nil
}

type NoteRequest struct {
	Note string `json:"note"`
}

type ValidateVoucherRequest struct {
	VoucherID string         `json:"voucher_id" binding:"required"`
	Booking   BookingRequest `json:"booking"`
}

type CreateVoucherRequest struct {
	ID            string `json:"id"`
	Code          string `json:"code"           binding:"required"`
	DiscountType  string `json:"discount_type"  binding:"required,oneof=percent fixed"`
	DiscountValue int64  `json:"discount_value" binding:"required,gt=0"`
	MaxDiscount   int64  `json:"max_discount"   binding:"gte=0"`
	MinOrderTotal int64  `json:"min_order_total" binding:"gte=0"`
	ValidFrom     string `json:"valid_from"`
	ValidTo       string `json:"valid_to"`
	UsageLimit    int    `json:"usage_limit"    binding:"gte=0"`
	PerUserLimit  int    `json:"per_user_limit" binding:"gte=0"`
}

func (r *CreateVoucherRequest) ToDomain() (*domain.Voucher, error) {
	v := &domain.Voucher{
		ID:            r.ID,
		Code:          r.Code,
		DiscountType:  domain.DiscountType(r.DiscountType),
		DiscountValue: r.DiscountValue,
		MaxDiscount:   r.MaxDiscount,
		MinOrderTotal: r.MinOrderTotal,
		UsageLimit:    r.UsageLimit,
		PerUserLimit:  r.PerUserLimit,
	}

	var err error
	if r.ValidFrom != "" {
		if v.ValidFrom, err = time.Parse(time.RFC3339, r.ValidFrom); err != nil {
			return nil, fmt.Errorf("%w: invalid valid_from, expected RFC3339", domain.ErrValidation)
		}
	}
	if r.ValidTo != "" {
		if v.ValidTo, err = time.Parse(time.RFC3339, r.ValidTo); err != nil {
			return nil, fmt.Errorf("%w: invalid valid_to, expected RFC3339", domain.ErrValidation)
		}
	}
	return v, nil
}

type PricingRuleRequest struct {
	ID           string `json:"id"`
	Weekdays     []int  `json:"weekdays"`
	StartTime    string `json:"start_time"     binding:"required"`
	EndTime      string `json:"end_time"       binding:"required"`
	PricePerHour int64  `json:"price_per_hour" binding:"gte=0"`
	Priority     int    `json:"priority"`
}

type ReplaceRulesRequest struct {
	Rules []PricingRuleRequest `json:"rules" binding:"dive"`
}

func (r *ReplaceRulesRequest) ToDomain() ([]domain.PricingRule, error) {
	rules := make([]domain.PricingRule, 0, len(r.Rules))
	for _, in := range r.Rules {
		start, err := domain.ParseTimeOfDay(in.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseTimeOfDay(in.EndTime)
		if err != nil {
			return nil, err
		}
		rules = append(rules, domain.PricingRule{
			ID:           in.ID,
			Weekdays:     domain.WeekdaySet(in.Weekdays),
			StartTime:    start,
			EndTime:      end,
			PricePerHour: in.PricePerHour,
			Priority:     in.Priority,
		})
	}
	return rules, nil
}
