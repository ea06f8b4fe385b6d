package domain

import "time"

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

type Voucher struct {
	ID            string       `json:"id"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue int64        `json:"discount_value"`
	// MaxDiscount caps percent discounts. Zero means no cap.
	MaxDiscount   int64     `json:"max_discount"`
	MinOrderTotal int64     `json:"min_order_total"`
	ValidFrom     time.Time `json:"valid_from"`
	ValidTo       time.Time `json:"valid_to"`
	// UsageLimit and PerUserLimit of zero mean unlimited.
	UsageLimit   int       `json:"usage_limit"`
	PerUserLimit int       `json:"per_user_limit"`
	UsedCount    int       `json:"used_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type VoucherUsage struct {
	VoucherID string    `json:"voucher_id"`
	UserID    string    `json:"user_id"`
	BookingID string    `json:"booking_id"`
	UsedAt    time.Time `json:"used_at"`
}

type VoucherValidation struct {
	IsValid        bool   `json:"is_valid"`
	DiscountAmount int64  `json:"discount_amount"`
	OrderTotal     int64  `json:"order_total"`
	ErrorMessage   string `json:"error_message,omitempty"`
}
