package pricing

import (
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

// Payable is the order total after discount, never negative.
func Payable(total, discount int64) int64 {
	return max(total-discount, 0)
}

// HoldAmount is what the customer must pay now to keep the reservation.
// Deposit plans charge round(payable × percent / 100).
func HoldAmount(total, discount int64, plan domain.PaymentPlan, depositPercent int) int64 {
	payable := Payable(total, discount)
	if plan != domain.PaymentPlanDeposit {
		return payable
	}
	return divRound(payable*int64(depositPercent), 100)
}

// PercentOf returns round(amount × percent / 100).
func PercentOf(amount, percent int64) int64 {
	return divRound(amount*percent, 100)
}
