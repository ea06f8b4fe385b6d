package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCourtNotFound      = errors.New("court not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrOccurrenceNotFound = errors.New("occurrence not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrVoucherNotFound    = errors.New("voucher not found")
)

var (
	ErrSlotConflict      = errors.New("time slot already booked")
	ErrPaymentNotPending = errors.New("payment is not in pending status")
	ErrHoldExpired       = errors.New("payment hold has expired")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOutsideWindow     = errors.New("action not allowed at this time")
)

var (
	ErrRuleResolution  = errors.New("no pricing rule covers the requested time")
	ErrAmbiguousRule   = errors.New("pricing rules of equal priority overlap")
	ErrVoucherInvalid  = errors.New("voucher is not valid")
	ErrValidation      = errors.New("validation error")
	ErrNotifyTransient = errors.New("event publish failed")
)

// SlotConflictError identifies the occurrence blocking a requested window.
type SlotConflictError struct {
	Blocking Occurrence
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s: court %s on %s %s-%s is held by occurrence %s",
		ErrSlotConflict, e.Blocking.CourtID, e.Blocking.Date.Format(DateLayout),
		e.Blocking.StartTime, e.Blocking.EndTime, e.Blocking.ID)
}

func (e *SlotConflictError) Unwrap() error { return ErrSlotConflict }

// RuleResolutionError names the first minute no rule covers.
type RuleResolutionError struct {
	Weekday int
	At      TimeOfDay
}

func (e *RuleResolutionError) Error() string {
	return fmt.Sprintf("%s: weekday %d at %s", ErrRuleResolution, e.Weekday, e.At)
}

func (e *RuleResolutionError) Unwrap() error { return ErrRuleResolution }

// AmbiguousRuleError is a configuration error: two best-priority rules match the same minute.
type AmbiguousRuleError struct {
	RuleIDs  [2]string
	Priority int
	At       TimeOfDay
}

func (e *AmbiguousRuleError) Error() string {
	return fmt.Sprintf("%s: rules %s and %s (priority %d) both match %s",
		ErrAmbiguousRule, e.RuleIDs[0], e.RuleIDs[1], e.Priority, e.At)
}

func (e *AmbiguousRuleError) Unwrap() error { return ErrAmbiguousRule }

type VoucherReason string

const (
	VoucherReasonNotStarted   VoucherReason = "voucher is not active yet"
	VoucherReasonExpired      VoucherReason = "voucher has expired"
	VoucherReasonUsageLimit   VoucherReason = "voucher usage limit reached"
	VoucherReasonPerUserLimit VoucherReason = "voucher already used the maximum number of times by this user"
	VoucherReasonBelowMinimum VoucherReason = "order total is below the voucher minimum"
	VoucherReasonUnknown      VoucherReason = "voucher does not exist"
	VoucherReasonZeroDiscount VoucherReason = "voucher gives no discount for this order"
)

type VoucherError struct {
	VoucherID string
	Reason    VoucherReason
}

func (e *VoucherError) Error() string {
	return fmt.Sprintf("%s: %s", ErrVoucherInvalid, e.Reason)
}

func (e *VoucherError) Unwrap() error { return ErrVoucherInvalid }
