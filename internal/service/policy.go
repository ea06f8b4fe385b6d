package service

import (
	"time"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/schedule"
)

const (
	defaultHoldTTL        = 15 * time.Minute
	defaultDepositPercent = 30
	defaultEarlyWindow    = 15 * time.Minute
	defaultSweepBatch     = 200
)

// Policy holds the business settings of the reservation lifecycle.
type Policy struct {
	HoldTTL            time.Duration
	DepositPercent     int
	CheckInEarlyWindow time.Duration
	MaxRangeDays       int
	SweepBatchSize     int
	// Location is the facility timezone used to place occurrences on the clock.
	Location *time.Location
}

func (p Policy) withDefaults() Policy {
	if p.HoldTTL <= 0 {
		p.HoldTTL = defaultHoldTTL
	}
	if p.DepositPercent <= 0 || p.DepositPercent > 100 {
		p.DepositPercent = defaultDepositPercent
	}
	if p.CheckInEarlyWindow < 0 {
		p.CheckInEarlyWindow = defaultEarlyWindow
	}
	if p.MaxRangeDays <= 0 {
		p.MaxRangeDays = schedule.DefaultMaxRangeDays
	}
	if p.SweepBatchSize <= 0 {
		p.SweepBatchSize = defaultSweepBatch
	}
	if p.Location == nil {
		p.Location = time.UTC
	}
	return p
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
