// Package policy holds the booking rules that depend only on the clock and the
// configured limits, so they can be checked before any storage is touched.
package policy

import (
	"cowork/config"
	"cowork/internal/domains/booking/model"
	memberModel "cowork/internal/domains/member/model"
	"fmt"
	"time"
)

type Policy struct {
	minDuration time.Duration
	maxDuration time.Duration
	cancelGrace time.Duration
}

func New(cfg *config.Config) Policy {
	return Policy{
		minDuration: time.Duration(cfg.Booking.MinDurationMinutes) * time.Minute,
		maxDuration: time.Duration(cfg.Booking.MaxDurationMinutes) * time.Minute,
		cancelGrace: time.Duration(cfg.Booking.CancelGraceMinutes) * time.Minute,
	}
}

// IsExempt reports whether role skips the duration limits. Exemption follows staff status.
func (p Policy) IsExempt(role string) bool {
	return memberModel.IsStaffRole(role)
}

// CheckCreate rejects starts strictly before now; a start equal to now is accepted.
func (p Policy) CheckCreate(role string, interval model.Interval, now time.Time) error {
	if interval.Start.Before(now) {
		return model.ErrPastStartTime
	}

	if p.IsExempt(role) {
		return nil
	}

	duration := interval.Duration()

	if p.minDuration > 0 && duration < p.minDuration {
		return model.InvalidDuration(fmt.Sprintf("booking must last at least %s", p.minDuration))
	}

	if p.maxDuration > 0 && duration > p.maxDuration {
		return model.InvalidDuration(fmt.Sprintf("booking must not last longer than %s", p.maxDuration))
	}

	return nil
}

// CheckCancel allows cancelling up to and including start + grace.
func (p Policy) CheckCancel(booking model.Booking, requesterID string, now time.Time) error {
	if booking.RequesterID != requesterID {
		return model.ErrNotOwner
	}

	if booking.Status == model.StatusCancelled {
		return model.ErrAlreadyCancelled
	}

	if now.After(booking.StartTime.Add(p.cancelGrace)) {
		return model.ErrCancellationWindowExpired
	}

	return nil
}
