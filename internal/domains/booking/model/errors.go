package model

import (
	"cowork/shared/failure"
	"net/http"
)

const (
	KindInvalidInterval           = "invalid_interval"
	KindPastStartTime             = "past_start_time"
	KindInvalidDuration           = "invalid_duration"
	KindRoomUnavailable           = "room_unavailable"
	KindNotOwner                  = "not_owner"
	KindCancellationWindowExpired = "cancellation_window_expired"
	KindAlreadyCancelled          = "already_cancelled"
	KindInvalidGuestInfo          = "invalid_guest_info"
)

var (
	ErrInvalidInterval           = failure.New(http.StatusBadRequest, KindInvalidInterval, "start time must be before end time")
	ErrIntervalTooLong           = failure.New(http.StatusBadRequest, KindInvalidInterval, "interval must not span more than a year")
	ErrPastStartTime             = failure.New(http.StatusBadRequest, KindPastStartTime, "start time is in the past")
	ErrRoomUnavailable           = failure.New(http.StatusConflict, KindRoomUnavailable, "room is not available for the requested time")
	ErrNotOwner                  = failure.New(http.StatusForbidden, KindNotOwner, "only the requester can cancel this booking")
	ErrCancellationWindowExpired = failure.New(http.StatusConflict, KindCancellationWindowExpired, "the cancellation window for this booking has passed")
	ErrAlreadyCancelled          = failure.New(http.StatusConflict, KindAlreadyCancelled, "booking is already cancelled")
	ErrInvalidGuestInfo          = failure.New(http.StatusBadRequest, KindInvalidGuestInfo, "external bookings require a guest name and an email or phone")
	ErrBookingNotFound           = failure.NotFound("booking not found")
)

// InvalidDuration carries the configured bounds in its message.
func InvalidDuration(msg string) *failure.Failure {
	return failure.New(http.StatusBadRequest, KindInvalidDuration, msg)
}
