package dto

import (
	"cowork/internal/domains/booking/model"
	"cowork/shared/constant"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is published to the broadcaster after a booking changes state.
type BookingEvent struct {
	Type          string          `json:"type"`
	BookingID     string          `json:"booking_id"`
	RoomID        string          `json:"room_id"`
	RequesterID   string          `json:"requester_id"`
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
	Status        string          `json:"status"`
	BillingTarget string          `json:"billing_target"`
	Credits       decimal.Decimal `json:"credits"`
	OccurredAt    string          `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking, credits decimal.Decimal, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		RoomID:        booking.RoomID,
		RequesterID:   booking.RequesterID,
		StartTime:     booking.StartTime.UTC().Format(constant.DateFormat),
		EndTime:       booking.EndTime.UTC().Format(constant.DateFormat),
		Status:        booking.Status,
		BillingTarget: booking.BillingTarget,
		Credits:       credits,
		OccurredAt:    occurredAt.UTC().Format(constant.DateFormat),
	}
}
