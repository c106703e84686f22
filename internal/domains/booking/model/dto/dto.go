package dto

import (
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/guest"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/timezone"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"required"`
	StartTime     string `json:"start_time"     validate:"required,rfc3339"          example:"2026-10-20T09:00:00+07:00"`
	EndTime       string `json:"end_time"       validate:"required,rfc3339"          example:"2026-10-20T10:00:00+07:00"`
	BillingTarget string `json:"billing_target" validate:"billingtarget"             example:"personal"`
	Notes         string `json:"notes"          validate:"omitempty,max=500"`
	GuestName     string `json:"guest_name"     validate:"omitempty,max=100"`
	GuestEmail    string `json:"guest_email"    validate:"omitempty,email,max=100"`
	GuestPhone    string `json:"guest_phone"    validate:"omitempty,max=20"`
}

func (c *CreateBookingRequest) Interval() (model.Interval, error) {
	return parseInterval(c.StartTime, c.EndTime)
}

func (c *CreateBookingRequest) Guest() guest.Info {
	return guest.Info{
		Name:  strings.TrimSpace(c.GuestName),
		Email: strings.TrimSpace(c.GuestEmail),
		Phone: strings.TrimSpace(c.GuestPhone),
	}
}

// IntervalQuery is the start/end pair used by availability and preview lookups.
type IntervalQuery struct {
	Start string `validate:"required,rfc3339"`
	End   string `validate:"required,rfc3339"`
}

func (q *IntervalQuery) Interval() (model.Interval, error) {
	return parseInterval(q.Start, q.End)
}

func parseInterval(start, end string) (model.Interval, error) {
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return model.Interval{}, model.ErrInvalidInterval
	}

	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return model.Interval{}, model.ErrInvalidInterval
	}

	return model.NewInterval(startTime, endTime)
}

type GuestResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	RoomID          string          `json:"room_id"`
	RequesterID     string          `json:"requester_id"`
	StartTime       string          `json:"start_time"`
	EndTime         string          `json:"end_time"`
	CreditsCharged  decimal.Decimal `json:"credits_charged"            swaggertype:"string" example:"2"`
	Status          string          `json:"status"`
	EffectiveStatus string          `json:"effective_status"`
	BillingTarget   string          `json:"billing_target"`
	OrganizationID  *string         `json:"organization_id,omitempty"`
	Notes           string          `json:"notes"`
	Site            string          `json:"site"`
	Guest           *GuestResponse  `json:"guest,omitempty"`
	CancelledAt     *string         `json:"cancelled_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking, now time.Time) {
	r.ID = booking.ID
	r.RoomID = booking.RoomID
	r.RequesterID = booking.RequesterID
	r.StartTime = timezone.Format(booking.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(booking.EndTime, constant.DateFormat)
	r.CreditsCharged = booking.CreditsCharged
	r.Status = booking.Status
	r.EffectiveStatus = booking.EffectiveStatus(now)
	r.BillingTarget = booking.BillingTarget
	r.OrganizationID = booking.OrganizationID
	r.Notes = booking.Notes
	r.Site = booking.Site

	info := guest.Resolve(booking.GuestName, booking.GuestEmail, booking.GuestPhone, booking.Notes)
	if !info.IsEmpty() {
		r.Guest = &GuestResponse{Name: info.Name, Email: info.Email, Phone: info.Phone}
	}

	if booking.CancelledAt != nil {
		cancelledAt := timezone.Format(*booking.CancelledAt, constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int, now time.Time) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, now)
	}
}

type CancelBookingResponse struct {
	BookingID       string          `json:"booking_id"`
	RefundedCredits decimal.Decimal `json:"refunded_credits" swaggertype:"string" example:"2"`
}

type PreviewCreditsResponse struct {
	RoomID        string          `json:"room_id"`
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
	BilledMinutes int64           `json:"billed_minutes"`
	Credits       decimal.Decimal `json:"credits" swaggertype:"string" example:"2"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type ExportResponse struct {
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}
