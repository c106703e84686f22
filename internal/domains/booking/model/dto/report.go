package dto

import (
	"bytes"
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/guest"
	"cowork/shared/constant"
	"cowork/shared/timezone"
	"encoding/csv"
	"fmt"
	"time"
)

var guestReportHeader = []string{
	"booking_id", "room_id", "site", "start_time", "end_time",
	"guest_name", "guest_email", "guest_phone", "credits", "status", "booked_by",
}

type GuestReportRow struct {
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id"`
	Site       string `json:"site"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	Credits    string `json:"credits"`
	Status     string `json:"status"`
	BookedBy   string `json:"booked_by"`
}

func (r *GuestReportRow) FromModel(booking model.Booking, now time.Time) {
	info := guest.Resolve(booking.GuestName, booking.GuestEmail, booking.GuestPhone, booking.Notes)

	r.BookingID = booking.ID
	r.RoomID = booking.RoomID
	r.Site = booking.Site
	r.StartTime = timezone.Format(booking.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(booking.EndTime, constant.DateFormat)
	r.GuestName = info.Name
	r.GuestEmail = info.Email
	r.GuestPhone = info.Phone
	r.Credits = booking.CreditsCharged.StringFixed(2)
	r.Status = booking.EffectiveStatus(now)
	r.BookedBy = booking.RequesterID
}

func (r GuestReportRow) Record() []string {
	return []string{
		r.BookingID, r.RoomID, r.Site, r.StartTime, r.EndTime,
		r.GuestName, r.GuestEmail, r.GuestPhone, r.Credits, r.Status, r.BookedBy,
	}
}

type GuestReportResponse struct {
	Month string           `json:"month"`
	Rows  []GuestReportRow `json:"rows"`
}

func (r *GuestReportResponse) FromModels(models []model.Booking, month, now time.Time) {
	r.Month = month.Format(constant.MonthFormat)

	r.Rows = make([]GuestReportRow, len(models))
	for i, mod := range models {
		r.Rows[i].FromModel(mod, now)
	}
}

// Records returns the CSV rendering of the report, header first.
func (r GuestReportResponse) Records() [][]string {
	records := make([][]string, 0, len(r.Rows)+1)
	records = append(records, guestReportHeader)

	for _, row := range r.Rows {
		records = append(records, row.Record())
	}

	return records
}

func (r GuestReportResponse) CSV() ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(r.Records()); err != nil {
		return nil, fmt.Errorf("failed to write guest report csv: %w", err)
	}

	return buf.Bytes(), nil
}
