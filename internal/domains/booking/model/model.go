package model

import (
	ledgerModel "cowork/internal/domains/ledger/model"
	"cowork/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldRequesterID    = "requester_id"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldCreditsCharged = "credits_charged"
	FieldStatus         = "status"
	FieldBillingTarget  = "billing_target"
	FieldOrganizationID = "organization_id"
	FieldNotes          = "notes"
	FieldSite           = "site"
	FieldGuestName      = "guest_name"
	FieldGuestEmail     = "guest_email"
	FieldGuestPhone     = "guest_phone"
	FieldCancelledAt    = "cancelled_at"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	// StatusCompleted is never stored; it is derived from the end time when read.
	StatusCompleted = "completed"
)

type Booking struct {
	ID             string          `db:"id"`
	RoomID         string          `db:"room_id"`
	RequesterID    string          `db:"requester_id"`
	StartTime      time.Time       `db:"start_time"`
	EndTime        time.Time       `db:"end_time"`
	CreditsCharged decimal.Decimal `db:"credits_charged"`
	Status         string          `db:"status"`
	BillingTarget  string          `db:"billing_target"`
	OrganizationID *string         `db:"organization_id"`
	Notes          string          `db:"notes"`
	Site           string          `db:"site"`
	GuestName      *string         `db:"guest_name"`
	GuestEmail     *string         `db:"guest_email"`
	GuestPhone     *string         `db:"guest_phone"`
	CancelledAt    *time.Time      `db:"cancelled_at"`
	model.Metadata
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

func (b Booking) EffectiveStatus(now time.Time) string {
	if b.Status == StatusConfirmed && now.After(b.EndTime) {
		return StatusCompleted
	}

	return b.Status
}

func (b Booking) Charge() ledgerModel.Charge {
	charge := ledgerModel.Charge{
		Target:   b.BillingTarget,
		MemberID: b.RequesterID,
		Amount:   b.CreditsCharged,
	}

	if b.OrganizationID != nil {
		charge.OrganizationID = *b.OrganizationID
	}

	return charge
}
