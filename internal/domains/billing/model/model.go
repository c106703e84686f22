package model

import "github.com/shopspring/decimal"

const (
	TargetPersonal     = "personal"
	TargetOrganization = "organization"
	// TargetExternal marks staff bookings for walk-in guests; settled outside the ledger.
	TargetExternal = "external"
)

const (
	KindBillingNotPermitted = "billing_not_permitted"
)

// Decision says which pool pays for a booking. Only the personal pool is
// balance-checked; organization pools may go negative.
type Decision struct {
	Target         string
	OrganizationID string
}

// Quote is the single credits figure used for both the preview and the charge.
type Quote struct {
	BilledMinutes int64
	Credits       decimal.Decimal
}
