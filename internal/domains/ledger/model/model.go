package model

import (
	billingModel "cowork/internal/domains/billing/model"

	"github.com/shopspring/decimal"
)

const (
	KindInsufficientCredits = "insufficient_credits"
)

// Charge is the ledger-facing view of a booking's cost.
type Charge struct {
	Target         string
	MemberID       string
	OrganizationID string
	Amount         decimal.Decimal
}

// Refundable is what a cancellation gives back: the full charge for personal and
// organization bookings, nothing for external ones which never touched a pool.
func (c Charge) Refundable() decimal.Decimal {
	if c.Target == billingModel.TargetExternal {
		return decimal.Zero
	}

	return c.Amount
}
