package model

import (
	"cowork/shared/constant"
	"cowork/shared/model"
	"slices"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "members"
	EntityName = "member"

	FieldID                 = "id"
	FieldEmail              = "email"
	FieldFullName           = "full_name"
	FieldRole               = "role"
	FieldOrganizationID     = "organization_id"
	FieldCanChargeRoomToOrg = "can_charge_room_to_org"
	FieldAllocatedCredits   = "allocated_credits"
	FieldUsedCredits        = "used_credits"
)

var staffRoles = []string{constant.RoleStaff, constant.RoleAdmin, constant.RoleSuperAdmin}

// Member mirrors the identity service's member row. AllocatedCredits and UsedCredits
// are only written by the ledger.
type Member struct {
	ID                 string          `db:"id"`
	Email              string          `db:"email"`
	FullName           string          `db:"full_name"`
	Role               string          `db:"role"`
	OrganizationID     *string         `db:"organization_id"`
	CanChargeRoomToOrg bool            `db:"can_charge_room_to_org"`
	AllocatedCredits   decimal.Decimal `db:"allocated_credits"`
	UsedCredits        decimal.Decimal `db:"used_credits"`
	model.Metadata
}

func (m Member) AvailableCredits() decimal.Decimal {
	return m.AllocatedCredits.Sub(m.UsedCredits)
}

func (m Member) ToRequester() Requester {
	requester := Requester{
		ID:                 m.ID,
		Role:               m.Role,
		CanChargeRoomToOrg: m.CanChargeRoomToOrg,
	}

	if m.OrganizationID != nil {
		requester.OrganizationID = *m.OrganizationID
	}

	return requester
}

// Requester is the resolved identity a booking operation runs as.
type Requester struct {
	ID                 string
	Role               string
	OrganizationID     string
	CanChargeRoomToOrg bool
}

func (r Requester) HasOrganization() bool {
	return r.OrganizationID != constant.Empty
}

func (r Requester) IsStaff() bool {
	return IsStaffRole(r.Role)
}

// IsStaffRole is the one list of roles that may bill external guests, read any
// organization's balance and book outside the duration limits.
func IsStaffRole(role string) bool {
	return slices.Contains(staffRoles, role)
}
