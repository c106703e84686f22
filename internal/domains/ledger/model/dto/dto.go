package dto

import (
	memberModel "cowork/internal/domains/member/model"
	orgModel "cowork/internal/domains/organization/model"
	"cowork/shared/constant"
	"time"

	"github.com/shopspring/decimal"
)

type PersonalBalanceResponse struct {
	MemberID  string          `json:"member_id"`
	Allocated decimal.Decimal `json:"allocated_credits" swaggertype:"string" example:"10"`
	Used      decimal.Decimal `json:"used_credits"      swaggertype:"string" example:"2"`
	Available decimal.Decimal `json:"available_credits" swaggertype:"string" example:"8"`
}

func (r *PersonalBalanceResponse) FromModel(member memberModel.Member) {
	r.MemberID = member.ID
	r.Allocated = member.AllocatedCredits
	r.Used = member.UsedCredits
	r.Available = member.AvailableCredits()
}

// OrganizationBalanceResponse may report a negative Available: organizations are allowed to overdraw.
type OrganizationBalanceResponse struct {
	OrganizationID string          `json:"organization_id"`
	Month          string          `json:"month"             example:"2026-10"`
	Monthly        decimal.Decimal `json:"monthly_credits"   swaggertype:"string" example:"30"`
	Used           decimal.Decimal `json:"used_credits"      swaggertype:"string" example:"10"`
	Available      decimal.Decimal `json:"available_credits" swaggertype:"string" example:"20"`
}

func (r *OrganizationBalanceResponse) FromModel(org orgModel.Organization, month time.Time, used decimal.Decimal) {
	r.OrganizationID = org.ID
	r.Month = month.Format(constant.MonthFormat)
	r.Monthly = org.MonthlyCredits
	r.Used = used
	r.Available = org.MonthlyCredits.Sub(used)
}
