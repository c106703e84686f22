package model_test

import (
	"cowork/internal/domains/member/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMember_ToRequester(t *testing.T) {
	org := "org-1"

	requester := model.Member{ID: "m1", Role: "member", OrganizationID: &org, CanChargeRoomToOrg: true}.ToRequester()

	assert.Equal(t, model.Requester{ID: "m1", Role: "member", OrganizationID: "org-1", CanChargeRoomToOrg: true}, requester)
	assert.True(t, requester.HasOrganization())
	assert.False(t, requester.IsStaff())

	loner := model.Member{ID: "m2", Role: "staff"}.ToRequester()

	assert.False(t, loner.HasOrganization())
	assert.True(t, loner.IsStaff())
}

func TestIsStaffRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{role: "superadmin", want: true},
		{role: "admin", want: true},
		{role: "staff", want: true},
		{role: "member", want: false},
		{role: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsStaffRole(tt.role))
		})
	}
}

func TestMember_AvailableCredits(t *testing.T) {
	member := model.Member{AllocatedCredits: decimal.NewFromInt(10), UsedCredits: decimal.RequireFromString("2.5")}

	assert.Equal(t, "7.5", member.AvailableCredits().String())
}
