package policy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cowork/config"
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/booking/policy"
	memberModel "cowork/internal/domains/member/model"
	"cowork/shared/constant"
	"cowork/shared/failure"
)

var now = time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)

func newPolicy() policy.Policy {
	cfg := &config.Config{}
	cfg.Booking.MinDurationMinutes = 30
	cfg.Booking.MaxDurationMinutes = 600
	cfg.Booking.CancelGraceMinutes = 15

	return policy.New(cfg)
}

func interval(startOffset, length time.Duration) model.Interval {
	return model.Interval{Start: now.Add(startOffset), End: now.Add(startOffset + length)}
}

func TestPolicy_CheckCreate(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		interval model.Interval
		wantKind string
	}{
		{name: "one hour tomorrow", role: constant.RoleMember, interval: interval(24*time.Hour, time.Hour)},
		{name: "start equal to now", role: constant.RoleMember, interval: interval(0, time.Hour)},
		{name: "start in the past", role: constant.RoleMember, interval: interval(-time.Minute, time.Hour), wantKind: model.KindPastStartTime},
		{name: "exactly minimum", role: constant.RoleMember, interval: interval(time.Hour, 30*time.Minute)},
		{name: "below minimum", role: constant.RoleMember, interval: interval(time.Hour, 29*time.Minute), wantKind: model.KindInvalidDuration},
		{name: "exactly maximum", role: constant.RoleMember, interval: interval(time.Hour, 10*time.Hour)},
		{name: "above maximum", role: constant.RoleMember, interval: interval(time.Hour, 10*time.Hour+time.Minute), wantKind: model.KindInvalidDuration},
		{name: "staff exempt from minimum", role: constant.RoleStaff, interval: interval(time.Hour, 10*time.Minute)},
		{name: "admin exempt from maximum", role: constant.RoleAdmin, interval: interval(time.Hour, 24*time.Hour)},
		{name: "staff not exempt from past start", role: constant.RoleStaff, interval: interval(-time.Hour, time.Hour), wantKind: model.KindPastStartTime},
	}

	p := newPolicy()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.CheckCreate(tt.role, tt.interval, now)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPolicy_CheckCancel(t *testing.T) {
	booking := model.Booking{
		RequesterID: "m1",
		Status:      model.StatusConfirmed,
		StartTime:   now,
		EndTime:     now.Add(time.Hour),
	}

	tests := []struct {
		name      string
		booking   model.Booking
		requester string
		at        time.Time
		wantKind  string
	}{
		{name: "before start", booking: booking, requester: "m1", at: now.Add(-time.Hour)},
		{name: "exactly at grace boundary", booking: booking, requester: "m1", at: now.Add(15 * time.Minute)},
		{name: "after grace", booking: booking, requester: "m1", at: now.Add(16 * time.Minute), wantKind: model.KindCancellationWindowExpired},
		{name: "someone else", booking: booking, requester: "m2", at: now, wantKind: model.KindNotOwner},
		{
			name: "already cancelled",
			booking: func() model.Booking {
				b := booking
				b.Status = model.StatusCancelled

				return b
			}(),
			requester: "m1",
			at:        now,
			wantKind:  model.KindAlreadyCancelled,
		},
	}

	p := newPolicy()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.CheckCancel(tt.booking, tt.requester, tt.at)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPolicy_IsExempt(t *testing.T) {
	p := newPolicy()

	assert.True(t, p.IsExempt(constant.RoleSuperAdmin))
	assert.False(t, p.IsExempt(constant.RoleMember))

	for _, role := range []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleStaff, constant.RoleMember, ""} {
		requester := memberModel.Requester{ID: "u1", Role: role}

		assert.Equal(t, requester.IsStaff(), p.IsExempt(role), "role %q", role)
	}
}
