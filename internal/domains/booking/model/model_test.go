package model_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	billingModel "cowork/internal/domains/billing/model"
	"cowork/internal/domains/booking/model"
	"cowork/shared/failure"
)

var base = time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{name: "valid", start: at(0), end: at(60)},
		{name: "equal endpoints", start: at(60), end: at(60), wantErr: true},
		{name: "reversed", start: at(60), end: at(0), wantErr: true},
		{name: "zero start", start: time.Time{}, end: at(60), wantErr: true},
		{name: "zero end", start: at(0), end: time.Time{}, wantErr: true},
		{name: "longer than a year", start: at(0), end: at(0).Add(model.MaxSpan + time.Minute), wantErr: true},
		{name: "far future end", start: at(0), end: time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.NewInterval(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, model.KindInvalidInterval, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, time.Hour, got.Duration())
		})
	}
}

func TestNewInterval_NormalizesToUTC(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)

	got, err := model.NewInterval(time.Date(2026, 10, 20, 16, 0, 0, 0, wib), time.Date(2026, 10, 20, 17, 0, 0, 0, wib))

	assert.NoError(t, err)
	assert.Equal(t, time.UTC, got.Start.Location())
	assert.True(t, got.Start.Equal(base))
}

func TestNewInterval_MaxSpanAccepted(t *testing.T) {
	got, err := model.NewInterval(at(0), at(0).Add(model.MaxSpan))

	assert.NoError(t, err)
	assert.Equal(t, model.MaxSpan, got.Duration())
}

func TestInterval_Overlaps(t *testing.T) {
	existing := model.Interval{Start: at(60), End: at(120)}

	tests := []struct {
		name string
		req  model.Interval
		want bool
	}{
		{name: "identical", req: model.Interval{Start: at(60), End: at(120)}, want: true},
		{name: "inside", req: model.Interval{Start: at(70), End: at(80)}, want: true},
		{name: "covering", req: model.Interval{Start: at(0), End: at(180)}, want: true},
		{name: "tail overlap", req: model.Interval{Start: at(90), End: at(150)}, want: true},
		{name: "head overlap", req: model.Interval{Start: at(30), End: at(90)}, want: true},
		{name: "ends at start", req: model.Interval{Start: at(0), End: at(60)}, want: false},
		{name: "starts at end", req: model.Interval{Start: at(120), End: at(180)}, want: false},
		{name: "disjoint", req: model.Interval{Start: at(200), End: at(260)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.req))
			assert.Equal(t, tt.want, tt.req.Overlaps(existing))
		})
	}
}

// Compares Overlaps against a minute-by-minute occupancy check.
func TestInterval_OverlapsMatchesOccupancy(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	occupies := func(i model.Interval, minute int) bool {
		m := at(minute)

		return !m.Before(i.Start) && m.Before(i.End)
	}

	for range 2000 {
		aStart := rng.Intn(100)
		bStart := rng.Intn(100)
		a := model.Interval{Start: at(aStart), End: at(aStart + 1 + rng.Intn(40))}
		b := model.Interval{Start: at(bStart), End: at(bStart + 1 + rng.Intn(40))}

		want := false
		for minute := 0; minute < 150; minute++ {
			if occupies(a, minute) && occupies(b, minute) {
				want = true

				break
			}
		}

		assert.Equal(t, want, a.Overlaps(b), "a=%v b=%v", a, b)
	}
}

func TestBooking_EffectiveStatus(t *testing.T) {
	booking := model.Booking{Status: model.StatusConfirmed, StartTime: at(0), EndTime: at(60)}

	assert.Equal(t, model.StatusConfirmed, booking.EffectiveStatus(at(30)))
	assert.Equal(t, model.StatusConfirmed, booking.EffectiveStatus(at(60)))
	assert.Equal(t, model.StatusCompleted, booking.EffectiveStatus(at(61)))

	booking.Status = model.StatusCancelled
	assert.Equal(t, model.StatusCancelled, booking.EffectiveStatus(at(120)))
}

func TestBooking_Charge(t *testing.T) {
	org := "o1"
	booking := model.Booking{
		RequesterID:    "m1",
		BillingTarget:  billingModel.TargetOrganization,
		OrganizationID: &org,
		CreditsCharged: decimal.NewFromInt(4),
	}

	charge := booking.Charge()

	assert.Equal(t, "m1", charge.MemberID)
	assert.Equal(t, "o1", charge.OrganizationID)
	assert.Equal(t, billingModel.TargetOrganization, charge.Target)
	assert.True(t, decimal.NewFromInt(4).Equal(charge.Amount))
}
