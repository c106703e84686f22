package service

import (
	"cowork/config"
	"cowork/internal/domains/billing/model"
	memberModel "cowork/internal/domains/member/model"
	"cowork/shared/constant"
	"cowork/shared/failure"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultIncrement = 30 * time.Minute
	creditPrecision  = 2
)

var (
	ErrOrganizationBillingNotPermitted = failure.New(http.StatusForbidden, model.KindBillingNotPermitted, "organization billing requires an organization membership and permission to charge rooms to it")
	ErrExternalBillingNotPermitted     = failure.New(http.StatusForbidden, model.KindBillingNotPermitted, "only staff can book on behalf of external guests")
)

var minutesPerHour = decimal.NewFromInt(60)

type Resolver interface {
	Resolve(requester memberModel.Requester, requested string) (model.Decision, error)
	Quote(duration time.Duration, costPerHour decimal.Decimal) model.Quote
}

type resolverImpl struct {
	increment time.Duration
}

func New(cfg *config.Config) Resolver {
	increment := time.Duration(cfg.Booking.BillingIncrementMinutes) * time.Minute
	if increment <= 0 {
		increment = defaultIncrement
	}

	return &resolverImpl{
		increment: increment,
	}
}

func (r *resolverImpl) Resolve(requester memberModel.Requester, requested string) (model.Decision, error) {
	switch requested {
	case model.TargetOrganization:
		if !requester.HasOrganization() || !requester.CanChargeRoomToOrg {
			return model.Decision{}, ErrOrganizationBillingNotPermitted
		}

		return model.Decision{
			Target:         model.TargetOrganization,
			OrganizationID: requester.OrganizationID,
		}, nil
	case model.TargetExternal:
		if !requester.IsStaff() {
			return model.Decision{}, ErrExternalBillingNotPermitted
		}

		return model.Decision{
			Target: model.TargetExternal,
		}, nil
	case model.TargetPersonal, constant.Empty:
		return model.Decision{
			Target: model.TargetPersonal,
		}, nil
	default:
		return model.Decision{}, failure.BadRequestFromString("unknown billing target " + requested) // nolint:wrapcheck
	}
}

// Quote rounds the duration up to the next billing increment and prices it at costPerHour.
func (r *resolverImpl) Quote(duration time.Duration, costPerHour decimal.Decimal) model.Quote {
	if duration <= 0 {
		return model.Quote{Credits: decimal.Zero}
	}

	// whole minutes so the rounding cannot overflow time.Duration
	minutes := int64(duration / time.Minute)
	if duration%time.Minute != 0 {
		minutes++
	}

	increment := int64(r.increment / time.Minute)
	billed := (minutes + increment - 1) / increment * increment

	return model.Quote{
		BilledMinutes: billed,
		Credits:       costPerHour.Mul(decimal.NewFromInt(billed)).DivRound(minutesPerHour, creditPrecision),
	}
}
