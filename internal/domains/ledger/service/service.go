package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"cowork/infras/otel"
	billingModel "cowork/internal/domains/billing/model"
	"cowork/internal/domains/ledger/model"
	"cowork/internal/domains/ledger/model/dto"
	"cowork/internal/domains/ledger/repository"
	memberService "cowork/internal/domains/member/service"
	orgModel "cowork/internal/domains/organization/model"
	orgRepository "cowork/internal/domains/organization/repository"
	"cowork/shared"
	"cowork/shared/constant"
	"cowork/shared/failure"
	"cowork/shared/timezone"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientCredits   = failure.New(http.StatusPaymentRequired, model.KindInsufficientCredits, "insufficient personal credits for this booking")
	ErrOrganizationNotFound  = failure.NotFound("organization not found")
	ErrOrganizationForbidden = failure.Forbidden("you can only view the balance of your own organization")
)

// Ledger owns both credit pools. Personal balances live on the member row and are
// debited in place; organization usage is derived from the bookings billed to it.
type Ledger interface {
	AvailablePersonal(ctx context.Context, memberID string) (dto.PersonalBalanceResponse, error)
	AvailableOrganization(ctx context.Context, organizationID string, month time.Time) (dto.OrganizationBalanceResponse, error)
	DebitTx(ctx context.Context, sqltx *sqlx.Tx, charge model.Charge) error
	RefundTx(ctx context.Context, sqltx *sqlx.Tx, charge model.Charge) (decimal.Decimal, error)
}

type serviceImpl struct {
	repo    repository.Ledger
	member  memberService.Member
	orgRepo orgRepository.Organization
	clock   timezone.Clock
	otel    otel.Otel
}

func New(
	repo repository.Ledger,
	member memberService.Member,
	orgRepo orgRepository.Organization,
	clock timezone.Clock,
	otel otel.Otel,
) Ledger {
	return &serviceImpl{
		repo:    repo,
		member:  member,
		orgRepo: orgRepo,
		clock:   clock,
		otel:    otel,
	}
}

func (s *serviceImpl) AvailablePersonal(ctx context.Context, memberID string) (res dto.PersonalBalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.AvailablePersonal")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	member, err := s.member.Get(ctx, memberID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.FromModel(member)

	return res, nil
}

// AvailableOrganization is visible to the organization's own members and to staff.
func (s *serviceImpl) AvailableOrganization(ctx context.Context, organizationID string, month time.Time) (res dto.OrganizationBalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.AvailableOrganization")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requesterID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	requester, err := s.member.Requester(ctx, requesterID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !requester.IsStaff() && requester.OrganizationID != organizationID {
		return res, ErrOrganizationForbidden
	}

	org, err := s.orgRepo.Get(ctx, shared.FilterByID(organizationID, orgModel.FieldID, orgModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("organization_id", organizationID).Msg("failed to get organization")

		return res, fmt.Errorf("failed to get organization: %w", err)
	}

	if org.ID == constant.Empty {
		return res, ErrOrganizationNotFound
	}

	from, to := shared.MonthRange(shared.MonthOf(month, s.clock.Now()))

	used, err := s.repo.OrganizationUsage(ctx, organizationID, from, to)
	if err != nil {
		log.Error().Err(err).Str("organization_id", organizationID).Msg("failed to get organization usage")

		return res, fmt.Errorf("failed to get organization usage: %w", err)
	}

	res.FromModel(org, from, used)

	return res, nil
}

// DebitTx only moves personal credits. Organization usage is the sum of the
// organization's bookings, so inserting the booking row is the debit.
func (s *serviceImpl) DebitTx(ctx context.Context, sqltx *sqlx.Tx, charge model.Charge) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.DebitTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if charge.Target != billingModel.TargetPersonal || !charge.Amount.IsPositive() {
		return nil
	}

	ok, err := s.repo.DebitPersonalTx(ctx, sqltx, charge.MemberID, charge.Amount, s.clock.Now())
	if err != nil {
		log.Error().Err(err).Str("member_id", charge.MemberID).Msg("failed to debit personal credits")

		return fmt.Errorf("failed to debit personal credits: %w", err)
	}

	if !ok {
		return ErrInsufficientCredits
	}

	return nil
}

// RefundTx returns what the cancellation gave back to the payer's pool.
func (s *serviceImpl) RefundTx(ctx context.Context, sqltx *sqlx.Tx, charge model.Charge) (refunded decimal.Decimal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.RefundTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	refunded = charge.Refundable()

	if charge.Target != billingModel.TargetPersonal || !refunded.IsPositive() {
		return refunded, nil
	}

	if err = s.repo.RefundPersonalTx(ctx, sqltx, charge.MemberID, refunded, s.clock.Now()); err != nil {
		log.Error().Err(err).Str("member_id", charge.MemberID).Msg("failed to refund personal credits")

		return decimal.Zero, fmt.Errorf("failed to refund personal credits: %w", err)
	}

	return refunded, nil
}
