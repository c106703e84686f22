package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/shared/constant"
	"cowork/shared/logger"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	entityName = "ledger"

	// The balance check and the increment are one statement, so concurrent debits
	// of the same member serialize on the row lock and never overdraw.
	queryDebitPersonal = `UPDATE members
		SET used_credits = used_credits + :amount, modified_at = :now
		WHERE id = :member_id AND allocated_credits - used_credits >= :amount`

	queryRefundPersonal = `UPDATE members
		SET used_credits = GREATEST(used_credits - :amount, 0), modified_at = :now
		WHERE id = :member_id`

	queryOrganizationUsage = `SELECT COALESCE(SUM(credits_charged), 0) FROM room_bookings
		WHERE organization_id = :organization_id
		AND billing_target = 'organization'
		AND status <> 'cancelled'
		AND created_at >= :from AND created_at < :to`
)

type Ledger interface {
	DebitPersonalTx(ctx context.Context, sqltx *sqlx.Tx, memberID string, amount decimal.Decimal, now time.Time) (bool, error)
	RefundPersonalTx(ctx context.Context, sqltx *sqlx.Tx, memberID string, amount decimal.Decimal, now time.Time) error
	OrganizationUsage(ctx context.Context, organizationID string, from, to time.Time) (decimal.Decimal, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ledger {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// DebitPersonalTx reports false when the member lacks the credits; nothing is written then.
func (r *repositoryImpl) DebitPersonalTx(ctx context.Context, sqltx *sqlx.Tx, memberID string, amount decimal.Decimal, now time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DebitPersonalTx", constant.OtelRepositoryScopeName, entityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDebitPersonal)

	result, err := sqltx.NamedExecContext(ctx, queryDebitPersonal, map[string]any{
		"member_id": memberID,
		"amount":    amount,
		"now":       now,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to debit personal credits: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read debit result: %w", err)
	}

	return affected == 1, nil
}

func (r *repositoryImpl) RefundPersonalTx(ctx context.Context, sqltx *sqlx.Tx, memberID string, amount decimal.Decimal, now time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.RefundPersonalTx", constant.OtelRepositoryScopeName, entityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRefundPersonal)

	_, err := sqltx.NamedExecContext(ctx, queryRefundPersonal, map[string]any{
		"member_id": memberID,
		"amount":    amount,
		"now":       now,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to refund personal credits: %w", err)
	}

	return nil
}

func (r *repositoryImpl) OrganizationUsage(ctx context.Context, organizationID string, from, to time.Time) (decimal.Decimal, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.OrganizationUsage", constant.OtelRepositoryScopeName, entityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryOrganizationUsage)

	usage := decimal.Zero

	prepare, err := r.db.Read.PrepareNamedContext(ctx, queryOrganizationUsage)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return usage, fmt.Errorf("failed to prepare statement (%s): %w", entityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &usage, map[string]any{
		"organization_id": organizationID,
		"from":            from,
		"to":              to,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return usage, fmt.Errorf("failed to sum organization usage: %w", err)
	}

	return usage, nil
}
