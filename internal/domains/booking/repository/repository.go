package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/booking/model"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/logger"
	gRepo "cowork/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	// Serializes check-and-insert per room for the lifetime of the transaction.
	queryLockRoom = `SELECT pg_advisory_xact_lock(hashtext($1))`

	queryHasOverlap = `SELECT EXISTS (
		SELECT 1 FROM room_bookings
		WHERE room_id = :room_id
		AND status = 'confirmed'
		AND start_time < :end_time
		AND end_time > :start_time
	)`
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	LockRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) error
	HasOverlapTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, interval model.Interval) (bool, error)
	HasOverlap(ctx context.Context, roomID string, interval model.Interval) (bool, error)
}

type namedPreparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) LockRoomTx(ctx context.Context, sqltx *sqlx.Tx, roomID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.LockRoomTx", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLockRoom)

	if _, err := sqltx.ExecContext(ctx, queryLockRoom, roomID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock room %s: %w", roomID, err)
	}

	return nil
}

func (r *repositoryImpl) HasOverlapTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, interval model.Interval) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.HasOverlapTx", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return r.hasOverlap(ctx, sqltx, roomID, interval)
}

// HasOverlap reads from the replica and is advisory only; creation re-checks under the room lock.
func (r *repositoryImpl) HasOverlap(ctx context.Context, roomID string, interval model.Interval) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.HasOverlap", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	return r.hasOverlap(ctx, r.db.Read, roomID, interval)
}

func (r *repositoryImpl) hasOverlap(ctx context.Context, db namedPreparer, roomID string, interval model.Interval) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.hasOverlap", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryHasOverlap)

	var exists bool

	prepare, err := db.PrepareNamedContext(ctx, queryHasOverlap)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return exists, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &exists, map[string]any{
		"room_id":    roomID,
		"start_time": interval.Start,
		"end_time":   interval.End,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return exists, fmt.Errorf("failed to check overlap (%s): %w", model.EntityName, err)
	}

	return exists, nil
}
