package repository

import (
	"context"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/shared/constant"
	"cowork/shared/dto"
	"cowork/shared/logger"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	errMissingFilter = errors.New("a filter is required for this statement")
	// A column that is both set and filtered on needs Filter.ArgName.
	errArgClash = errors.New("update value and filter share a named argument")
)

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository holds the generic reads and writes shared by every table-backed domain.
// Reads go to the replica unless they run inside a transaction.
type Repository[T any] struct {
	db          *postgres.Connection
	otel        otel.Otel
	table       string
	entity      string
	primary     string
	columns     []column
	join        string
	insertQuery string
}

// joiner is implemented by models that read columns from other tables.
type joiner interface {
	GetJoinQuery() string
}

func NewRepository[T any](entity, table, primary string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	selects, inserts := scanColumns(table, reflect.TypeOf(zero))

	var join string
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:          db,
		otel:        otl,
		table:       table,
		entity:      entity,
		primary:     primary,
		columns:     selects,
		join:        join,
		insertQuery: insertStatement(table, inserts),
	}
}

func (repo *Repository[T]) scopeName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("InsertTx"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, repo.insertQuery)

	if _, err = sqltx.NamedExecContext(ctx, repo.insertQuery, model); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

// Get returns the zero value of T with a nil error when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Get"))
	defer scope.End()

	where, args := whereClause(filter)
	query := repo.selectFrom(columns...) + where

	return repo.get(ctx, scope, repo.db.Read, query, args)
}

// GetForUpdateTx reads one row inside sqltx and keeps it locked until the transaction ends.
// A missing row yields the zero value, like Get.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("GetForUpdateTx"))
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		var zero T

		return zero, errMissingFilter
	}

	query := repo.selectFrom(columns...) + where + " FOR UPDATE OF " + repo.table

	return repo.get(ctx, scope, sqltx, query, args)
}

func (repo *Repository[T]) get(ctx context.Context, scope otel.Scope, db preparer, query string, args map[string]any) (model T, err error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	defer func() { scope.TraceIfError(err) }()

	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model, nil
	case err != nil:
		logger.ErrorWithStack(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) (models []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("GetAll"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := whereClause(filter)
	query := repo.selectFrom(columns...) + where + orderClause(params) + pageClause(params, args)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Count"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s", repo.table, repo.primary, repo.from()) + where

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entity, err)
	}

	return count, nil
}

// UpdateTx sets the given columns on every row matching filter. An empty filter is refused.
func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, values map[string]any, filter dto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("UpdateTx"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return repo.update(ctx, scope, sqltx, values, filter)
}

func (repo *Repository[T]) update(ctx context.Context, scope otel.Scope, exec execer, values map[string]any, filter dto.FilterGroup) error {
	where, args := whereClause(filter)
	if where == "" {
		return errMissingFilter
	}

	if len(values) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE %s SET %s", repo.table, assignments(values)) + where

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	merged := maps.Clone(values)
	for key, value := range args {
		if _, clash := merged[key]; clash {
			return fmt.Errorf("%w: %s", errArgClash, key)
		}

		merged[key] = value
	}

	if _, err := exec.NamedExecContext(ctx, query, merged); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) from() string {
	if repo.join == "" {
		return repo.table
	}

	return repo.table + " " + repo.join
}

func (repo *Repository[T]) selectFrom(columns ...string) string {
	return "SELECT " + selectList(repo.columns, columns...) + " FROM " + repo.from()
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func orderClause(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	return " ORDER BY " + params.SortBy + " " + strings.ToUpper(params.SortDir)
}

// pageClause adds limit and offset to args when paging is requested.
func pageClause(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return " LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return " LIMIT :limit OFFSET :offset"
}
