package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"pms/infras/database"
	"pms/infras/otel"
	"pms/shared/constant"
	"pms/shared/dto"
	"pms/shared/logger"

	"github.com/jmoiron/sqlx"
)

const updateArgPrefix = "set_"

var errRequiredFilter = errors.New("required filter")

// namedDB is satisfied by both *sqlx.DB and *sqlx.Tx.
type namedDB interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository is a generic CRUD layer over a single table described by T's db tags.
// Embedded structs contribute their columns, so shared metadata is picked up automatically.
type Repository[T any] struct {
	db            *database.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *database.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		InsertColumns: dbColumns(reflect.TypeFor[T]()),
	}
}

func dbColumns(t reflect.Type) []string {
	var columns []string

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

// statement wraps one query with its span, logging failures and tagging the span.
type statement struct {
	scope  otel.Scope
	ctx    context.Context
	entity string
}

func (repo *Repository[T]) begin(ctx context.Context, op, query string) statement {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		constant.OtelRepositoryScopeName+"."+repo.entity+"."+op)

	if query != "" {
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	}

	return statement{scope: scope, ctx: ctx, entity: repo.entity}
}

func (s statement) fail(action string, err error) error {
	logger.ErrorWithStack(err)
	s.scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, s.entity, err)
}

func (s statement) exec(db namedDB, action, query string, arg any) error {
	defer s.scope.End()

	if _, err := db.NamedExecContext(s.ctx, query, arg); err != nil {
		return s.fail(action, err)
	}

	return nil
}

// read scans query into dest. Single-row reads pass sql.ErrNoRows through unlogged.
// A filter value the column cannot hold matches no rows.
func (s statement) read(db namedDB, action, query string, dest any, args map[string]any, many bool) error {
	defer s.scope.End()

	stmt, err := db.PrepareNamedContext(s.ctx, query)
	if err != nil {
		return s.settle("prepare statement", err, many)
	}
	defer stmt.Close()

	if many {
		err = stmt.SelectContext(s.ctx, dest, args)
	} else {
		err = stmt.GetContext(s.ctx, dest, args)
	}

	return s.settle(action, err, many)
}

func (s statement) settle(action string, err error, many bool) error {
	if IsInvalidValue(err) {
		if many {
			return nil
		}

		err = sql.ErrNoRows
	}

	switch {
	case err == nil:
		return nil
	case !many && errors.Is(err, sql.ErrNoRows):
		return err
	default:
		return s.fail(action, err)
	}
}

// Transaction runs fn inside a write transaction, rolling back when fn fails.
func (repo *Repository[T]) Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	st := repo.begin(ctx, "Transaction", "")
	defer st.scope.End()
	defer func() { st.scope.TraceIfError(err) }()

	tx, err := repo.db.Write.BeginTxx(st.ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (%s): %w", repo.entity, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.ErrorWithStack(rbErr)
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) insertQuery() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s)",
		repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(repo.InsertColumns, ", :"))
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	query := repo.insertQuery()

	return repo.begin(ctx, "Insert", query).exec(repo.db.Write, "insert data", query, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	query := repo.insertQuery()

	return repo.begin(ctx, "InsertTx", query).exec(sqltx, "insert data", query, model)
}

// InsertBulk writes models in one multi-row statement.
func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	if len(models) == 0 {
		return nil
	}

	query := repo.insertQuery()

	return repo.begin(ctx, "InsertBulk", query).exec(repo.db.Write, "bulk insert data", query, models)
}

func (repo *Repository[T]) exist(ctx context.Context, db namedDB, op string, filter dto.FilterGroup) (bool, error) {
	where, args := whereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where)

	var exist bool

	err := repo.begin(ctx, op, query).read(db, "check exist data", query, &exist, args, false)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	return exist, err
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, repo.db.Read, "Exist", filter)
}

// ExistTx checks inside tx so a following insert sees the same snapshot.
func (repo *Repository[T]) ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, sqltx, "ExistTx", filter)
}

// Get returns the zero value of T with a nil error when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", repo.selectList(columns), repo.table, where)

	var model T

	err := repo.begin(ctx, "Get", query).read(repo.db.Read, "get data", query, &model, args, false)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	return model, err
}

// GetAll applies LIMIT when Limit is set and OFFSET when Page is too. SortBy must already be a whitelisted expression.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := whereClause(filter)

	var query strings.Builder

	fmt.Fprintf(&query, "SELECT %s FROM %s%s", repo.selectList(columns), repo.table, where)

	if params.SortBy != "" {
		direction := dto.SortDirAsc
		if params.SortDir == dto.SortDirDesc {
			direction = dto.SortDirDesc
		}

		// primary key keeps ties in a stable order across pages
		fmt.Fprintf(&query, " ORDER BY %s %s, %s.%s ASC", params.SortBy, direction, repo.table, repo.primaryColumn)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		query.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			query.WriteString(" OFFSET :offset")
		}
	}

	models := []T{}

	err := repo.begin(ctx, "GetAll", query.String()).read(repo.db.Read, "get all data", query.String(), &models, args, true)

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.primaryColumn, repo.table, where)

	var count int

	err := repo.begin(ctx, "Count", query).read(repo.db.Read, "count data", query, &count, args, false)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	return count, err
}

func (repo *Repository[T]) delete(ctx context.Context, db namedDB, op string, filter dto.FilterGroup) error {
	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)

	return repo.begin(ctx, op, query).exec(db, "delete data", query, args)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	return repo.delete(ctx, repo.db.Write, "Delete", filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	return repo.delete(ctx, sqltx, "DeleteTx", filter)
}

func (repo *Repository[T]) update(ctx context.Context, db namedDB, op string, changes map[string]any, filter dto.FilterGroup) error {
	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	columns := slices.Sorted(maps.Keys(changes))
	assignments := make([]string, 0, len(columns))

	// set values get their own names so a column can be both filtered and updated
	for _, col := range columns {
		name := updateArgPrefix + col
		assignments = append(assignments, col+" = :"+name)
		args[name] = changes[col]
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)

	return repo.begin(ctx, op, query).exec(db, "update data", query, args)
}

func (repo *Repository[T]) Update(ctx context.Context, changes map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, "Update", changes, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, changes map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, sqltx, "UpdateTx", changes, filter)
}

// selectList qualifies the requested columns, or every mapped column when none are given.
func (repo *Repository[T]) selectList(only []string) string {
	columns := make([]string, 0, len(repo.InsertColumns))

	for _, col := range repo.InsertColumns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		columns = append(columns, repo.table+"."+col)
	}

	return strings.Join(columns, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}
