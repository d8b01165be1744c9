package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/logger"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
	errNothingToSet   = errors.New("nothing to update")
)

// Joiner is implemented by models that read columns from other tables.
// Each clause is a complete JOIN clause such as "LEFT JOIN packages ON ...".
type Joiner interface {
	Joins() []string
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) expr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return c.table + "." + c.name + " AS " + c.alias
	default:
		return c.table + "." + c.name
	}
}

// Repository renders squirrel statements from the db, table and column tags of T.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	joins         []string
	insertColumns []string
	insertFields  [][]int
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	repo := Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
	}

	repo.collect(reflect.TypeOf(zero), nil)

	if joiner, ok := any(zero).(Joiner); ok {
		repo.joins = joiner.Joins()
	}

	return repo
}

// collect walks T's fields, descending into embedded structs. Only columns owned by
// the repository table are inserted.
func (repo *Repository[T]) collect(reflectType reflect.Type, path []int) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		index := append(slices.Clone(path), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			repo.collect(field.Type, index)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		table := field.Tag.Get("table")
		if table == "" {
			table = repo.table
		}

		if table == repo.table {
			repo.insertColumns = append(repo.insertColumns, dbTag)
			repo.insertFields = append(repo.insertFields, index)
		}

		if name := field.Tag.Get("column"); name != "" {
			repo.columns = append(repo.columns, column{name: name, table: table, alias: dbTag})
		} else {
			repo.columns = append(repo.columns, column{name: dbTag, table: table})
		}
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) selectColumns(only []string) []string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		name := col.name
		if col.alias != "" {
			name = col.alias
		}

		if len(only) > 0 && !slices.Contains(only, name) {
			continue
		}

		exprs = append(exprs, col.expr())
	}

	return exprs
}

func (repo *Repository[T]) from(builder sq.SelectBuilder, filter dto.FilterGroup) sq.SelectBuilder {
	builder = builder.From(repo.table)

	for _, join := range repo.joins {
		builder = builder.JoinClause(join)
	}

	if pred := filter.Sqlizer(); pred != nil {
		builder = builder.Where(pred)
	}

	return builder
}

func (repo *Repository[T]) selectQuery(params dto.QueryParams, filter dto.FilterGroup, columns ...string) sq.SelectBuilder {
	builder := repo.from(postgres.Builder.Select(repo.selectColumns(columns)...), filter)

	if params.SortBy != "" && params.SortDir != "" {
		builder = builder.OrderBy(params.SortBy + " " + params.SortDir)
	}

	if params.Limit > 0 {
		builder = builder.Limit(uint64(params.Limit))

		if offset := params.Offset(); offset > 0 {
			builder = builder.Offset(uint64(offset))
		}
	}

	return builder
}

func (repo *Repository[T]) countQuery(filter dto.FilterGroup) sq.SelectBuilder {
	return repo.from(postgres.Builder.Select(fmt.Sprintf("COUNT(%s.%s)", repo.table, repo.primaryColumn)), filter)
}

func (repo *Repository[T]) sumQuery(column string, filter dto.FilterGroup) sq.SelectBuilder {
	return repo.from(postgres.Builder.Select(fmt.Sprintf("COALESCE(SUM(%s.%s), 0)", repo.table, column)), filter)
}

func (repo *Repository[T]) existQuery(filter dto.FilterGroup) (sq.SelectBuilder, error) {
	pred := filter.Sqlizer()
	if pred == nil {
		return sq.SelectBuilder{}, errRequiredFilter
	}

	return postgres.Builder.Select("1").From(repo.table).Where(pred).Prefix("SELECT EXISTS (").Suffix(")"), nil
}

func (repo *Repository[T]) insertQuery(model T) sq.InsertBuilder {
	value := reflect.ValueOf(model)
	values := make([]any, len(repo.insertFields))

	for i, index := range repo.insertFields {
		values[i] = value.FieldByIndex(index).Interface()
	}

	return postgres.Builder.Insert(repo.table).Columns(repo.insertColumns...).Values(values...)
}

func (repo *Repository[T]) updateQuery(mod map[string]any, filter dto.FilterGroup) (sq.UpdateBuilder, error) {
	pred := filter.Sqlizer()
	if pred == nil {
		return sq.UpdateBuilder{}, errRequiredFilter
	}

	if len(mod) == 0 {
		return sq.UpdateBuilder{}, errNothingToSet
	}

	return postgres.Builder.Update(repo.table).SetMap(mod).Where(pred), nil
}

func (repo *Repository[T]) deleteQuery(filter dto.FilterGroup) (sq.DeleteBuilder, error) {
	pred := filter.Sqlizer()
	if pred == nil {
		return sq.DeleteBuilder{}, errRequiredFilter
	}

	return postgres.Builder.Delete(repo.table).Where(pred), nil
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, action string, builder sq.Sqlizer) error {
	return repo.execWith(ctx, repo.db.Write, scope, action, builder)
}

func (repo *Repository[T]) execWith(ctx context.Context, db sqlx.ExecerContext, scope otel.Scope, action string, builder sq.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return repo.fail(scope, "build "+action, err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	return repo.exec(ctx, scope, "insert data", repo.insertQuery(model))
}

// InsertTx inserts model inside a transaction opened with Transaction.
func (repo *Repository[T]) InsertTx(ctx context.Context, tx *sqlx.Tx, model T) error {
	ctx, scope := repo.scope(ctx, "InsertTx")
	defer scope.End()

	return repo.execWith(ctx, tx, scope, "insert data", repo.insertQuery(model))
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	builder, err := repo.existQuery(filter)
	if err != nil {
		return false, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, repo.fail(scope, "build exist query", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false
	if err := repo.db.Read.GetContext(ctx, &exist, query, args...); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	query, args, err := repo.selectQuery(dto.QueryParams{Limit: 1}, filter, columns...).ToSql()
	if err != nil {
		return model, repo.fail(scope, "build get query", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &model, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	query, args, err := repo.selectQuery(params, filter, columns...).ToSql()
	if err != nil {
		return nil, repo.fail(scope, "build list query", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}
	if err := repo.db.Read.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	query, args, err := repo.countQuery(filter).ToSql()
	if err != nil {
		return 0, repo.fail(scope, "build count query", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int
	if err := repo.db.Read.GetContext(ctx, &count, query, args...); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

// Sum totals a numeric column of the repository table over the matching rows, zero when none match.
func (repo *Repository[T]) Sum(ctx context.Context, column string, filter dto.FilterGroup) (float64, error) {
	ctx, scope := repo.scope(ctx, "Sum")
	defer scope.End()

	query, args, err := repo.sumQuery(column, filter).ToSql()
	if err != nil {
		return 0, repo.fail(scope, "build sum query", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total float64
	if err := repo.db.Read.GetContext(ctx, &total, query, args...); err != nil {
		return 0, repo.fail(scope, "sum data", err)
	}

	return total, nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	builder, err := repo.updateQuery(mod, filter)
	if err != nil {
		return err
	}

	return repo.exec(ctx, scope, "update data", builder)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	builder, err := repo.deleteQuery(filter)
	if err != nil {
		return err
	}

	return repo.exec(ctx, scope, "delete data", builder)
}
