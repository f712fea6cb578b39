package repository

import (
	"context"
	"fmt"
	"safari/infras/otel"
	"safari/infras/postgres"
	"safari/shared/constant"
	"safari/shared/logger"

	"github.com/Masterminds/squirrel"
)

// Psql builds postgres statements with $n placeholders.
var Psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select runs a built query against the read connection and scans every row into D.
func Select[D any](ctx context.Context, db *postgres.Connection, otl otel.Otel, entity string, builder squirrel.Sqlizer) ([]D, error) {
	ctx, scope := otl.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Select", constant.OtelRepositoryScopeName, entity))
	defer scope.End()

	query, args, err := builder.ToSql()
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build query (%s): %w", entity, err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []D{}

	if err = db.Read.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to select data (%s): %w", entity, err)
	}

	return rows, nil
}

// Query runs a built query and scans the rows into the repository model.
func (repo *Repository[T]) Query(ctx context.Context, builder squirrel.Sqlizer) ([]T, error) {
	return Select[T](ctx, repo.db, repo.otel, repo.entity, builder)
}

// Columns lists the selectable columns of the model, qualified by table.
func (repo *Repository[T]) Columns() []string {
	columns := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		switch {
		case col.table == "":
			columns = append(columns, col.name)
		case col.alias != "":
			columns = append(columns, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			columns = append(columns, fmt.Sprintf("%s.%s", col.table, col.name))
		}
	}

	return columns
}

// Table returns the table the repository reads from.
func (repo *Repository[T]) Table() string {
	return repo.table
}
