package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	otelMocks "safari/infras/otel/mocks"
	"safari/shared/dto"
)

func newSampleRepo() Repository[sampleRoom] {
	return NewRepository[sampleRoom]("room", "rooms", "room_number", nil, otelMocks.NewOtel())
}

func TestNewRepository_InsertQuery(t *testing.T) {
	repo := newSampleRepo()

	assert.Equal(t,
		"INSERT INTO rooms (room_number, status, created_at, modified_at, created_by, modified_by) "+
			"VALUES (:room_number, :status, :created_at, :modified_at, :created_by, :modified_by)",
		repo.insertQuery)
}

func TestRepository_OrderBy(t *testing.T) {
	repo := newSampleRepo()

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{name: "no sort", params: dto.QueryParams{}, expected: ""},
		{name: "own column", params: dto.QueryParams{SortBy: "status", SortDir: "DESC"}, expected: "ORDER BY rooms.status DESC"},
		{name: "joined column by alias", params: dto.QueryParams{SortBy: "type_name", SortDir: "ASC"}, expected: "ORDER BY type_name ASC"},
		{name: "invalid direction falls back to ascending", params: dto.QueryParams{SortBy: "status", SortDir: "sideways"}, expected: "ORDER BY rooms.status ASC"},
		{name: "unknown column is ignored", params: dto.QueryParams{SortBy: "status; DROP TABLE rooms", SortDir: "ASC"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repo.orderBy(tt.params))
		})
	}
}

func TestBuildSetClause(t *testing.T) {
	clause := buildSetClause(map[string]any{"status": "Occupied", "modified_by": "system", "modified_at": "now"})

	assert.Equal(t, "modified_at = :set_modified_at, modified_by = :set_modified_by, status = :set_status", clause)
}

type recordingExecer struct {
	query string
	args  []any
}

func (e *recordingExecer) NamedExecContext(_ context.Context, query string, arg interface{}) (sql.Result, error) {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return nil, err
	}

	e.query, e.args = bound, args

	return driver.RowsAffected(2), nil
}

func TestRepository_UpdateKeepsFilterOnSameColumn(t *testing.T) {
	repo := newSampleRepo()
	exec := &recordingExecer{}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_number", Operator: dto.FilterOperatorEq, Value: "101", Table: "rooms"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Pending", Table: "rooms"},
		},
	}

	affected, err := repo.update(context.Background(), exec, map[string]any{"status": "Completed"}, filter)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.Equal(t, []any{"Completed", "101", "Pending"}, exec.args)
	assert.Contains(t, exec.query, "SET status = ?")
	assert.Contains(t, exec.query, "rooms.status = ?")
}

func TestRepository_UpdateGuards(t *testing.T) {
	repo := newSampleRepo()
	filter := dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "room_number", Operator: dto.FilterOperatorEq, Value: "101"}},
	}

	t.Run("empty fields", func(t *testing.T) {
		_, err := repo.update(context.Background(), nil, map[string]any{}, filter)

		assert.ErrorIs(t, err, errEmptyUpdate)
	})

	t.Run("missing filter", func(t *testing.T) {
		_, err := repo.update(context.Background(), nil, map[string]any{"status": "Occupied"}, dto.FilterGroup{})

		assert.ErrorIs(t, err, errRequiredFilter)
	})
}
