package repository

import (
	"reflect"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"

	"safari/shared/model"
)

type sampleRoom struct {
	RoomNumber string `db:"room_number"`
	Status     string `db:"status"`
	RoomType   string `db:"type_name" table:"room_types" column:"name"`
	model.Metadata
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns("rooms", reflect.TypeOf(sampleRoom{}))

	assert.Equal(t, []string{"room_number", "status", "created_at", "modified_at", "created_by", "modified_by"}, insertColumns)
	assert.Contains(t, columns, column{name: "name", table: "room_types", alias: "type_name"})
}

func TestRepository_Columns(t *testing.T) {
	repo := Repository[sampleRoom]{table: "rooms"}
	repo.columns, repo.InsertColumns = getColumns("rooms", reflect.TypeOf(sampleRoom{}))

	cols := repo.Columns()

	assert.Equal(t, "rooms.room_number", cols[0])
	assert.Contains(t, cols, "room_types.name AS type_name")
	assert.Equal(t, "rooms", repo.Table())
}

func TestPsql_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Psql.Select("room_number").
		From("rooms").
		Where(squirrel.Eq{"status": "Available"}).
		Where(squirrel.Eq{"active": true}).
		ToSql()

	assert.NoError(t, err)
	assert.Equal(t, "SELECT room_number FROM rooms WHERE status = $1 AND active = $2", query)
	assert.Equal(t, []any{"Available", true}, args)
}
