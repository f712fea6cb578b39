package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildAvailableQuery(t *testing.T) {
	columns := []string{"rooms.room_number", "rooms.status"}

	t.Run("without dates", func(t *testing.T) {
		query, args, err := buildAvailableQuery(columns, nil, nil).ToSql()

		assert.NoError(t, err)
		assert.Contains(t, query, "SELECT rooms.room_number, rooms.status FROM rooms WHERE")
		assert.Contains(t, query, "rooms.active = $1")
		assert.Contains(t, query, "rooms.status = $2")
		assert.NotContains(t, query, "NOT IN")
		assert.Equal(t, []any{true, "Available"}, args)
	})

	t.Run("with overlapping range", func(t *testing.T) {
		checkIn := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		checkOut := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

		query, args, err := buildAvailableQuery(columns, &checkIn, &checkOut).ToSql()

		assert.NoError(t, err)
		assert.Contains(t, query, "rooms.room_number NOT IN (SELECT room_number FROM availabilities WHERE room_number IS NOT NULL")
		assert.Contains(t, query, "check_in_date < $6")
		assert.Contains(t, query, "check_out_date > $7")
		assert.Contains(t, query, "ORDER BY rooms.room_number")
		assert.Equal(t, []any{true, "Available", "Booked", "Reserved", "Checked In", checkOut, checkIn}, args)
	})
}

func TestStatusGuard(t *testing.T) {
	filter := statusGuard([]string{"R-101", "R-102"}, []string{"Booked", "Reserved"})

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "rooms.room_number IN (:room_number_0, :room_number_1)")
	assert.Contains(t, where, "rooms.status IN (:from_status_0, :from_status_1)")
	assert.Equal(t, "R-102", args["room_number_1"])
	assert.Equal(t, "Reserved", args["from_status_1"])
}
