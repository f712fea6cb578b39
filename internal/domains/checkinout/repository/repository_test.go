package repository

import (
	"testing"

	"safari/internal/domains/checkinout/model"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityFilter(t *testing.T) {
	filter := availabilityFilter(model.StayWrite{
		ReservationID: "res-1",
		Rooms:         []string{"R-101", "R-102"},
	})

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "availabilities.reservation_id = :reservation_id")
	assert.Contains(t, where, "availabilities.room_number IN (:room_number_0, :room_number_1)")
	assert.Equal(t, "res-1", args["reservation_id"])
	assert.Equal(t, "R-101", args["room_number_0"])
	assert.Equal(t, "R-102", args["room_number_1"])
}

func TestReservationFilter(t *testing.T) {
	where, args := reservationFilter("res-1").GetWhereClause()

	assert.Contains(t, where, "reservations.id = :id")
	assert.Equal(t, "res-1", args["id"])
}
