package model

import (
	"safari/shared/model"
	"time"
)

const (
	TableName  = "availabilities"
	EntityName = "availability"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldTentType      = "tent_type"
	FieldReservationID = "reservation_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldStatus        = "status"
)

const (
	StatusAvailable  = "Available"
	StatusBooked     = "Booked"
	StatusReserved   = "Reserved"
	StatusCheckedIn  = "Checked In"
	StatusCheckedOut = "Checked Out"
)

// Daily jobs over availability records.
const (
	JobRoomStatus = "room-status"
	JobCheckout   = "checkout"
)

// Statuses lists every value accepted for Availability.Status.
var Statuses = []string{StatusAvailable, StatusBooked, StatusReserved, StatusCheckedIn, StatusCheckedOut}

// BlockingStatuses hold a room for their date range.
var BlockingStatuses = []string{StatusBooked, StatusReserved, StatusCheckedIn}

type Availability struct {
	ID            string    `db:"id"`
	RoomNumber    *string   `db:"room_number"`
	TentType      *string   `db:"tent_type"`
	ReservationID *string   `db:"reservation_id"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	Status        string    `db:"status"`
	model.Metadata
}

// Room returns the referenced room number, or empty when the record tracks a tent.
func (a Availability) Room() string {
	if a.RoomNumber == nil {
		return ""
	}

	return *a.RoomNumber
}
