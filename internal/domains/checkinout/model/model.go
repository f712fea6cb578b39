package model

import (
	"safari/shared/model"
	"time"
)

const (
	CheckInTableName   = "check_in_logs"
	CheckInEntityName  = "check_in_log"
	CheckoutTableName  = "checkout_logs"
	CheckoutEntityName = "checkout_log"

	FieldID            = "id"
	FieldReservationID = "reservation_id"
	FieldRoomNumber    = "room_number"
	FieldCheckInTime   = "check_in_time"
	FieldCheckoutDate  = "checkout_date"
	FieldCheckoutTime  = "checkout_time"
	FieldRemarks       = "remarks"
	FieldStatus        = "status"
)

const StatusCheckedOut = "Checked Out"

// CheckoutHour is the wall-clock hour guests leave on their checkout date.
const CheckoutHour = 10

type CheckInLog struct {
	ID            string    `db:"id"`
	ReservationID string    `db:"reservation_id"`
	RoomNumber    string    `db:"room_number"`
	CheckInTime   time.Time `db:"check_in_time"`
	Remarks       string    `db:"remarks"`
	model.Metadata
}

type CheckoutLog struct {
	ID            string    `db:"id"`
	ReservationID *string   `db:"reservation_id"`
	RoomNumber    string    `db:"room_number"`
	CheckoutDate  time.Time `db:"checkout_date"`
	CheckoutTime  time.Time `db:"checkout_time"`
	Status        string    `db:"status"`
	model.Metadata
}

// CheckoutTimeOn returns the standard checkout moment for the given day.
func CheckoutTimeOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), CheckoutHour, 0, 0, 0, day.Location())
}

// Stay is published when a reservation checks in or out.
type Stay struct {
	ReservationID string   `json:"reservation_id"`
	Rooms         []string `json:"rooms"`
	By            string   `json:"by"`
}

// StayWrite is the room, availability and reservation state a check-in or checkout moves together with its logs.
type StayWrite struct {
	ReservationID      string
	Rooms              []string
	RoomFrom           []string
	RoomTo             string
	AvailabilityStatus string
	ReservationFlag    string
	By                 string
	At                 time.Time
}
