package model

import (
	"safari/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomNumber   = "room_number"
	FieldGuestName    = "guest_name"
	FieldGuestEmail   = "guest_email"
	FieldGuestPhone   = "guest_phone"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldRemarks      = "remarks"
	FieldDocStatus    = "docstatus"
	FieldStatus       = "status"
)

const (
	StatusOpen       = "Open"
	StatusCheckedOut = "Checked Out"
	StatusCancelled  = "Cancelled"
)

type Booking struct {
	ID           string    `db:"id"`
	RoomNumber   string    `db:"room_number"`
	GuestName    string    `db:"guest_name"`
	GuestEmail   string    `db:"guest_email"`
	GuestPhone   string    `db:"guest_phone"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Remarks      string    `db:"remarks"`
	DocStatus    int       `db:"docstatus"`
	Status       string    `db:"status"`
	model.Metadata
}

// CheckedOut is published once a booking has been checked out.
type CheckedOut struct {
	BookingID        string `json:"booking_id"`
	RoomNumber       string `json:"room_number"`
	MaintenanceLogID string `json:"maintenance_log_id"`
	CheckedOutBy     string `json:"checked_out_by"`
}
