package model

import "safari/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomNumber = "room_number"
	FieldRoomName   = "room_name"
	FieldRoomType   = "room_type"
	FieldCapacity   = "capacity"
	FieldPrice      = "price"
	FieldImage      = "image"
	FieldActive     = "active"
	FieldStatus     = "status"
)

const (
	StatusAvailable        = "Available"
	StatusBooked           = "Booked"
	StatusReserved         = "Reserved"
	StatusOccupied         = "Occupied"
	StatusUnderMaintenance = "Under Maintenance"
)

var Statuses = []string{StatusAvailable, StatusBooked, StatusReserved, StatusOccupied, StatusUnderMaintenance}

type Room struct {
	RoomNumber string  `db:"room_number"`
	RoomName   string  `db:"room_name"`
	RoomType   string  `db:"room_type"`
	Capacity   int     `db:"capacity"`
	Price      float64 `db:"price"`
	Image      string  `db:"image"`
	Active     bool    `db:"active"`
	Status     string  `db:"status"`
	model.Metadata
}

// StatusChange is the payload published when a room moves between statuses.
type StatusChange struct {
	RoomNumber string `json:"room_number"`
	From       string `json:"from"`
	To         string `json:"to"`
	ChangedBy  string `json:"changed_by"`
}
