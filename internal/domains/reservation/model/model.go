package model

import (
	"safari/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID                = "id"
	FieldCustomerName      = "customer_name"
	FieldCheckInDate       = "check_in_date"
	FieldCheckOutDate      = "check_out_date"
	FieldStatus            = "status"
	FieldDocStatus         = "docstatus"
	FieldCheckedIn         = "checked_in"
	FieldCheckedOut        = "checked_out"
	FieldProposedTotalCost = "proposed_total_cost"
	FieldReservationID     = "reservation_id"
)

// Child tables, each keyed by reservation_id.
const (
	ActivityTableName  = "reservation_activities"
	RoomTableName      = "reservation_rooms"
	TentTableName      = "reservation_tents"
	TransportTableName = "reservation_transports"
	ServiceTableName   = "reservation_services"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed Reservation"
)

const (
	AccommodationRooms    = "Rooms"
	AccommodationSWSTents = "SWS Tents"
	AccommodationOwnTents = "Own Tents"
)

// WaterSportsDiscount is applied to accommodation when a water sports activity is booked.
const WaterSportsDiscount = 0.5

type Reservation struct {
	ID                string    `db:"id"`
	CustomerName      string    `db:"customer_name"`
	CustomerEmail     string    `db:"customer_email"`
	CustomerPhone     string    `db:"customer_phone"`
	CheckInDate       time.Time `db:"check_in_date"`
	CheckOutDate      time.Time `db:"check_out_date"`
	NoOfPeople        int       `db:"no_of_people"`
	NoOfAdults        int       `db:"no_of_adults"`
	NoOfChildren      int       `db:"no_of_children"`
	AccommodationType string    `db:"accommodation_type"`
	NoOfTents         int       `db:"no_of_tents"`
	Status            string    `db:"status"`
	DocStatus         int       `db:"docstatus"`
	CheckedIn         bool      `db:"checked_in"`
	CheckedOut        bool      `db:"checked_out"`
	ProposedTotalCost float64   `db:"proposed_total_cost"`
	model.Metadata
}

type ActivityRow struct {
	ID            string  `db:"id"`
	ReservationID string  `db:"reservation_id"`
	ActivityName  string  `db:"activity_name"`
	Description   string  `db:"description"`
	Quantity      int     `db:"quantity"`
	Cost          float64 `db:"cost"`
}

type RoomRow struct {
	ID            string  `db:"id"`
	ReservationID string  `db:"reservation_id"`
	RoomNumber    string  `db:"room_number"`
	RoomName      string  `db:"room_name"`
	Price         float64 `db:"price"`
}

type TentRow struct {
	ID            string  `db:"id"`
	ReservationID string  `db:"reservation_id"`
	TentType      string  `db:"tent_type"`
	Qty           int     `db:"qty"`
	Price         float64 `db:"price"`
}

type TransportRow struct {
	ID            string  `db:"id"`
	ReservationID string  `db:"reservation_id"`
	TransportName string  `db:"transport_name"`
	Price         float64 `db:"price"`
}

type ServiceRow struct {
	ID            string  `db:"id"`
	ReservationID string  `db:"reservation_id"`
	ServiceName   string  `db:"service_name"`
	Price         float64 `db:"price"`
}

// Details holds the child rows of a reservation.
type Details struct {
	Activities []ActivityRow
	Rooms      []RoomRow
	Tents      []TentRow
	Transports []TransportRow
	Services   []ServiceRow
}

// ActivityNames lists the activities booked on the reservation.
func (d Details) ActivityNames() []string {
	names := make([]string, 0, len(d.Activities))
	for _, activity := range d.Activities {
		names = append(names, activity.ActivityName)
	}

	return names
}

// RoomNumbers lists the rooms booked on the reservation.
func (d Details) RoomNumbers() []string {
	rooms := make([]string, 0, len(d.Rooms))
	for _, room := range d.Rooms {
		rooms = append(rooms, room.RoomNumber)
	}

	return rooms
}

// DuplicateRoom returns the first room listed more than once.
func (d Details) DuplicateRoom() (string, bool) {
	seen := make(map[string]struct{}, len(d.Rooms))

	for _, room := range d.Rooms {
		if _, ok := seen[room.RoomNumber]; ok {
			return room.RoomNumber, true
		}

		seen[room.RoomNumber] = struct{}{}
	}

	return "", false
}

// TotalCost sums rooms and tents, halves that when water sports are booked, then adds transport.
// Activities and services are quoted separately and never enter the proposed total.
func (d Details) TotalCost(hasWaterSports bool) float64 {
	var accommodation float64

	for _, room := range d.Rooms {
		accommodation += room.Price
	}

	for _, tent := range d.Tents {
		accommodation += float64(tent.Qty) * tent.Price
	}

	if hasWaterSports {
		accommodation *= WaterSportsDiscount
	}

	total := accommodation

	for _, transport := range d.Transports {
		total += transport.Price
	}

	return total
}

// Confirmed is published when a reservation is confirmed.
type Confirmed struct {
	ReservationID string   `json:"reservation_id"`
	Rooms         []string `json:"rooms"`
	CheckInDate   string   `json:"check_in_date"`
	CheckOutDate  string   `json:"check_out_date"`
}
