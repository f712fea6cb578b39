package model

import (
	"fmt"
	"time"

	reservationModel "safari/internal/domains/reservation/model"
	"safari/shared/model"

	"github.com/google/uuid"
)

const (
	TableName      = "quotations"
	EntityName     = "quotation"
	ItemTableName  = "quotation_items"
	ItemEntityName = "quotation_item"

	FieldID            = "id"
	FieldCustomer      = "customer"
	FieldReservationID = "reservation_id"
	FieldDocStatus     = "docstatus"
	FieldQuotationID   = "quotation_id"
)

// Item codes group quotation lines.
const (
	ItemActivity      = "ACTIVITY"
	ItemAccommodation = "ACCOMMODATION"
	ItemTransport     = "TRANSPORT"
	ItemService       = "SERVICE"
)

type Quotation struct {
	ID            string    `db:"id"`
	Customer      string    `db:"customer"`
	ReservationID string    `db:"reservation_id"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	DocStatus     int       `db:"docstatus"`
	GrandTotal    float64   `db:"grand_total"`
	model.Metadata
}

type Item struct {
	ID          string  `db:"id"`
	QuotationID string  `db:"quotation_id"`
	Idx         int     `db:"idx"`
	ItemCode    string  `db:"item_code"`
	ItemName    string  `db:"item_name"`
	Description string  `db:"description"`
	Qty         int     `db:"qty"`
	Rate        float64 `db:"rate"`
	Amount      float64 `db:"amount"`
}

// Created is published when a quotation is generated from a reservation.
type Created struct {
	QuotationID   string  `json:"quotation_id"`
	ReservationID string  `json:"reservation_id"`
	Customer      string  `json:"customer"`
	GrandTotal    float64 `json:"grand_total"`
}

// ItemsFor lists the quotation lines of a reservation: activities, rooms, tents, transport, services.
func ItemsFor(quotationID string, details reservationModel.Details) []Item {
	items := []Item{}

	add := func(code, name, description string, qty int, rate float64) {
		items = append(items, Item{
			ID:          uuid.NewString(),
			QuotationID: quotationID,
			Idx:         len(items) + 1,
			ItemCode:    code,
			ItemName:    name,
			Description: description,
			Qty:         qty,
			Rate:        rate,
			Amount:      float64(qty) * rate,
		})
	}

	for _, a := range details.Activities {
		add(ItemActivity, a.ActivityName, a.Description, orOne(a.Quantity), a.Cost)
	}

	for _, room := range details.Rooms {
		add(ItemAccommodation, orDefault(room.RoomName, "Room"), fmt.Sprintf("Room Booking: %s", orDefault(room.RoomName, "N/A")), 1, room.Price)
	}

	for _, tent := range details.Tents {
		add(ItemAccommodation, orDefault(tent.TentType, "Tent"), fmt.Sprintf("Tent: %s", orDefault(tent.TentType, "N/A")), orOne(tent.Qty), tent.Price)
	}

	for _, t := range details.Transports {
		add(ItemTransport, orDefault(t.TransportName, "Transport"), "", 1, t.Price)
	}

	for _, svc := range details.Services {
		add(ItemService, orDefault(svc.ServiceName, "Service"), "", 1, svc.Price)
	}

	return items
}

// GrandTotal sums the item amounts.
func GrandTotal(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}

	return total
}

func orOne(qty int) int {
	if qty <= 0 {
		return 1
	}

	return qty
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
