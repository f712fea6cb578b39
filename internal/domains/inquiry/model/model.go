package model

import (
	"fmt"
	"time"

	"safari/shared/constant"
	"safari/shared/model"

	"github.com/google/uuid"
)

const (
	TableName          = "booking_inquiries"
	EntityName         = "booking_inquiry"
	ActivityTableName  = "booking_inquiry_activities"
	RoomTableName      = "booking_inquiry_rooms"
	EventTableName     = "calendar_events"
	EventEntityName    = "calendar_event"
	KitListDirectory   = "kit-lists"
	AccommodationRooms = "Rooms"
	AccommodationTents = "Tents"

	FieldID                = "id"
	FieldCustomerName      = "customer_name"
	FieldCustomerEmail     = "customer_email"
	FieldCheckInDate       = "check_in_date"
	FieldCheckOutDate      = "check_out_date"
	FieldDocStatus         = "docstatus"
	FieldKitListURL        = "kit_list_url"
	FieldKitList           = "kit_list"
	FieldProposedTotalCost = "proposed_total_cost"
	FieldInquiryID         = "inquiry_id"
	FieldBookingInquiryID  = "booking_inquiry_id"
	FieldStartsOn          = "starts_on"
)

const EventTypePublic = "Public"

type Inquiry struct {
	ID                string    `db:"id"`
	CustomerName      string    `db:"customer_name"`
	CustomerEmail     string    `db:"customer_email"`
	CheckInDate       time.Time `db:"check_in_date"`
	CheckOutDate      time.Time `db:"check_out_date"`
	AccommodationType string    `db:"accommodation_type"`
	NoOfTentsNeeded   int       `db:"no_of_tents_needed"`
	ProposedTotalCost float64   `db:"proposed_total_cost"`
	KitListURL        string    `db:"kit_list_url"`
	DocStatus         int       `db:"docstatus"`
	model.Metadata
}

type ActivityRow struct {
	ID           string  `db:"id"`
	InquiryID    string  `db:"inquiry_id"`
	ActivityName string  `db:"activity_name"`
	Cost         float64 `db:"cost"`
}

type RoomRow struct {
	ID         string  `db:"id"`
	InquiryID  string  `db:"inquiry_id"`
	RoomNumber string  `db:"room_number"`
	RoomName   string  `db:"room_name"`
	Price      float64 `db:"price"`
}

type Details struct {
	Activities []ActivityRow
	Rooms      []RoomRow
}

// ProposedTotalCost sums activity costs and room prices.
func (d Details) ProposedTotalCost() float64 {
	var total float64

	for _, a := range d.Activities {
		total += a.Cost
	}

	for _, room := range d.Rooms {
		total += room.Price
	}

	return total
}

type CalendarEvent struct {
	ID               string    `db:"id"`
	Subject          string    `db:"subject"`
	StartsOn         time.Time `db:"starts_on"`
	EndsOn           time.Time `db:"ends_on"`
	EventType        string    `db:"event_type"`
	Description      string    `db:"description"`
	AllDay           bool      `db:"all_day"`
	BookingInquiryID string    `db:"booking_inquiry_id"`
	model.Metadata
}

// NewCalendarEvent builds the public all-day event announcing a submitted inquiry.
func NewCalendarEvent(inquiry Inquiry, metadata model.Metadata) CalendarEvent {
	checkIn := inquiry.CheckInDate.Format(constant.DateOnlyFormat)
	checkOut := inquiry.CheckOutDate.Format(constant.DateOnlyFormat)

	return CalendarEvent{
		ID:        uuid.NewString(),
		Subject:   fmt.Sprintf("Booking: %s (%s)", inquiry.CustomerName, inquiry.ID),
		StartsOn:  inquiry.CheckInDate,
		EndsOn:    inquiry.CheckOutDate,
		EventType: EventTypePublic,
		Description: fmt.Sprintf("Booking for %s from %s to %s. Booking Inquiry: %s",
			inquiry.CustomerName, checkIn, checkOut, inquiry.ID),
		AllDay:           true,
		BookingInquiryID: inquiry.ID,
		Metadata:         metadata,
	}
}

// Submitted is published once the kit list has been mailed.
type Submitted struct {
	InquiryID     string `json:"inquiry_id"`
	EventID       string `json:"event_id"`
	CustomerEmail string `json:"customer_email"`
	KitListURL    string `json:"kit_list_url"`
}
