package dto

import (
	"errors"
	"fmt"
	"time"

	"safari/internal/domains/reservation/model"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gModel "safari/shared/model"
	"safari/shared/timezone"

	"github.com/google/uuid"
)

var errInvalidStay = errors.New("check_out_date must be after check_in_date")

type ActivityRequest struct {
	ActivityName string  `json:"activity_name" validate:"required,max=100"`
	Description  string  `json:"description"   validate:"omitempty,max=500"`
	Quantity     int     `json:"quantity"      validate:"gte=0"`
	Cost         float64 `json:"cost"          validate:"gte=0"`
}

type RoomRequest struct {
	RoomNumber string  `json:"room_number" validate:"required,max=20"`
	RoomName   string  `json:"room_name"   validate:"omitempty,max=100"`
	Price      float64 `json:"price"       validate:"gte=0"`
}

type TentRequest struct {
	TentType string  `json:"tent_type" validate:"required,max=100"`
	Qty      int     `json:"qty"       validate:"gte=0"`
	Price    float64 `json:"price"     validate:"gte=0"`
}

type TransportRequest struct {
	TransportName string  `json:"transport_name" validate:"required,max=100"`
	Price         float64 `json:"price"          validate:"gte=0"`
}

type ServiceRequest struct {
	ServiceName string  `json:"service_name" validate:"required,max=100"`
	Price       float64 `json:"price"        validate:"gte=0"`
}

// ReservationRequest is used for create and for full replacement on update.
type ReservationRequest struct {
	CustomerName      string             `json:"customer_name"      validate:"required,max=100"`
	CustomerEmail     string             `json:"customer_email"     validate:"omitempty,email,max=100"`
	CustomerPhone     string             `json:"customer_phone"     validate:"omitempty,max=20"`
	CheckInDate       string             `json:"check_in_date"      validate:"required,datetime=2006-01-02"`
	CheckOutDate      string             `json:"check_out_date"     validate:"required,datetime=2006-01-02"`
	NoOfPeople        int                `json:"no_of_people"       validate:"gte=1"`
	NoOfAdults        int                `json:"no_of_adults"       validate:"gte=0"`
	NoOfChildren      int                `json:"no_of_children"     validate:"gte=0"`
	AccommodationType string             `json:"accommodation_type" validate:"omitempty,oneof=Rooms 'SWS Tents' 'Own Tents'"`
	NoOfTents         int                `json:"no_of_tents"        validate:"gte=0"`
	Activities        []ActivityRequest  `json:"activities"         validate:"omitempty,dive"`
	Rooms             []RoomRequest      `json:"rooms"              validate:"omitempty,unique=RoomNumber,dive"`
	Tents             []TentRequest      `json:"tents"              validate:"omitempty,unique=TentType,dive"`
	Transports        []TransportRequest `json:"transports"         validate:"omitempty,dive"`
	Services          []ServiceRequest   `json:"services"           validate:"omitempty,dive"`
}

// Validate checks the rules that struct tags cannot express.
func (r *ReservationRequest) Validate() error {
	if r.NoOfPeople != r.NoOfAdults+r.NoOfChildren {
		return fmt.Errorf( //nolint:err113
			"The total number of people (%d) must equal the sum of adults (%d) and children (%d).",
			r.NoOfPeople, r.NoOfAdults, r.NoOfChildren,
		)
	}

	_, _, err := parseStay(r.CheckInDate, r.CheckOutDate)

	return err
}

// ToModel builds a pending draft reservation with fresh child rows.
func (r *ReservationRequest) ToModel(user string) (model.Reservation, model.Details, error) {
	if err := r.Validate(); err != nil {
		return model.Reservation{}, model.Details{}, err
	}

	checkIn, checkOut, _ := parseStay(r.CheckInDate, r.CheckOutDate)

	reservation := model.Reservation{
		ID:                uuid.NewString(),
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		CustomerPhone:     r.CustomerPhone,
		CheckInDate:       checkIn,
		CheckOutDate:      checkOut,
		NoOfPeople:        r.NoOfPeople,
		NoOfAdults:        r.NoOfAdults,
		NoOfChildren:      r.NoOfChildren,
		AccommodationType: r.accommodationType(),
		NoOfTents:         r.NoOfTents,
		Status:            model.StatusPending,
		DocStatus:         constant.DocStatusDraft,
		Metadata:          gModel.NewMetadata(user, timezone.Now()),
	}

	return reservation, r.Details(reservation.ID), nil
}

// Fields returns the header columns written when the reservation is replaced.
func (r *ReservationRequest) Fields(user string) (map[string]any, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	checkIn, checkOut, _ := parseStay(r.CheckInDate, r.CheckOutDate)

	return map[string]any{
		"customer_name":          r.CustomerName,
		"customer_email":         r.CustomerEmail,
		"customer_phone":         r.CustomerPhone,
		model.FieldCheckInDate:   checkIn,
		model.FieldCheckOutDate:  checkOut,
		"no_of_people":           r.NoOfPeople,
		"no_of_adults":           r.NoOfAdults,
		"no_of_children":         r.NoOfChildren,
		"accommodation_type":     r.accommodationType(),
		"no_of_tents":            r.NoOfTents,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, nil
}

func (r *ReservationRequest) accommodationType() string {
	if r.AccommodationType == constant.Empty {
		return model.AccommodationRooms
	}

	return r.AccommodationType
}

// Details converts the child rows, assigning ids under the given reservation.
func (r *ReservationRequest) Details(reservationID string) model.Details {
	details := model.Details{
		Activities: make([]model.ActivityRow, len(r.Activities)),
		Rooms:      make([]model.RoomRow, len(r.Rooms)),
		Tents:      make([]model.TentRow, len(r.Tents)),
		Transports: make([]model.TransportRow, len(r.Transports)),
		Services:   make([]model.ServiceRow, len(r.Services)),
	}

	for i, a := range r.Activities {
		details.Activities[i] = model.ActivityRow{
			ID:            uuid.NewString(),
			ReservationID: reservationID,
			ActivityName:  a.ActivityName,
			Description:   a.Description,
			Quantity:      a.Quantity,
			Cost:          a.Cost,
		}
	}

	for i, room := range r.Rooms {
		details.Rooms[i] = model.RoomRow{
			ID:            uuid.NewString(),
			ReservationID: reservationID,
			RoomNumber:    room.RoomNumber,
			RoomName:      room.RoomName,
			Price:         room.Price,
		}
	}

	for i, t := range r.Tents {
		details.Tents[i] = model.TentRow{
			ID:            uuid.NewString(),
			ReservationID: reservationID,
			TentType:      t.TentType,
			Qty:           t.Qty,
			Price:         t.Price,
		}
	}

	for i, t := range r.Transports {
		details.Transports[i] = model.TransportRow{
			ID:            uuid.NewString(),
			ReservationID: reservationID,
			TransportName: t.TransportName,
			Price:         t.Price,
		}
	}

	for i, svc := range r.Services {
		details.Services[i] = model.ServiceRow{
			ID:            uuid.NewString(),
			ReservationID: reservationID,
			ServiceName:   svc.ServiceName,
			Price:         svc.Price,
		}
	}

	return details
}

type ReservationResponse struct {
	ID                string             `json:"id"`
	CustomerName      string             `json:"customer_name"`
	CustomerEmail     string             `json:"customer_email"`
	CustomerPhone     string             `json:"customer_phone"`
	CheckInDate       string             `json:"check_in_date"`
	CheckOutDate      string             `json:"check_out_date"`
	NoOfPeople        int                `json:"no_of_people"`
	NoOfAdults        int                `json:"no_of_adults"`
	NoOfChildren      int                `json:"no_of_children"`
	AccommodationType string             `json:"accommodation_type"`
	NoOfTents         int                `json:"no_of_tents"`
	Status            string             `json:"status"`
	DocStatus         int                `json:"docstatus"`
	CheckedIn         bool               `json:"checked_in"`
	CheckedOut        bool               `json:"checked_out"`
	ProposedTotalCost float64            `json:"proposed_total_cost"`
	Activities        []ActivityRequest  `json:"activities,omitempty"`
	Rooms             []RoomRequest      `json:"rooms,omitempty"`
	Tents             []TentRequest      `json:"tents,omitempty"`
	Transports        []TransportRequest `json:"transports,omitempty"`
	Services          []ServiceRequest   `json:"services,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.NoOfPeople = model.NoOfPeople
	r.NoOfAdults = model.NoOfAdults
	r.NoOfChildren = model.NoOfChildren
	r.AccommodationType = model.AccommodationType
	r.NoOfTents = model.NoOfTents
	r.Status = model.Status
	r.DocStatus = model.DocStatus
	r.CheckedIn = model.CheckedIn
	r.CheckedOut = model.CheckedOut
	r.ProposedTotalCost = model.ProposedTotalCost
	r.Metadata.FromModel(model.Metadata)
}

func (r *ReservationResponse) WithDetails(details model.Details) {
	for _, a := range details.Activities {
		r.Activities = append(r.Activities, ActivityRequest{
			ActivityName: a.ActivityName,
			Description:  a.Description,
			Quantity:     a.Quantity,
			Cost:         a.Cost,
		})
	}

	for _, room := range details.Rooms {
		r.Rooms = append(r.Rooms, RoomRequest{RoomNumber: room.RoomNumber, RoomName: room.RoomName, Price: room.Price})
	}

	for _, t := range details.Tents {
		r.Tents = append(r.Tents, TentRequest{TentType: t.TentType, Qty: t.Qty, Price: t.Price})
	}

	for _, t := range details.Transports {
		r.Transports = append(r.Transports, TransportRequest{TransportName: t.TransportName, Price: t.Price})
	}

	for _, svc := range details.Services {
		r.Services = append(r.Services, ServiceRequest{ServiceName: svc.ServiceName, Price: svc.Price})
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type TotalCostResponse struct {
	ReservationID string  `json:"reservation_id"`
	TotalCost     float64 `json:"total_cost"`
}

// CalendarRequest selects reservations whose stay overlaps [From, To).
type CalendarRequest struct {
	From string `validate:"required,datetime=2006-01-02"`
	To   string `validate:"required,datetime=2006-01-02"`
}

func (c *CalendarRequest) Filter() (gDto.FilterGroup, error) {
	from, to, err := parseStay(c.From, c.To)
	if err != nil {
		return gDto.FilterGroup{}, err
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCheckInDate,
				Operator: gDto.FilterOperatorLess,
				Value:    to,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCheckOutDate,
				Operator: gDto.FilterOperatorGreater,
				Value:    from,
				Table:    model.TableName,
			},
		},
	}, nil
}

func parseStay(from, to string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, from)
	if err != nil {
		return checkIn, time.Time{}, err
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, to)
	if err != nil {
		return checkIn, checkOut, err
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, errInvalidStay
	}

	return checkIn, checkOut, nil
}
