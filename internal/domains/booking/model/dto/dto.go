package dto

import (
	"errors"
	"time"

	"safari/internal/domains/booking/model"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gModel "safari/shared/model"
	"safari/shared/timezone"

	"github.com/google/uuid"
)

var errInvalidStay = errors.New("check_out_date must be after check_in_date")

type CreateBookingRequest struct {
	RoomNumber   string `json:"room_number"    validate:"required,max=20"`
	GuestName    string `json:"guest_name"     validate:"required,max=100"`
	GuestEmail   string `json:"guest_email"    validate:"omitempty,email,max=100"`
	GuestPhone   string `json:"guest_phone"    validate:"omitempty,max=20"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Remarks      string `json:"remarks"        validate:"omitempty,max=500"`
}

// ToModel builds a draft booking.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, checkOut, err := parseStay(c.CheckInDate, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:           uuid.NewString(),
		RoomNumber:   c.RoomNumber,
		GuestName:    c.GuestName,
		GuestEmail:   c.GuestEmail,
		GuestPhone:   c.GuestPhone,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Remarks:      c.Remarks,
		DocStatus:    constant.DocStatusDraft,
		Status:       model.StatusOpen,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type UpdateBookingRequest struct {
	GuestName    string `db:"guest_name"  json:"guest_name"     validate:"omitempty,max=100"`
	GuestEmail   string `db:"guest_email" json:"guest_email"    validate:"omitempty,email,max=100"`
	GuestPhone   string `db:"guest_phone" json:"guest_phone"    validate:"omitempty,max=20"`
	Remarks      string `db:"remarks"     json:"remarks"        validate:"omitempty,max=500"`
	CheckInDate  string `json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
}

// Fields returns the columns to write. Moving the stay needs both dates.
func (u *UpdateBookingRequest) Fields(user string) (map[string]any, error) {
	fields := shared.TransformFields(*u, user)

	if u.CheckInDate == constant.Empty && u.CheckOutDate == constant.Empty {
		return fields, nil
	}

	checkIn, checkOut, err := parseStay(u.CheckInDate, u.CheckOutDate)
	if err != nil {
		return nil, err
	}

	fields[model.FieldCheckInDate] = checkIn
	fields[model.FieldCheckOutDate] = checkOut

	return fields, nil
}

type BookingResponse struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"room_number"`
	GuestName    string `json:"guest_name"`
	GuestEmail   string `json:"guest_email"`
	GuestPhone   string `json:"guest_phone"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Remarks      string `json:"remarks"`
	DocStatus    int    `json:"docstatus"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Remarks = model.Remarks
	r.DocStatus = model.DocStatus
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
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
