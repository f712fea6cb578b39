package dto

import (
	"errors"
	"mime/multipart"
	"time"

	"safari/internal/domains/inquiry/model"
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
	Cost         float64 `json:"cost"          validate:"gte=0"`
}

type RoomRequest struct {
	RoomNumber string  `json:"room_number" validate:"required,max=20"`
	RoomName   string  `json:"room_name"   validate:"omitempty,max=100"`
	Price      float64 `json:"price"       validate:"gte=0"`
}

// InquiryRequest is used for create and for full replacement on update.
type InquiryRequest struct {
	CustomerName      string            `json:"customer_name"      validate:"required,max=100"`
	CustomerEmail     string            `json:"customer_email"     validate:"required,email,max=100"`
	CheckInDate       string            `json:"check_in_date"      validate:"required,datetime=2006-01-02"`
	CheckOutDate      string            `json:"check_out_date"     validate:"required,datetime=2006-01-02"`
	AccommodationType string            `json:"accommodation_type" validate:"omitempty,oneof=Rooms Tents"`
	NoOfTentsNeeded   int               `json:"no_of_tents_needed" validate:"gte=0"`
	Activities        []ActivityRequest `json:"activities"         validate:"omitempty,dive"`
	Rooms             []RoomRequest     `json:"rooms"              validate:"omitempty,dive"`
}

func (r *InquiryRequest) stay() (time.Time, time.Time, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, r.CheckInDate)
	if err != nil {
		return checkIn, time.Time{}, err
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, r.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, err
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, errInvalidStay
	}

	return checkIn, checkOut, nil
}

// ToModel builds a draft inquiry and its rows; the proposed cost is derived from the rows.
func (r *InquiryRequest) ToModel(user string) (model.Inquiry, model.Details, error) {
	checkIn, checkOut, err := r.stay()
	if err != nil {
		return model.Inquiry{}, model.Details{}, err
	}

	inquiry := model.Inquiry{
		ID:                uuid.NewString(),
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		CheckInDate:       checkIn,
		CheckOutDate:      checkOut,
		AccommodationType: r.AccommodationType,
		NoOfTentsNeeded:   r.NoOfTentsNeeded,
		DocStatus:         constant.DocStatusDraft,
		Metadata:          gModel.NewMetadata(user, timezone.Now()),
	}

	details := r.Details(inquiry.ID)
	inquiry.ProposedTotalCost = details.ProposedTotalCost()

	return inquiry, details, nil
}

// Fields returns the header columns written when the inquiry is replaced.
func (r *InquiryRequest) Fields(user string, details model.Details) (map[string]any, error) {
	checkIn, checkOut, err := r.stay()
	if err != nil {
		return nil, err
	}

	return map[string]any{
		model.FieldCustomerName:      r.CustomerName,
		model.FieldCustomerEmail:     r.CustomerEmail,
		model.FieldCheckInDate:       checkIn,
		model.FieldCheckOutDate:      checkOut,
		"accommodation_type":         r.AccommodationType,
		"no_of_tents_needed":         r.NoOfTentsNeeded,
		model.FieldProposedTotalCost: details.ProposedTotalCost(),
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     user,
	}, nil
}

func (r *InquiryRequest) Details(inquiryID string) model.Details {
	details := model.Details{
		Activities: make([]model.ActivityRow, len(r.Activities)),
		Rooms:      make([]model.RoomRow, len(r.Rooms)),
	}

	for i, a := range r.Activities {
		details.Activities[i] = model.ActivityRow{
			ID:           uuid.NewString(),
			InquiryID:    inquiryID,
			ActivityName: a.ActivityName,
			Cost:         a.Cost,
		}
	}

	for i, room := range r.Rooms {
		details.Rooms[i] = model.RoomRow{
			ID:         uuid.NewString(),
			InquiryID:  inquiryID,
			RoomNumber: room.RoomNumber,
			RoomName:   room.RoomName,
			Price:      room.Price,
		}
	}

	return details
}

type AttachKitListRequest struct {
	KitList     *multipart.FileHeader `json:"kit_list" validate:"required,mimetypes=application/pdf image/png image/jpeg,maxfilesize=5"`
	KitListFile multipart.File        `json:"-"`
}

type InquiryResponse struct {
	ID                string            `json:"id"`
	CustomerName      string            `json:"customer_name"`
	CustomerEmail     string            `json:"customer_email"`
	CheckInDate       string            `json:"check_in_date"`
	CheckOutDate      string            `json:"check_out_date"`
	AccommodationType string            `json:"accommodation_type"`
	NoOfTentsNeeded   int               `json:"no_of_tents_needed"`
	ProposedTotalCost float64           `json:"proposed_total_cost"`
	KitListURL        string            `json:"kit_list_url"`
	DocStatus         int               `json:"docstatus"`
	Activities        []ActivityRequest `json:"activities,omitempty"`
	Rooms             []RoomRequest     `json:"rooms,omitempty"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(model model.Inquiry) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.AccommodationType = model.AccommodationType
	r.NoOfTentsNeeded = model.NoOfTentsNeeded
	r.ProposedTotalCost = model.ProposedTotalCost
	r.KitListURL = model.KitListURL
	r.DocStatus = model.DocStatus
	r.Metadata.FromModel(model.Metadata)
}

func (r *InquiryResponse) WithDetails(details model.Details) {
	for _, a := range details.Activities {
		r.Activities = append(r.Activities, ActivityRequest{ActivityName: a.ActivityName, Cost: a.Cost})
	}

	for _, room := range details.Rooms {
		r.Rooms = append(r.Rooms, RoomRequest{RoomNumber: room.RoomNumber, RoomName: room.RoomName, Price: room.Price})
	}
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}

type CalendarEventResponse struct {
	ID               string `json:"id"`
	Subject          string `json:"subject"`
	StartsOn         string `json:"starts_on"`
	EndsOn           string `json:"ends_on"`
	EventType        string `json:"event_type"`
	Description      string `json:"description"`
	AllDay           bool   `json:"all_day"`
	BookingInquiryID string `json:"booking_inquiry_id"`
}

type GetCalendarEventsResponse struct {
	Events    []CalendarEventResponse `json:"events"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetCalendarEventsResponse) FromModels(models []model.CalendarEvent, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]CalendarEventResponse, len(models))
	for i, event := range models {
		r.Events[i] = CalendarEventResponse{
			ID:               event.ID,
			Subject:          event.Subject,
			StartsOn:         event.StartsOn.Format(constant.DateOnlyFormat),
			EndsOn:           event.EndsOn.Format(constant.DateOnlyFormat),
			EventType:        event.EventType,
			Description:      event.Description,
			AllDay:           event.AllDay,
			BookingInquiryID: event.BookingInquiryID,
		}
	}
}
