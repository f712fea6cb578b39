package dto

import (
	"errors"
	"time"

	"safari/internal/domains/availability/model"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gModel "safari/shared/model"
	"safari/shared/timezone"

	"github.com/google/uuid"
)

var (
	errMissingTarget = errors.New("either room_number or tent_type is required")
	errInvalidRange  = errors.New("check_out_date must be after check_in_date")
)

type CreateAvailabilityRequest struct {
	RoomNumber    string `json:"room_number"    validate:"omitempty,max=20"`
	TentType      string `json:"tent_type"      validate:"omitempty,max=50"`
	ReservationID string `json:"reservation_id" validate:"omitempty,uuid"`
	CheckInDate   string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate  string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Status        string `json:"status"         validate:"omitempty,oneof='Available' 'Booked' 'Reserved' 'Checked In' 'Checked Out'"`
}

func (c *CreateAvailabilityRequest) ToModel(user string) (model.Availability, error) {
	if c.RoomNumber == constant.Empty && c.TentType == constant.Empty {
		return model.Availability{}, errMissingTarget
	}

	checkIn, checkOut, err := parseRange(c.CheckInDate, c.CheckOutDate)
	if err != nil {
		return model.Availability{}, err
	}

	status := c.Status
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	return model.Availability{
		ID:            uuid.NewString(),
		RoomNumber:    optional(c.RoomNumber),
		TentType:      optional(c.TentType),
		ReservationID: optional(c.ReservationID),
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Status:        status,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type UpdateAvailabilityRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

func (u *UpdateAvailabilityRequest) Fields(user string) (map[string]any, error) {
	checkIn, checkOut, err := parseRange(u.CheckInDate, u.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		model.FieldCheckInDate:   checkIn,
		model.FieldCheckOutDate:  checkOut,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Available' 'Booked' 'Reserved' 'Checked In' 'Checked Out'"`
}

// CalendarRequest selects records whose stay overlaps [From, To).
type CalendarRequest struct {
	From       string `json:"from"        validate:"required,datetime=2006-01-02"`
	To         string `json:"to"          validate:"required,datetime=2006-01-02"`
	RoomNumber string `json:"room_number" validate:"omitempty,max=20"`
}

func (c *CalendarRequest) Filter() (gDto.FilterGroup, error) {
	from, to, err := parseRange(c.From, c.To)
	if err != nil {
		return gDto.FilterGroup{}, err
	}

	filter := gDto.FilterGroup{
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
	}

	if c.RoomNumber != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    c.RoomNumber,
			Table:    model.TableName,
		})
	}

	return filter, nil
}

type AvailabilityResponse struct {
	ID            string `json:"id"`
	RoomNumber    string `json:"room_number,omitempty"`
	TentType      string `json:"tent_type,omitempty"`
	ReservationID string `json:"reservation_id,omitempty"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (a *AvailabilityResponse) FromModel(model model.Availability) {
	a.ID = model.ID
	a.RoomNumber = deref(model.RoomNumber)
	a.TentType = deref(model.TentType)
	a.ReservationID = deref(model.ReservationID)
	a.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	a.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	a.Status = model.Status
	a.Metadata.FromModel(model.Metadata)
}

type GetAvailabilitiesResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
	TotalPage      int                    `json:"total_page"`
	TotalData      int                    `json:"total_data"`
}

func (g *GetAvailabilitiesResponse) FromModels(models []model.Availability, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)
	g.Availabilities = FromModels(models)
}

func FromModels(models []model.Availability) []AvailabilityResponse {
	res := make([]AvailabilityResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// JobResult reports how many records a scheduled job touched.
type JobResult struct {
	Job       string `json:"job"`
	Date      string `json:"date"`
	Processed int    `json:"processed"`
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, from)
	if err != nil {
		return checkIn, time.Time{}, err
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, to)
	if err != nil {
		return checkIn, checkOut, err
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, errInvalidRange
	}

	return checkIn, checkOut, nil
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}
