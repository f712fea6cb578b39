package dto

import (
	"errors"
	"mime/multipart"
	"time"

	"safari/internal/domains/room/model"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	gModel "safari/shared/model"
	"safari/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber string                `json:"room_number" validate:"required,max=20"`
	RoomName   string                `json:"room_name"   validate:"required,max=100"`
	RoomType   string                `json:"room_type"   validate:"omitempty,max=50"`
	Capacity   int                   `json:"capacity"    validate:"omitempty,min=0"`
	Price      float64               `json:"price"       validate:"omitempty,min=0"`
	Image      *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `json:"active"      validate:"omitempty"`
}

// ToModel builds a new room; fresh rooms always start out Available.
func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		RoomNumber: c.RoomNumber,
		RoomName:   c.RoomName,
		RoomType:   c.RoomType,
		Capacity:   c.Capacity,
		Price:      c.Price,
		Image:      imageURL,
		Active:     active,
		Status:     model.StatusAvailable,
		Metadata:   gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	RoomName  string                `db:"room_name" json:"room_name" validate:"omitempty,max=100"`
	RoomType  string                `db:"room_type" json:"room_type" validate:"omitempty,max=50"`
	Capacity  *int                  `db:"capacity"  json:"capacity"  validate:"omitempty,min=0"`
	Price     *float64              `db:"price"     json:"price"     validate:"omitempty,min=0"`
	Image     *multipart.FileHeader `json:"image"   validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
	Active    *bool                 `db:"active"    json:"active"    validate:"omitempty"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Available' 'Booked' 'Reserved' 'Occupied' 'Under Maintenance'"`
}

type AvailableRoomsRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
}

// Range parses the requested stay. ok is false when no dates were given.
func (a *AvailableRoomsRequest) Range() (checkIn, checkOut time.Time, ok bool, err error) {
	if a.CheckInDate == constant.Empty && a.CheckOutDate == constant.Empty {
		return checkIn, checkOut, false, nil
	}

	if a.CheckInDate == constant.Empty || a.CheckOutDate == constant.Empty {
		return checkIn, checkOut, false, errIncompleteRange
	}

	checkIn, err = time.Parse(constant.DateOnlyFormat, a.CheckInDate)
	if err != nil {
		return checkIn, checkOut, false, err
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, a.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, false, err
	}

	return checkIn, checkOut, true, nil
}

var errIncompleteRange = errors.New("both check_in_date and check_out_date are required")

type RoomResponse struct {
	RoomNumber string  `json:"room_number"`
	RoomName   string  `json:"room_name"`
	RoomType   string  `json:"room_type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Active     bool    `json:"active"`
	Status     string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomNumber = model.RoomNumber
	r.RoomName = model.RoomName
	r.RoomType = model.RoomType
	r.Capacity = model.Capacity
	r.Price = model.Price
	r.Image = model.Image
	r.Active = model.Active
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

func FromModels(models []model.Room) []RoomResponse {
	rooms := make([]RoomResponse, len(models))
	for i, mod := range models {
		rooms[i].FromModel(mod)
	}

	return rooms
}
