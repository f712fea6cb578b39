package dto

import (
	"safari/internal/domains/checkinout/model"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
)

type CreateCheckInRequest struct {
	ReservationID string `json:"reservation_id" validate:"required,uuid"`
	Remarks       string `json:"remarks"        validate:"omitempty,max=500"`
}

type CreateCheckOutRequest struct {
	ReservationID string `json:"reservation_id" validate:"required,uuid"`
}

type CheckInLogResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	RoomNumber    string `json:"room_number"`
	CheckInTime   string `json:"check_in_time"`
	Remarks       string `json:"remarks"`
	gDto.Metadata
}

func (r *CheckInLogResponse) FromModel(model model.CheckInLog) {
	r.ID = model.ID
	r.ReservationID = model.ReservationID
	r.RoomNumber = model.RoomNumber
	r.CheckInTime = model.CheckInTime.Format(constant.DateFormat)
	r.Remarks = model.Remarks
	r.Metadata.FromModel(model.Metadata)
}

type GetCheckInLogsResponse struct {
	CheckIns  []CheckInLogResponse `json:"check_ins"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetCheckInLogsResponse) FromModels(models []model.CheckInLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CheckIns = make([]CheckInLogResponse, len(models))
	for i, mod := range models {
		r.CheckIns[i].FromModel(mod)
	}
}

type CheckoutLogResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id,omitempty"`
	RoomNumber    string `json:"room_number"`
	CheckoutDate  string `json:"checkout_date"`
	CheckoutTime  string `json:"checkout_time"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (r *CheckoutLogResponse) FromModel(model model.CheckoutLog) {
	r.ID = model.ID
	if model.ReservationID != nil {
		r.ReservationID = *model.ReservationID
	}

	r.RoomNumber = model.RoomNumber
	r.CheckoutDate = model.CheckoutDate.Format(constant.DateOnlyFormat)
	r.CheckoutTime = model.CheckoutTime.Format(constant.DateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetCheckoutLogsResponse struct {
	Checkouts []CheckoutLogResponse `json:"checkouts"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetCheckoutLogsResponse) FromModels(models []model.CheckoutLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Checkouts = make([]CheckoutLogResponse, len(models))
	for i, mod := range models {
		r.Checkouts[i].FromModel(mod)
	}
}
