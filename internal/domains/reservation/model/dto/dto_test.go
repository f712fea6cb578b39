package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"safari/internal/domains/reservation/model"
	"safari/internal/domains/reservation/model/dto"
	"safari/shared/failure"
	"safari/shared/validator"
)

func validRequest() dto.ReservationRequest {
	return dto.ReservationRequest{
		CustomerName: "Amani Njoroge",
		CheckInDate:  "2025-03-14",
		CheckOutDate: "2025-03-16",
		NoOfPeople:   2,
		NoOfAdults:   2,
		Rooms:        []dto.RoomRequest{{RoomNumber: "R-101", Price: 120}},
	}
}

func TestReservationRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.ReservationRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(_ *dto.ReservationRequest) {}},
		{
			name:    "same room twice",
			mutate:  func(r *dto.ReservationRequest) { r.Rooms = append(r.Rooms, dto.RoomRequest{RoomNumber: "R-101"}) },
			wantErr: true,
		},
		{
			name: "same tent type twice",
			mutate: func(r *dto.ReservationRequest) {
				r.Tents = []dto.TentRequest{{TentType: "Dome", Qty: 1}, {TentType: "Dome", Qty: 2}}
			},
			wantErr: true,
		},
		{name: "rooms", mutate: func(r *dto.ReservationRequest) { r.AccommodationType = model.AccommodationRooms }},
		{name: "sws tents", mutate: func(r *dto.ReservationRequest) { r.AccommodationType = model.AccommodationSWSTents }},
		{name: "own tents", mutate: func(r *dto.ReservationRequest) { r.AccommodationType = model.AccommodationOwnTents }},
		{name: "unknown accommodation", mutate: func(r *dto.ReservationRequest) { r.AccommodationType = "Tent" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReservationRequest_ToModelDefaultsToRooms(t *testing.T) {
	req := validRequest()

	reservation, details, err := req.ToModel("admin-1")

	assert.NoError(t, err)
	assert.Equal(t, model.AccommodationRooms, reservation.AccommodationType)
	assert.Equal(t, []string{"R-101"}, details.RoomNumbers())
}
