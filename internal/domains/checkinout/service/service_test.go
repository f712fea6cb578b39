package service_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "safari/infras/otel/mocks"
	availabilityModel "safari/internal/domains/availability/model"
	"safari/internal/domains/checkinout/mocks"
	"safari/internal/domains/checkinout/model"
	"safari/internal/domains/checkinout/model/dto"
	"safari/internal/domains/checkinout/service"
	maintenanceModel "safari/internal/domains/maintenance/model"
	reservationMocks "safari/internal/domains/reservation/mocks"
	reservationModel "safari/internal/domains/reservation/model"
	roomMocks "safari/internal/domains/room/mocks"
	roomModel "safari/internal/domains/room/model"
	roomDto "safari/internal/domains/room/model/dto"
	roomRepo "safari/internal/domains/room/repository"
	"safari/shared/constant"
	eventMocks "safari/shared/event/mocks"
	"safari/shared/failure"
)

const reservationID = "5d7c1c64-94a4-4a38-9b53-3a4f5b7f2a10"

type fixture struct {
	checkInRepo     *mocks.MockCheckInLog
	checkoutRepo    *mocks.MockCheckoutLog
	reservationRepo *reservationMocks.MockReservation
	roomService     *roomMocks.MockRoomService
	svc             service.CheckInOut
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f := &fixture{
		checkInRepo:     mocks.NewMockCheckInLog(ctrl),
		checkoutRepo:    mocks.NewMockCheckoutLog(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		roomService:     roomMocks.NewMockRoomService(ctrl),
	}

	f.svc = service.New(
		f.checkInRepo,
		f.checkoutRepo,
		f.reservationRepo,
		f.roomService,
		otelMocks.NewOtel(),
		publisher,
	)

	return f
}

func (f *fixture) roomIs(number, status string) {
	f.roomService.EXPECT().Get(gomock.Any(), number).Return(roomDto.RoomResponse{RoomNumber: number, Status: status}, nil)
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func reservation(status string, checkedIn, checkedOut bool) reservationModel.Reservation {
	return reservationModel.Reservation{
		ID:         reservationID,
		Status:     status,
		CheckedIn:  checkedIn,
		CheckedOut: checkedOut,
	}
}

func twoRooms() reservationModel.Details {
	return reservationModel.Details{
		Rooms: []reservationModel.RoomRow{{RoomNumber: "R-101"}, {RoomNumber: "R-102"}},
	}
}

func TestCheckInOutService_CreateCheckIn(t *testing.T) {
	t.Run("occupies every reserved room", func(t *testing.T) {
		f := newFixture(t)

		f.reservationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(reservation(reservationModel.StatusConfirmed, false, false), nil)
		f.reservationRepo.EXPECT().GetDetails(gomock.Any(), reservationID).Return(twoRooms(), nil)
		f.roomIs("R-101", roomModel.StatusBooked)
		f.roomIs("R-102", roomModel.StatusReserved)
		f.checkInRepo.EXPECT().
			CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, logs []model.CheckInLog, stay model.StayWrite) error {
				assert.Len(t, logs, 2)

				for _, log := range logs {
					assert.Equal(t, reservationID, log.ReservationID)
					assert.Equal(t, "late arrival", log.Remarks)
				}

				assert.Equal(t, []string{"R-101", "R-102"}, stay.Rooms)
				assert.Equal(t, []string{roomModel.StatusBooked, roomModel.StatusReserved}, stay.RoomFrom)
				assert.Equal(t, roomModel.StatusOccupied, stay.RoomTo)
				assert.Equal(t, availabilityModel.StatusCheckedIn, stay.AvailabilityStatus)
				assert.Equal(t, reservationModel.FieldCheckedIn, stay.ReservationFlag)
				assert.Equal(t, "staff-1", stay.By)

				return nil
			})
		f.roomService.EXPECT().StatusChanged(gomock.Any(), []roomModel.StatusChange{
			{RoomNumber: "R-101", From: roomModel.StatusBooked, To: roomModel.StatusOccupied, ChangedBy: "staff-1"},
			{RoomNumber: "R-102", From: roomModel.StatusReserved, To: roomModel.StatusOccupied, ChangedBy: "staff-1"},
		})

		msg, err := f.svc.CreateCheckIn(userContext(), dto.CreateCheckInRequest{ReservationID: reservationID, Remarks: "late arrival"})

		assert.NoError(t, err)
		assert.Equal(t, "Reservation "+reservationID+" has been checked in.", msg)
	})

	t.Run("second room not ready writes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.reservationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(reservation(reservationModel.StatusConfirmed, false, false), nil)
		f.reservationRepo.EXPECT().GetDetails(gomock.Any(), reservationID).Return(twoRooms(), nil)
		f.roomIs("R-101", roomModel.StatusBooked)
		f.roomIs("R-102", roomModel.StatusAvailable)

		_, err := f.svc.CreateCheckIn(userContext(), dto.CreateCheckInRequest{ReservationID: reservationID})

		assert.EqualError(t, err, "Room R-102 is Available and cannot be set to Occupied.")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("room changed while checking in", func(t *testing.T) {
		f := newFixture(t)

		f.reservationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(reservation(reservationModel.StatusConfirmed, false, false), nil)
		f.reservationRepo.EXPECT().GetDetails(gomock.Any(), reservationID).Return(twoRooms(), nil)
		f.roomIs("R-101", roomModel.StatusBooked)
		f.roomIs("R-102", roomModel.StatusBooked)
		f.checkInRepo.EXPECT().
			CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to check in reservation: %w", roomRepo.ErrStatusConflict))

		_, err := f.svc.CreateCheckIn(userContext(), dto.CreateCheckInRequest{ReservationID: reservationID})

		assert.EqualError(t, err, "One or more rooms changed status. Nothing was checked in.")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	tests := []struct {
		name        string
		reservation reservationModel.Reservation
		wantErr     string
	}{
		{
			name:        "pending reservation",
			reservation: reservation(reservationModel.StatusPending, false, false),
			wantErr:     "Reservation " + reservationID + " is not confirmed and cannot be checked in.",
		},
		{
			name:        "already checked in",
			reservation: reservation(reservationModel.StatusConfirmed, true, false),
			wantErr:     "Reservation " + reservationID + " is already checked in.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.reservationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.reservation, nil)

			_, err := f.svc.CreateCheckIn(userContext(), dto.CreateCheckInRequest{ReservationID: reservationID})

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		f.reservationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservationModel.Reservation{}, nil)

		_, err := f.svc.CreateCheckIn(userContext(), dto.CreateCheckInRequest{ReservationID: reservationID})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCheckInOutService_CreateCheckOut(t *testing.T) {
	t.Run("rooms go under maintenance", func(t *testing.T) {
		f := newFixture(t)

		f.reservationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(reservation(reservationModel.StatusConfirmed, true, false), nil)
		f.reservationRepo.EXPECT().GetDetails(gomock.Any(), reservationID).Return(twoRooms(), nil)
		f.roomIs("R-101", roomModel.StatusOccupied)
		f.roomIs("R-102", roomModel.StatusOccupied)
		f.checkoutRepo.EXPECT().
			CheckOut(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, logs []model.CheckoutLog, pending []maintenanceModel.MaintenanceLog, stay model.StayWrite) error {
				assert.Len(t, logs, 2)
				assert.Len(t, pending, 2)

				for i, log := range logs {
					assert.Equal(t, model.StatusCheckedOut, log.Status)
					assert.Equal(t, reservationID, *log.ReservationID)
					assert.Equal(t, maintenanceModel.StatusPending, pending[i].Status)
					assert.Equal(t, maintenanceModel.AfterCheckoutRemarks(log.RoomNumber), pending[i].Remarks)
				}

				assert.Equal(t, []string{roomModel.StatusOccupied}, stay.RoomFrom)
				assert.Equal(t, roomModel.StatusUnderMaintenance, stay.RoomTo)
				assert.Equal(t, availabilityModel.StatusCheckedOut, stay.AvailabilityStatus)
				assert.Equal(t, reservationModel.FieldCheckedOut, stay.ReservationFlag)

				return nil
			})
		f.roomService.EXPECT().StatusChanged(gomock.Any(), gomock.Len(2))

		msg, err := f.svc.CreateCheckOut(userContext(), dto.CreateCheckOutRequest{ReservationID: reservationID})

		assert.NoError(t, err)
		assert.Equal(t, "Reservation "+reservationID+" has been checked out.", msg)
	})

	t.Run("not checked in", func(t *testing.T) {
		f := newFixture(t)

		f.reservationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(reservation(reservationModel.StatusConfirmed, false, false), nil)

		_, err := f.svc.CreateCheckOut(userContext(), dto.CreateCheckOutRequest{ReservationID: reservationID})

		assert.EqualError(t, err, "Reservation "+reservationID+" has not been checked in.")
	})

	t.Run("second room not occupied writes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.reservationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(reservation(reservationModel.StatusConfirmed, true, false), nil)
		f.reservationRepo.EXPECT().GetDetails(gomock.Any(), reservationID).Return(twoRooms(), nil)
		f.roomIs("R-101", roomModel.StatusOccupied)
		f.roomIs("R-102", roomModel.StatusAvailable)

		_, err := f.svc.CreateCheckOut(userContext(), dto.CreateCheckOutRequest{ReservationID: reservationID})

		assert.EqualError(t, err, "Room R-102 is Available and cannot be set to Under Maintenance.")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}
