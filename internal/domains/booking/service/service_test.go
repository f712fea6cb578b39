package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safari/config"
	otelMocks "safari/infras/otel/mocks"
	"safari/internal/domains/booking/mocks"
	"safari/internal/domains/booking/model"
	"safari/internal/domains/booking/model/dto"
	"safari/internal/domains/booking/service"
	maintenanceMocks "safari/internal/domains/maintenance/mocks"
	maintenanceModel "safari/internal/domains/maintenance/model"
	roomMocks "safari/internal/domains/room/mocks"
	roomModel "safari/internal/domains/room/model"
	cacheMocks "safari/shared/cache/mocks"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	eventMocks "safari/shared/event/mocks"
	"safari/shared/failure"
)

type fixture struct {
	repo            *mocks.MockBooking
	roomRepo        *roomMocks.MockRoom
	roomService     *roomMocks.MockRoomService
	maintenanceRepo *maintenanceMocks.MockMaintenanceLog
	svc             service.Booking
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cache := cacheMocks.NewMockRedisCache(ctrl)
	publisher := eventMocks.NewMockPublisher(ctrl)

	f := &fixture{
		repo:            mocks.NewMockBooking(ctrl),
		roomRepo:        roomMocks.NewMockRoom(ctrl),
		roomService:     roomMocks.NewMockRoomService(ctrl),
		maintenanceRepo: maintenanceMocks.NewMockMaintenanceLog(ctrl),
	}

	f.svc = service.New(f.repo, f.roomRepo, f.roomService, f.maintenanceRepo, &config.Config{}, cache, otelMocks.NewOtel(), publisher)

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func booking(docStatus int, status string) model.Booking {
	return model.Booking{
		ID:         "b-1",
		RoomNumber: "R-101",
		GuestName:  "Amina",
		DocStatus:  docStatus,
		Status:     status,
	}
}

func room(status string) roomModel.Room {
	return roomModel.Room{RoomNumber: "R-101", Status: status, Active: true}
}

func TestBookingService_Submit(t *testing.T) {
	tests := []struct {
		name      string
		booking   model.Booking
		setupMock func(f *fixture)
		wantMsg   string
		wantErr   string
		wantCode  int
	}{
		{
			name:    "available room gets booked",
			booking: booking(constant.DocStatusDraft, model.StatusOpen),
			setupMock: func(f *fixture) {
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(roomModel.StatusAvailable), nil)
				f.roomService.EXPECT().
					ChangeStatus(gomock.Any(), "R-101", []string{roomModel.StatusAvailable}, roomModel.StatusBooked).
					Return(nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.DocStatusSubmitted, fields[model.FieldDocStatus])
						assert.Equal(t, model.StatusOpen, fields[model.FieldStatus])

						return nil
					})
			},
			wantMsg: "Room R-101 has been successfully booked.",
		},
		{
			name:    "room not available",
			booking: booking(constant.DocStatusDraft, model.StatusOpen),
			setupMock: func(f *fixture) {
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(roomModel.StatusOccupied), nil)
			},
			wantErr:  "Room R-101 is not available for booking.",
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "already submitted",
			booking:   booking(constant.DocStatusSubmitted, model.StatusOpen),
			setupMock: func(_ *fixture) {},
			wantErr:   "Only draft bookings can be submitted.",
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)
			tt.setupMock(f)

			msg, err := f.svc.Submit(userContext(), "b-1")

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("submitted booking frees the room", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(constant.DocStatusSubmitted, model.StatusOpen), nil)
		f.roomService.EXPECT().ChangeStatus(gomock.Any(), "R-101", gomock.Nil(), roomModel.StatusAvailable).Return(nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.DocStatusCancelled, fields[model.FieldDocStatus])
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

				return nil
			})

		msg, err := f.svc.Cancel(userContext(), "b-1")

		assert.NoError(t, err)
		assert.Equal(t, "Booking for room R-101 has been canceled. The room is now available.", msg)
	})

	t.Run("draft booking cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(constant.DocStatusDraft, model.StatusOpen), nil)

		_, err := f.svc.Cancel(userContext(), "b-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_CheckOut(t *testing.T) {
	tests := []struct {
		name      string
		booking   model.Booking
		setupMock func(f *fixture)
		wantErr   string
	}{
		{
			name:    "booked room goes under maintenance",
			booking: booking(constant.DocStatusSubmitted, model.StatusOpen),
			setupMock: func(f *fixture) {
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(roomModel.StatusBooked), nil)
				f.roomService.EXPECT().
					ChangeStatus(gomock.Any(), "R-101", []string{roomModel.StatusBooked}, roomModel.StatusUnderMaintenance).
					Return(nil)
				f.maintenanceRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m maintenanceModel.MaintenanceLog) error {
						assert.Equal(t, "R-101", m.RoomNumber)
						assert.Equal(t, "Room R-101 is now under maintenance after checkout.", m.Remarks)
						assert.Equal(t, maintenanceModel.StatusPending, m.Status)

						return nil
					})
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])

						return nil
					})
			},
		},
		{
			name:      "draft booking",
			booking:   booking(constant.DocStatusDraft, model.StatusOpen),
			setupMock: func(_ *fixture) {},
			wantErr:   "Only submitted bookings can be checked out.",
		},
		{
			name:    "room not booked",
			booking: booking(constant.DocStatusSubmitted, model.StatusOpen),
			setupMock: func(f *fixture) {
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(roomModel.StatusAvailable), nil)
			},
			wantErr: "Room R-101 is not booked and cannot be checked out.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)
			tt.setupMock(f)

			msg, err := f.svc.CheckOut(userContext(), "b-1")

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Checkout for booking b-1 is completed. Room R-101 is now under maintenance.", msg)
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)
		f.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(userContext(), dto.CreateBookingRequest{RoomNumber: "R-999"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("draft booking is stored", func(t *testing.T) {
		f := newFixture(t)
		f.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Booking) error {
				assert.Equal(t, constant.DocStatusDraft, b.DocStatus)
				assert.Equal(t, model.StatusOpen, b.Status)
				assert.Equal(t, "staff-1", b.CreatedBy)

				return nil
			})

		id, err := f.svc.Create(userContext(), dto.CreateBookingRequest{
			RoomNumber:   "R-101",
			GuestName:    "Amina",
			CheckInDate:  "2025-03-14",
			CheckOutDate: "2025-03-17",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})
}
