package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safari/config"
	otelMocks "safari/infras/otel/mocks"
	"safari/internal/domains/availability/mocks"
	"safari/internal/domains/availability/model"
	"safari/internal/domains/availability/model/dto"
	"safari/internal/domains/availability/service"
	checkinoutMocks "safari/internal/domains/checkinout/mocks"
	checkinoutModel "safari/internal/domains/checkinout/model"
	roomMocks "safari/internal/domains/room/mocks"
	roomModel "safari/internal/domains/room/model"
	roomDto "safari/internal/domains/room/model/dto"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"
	"safari/shared/metrics"
)

type fixture struct {
	repo         *mocks.MockAvailability
	checkoutRepo *checkinoutMocks.MockCheckoutLog
	roomService  *roomMocks.MockRoomService
	svc          service.Availability
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         mocks.NewMockAvailability(ctrl),
		checkoutRepo: checkinoutMocks.NewMockCheckoutLog(ctrl),
		roomService:  roomMocks.NewMockRoomService(ctrl),
	}

	f.svc = service.New(f.repo, f.checkoutRepo, f.roomService, &config.Config{}, otelMocks.NewOtel())

	return f
}

func systemContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, constant.SystemUser)
}

func ptr(s string) *string {
	return &s
}

func TestAvailabilityService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		record    model.Availability
		setupMock func(f *fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "checked in moves room to occupied",
			status: model.StatusCheckedIn,
			record: model.Availability{ID: "a-1", RoomNumber: ptr("R-101"), Status: model.StatusReserved},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCheckedIn, fields[model.FieldStatus])

						return nil
					})
				f.roomService.EXPECT().ChangeStatus(gomock.Any(), "R-101", gomock.Nil(), roomModel.StatusOccupied).Return(nil)
			},
		},
		{
			name:   "checked out moves room to maintenance",
			status: model.StatusCheckedOut,
			record: model.Availability{ID: "a-1", RoomNumber: ptr("R-101"), Status: model.StatusCheckedIn},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.roomService.EXPECT().ChangeStatus(gomock.Any(), "R-101", gomock.Nil(), roomModel.StatusUnderMaintenance).Return(nil)
			},
		},
		{
			name:   "tent record leaves rooms alone",
			status: model.StatusBooked,
			record: model.Availability{ID: "a-1", TentType: ptr("Dome"), Status: model.StatusAvailable},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "record not found",
			status:    model.StatusBooked,
			record:    model.Availability{},
			setupMock: func(_ *fixture) {},
			wantErr:   true,
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.record, nil)
			tt.setupMock(f)

			err := f.svc.UpdateStatus(systemContext(), "a-1", tt.status)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAvailabilityService_UpdateStatus_InvalidStatus(t *testing.T) {
	f := newFixture(t)

	err := f.svc.UpdateStatus(systemContext(), "a-1", "Lost")

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAvailabilityService_UpdateRoomStatus(t *testing.T) {
	today := time.Date(2025, 3, 14, 0, 5, 0, 0, time.UTC)

	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Availability, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "availabilities.check_in_date = :check_in_date")
			assert.Equal(t, "2025-03-14", args[model.FieldCheckInDate])
			assert.Equal(t, model.StatusBooked, args[model.FieldStatus])

			return []model.Availability{
				{ID: "a-1", RoomNumber: ptr("R-101"), Status: model.StatusBooked},
				{ID: "a-2", TentType: ptr("Dome"), Status: model.StatusBooked},
				{ID: "a-3", RoomNumber: ptr("R-102"), Status: model.StatusBooked},
			}, nil
		})
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.roomService.EXPECT().ChangeStatus(gomock.Any(), "R-101", gomock.Nil(), roomModel.StatusReserved).Return(nil)
	f.roomService.EXPECT().ChangeStatus(gomock.Any(), "R-102", gomock.Nil(), roomModel.StatusReserved).Return(errors.New("db down"))

	before := testutil.ToFloat64(metrics.JobProcessedRecords.WithLabelValues(model.JobRoomStatus))

	res, err := f.svc.UpdateRoomStatus(systemContext(), today)

	assert.Error(t, err)
	assert.Equal(t, model.JobRoomStatus, res.Job)
	assert.Equal(t, "2025-03-14", res.Date)
	assert.Equal(t, 2, res.Processed)
	assert.InDelta(t, before+2, testutil.ToFloat64(metrics.JobProcessedRecords.WithLabelValues(model.JobRoomStatus)), 0.001)
}

func TestAvailabilityService_ProcessCheckout(t *testing.T) {
	today := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Availability{
			{ID: "a-1", RoomNumber: ptr("R-101"), ReservationID: ptr("res-1"), Status: model.StatusReserved},
			{ID: "a-2", TentType: ptr("Dome"), Status: model.StatusReserved},
		}, nil)

	f.checkoutRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log checkinoutModel.CheckoutLog) error {
			assert.Equal(t, "R-101", log.RoomNumber)
			assert.Equal(t, "res-1", *log.ReservationID)
			assert.Equal(t, checkinoutModel.StatusCheckedOut, log.Status)
			assert.Equal(t, 10, log.CheckoutTime.Hour())
			assert.Equal(t, constant.SystemUser, log.CreatedBy)

			return nil
		})
	f.roomService.EXPECT().ChangeStatus(gomock.Any(), "R-101", gomock.Nil(), roomModel.StatusUnderMaintenance).Return(nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])

			return nil
		}).
		Times(2)

	res, err := f.svc.ProcessCheckout(systemContext(), today)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
}

func TestAvailabilityService_Create(t *testing.T) {
	t.Run("room record", func(t *testing.T) {
		f := newFixture(t)
		f.roomService.EXPECT().Get(gomock.Any(), "R-101").Return(roomDto.RoomResponse{RoomNumber: "R-101"}, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a model.Availability) error {
				assert.Equal(t, "R-101", a.Room())
				assert.Equal(t, model.StatusAvailable, a.Status)
				assert.NotEmpty(t, a.ID)

				return nil
			})

		err := f.svc.Create(systemContext(), dto.CreateAvailabilityRequest{
			RoomNumber:   "R-101",
			CheckInDate:  "2025-03-14",
			CheckOutDate: "2025-03-16",
		})

		assert.NoError(t, err)
	})

	t.Run("missing room and tent", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Create(systemContext(), dto.CreateAvailabilityRequest{
			CheckInDate:  "2025-03-14",
			CheckOutDate: "2025-03-16",
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inverted range", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Create(systemContext(), dto.CreateAvailabilityRequest{
			TentType:     "Dome",
			CheckInDate:  "2025-03-16",
			CheckOutDate: "2025-03-14",
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestAvailabilityService_Calendar(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Availability, error) {
			assert.Equal(t, model.FieldCheckInDate, params.SortBy)
			assert.Len(t, filter.Filters, 2)

			return []model.Availability{{
				ID:           "a-1",
				RoomNumber:   ptr("R-101"),
				CheckInDate:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
				CheckOutDate: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
				Status:       model.StatusBooked,
			}}, nil
		})

	res, err := f.svc.Calendar(systemContext(), dto.CalendarRequest{From: "2025-03-01", To: "2025-04-01"})

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "2025-03-14", res[0].CheckInDate)
	assert.Equal(t, "R-101", res[0].RoomNumber)
}
