package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safari/config"
	otelMocks "safari/infras/otel/mocks"
	activityMocks "safari/internal/domains/activity/mocks"
	availabilityModel "safari/internal/domains/availability/model"
	"safari/internal/domains/reservation/mocks"
	"safari/internal/domains/reservation/model"
	"safari/internal/domains/reservation/model/dto"
	"safari/internal/domains/reservation/service"
	roomMocks "safari/internal/domains/room/mocks"
	roomModel "safari/internal/domains/room/model"
	roomRepo "safari/internal/domains/room/repository"
	cacheMocks "safari/shared/cache/mocks"
	"safari/shared/constant"
	eventMocks "safari/shared/event/mocks"
	"safari/shared/failure"
)

type fixture struct {
	repo         *mocks.MockReservation
	activityRepo *activityMocks.MockActivity
	roomRepo     *roomMocks.MockRoom
	roomService  *roomMocks.MockRoomService
	svc          service.Reservation
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cache := cacheMocks.NewMockRedisCache(ctrl)
	publisher := eventMocks.NewMockPublisher(ctrl)

	f := &fixture{
		repo:         mocks.NewMockReservation(ctrl),
		activityRepo: activityMocks.NewMockActivity(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		roomService:  roomMocks.NewMockRoomService(ctrl),
	}

	f.svc = service.New(f.repo, f.activityRepo, f.roomRepo, f.roomService, &config.Config{}, cache, otelMocks.NewOtel(), publisher)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func request() dto.ReservationRequest {
	return dto.ReservationRequest{
		CustomerName: "Amina",
		CheckInDate:  "2026-07-01",
		CheckOutDate: "2026-07-04",
		NoOfPeople:   3,
		NoOfAdults:   2,
		NoOfChildren: 1,
		Activities:   []dto.ActivityRequest{{ActivityName: "Kayaking", Quantity: 2, Cost: 40}},
		Rooms:        []dto.RoomRequest{{RoomNumber: "R-101", RoomName: "Lake View", Price: 200}},
		Tents:        []dto.TentRequest{{TentType: "Dome", Qty: 2, Price: 50}},
		Transports:   []dto.TransportRequest{{TransportName: "Airport shuttle", Price: 30}},
	}
}

func reservation(docStatus int) model.Reservation {
	return model.Reservation{
		ID:           "res-1",
		CustomerName: "Amina",
		CheckInDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		Status:       model.StatusPending,
		DocStatus:    docStatus,
	}
}

func details() model.Details {
	return model.Details{
		Activities: []model.ActivityRow{{ActivityName: "Kayaking", Quantity: 2, Cost: 40}},
		Rooms:      []model.RoomRow{{RoomNumber: "R-101", Price: 200}},
		Tents:      []model.TentRow{{TentType: "Dome", Qty: 2, Price: 50}},
		Transports: []model.TransportRow{{TransportName: "Airport shuttle", Price: 30}},
	}
}

func TestReservationService_Create(t *testing.T) {
	t.Run("stores the discounted total when water sports are booked", func(t *testing.T) {
		f := newFixture(t)

		f.activityRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res model.Reservation, det model.Details) error {
				assert.InDelta(t, 180.0, res.ProposedTotalCost, 0.001)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Equal(t, constant.DocStatusDraft, res.DocStatus)
				assert.Len(t, det.Rooms, 1)
				assert.Equal(t, res.ID, det.Rooms[0].ReservationID)

				return nil
			})

		id, err := f.svc.Create(userContext(), request())

		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("people must add up", func(t *testing.T) {
		f := newFixture(t)

		req := request()
		req.NoOfPeople = 5

		_, err := f.svc.Create(userContext(), req)

		assert.EqualError(t, err, "The total number of people (5) must equal the sum of adults (2) and children (1).")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("check-out must follow check-in", func(t *testing.T) {
		f := newFixture(t)

		req := request()
		req.CheckOutDate = req.CheckInDate

		_, err := f.svc.Create(userContext(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReservationService_CalculateTotalCost(t *testing.T) {
	tests := []struct {
		name           string
		exists         bool
		hasWaterSports bool
		want           float64
	}{
		{name: "unknown reservation costs nothing", exists: false, want: 0},
		{name: "full price", exists: true, hasWaterSports: false, want: 330},
		{name: "water sports halve accommodation", exists: true, hasWaterSports: true, want: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exists, nil)

			if tt.exists {
				f.repo.EXPECT().GetDetails(gomock.Any(), "res-1").Return(details(), nil)
				f.activityRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.hasWaterSports, nil)
			}

			res, err := f.svc.CalculateTotalCost(userContext(), "res-1")

			assert.NoError(t, err)
			assert.Equal(t, "res-1", res.ReservationID)
			assert.InDelta(t, tt.want, res.TotalCost, 0.001)
		})
	}
}

func TestReservationService_Confirm(t *testing.T) {
	t.Run("books rooms and tents for the stay", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation(constant.DocStatusDraft), nil)
		f.repo.EXPECT().GetDetails(gomock.Any(), "res-1").Return(details(), nil)
		f.roomRepo.EXPECT().GetAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{{RoomNumber: "R-101"}, {RoomNumber: "R-102"}}, nil)
		f.repo.EXPECT().
			Confirm(gomock.Any(), "res-1", gomock.Any(), gomock.Any(), []string{"R-101"}, "staff-1").
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, records []availabilityModel.Availability, _ []string, _ string) error {
				assert.Equal(t, constant.DocStatusSubmitted, fields[model.FieldDocStatus])
				assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
				assert.Len(t, records, 2)
				assert.Equal(t, "R-101", records[0].Room())
				assert.Equal(t, availabilityModel.StatusBooked, records[0].Status)
				assert.Equal(t, "Dome", *records[1].TentType)

				return nil
			})
		f.roomService.EXPECT().StatusChanged(gomock.Any(), []roomModel.StatusChange{{
			RoomNumber: "R-101",
			From:       roomModel.StatusAvailable,
			To:         roomModel.StatusBooked,
			ChangedBy:  "staff-1",
		}})

		msg, err := f.svc.Confirm(userContext(), "res-1")

		assert.NoError(t, err)
		assert.Equal(t, "Reservation res-1 has been confirmed.", msg)
	})

	t.Run("same room listed twice", func(t *testing.T) {
		f := newFixture(t)

		doubled := details()
		doubled.Rooms = append(doubled.Rooms, doubled.Rooms[0])

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation(constant.DocStatusDraft), nil)
		f.repo.EXPECT().GetDetails(gomock.Any(), "res-1").Return(doubled, nil)

		_, err := f.svc.Confirm(userContext(), "res-1")

		assert.EqualError(t, err, "Room R-101 is listed more than once.")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("room taken while confirming rolls back", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation(constant.DocStatusDraft), nil)
		f.repo.EXPECT().GetDetails(gomock.Any(), "res-1").Return(details(), nil)
		f.roomRepo.EXPECT().GetAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{{RoomNumber: "R-101"}}, nil)
		f.repo.EXPECT().
			Confirm(gomock.Any(), "res-1", gomock.Any(), gomock.Any(), []string{"R-101"}, "staff-1").
			Return(fmt.Errorf("failed to confirm reservation: %w", roomRepo.ErrStatusConflict))

		_, err := f.svc.Confirm(userContext(), "res-1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("room taken for the dates", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation(constant.DocStatusDraft), nil)
		f.repo.EXPECT().GetDetails(gomock.Any(), "res-1").Return(details(), nil)
		f.roomRepo.EXPECT().GetAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{{RoomNumber: "R-102"}}, nil)

		_, err := f.svc.Confirm(userContext(), "res-1")

		assert.EqualError(t, err, "Room R-101 is not available for the selected dates.")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("already confirmed", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation(constant.DocStatusSubmitted), nil)

		_, err := f.svc.Confirm(userContext(), "res-1")

		assert.EqualError(t, err, "Only draft reservations can be confirmed.")
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		_, err := f.svc.Confirm(userContext(), "res-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReservationService_Update(t *testing.T) {
	t.Run("replaces child rows of a draft", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation(constant.DocStatusDraft), nil)
		f.activityRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().
			Replace(gomock.Any(), "res-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, det model.Details) error {
				assert.InDelta(t, 330.0, fields[model.FieldProposedTotalCost], 0.001)
				assert.Equal(t, "res-1", det.Tents[0].ReservationID)

				return nil
			})

		assert.NoError(t, f.svc.Update(userContext(), request(), "res-1"))
	})

	t.Run("confirmed reservations are locked", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation(constant.DocStatusSubmitted), nil)

		err := f.svc.Update(userContext(), request(), "res-1")

		assert.EqualError(t, err, "Only draft reservations can be edited.")
	})
}

func TestReservationService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation(constant.DocStatusDraft), nil)
	f.repo.EXPECT().GetDetails(gomock.Any(), "res-1").Return(details(), nil)

	res, err := f.svc.Get(userContext(), "res-1")

	assert.NoError(t, err)
	assert.Equal(t, "2026-07-01", res.CheckInDate)
	assert.Len(t, res.Rooms, 1)
	assert.Len(t, res.Tents, 1)
	assert.Empty(t, res.Services)
}
