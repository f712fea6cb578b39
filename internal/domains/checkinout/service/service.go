package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"safari/infras/otel"
	availabilityModel "safari/internal/domains/availability/model"
	"safari/internal/domains/checkinout/model"
	"safari/internal/domains/checkinout/model/dto"
	"safari/internal/domains/checkinout/repository"
	maintenanceModel "safari/internal/domains/maintenance/model"
	reservationModel "safari/internal/domains/reservation/model"
	reservationRepo "safari/internal/domains/reservation/repository"
	roomModel "safari/internal/domains/room/model"
	roomRepo "safari/internal/domains/room/repository"
	roomService "safari/internal/domains/room/service"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/event"
	"safari/shared/failure"
	gModel "safari/shared/model"
	"safari/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CheckInOut interface {
	CreateCheckIn(ctx context.Context, req dto.CreateCheckInRequest) (string, error)
	CreateCheckOut(ctx context.Context, req dto.CreateCheckOutRequest) (string, error)
	GetCheckIns(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCheckInLogsResponse, error)
	GetCheckouts(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCheckoutLogsResponse, error)
}

type serviceImpl struct {
	checkInRepo     repository.CheckInLog
	checkoutRepo    repository.CheckoutLog
	reservationRepo reservationRepo.Reservation
	roomService     roomService.Room
	otel            otel.Otel
	publisher       event.Publisher
}

func New(
	checkInRepo repository.CheckInLog,
	checkoutRepo repository.CheckoutLog,
	reservationRepo reservationRepo.Reservation,
	roomService roomService.Room,
	otel otel.Otel,
	publisher event.Publisher,
) CheckInOut {
	return &serviceImpl{
		checkInRepo:     checkInRepo,
		checkoutRepo:    checkoutRepo,
		reservationRepo: reservationRepo,
		roomService:     roomService,
		otel:            otel,
		publisher:       publisher,
	}
}

// CreateCheckIn logs the arrival of a confirmed reservation and occupies its rooms.
func (s *serviceImpl) CreateCheckIn(ctx context.Context, req dto.CreateCheckInRequest) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getReservation(ctx, req.ReservationID)
	if err != nil {
		return msg, err
	}

	if reservation.Status != reservationModel.StatusConfirmed {
		return msg, failure.BadRequestFromString(fmt.Sprintf("Reservation %s is not confirmed and cannot be checked in.", reservation.ID)) // nolint:wrapcheck
	}

	if reservation.CheckedIn {
		return msg, failure.BadRequestFromString(fmt.Sprintf("Reservation %s is already checked in.", reservation.ID)) // nolint:wrapcheck
	}

	rooms, err := s.rooms(ctx, reservation.ID)
	if err != nil {
		return msg, err
	}

	allowed := []string{roomModel.StatusBooked, roomModel.StatusReserved}

	changes, err := s.plannedChanges(ctx, rooms, allowed, roomModel.StatusOccupied, user)
	if err != nil {
		return msg, err
	}

	now := timezone.Now()

	logs := make([]model.CheckInLog, 0, len(rooms))
	for _, room := range rooms {
		logs = append(logs, model.CheckInLog{
			ID:            uuid.NewString(),
			ReservationID: reservation.ID,
			RoomNumber:    room,
			CheckInTime:   now,
			Remarks:       req.Remarks,
			Metadata:      gModel.NewMetadata(user, now),
		})
	}

	err = s.checkInRepo.CheckIn(ctx, logs, model.StayWrite{
		ReservationID:      reservation.ID,
		Rooms:              rooms,
		RoomFrom:           allowed,
		RoomTo:             roomModel.StatusOccupied,
		AvailabilityStatus: availabilityModel.StatusCheckedIn,
		ReservationFlag:    reservationModel.FieldCheckedIn,
		By:                 user,
		At:                 now,
	})
	if errors.Is(err, roomRepo.ErrStatusConflict) {
		return msg, failure.Conflict("One or more rooms changed status. Nothing was checked in.") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservation.ID).Msg("failed to check in reservation")

		return msg, fmt.Errorf("failed to check in reservation: %w", err)
	}

	s.roomService.StatusChanged(ctx, changes)

	event.PublishAsync(ctx, s.publisher, event.TopicReservationCheckIn, reservation.ID, model.Stay{
		ReservationID: reservation.ID,
		Rooms:         rooms,
		By:            user,
	})

	return fmt.Sprintf("Reservation %s has been checked in.", reservation.ID), nil
}

// CreateCheckOut logs the departure of a checked-in reservation and hands its rooms to housekeeping.
func (s *serviceImpl) CreateCheckOut(ctx context.Context, req dto.CreateCheckOutRequest) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getReservation(ctx, req.ReservationID)
	if err != nil {
		return msg, err
	}

	if !reservation.CheckedIn {
		return msg, failure.BadRequestFromString(fmt.Sprintf("Reservation %s has not been checked in.", reservation.ID)) // nolint:wrapcheck
	}

	if reservation.CheckedOut {
		return msg, failure.BadRequestFromString(fmt.Sprintf("Reservation %s is already checked out.", reservation.ID)) // nolint:wrapcheck
	}

	rooms, err := s.rooms(ctx, reservation.ID)
	if err != nil {
		return msg, err
	}

	allowed := []string{roomModel.StatusOccupied}

	changes, err := s.plannedChanges(ctx, rooms, allowed, roomModel.StatusUnderMaintenance, user)
	if err != nil {
		return msg, err
	}

	now := timezone.Now()

	logs := make([]model.CheckoutLog, 0, len(rooms))
	maintenance := make([]maintenanceModel.MaintenanceLog, 0, len(rooms))

	for _, room := range rooms {
		logs = append(logs, model.CheckoutLog{
			ID:            uuid.NewString(),
			ReservationID: &reservation.ID,
			RoomNumber:    room,
			CheckoutDate:  now,
			CheckoutTime:  now,
			Status:        model.StatusCheckedOut,
			Metadata:      gModel.NewMetadata(user, now),
		})
		maintenance = append(maintenance, maintenanceModel.NewPending(room, maintenanceModel.AfterCheckoutRemarks(room), user, now))
	}

	err = s.checkoutRepo.CheckOut(ctx, logs, maintenance, model.StayWrite{
		ReservationID:      reservation.ID,
		Rooms:              rooms,
		RoomFrom:           allowed,
		RoomTo:             roomModel.StatusUnderMaintenance,
		AvailabilityStatus: availabilityModel.StatusCheckedOut,
		ReservationFlag:    reservationModel.FieldCheckedOut,
		By:                 user,
		At:                 now,
	})
	if errors.Is(err, roomRepo.ErrStatusConflict) {
		return msg, failure.Conflict("One or more rooms changed status. Nothing was checked out.") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservation.ID).Msg("failed to check out reservation")

		return msg, fmt.Errorf("failed to check out reservation: %w", err)
	}

	s.roomService.StatusChanged(ctx, changes)

	event.PublishAsync(ctx, s.publisher, event.TopicReservationCheckOut, reservation.ID, model.Stay{
		ReservationID: reservation.ID,
		Rooms:         rooms,
		By:            user,
	})

	return fmt.Sprintf("Reservation %s has been checked out.", reservation.ID), nil
}

// plannedChanges checks every room before anything is written.
func (s *serviceImpl) plannedChanges(ctx context.Context, rooms, allowedFrom []string, to, user string) ([]roomModel.StatusChange, error) {
	changes := make([]roomModel.StatusChange, 0, len(rooms))

	for _, roomNumber := range rooms {
		room, err := s.roomService.Get(ctx, roomNumber)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if !slices.Contains(allowedFrom, room.Status) {
			return nil, failure.Conflict(fmt.Sprintf("Room %s is %s and cannot be set to %s.", roomNumber, room.Status, to)) // nolint:wrapcheck
		}

		changes = append(changes, roomModel.StatusChange{RoomNumber: roomNumber, From: room.Status, To: to, ChangedBy: user})
	}

	return changes, nil
}

func (s *serviceImpl) GetCheckIns(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCheckInLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCheckIns")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.checkInRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count check-in logs")

		return res, fmt.Errorf("failed to count check-in logs: %w", err)
	}

	models, err := s.checkInRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-in logs")

		return res, fmt.Errorf("failed to get check-in logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetCheckouts(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCheckoutLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCheckouts")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.checkoutRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count checkout logs")

		return res, fmt.Errorf("failed to count checkout logs: %w", err)
	}

	models, err := s.checkoutRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get checkout logs")

		return res, fmt.Errorf("failed to get checkout logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) getReservation(ctx context.Context, id string) (reservationModel.Reservation, error) {
	reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(id, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) rooms(ctx context.Context, reservationID string) ([]string, error) {
	details, err := s.reservationRepo.GetDetails(ctx, reservationID)
	if err != nil {
		log.Error().Err(err).Str("reservation_id", reservationID).Msg("failed to get reservation rooms")

		return nil, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	return details.RoomNumbers(), nil
}
