package service

import (
	"context"
	"fmt"

	"safari/config"
	"safari/infras/otel"
	"safari/internal/domains/booking/model"
	"safari/internal/domains/booking/model/dto"
	"safari/internal/domains/booking/repository"
	maintenanceModel "safari/internal/domains/maintenance/model"
	maintenanceRepo "safari/internal/domains/maintenance/repository"
	roomModel "safari/internal/domains/room/model"
	roomRepo "safari/internal/domains/room/repository"
	roomService "safari/internal/domains/room/service"
	"safari/shared"
	"safari/shared/cache"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/event"
	"safari/shared/failure"
	"safari/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	Submit(ctx context.Context, id string) (string, error)
	Cancel(ctx context.Context, id string) (string, error)
	CheckOut(ctx context.Context, id string) (string, error)
}

type serviceImpl struct {
	repo            repository.Booking
	roomRepo        roomRepo.Room
	roomService     roomService.Room
	maintenanceRepo maintenanceRepo.MaintenanceLog
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	publisher       event.Publisher
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	roomService roomService.Room,
	maintenanceRepo maintenanceRepo.MaintenanceLog,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher event.Publisher,
) Booking {
	return &serviceImpl{
		repo:            repo,
		roomRepo:        roomRepo,
		roomService:     roomService,
		maintenanceRepo: maintenanceRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
		publisher:       publisher,
	}
}

func filterByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return id, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return id, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return id, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return id, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateLists(ctx)

	return booking.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, roomNumber string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomNumber, roomModel.FieldRoomNumber, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_number", roomNumber).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.RoomNumber == constant.Empty {
		return room, failure.NotFound(fmt.Sprintf("room %s not found", roomNumber)) // nolint:wrapcheck
	}

	return room, nil
}

// Update edits a draft booking.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields, err := req.Fields(user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if booking.DocStatus != constant.DocStatusDraft {
		return failure.BadRequestFromString("Only draft bookings can be edited.") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes a booking that does not hold a room.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if booking.DocStatus == constant.DocStatusSubmitted && booking.Status == model.StatusOpen {
		return failure.BadRequestFromString("Cancel the booking before deleting it.") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Submit books the room for a draft booking.
func (s *serviceImpl) Submit(ctx context.Context, id string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.get(ctx, id)
	if err != nil {
		return msg, err
	}

	if booking.DocStatus != constant.DocStatusDraft {
		return msg, failure.BadRequestFromString("Only draft bookings can be submitted.") // nolint:wrapcheck
	}

	room, err := s.getRoom(ctx, booking.RoomNumber)
	if err != nil {
		return msg, err
	}

	if room.Status != roomModel.StatusAvailable {
		return msg, failure.BadRequestFromString(fmt.Sprintf("Room %s is not available for booking.", booking.RoomNumber)) // nolint:wrapcheck
	}

	if err = s.roomService.ChangeStatus(ctx, booking.RoomNumber, []string{roomModel.StatusAvailable}, roomModel.StatusBooked); err != nil {
		return msg, err //nolint:wrapcheck
	}

	if err = s.setState(ctx, id, constant.DocStatusSubmitted, model.StatusOpen, user); err != nil {
		return msg, err
	}

	return fmt.Sprintf("Room %s has been successfully booked.", booking.RoomNumber), nil
}

// Cancel releases the room of a submitted booking.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.get(ctx, id)
	if err != nil {
		return msg, err
	}

	if booking.DocStatus != constant.DocStatusSubmitted {
		return msg, failure.BadRequestFromString("Only submitted bookings can be cancelled.") // nolint:wrapcheck
	}

	if err = s.roomService.ChangeStatus(ctx, booking.RoomNumber, nil, roomModel.StatusAvailable); err != nil {
		return msg, err //nolint:wrapcheck
	}

	if err = s.setState(ctx, id, constant.DocStatusCancelled, model.StatusCancelled, user); err != nil {
		return msg, err
	}

	return fmt.Sprintf("Booking for room %s has been canceled. The room is now available.", booking.RoomNumber), nil
}

// CheckOut hands a booked room over to housekeeping.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.get(ctx, id)
	if err != nil {
		return msg, err
	}

	if booking.DocStatus != constant.DocStatusSubmitted {
		return msg, failure.BadRequestFromString("Only submitted bookings can be checked out.") // nolint:wrapcheck
	}

	room, err := s.getRoom(ctx, booking.RoomNumber)
	if err != nil {
		return msg, err
	}

	if room.Status != roomModel.StatusBooked {
		return msg, failure.BadRequestFromString(fmt.Sprintf("Room %s is not booked and cannot be checked out.", booking.RoomNumber)) // nolint:wrapcheck
	}

	if err = s.roomService.ChangeStatus(ctx, booking.RoomNumber, []string{roomModel.StatusBooked}, roomModel.StatusUnderMaintenance); err != nil {
		return msg, err //nolint:wrapcheck
	}

	maintenanceLog := maintenanceModel.NewPending(
		booking.RoomNumber,
		maintenanceModel.AfterCheckoutRemarks(booking.RoomNumber),
		user,
		timezone.Now(),
	)

	if err = s.maintenanceRepo.Insert(ctx, maintenanceLog); err != nil {
		log.Error().Err(err).Str("room_number", booking.RoomNumber).Msg("failed to create maintenance log")

		return msg, fmt.Errorf("failed to create maintenance log: %w", err)
	}

	if err = s.setState(ctx, id, booking.DocStatus, model.StatusCheckedOut, user); err != nil {
		return msg, err
	}

	event.PublishAsync(ctx, s.publisher, event.TopicBookingCheckedOut, id, model.CheckedOut{
		BookingID:        id,
		RoomNumber:       booking.RoomNumber,
		MaintenanceLogID: maintenanceLog.ID,
		CheckedOutBy:     user,
	})

	return fmt.Sprintf("Checkout for booking %s is completed. Room %s is now under maintenance.", id, booking.RoomNumber), nil
}

func (s *serviceImpl) setState(ctx context.Context, id string, docStatus int, status, user string) error {
	fields := map[string]any{
		model.FieldDocStatus:     docStatus,
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, filterByID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking state")

		return fmt.Errorf("failed to update booking state: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
