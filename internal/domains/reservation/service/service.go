package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"errors"
	"fmt"

	"safari/config"
	"safari/infras/otel"
	activityModel "safari/internal/domains/activity/model"
	activityRepo "safari/internal/domains/activity/repository"
	availabilityModel "safari/internal/domains/availability/model"
	"safari/internal/domains/reservation/model"
	"safari/internal/domains/reservation/model/dto"
	"safari/internal/domains/reservation/repository"
	roomModel "safari/internal/domains/room/model"
	roomRepo "safari/internal/domains/room/repository"
	roomService "safari/internal/domains/room/service"
	"safari/shared"
	"safari/shared/cache"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/event"
	"safari/shared/failure"
	gModel "safari/shared/model"
	"safari/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.ReservationRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.ReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
	CalculateTotalCost(ctx context.Context, id string) (dto.TotalCostResponse, error)
	Confirm(ctx context.Context, id string) (string, error)
	Calendar(ctx context.Context, req dto.CalendarRequest) ([]dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo         repository.Reservation
	activityRepo activityRepo.Activity
	roomRepo     roomRepo.Room
	roomService  roomService.Room
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	publisher    event.Publisher
}

func New(
	repo repository.Reservation,
	activityRepo activityRepo.Activity,
	roomRepo roomRepo.Room,
	roomService roomService.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher event.Publisher,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		activityRepo: activityRepo,
		roomRepo:     roomRepo,
		roomService:  roomService,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		publisher:    publisher,
	}
}

func filterByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.ReservationRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, details, err := req.ToModel(user)
	if err != nil {
		return id, failure.BadRequest(err) // nolint:wrapcheck
	}

	reservation.ProposedTotalCost, err = s.totalCost(ctx, details)
	if err != nil {
		return id, err
	}

	if err = s.repo.Create(ctx, reservation, details); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return id, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.invalidateLists(ctx)

	return reservation.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation details")

		return res, fmt.Errorf("failed to get reservation details: %w", err)
	}

	res.FromModel(reservation)
	res.WithDetails(details)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

// Update replaces the header and every child row of a draft reservation.
func (s *serviceImpl) Update(ctx context.Context, req dto.ReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields, err := req.Fields(user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	reservation, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if reservation.DocStatus != constant.DocStatusDraft {
		return failure.BadRequestFromString("Only draft reservations can be edited.") // nolint:wrapcheck
	}

	details := req.Details(id)

	fields[model.FieldProposedTotalCost], err = s.totalCost(ctx, details)
	if err != nil {
		return err
	}

	if err = s.repo.Replace(ctx, id, fields, details); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if reservation.DocStatus == constant.DocStatusSubmitted {
		return failure.BadRequestFromString("Confirmed reservations cannot be deleted.") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// CalculateTotalCost returns 0 for an unknown reservation instead of failing.
func (s *serviceImpl) CalculateTotalCost(ctx context.Context, id string) (res dto.TotalCostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculateTotalCost")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.ReservationID = id

	exists, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return res, fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exists {
		return res, nil
	}

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation details")

		return res, fmt.Errorf("failed to get reservation details: %w", err)
	}

	res.TotalCost, err = s.totalCost(ctx, details)

	return res, err
}

func (s *serviceImpl) totalCost(ctx context.Context, details model.Details) (float64, error) {
	names := details.ActivityNames()
	if len(names) == 0 {
		return details.TotalCost(false), nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    activityModel.FieldName,
				Operator: gDto.FilterOperatorIn,
				Value:    names,
				Table:    activityModel.TableName,
			},
			gDto.Filter{
				Field:    activityModel.FieldCategory,
				Operator: gDto.FilterOperatorEq,
				Value:    activityModel.CategoryWaterSports,
				Table:    activityModel.TableName,
			},
		},
	}

	hasWaterSports, err := s.activityRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Strs("activities", names).Msg("failed to look up activity categories")

		return 0, fmt.Errorf("failed to look up activity categories: %w", err)
	}

	return details.TotalCost(hasWaterSports), nil
}

// Confirm submits a draft reservation and books its rooms and tents for the stay.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.get(ctx, id)
	if err != nil {
		return msg, err
	}

	if reservation.DocStatus != constant.DocStatusDraft {
		return msg, failure.BadRequestFromString("Only draft reservations can be confirmed.") // nolint:wrapcheck
	}

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation details")

		return msg, fmt.Errorf("failed to get reservation details: %w", err)
	}

	if room, ok := details.DuplicateRoom(); ok {
		return msg, failure.BadRequestFromString(fmt.Sprintf("Room %s is listed more than once.", room)) // nolint:wrapcheck
	}

	if err = s.checkRoomsAvailable(ctx, reservation, details); err != nil {
		return msg, err
	}

	fields := map[string]any{
		model.FieldDocStatus:     constant.DocStatusSubmitted,
		model.FieldStatus:        model.StatusConfirmed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	rooms := details.RoomNumbers()

	err = s.repo.Confirm(ctx, id, fields, availabilitiesFor(reservation, details, user), rooms, user)
	if errors.Is(err, roomRepo.ErrStatusConflict) {
		return msg, failure.Conflict("One or more rooms are no longer available. The reservation was not confirmed.") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to confirm reservation")

		return msg, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	changes := make([]roomModel.StatusChange, 0, len(rooms))
	for _, room := range rooms {
		changes = append(changes, roomModel.StatusChange{RoomNumber: room, From: roomModel.StatusAvailable, To: roomModel.StatusBooked, ChangedBy: user})
	}

	s.roomService.StatusChanged(ctx, changes)

	s.invalidate(ctx, id)

	event.PublishAsync(ctx, s.publisher, event.TopicReservationConfirm, id, model.Confirmed{
		ReservationID: id,
		Rooms:         rooms,
		CheckInDate:   reservation.CheckInDate.Format(constant.DateOnlyFormat),
		CheckOutDate:  reservation.CheckOutDate.Format(constant.DateOnlyFormat),
	})

	return fmt.Sprintf("Reservation %s has been confirmed.", id), nil
}

func (s *serviceImpl) checkRoomsAvailable(ctx context.Context, reservation model.Reservation, details model.Details) error {
	if len(details.Rooms) == 0 {
		return nil
	}

	rooms, err := s.roomRepo.GetAvailable(ctx, &reservation.CheckInDate, &reservation.CheckOutDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return fmt.Errorf("failed to get available rooms: %w", err)
	}

	available := make(map[string]struct{}, len(rooms))
	for _, room := range rooms {
		available[room.RoomNumber] = struct{}{}
	}

	for _, room := range details.RoomNumbers() {
		if _, ok := available[room]; !ok {
			return failure.BadRequestFromString(fmt.Sprintf("Room %s is not available for the selected dates.", room)) // nolint:wrapcheck
		}
	}

	return nil
}

func availabilitiesFor(reservation model.Reservation, details model.Details, user string) []availabilityModel.Availability {
	now := timezone.Now()
	records := make([]availabilityModel.Availability, 0, len(details.Rooms)+len(details.Tents))

	newRecord := func(room, tent *string) availabilityModel.Availability {
		return availabilityModel.Availability{
			ID:            uuid.NewString(),
			RoomNumber:    room,
			TentType:      tent,
			ReservationID: &reservation.ID,
			CheckInDate:   reservation.CheckInDate,
			CheckOutDate:  reservation.CheckOutDate,
			Status:        availabilityModel.StatusBooked,
			Metadata:      gModel.NewMetadata(user, now),
		}
	}

	for _, room := range details.Rooms {
		records = append(records, newRecord(&room.RoomNumber, nil))
	}

	for _, tent := range details.Tents {
		records = append(records, newRecord(nil, &tent.TentType))
	}

	return records
}

// Calendar lists reservations whose stay overlaps the requested range.
func (s *serviceImpl) Calendar(ctx context.Context, req dto.CalendarRequest) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := req.Filter()
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation calendar")

		return nil, fmt.Errorf("failed to get reservation calendar: %w", err)
	}

	res = make([]dto.ReservationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
