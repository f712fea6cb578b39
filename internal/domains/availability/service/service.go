package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"safari/config"
	"safari/infras/otel"
	"safari/internal/domains/availability/model"
	"safari/internal/domains/availability/model/dto"
	"safari/internal/domains/availability/repository"
	checkinoutModel "safari/internal/domains/checkinout/model"
	checkinoutRepo "safari/internal/domains/checkinout/repository"
	roomModel "safari/internal/domains/room/model"
	roomService "safari/internal/domains/room/service"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"
	"safari/shared/metrics"
	gModel "safari/shared/model"
	"safari/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// roomStatusFor maps an availability status onto the status its room takes.
var roomStatusFor = map[string]string{
	model.StatusAvailable:  roomModel.StatusAvailable,
	model.StatusBooked:     roomModel.StatusBooked,
	model.StatusReserved:   roomModel.StatusReserved,
	model.StatusCheckedIn:  roomModel.StatusOccupied,
	model.StatusCheckedOut: roomModel.StatusUnderMaintenance,
}

type Availability interface {
	Create(ctx context.Context, req dto.CreateAvailabilityRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAvailabilitiesResponse, error)
	Get(ctx context.Context, id string) (dto.AvailabilityResponse, error)
	Update(ctx context.Context, req dto.UpdateAvailabilityRequest, id string) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	Calendar(ctx context.Context, req dto.CalendarRequest) ([]dto.AvailabilityResponse, error)
	UpdateRoomStatus(ctx context.Context, today time.Time) (dto.JobResult, error)
	ProcessCheckout(ctx context.Context, today time.Time) (dto.JobResult, error)
}

type serviceImpl struct {
	repo         repository.Availability
	checkoutRepo checkinoutRepo.CheckoutLog
	roomService  roomService.Room
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Availability,
	checkoutRepo checkinoutRepo.CheckoutLog,
	roomService roomService.Room,
	cfg *config.Config,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		repo:         repo,
		checkoutRepo: checkoutRepo,
		roomService:  roomService,
		cfg:          cfg,
		otel:         otel,
	}
}

func filterByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// dueFilter selects records in the given status whose date field falls on day.
func dueFilter(field string, day time.Time, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    day.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    model.TableName,
			},
		},
	}
}

func statusFields(status, user string) map[string]any {
	return map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAvailabilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	availability, err := req.ToModel(user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if room := availability.Room(); room != constant.Empty {
		if _, err = s.roomService.Get(ctx, room); err != nil {
			return err //nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, availability); err != nil {
		log.Error().Err(err).Msg("failed to create availability")

		return fmt.Errorf("failed to create availability: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAvailabilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count availabilities")

		return res, fmt.Errorf("failed to count availabilities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availabilities")

		return res, fmt.Errorf("failed to get availabilities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	availability, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(availability)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Availability, error) {
	availability, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get availability")

		return availability, fmt.Errorf("failed to get availability: %w", err)
	}

	if availability.ID == constant.Empty {
		return availability, failure.NotFound("availability not found") // nolint:wrapcheck
	}

	return availability, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAvailabilityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields, err := req.Fields(user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.get(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, fields, filterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to update availability")

		return fmt.Errorf("failed to update availability: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if availability exists")

		return fmt.Errorf("failed to check if availability exists: %w", err)
	}

	if !exist {
		return failure.NotFound("availability not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete availability")

		return fmt.Errorf("failed to delete availability: %w", err)
	}

	return nil
}

// UpdateStatus sets the record status and moves the linked room along with it.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomStatus, ok := roomStatusFor[status]
	if !ok {
		return failure.BadRequestFromString(fmt.Sprintf("invalid availability status %q", status)) // nolint:wrapcheck
	}

	availability, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, statusFields(status, user), filterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to update availability status")

		return fmt.Errorf("failed to update availability status: %w", err)
	}

	if room := availability.Room(); room != constant.Empty {
		if err = s.roomService.ChangeStatus(ctx, room, nil, roomStatus); err != nil {
			log.Error().Err(err).Str("room_number", room).Msg("failed to sync room status")

			return err //nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) Calendar(ctx context.Context, req dto.CalendarRequest) (res []dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := req.Filter()
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCheckInDate, SortDir: "ASC"}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability calendar")

		return nil, fmt.Errorf("failed to get availability calendar: %w", err)
	}

	return dto.FromModels(models), nil
}

// UpdateRoomStatus turns today's Booked arrivals into Reserved records and rooms.
func (s *serviceImpl) UpdateRoomStatus(ctx context.Context, today time.Time) (res dto.JobResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+"."+model.JobRoomStatus)
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	res = dto.JobResult{Job: model.JobRoomStatus, Date: today.Format(constant.DateOnlyFormat)}

	entries, err := s.repo.GetAll(ctx, gDto.QueryParams{}, dueFilter(model.FieldCheckInDate, today, model.StatusBooked))
	if err != nil {
		log.Error().Err(err).Msg("failed to get arrivals")

		return res, fmt.Errorf("failed to get arrivals: %w", err)
	}

	var errs []error

	for _, entry := range entries {
		if err := s.repo.Update(ctx, statusFields(model.StatusReserved, user), filterByID(entry.ID)); err != nil {
			errs = append(errs, fmt.Errorf("availability %s: %w", entry.ID, err))

			continue
		}

		if room := entry.Room(); room != constant.Empty {
			if err := s.roomService.ChangeStatus(ctx, room, nil, roomModel.StatusReserved); err != nil {
				errs = append(errs, fmt.Errorf("room %s: %w", room, err))

				continue
			}
		}

		res.Processed++
	}

	metrics.JobProcessedRecords.WithLabelValues(model.JobRoomStatus).Add(float64(res.Processed))

	log.Info().Str("job", res.Job).Str("date", res.Date).Int("processed", res.Processed).Msg("room status job finished")

	return res, errors.Join(errs...)
}

// ProcessCheckout closes today's Reserved departures: a checkout log per room, the room goes
// Under Maintenance and the record becomes Checked Out.
func (s *serviceImpl) ProcessCheckout(ctx context.Context, today time.Time) (res dto.JobResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+"."+model.JobCheckout)
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	res = dto.JobResult{Job: model.JobCheckout, Date: today.Format(constant.DateOnlyFormat)}

	entries, err := s.repo.GetAll(ctx, gDto.QueryParams{}, dueFilter(model.FieldCheckOutDate, today, model.StatusReserved))
	if err != nil {
		log.Error().Err(err).Msg("failed to get departures")

		return res, fmt.Errorf("failed to get departures: %w", err)
	}

	var errs []error

	for _, entry := range entries {
		if room := entry.Room(); room != constant.Empty {
			checkoutLog := checkinoutModel.CheckoutLog{
				ID:            uuid.NewString(),
				ReservationID: entry.ReservationID,
				RoomNumber:    room,
				CheckoutDate:  today,
				CheckoutTime:  checkinoutModel.CheckoutTimeOn(today),
				Status:        checkinoutModel.StatusCheckedOut,
				Metadata:      gModel.NewMetadata(user, timezone.Now()),
			}

			if err := s.checkoutRepo.Insert(ctx, checkoutLog); err != nil {
				errs = append(errs, fmt.Errorf("checkout log for room %s: %w", room, err))

				continue
			}

			if err := s.roomService.ChangeStatus(ctx, room, nil, roomModel.StatusUnderMaintenance); err != nil {
				errs = append(errs, fmt.Errorf("room %s: %w", room, err))

				continue
			}
		}

		if err := s.repo.Update(ctx, statusFields(model.StatusCheckedOut, user), filterByID(entry.ID)); err != nil {
			errs = append(errs, fmt.Errorf("availability %s: %w", entry.ID, err))

			continue
		}

		res.Processed++
	}

	metrics.JobProcessedRecords.WithLabelValues(model.JobCheckout).Add(float64(res.Processed))

	log.Info().Str("job", res.Job).Str("date", res.Date).Int("processed", res.Processed).Msg("checkout job finished")

	return res, errors.Join(errs...)
}
