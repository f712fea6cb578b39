package service

import (
	"context"
	"fmt"

	"safari/infras/otel"
	"safari/internal/domains/maintenance/model"
	"safari/internal/domains/maintenance/model/dto"
	"safari/internal/domains/maintenance/repository"
	roomModel "safari/internal/domains/room/model"
	roomService "safari/internal/domains/room/service"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"
	"safari/shared/timezone"

	"github.com/rs/zerolog/log"
)

type MaintenanceLog interface {
	Create(ctx context.Context, req dto.CreateMaintenanceLogRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMaintenanceLogsResponse, error)
	Get(ctx context.Context, id string) (dto.MaintenanceLogResponse, error)
	Submit(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.MaintenanceLog
	roomService roomService.Room
	otel        otel.Otel
}

func New(repo repository.MaintenanceLog, roomService roomService.Room, otel otel.Otel) MaintenanceLog {
	return &serviceImpl{
		repo:        repo,
		roomService: roomService,
		otel:        otel,
	}
}

func filterByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMaintenanceLogRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	maintenanceLog, err := req.ToModel(user, timezone.Now())
	if err != nil {
		return id, failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.roomService.Get(ctx, req.RoomNumber); err != nil {
		return id, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, maintenanceLog); err != nil {
		log.Error().Err(err).Msg("failed to create maintenance log")

		return id, fmt.Errorf("failed to create maintenance log: %w", err)
	}

	return maintenanceLog.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMaintenanceLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance logs")

		return res, fmt.Errorf("failed to count maintenance logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance logs")

		return res, fmt.Errorf("failed to get maintenance logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MaintenanceLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	maintenanceLog, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(maintenanceLog)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.MaintenanceLog, error) {
	maintenanceLog, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get maintenance log")

		return maintenanceLog, fmt.Errorf("failed to get maintenance log: %w", err)
	}

	if maintenanceLog.ID == constant.Empty {
		return maintenanceLog, failure.NotFound("maintenance log not found") // nolint:wrapcheck
	}

	return maintenanceLog, nil
}

// Submit completes the log and hands the room back to bookings.
func (s *serviceImpl) Submit(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	maintenanceLog, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if maintenanceLog.DocStatus != constant.DocStatusDraft {
		return failure.BadRequestFromString("Only draft maintenance logs can be submitted.") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusCompleted,
		model.FieldDocStatus:     constant.DocStatusSubmitted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filterByID(id)); err != nil {
		log.Error().Err(err).Msg("failed to submit maintenance log")

		return fmt.Errorf("failed to submit maintenance log: %w", err)
	}

	if err = s.roomService.ChangeStatus(ctx, maintenanceLog.RoomNumber, nil, roomModel.StatusAvailable); err != nil {
		log.Error().Err(err).Str("room_number", maintenanceLog.RoomNumber).Msg("failed to release room after maintenance")

		return err //nolint:wrapcheck
	}

	log.Info().Str("room_number", maintenanceLog.RoomNumber).Msg("room marked available after maintenance log submission")

	return nil
}
