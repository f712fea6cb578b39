package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"

	"safari/config"
	"safari/infras/otel"
	"safari/infras/s3"
	maintenanceRepo "safari/internal/domains/maintenance/repository"
	"safari/internal/domains/room/model"
	"safari/internal/domains/room/model/dto"
	"safari/internal/domains/room/repository"
	"safari/shared"
	"safari/shared/cache"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/event"
	"safari/shared/failure"
	"safari/shared/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, roomNumber string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, roomNumber string) error
	Delete(ctx context.Context, roomNumber string) error
	GetAvailableRooms(ctx context.Context, req dto.AvailableRoomsRequest) ([]dto.RoomResponse, error)
	MarkCleaned(ctx context.Context, roomNumber string) (string, error)
	ChangeStatus(ctx context.Context, roomNumber string, allowedFrom []string, to string) error
	StatusChanged(ctx context.Context, changes []model.StatusChange)
}

type serviceImpl struct {
	repo            repository.Room
	maintenanceRepo maintenanceRepo.MaintenanceLog
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	s3              s3.S3
	publisher       event.Publisher
}

func New(
	repo repository.Room,
	maintenanceRepo maintenanceRepo.MaintenanceLog,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	publisher event.Publisher,
) Room {
	return &serviceImpl{
		repo:            repo,
		maintenanceRepo: maintenanceRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
		s3:              s3,
		publisher:       publisher,
	}
}

func filterByRoomNumber(roomNumber string) gDto.FilterGroup {
	return shared.FilterByID(roomNumber, model.FieldRoomNumber, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, filterByRoomNumber(req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("room %s already exists", req.RoomNumber)) // nolint:wrapcheck
	}

	imageURL := constant.Empty
	var uploadedObjectName string
	if req.Image != nil {
		filename := uuid.NewString() + path.Ext(req.Image.Filename)

		url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, roomNumber string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, roomNumber)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.getRoom(ctx, roomNumber)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, roomNumber string) (model.Room, error) {
	room, err := s.repo.Get(ctx, filterByRoomNumber(roomNumber))
	if err != nil {
		log.Error().Err(err).Str("room_number", roomNumber).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.RoomNumber == constant.Empty {
		return room, failure.NotFound(fmt.Sprintf("room %s not found", roomNumber)) // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	currentRoom, err := s.getRoom(ctx, roomNumber)
	if err != nil {
		return err
	}

	bucketName := s.cfg.External.S3.BucketName
	imageURL := constant.Empty
	var uploadedObjectName string

	if req.Image != nil {
		filename := uuid.NewString() + path.Ext(req.Image.Filename)

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filterByRoomNumber(roomNumber)); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update room: %w", err)
	}

	// Replaced images are removed only once the new one is stored.
	if imageURL != constant.Empty && currentRoom.Image != constant.Empty {
		if oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentRoom.Image); oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, path.Base(oldObjectName))
		}
	}

	s.invalidate(ctx, roomNumber)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, roomNumber string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, filterByRoomNumber(roomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound(fmt.Sprintf("room %s not found", roomNumber)) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filterByRoomNumber(roomNumber)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.invalidate(ctx, roomNumber)

	return nil
}

func (s *serviceImpl) GetAvailableRooms(ctx context.Context, req dto.AvailableRoomsRequest) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, hasRange, err := req.Range()
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if hasRange && !checkOut.After(checkIn) {
		return nil, failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
	}

	// Not cached: availability records are written by several other services.
	var models []model.Room
	if hasRange {
		models, err = s.repo.GetAvailable(ctx, &checkIn, &checkOut)
	} else {
		models, err = s.repo.GetAvailable(ctx, nil, nil)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) MarkCleaned(ctx context.Context, roomNumber string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkCleaned")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.getRoom(ctx, roomNumber)
	if err != nil {
		return msg, err
	}

	if room.Status != model.StatusUnderMaintenance {
		return msg, failure.BadRequestFromString(fmt.Sprintf("Room %s is not under maintenance and cannot be cleaned.", roomNumber)) // nolint:wrapcheck
	}

	if err = s.setStatus(ctx, room, model.StatusAvailable); err != nil {
		return msg, err
	}

	if err = s.maintenanceRepo.CompletePending(ctx, roomNumber, user); err != nil {
		log.Error().Err(err).Str("room_number", roomNumber).Msg("failed to complete pending maintenance logs")

		return msg, fmt.Errorf("failed to complete maintenance logs: %w", err)
	}

	return fmt.Sprintf("Room %s has been cleaned and is now available for booking.", roomNumber), nil
}

// ChangeStatus moves the room to another status. An empty allowedFrom accepts any current status.
func (s *serviceImpl) ChangeStatus(ctx context.Context, roomNumber string, allowedFrom []string, to string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, roomNumber)
	if err != nil {
		return err
	}

	if len(allowedFrom) > 0 && !slices.Contains(allowedFrom, room.Status) {
		return failure.Conflict(fmt.Sprintf("Room %s is %s and cannot be set to %s.", roomNumber, room.Status, to)) // nolint:wrapcheck
	}

	return s.setStatus(ctx, room, to)
}

// setStatus writes the new status only if the room still has the status that was read.
func (s *serviceImpl) setStatus(ctx context.Context, room model.Room, to string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if room.Status == to {
		return nil
	}

	err := s.repo.MoveStatus(ctx, []string{room.RoomNumber}, []string{room.Status}, to, user)
	if errors.Is(err, repository.ErrStatusConflict) {
		return failure.Conflict(fmt.Sprintf("Room %s changed status while it was being set to %s.", room.RoomNumber, to)) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("room_number", room.RoomNumber).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	s.StatusChanged(ctx, []model.StatusChange{{
		RoomNumber: room.RoomNumber,
		From:       room.Status,
		To:         to,
		ChangedBy:  user,
	}})

	return nil
}

// StatusChanged records status moves that are already committed: metrics, cache and events.
// Callers that move rooms inside their own transaction call it after the commit.
func (s *serviceImpl) StatusChanged(ctx context.Context, changes []model.StatusChange) {
	for _, change := range changes {
		metrics.RoomStatusTransitions.WithLabelValues(change.From, change.To).Inc()

		log.Info().
			Str("room_number", change.RoomNumber).
			Str("from", change.From).
			Str("to", change.To).
			Msg("room status changed")

		s.invalidate(ctx, change.RoomNumber)

		event.PublishAsync(ctx, s.publisher, event.TopicRoomStatusChanged, change.RoomNumber, change)
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, roomNumber string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, roomNumber)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
