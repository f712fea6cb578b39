package service

import (
	"context"
	"fmt"

	"safari/config"
	"safari/infras/otel"
	"safari/internal/domains/activity/model"
	"safari/internal/domains/activity/model/dto"
	"safari/internal/domains/activity/repository"
	"safari/shared"
	"safari/shared/cache"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetActivity    = "activity:get"
	cacheGetAllActivity = "activity:gets"
)

type Activity interface {
	Create(ctx context.Context, req dto.CreateActivityRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetActivitiesResponse, error)
	Get(ctx context.Context, name string) (dto.ActivityResponse, error)
	Update(ctx context.Context, req dto.UpdateActivityRequest, name string) error
	Delete(ctx context.Context, name string) error
}

type serviceImpl struct {
	repo  repository.Activity
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Activity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Activity {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterByName(name string) gDto.FilterGroup {
	return shared.FilterByID(name, model.FieldName, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateActivityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, filterByName(req.Name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if activity exists")

		return fmt.Errorf("failed to check if activity exists: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("activity %s already exists", req.Name)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create activity")

		return fmt.Errorf("failed to create activity: %w", err)
	}

	s.invalidate(ctx, req.Name)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllActivity, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, name string) (res dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetActivity, name)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	activity, err := s.repo.Get(ctx, filterByName(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity")

		return res, fmt.Errorf("failed to get activity: %w", err)
	}

	if activity.Name == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("activity %s not found", name)) // nolint:wrapcheck
	}

	res.FromModel(activity)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activity to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateActivityRequest, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateActivityRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.mustExist(ctx, name); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filterByName(name)); err != nil {
		log.Error().Err(err).Msg("failed to update activity")

		return fmt.Errorf("failed to update activity: %w", err)
	}

	s.invalidate(ctx, name)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.mustExist(ctx, name); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filterByName(name)); err != nil {
		log.Error().Err(err).Msg("failed to delete activity")

		return fmt.Errorf("failed to delete activity: %w", err)
	}

	s.invalidate(ctx, name)

	return nil
}

func (s *serviceImpl) mustExist(ctx context.Context, name string) error {
	exist, err := s.repo.Exist(ctx, filterByName(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if activity exists")

		return fmt.Errorf("failed to check if activity exists: %w", err)
	}

	if !exist {
		return failure.NotFound(fmt.Sprintf("activity %s not found", name)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, name string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetActivity, name)); err != nil {
			log.Error().Err(err).Msg("failed to delete activity from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllActivity)
	}()
}
