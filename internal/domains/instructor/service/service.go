package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Instructor=MockInstructorService

import (
	"context"
	"fmt"

	"safari/config"
	"safari/infras/otel"
	"safari/internal/domains/instructor/model"
	"safari/internal/domains/instructor/model/dto"
	"safari/internal/domains/instructor/repository"
	"safari/shared"
	"safari/shared/cache"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"
	"safari/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheLookupInstructor = "instructor:lookup"

// SuggestionsUpdated is returned once an assignment has fresh suggestions.
const SuggestionsUpdated = "Instructor suggestions updated. You can now manually add or remove instructors."

type Instructor interface {
	CreateActivityLevel(ctx context.Context, req dto.CreateActivityLevelRequest) (string, error)
	GetActivityLevels(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetActivityLevelsResponse, error)
	DeleteActivityLevel(ctx context.Context, id string) error
	CreateRate(ctx context.Context, req dto.CreateRateRequest) (string, error)
	GetRates(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRatesResponse, error)
	UpdateRate(ctx context.Context, req dto.UpdateRateRequest, id string) error
	DeleteRate(ctx context.Context, id string) error
	GetAllInstructors(ctx context.Context, req dto.InstructorQuery) ([]dto.CandidateResponse, error)
	CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest) (string, error)
	GetAssignments(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAssignmentsResponse, error)
	GetAssignment(ctx context.Context, id string) (dto.AssignmentResponse, error)
	Suggest(ctx context.Context, id string) (dto.AssignmentResponse, error)
}

type serviceImpl struct {
	levelRepo      repository.ActivityLevel
	rateRepo       repository.Rate
	assignmentRepo repository.Assignment
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	levelRepo repository.ActivityLevel,
	rateRepo repository.Rate,
	assignmentRepo repository.Assignment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Instructor {
	return &serviceImpl{
		levelRepo:      levelRepo,
		rateRepo:       rateRepo,
		assignmentRepo: assignmentRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) CreateActivityLevel(ctx context.Context, req dto.CreateActivityLevelRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateActivityLevel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	level := req.ToModel(user)

	if err = s.levelRepo.Insert(ctx, level); err != nil {
		log.Error().Err(err).Msg("failed to create activity level")

		return id, fmt.Errorf("failed to create activity level: %w", err)
	}

	s.invalidateLookups(ctx)

	return level.ID, nil
}

func (s *serviceImpl) GetActivityLevels(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetActivityLevelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActivityLevels")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.levelRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activity levels")

		return res, fmt.Errorf("failed to count activity levels: %w", err)
	}

	models, err := s.levelRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity levels")

		return res, fmt.Errorf("failed to get activity levels: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) DeleteActivityLevel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteActivityLevel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.ActivityLevelTableName)

	level, err := s.levelRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity level")

		return fmt.Errorf("failed to get activity level: %w", err)
	}

	if level.ID == constant.Empty {
		return failure.NotFound("activity level not found") // nolint:wrapcheck
	}

	if err = s.levelRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete activity level")

		return fmt.Errorf("failed to delete activity level: %w", err)
	}

	s.invalidateLookups(ctx)

	return nil
}

func (s *serviceImpl) CreateRate(ctx context.Context, req dto.CreateRateRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldActivityName, Operator: gDto.FilterOperatorEq, Value: req.ActivityName, Table: model.RateTableName},
			gDto.Filter{Field: model.FieldQualification, Operator: gDto.FilterOperatorEq, Value: req.Qualification, Table: model.RateTableName},
			gDto.Filter{Field: model.FieldSessionType, Operator: gDto.FilterOperatorEq, Value: req.SessionType, Table: model.RateTableName},
		},
	}

	exists, err := s.rateRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rate exists")

		return id, fmt.Errorf("failed to check if rate exists: %w", err)
	}

	if exists {
		return id, failure.Conflict(fmt.Sprintf( // nolint:wrapcheck
			"a %s rate for %s at %s already exists", req.SessionType, req.ActivityName, req.Qualification,
		))
	}

	rate := req.ToModel(user)

	if err = s.rateRepo.Insert(ctx, rate); err != nil {
		log.Error().Err(err).Msg("failed to create rate")

		return id, fmt.Errorf("failed to create rate: %w", err)
	}

	s.invalidateLookups(ctx)

	return rate.ID, nil
}

func (s *serviceImpl) GetRates(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRates")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.rateRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rates")

		return res, fmt.Errorf("failed to count rates: %w", err)
	}

	models, err := s.rateRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rates")

		return res, fmt.Errorf("failed to get rates: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateRate(ctx context.Context, req dto.UpdateRateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Rate == nil {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.mustHaveRate(ctx, id); err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldRate:          *req.Rate,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.rateRepo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.RateTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update rate")

		return fmt.Errorf("failed to update rate: %w", err)
	}

	s.invalidateLookups(ctx)

	return nil
}

func (s *serviceImpl) DeleteRate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.mustHaveRate(ctx, id); err != nil {
		return err
	}

	if err = s.rateRepo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.RateTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete rate")

		return fmt.Errorf("failed to delete rate: %w", err)
	}

	s.invalidateLookups(ctx)

	return nil
}

func (s *serviceImpl) mustHaveRate(ctx context.Context, id string) error {
	exists, err := s.rateRepo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.RateTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rate exists")

		return fmt.Errorf("failed to check if rate exists: %w", err)
	}

	if !exists {
		return failure.NotFound("rate not found") // nolint:wrapcheck
	}

	return nil
}

// GetAllInstructors lists the instructors qualified for an activity with their session rate.
func (s *serviceImpl) GetAllInstructors(ctx context.Context, req dto.InstructorQuery) (res []dto.CandidateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllInstructors")
	defer scope.End()
	defer scope.TraceIfError(err)

	log.Info().Str("activity", req.Activity).Str("session_type", req.SessionType).Msg("instructor lookup")

	if req.Activity == constant.Empty || req.SessionType == constant.Empty {
		return nil, failure.BadRequestFromString(fmt.Sprintf( // nolint:wrapcheck
			"Both activity and session_type parameters are required. Received: Activity=%s, Session Type=%s",
			req.Activity, req.SessionType,
		))
	}

	cacheKey := shared.BuildCacheKey(cacheLookupInstructor, req.Activity, req.SessionType)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	candidates, err := s.levelRepo.FindCandidates(ctx, req.Activity, req.SessionType)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up instructors")

		return nil, fmt.Errorf("failed to look up instructors: %w", err)
	}

	res = dto.FromCandidates(candidates)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save instructor lookup to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAssignment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	assignment := req.ToModel(user)

	if err = s.assignmentRepo.Insert(ctx, assignment); err != nil {
		log.Error().Err(err).Msg("failed to create instructor assignment")

		return id, fmt.Errorf("failed to create instructor assignment: %w", err)
	}

	return assignment.ID, nil
}

func (s *serviceImpl) GetAssignments(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAssignmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAssignments")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.assignmentRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count instructor assignments")

		return res, fmt.Errorf("failed to count instructor assignments: %w", err)
	}

	models, err := s.assignmentRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get instructor assignments")

		return res, fmt.Errorf("failed to get instructor assignments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetAssignment(ctx context.Context, id string) (res dto.AssignmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAssignment")
	defer scope.End()
	defer scope.TraceIfError(err)

	assignment, err := s.getAssignment(ctx, id)
	if err != nil {
		return res, err
	}

	suggestions, err := s.assignmentRepo.GetSuggestions(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get instructor suggestions")

		return res, fmt.Errorf("failed to get instructor suggestions: %w", err)
	}

	res.FromModel(assignment, suggestions)

	return res, nil
}

// Suggest replaces the suggestion rows of an assignment with the current lookup result.
func (s *serviceImpl) Suggest(ctx context.Context, id string) (res dto.AssignmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Suggest")
	defer scope.End()
	defer scope.TraceIfError(err)

	assignment, err := s.getAssignment(ctx, id)
	if err != nil {
		return res, err
	}

	candidates, err := s.GetAllInstructors(ctx, dto.InstructorQuery{Activity: assignment.Activity, SessionType: assignment.SessionType})
	if err != nil {
		return res, err
	}

	suggestions := make([]model.Suggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = model.Suggestion{
			ID:            uuid.NewString(),
			AssignmentID:  id,
			Instructor:    c.Instructor,
			Qualification: c.Qualification,
		}
	}

	if err = s.assignmentRepo.ReplaceSuggestions(ctx, id, suggestions); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to save instructor suggestions")

		return res, fmt.Errorf("failed to save instructor suggestions: %w", err)
	}

	res.FromModel(assignment, suggestions)

	return res, nil
}

func (s *serviceImpl) getAssignment(ctx context.Context, id string) (model.Assignment, error) {
	assignment, err := s.assignmentRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.AssignmentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get instructor assignment")

		return assignment, fmt.Errorf("failed to get instructor assignment: %w", err)
	}

	if assignment.ID == constant.Empty {
		return assignment, failure.NotFound("instructor assignment not found") // nolint:wrapcheck
	}

	return assignment, nil
}

func (s *serviceImpl) invalidateLookups(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheLookupInstructor)
	}()
}
