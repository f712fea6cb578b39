package instructor

import (
	"net/http"

	"safari/infras/otel"
	"safari/internal/domains/instructor/model"
	"safari/internal/domains/instructor/model/dto"
	"safari/internal/domains/instructor/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/validator"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryActivity    = "activity"
	querySessionType = "session_type"
)

type Handler struct {
	service service.Instructor
	otel    otel.Otel
}

func New(service service.Instructor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/instructors", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAllInstructors)
		routerGroup.Post("/activity-levels", handler.CreateActivityLevel)
		routerGroup.Get("/activity-levels", handler.GetActivityLevels)
		routerGroup.Delete("/activity-levels/{id}", handler.DeleteActivityLevel)
		routerGroup.Post("/rates", handler.CreateRate)
		routerGroup.Get("/rates", handler.GetRates)
		routerGroup.Patch("/rates/{id}", handler.UpdateRate)
		routerGroup.Delete("/rates/{id}", handler.DeleteRate)
	})

	router.Route("/instructor-assignments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAssignment)
		routerGroup.Get("/", handler.GetAssignments)
		routerGroup.Get("/{id}", handler.GetAssignment)
		routerGroup.Post("/{id}/suggest", handler.SuggestInstructors)
	})
}

// GetAllInstructors looks up instructors qualified for an activity with their session rate.
// @Summary Instructor lookup
// @Tags Instructor
// @Produce json
// @Param activity query string true "Activity name"
// @Param session_type query string true "Session type"
// @Success 200 {object} response.Data[[]dto.CandidateResponse]
// @Failure 400 {object} response.Error
// @Router /v1/instructors [get]
// @Security BearerAuth
func (handler *Handler) GetAllInstructors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllInstructors")
	defer scope.End()

	req := dto.InstructorQuery{
		Activity:    r.URL.Query().Get(queryActivity),
		SessionType: r.URL.Query().Get(querySessionType),
	}

	res, err := handler.service.GetAllInstructors(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to look up instructors")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateActivityLevel records an instructor qualification for an activity.
// @Summary Create instructor activity level
// @Tags Instructor
// @Accept json
// @Produce json
// @Param request body dto.CreateActivityLevelRequest true "Activity level"
// @Success 201 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Router /v1/instructors/activity-levels [post]
// @Security BearerAuth
func (handler *Handler) CreateActivityLevel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateActivityLevel")
	defer scope.End()

	req := dto.CreateActivityLevelRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id, err := handler.service.CreateActivityLevel(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create activity level")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, id)
}

// GetActivityLevels lists instructor activity levels.
// @Summary Get instructor activity levels
// @Tags Instructor
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param instructor query string false "Filter by instructor"
// @Param activity_name query string false "Filter by activity"
// @Success 200 {object} response.Data[dto.GetActivityLevelsResponse]
// @Router /v1/instructors/activity-levels [get]
// @Security BearerAuth
func (handler *Handler) GetActivityLevels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivityLevels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := eqFilter(r, model.ActivityLevelTableName, model.FieldInstructor, model.FieldActivityName)

	res, err := handler.service.GetActivityLevels(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteActivityLevel removes an instructor activity level.
// @Summary Delete instructor activity level
// @Tags Instructor
// @Param id path string true "Activity level ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/instructors/activity-levels/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteActivityLevel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteActivityLevel")
	defer scope.End()

	if err := handler.service.DeleteActivityLevel(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Activity level deleted successfully")
}

// CreateRate prices a session type for an activity and qualification.
// @Summary Create instructor rate
// @Tags Instructor
// @Accept json
// @Produce json
// @Param request body dto.CreateRateRequest true "Rate"
// @Success 201 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/instructors/rates [post]
// @Security BearerAuth
func (handler *Handler) CreateRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRate")
	defer scope.End()

	req := dto.CreateRateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id, err := handler.service.CreateRate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, id)
}

// GetRates lists instructor rates.
// @Summary Get instructor rates
// @Tags Instructor
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param activity_name query string false "Filter by activity"
// @Param session_type query string false "Filter by session type"
// @Success 200 {object} response.Data[dto.GetRatesResponse]
// @Router /v1/instructors/rates [get]
// @Security BearerAuth
func (handler *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := eqFilter(r, model.RateTableName, model.FieldActivityName, model.FieldSessionType)

	res, err := handler.service.GetRates(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRate changes the amount of a rate.
// @Summary Update instructor rate
// @Tags Instructor
// @Accept json
// @Produce json
// @Param id path string true "Rate ID"
// @Param request body dto.UpdateRateRequest true "Rate"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/instructors/rates/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRate")
	defer scope.End()

	req := dto.UpdateRateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRate(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Rate updated successfully")
}

// DeleteRate removes a rate.
// @Summary Delete instructor rate
// @Tags Instructor
// @Param id path string true "Rate ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/instructors/rates/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRate")
	defer scope.End()

	if err := handler.service.DeleteRate(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Rate deleted successfully")
}

// CreateAssignment opens an instructor assignment for an activity session.
// @Summary Create instructor assignment
// @Tags Instructor
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Router /v1/instructor-assignments [post]
// @Security BearerAuth
func (handler *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAssignment")
	defer scope.End()

	req := dto.CreateAssignmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id, err := handler.service.CreateAssignment(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create instructor assignment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, id)
}

// GetAssignments lists instructor assignments.
// @Summary Get instructor assignments
// @Tags Instructor
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param reservation_id query string false "Filter by reservation"
// @Success 200 {object} response.Data[dto.GetAssignmentsResponse]
// @Router /v1/instructor-assignments [get]
// @Security BearerAuth
func (handler *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAssignments(ctx, queryParams, eqFilter(r, model.AssignmentTableName, model.FieldReservationID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAssignment returns an assignment with its suggestions.
// @Summary Get instructor assignment
// @Tags Instructor
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Data[dto.AssignmentResponse]
// @Failure 404 {object} response.Error
// @Router /v1/instructor-assignments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignment")
	defer scope.End()

	res, err := handler.service.GetAssignment(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SuggestInstructors refreshes the suggestion rows of an assignment.
// @Summary Suggest instructors
// @Tags Instructor
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Data[dto.AssignmentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/instructor-assignments/{id}/suggest [post]
// @Security BearerAuth
func (handler *Handler) SuggestInstructors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SuggestInstructors")
	defer scope.End()

	res, err := handler.service.Suggest(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to suggest instructors")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(service.SuggestionsUpdated)

	response.WithJSON(w, http.StatusOK, res)
}

func eqFilter(r *http.Request, table string, fields ...string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range fields {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			})
		}
	}

	return filterGroup
}
