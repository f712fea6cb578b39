package activity

import (
	"net/http"

	"safari/infras/otel"
	"safari/internal/domains/activity/model"
	"safari/internal/domains/activity/model/dto"
	"safari/internal/domains/activity/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/validator"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamName = "name"

type Handler struct {
	service service.Activity
	otel    otel.Otel
}

func New(service service.Activity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/activities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateActivity)
		routerGroup.Get("/", handler.GetActivities)
		routerGroup.Get("/{name}", handler.GetActivity)
		routerGroup.Patch("/{name}", handler.UpdateActivity)
		routerGroup.Delete("/{name}", handler.DeleteActivity)
	})
}

// CreateActivity adds an activity to the catalog.
// @Summary Create activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body dto.CreateActivityRequest true "Activity"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/activities [post]
// @Security BearerAuth
func (handler *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateActivity")
	defer scope.End()

	var req dto.CreateActivityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create activity")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Activity created successfully")
}

// GetActivities lists the catalog.
// @Summary Get activities
// @Tags Activity
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse]
// @Router /v1/activities [get]
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetActivity returns one activity.
// @Summary Get activity
// @Tags Activity
// @Produce json
// @Param name path string true "Activity name"
// @Success 200 {object} response.Data[dto.ActivityResponse]
// @Failure 404 {object} response.Error
// @Router /v1/activities/{name} [get]
func (handler *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivity")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, requestParamName))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateActivity edits an activity.
// @Summary Update activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param name path string true "Activity name"
// @Param request body dto.UpdateActivityRequest true "Changes"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/activities/{name} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateActivity")
	defer scope.End()

	var req dto.UpdateActivityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, requestParamName)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update activity")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Activity updated successfully")
}

// DeleteActivity removes an activity.
// @Summary Delete activity
// @Tags Activity
// @Produce json
// @Param name path string true "Activity name"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/activities/{name} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteActivity")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, requestParamName)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete activity")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Activity deleted successfully")
}
