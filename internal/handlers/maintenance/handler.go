package maintenance

import (
	"net/http"

	"safari/infras/otel"
	"safari/internal/domains/maintenance/model"
	"safari/internal/domains/maintenance/model/dto"
	"safari/internal/domains/maintenance/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/validator"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.MaintenanceLog
	otel    otel.Otel
}

func New(service service.MaintenanceLog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance-logs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMaintenanceLog)
		routerGroup.Get("/", handler.GetMaintenanceLogs)
		routerGroup.Get("/{id}", handler.GetMaintenanceLog)
		routerGroup.Post("/{id}/submit", handler.SubmitMaintenanceLog)
	})
}

// CreateMaintenanceLog opens a draft maintenance log.
// @Summary Create maintenance log
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceLogRequest true "Maintenance log"
// @Success 201 {object} response.Data[string] "Created log ID"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/maintenance-logs [post]
// @Security BearerAuth
func (handler *Handler) CreateMaintenanceLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaintenanceLog")
	defer scope.End()

	var req dto.CreateMaintenanceLogRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance log")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, id)
}

// GetMaintenanceLogs lists maintenance logs.
// @Summary Get maintenance logs
// @Tags Maintenance
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetMaintenanceLogsResponse]
// @Router /v1/maintenance-logs [get]
func (handler *Handler) GetMaintenanceLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldRoomNumber, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMaintenanceLog returns a maintenance log.
// @Summary Get maintenance log
// @Tags Maintenance
// @Produce json
// @Param id path string true "Maintenance log ID"
// @Success 200 {object} response.Data[dto.MaintenanceLogResponse]
// @Failure 404 {object} response.Error
// @Router /v1/maintenance-logs/{id} [get]
func (handler *Handler) GetMaintenanceLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceLog")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitMaintenanceLog completes a log and marks its room Available.
// @Summary Submit maintenance log
// @Tags Maintenance
// @Produce json
// @Param id path string true "Maintenance log ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/maintenance-logs/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitMaintenanceLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitMaintenanceLog")
	defer scope.End()

	if err := handler.service.Submit(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit maintenance log")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Maintenance log submitted; the room is now available")
}
