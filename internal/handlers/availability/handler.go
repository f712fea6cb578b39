package availability

import (
	"fmt"
	"net/http"
	"time"

	"safari/infras/otel"
	"safari/internal/domains/availability/model"
	"safari/internal/domains/availability/model/dto"
	"safari/internal/domains/availability/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"
	"safari/shared/timezone"
	"safari/shared/validator"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamJob = "job"

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availabilities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAvailability)
		routerGroup.Get("/", handler.GetAvailabilities)
		routerGroup.Get("/calendar", handler.GetCalendar)
		routerGroup.Post("/jobs/{job}", handler.RunJob)
		routerGroup.Get("/{id}", handler.GetAvailability)
		routerGroup.Patch("/{id}", handler.UpdateAvailability)
		routerGroup.Delete("/{id}", handler.DeleteAvailability)
		routerGroup.Patch("/{id}/status", handler.UpdateAvailabilityStatus)
	})
}

// CreateAvailability creates an availability record for a room or tent.
// @Summary Create availability
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateAvailabilityRequest true "Availability"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availabilities [post]
// @Security BearerAuth
func (handler *Handler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAvailability")
	defer scope.End()

	var req dto.CreateAvailabilityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create availability")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Availability created successfully")
}

// GetAvailabilities lists availability records.
// @Summary Get availabilities
// @Tags Availability
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room"
// @Param reservation_id query string false "Filter by reservation"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetAvailabilitiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/availabilities [get]
func (handler *Handler) GetAvailabilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldRoomNumber, model.FieldReservationID, model.FieldStatus} {
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
		log.Error().Err(err).Msg("failed to get availabilities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCalendar lists records overlapping a date window.
// @Summary Availability calendar
// @Tags Availability
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end, exclusive (YYYY-MM-DD)"
// @Param room_number query string false "Restrict to a room"
// @Success 200 {object} response.Data[[]dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Router /v1/availabilities/calendar [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	req := dto.CalendarRequest{
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
		RoomNumber: r.URL.Query().Get(model.FieldRoomNumber),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Calendar(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailability returns one record.
// @Summary Get availability
// @Tags Availability
// @Produce json
// @Param id path string true "Availability ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 404 {object} response.Error
// @Router /v1/availabilities/{id} [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateAvailability moves the dates of a record.
// @Summary Update availability
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Availability ID"
// @Param request body dto.UpdateAvailabilityRequest true "New dates"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availabilities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAvailability")
	defer scope.End()

	var req dto.UpdateAvailabilityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update availability")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Availability updated successfully")
}

// DeleteAvailability removes a record.
// @Summary Delete availability
// @Tags Availability
// @Produce json
// @Param id path string true "Availability ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/availabilities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAvailability")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete availability")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Availability deleted successfully")
}

// UpdateAvailabilityStatus sets a record status; a linked room follows.
// @Summary Update availability status
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Availability ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/availabilities/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAvailabilityStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAvailabilityStatus")
	defer scope.End()

	var req dto.UpdateStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamID), req.Status); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update availability status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Availability status updated to "+req.Status)
}

// RunJob triggers a daily availability job on demand.
// @Summary Run an availability job
// @Description Runs room-status or checkout for the given date (defaults to today).
// @Tags Availability
// @Produce json
// @Param job path string true "Job name" Enums(room-status, checkout)
// @Param date query string false "Business date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.JobResult]
// @Failure 400 {object} response.Error
// @Router /v1/availabilities/jobs/{job} [post]
// @Security BearerAuth
func (handler *Handler) RunJob(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunJob")
	defer scope.End()

	day := timezone.Now()

	if date := r.URL.Query().Get("date"); date != constant.Empty {
		parsed, err := time.ParseInLocation(constant.DateOnlyFormat, date, day.Location())
		if err != nil {
			response.WithError(w, failure.BadRequest(err))

			return
		}

		day = parsed
	}

	var (
		res dto.JobResult
		err error
	)

	switch job := chi.URLParam(r, requestParamJob); job {
	case model.JobRoomStatus:
		res, err = handler.service.UpdateRoomStatus(ctx, day)
	case model.JobCheckout:
		res, err = handler.service.ProcessCheckout(ctx, day)
	default:
		response.WithError(w, failure.BadRequestFromString(fmt.Sprintf("unknown job %q", job)))

		return
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("job", res.Job).Msg("availability job finished with errors")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
