package reservation

import (
	"context"
	"net/http"

	"safari/infras/otel"
	quotationService "safari/internal/domains/quotation/service"
	"safari/internal/domains/reservation/model"
	"safari/internal/domains/reservation/model/dto"
	"safari/internal/domains/reservation/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/validator"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service          service.Reservation
	quotationService quotationService.Quotation
	otel             otel.Otel
}

func New(service service.Reservation, quotationService quotationService.Quotation, otel otel.Otel) Handler {
	return Handler{
		service:          service,
		quotationService: quotationService,
		otel:             otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/calendar", handler.GetCalendar)
		routerGroup.Get("/{id}", handler.GetReservation)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
		routerGroup.Get("/{id}/total-cost", handler.GetTotalCost)
		routerGroup.Post("/{id}/confirm", handler.ConfirmReservation)
		routerGroup.Post("/{id}/quotation", handler.CreateQuotation)
	})
}

// CreateReservation creates a draft reservation with its activities, rooms, tents, transport and services.
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.ReservationRequest true "Reservation"
// @Success 201 {object} response.Data[string] "Created reservation ID"
// @Failure 400 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.ReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, id)
}

// GetReservations lists reservations.
// @Summary Get all reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param customer_name query string false "Filter by customer"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if customer := query.Get(model.FieldCustomerName); customer != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerName,
			Operator: gDto.FilterOperatorLike,
			Value:    customer,
			Table:    model.TableName,
		})
	}

	if status := query.Get(model.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetCalendar lists reservations overlapping a date window.
// @Summary Reservation calendar
// @Tags Reservation
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end, exclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	req := dto.CalendarRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Calendar(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservation returns a reservation with its child rows.
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservation")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservation replaces a draft reservation and all of its child rows.
// @Summary Update a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.ReservationRequest true "Reservation"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	req := dto.ReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation updated successfully")
}

// DeleteReservation deletes a reservation that is not confirmed.
// @Summary Delete a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation deleted successfully")
}

// GetTotalCost recomputes the proposed total of a reservation.
// @Summary Calculate reservation total cost
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.TotalCostResponse]
// @Router /v1/reservations/{id}/total-cost [get]
// @Security BearerAuth
func (handler *Handler) GetTotalCost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTotalCost")
	defer scope.End()

	res, err := handler.service.CalculateTotalCost(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate total cost")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmReservation confirms a draft reservation and books its rooms.
// @Summary Confirm a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	handler.action(w, r, ".ConfirmReservation", func(ctx context.Context, id string) (any, error) {
		return handler.service.Confirm(ctx, id)
	}, false)
}

// CreateQuotation builds a draft quotation from a reservation.
// @Summary Create a quotation from a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 201 {object} response.Data[string] "Created quotation ID"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id}/quotation [post]
// @Security BearerAuth
func (handler *Handler) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	handler.action(w, r, ".CreateQuotation", func(ctx context.Context, id string) (any, error) {
		return handler.quotationService.CreateFromReservation(ctx, id)
	}, true)
}

func (handler *Handler) action(w http.ResponseWriter, r *http.Request, name string, fn func(context.Context, string) (any, error), created bool) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := fn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("reservation action failed")

		response.WithError(w, err)

		return
	}

	if created {
		response.WithJSON(w, http.StatusCreated, res)

		return
	}

	msg, _ := res.(string)
	response.WithMessage(w, http.StatusOK, msg)
}
