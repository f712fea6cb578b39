package checkinout

import (
	"net/http"

	"safari/infras/otel"
	"safari/internal/domains/checkinout/model"
	"safari/internal/domains/checkinout/model/dto"
	"safari/internal/domains/checkinout/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/validator"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CheckInOut
	otel    otel.Otel
}

func New(service service.CheckInOut, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/check-ins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCheckIn)
		routerGroup.Get("/", handler.GetCheckIns)
	})

	router.Route("/check-outs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCheckOut)
		routerGroup.Get("/", handler.GetCheckouts)
	})
}

// CreateCheckIn checks a confirmed reservation in.
// @Summary Check in a reservation
// @Tags CheckInOut
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckInRequest true "Check-in"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/check-ins [post]
// @Security BearerAuth
func (handler *Handler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckIn")
	defer scope.End()

	req := dto.CreateCheckInRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	msg, err := handler.service.CreateCheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", req.ReservationID).Msg("failed to check in")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, msg)
}

// CreateCheckOut checks a reservation out.
// @Summary Check out a reservation
// @Tags CheckInOut
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckOutRequest true "Check-out"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/check-outs [post]
// @Security BearerAuth
func (handler *Handler) CreateCheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckOut")
	defer scope.End()

	req := dto.CreateCheckOutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	msg, err := handler.service.CreateCheckOut(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", req.ReservationID).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, msg)
}

// GetCheckIns lists check-in logs.
// @Summary Get check-in logs
// @Tags CheckInOut
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param reservation_id query string false "Filter by reservation"
// @Param room_number query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetCheckInLogsResponse]
// @Router /v1/check-ins [get]
// @Security BearerAuth
func (handler *Handler) GetCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckIns")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetCheckIns(ctx, queryParams, logFilter(r, model.CheckInTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-in logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCheckouts lists checkout logs.
// @Summary Get checkout logs
// @Tags CheckInOut
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param reservation_id query string false "Filter by reservation"
// @Param room_number query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetCheckoutLogsResponse]
// @Router /v1/check-outs [get]
// @Security BearerAuth
func (handler *Handler) GetCheckouts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckouts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetCheckouts(ctx, queryParams, logFilter(r, model.CheckoutTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checkout logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func logFilter(r *http.Request, table string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldReservationID, model.FieldRoomNumber} {
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
