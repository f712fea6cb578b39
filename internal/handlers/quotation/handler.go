package quotation

import (
	"net/http"
	"safari/infras/otel"
	"safari/internal/domains/quotation/model"
	"safari/internal/domains/quotation/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Quotation
	otel    otel.Otel
}

func New(service service.Quotation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quotations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetQuotations)
		routerGroup.Get("/{id}", handler.GetQuotation)
		routerGroup.Post("/{id}/submit", handler.SubmitQuotation)
	})
}

// GetQuotations lists quotations.
// @Summary Get all quotations
// @Tags Quotation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param reservation_id query string false "Filter by reservation"
// @Param customer query string false "Filter by customer"
// @Success 200 {object} response.Data[dto.GetQuotationsResponse] "List of quotations"
// @Failure 500 {object} response.Error
// @Router /v1/quotations [get]
// @Security BearerAuth
func (handler *Handler) GetQuotations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	query := r.URL.Query()

	if reservation := query.Get(model.FieldReservationID); reservation != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldReservationID,
			Operator: gDto.FilterOperatorEq,
			Value:    reservation,
			Table:    model.TableName,
		})
	}

	if customer := query.Get(model.FieldCustomer); customer != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomer,
			Operator: gDto.FilterOperatorLike,
			Value:    customer,
			Table:    model.TableName,
		})
	}

	quotations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quotations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quotations)
}

// GetQuotation returns a quotation with its items.
// @Summary Get a quotation
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Data[dto.QuotationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/quotations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotation")
	defer scope.End()

	quotation, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quotation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quotation)
}

// SubmitQuotation submits a draft quotation.
// @Summary Submit a quotation
// @Tags Quotation
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/quotations/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitQuotation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	msg, err := handler.service.Submit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to submit quotation")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, msg)
}
