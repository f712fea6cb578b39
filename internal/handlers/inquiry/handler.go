package inquiry

import (
	"net/http"
	"safari/infras/otel"
	"safari/internal/domains/inquiry/model"
	"safari/internal/domains/inquiry/model/dto"
	"safari/internal/domains/inquiry/service"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/failure"
	"safari/shared/validator"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking-inquiries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInquiry)
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Get("/{id}", handler.GetInquiry)
		routerGroup.Put("/{id}", handler.UpdateInquiry)
		routerGroup.Delete("/{id}", handler.DeleteInquiry)
		routerGroup.Post("/{id}/kit-list", handler.AttachKitList)
		routerGroup.Post("/{id}/submit", handler.SubmitInquiry)
	})

	router.Get("/calendar-events", handler.GetCalendarEvents)
}

// CreateInquiry records a booking inquiry.
// @Summary Create a booking inquiry
// @Description The proposed total cost is the sum of the activity costs and room prices.
// @Tags BookingInquiry
// @Accept json
// @Produce json
// @Param request body dto.InquiryRequest true "Booking inquiry"
// @Success 201 {object} response.Data[string] "Created inquiry ID"
// @Failure 400 {object} response.Error
// @Router /v1/booking-inquiries [post]
// @Security BearerAuth
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.InquiryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking inquiry")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, id)
}

// GetInquiries lists booking inquiries.
// @Summary Get booking inquiries
// @Tags BookingInquiry
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param customer_name query string false "Filter by customer"
// @Param docstatus query integer false "Filter by document status"
// @Success 200 {object} response.Data[dto.GetInquiriesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/booking-inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
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

	if status := query.Get(model.FieldDocStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDocStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	inquiries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking inquiries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, inquiries)
}

// GetInquiry returns a booking inquiry with its activities and rooms.
// @Summary Get a booking inquiry
// @Tags BookingInquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Data[dto.InquiryResponse]
// @Failure 404 {object} response.Error
// @Router /v1/booking-inquiries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiry")
	defer scope.End()

	inquiry, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking inquiry")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, inquiry)
}

// UpdateInquiry replaces a draft booking inquiry.
// @Summary Update a booking inquiry
// @Tags BookingInquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body dto.InquiryRequest true "Booking inquiry"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking-inquiries/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateInquiry")
	defer scope.End()

	req := dto.InquiryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking inquiry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking inquiry updated successfully")
}

// DeleteInquiry removes an unsubmitted booking inquiry.
// @Summary Delete a booking inquiry
// @Tags BookingInquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking-inquiries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInquiry")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking inquiry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking inquiry deleted successfully")
}

// AttachKitList uploads the kit list document of an inquiry.
// @Summary Attach a kit list
// @Tags BookingInquiry
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param kit_list formData file true "Kit list (pdf, png or jpeg)"
// @Success 200 {object} response.Data[string] "Kit list URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking-inquiries/{id}/kit-list [post]
// @Security BearerAuth
func (handler *Handler) AttachKitList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachKitList")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(model.FieldKitList)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("kit_list file is required"))

		return
	}
	defer file.Close()

	req := dto.AttachKitListRequest{KitList: fileHeader, KitListFile: file}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	url, err := handler.service.AttachKitList(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach kit list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, url)
}

// SubmitInquiry creates the calendar event and e-mails the kit list.
// @Summary Submit a booking inquiry
// @Tags BookingInquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking-inquiries/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitInquiry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	msg, err := handler.service.Submit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to submit booking inquiry")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, msg)
}

// GetCalendarEvents lists calendar events, optionally from a start date.
// @Summary Get calendar events
// @Tags BookingInquiry
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_inquiry_id query string false "Filter by inquiry"
// @Param from query string false "Events starting on or after (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetCalendarEventsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/calendar-events [get]
// @Security BearerAuth
func (handler *Handler) GetCalendarEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendarEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if inquiry := query.Get(model.FieldBookingInquiryID); inquiry != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingInquiryID,
			Operator: gDto.FilterOperatorEq,
			Value:    inquiry,
			Table:    model.EventTableName,
		})
	}

	if from := query.Get("from"); from != constant.Empty {
		if err := validator.ValidateVar(from, "datetime=2006-01-02"); err != nil {
			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStartsOn,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
			Table:    model.EventTableName,
		})
	}

	events, err := handler.service.GetCalendarEvents(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}
