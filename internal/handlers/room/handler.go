package room

import (
	"net/http"
	"safari/infras/otel"
	"safari/internal/domains/room/model"
	"safari/internal/domains/room/model/dto"
	"safari/internal/domains/room/service"
	"safari/shared"
	"safari/shared/constant"
	gDto "safari/shared/dto"
	"safari/shared/validator"
	"safari/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{room_number}", handler.GetRoom)
		routerGroup.Patch("/{room_number}", handler.UpdateRoom)
		routerGroup.Delete("/{room_number}", handler.DeleteRoom)
		routerGroup.Patch("/{room_number}/status", handler.ChangeRoomStatus)
		routerGroup.Post("/{room_number}/mark-cleaned", handler.MarkRoomCleaned)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details. New rooms start out Available.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param room_number formData string true "Room number"
// @Param room_name formData string true "Room name"
// @Param room_type formData string false "Room type"
// @Param capacity formData integer false "Room capacity"
// @Param price formData number false "Nightly price"
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		RoomNumber: request.FormValue(model.FieldRoomNumber),
		RoomName:   request.FormValue(model.FieldRoomName),
		RoomType:   request.FormValue(model.FieldRoomType),
	}

	if capStr := request.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	if priceStr := request.FormValue(model.FieldPrice); priceStr != "" {
		if p, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.Price = p
		}
	}

	if activeStr := request.FormValue(model.FieldActive); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile(model.FieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_name query string false "Filter by name"
// @Param room_type query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomName,
				Operator: gDto.FilterOperatorLike,
				Value:    query.Get(model.FieldRoomName),
				Table:    model.TableName,
			},
		},
	}

	if roomType := query.Get(model.FieldRoomType); roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if status := query.Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(query.Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailableRooms lists rooms that can be booked for a stay.
// @Summary Get available rooms
// @Description Rooms that are Available, active and free of overlapping availability records.
// @Tags Room
// @Produce json
// @Param check_in_date query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.RoomResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	req := dto.AvailableRoomsRequest{
		CheckInDate:  r.URL.Query().Get("check_in_date"),
		CheckOutDate: r.URL.Query().Get("check_out_date"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAvailableRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoom retrieves a room by its number.
// @Summary Get a room
// @Description Retrieve a room by its room number.
// @Tags Room
// @Accept json
// @Produce json
// @Param room_number path string true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{room_number} [get]
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	room, err := handler.service.Get(ctx, roomNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room.
// @Summary Update a room
// @Description Update the details of an existing room. Status is changed through the status endpoint.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param room_number path string true "Room number"
// @Param room_name formData string false "Room name"
// @Param room_type formData string false "Room type"
// @Param capacity formData integer false "Room capacity"
// @Param price formData number false "Nightly price"
// @Param active formData boolean false "Room active status"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{room_number} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		RoomName: r.FormValue(model.FieldRoomName),
		RoomType: r.FormValue(model.FieldRoomType),
	}

	if capStr := r.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	if priceStr := r.FormValue(model.FieldPrice); priceStr != "" {
		if p, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.Price = &p
		}
	}

	if activeStr := r.FormValue(model.FieldActive); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile(model.FieldImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, roomNumber); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room.
// @Summary Delete a room
// @Description Delete a room using its room number.
// @Tags Room
// @Produce json
// @Param room_number path string true "Room number"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{room_number} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	if err := handler.service.Delete(ctx, roomNumber); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// ChangeRoomStatus overrides the status of a room.
// @Summary Change room status
// @Tags Room
// @Accept json
// @Produce json
// @Param room_number path string true "Room number"
// @Param request body dto.ChangeStatusRequest true "Target status"
// @Success 200 {object} response.Message "Room status updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{room_number}/status [patch]
// @Security BearerAuth
func (handler *Handler) ChangeRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeRoomStatus")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	var req dto.ChangeStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangeStatus(ctx, roomNumber, nil, req.Status); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change room status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room "+roomNumber+" is now "+req.Status)
}

// MarkRoomCleaned confirms a room has been cleaned after maintenance.
// @Summary Mark a room as cleaned
// @Description Moves an Under Maintenance room back to Available and closes its pending maintenance logs.
// @Tags Room
// @Produce json
// @Param room_number path string true "Room number"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{room_number}/mark-cleaned [post]
// @Security BearerAuth
func (handler *Handler) MarkRoomCleaned(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRoomCleaned")
	defer scope.End()

	roomNumber := chi.URLParam(r, constant.RequestParamRoomNumber)

	msg, err := handler.service.MarkCleaned(ctx, roomNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark room cleaned")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, msg)
}
