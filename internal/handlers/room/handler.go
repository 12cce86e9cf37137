package room

import (
	"net/http"

	"pms/infras/otel"
	"pms/internal/domains/room/model"
	"pms/internal/domains/room/model/dto"
	"pms/internal/domains/room/service"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	gModel "pms/shared/model"
	"pms/shared/validator"
	"pms/transport/http/response"

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
	router.Post("/rooms", handler.CreateRoom)
	router.Get("/rooms", handler.GetRooms)
	router.Get("/rooms/{id}", handler.GetRoomByID)
	router.Patch("/rooms/{id}", handler.UpdateRoom)
	router.Patch("/rooms/{id}/status", handler.UpdateRoomStatus)
	router.Delete("/rooms/{id}", handler.DeleteRoom)
}

func formInt(request *http.Request, field string) (*int, error) {
	value := request.FormValue(field)
	if value == constant.Empty {
		return nil, nil // nolint:nilnil
	}

	number, err := shared.ConvertStringToInt(value)
	if err != nil {
		return nil, failure.BadRequestFromString(field + " must be a number") // nolint:wrapcheck
	}

	return &number, nil
}

func formFloat(request *http.Request, field string) (*float64, error) {
	value := request.FormValue(field)
	if value == constant.Empty {
		return nil, nil // nolint:nilnil
	}

	number, err := shared.ConvertStringToFloat(value)
	if err != nil {
		return nil, failure.BadRequestFromString(field + " must be a number") // nolint:wrapcheck
	}

	return &number, nil
}

func formString(request *http.Request, field string) *string {
	if _, ok := request.MultipartForm.Value[field]; !ok {
		return nil
	}

	value := request.FormValue(field)

	return &value
}

func parseCreateRequest(request *http.Request) (dto.CreateRoomRequest, error) {
	req := dto.CreateRoomRequest{
		Number:    request.FormValue(model.FieldNumber),
		Type:      request.FormValue(model.FieldType),
		Status:    request.FormValue(model.FieldStatus),
		Notes:     request.FormValue(model.FieldNotes),
		Amenities: dto.SplitAmenities(request.FormValue(model.FieldAmenities)),
	}

	capacity, err := formInt(request, model.FieldCapacity)
	if err != nil {
		return req, err
	}

	if capacity != nil {
		req.Capacity = *capacity
	}

	floor, err := formInt(request, model.FieldFloor)
	if err != nil {
		return req, err
	}

	if floor != nil {
		req.Floor = *floor
	}

	price, err := formFloat(request, model.FieldBasePrice)
	if err != nil {
		return req, err
	}

	if price != nil {
		req.BasePrice = *price
	}

	if _, fileHeader, err := request.FormFile(model.FieldImage); err == nil {
		req.Image = fileHeader
	}

	return req, nil
}

func parseUpdateRequest(request *http.Request) (dto.UpdateRoomRequest, error) {
	req := dto.UpdateRoomRequest{
		Number: request.FormValue(model.FieldNumber),
		Type:   request.FormValue(model.FieldType),
		Notes:  formString(request, model.FieldNotes),
	}

	var err error

	if req.Capacity, err = formInt(request, model.FieldCapacity); err != nil {
		return req, err
	}

	if req.Floor, err = formInt(request, model.FieldFloor); err != nil {
		return req, err
	}

	if req.BasePrice, err = formFloat(request, model.FieldBasePrice); err != nil {
		return req, err
	}

	if amenities := formString(request, model.FieldAmenities); amenities != nil {
		list := gModel.StringList(dto.SplitAmenities(*amenities))
		req.Amenities = &list
	}

	if _, fileHeader, err := request.FormFile(model.FieldImage); err == nil {
		req.Image = fileHeader
	}

	return req, nil
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a room. Amenities are sent as a comma separated list.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param number formData string true "Room number"
// @Param type formData string true "Room type" Enums(standard, deluxe, suite, presidential)
// @Param capacity formData integer true "Guest capacity"
// @Param base_price formData number false "Nightly base price"
// @Param status formData string false "Initial status" Enums(available, occupied, cleaning, maintenance, out_of_order)
// @Param floor formData integer false "Floor"
// @Param amenities formData string false "Comma separated amenities"
// @Param notes formData string false "Notes"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req, err := parseCreateRequest(r)
	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms retrieves rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve rooms with optional search, filters and pagination. "all" disables a filter.
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Search number, type or amenities"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param floor query integer false "Filter by floor"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.ApplySort(dto.SortColumns, dto.DefaultSort, gDto.SortDirAsc)

	query := r.URL.Query()

	req := dto.ListRoomsRequest{
		Search: query.Get(constant.RequestParamSearch),
		Status: query.Get(model.FieldStatus),
		Type:   query.Get(model.FieldType),
	}

	if floor := query.Get(model.FieldFloor); floor != constant.Empty {
		value, err := shared.ConvertStringToInt(floor)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("floor must be a number"))

			return
		}

		req.Floor = &value
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, req.ToFilter())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Only the fields present in the form are changed. Status has its own endpoint.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param number formData string false "Room number"
// @Param type formData string false "Room type"
// @Param capacity formData integer false "Guest capacity"
// @Param base_price formData number false "Nightly base price"
// @Param floor formData integer false "Floor"
// @Param amenities formData string false "Comma separated amenities"
// @Param notes formData string false "Notes"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req, err := parseUpdateRequest(r)
	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// UpdateRoomStatus sets the housekeeping status of a room.
// @Summary Update room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomStatusRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateRoomStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room status updated to " + req.Status)

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Rooms with bookings cannot be deleted.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
