package availability

import (
	"net/http"

	"pms/infras/otel"
	"pms/internal/domains/availability/model/dto"
	"pms/internal/domains/availability/service"
	"pms/shared"
	"pms/shared/constant"
	"pms/shared/failure"
	"pms/shared/validator"
	"pms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

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
	router.Get("/availability/calendar", handler.Calendar)
	router.Get("/availability/rooms/{id}", handler.RoomDay)
	router.Get("/availability/selectable-rooms", handler.SelectableRooms)
	router.Get("/availability/navigate", handler.Navigate)
}

// Calendar returns the room by day grid for a week or month.
// @Summary Availability calendar
// @Tags Availability
// @Produce json
// @Param anchor query string false "Any day inside the period, YYYY-MM-DD; defaults to today"
// @Param view query string false "week or month" Enums(week, month)
// @Param type query string false "Room type, all for none"
// @Param floor query integer false "Floor"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/calendar [get]
// @Security BearerAuth
func (handler *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Calendar")
	defer scope.End()

	query := r.URL.Query()

	req := dto.CalendarRequest{
		Anchor: query.Get("anchor"),
		View:   query.Get("view"),
		Type:   query.Get("type"),
	}

	if floor := query.Get("floor"); floor != constant.Empty {
		value, err := shared.ConvertStringToInt(floor)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("floor must be a number"))

			return
		}

		req.Floor = &value
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate calendar request")

		response.WithError(w, err)

		return
	}

	calendar, err := handler.service.Calendar(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, calendar)
}

// RoomDay reports the state of one room on one day.
// @Summary Room availability for a day
// @Tags Availability
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string false "YYYY-MM-DD; defaults to today"
// @Success 200 {object} response.Data[dto.RoomDayResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) RoomDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RoomDay")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	if date != constant.Empty {
		if err := validator.ValidateVar(date, "day"); err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("date must be a date in YYYY-MM-DD format"))

			return
		}
	}

	day, err := handler.service.RoomDay(ctx, chi.URLParam(r, constant.RequestParamID), date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve room availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, day)
}

// SelectableRooms lists rooms that can take a new booking.
// @Summary Rooms open for booking
// @Description Without a range every room that is not out of service is returned.
// @Tags Availability
// @Produce json
// @Param check_in query string false "YYYY-MM-DD"
// @Param check_out query string false "YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.SelectableRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/selectable-rooms [get]
// @Security BearerAuth
func (handler *Handler) SelectableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectableRooms")
	defer scope.End()

	query := r.URL.Query()

	req := dto.SelectableRoomsRequest{
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate selectable rooms request")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.SelectableRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list selectable rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// Navigate moves the calendar window.
// @Summary Navigate the calendar
// @Tags Availability
// @Produce json
// @Param anchor query string false "Current anchor, YYYY-MM-DD"
// @Param view query string false "week or month" Enums(week, month)
// @Param direction query string true "previous, next or today" Enums(previous, next, today)
// @Success 200 {object} response.Data[dto.NavigateResponse]
// @Failure 400 {object} response.Error
// @Router /v1/availability/navigate [get]
// @Security BearerAuth
func (handler *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Navigate")
	defer scope.End()

	query := r.URL.Query()

	req := dto.NavigateRequest{
		Anchor:    query.Get("anchor"),
		View:      query.Get("view"),
		Direction: query.Get("direction"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate navigate request")

		response.WithError(w, err)

		return
	}

	window, err := handler.service.Navigate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to navigate calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, window)
}
