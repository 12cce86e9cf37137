package service

import (
	"context"
	"fmt"
	"time"

	"pms/config"
	"pms/infras/otel"
	"pms/internal/domains/availability"
	"pms/internal/domains/availability/model/dto"
	bookingModel "pms/internal/domains/booking/model"
	bookingDto "pms/internal/domains/booking/model/dto"
	bookingRepo "pms/internal/domains/booking/repository"
	roomModel "pms/internal/domains/room/model"
	roomDto "pms/internal/domains/room/model/dto"
	roomRepo "pms/internal/domains/room/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	cacheCalendar = shared.BuildCacheKey(constant.CacheKeyAvailability, "calendar")

	// calendarStatuses are the booking statuses drawn on the calendar. Cancelled and no-show
	// stays release their dates, so they never shadow a later booking of the same room.
	calendarStatuses = []string{bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn, bookingModel.StatusCheckedOut}

	roomOrder = gDto.QueryParams{SortBy: roomModel.TableName + "." + roomModel.FieldNumber, SortDir: gDto.SortDirAsc}
)

type Availability interface {
	Calendar(ctx context.Context, req dto.CalendarRequest) (dto.CalendarResponse, error)
	RoomDay(ctx context.Context, roomID, date string) (dto.RoomDayResponse, error)
	Navigate(ctx context.Context, req dto.NavigateRequest) (dto.NavigateResponse, error)
	SelectableRooms(ctx context.Context, req dto.SelectableRoomsRequest) (dto.SelectableRoomsResponse, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// bookingsBetween loads bookings touching [first, last] in resolver order.
func (s *serviceImpl) bookingsBetween(ctx context.Context, first, last time.Time, statuses []string, roomID string) ([]bookingModel.Booking, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(
		bookingDto.RangeFilter(first.AddDate(0, 0, -1), last.AddDate(0, 0, 1)),
		bookingDto.StatusFilter(statuses...),
	)

	if roomID != constant.Empty {
		filter.Add(gDto.Filter{Field: bookingModel.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName})
	}

	bookings, err := s.bookingRepo.GetAll(ctx, bookingDto.ChronologicalOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for availability")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) Calendar(ctx context.Context, req dto.CalendarRequest) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Calendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	anchor, err := req.Normalize()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	roomFilter := roomDto.ListRoomsRequest{Type: req.Type, Floor: req.Floor}.ToFilter()

	cacheKey := shared.BuildCacheKey(cacheCalendar, req.View, gDto.FormatDay(anchor), req.CacheTag())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for calendar")

		return res, nil
	}

	days := availability.Window(anchor, req.View)

	rooms, err := s.roomRepo.GetAll(ctx, roomOrder, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for calendar")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingsBetween(ctx, days[0], days[len(days)-1], calendarStatuses, constant.Empty)
	if err != nil {
		return res, err
	}

	today := timezone.CurrentDate()

	res = dto.CalendarResponse{
		View:     req.View,
		Anchor:   gDto.FormatDay(anchor),
		Previous: gDto.FormatDay(availability.Navigate(anchor, req.View, availability.DirectionPrevious, today)),
		Next:     gDto.FormatDay(availability.Navigate(anchor, req.View, availability.DirectionNext, today)),
		Days:     dto.Days(days),
		Rows:     make([]dto.RowResponse, len(rooms)),
	}

	for i, room := range rooms {
		row := dto.RowResponse{
			RoomID:     room.ID,
			RoomNumber: room.Number,
			RoomType:   room.Type,
			Floor:      room.Floor,
			RoomStatus: room.Status,
			Cells:      make([]dto.CellResponse, len(days)),
		}

		for j, day := range days {
			state, result := availability.Cell(room, day, bookings)
			row.Cells[j].FromResult(day, state, result)
		}

		res.Rows[i] = row
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) RoomDay(ctx context.Context, roomID, date string) (res dto.RoomDayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.RoomDay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day := timezone.CurrentDate()
	if date != constant.Empty {
		if day, err = timezone.ParseDate(date); err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	bookings, err := s.bookingsBetween(ctx, day, day, calendarStatuses, room.ID)
	if err != nil {
		return res, err
	}

	state, result := availability.Cell(room, day, bookings)
	res.FromResult(room.ID, day, state, result)

	return res, nil
}

func (s *serviceImpl) Navigate(ctx context.Context, req dto.NavigateRequest) (res dto.NavigateResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Navigate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	anchor, err := req.Normalize()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	next := availability.Navigate(anchor, req.View, req.Direction, timezone.CurrentDate())

	res = dto.NavigateResponse{
		View:   req.View,
		Anchor: gDto.FormatDay(next),
		Days:   dto.Days(availability.Window(next, req.View)),
	}

	return res, nil
}

func (s *serviceImpl) SelectableRooms(ctx context.Context, req dto.SelectableRoomsRequest) (res dto.SelectableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.SelectableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.roomRepo.GetAll(ctx, roomOrder, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for selection")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	var (
		stay     *availability.Range
		bookings []bookingModel.Booking
	)

	if req.HasRange() {
		checkIn, checkOut, err := bookingDto.ParseStay(req.CheckIn, req.CheckOut)
		if err != nil {
			return res, err
		}

		stay = &availability.Range{CheckIn: checkIn, CheckOut: checkOut}

		if bookings, err = s.bookingsBetween(ctx, checkIn, checkOut, bookingModel.ActiveStatuses, constant.Empty); err != nil {
			return res, err
		}

		res.CheckIn = gDto.FormatDay(checkIn)
		res.CheckOut = gDto.FormatDay(checkOut)
	}

	selectable := availability.SelectableRooms(rooms, bookings, stay)

	res.Rooms = make([]roomDto.RoomResponse, len(selectable))
	for i, room := range selectable {
		res.Rooms[i].FromModel(room)
	}

	return res, nil
}
