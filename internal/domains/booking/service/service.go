package service

import (
	"context"
	"fmt"
	"time"

	"pms/config"
	"pms/infras/kafka"
	"pms/infras/otel"
	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/model/dto"
	"pms/internal/domains/booking/repository"
	guestModel "pms/internal/domains/guest/model"
	guestRepo "pms/internal/domains/guest/repository"
	roomModel "pms/internal/domains/room/model"
	roomRepo "pms/internal/domains/room/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	errBookingNotFound = "booking not found"
	errRoomOverlap     = "room is already booked for the selected dates"
)

// roomStatusOnEnter is the room status set when a booking enters a status.
var roomStatusOnEnter = map[string]string{
	model.StatusCheckedIn:  roomModel.StatusOccupied,
	model.StatusCheckedOut: roomModel.StatusCleaning,
}

// roomStatusOnLeave is the status of a room an in-house guest no longer holds.
const roomStatusOnLeave = roomModel.StatusCleaning

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Transition(ctx context.Context, id, status string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		kafka:     kafka,
	}
}

func (s *serviceImpl) room(ctx context.Context, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) guest(ctx context.Context, id string) (guestModel.Guest, error) {
	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(id, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return guest, failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
	}

	return guest, nil
}

func checkOccupancy(room roomModel.Room, adults, children int) error {
	if adults+children > room.Capacity {
		return failure.BadRequestFromString(fmt.Sprintf("room %s holds at most %d guests", room.Number, room.Capacity)) // nolint:wrapcheck
	}

	return nil
}

// ensureFree fails with a conflict when an active booking of roomID overlaps [checkIn, checkOut).
func (s *serviceImpl) ensureFree(ctx context.Context, tx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeID string) error {
	taken, err := s.repo.ExistTx(ctx, tx, dto.OverlapFilter(roomID, checkIn, checkOut, excludeID))
	if err != nil {
		return fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if taken {
		return failure.Conflict(errRoomOverlap) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, tx *sqlx.Tx, roomID, status, user string) error {
	fields := map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.roomRepo.UpdateTx(ctx, tx, fields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := dto.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	room, err := s.room(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if room.OutOfService() {
		return res, failure.Conflictf("room %s is %s", room.Number, room.Status) // nolint:wrapcheck
	}

	if err = checkOccupancy(room, req.Adults, req.Children); err != nil {
		return res, err
	}

	guest, err := s.guest(ctx, req.GuestID)
	if err != nil {
		return res, err
	}

	total := room.BasePrice * float64(model.Nights(checkIn, checkOut))
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}

	booking := req.ToModel(user, guest, checkIn, checkOut, total)

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.ensureFree(ctx, tx, booking.RoomID, checkIn, checkOut, constant.Empty); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if status, ok := roomStatusOnEnter[booking.Status]; ok {
			return s.setRoomStatus(ctx, tx, booking.RoomID, status, user)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.invalidate(ctx, constant.Empty)
	s.publish(ctx, model.EventCreated, booking, user)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	checkIn, checkOut := dto.FormatDayPair(current.CheckIn, current.CheckOut, req.CheckIn, req.CheckOut)

	in, out, err := dto.ParseStay(checkIn, checkOut)
	if err != nil {
		return err
	}

	roomID := current.RoomID
	if req.RoomID != constant.Empty {
		roomID = req.RoomID
	}

	adults, children := current.Adults, current.Children
	if req.Adults != nil {
		adults = *req.Adults
	}

	if req.Children != nil {
		children = *req.Children
	}

	room, err := s.room(ctx, roomID)
	if err != nil {
		return err
	}

	moved := roomID != current.RoomID

	if moved && current.Active() && room.OutOfService() {
		return failure.Conflictf("room %s is %s", room.Number, room.Status) // nolint:wrapcheck
	}

	if err = checkOccupancy(room, adults, children); err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)
	fields[model.FieldCheckIn] = in
	fields[model.FieldCheckOut] = out

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if current.Active() && req.ChangesStay() {
			if err := s.ensureFree(ctx, tx, roomID, in, out, id); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if !moved || current.Status != model.StatusCheckedIn {
			return nil
		}

		// an in-house guest changing rooms frees the old one for housekeeping
		if err := s.setRoomStatus(ctx, tx, current.RoomID, roomStatusOnLeave, user); err != nil {
			return err
		}

		return s.setRoomStatus(ctx, tx, roomID, roomModel.StatusOccupied, user)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// Transition moves a booking along its lifecycle and keeps the room status in step.
func (s *serviceImpl) Transition(ctx context.Context, id, status string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !model.CanTransition(booking.Status, status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, status)) // nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if roomStatus, ok := roomStatusOnEnter[status]; ok {
			return s.setRoomStatus(ctx, tx, booking.RoomID, roomStatus, user)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to transition booking")

		return res, err
	}

	booking.Status = status
	booking.ModifiedAt = now
	booking.ModifiedBy = user

	s.invalidate(ctx, id)

	if event, ok := model.EventFor(status); ok {
		s.publish(ctx, event, booking, user)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if booking.Status != model.StatusCheckedIn {
			return nil
		}

		return s.setRoomStatus(ctx, tx, booking.RoomID, roomStatusOnLeave, user)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// publish sends a lifecycle event without blocking or failing the request.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking, user string) {
	event := model.Event{
		Type:       eventType,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		GuestID:    booking.GuestID,
		GuestName:  booking.GuestName,
		CheckIn:    gDto.FormatDay(booking.CheckIn),
		CheckOut:   gDto.FormatDay(booking.CheckOut),
		Status:     booking.Status,
		Actor:      user,
		OccurredAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Booking, kafka.Message{Key: booking.RoomID, Value: event}); err != nil {
			log.Error().Err(err).Str("event", eventType).Str("booking", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyRoom)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyAvailability)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyDashboard)
	}()
}
