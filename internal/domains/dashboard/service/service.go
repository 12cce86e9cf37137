package service

import (
	"context"
	"fmt"
	"strconv"

	"pms/config"
	"pms/infras/otel"
	bookingModel "pms/internal/domains/booking/model"
	bookingDto "pms/internal/domains/booking/model/dto"
	bookingRepo "pms/internal/domains/booking/repository"
	"pms/internal/domains/dashboard"
	"pms/internal/domains/dashboard/model/dto"
	roomModel "pms/internal/domains/room/model"
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
	cacheMetrics   = shared.BuildCacheKey(constant.CacheKeyDashboard, "metrics")
	cacheUpcoming  = shared.BuildCacheKey(constant.CacheKeyDashboard, "upcoming")
	cacheSummary   = shared.BuildCacheKey(constant.CacheKeyDashboard, "summary")
	cacheOccupancy = shared.BuildCacheKey(constant.CacheKeyDashboard, "occupancy")

	// countedStatuses excludes bookings that never turned into a stay.
	countedStatuses = []string{bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn, bookingModel.StatusCheckedOut}
)

type Dashboard interface {
	Metrics(ctx context.Context, filter string) (dto.MetricsResponse, error)
	Upcoming(ctx context.Context) (dto.UpcomingResponse, error)
	Summary(ctx context.Context) (dto.SummaryResponse, error)
	Occupancy(ctx context.Context, req dto.OccupancyRequest) (dto.OccupancyResponse, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) settings() dashboard.Settings {
	return dashboard.Settings{
		AverageStayNights:  s.cfg.Hotel.AverageStayNights,
		UpcomingWindowDays: s.cfg.Hotel.UpcomingWindowDays,
	}
}

func (s *serviceImpl) load(ctx context.Context, statuses ...string) ([]roomModel.Room, []bookingModel.Booking, error) {
	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for dashboard")

		return nil, nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(bookingDto.StatusFilter(statuses...))

	bookings, err := s.bookingRepo.GetAll(ctx, bookingDto.ChronologicalOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for dashboard")

		return nil, nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return rooms, bookings, nil
}

func cached[T any](ctx context.Context, s *serviceImpl, key string, build func() (T, error)) (res T, err error) {
	if err = s.cache.Get(ctx, key, &res); err == nil {
		log.Info().Str("cacheKey", key).Msg("cache hit for dashboard")

		return res, nil
	}

	if res, err = build(); err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Metrics(ctx context.Context, filter string) (res dto.MetricsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Metrics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err = dashboard.ParseFilter(filter)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	today := timezone.CurrentDate()
	key := shared.BuildCacheKey(cacheMetrics, filter, gDto.FormatDay(today))

	return cached(ctx, s, key, func() (dto.MetricsResponse, error) {
		rooms, bookings, err := s.load(ctx, countedStatuses...)
		if err != nil {
			return dto.MetricsResponse{}, err
		}

		return dto.MetricsResponse{
			Metrics:  dashboard.Compute(filter, rooms, bookings, today, s.settings()),
			Currency: s.cfg.Hotel.Currency,
		}, nil
	})
}

func (s *serviceImpl) Upcoming(ctx context.Context) (res dto.UpcomingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Upcoming")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := timezone.CurrentDate()
	key := shared.BuildCacheKey(cacheUpcoming, gDto.FormatDay(today))

	return cached(ctx, s, key, func() (dto.UpcomingResponse, error) {
		var upcoming dto.UpcomingResponse

		filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
		filter.Add(
			bookingDto.StatusFilter(bookingModel.StatusConfirmed),
			gDto.Filter{
				ArgName:  "upcoming_from",
				Field:    bookingModel.FieldCheckIn,
				Value:    today,
				Operator: gDto.FilterOperatorGreater,
				Table:    bookingModel.TableName,
			},
		)

		bookings, err := s.bookingRepo.GetAll(ctx, bookingDto.ChronologicalOrder, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get upcoming bookings")

			return upcoming, fmt.Errorf("failed to get bookings: %w", err)
		}

		upcoming.FromModels(dashboard.UpcomingArrivals(bookings, today, s.cfg.Hotel.UpcomingListSize))

		return upcoming, nil
	})
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := timezone.CurrentDate()
	key := shared.BuildCacheKey(cacheSummary, gDto.FormatDay(today))

	return cached(ctx, s, key, func() (dto.SummaryResponse, error) {
		rooms, bookings, err := s.load(ctx, countedStatuses...)
		if err != nil {
			return dto.SummaryResponse{}, err
		}

		return dto.SummaryResponse{
			Summary:  dashboard.MonthlySummary(rooms, bookings, today, s.settings()),
			Currency: s.cfg.Hotel.Currency,
		}, nil
	})
}

func (s *serviceImpl) Occupancy(ctx context.Context, req dto.OccupancyRequest) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Occupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if req.Days < 1 || req.Days > dto.MaxSeriesDays {
		return res, failure.BadRequestFromString(fmt.Sprintf("days must be between 1 and %d", dto.MaxSeriesDays)) // nolint:wrapcheck
	}

	today := timezone.CurrentDate()
	key := shared.BuildCacheKey(cacheOccupancy, strconv.Itoa(req.Days), gDto.FormatDay(today))

	return cached(ctx, s, key, func() (dto.OccupancyResponse, error) {
		rooms, bookings, err := s.load(ctx, countedStatuses...)
		if err != nil {
			return dto.OccupancyResponse{}, err
		}

		return dto.OccupancyResponse{
			Days:   req.Days,
			Points: dashboard.OccupancySeries(rooms, bookings, today, req.Days),
		}, nil
	})
}
