//go:build wireinject
// +build wireinject

package di

import (
	"pms/config"
	"pms/infras/database"
	"pms/infras/jwt"
	"pms/infras/kafka"
	"pms/infras/otel"
	"pms/infras/redis"
	"pms/infras/s3"
	"pms/internal/handlers/health"
	"pms/internal/worker"
	"pms/permissions"
	"pms/shared/cache"
	"pms/transport/http"
	"pms/transport/http/middleware"
	"pms/transport/http/router"

	authService "pms/internal/domains/auth/service"
	availabilityService "pms/internal/domains/availability/service"
	bookingRepository "pms/internal/domains/booking/repository"
	bookingService "pms/internal/domains/booking/service"
	cleaningRepository "pms/internal/domains/cleaning/repository"
	cleaningService "pms/internal/domains/cleaning/service"
	dashboardService "pms/internal/domains/dashboard/service"
	expenseRepository "pms/internal/domains/expense/repository"
	expenseService "pms/internal/domains/expense/service"
	guestRepository "pms/internal/domains/guest/repository"
	guestService "pms/internal/domains/guest/service"
	roomRepository "pms/internal/domains/room/repository"
	roomService "pms/internal/domains/room/service"
	staffRepository "pms/internal/domains/staff/repository"
	staffService "pms/internal/domains/staff/service"
	userRepository "pms/internal/domains/user/repository"
	userService "pms/internal/domains/user/service"

	authHandler "pms/internal/handlers/auth"
	availabilityHandler "pms/internal/handlers/availability"
	bookingHandler "pms/internal/handlers/booking"
	cleaningHandler "pms/internal/handlers/cleaning"
	dashboardHandler "pms/internal/handlers/dashboard"
	expenseHandler "pms/internal/handlers/expense"
	guestHandler "pms/internal/handlers/guest"
	roomHandler "pms/internal/handlers/room"
	staffHandler "pms/internal/handlers/staff"
	userHandler "pms/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	roomRepository.New,
	guestRepository.New,
	bookingRepository.New,
	cleaningRepository.New,
	expenseRepository.New,
	staffRepository.New,
)

var services = wire.NewSet(
	authService.New,
	userService.New,
	roomService.New,
	guestService.New,
	bookingService.New,
	availabilityService.New,
	dashboardService.New,
	cleaningService.New,
	expenseService.New,
	staffService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	availabilityHandler.New,
	dashboardHandler.New,
	cleaningHandler.New,
	expenseHandler.New,
	staffHandler.New,
	health.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		config.Get,
		database.New,
		otel.New,
		redis.New,
		kafka.New,
		sharedHelpers,
		cleaningRepository.New,
		roomRepository.New,
		cleaningService.New,
		worker.New,
	)

	return &worker.Worker{}
}

func InitializeConsole() *Console {
	wire.Build(
		config.Get,
		database.New,
		otel.New,
		redis.New,
		kafka.New,
		s3.New,
		sharedHelpers,
		userRepository.New,
		roomRepository.New,
		guestRepository.New,
		bookingRepository.New,
		userService.New,
		roomService.New,
		guestService.New,
		bookingService.New,
		availabilityService.New,
		wire.Struct(new(Console), "*"),
	)

	return &Console{}
}
