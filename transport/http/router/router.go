package router

import (
	"pms/internal/handlers/auth"
	"pms/internal/handlers/availability"
	"pms/internal/handlers/booking"
	"pms/internal/handlers/cleaning"
	"pms/internal/handlers/dashboard"
	"pms/internal/handlers/expense"
	"pms/internal/handlers/guest"
	"pms/internal/handlers/room"
	"pms/internal/handlers/staff"
	"pms/internal/handlers/user"
	"pms/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	Guest        guest.Handler
	Booking      booking.Handler
	Availability availability.Handler
	Dashboard    dashboard.Handler
	Cleaning     cleaning.Handler
	Expense      expense.Handler
	Staff        staff.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every domain under /v1. Route patterns must match the
// paths in permissions.json since RBAC looks them up by pattern.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Cleaning.Router(routerGroup)
		r.DomainHandlers.Expense.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
