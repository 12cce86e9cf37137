package di

import (
	availabilityService "pms/internal/domains/availability/service"
	bookingService "pms/internal/domains/booking/service"
	guestService "pms/internal/domains/guest/service"
	roomService "pms/internal/domains/room/service"
	userService "pms/internal/domains/user/service"
)

// Console holds the services pmsctl drives without going through HTTP.
type Console struct {
	Availability availabilityService.Availability
	Room         roomService.Room
	Guest        guestService.Guest
	Booking      bookingService.Booking
	User         userService.User
}
