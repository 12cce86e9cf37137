// Package availability answers which booking, if any, holds a room on a calendar day,
// and derives the calendar window, navigation and room selection built on that answer.
package availability

import (
	"slices"
	"time"

	bookingModel "pms/internal/domains/booking/model"
	roomModel "pms/internal/domains/room/model"
	"pms/shared/timezone"
)

const (
	ViewWeek  = "week"
	ViewMonth = "month"

	// WeekSpan is the number of days shown by the week view.
	WeekSpan = 14
)

const (
	DirectionPrevious = "previous"
	DirectionNext     = "next"
	DirectionToday    = "today"
)

const (
	CellAvailable   = "available"
	CellCheckIn     = "check_in"
	CellCheckOut    = "check_out"
	CellTurnover    = "turnover"
	CellOccupied    = "occupied"
	CellMaintenance = "maintenance"
	CellOutOfOrder  = "out_of_order"
)

// Result is the resolver answer for one room and day. Booking is set only when Booked.
type Result struct {
	Booked     bool
	IsCheckIn  bool
	IsCheckOut bool
	Booking    bookingModel.Booking
}

func sameDay(a, b time.Time) bool {
	return timezone.DateOf(a).Equal(timezone.DateOf(b))
}

// Resolve returns the first booking of roomID, in the given order, whose stay covers date.
// A stay covers its check-in day, its check-out day and every day strictly between.
func Resolve(roomID string, date time.Time, bookings []bookingModel.Booking) Result {
	day := timezone.DateOf(date)

	for _, booking := range bookings {
		if booking.RoomID != roomID {
			continue
		}

		checkIn := timezone.DateOf(booking.CheckIn)
		checkOut := timezone.DateOf(booking.CheckOut)

		if day.Equal(checkIn) || day.Equal(checkOut) || (checkIn.Before(day) && day.Before(checkOut)) {
			return Result{
				Booked:     true,
				IsCheckIn:  day.Equal(checkIn),
				IsCheckOut: day.Equal(checkOut),
				Booking:    booking,
			}
		}
	}

	return Result{}
}

// Window lists the days shown for anchor: WeekSpan days from the anchor, or the anchor's whole month.
func Window(anchor time.Time, view string) []time.Time {
	start := timezone.DateOf(anchor)

	if view == ViewMonth {
		start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		days := make([]time.Time, 0, 31)
		for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
			days = append(days, day)
		}

		return days
	}

	days := make([]time.Time, WeekSpan)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	return days
}

// Navigate moves the anchor one page. Month paging starts from day 1 so it never skips a short month.
func Navigate(anchor time.Time, view, direction string, today time.Time) time.Time {
	anchor = timezone.DateOf(anchor)

	step := 1

	switch direction {
	case DirectionToday:
		return timezone.DateOf(today)
	case DirectionPrevious:
		step = -1
	case DirectionNext:
	default:
		return anchor
	}

	if view == ViewMonth {
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)

		return first.AddDate(0, step, 0)
	}

	return anchor.AddDate(0, 0, step*WeekSpan)
}

// Range is a half-open stay [CheckIn, CheckOut).
type Range struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (r Range) overlaps(booking bookingModel.Booking) bool {
	return timezone.DateOf(booking.CheckIn).Before(timezone.DateOf(r.CheckOut)) &&
		timezone.DateOf(booking.CheckOut).After(timezone.DateOf(r.CheckIn))
}

// SelectableRooms filters rooms offered for a new booking.
// Without a range only rooms whose status is available qualify. With a range, any room that is
// in service and has no active booking overlapping the range qualifies.
func SelectableRooms(rooms []roomModel.Room, bookings []bookingModel.Booking, stay *Range) []roomModel.Room {
	selectable := []roomModel.Room{}

	for _, room := range rooms {
		if stay == nil {
			if room.Status == roomModel.StatusAvailable {
				selectable = append(selectable, room)
			}

			continue
		}

		if room.OutOfService() {
			continue
		}

		taken := slices.ContainsFunc(bookings, func(booking bookingModel.Booking) bool {
			return booking.RoomID == room.ID && booking.Active() && stay.overlaps(booking)
		})

		if !taken {
			selectable = append(selectable, room)
		}
	}

	return selectable
}

// Cell renders the state of room on date. Maintenance and out-of-order show only on unbooked days.
func Cell(room roomModel.Room, date time.Time, bookings []bookingModel.Booking) (string, Result) {
	result := Resolve(room.ID, date, bookings)

	if !result.Booked {
		switch room.Status {
		case roomModel.StatusMaintenance:
			return CellMaintenance, result
		case roomModel.StatusOutOfOrder:
			return CellOutOfOrder, result
		default:
			return CellAvailable, result
		}
	}

	switch {
	case result.IsCheckIn && result.IsCheckOut:
		return CellTurnover, result
	case result.IsCheckOut && startsOn(room.ID, date, result.Booking.ID, bookings):
		return CellTurnover, result
	case result.IsCheckIn && endsOn(room.ID, date, result.Booking.ID, bookings):
		return CellTurnover, result
	case result.IsCheckOut:
		return CellCheckOut, result
	case result.IsCheckIn:
		return CellCheckIn, result
	default:
		return CellOccupied, result
	}
}

func startsOn(roomID string, date time.Time, exceptID string, bookings []bookingModel.Booking) bool {
	return slices.ContainsFunc(bookings, func(booking bookingModel.Booking) bool {
		return booking.RoomID == roomID && booking.ID != exceptID && sameDay(booking.CheckIn, date)
	})
}

func endsOn(roomID string, date time.Time, exceptID string, bookings []bookingModel.Booking) bool {
	return slices.ContainsFunc(bookings, func(booking bookingModel.Booking) bool {
		return booking.RoomID == roomID && booking.ID != exceptID && sameDay(booking.CheckOut, date)
	})
}

// OccupiedNight reports whether a guest sleeps in the room on the night starting at date.
func OccupiedNight(state string) bool {
	return state == CellCheckIn || state == CellOccupied || state == CellTurnover
}
