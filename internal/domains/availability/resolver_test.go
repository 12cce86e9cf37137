package availability_test

import (
	"testing"
	"time"

	"pms/internal/domains/availability"
	bookingModel "pms/internal/domains/booking/model"
	roomModel "pms/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

func stay(id, roomID, checkIn, checkOut, status string) bookingModel.Booking {
	return bookingModel.Booking{ID: id, RoomID: roomID, CheckIn: day(checkIn), CheckOut: day(checkOut), Status: status}
}

func TestResolve(t *testing.T) {
	bookings := []bookingModel.Booking{
		stay("b1", "room-2", "2025-01-10", "2025-01-13", bookingModel.StatusCheckedIn),
	}

	tests := []struct {
		name     string
		roomID   string
		date     time.Time
		want     availability.Result
		wantBook string
	}{
		{name: "check-in day", roomID: "room-2", date: day("2025-01-10"), want: availability.Result{Booked: true, IsCheckIn: true}, wantBook: "b1"},
		{name: "middle day", roomID: "room-2", date: day("2025-01-11"), want: availability.Result{Booked: true}, wantBook: "b1"},
		{name: "check-out day", roomID: "room-2", date: day("2025-01-13"), want: availability.Result{Booked: true, IsCheckOut: true}, wantBook: "b1"},
		{name: "day after", roomID: "room-2", date: day("2025-01-14"), want: availability.Result{}},
		{name: "day before", roomID: "room-2", date: day("2025-01-09"), want: availability.Result{}},
		{name: "other room", roomID: "room-3", date: day("2025-01-11"), want: availability.Result{}},
		{
			name:     "time of day ignored",
			roomID:   "room-2",
			date:     time.Date(2025, 1, 13, 23, 59, 0, 0, time.UTC),
			want:     availability.Result{Booked: true, IsCheckOut: true},
			wantBook: "b1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.Resolve(tt.roomID, tt.date, bookings)

			assert.Equal(t, tt.want.Booked, got.Booked)
			assert.Equal(t, tt.want.IsCheckIn, got.IsCheckIn)
			assert.Equal(t, tt.want.IsCheckOut, got.IsCheckOut)
			assert.Equal(t, tt.wantBook, got.Booking.ID)
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	bookings := []bookingModel.Booking{
		stay("early", "room-1", "2025-01-10", "2025-01-13", bookingModel.StatusCheckedOut),
		stay("late", "room-1", "2025-01-13", "2025-01-15", bookingModel.StatusConfirmed),
	}

	got := availability.Resolve("room-1", day("2025-01-13"), bookings)
	assert.Equal(t, "early", got.Booking.ID)
	assert.True(t, got.IsCheckOut)
	assert.False(t, got.IsCheckIn)

	reversed := []bookingModel.Booking{bookings[1], bookings[0]}
	got = availability.Resolve("room-1", day("2025-01-13"), reversed)
	assert.Equal(t, "late", got.Booking.ID)
	assert.True(t, got.IsCheckIn)
}

func TestWindow(t *testing.T) {
	week := availability.Window(time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC), availability.ViewWeek)
	require.Len(t, week, 14)
	assert.Equal(t, day("2025-01-10"), week[0])
	assert.Equal(t, day("2025-01-23"), week[13])

	february := availability.Window(day("2024-02-17"), availability.ViewMonth)
	require.Len(t, february, 29)
	assert.Equal(t, day("2024-02-01"), february[0])
	assert.Equal(t, day("2024-02-29"), february[28])

	january := availability.Window(day("2025-01-31"), availability.ViewMonth)
	assert.Len(t, january, 31)
}

func TestNavigate(t *testing.T) {
	today := day("2025-06-15")

	tests := []struct {
		name      string
		anchor    string
		view      string
		direction string
		want      string
	}{
		{name: "week forward", anchor: "2025-01-10", view: availability.ViewWeek, direction: availability.DirectionNext, want: "2025-01-24"},
		{name: "week back", anchor: "2025-01-10", view: availability.ViewWeek, direction: availability.DirectionPrevious, want: "2024-12-27"},
		{name: "month forward from the 31st", anchor: "2025-01-31", view: availability.ViewMonth, direction: availability.DirectionNext, want: "2025-02-01"},
		{name: "month back across year", anchor: "2025-01-20", view: availability.ViewMonth, direction: availability.DirectionPrevious, want: "2024-12-01"},
		{name: "today", anchor: "2025-01-10", view: availability.ViewMonth, direction: availability.DirectionToday, want: "2025-06-15"},
		{name: "unknown direction keeps anchor", anchor: "2025-01-10", view: availability.ViewWeek, direction: "sideways", want: "2025-01-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.Navigate(day(tt.anchor), tt.view, tt.direction, today)

			assert.Equal(t, day(tt.want), got)
		})
	}
}

func TestSelectableRooms(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "room-1", Status: roomModel.StatusAvailable},
		{ID: "room-2", Status: roomModel.StatusOccupied},
		{ID: "room-3", Status: roomModel.StatusMaintenance},
		{ID: "room-4", Status: roomModel.StatusCleaning},
	}
	bookings := []bookingModel.Booking{
		stay("b1", "room-1", "2025-01-11", "2025-01-15", bookingModel.StatusConfirmed),
		stay("b2", "room-2", "2025-01-05", "2025-01-10", bookingModel.StatusCheckedIn),
		stay("b3", "room-4", "2025-01-10", "2025-01-12", bookingModel.StatusCancelled),
	}

	ids := func(rooms []roomModel.Room) []string {
		out := []string{}
		for _, room := range rooms {
			out = append(out, room.ID)
		}

		return out
	}

	assert.Equal(t, []string{"room-1"}, ids(availability.SelectableRooms(rooms, bookings, nil)))

	stayRange := &availability.Range{CheckIn: day("2025-01-10"), CheckOut: day("2025-01-12")}
	assert.Equal(t, []string{"room-2", "room-4"}, ids(availability.SelectableRooms(rooms, bookings, stayRange)))

	turnover := &availability.Range{CheckIn: day("2025-01-15"), CheckOut: day("2025-01-16")}
	assert.Equal(t, []string{"room-1", "room-2", "room-4"}, ids(availability.SelectableRooms(rooms, bookings, turnover)))
}

func TestCell(t *testing.T) {
	bookings := []bookingModel.Booking{
		stay("b1", "room-1", "2025-01-10", "2025-01-13", bookingModel.StatusCheckedIn),
		stay("b2", "room-1", "2025-01-13", "2025-01-15", bookingModel.StatusConfirmed),
	}
	room := roomModel.Room{ID: "room-1", Status: roomModel.StatusOccupied}
	broken := roomModel.Room{ID: "room-9", Status: roomModel.StatusOutOfOrder}
	repairing := roomModel.Room{ID: "room-1", Status: roomModel.StatusMaintenance}

	tests := []struct {
		name string
		room roomModel.Room
		date string
		want string
	}{
		{name: "arrival", room: room, date: "2025-01-10", want: availability.CellCheckIn},
		{name: "stay", room: room, date: "2025-01-11", want: availability.CellOccupied},
		{name: "turnover", room: room, date: "2025-01-13", want: availability.CellTurnover},
		{name: "departure", room: room, date: "2025-01-15", want: availability.CellCheckOut},
		{name: "free", room: room, date: "2025-01-16", want: availability.CellAvailable},
		{name: "out of order", room: broken, date: "2025-01-11", want: availability.CellOutOfOrder},
		{name: "booking wins over maintenance", room: repairing, date: "2025-01-11", want: availability.CellOccupied},
		{name: "maintenance when free", room: repairing, date: "2025-01-20", want: availability.CellMaintenance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := availability.Cell(tt.room, day(tt.date), bookings)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOccupiedNight(t *testing.T) {
	assert.True(t, availability.OccupiedNight(availability.CellCheckIn))
	assert.True(t, availability.OccupiedNight(availability.CellTurnover))
	assert.False(t, availability.OccupiedNight(availability.CellCheckOut))
	assert.False(t, availability.OccupiedNight(availability.CellMaintenance))
}
