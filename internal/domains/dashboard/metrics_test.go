package dashboard_test

import (
	"testing"
	"time"

	bookingModel "pms/internal/domains/booking/model"
	"pms/internal/domains/dashboard"
	roomModel "pms/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

func roomsWithStatuses(statuses ...string) []roomModel.Room {
	rooms := make([]roomModel.Room, len(statuses))
	for i, status := range statuses {
		rooms[i] = roomModel.Room{ID: string(rune('a' + i)), Status: status}
	}

	return rooms
}

var settings = dashboard.Settings{AverageStayNights: 3, UpcomingWindowDays: 7}

func TestOccupancyRate(t *testing.T) {
	tests := []struct {
		name  string
		rooms []roomModel.Room
		want  float64
	}{
		{
			name: "two of five occupied",
			rooms: roomsWithStatuses(
				roomModel.StatusOccupied, roomModel.StatusOccupied, roomModel.StatusAvailable,
				roomModel.StatusCleaning, roomModel.StatusMaintenance,
			),
			want: 40.0,
		},
		{
			name:  "one of three rounds to one decimal",
			rooms: roomsWithStatuses(roomModel.StatusOccupied, roomModel.StatusAvailable, roomModel.StatusAvailable),
			want:  33.3,
		},
		{name: "no rooms", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, dashboard.OccupancyRate(tt.rooms), 0.0001)
		})
	}
}

func TestRevenueEstimate(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Status: bookingModel.StatusCheckedIn, TotalAmount: 300},
		{Status: bookingModel.StatusCheckedOut, TotalAmount: 600},
		{Status: bookingModel.StatusConfirmed, TotalAmount: 900},
		{Status: bookingModel.StatusCancelled, TotalAmount: 1200},
	}

	tests := []struct {
		filter string
		want   float64
	}{
		{dashboard.FilterToday, 300},
		{dashboard.FilterYesterday, 300},
		{dashboard.FilterLast7Days, 2100},
		{dashboard.FilterLast30Days, 9000},
		{dashboard.FilterThisMonth, 9000},
		{dashboard.FilterLastMonth, 9000},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.InDelta(t, tt.want, dashboard.RevenueEstimate(bookings, settings, tt.filter), 0.001)
		})
	}
}

func TestUpcomingCheckIns(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-10")},
		{Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-17")},
		{Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-18")},
		{Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-09")},
		{Status: bookingModel.StatusCheckedIn, CheckIn: day("2025-01-12")},
	}

	assert.Equal(t, 2, dashboard.UpcomingCheckIns(bookings, day("2025-01-10"), settings))
}

func TestPendingCleanings(t *testing.T) {
	rooms := roomsWithStatuses(roomModel.StatusCleaning, roomModel.StatusAvailable, roomModel.StatusCleaning)

	assert.Equal(t, 2, dashboard.PendingCleanings(rooms))
}

func TestParseFilter(t *testing.T) {
	filter, err := dashboard.ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, dashboard.FilterToday, filter)

	filter, err = dashboard.ParseFilter(dashboard.FilterLast7Days)
	require.NoError(t, err)
	assert.Equal(t, dashboard.FilterLast7Days, filter)

	_, err = dashboard.ParseFilter("lastYear")
	assert.ErrorIs(t, err, dashboard.ErrUnknownFilter)
}

func TestTrendsFor(t *testing.T) {
	trends := dashboard.TrendsFor(dashboard.FilterToday)

	assert.Equal(t, dashboard.Trend{Value: 3.2, Direction: dashboard.TrendUp}, trends.Occupancy)
	assert.Equal(t, dashboard.Trend{Value: 2.5, Direction: dashboard.TrendUp}, trends.Revenue)
	assert.Equal(t, dashboard.Trend{Value: 1.8, Direction: dashboard.TrendDown}, trends.Upcoming)
	assert.Equal(t, dashboard.Trend{Value: 12.3, Direction: dashboard.TrendDown}, trends.Cleanings)

	assert.NotEqual(t, trends, dashboard.TrendsFor(dashboard.FilterLastMonth))
}

func TestCompute(t *testing.T) {
	rooms := []roomModel.Room{
		{ID: "r1", Status: roomModel.StatusOccupied},
		{ID: "r2", Status: roomModel.StatusOccupied},
		{ID: "r3", Status: roomModel.StatusAvailable},
		{ID: "r4", Status: roomModel.StatusCleaning},
		{ID: "r5", Status: roomModel.StatusAvailable},
	}
	bookings := []bookingModel.Booking{
		{ID: "b1", RoomID: "r1", Status: bookingModel.StatusCheckedIn, CheckIn: day("2025-01-09"), CheckOut: day("2025-01-12"), TotalAmount: 450},
		{ID: "b2", RoomID: "r3", Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-12"), CheckOut: day("2025-01-14"), TotalAmount: 200},
	}

	metrics := dashboard.Compute(dashboard.FilterToday, rooms, bookings, day("2025-01-10"), settings)

	assert.Equal(t, dashboard.FilterToday, metrics.Filter)
	assert.InDelta(t, 40.0, metrics.OccupancyRate, 0.0001)
	assert.InDelta(t, 20.0, metrics.BookedOccupancyRate, 0.0001)
	assert.InDelta(t, 150.0, metrics.Revenue, 0.001)
	assert.Equal(t, 1, metrics.UpcomingCheckIns)
	assert.Equal(t, 1, metrics.PendingCleanings)
	assert.Equal(t, 5, metrics.TotalRooms)
}

func TestUpcomingArrivals(t *testing.T) {
	bookings := []bookingModel.Booking{
		{ID: "late", Status: bookingModel.StatusConfirmed, CheckIn: day("2025-02-01")},
		{ID: "today", Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-10")},
		{ID: "soon", Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-11")},
		{ID: "staying", Status: bookingModel.StatusCheckedIn, CheckIn: day("2025-01-12")},
		{ID: "next", Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-15")},
	}

	arrivals := dashboard.UpcomingArrivals(bookings, day("2025-01-10"), 2)

	require.Len(t, arrivals, 2)
	assert.Equal(t, "soon", arrivals[0].ID)
	assert.Equal(t, "next", arrivals[1].ID)
}

func TestOccupancySeries(t *testing.T) {
	rooms := []roomModel.Room{{ID: "r1"}, {ID: "r2"}}
	bookings := []bookingModel.Booking{
		{ID: "b1", RoomID: "r1", Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-09"), CheckOut: day("2025-01-11"), TotalAmount: 200},
	}

	points := dashboard.OccupancySeries(rooms, bookings, day("2025-01-10"), 3)

	require.Len(t, points, 3)
	assert.Equal(t, dashboard.Point{Date: "2025-01-08", OccupancyRate: 0, Revenue: 0}, points[0])
	assert.Equal(t, dashboard.Point{Date: "2025-01-09", OccupancyRate: 50, Revenue: 100}, points[1])
	assert.Equal(t, dashboard.Point{Date: "2025-01-10", OccupancyRate: 50, Revenue: 100}, points[2])
}

func TestMonthlySummary(t *testing.T) {
	rooms := []roomModel.Room{{ID: "r1", Status: roomModel.StatusOccupied}, {ID: "r2", Status: roomModel.StatusAvailable}}
	bookings := []bookingModel.Booking{
		{ID: "b1", RoomID: "r1", Status: bookingModel.StatusCheckedIn, CheckIn: day("2025-01-01"), CheckOut: day("2025-01-03"), TotalAmount: 300},
		{ID: "b0", RoomID: "r2", Status: bookingModel.StatusCheckedOut, CheckIn: day("2024-12-20"), CheckOut: day("2024-12-22"), TotalAmount: 0},
	}

	summary := dashboard.MonthlySummary(rooms, bookings, day("2025-01-03"), settings)

	assert.Equal(t, "2025-01", summary.Month)
	assert.InDelta(t, 33.3, summary.OccupancyRate, 0.0001)
	assert.InDelta(t, 3000, summary.Revenue, 0.001)
	assert.InDelta(t, 100, summary.AverageDailyRate, 0.001)
	assert.Equal(t, 1, summary.OccupiedRooms)
	assert.Equal(t, 1, summary.TotalBookings)
}
