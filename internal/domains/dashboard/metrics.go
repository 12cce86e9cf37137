// Package dashboard aggregates rooms and bookings into the figures shown on the dashboard.
package dashboard

import (
	"errors"
	"math"
	"time"

	"pms/internal/domains/availability"
	bookingModel "pms/internal/domains/booking/model"
	bookingDto "pms/internal/domains/booking/model/dto"
	roomModel "pms/internal/domains/room/model"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/timezone"
)

const (
	FilterToday      = "today"
	FilterYesterday  = "yesterday"
	FilterLast7Days  = "last7days"
	FilterLast30Days = "last30days"
	FilterThisMonth  = "thisMonth"
	FilterLastMonth  = "lastMonth"
)

const (
	TrendUp   = "up"
	TrendDown = "down"

	// summaryDays divides monthly revenue into the average daily rate.
	summaryDays = 30
)

var ErrUnknownFilter = errors.New("unknown time filter")

// revenueMultipliers scale the daily revenue estimate to each filter.
var revenueMultipliers = map[string]float64{
	FilterToday:      1,
	FilterYesterday:  1,
	FilterLast7Days:  7,
	FilterLast30Days: 30,
	FilterThisMonth:  30,
	FilterLastMonth:  30,
}

type Trend struct {
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
}

type Trends struct {
	Occupancy Trend `json:"occupancy"`
	Revenue   Trend `json:"revenue"`
	Upcoming  Trend `json:"upcoming"`
	Cleanings Trend `json:"cleanings"`
}

// trendTable is configuration data; trends are not computed from history.
var trendTable = map[string]Trends{
	FilterToday: {
		Occupancy: Trend{3.2, TrendUp}, Revenue: Trend{2.5, TrendUp},
		Upcoming: Trend{1.8, TrendDown}, Cleanings: Trend{12.3, TrendDown},
	},
	FilterYesterday: {
		Occupancy: Trend{1.4, TrendDown}, Revenue: Trend{0.8, TrendUp},
		Upcoming: Trend{2.6, TrendUp}, Cleanings: Trend{5.1, TrendDown},
	},
	FilterLast7Days: {
		Occupancy: Trend{4.7, TrendUp}, Revenue: Trend{6.2, TrendUp},
		Upcoming: Trend{3.3, TrendDown}, Cleanings: Trend{8.4, TrendDown},
	},
	FilterLast30Days: {
		Occupancy: Trend{2.9, TrendUp}, Revenue: Trend{9.6, TrendUp},
		Upcoming: Trend{0.7, TrendUp}, Cleanings: Trend{3.9, TrendUp},
	},
	FilterThisMonth: {
		Occupancy: Trend{5.5, TrendUp}, Revenue: Trend{7.1, TrendUp},
		Upcoming: Trend{1.2, TrendDown}, Cleanings: Trend{6.8, TrendDown},
	},
	FilterLastMonth: {
		Occupancy: Trend{0.6, TrendDown}, Revenue: Trend{3.4, TrendDown},
		Upcoming: Trend{2.2, TrendUp}, Cleanings: Trend{1.5, TrendUp},
	},
}

// ParseFilter validates a time filter; empty means today.
func ParseFilter(value string) (string, error) {
	if value == constant.Empty {
		return FilterToday, nil
	}

	if _, ok := revenueMultipliers[value]; !ok {
		return constant.Empty, ErrUnknownFilter
	}

	return value, nil
}

// Settings tune the estimates.
type Settings struct {
	AverageStayNights  int
	UpcomingWindowDays int
}

func (s Settings) averageStay() float64 {
	if s.AverageStayNights <= 0 {
		return 3
	}

	return float64(s.AverageStayNights)
}

func (s Settings) upcomingWindow() int {
	if s.UpcomingWindowDays <= 0 {
		return 7
	}

	return s.UpcomingWindowDays
}

type Metrics struct {
	Filter              string  `json:"filter"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	BookedOccupancyRate float64 `json:"booked_occupancy_rate"`
	Revenue             float64 `json:"revenue"`
	UpcomingCheckIns    int     `json:"upcoming_check_ins"`
	PendingCleanings    int     `json:"pending_cleanings"`
	TotalRooms          int     `json:"total_rooms"`
	Trends              Trends  `json:"trends"`
}

func round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(value*scale) / scale
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return round(float64(part)/float64(total)*100, 1)
}

// OccupancyRate is the share of rooms whose status is occupied, to one decimal.
func OccupancyRate(rooms []roomModel.Room) float64 {
	occupied := 0

	for _, room := range rooms {
		if room.Status == roomModel.StatusOccupied {
			occupied++
		}
	}

	return percent(occupied, len(rooms))
}

// BookedOccupancyRate is the share of rooms with a guest staying the night of date.
func BookedOccupancyRate(rooms []roomModel.Room, bookings []bookingModel.Booking, date time.Time) float64 {
	return percent(bookedRooms(rooms, bookings, date), len(rooms))
}

func bookedRooms(rooms []roomModel.Room, bookings []bookingModel.Booking, date time.Time) int {
	booked := 0

	for _, room := range rooms {
		if state, _ := availability.Cell(room, date, bookings); availability.OccupiedNight(state) {
			booked++
		}
	}

	return booked
}

// DailyRevenue estimates one day of revenue from stays in progress or finished.
func DailyRevenue(bookings []bookingModel.Booking, settings Settings) float64 {
	total := 0.0

	for _, booking := range bookings {
		if booking.Status == bookingModel.StatusCheckedIn || booking.Status == bookingModel.StatusCheckedOut {
			total += booking.TotalAmount / settings.averageStay()
		}
	}

	return total
}

// RevenueEstimate scales the daily estimate by the filter multiplier.
func RevenueEstimate(bookings []bookingModel.Booking, settings Settings, filter string) float64 {
	return round(DailyRevenue(bookings, settings)*revenueMultipliers[filter], 2)
}

// UpcomingCheckIns counts confirmed bookings arriving within [today, today+window].
func UpcomingCheckIns(bookings []bookingModel.Booking, today time.Time, settings Settings) int {
	start := timezone.DateOf(today)
	end := start.AddDate(0, 0, settings.upcomingWindow())
	count := 0

	for _, booking := range bookings {
		checkIn := timezone.DateOf(booking.CheckIn)

		if booking.Status == bookingModel.StatusConfirmed && !checkIn.Before(start) && !checkIn.After(end) {
			count++
		}
	}

	return count
}

// PendingCleanings counts rooms waiting for housekeeping.
func PendingCleanings(rooms []roomModel.Room) int {
	pending := 0

	for _, room := range rooms {
		if room.Status == roomModel.StatusCleaning {
			pending++
		}
	}

	return pending
}

// TrendsFor returns the configured trend indicators of a filter.
func TrendsFor(filter string) Trends {
	if trends, ok := trendTable[filter]; ok {
		return trends
	}

	return trendTable[FilterToday]
}

// Compute builds the metric cards. Status occupancy ignores the filter.
func Compute(filter string, rooms []roomModel.Room, bookings []bookingModel.Booking, today time.Time, settings Settings) Metrics {
	return Metrics{
		Filter:              filter,
		OccupancyRate:       OccupancyRate(rooms),
		BookedOccupancyRate: BookedOccupancyRate(rooms, bookings, today),
		Revenue:             RevenueEstimate(bookings, settings, filter),
		UpcomingCheckIns:    UpcomingCheckIns(bookings, today, settings),
		PendingCleanings:    PendingCleanings(rooms),
		TotalRooms:          len(rooms),
		Trends:              TrendsFor(filter),
	}
}

// UpcomingArrivals lists confirmed bookings arriving after today, earliest first.
func UpcomingArrivals(bookings []bookingModel.Booking, today time.Time, limit int) []bookingModel.Booking {
	start := timezone.DateOf(today)
	arrivals := []bookingModel.Booking{}

	for _, booking := range bookings {
		if booking.Status == bookingModel.StatusConfirmed && timezone.DateOf(booking.CheckIn).After(start) {
			arrivals = append(arrivals, booking)
		}
	}

	bookingDto.SortBookings(arrivals, bookingDto.DefaultSort, gDto.SortDirAsc)

	if limit > 0 && len(arrivals) > limit {
		arrivals = arrivals[:limit]
	}

	return arrivals
}

type Summary struct {
	Month            string  `json:"month"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	Revenue          float64 `json:"revenue"`
	AverageDailyRate float64 `json:"average_daily_rate"`
	OccupiedRooms    int     `json:"occupied_rooms"`
	TotalBookings    int     `json:"total_bookings"`
}

// MonthlySummary reports the month of today. Occupancy averages the booked nights from day 1 to today.
func MonthlySummary(rooms []roomModel.Room, bookings []bookingModel.Booking, today time.Time, settings Settings) Summary {
	today = timezone.DateOf(today)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	revenue := RevenueEstimate(bookings, settings, FilterThisMonth)

	nights, roomNights := 0, 0
	for day := first; !day.After(today); day = day.AddDate(0, 0, 1) {
		nights += bookedRooms(rooms, bookings, day)
		roomNights += len(rooms)
	}

	total := 0

	for _, booking := range bookings {
		checkIn := timezone.DateOf(booking.CheckIn)
		if !checkIn.Before(first) && checkIn.Before(next) {
			total++
		}
	}

	occupied := 0

	for _, room := range rooms {
		if room.Status == roomModel.StatusOccupied {
			occupied++
		}
	}

	return Summary{
		Month:            first.Format("2006-01"),
		OccupancyRate:    percent(nights, roomNights),
		Revenue:          revenue,
		AverageDailyRate: round(revenue/summaryDays, 2),
		OccupiedRooms:    occupied,
		TotalBookings:    total,
	}
}

type Point struct {
	Date          string  `json:"date"`
	OccupancyRate float64 `json:"occupancy_rate"`
	Revenue       float64 `json:"revenue"`
}

// OccupancySeries reports booked occupancy and nightly revenue for the days ending today.
// A stay's revenue is spread evenly across its nights.
func OccupancySeries(rooms []roomModel.Room, bookings []bookingModel.Booking, today time.Time, days int) []Point {
	today = timezone.DateOf(today)
	points := make([]Point, 0, days)

	for offset := days - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		revenue := 0.0

		for _, booking := range bookings {
			if booking.Status == bookingModel.StatusCancelled || booking.Status == bookingModel.StatusNoShow {
				continue
			}

			if nights := booking.Nights(); nights > 0 && coversNight(booking, day) {
				revenue += booking.TotalAmount / float64(nights)
			}
		}

		points = append(points, Point{
			Date:          gDto.FormatDay(day),
			OccupancyRate: BookedOccupancyRate(rooms, bookings, day),
			Revenue:       round(revenue, 2),
		})
	}

	return points
}

func coversNight(booking bookingModel.Booking, day time.Time) bool {
	return !timezone.DateOf(booking.CheckIn).After(day) && timezone.DateOf(booking.CheckOut).After(day)
}
